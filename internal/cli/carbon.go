package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/greencart/internal/carbon"
	"github.com/rshade/greencart/internal/config"
	"github.com/rshade/greencart/internal/tui"
)

// productFlags are the estimator inputs shared by estimate and suggest.
type productFlags struct {
	name     string
	category string
	price    float64
	weight   float64
	brand    string
}

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "product name (informational)")
	cmd.Flags().StringVar(&f.category, "category", "",
		"product category, one of: "+strings.Join(carbon.Categories(), ", "))
	cmd.Flags().Float64Var(&f.price, "price", 0, "price in dollars, used to infer weight")
	cmd.Flags().Float64Var(&f.weight, "weight", 0, "weight in kg (omit to infer from price)")
	cmd.Flags().StringVar(&f.brand, "brand", "", "brand name (informational)")
	_ = cmd.MarkFlagRequired("category")
}

// product builds the estimator input. An unrecognised category is passed
// through unchanged so the estimator applies its fallback, and a warning is
// logged.
func (f *productFlags) product(cmd *cobra.Command) carbon.Product {
	category, ok := carbon.ParseCategory(f.category)
	if !ok {
		logger.Warn().Ctx(cmd.Context()).
			Str("category", f.category).
			Str("fallback", carbon.DefaultCategory).
			Msg("unknown category, using fallback factors")
	}
	p := carbon.Product{
		Name:     f.name,
		Category: category,
		Price:    f.price,
		Brand:    f.brand,
	}
	if cmd.Flags().Changed("weight") {
		p = p.WithWeight(f.weight)
	}
	return p
}

// estimateResult is the JSON shape of carbon estimate.
type estimateResult struct {
	Product     carbon.Product     `json:"product"`
	Footprint   carbon.Footprint   `json:"footprint"`
	Rating      carbon.Rating      `json:"rating"`
	Class       carbon.Class       `json:"footprintClass"`
	Weight      float64            `json:"weightKg"`
	Equivalency carbon.Equivalency `json:"equivalency"`
	Suggestions []string           `json:"suggestions"`
}

// NewCarbonEstimateCmd creates the carbon estimate command.
func NewCarbonEstimateCmd() *cobra.Command {
	var (
		flags  productFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the carbon footprint of a product",
		Example: `  # Known weight
  greencart carbon estimate --category "Meat & Seafood" --price 12.99 --weight 1

  # Weight inferred from price, JSON output
  greencart carbon estimate --category Electronics --price 199 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			p := flags.product(cmd)
			res := buildEstimate(p)

			logger.Debug().Ctx(cmd.Context()).
				Str("category", res.Footprint.Category).
				Float64("total", res.Footprint.Total).
				Msg("footprint estimated")

			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return renderEstimateTable(cmd, res)
		},
	}

	flags.register(cmd)
	addOutputFlag(cmd, &output)
	return cmd
}

func buildEstimate(p carbon.Product) estimateResult {
	fp := carbon.CalculateFootprint(p)
	// Footprint totals are finite and non-negative for any sane input; an
	// error here only means there is nothing to restate.
	eq, _ := carbon.Equivalencies(fp.Total)
	suggestions := carbon.SuggestAlternatives(p)
	if suggestions == nil {
		suggestions = []string{}
	}
	return estimateResult{
		Product:     p,
		Footprint:   fp,
		Rating:      carbon.RatingFor(fp.Total),
		Class:       carbon.FootprintClass(fp.Total),
		Weight:      carbon.Round2(carbon.EstimateWeight(p)),
		Equivalency: eq,
		Suggestions: suggestions,
	}
}

func renderEstimateTable(cmd *cobra.Command, res estimateResult) error {
	styled := styledOutput(cmd)
	w := newTabWriter(cmd.OutOrStdout())

	if res.Product.Name != "" {
		fmt.Fprintf(w, "Product\t%s\n", res.Product.Name)
	}
	fmt.Fprintf(w, "Category\t%s\n", res.Footprint.Category)
	fmt.Fprintf(w, "Weight\t%.2f kg (%s confidence)\n", res.Weight, res.Footprint.Confidence)
	fmt.Fprintf(w, "Production\t%s\n", carbon.FormatKg(res.Footprint.Breakdown.Production))
	fmt.Fprintf(w, "Transport\t%s\n", carbon.FormatKg(res.Footprint.Breakdown.Transport))
	fmt.Fprintf(w, "Packaging\t%s\n", carbon.FormatKg(res.Footprint.Breakdown.Packaging))
	fmt.Fprintf(w, "Total\t%s\n", carbon.FormatKg(res.Footprint.Total))
	fmt.Fprintf(w, "Rating\t%s\n", tui.RenderGrade(res.Rating, styled))
	fmt.Fprintf(w, "Class\t%s\n", tui.RenderClass(res.Class, styled))
	if err := w.Flush(); err != nil {
		return err
	}

	if !res.Equivalency.Empty {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), res.Equivalency.Text)
	}
	printSuggestions(cmd, res.Suggestions)
	return nil
}

func printSuggestions(cmd *cobra.Command, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Suggestions:")
	for _, s := range suggestions {
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", s)
	}
}

// rateResult is the JSON shape of carbon rate.
type rateResult struct {
	Footprint   float64            `json:"footprint"`
	Formatted   string             `json:"formatted"`
	Rating      carbon.Rating      `json:"rating"`
	Class       carbon.Class       `json:"footprintClass"`
	Equivalency carbon.Equivalency `json:"equivalency"`
}

// NewCarbonRateCmd creates the carbon rate command, which grades a raw
// footprint value.
func NewCarbonRateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "rate <kg>",
		Short:   "Grade a footprint in kg CO2e on the A-F scale",
		Args:    cobra.ExactArgs(1),
		Example: `  greencart carbon rate 4.2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			kg, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid footprint %q: %w", args[0], err)
			}
			// Negative footprints still grade; they have no equivalency.
			eq, err := carbon.Equivalencies(kg)
			if err != nil && !errors.Is(err, carbon.ErrNegativeValue) {
				return fmt.Errorf("rating %s: %w", args[0], err)
			}

			res := rateResult{
				Footprint:   kg,
				Formatted:   carbon.FormatKg(kg),
				Rating:      carbon.RatingFor(kg),
				Class:       carbon.FootprintClass(kg),
				Equivalency: eq,
			}
			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}

			styled := styledOutput(cmd)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %s footprint\n",
				res.Formatted, tui.RenderGrade(res.Rating, styled), tui.RenderClass(res.Class, styled))
			if !eq.Empty {
				fmt.Fprintln(cmd.OutOrStdout(), eq.Text)
			}
			return nil
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

// compareFile is the YAML input of carbon compare. A bare list of products
// is accepted as well.
type compareFile struct {
	Products []carbon.Product `yaml:"products"`
}

// loadCompareFile reads products from a YAML file.
func loadCompareFile(path string) ([]carbon.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc compareFile
	if err = yaml.Unmarshal(data, &doc); err == nil {
		return doc.Products, nil
	}

	var list []carbon.Product
	if listErr := yaml.Unmarshal(data, &list); listErr != nil {
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return nil, fmt.Errorf("parsing %s: %w", path, listErr)
	}
	return list, nil
}

// NewCarbonCompareCmd creates the carbon compare command.
func NewCarbonCompareCmd() *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank products by estimated footprint",
		Long: `Reads a YAML file of products and ranks them from lowest to highest
estimated footprint.

The file holds either a top-level list or a "products" key:

  products:
    - name: Oat milk
      category: Dairy
      price: 3.99
      weight: 1.0
    - name: Steak
      category: Meat & Seafood
      price: 14.5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			products, err := loadCompareFile(file)
			if err != nil {
				return err
			}

			cmp, err := carbon.Compare(products)
			if errors.Is(err, carbon.ErrNoProducts) {
				return fmt.Errorf("%s: at least one product is required", file)
			}
			if err != nil {
				return err
			}

			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), cmp)
			}
			return renderComparison(cmd, cmp)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file listing the products to compare")
	_ = cmd.MarkFlagRequired("file")
	addOutputFlag(cmd, &output)
	return cmd
}

func renderComparison(cmd *cobra.Command, cmp carbon.Comparison) error {
	styled := styledOutput(cmd)
	w := newTabWriter(cmd.OutOrStdout())

	fmt.Fprintln(w, "Rank\tName\tCategory\tFootprint\tRating")
	fmt.Fprintln(w, "----\t----\t--------\t---------\t------")
	for i, sp := range cmp.Ranked {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1, displayName(sp.Name), sp.Category,
			carbon.FormatKg(sp.Footprint),
			tui.RenderGrade(carbon.RatingFor(sp.Footprint), styled))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintf(cmd.OutOrStdout(), "Best:    %s (%s)\n", displayName(cmp.Best.Name), carbon.FormatKg(cmp.Best.Footprint))
	fmt.Fprintf(cmd.OutOrStdout(), "Worst:   %s (%s)\n", displayName(cmp.Worst.Name), carbon.FormatKg(cmp.Worst.Footprint))
	fmt.Fprintf(cmd.OutOrStdout(), "Average: %s\n", carbon.FormatKg(cmp.Average))
	return nil
}

func displayName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}

// NewCarbonSuggestCmd creates the carbon suggest command.
func NewCarbonSuggestCmd() *cobra.Command {
	var (
		flags  productFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest ways to lower a product's footprint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			suggestions := carbon.SuggestAlternatives(flags.product(cmd))
			if suggestions == nil {
				suggestions = []string{}
			}
			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), map[string][]string{"suggestions": suggestions})
			}
			if len(suggestions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No suggestions: this product already has a modest footprint.")
				return nil
			}
			for _, s := range suggestions {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", s)
			}
			return nil
		},
	}

	flags.register(cmd)
	addOutputFlag(cmd, &output)
	return cmd
}
