package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/greencart/internal/carbon"
	"github.com/rshade/greencart/internal/catalog"
	"github.com/rshade/greencart/internal/config"
	"github.com/rshade/greencart/internal/tui"
	"github.com/rshade/greencart/internal/vendor"
)

// listProducts returns the store's products under slug, falling back to the
// vendor feed when the store is empty.
func listProducts(ctx context.Context, cfg *config.Config, slug string) ([]catalog.Product, error) {
	store := newStore(cfg)
	products, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	if len(products) > 0 {
		return catalog.FilterByCategory(products, slug), nil
	}

	items, err := newVendorClient(cfg).FetchByCategory(ctx, slug)
	if err != nil {
		return nil, err
	}
	// Save assigns IDs and timestamps; the store is discarded afterwards.
	return store.Save(ctx, vendor.NewProducts(items))
}

// NewCatalogListCmd creates the catalog list command.
func NewCatalogListCmd() *cobra.Command {
	var (
		slug   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products with their carbon ratings",
		Example: `  greencart catalog list
  greencart catalog list --category grocery --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			products, err := listProducts(cmd.Context(), config.GetGlobalConfig(), slug)
			if err != nil {
				return err
			}
			enriched := catalog.EnrichAll(products)

			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"products": enriched})
			}
			return renderProductTable(cmd, enriched)
		},
	}

	cmd.Flags().StringVar(&slug, "category", catalog.SlugAll,
		"category filter: "+strings.Join(catalog.Slugs(), ", ")+" or a category name")
	addOutputFlag(cmd, &output)
	return cmd
}

func renderProductTable(cmd *cobra.Command, products []catalog.EnrichedProduct) error {
	if len(products) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No products found.")
		return nil
	}

	styled := styledOutput(cmd)
	w := newTabWriter(cmd.OutOrStdout())
	fmt.Fprintln(w, "ID\tName\tBrand\tCategory\tPrice\tFootprint\tRating")
	fmt.Fprintln(w, "--\t----\t-----\t--------\t-----\t---------\t------")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%s\t%s\t%s\n",
			p.ID, p.Name, p.Brand, p.Category,
			p.Price.StringFixed(2),
			carbon.FormatKg(p.Footprint()),
			tui.RenderGrade(p.Rating, styled))
	}
	return w.Flush()
}

// NewCatalogBrowseCmd creates the interactive catalog browser command.
func NewCatalogBrowseCmd() *cobra.Command {
	var slug string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return errors.New("catalog browse needs an interactive terminal; use 'catalog list' instead")
			}
			cfg := config.GetGlobalConfig()
			return tui.RunCatalogBrowser(cmd.Context(), func(ctx context.Context) ([]catalog.Product, error) {
				return listProducts(ctx, cfg, slug)
			})
		},
	}

	cmd.Flags().StringVar(&slug, "category", catalog.SlugAll, "category filter")
	return cmd
}

// NewCatalogScrapeCmd creates the catalog scrape command, which pulls a
// sample from the vendor feed into the store and prints what was added.
func NewCatalogScrapeCmd() *cobra.Command {
	var (
		slug   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Import products from the vendor feed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cfg := config.GetGlobalConfig()
			feed := newVendorClient(cfg)

			var items []vendor.Item
			if slug == "" {
				items, err = feed.FetchAll(ctx)
			} else {
				items, err = feed.FetchByCategory(ctx, slug)
			}
			if err != nil {
				return fmt.Errorf("failed to scrape products: %w", err)
			}
			if len(items) == 0 {
				return errors.New("no products were scraped")
			}

			store := newStore(cfg)
			saved, err := store.Save(ctx, vendor.NewProducts(items))
			if err != nil {
				return fmt.Errorf("saving scraped products: %w", err)
			}
			logger.Info().Ctx(ctx).Int("count", len(saved)).Int("catalog_size", store.Len()).
				Msg("scraped vendor products")

			enriched := catalog.EnrichAll(saved)
			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"success":  true,
					"count":    len(saved),
					"message":  fmt.Sprintf("Successfully scraped %d products", len(saved)),
					"products": enriched,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully scraped %d products\n\n", len(saved))
			return renderProductTable(cmd, enriched)
		},
	}

	cmd.Flags().StringVar(&slug, "category", "", "only scrape this category slug (default: random sample)")
	addOutputFlag(cmd, &output)
	return cmd
}
