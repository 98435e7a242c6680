// Package dashboard assembles the manager's sustainability report: fixed
// supplier and category figures plus live analytics over the catalog.
package dashboard

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/greencart/internal/carbon"
	"github.com/rshade/greencart/internal/catalog"
	"github.com/rshade/greencart/internal/logging"
)

// Tier is a coarse low/medium/high bucket.
type Tier string

// Tiers.
const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// reviewThreshold is the sustainability score below which a supplier is
// flagged for review.
const reviewThreshold = 60

// SustainabilityTier buckets a 0-100 supplier score.
func SustainabilityTier(score int) Tier {
	switch {
	case score >= 80:
		return TierHigh
	case score >= reviewThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// CarbonTier buckets a footprint in kg CO2e.
func CarbonTier(kg float64) Tier {
	switch {
	case kg < 5:
		return TierLow
	case kg < 10:
		return TierMedium
	default:
		return TierHigh
	}
}

// SupplierView is a supplier with its derived tiers.
type SupplierView struct {
	Supplier

	Tier        Tier `json:"sustainabilityTier"`
	CarbonTier  Tier `json:"carbonTier"`
	NeedsReview bool `json:"needsReview"`
}

// CategoryView is a category stat with its carbon tier.
type CategoryView struct {
	CategoryStat

	CarbonTier Tier `json:"carbonTier"`
}

// Insight is live analytics for one category of stored products.
type Insight struct {
	Category         string  `json:"category"`
	Products         int     `json:"products"`
	BestProduct      string  `json:"bestProduct"`
	BestFootprint    float64 `json:"bestFootprint"`
	WorstProduct     string  `json:"worstProduct"`
	WorstFootprint   float64 `json:"worstFootprint"`
	EstimatedAverage float64 `json:"estimatedAverage"`
	StoredAverage    float64 `json:"storedAverage"`
	CarbonTier       Tier    `json:"carbonTier"`
}

// Summary is the full dashboard payload.
type Summary struct {
	Metrics     []Metric       `json:"metrics"`
	Suppliers   []SupplierView `json:"suppliers"`
	Categories  []CategoryView `json:"categories"`
	Activities  []Activity     `json:"activities"`
	Insights    []Insight      `json:"insights"`
	Review      []string       `json:"reviewRequired"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

// ProductLister supplies the catalog for live analytics.
type ProductLister interface {
	List(ctx context.Context) ([]catalog.Product, error)
}

// Service builds dashboard summaries.
type Service struct {
	products ProductLister
	now      func() time.Time
}

// New returns a dashboard service over products.
func New(products ProductLister) *Service {
	return &Service{products: products, now: time.Now}
}

// Summary builds the report. Category insights are computed concurrently.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("listing products: %w", err)
	}

	insights, err := buildInsights(ctx, products)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Metrics:     slices.Clone(metrics),
		Activities:  slices.Clone(activities),
		Insights:    insights,
		Review:      []string{},
		GeneratedAt: s.now().UTC(),
	}
	for _, sup := range suppliers {
		view := SupplierView{
			Supplier:    sup,
			Tier:        SustainabilityTier(sup.SustainabilityScore),
			CarbonTier:  CarbonTier(sup.CarbonFootprint),
			NeedsReview: sup.SustainabilityScore < reviewThreshold,
		}
		if view.NeedsReview {
			sum.Review = append(sum.Review, sup.Name)
		}
		sum.Suppliers = append(sum.Suppliers, view)
	}
	for _, cat := range categoryStats {
		sum.Categories = append(sum.Categories, CategoryView{
			CategoryStat: cat,
			CarbonTier:   CarbonTier(cat.AverageCarbonFootprint),
		})
	}

	logging.FromContext(ctx).Debug().
		Int("products", len(products)).
		Int("insights", len(insights)).
		Msg("dashboard summary built")
	return sum, nil
}

// buildInsights groups products by category, in first-seen order, and runs
// the estimator comparison for each group.
func buildInsights(ctx context.Context, products []catalog.Product) ([]Insight, error) {
	var order []string
	groups := make(map[string][]catalog.Product)
	for _, p := range products {
		if _, ok := groups[p.Category]; !ok {
			order = append(order, p.Category)
		}
		groups[p.Category] = append(groups[p.Category], p)
	}

	insights := make([]Insight, len(order))
	g, gctx := errgroup.WithContext(ctx)
	for i, cat := range order {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			in, err := categoryInsight(cat, groups[cat])
			if err != nil {
				return fmt.Errorf("analysing %s: %w", cat, err)
			}
			insights[i] = in
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return insights, nil
}

func categoryInsight(category string, products []catalog.Product) (Insight, error) {
	inputs := make([]carbon.Product, len(products))
	var stored float64
	for i, p := range products {
		inputs[i] = p.EstimatorInput()
		stored += p.Footprint()
	}
	cmp, err := carbon.Compare(inputs)
	if err != nil {
		return Insight{}, err
	}
	storedAvg := carbon.Round2(stored / float64(len(products)))
	return Insight{
		Category:         category,
		Products:         len(products),
		BestProduct:      cmp.Best.Name,
		BestFootprint:    cmp.Best.Footprint,
		WorstProduct:     cmp.Worst.Name,
		WorstFootprint:   cmp.Worst.Footprint,
		EstimatedAverage: cmp.Average,
		StoredAverage:    storedAvg,
		CarbonTier:       CarbonTier(storedAvg),
	}, nil
}
