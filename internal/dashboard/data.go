package dashboard

// Trend is the direction of a supplier's sustainability score.
type Trend string

// Trends.
const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Supplier is a vendor tracked on the dashboard.
type Supplier struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	SustainabilityScore int      `json:"sustainabilityScore"`
	CarbonFootprint     float64  `json:"carbonFootprint"`
	ProductsCount       int      `json:"productsCount"`
	Trend               Trend    `json:"trend"`
	Certifications      []string `json:"certifications"`
	Location            string   `json:"location"`
}

// CategoryStat is the reported performance of a product category.
type CategoryStat struct {
	Name                   string  `json:"name"`
	AverageCarbonFootprint float64 `json:"averageCarbonFootprint"`
	TotalProducts          int     `json:"totalProducts"`
	TopSupplier            string  `json:"topSupplier"`
	Improvement            int     `json:"improvement"`
}

// Metric is a headline figure with its month-on-month change in percent.
type Metric struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Change int    `json:"change"`
}

// Activity is an entry in the recent-activity feed.
type Activity struct {
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

//nolint:gochecknoglobals // static report data
var suppliers = []Supplier{
	{
		ID:                  "1",
		Name:                "GreenTech Manufacturing",
		SustainabilityScore: 92,
		CarbonFootprint:     2.1,
		ProductsCount:       156,
		Trend:               TrendUp,
		Certifications:      []string{"Carbon Neutral", "Fair Trade", "Organic"},
		Location:            "California, USA",
	},
	{
		ID:                  "2",
		Name:                "EcoFriendly Foods Co.",
		SustainabilityScore: 88,
		CarbonFootprint:     1.8,
		ProductsCount:       234,
		Trend:               TrendUp,
		Certifications:      []string{"Organic", "Local Sourcing"},
		Location:            "Oregon, USA",
	},
	{
		ID:                  "3",
		Name:                "Traditional Industries Ltd.",
		SustainabilityScore: 45,
		CarbonFootprint:     12.5,
		ProductsCount:       89,
		Trend:               TrendDown,
		Certifications:      []string{},
		Location:            "China",
	},
	{
		ID:                  "4",
		Name:                "Sustainable Solutions Inc.",
		SustainabilityScore: 85,
		CarbonFootprint:     3.2,
		ProductsCount:       178,
		Trend:               TrendStable,
		Certifications:      []string{"Renewable Energy", "Waste Reduction"},
		Location:            "Texas, USA",
	},
}

//nolint:gochecknoglobals // static report data
var categoryStats = []CategoryStat{
	{Name: "Fresh Produce", AverageCarbonFootprint: 1.2, TotalProducts: 450, TopSupplier: "EcoFriendly Foods Co.", Improvement: 15},
	{Name: "Electronics", AverageCarbonFootprint: 18.5, TotalProducts: 230, TopSupplier: "GreenTech Manufacturing", Improvement: -8},
	{Name: "Home & Garden", AverageCarbonFootprint: 5.8, TotalProducts: 340, TopSupplier: "Sustainable Solutions Inc.", Improvement: 22},
	{Name: "Clothing", AverageCarbonFootprint: 8.2, TotalProducts: 180, TopSupplier: "GreenTech Manufacturing", Improvement: 12},
}

//nolint:gochecknoglobals // static report data
var metrics = []Metric{
	{Name: "Total CO₂e Emissions", Value: "2,847 kg", Change: -12},
	{Name: "Green Suppliers", Value: "68%", Change: 8},
	{Name: "Waste Diverted", Value: "1,234 kg", Change: 25},
	{Name: "Green Deliveries", Value: "42%", Change: 15},
}

//nolint:gochecknoglobals // static report data
var activities = []Activity{
	{
		Kind:   "success",
		Title:  "New sustainable supplier onboarded",
		Detail: "GreenTech Manufacturing achieved 92% sustainability score",
	},
	{
		Kind:   "milestone",
		Title:  "Carbon reduction milestone reached",
		Detail: "Electronics category reduced emissions by 8% this quarter",
	},
	{
		Kind:   "warning",
		Title:  "Supplier review required",
		Detail: "Traditional Industries Ltd. sustainability score dropped to 45%",
	},
}
