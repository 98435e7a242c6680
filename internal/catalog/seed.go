package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rshade/greencart/internal/carbon"
)

// seedEpoch is the CreatedAt stamp given to every seed product.
var seedEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // fixed seed timestamp

func floatPtr(v float64) *float64 { return &v }

// SeedProducts returns the demo catalog: six Walmart listings followed by ten
// Target listings, all with stored footprints.
func SeedProducts() []Product {
	products := []Product{
		{
			ID:              "1",
			Name:            "Great Value Organic Bananas, 2 lb",
			Description:     "Fresh organic bananas, perfect for snacking, smoothies, or baking. Sustainably grown and ethically sourced.",
			Price:           decimal.RequireFromString("2.98"),
			ImageURL:        "https://i5.walmartimages.com/asr/c85c2f6b-3e8b-4e5b-9c5b-8b5c5e5c5e5c/1.256e3b5c5e5c5e5c5e5c5e5c5e5c5e5c.jpeg?odnHeight=612&odnWidth=612&odnBg=FFFFFF",
			StoreURL:        "https://walmart.com/product/1",
			Category:        carbon.CategoryFreshProduce,
			Brand:           "Great Value",
			CarbonFootprint: floatPtr(2.1),
		},
		{
			ID:              "2",
			Name:            "Philips LED Light Bulb, 60W Equivalent",
			Description:     "Energy efficient LED bulb with 10-year lifespan. Reduces energy consumption by 80% compared to traditional bulbs.",
			Price:           decimal.RequireFromString("4.97"),
			ImageURL:        "https://i5.walmartimages.com/asr/8b5c5e5c-5e5c-5e5c-5e5c-5e5c5e5c5e5c/1.5e5c5e5c5e5c5e5c5e5c5e5c5e5c5e5c.jpeg?odnHeight=612&odnWidth=612&odnBg=FFFFFF",
			StoreURL:        "https://walmart.com/product/2",
			Category:        carbon.CategoryHomeGarden,
			Brand:           "Philips",
			CarbonFootprint: floatPtr(8.5),
		},
		{
			ID:              "3",
			Name:            "Great Value Whole Milk, 1 Gallon",
			Description:     "Fresh whole milk from local dairy farms. Rich in calcium and protein for the whole family.",
			Price:           decimal.RequireFromString("3.48"),
			ImageURL:        "https://i5.walmartimages.com/asr/5b5c5e5c-5e5c-5e5c-5e5c-5e5c5e5c5e5c/1.5e5c5e5c5e5c5e5c5e5c5e5c5e5c5e5c.jpeg?odnHeight=612&odnWidth=612&odnBg=FFFFFF",
			StoreURL:        "https://walmart.com/product/3",
			Category:        carbon.CategoryDairy,
			Brand:           "Great Value",
			CarbonFootprint: floatPtr(12.3),
		},
		{
			ID:              "4",
			Name:            "Marketside Organic Baby Spinach, 5 oz",
			Description:     "Fresh organic baby spinach leaves, pre-washed and ready to eat. Perfect for salads and cooking.",
			Price:           decimal.RequireFromString("2.48"),
			ImageURL:        "https://i5.walmartimages.com/asr/fresh-spinach-leaves/1.jpeg?odnHeight=612&odnWidth=612&odnBg=FFFFFF",
			StoreURL:        "https://walmart.com/product/4",
			Category:        carbon.CategoryFreshProduce,
			Brand:           "Marketside",
			CarbonFootprint: floatPtr(1.8),
		},
		{
			ID:              "5",
			Name:            "Great Value Whole Wheat Bread, 20 oz",
			Description:     "Soft and nutritious whole wheat bread made with quality ingredients. No artificial preservatives.",
			Price:           decimal.RequireFromString("1.98"),
			ImageURL:        "https://i5.walmartimages.com/asr/whole-wheat-bread/1.jpeg?odnHeight=612&odnWidth=612&odnBg=FFFFFF",
			StoreURL:        "https://walmart.com/product/5",
			Category:        carbon.CategoryBakery,
			Brand:           "Great Value",
			CarbonFootprint: floatPtr(3.2),
		},
		{
			ID:              "6",
			Name:            "Tide Eco-Box Liquid Laundry Detergent, 105 fl oz",
			Description:     "Concentrated liquid laundry detergent in eco-friendly packaging. 75% less plastic than traditional bottles.",
			Price:           decimal.RequireFromString("11.97"),
			ImageURL:        "https://i5.walmartimages.com/asr/tide-eco-box/1.jpeg?odnHeight=612&odnWidth=612&odnBg=FFFFFF",
			StoreURL:        "https://walmart.com/product/6",
			Category:        carbon.CategoryHomeGarden,
			Brand:           "Tide",
			CarbonFootprint: floatPtr(6.8),
		},
		{
			ID:              "7",
			Name:            "Good & Gather Organic Bananas, 2 lb",
			Description:     "Fresh organic bananas, perfect for snacking, smoothies, or baking. USDA Organic certified and sustainably grown.",
			Price:           decimal.RequireFromString("2.79"),
			ImageURL:        "https://target.scene7.com/is/image/Target/GUEST_organic-bananas?wid=488&hei=488&fmt=pjpeg",
			StoreURL:        "https://target.com/p/organic-bananas-2lb/1",
			Category:        carbon.CategoryFreshProduce,
			Brand:           "Good & Gather",
			CarbonFootprint: floatPtr(1.8),
		},
		{
			ID:              "8",
			Name:            "Brightroom LED Light Bulb, 60W Equivalent",
			Description:     "Energy efficient LED bulb with 15-year lifespan. ENERGY STAR certified and reduces energy consumption by 85%.",
			Price:           decimal.RequireFromString("3.99"),
			ImageURL:        "https://target.scene7.com/is/image/Target/GUEST_led-bulb?wid=488&hei=488&fmt=pjpeg",
			StoreURL:        "https://target.com/p/led-light-bulb-60w/2",
			Category:        carbon.CategoryHomeGarden,
			Brand:           "Brightroom",
			CarbonFootprint: floatPtr(6.2),
		},
		{
			ID:              "9",
			Name:            "Good & Gather Organic Whole Milk, 1 Gallon",
			Description:     "Fresh organic whole milk from pasture-raised cows. rBST-free and rich in calcium and protein.",
			Price:           decimal.RequireFromString("4.29"),
			ImageURL:        "https://target.scene7.com/is/image/Target/GUEST_organic-milk?wid=488&hei=488&fmt=pjpeg",
			StoreURL:        "https://target.com/p/organic-whole-milk-1gal/3",
			Category:        carbon.CategoryDairy,
			Brand:           "Good & Gather",
			CarbonFootprint: floatPtr(10.8),
		},
		{
			ID:              "10",
			Name:            "Good & Gather Organic Baby Spinach, 5 oz",
			Description:     "Fresh organic baby spinach leaves, triple-washed and ready to eat. Perfect for salads and cooking.",
			Price:           decimal.RequireFromString("2.99"),
			ImageURL:        "https://target.scene7.com/is/image/Target/GUEST_baby-spinach?wid=488&hei=488&fmt=pjpeg",
			StoreURL:        "https://target.com/p/organic-baby-spinach-5oz/4",
			Category:        carbon.CategoryFreshProduce,
			Brand:           "Good & Gather",
			CarbonFootprint: floatPtr(1.5),
		},
		{
			ID:              "11",
			Name:            "Good & Gather Whole Wheat Bread, 20 oz",
			Description:     "Soft whole wheat bread made with organic flour. No artificial preservatives or high fructose corn syrup.",
			Price:           decimal.RequireFromString("2.49"),
			ImageURL:        "https://target.scene7.com/is/image/Target/GUEST_wheat-bread?wid=488&hei=488&fmt=pjpeg",
			StoreURL:        "https://target.com/p/whole-wheat-bread-20oz/5",
			Category:        carbon.CategoryBakery,
			Brand:           "Good & Gather",
			CarbonFootprint: floatPtr(2.8),
		},
		{
			ID:              "12",
			Name:            "Everspring Concentrated Laundry Detergent, 100 fl oz",
			Description:     "Plant-based laundry detergent in recyclable packaging. EPA Safer Choice certified and biodegradable.",
			Price:           decimal.RequireFromString("8.99"),
			ImageURL:        "https://target.scene7.com/is/image/Target/GUEST_everspring-detergent?wid=488&hei=488&fmt=pjpeg",
			StoreURL:        "https://target.com/p/everspring-laundry-detergent/6",
			Category:        carbon.CategoryHomeGarden,
			Brand:           "Everspring",
			CarbonFootprint: floatPtr(4.5),
		},
		{
			ID:              "13",
			Name:            "Wild Fable Organic Cotton T-Shirt",
			Description:     "100% organic cotton t-shirt made with sustainable practices. Fair Trade certified and ethically sourced.",
			Price:           decimal.RequireFromString("12.99"),
			ImageURL:        "https://target.scene7.com/is/image/Target/GUEST_organic-tshirt?wid=488&hei=488&fmt=pjpeg",
			StoreURL:        "https://target.com/p/organic-cotton-tshirt/7",
			Category:        carbon.CategoryClothing,
			Brand:           "Wild Fable",
			CarbonFootprint: floatPtr(5.2),
		},
		{
			ID:              "14",
			Name:            "Heyday Wireless Earbuds",
			Description:     "Bluetooth wireless earbuds with recycled plastic housing. 6-hour battery life and sustainable packaging.",
			Price:           decimal.RequireFromString("29.99"),
			ImageURL:        "https://target.scene7.com/is/image/Target/GUEST_wireless-earbuds?wid=488&hei=488&fmt=pjpeg",
			StoreURL:        "https://target.com/p/heyday-wireless-earbuds/8",
			Category:        carbon.CategoryElectronics,
			Brand:           "Heyday",
			CarbonFootprint: floatPtr(15.3),
		},
		{
			ID:              "15",
			Name:            "Good & Gather Organic Quinoa, 16 oz",
			Description:     "Premium organic quinoa, sustainably sourced from Bolivia. High in protein and naturally gluten-free.",
			Price:           decimal.RequireFromString("4.99"),
			ImageURL:        "https://target.scene7.com/is/image/Target/GUEST_organic-quinoa?wid=488&hei=488&fmt=pjpeg",
			StoreURL:        "https://target.com/p/organic-quinoa-16oz/9",
			Category:        carbon.CategoryPantry,
			Brand:           "Good & Gather",
			CarbonFootprint: floatPtr(2.1),
		},
		{
			ID:              "16",
			Name:            "Everspring All-Purpose Cleaner, 28 fl oz",
			Description:     "Plant-based all-purpose cleaner with biodegradable formula. Cruelty-free and safe for families.",
			Price:           decimal.RequireFromString("3.49"),
			ImageURL:        "https://target.scene7.com/is/image/Target/GUEST_eco-cleaner?wid=488&hei=488&fmt=pjpeg",
			StoreURL:        "https://target.com/p/everspring-all-purpose-cleaner/10",
			Category:        carbon.CategoryHomeGarden,
			Brand:           "Everspring",
			CarbonFootprint: floatPtr(1.9),
		},
	}
	for i := range products {
		products[i].CreatedAt = seedEpoch
	}
	return products
}
