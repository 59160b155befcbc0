package repository

import "paint_estimator/internal/domain/entities"

// SeedProducts returns the built-in supplier catalog. Every call returns a
// fresh slice.
func SeedProducts() []entities.PaintProduct {
	return []entities.PaintProduct{
		{
			ID:               "wall_economy",
			Name:             "Matt Emulsion (Economy)",
			Brand:            "Generic Store Brand",
			Category:         entities.ProductCategoryWall,
			PricePerLitre:    3.50,
			CoveragePerLitre: 10,
			Description:      "Basic contract matt for budget projects.",
		},
		{
			ID:               "wall_standard",
			Name:             "Vinyl Matt (Standard)",
			Brand:            "Dulux / Crown",
			Category:         entities.ProductCategoryWall,
			PricePerLitre:    9.00,
			CoveragePerLitre: 13,
			Description:      "Durable, washable finish suitable for most rooms.",
		},
		{
			ID:               "wall_premium",
			Name:             "Estate Emulsion (Premium)",
			Brand:            "Farrow & Ball",
			Category:         entities.ProductCategoryWall,
			PricePerLitre:    22.00,
			CoveragePerLitre: 14,
			Description:      "Signature chalky finish, exceptional depth of colour.",
		},
		{
			ID:               "trim_gloss",
			Name:             "High Gloss (Standard)",
			Brand:            "Dulux Trade",
			Category:         entities.ProductCategoryTrim,
			PricePerLitre:    16.00,
			CoveragePerLitre: 15,
			Description:      "High shine, tough finish for wood and metal.",
		},
		{
			ID:               "trim_satin",
			Name:             "Satinwood (Standard)",
			Brand:            "Dulux Trade",
			Category:         entities.ProductCategoryTrim,
			PricePerLitre:    18.00,
			CoveragePerLitre: 16,
			Description:      "Mid-sheen finish, elegant and durable.",
		},
		{
			ID:               "trim_eggshell",
			Name:             "Eggshell (Premium)",
			Brand:            "Farrow & Ball",
			Category:         entities.ProductCategoryTrim,
			PricePerLitre:    28.00,
			CoveragePerLitre: 12,
			Description:      "Low sheen finish for woodwork and metal.",
		},
		{
			ID:               entities.PrimerProductID,
			Name:             "Primer Undercoat",
			Brand:            "Dulux Trade",
			Category:         entities.ProductCategoryPrimer,
			PricePerLitre:    12.00,
			CoveragePerLitre: 12,
			Description:      "Undercoat for bare or previously glossed woodwork.",
		},
	}
}

func SeedTrends() []entities.TrendColor {
	const season = "Winter 2025"
	return []entities.TrendColor{
		{
			ID:          "trend_true_joy",
			Name:        "True Joy™",
			Brand:       "Dulux",
			Hex:         "#ffcc00",
			Description: "Dulux Colour of the Year 2025. A sunny yellow to bring optimism to winter days.",
			Season:      season,
		},
		{
			ID:          "trend_cola",
			Name:        "Cola",
			Brand:       "Farrow & Ball",
			Hex:         "#4a3c31",
			Description: "A deep, dark brown with red undertones. Perfect for cosy winter snugs.",
			Season:      season,
		},
		{
			ID:          "trend_brave_ground",
			Name:        "Brave Ground™",
			Brand:       "Dulux",
			Hex:         "#9e8e78",
			Description: "An earthy neutral that brings a sense of stability and calm.",
			Season:      season,
		},
		{
			ID:          "trend_marmelo",
			Name:        "Marmelo",
			Brand:       "Farrow & Ball",
			Hex:         "#d67e3e",
			Description: "A mellow burnt orange, adding warmth and \"new nostalgia\" to any room.",
			Season:      season,
		},
	}
}

func SeedRoomTypes() []entities.RoomType {
	return []entities.RoomType{
		{ID: "kitchen", Label: "Kitchen"},
		{ID: "bedroom", Label: "Bedroom"},
		{ID: "living", Label: "Living Room"},
		{ID: "dining", Label: "Dining Room"},
		{ID: "bathroom", Label: "Bathroom"},
		{ID: "hallway", Label: "Hallway"},
		{ID: "other", Label: "Other"},
	}
}
