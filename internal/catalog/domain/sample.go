package domain

import "github.com/shopspring/decimal"

// SampleProducts returns the built-in food store catalog.
func SampleProducts() []Product {
	return []Product{
		{
			ID:          "p1",
			Name:        "Margherita Pizza",
			Description: "Fresh tomatoes, basil, mozzarella",
			Price:       decimal.RequireFromString("9.99"),
			ImageRef:    "https://images.unsplash.com/photo-1604908177522-5a32279b6f3f?q=80&w=800&auto=format&fit=crop&ixlib=rb-4.0.3&s=1",
		},
		{
			ID:          "p2",
			Name:        "Spicy Chicken Wrap",
			Description: "Grilled chicken, spicy mayo, lettuce",
			Price:       decimal.RequireFromString("7.50"),
			ImageRef:    "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?q=80&w=800&auto=format&fit=crop&ixlib=rb-4.0.3&s=2",
		},
		{
			ID:          "p3",
			Name:        "Caesar Salad",
			Description: "Crisp romaine, parmesan, croutons",
			Price:       decimal.RequireFromString("6.25"),
			ImageRef:    "https://images.unsplash.com/photo-1552332386-f8dd00dc0bde?q=80&w=800&auto=format&fit=crop&ixlib=rb-4.0.3&s=3",
		},
		{
			ID:          "p4",
			Name:        "Chocolate Brownie",
			Description: "Rich chocolate with walnut",
			Price:       decimal.RequireFromString("3.99"),
			ImageRef:    "https://images.unsplash.com/photo-1604908176960-7b9a7a4f2f6f?q=80&w=800&auto=format&fit=crop&ixlib=rb-4.0.3&s=4",
		},
		{
			ID:          "p5",
			Name:        "Avocado Toast",
			Description: "Smashed avo, lemon, chilli flakes",
			Price:       decimal.RequireFromString("5.75"),
			ImageRef:    "https://images.unsplash.com/photo-1551183053-bf91a1d81141?q=80&w=800&auto=format&fit=crop&ixlib=rb-4.0.3&s=5",
		},
	}
}
