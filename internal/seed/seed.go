// Package seed carries the demo dataset: delivery areas, the product
// catalog, back-office users and a few historical orders so the admin
// views render non-empty on a fresh start.
package seed

import (
	"time"

	"github.com/google/uuid"

	"zomio-storefront/internal/domain"
)

// Areas are the delivery zones the storefront serves.
var Areas = []string{"Chittoor", "Tirupati", "Chandragiri", "Renigunta"}

// DefaultArea is preselected when the customer has not chosen a zone yet.
const DefaultArea = "Chittoor"

// Categories lists the catalog tags in display order.
var Categories = []string{"beverages", "snacks", "meals", "desserts", "breakfast", "condiments"}

// Products returns the demo catalog. IDs are generated per call, matching
// the original mock data which minted fresh ids at load time.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Traditional Rose Milk",
			Description: "Rich, creamy milk infused with authentic rose flavor, made with locally sourced ingredients. A refreshing drink for hot days!",
			Image:       "https://images.pexels.com/photos/6210774/pexels-photo-6210774.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       25,
			Category:    "beverages",
			Sizes:       []string{"200ml", "500ml"},
			Featured:    true,
			InStock:     true,
			Areas:       []string{"Chittoor", "Tirupati", "Chandragiri"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Spicy Samosa",
			Description: "Crispy triangle pastries filled with spiced potatoes, peas, and aromatic spices. Freshly made and served hot!",
			Image:       "https://images.pexels.com/photos/2474661/pexels-photo-2474661.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       15,
			Category:    "snacks",
			Sizes:       []string{"Regular (2 pcs)", "Family Pack (6 pcs)"},
			Featured:    true,
			InStock:     true,
			Areas:       []string{"Chittoor", "Tirupati", "Chandragiri", "Renigunta"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Mango Lassi",
			Description: "Refreshing yogurt-based drink blended with sweet mangoes and a hint of cardamom. Perfect for summer!",
			Image:       "https://images.pexels.com/photos/3625372/pexels-photo-3625372.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       40,
			Category:    "beverages",
			Sizes:       []string{"300ml", "500ml"},
			Featured:    true,
			InStock:     true,
			Areas:       []string{"Chittoor", "Tirupati"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Masala Chai",
			Description: "Traditional Indian spiced tea with ginger, cardamom, cinnamon and cloves. Served hot and fresh!",
			Image:       "https://images.pexels.com/photos/1793035/pexels-photo-1793035.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       20,
			Category:    "beverages",
			Sizes:       []string{"Small", "Large"},
			InStock:     true,
			Areas:       []string{"Chittoor", "Tirupati", "Renigunta", "Chandragiri"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Butter Chicken",
			Description: "Tender chicken cooked in a rich, tomato-based gravy with butter and cream. Served with naan bread.",
			Image:       "https://images.pexels.com/photos/7625056/pexels-photo-7625056.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       180,
			Category:    "meals",
			Sizes:       []string{"Single", "Family Pack"},
			Featured:    true,
			InStock:     true,
			Areas:       []string{"Chittoor", "Tirupati"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Mirchi Bajji",
			Description: "Spicy green chillies stuffed with a tangy filling, dipped in chickpea batter and deep fried until golden. A local favorite!",
			Image:       "https://images.pexels.com/photos/2338407/pexels-photo-2338407.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       20,
			Category:    "snacks",
			Sizes:       []string{"Regular (2 pcs)", "Large (4 pcs)"},
			InStock:     true,
			Areas:       []string{"Chittoor", "Tirupati", "Chandragiri"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Fresh Coconut Water",
			Description: "Natural, refreshing coconut water straight from local farms. Served chilled in its original form.",
			Image:       "https://images.pexels.com/photos/1162455/pexels-photo-1162455.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       30,
			Category:    "beverages",
			Sizes:       []string{"Regular"},
			InStock:     true,
			Areas:       []string{"Chittoor", "Tirupati", "Renigunta", "Chandragiri"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Veg Biryani",
			Description: "Fragrant basmati rice cooked with mixed vegetables, aromatic spices, and herbs. A delightful vegetarian option!",
			Image:       "https://images.pexels.com/photos/7625056/pexels-photo-7625056.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       120,
			Category:    "meals",
			Sizes:       []string{"Single", "Family Pack"},
			InStock:     true,
			Areas:       []string{"Chittoor", "Tirupati"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Kesar Kulfi",
			Description: "Traditional Indian ice cream made with condensed milk, flavored with saffron and garnished with pistachios.",
			Image:       "https://images.pexels.com/photos/2373520/pexels-photo-2373520.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       35,
			Category:    "desserts",
			Sizes:       []string{"Single", "Pack of 3"},
			Featured:    true,
			InStock:     true,
			Areas:       []string{"Chittoor", "Tirupati"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Aloo Paratha",
			Description: "Whole wheat flatbread stuffed with spiced potato filling, served with yogurt and pickle.",
			Image:       "https://images.pexels.com/photos/2474658/pexels-photo-2474658.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       50,
			Category:    "breakfast",
			Sizes:       []string{"Regular (2 pcs)", "Large (4 pcs)"},
			InStock:     true,
			Areas:       []string{"Chittoor", "Tirupati"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Mango Pickle",
			Description: "Tangy and spicy traditional mango pickle made with raw mangoes, oil, and aromatic spices. Perfect accompaniment for meals!",
			Image:       "https://images.pexels.com/photos/6541810/pexels-photo-6541810.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       70,
			Category:    "condiments",
			Sizes:       []string{"100g", "250g"},
			InStock:     true,
			Areas:       []string{"Chittoor", "Tirupati", "Chandragiri", "Renigunta"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Sweet Jalebi",
			Description: "Crispy, juicy, spiral-shaped sweet made by deep-frying batter and soaking in sugar syrup. A perfect sweet treat!",
			Image:       "https://images.pexels.com/photos/12737166/pexels-photo-12737166.jpeg?auto=compress&cs=tinysrgb&w=600",
			Price:       60,
			Category:    "desserts",
			Sizes:       []string{"250g", "500g"},
			Featured:    true,
			InStock:     true,
			Areas:       []string{"Chittoor", "Tirupati", "Chandragiri"},
		},
	}
}

// AdminUsers returns the static back-office credential list.
func AdminUsers() []domain.AdminUser {
	return []domain.AdminUser{
		{Username: "admin", Password: "admin123", Role: domain.RoleAdmin},
		{Username: "delivery", Password: "delivery123", Role: domain.RoleDelivery},
	}
}

// Orders builds a few historical orders over the given catalog. It expects
// the catalog returned by Products; a shorter catalog yields fewer orders.
func Orders(products []domain.Product) []domain.Order {
	if len(products) < 3 {
		return nil
	}
	now := time.Now()
	return []domain.Order{
		{
			ID: uuid.NewString(),
			Items: []domain.CartItem{
				{ID: uuid.NewString(), Product: products[0].Clone(), Quantity: 2, SelectedSize: "500ml"},
				{ID: uuid.NewString(), Product: products[1].Clone(), Quantity: 1, SelectedSize: "Regular (2 pcs)"},
			},
			CustomerInfo: domain.CustomerInfo{
				Name:    "Rajesh Kumar",
				Phone:   "9876543210",
				Address: "123 Main Road, Near Temple",
				Area:    "Chittoor",
			},
			TotalAmount:   products[0].Price*2 + products[1].Price,
			Status:        domain.StatusDelivered,
			PaymentMethod: domain.PaymentCOD,
			PaymentStatus: domain.PaymentCompleted,
			CreatedAt:     now.AddDate(0, 0, -3),
		},
		{
			ID: uuid.NewString(),
			Items: []domain.CartItem{
				{ID: uuid.NewString(), Product: products[2].Clone(), Quantity: 3, SelectedSize: "300ml"},
			},
			CustomerInfo: domain.CustomerInfo{
				Name:    "Priya Sharma",
				Phone:   "8765432109",
				Address: "45 Park Street, Apartment 3B",
				Area:    "Tirupati",
			},
			TotalAmount:   products[2].Price * 3,
			Status:        domain.StatusConfirmed,
			PaymentMethod: domain.PaymentUPI,
			PaymentStatus: domain.PaymentCompleted,
			CreatedAt:     now.AddDate(0, 0, -1),
		},
		{
			ID: uuid.NewString(),
			Items: []domain.CartItem{
				{ID: uuid.NewString(), Product: products[1].Clone(), Quantity: 2, SelectedSize: "Family Pack (6 pcs)"},
			},
			CustomerInfo: domain.CustomerInfo{
				Name:    "Suresh Babu",
				Phone:   "7654321098",
				Address: "8 Gandhi Road",
				Area:    "Chandragiri",
			},
			TotalAmount:   products[1].Price * 2,
			Status:        domain.StatusPending,
			PaymentMethod: domain.PaymentCOD,
			PaymentStatus: domain.PaymentPending,
			CreatedAt:     now,
		},
	}
}

// IsArea reports whether name is a configured delivery area.
func IsArea(name string) bool {
	for _, a := range Areas {
		if a == name {
			return true
		}
	}
	return false
}
