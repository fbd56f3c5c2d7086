// Package seed はカタログの初期データ（固定の参照データセット）を持つ。
// IDを固定しているので、何度シードしても同じ1セットに収束する。
package seed

import "app/internal/domain/model"

// Restaurants はシード対象の店舗一覧を返す。
func Restaurants() []model.Restaurant {
	return []model.Restaurant{
		{
			ID:              "r-bella-napoli",
			Name:            "Bella Napoli",
			Cuisine:         "Italian",
			Rating:          4.7,
			DeliveryTimeMin: 30,
			DeliveryFee:     2.99,
			ImageURL:        "https://images.unsplash.com/photo-1513104890138-7c749659a591",
			Address:         "12 Via Roma, London",
		},
		{
			ID:              "r-sakura-sushi",
			Name:            "Sakura Sushi",
			Cuisine:         "Japanese",
			Rating:          4.5,
			DeliveryTimeMin: 25,
			DeliveryFee:     3.49,
			ImageURL:        "https://images.unsplash.com/photo-1579871494447-9811cf80d66c",
			Address:         "88 Cherry Lane, London",
		},
		{
			ID:              "r-spice-route",
			Name:            "Spice Route",
			Cuisine:         "Indian",
			Rating:          4.3,
			DeliveryTimeMin: 35,
			DeliveryFee:     1.99,
			ImageURL:        "https://images.unsplash.com/photo-1585937421612-70a008356fbe",
		},
	}
}

// MenuItems はシード対象のメニュー一覧を返す。
func MenuItems() []model.MenuItem {
	return []model.MenuItem{
		{
			ID:           "m-margherita",
			RestaurantID: "r-bella-napoli",
			Name:         "Margherita Pizza",
			Price:        9.50,
			Description:  "San Marzano tomatoes, mozzarella, fresh basil",
			ImageURL:     "https://images.unsplash.com/photo-1574071318508-1cdbab80d002",
		},
		{
			ID:           "m-diavola",
			RestaurantID: "r-bella-napoli",
			Name:         "Diavola Pizza",
			Price:        11.00,
			Description:  "Spicy salami, chilli oil, mozzarella",
		},
		{
			ID:           "m-carbonara",
			RestaurantID: "r-bella-napoli",
			Name:         "Spaghetti Carbonara",
			Price:        12.50,
			Description:  "Guanciale, pecorino, egg yolk",
		},
		{
			ID:           "m-tiramisu",
			RestaurantID: "r-bella-napoli",
			Name:         "Tiramisu",
			Price:        5.50,
		},
		{
			ID:           "m-salmon-nigiri",
			RestaurantID: "r-sakura-sushi",
			Name:         "Salmon Nigiri (4pc)",
			Price:        6.80,
			ImageURL:     "https://images.unsplash.com/photo-1553621042-f6e147245754",
		},
		{
			ID:           "m-dragon-roll",
			RestaurantID: "r-sakura-sushi",
			Name:         "Dragon Roll",
			Price:        10.20,
			Description:  "Eel, avocado, cucumber, tobiko",
		},
		{
			ID:           "m-miso-soup",
			RestaurantID: "r-sakura-sushi",
			Name:         "Miso Soup",
			Price:        2.90,
		},
		{
			ID:           "m-butter-chicken",
			RestaurantID: "r-spice-route",
			Name:         "Butter Chicken",
			Price:        8.90,
			Description:  "Creamy tomato curry with naan",
			ImageURL:     "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398",
		},
		{
			ID:           "m-lamb-biryani",
			RestaurantID: "r-spice-route",
			Name:         "Lamb Biryani",
			Price:        10.50,
			Description:  "Basmati rice, saffron, raita on the side",
		},
		{
			ID:           "m-garlic-naan",
			RestaurantID: "r-spice-route",
			Name:         "Garlic Naan",
			Price:        2.50,
		},
	}
}
