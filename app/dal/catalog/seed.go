package catalog

// Seed returns the fixed local dataset used when no backend catalog is available.
func Seed() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Classic Denim Jacket",
			Description: "Timeless denim jacket with vintage wash and modern fit",
			Price:       89.99,
			ImageURL:    "https://images.pexels.com/photos/1040949/pexels-photo-1040949.jpeg",
			Category:    "fashion",
			Tags:        []string{"casual", "denim", "vintage", "versatile"},
		},
		{
			ID:          "2",
			Name:        "Silk Blouse",
			Description: "Elegant silk blouse perfect for professional and evening wear",
			Price:       129.99,
			ImageURL:    "https://images.pexels.com/photos/1065084/pexels-photo-1065084.jpeg",
			Category:    "fashion",
			Tags:        []string{"professional", "silk", "elegant", "formal"},
		},
		{
			ID:          "3",
			Name:        "Running Sneakers",
			Description: "High-performance running shoes with advanced cushioning",
			Price:       149.99,
			ImageURL:    "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg",
			Category:    "fashion",
			Tags:        []string{"athletic", "running", "comfort", "performance"},
		},
		{
			ID:          "4",
			Name:        "Wool Sweater",
			Description: "Cozy merino wool sweater for cold weather comfort",
			Price:       79.99,
			ImageURL:    "https://images.pexels.com/photos/1040949/pexels-photo-1040949.jpeg",
			Category:    "fashion",
			Tags:        []string{"warm", "wool", "comfort", "winter"},
		},
		{
			ID:          "5",
			Name:        "Summer Dress",
			Description: "Light and breezy summer dress with floral pattern",
			Price:       69.99,
			ImageURL:    "https://images.pexels.com/photos/1065084/pexels-photo-1065084.jpeg",
			Category:    "fashion",
			Tags:        []string{"summer", "casual", "floral", "light"},
		},
		{
			ID:          "6",
			Name:        "Leather Boots",
			Description: "Handcrafted leather boots with durable construction",
			Price:       199.99,
			ImageURL:    "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg",
			Category:    "fashion",
			Tags:        []string{"leather", "durable", "handcrafted", "boots"},
		},
		{
			ID:          "7",
			Name:        "Designer Handbag",
			Description: "Luxury handbag with premium materials and elegant design",
			Price:       299.99,
			ImageURL:    "https://images.pexels.com/photos/1040949/pexels-photo-1040949.jpeg",
			Category:    "fashion",
			Tags:        []string{"luxury", "designer", "handbag", "premium"},
		},
		{
			ID:          "8",
			Name:        "Athletic Shorts",
			Description: "Breathable athletic shorts for workout and casual wear",
			Price:       39.99,
			ImageURL:    "https://images.pexels.com/photos/1065084/pexels-photo-1065084.jpeg",
			Category:    "fashion",
			Tags:        []string{"athletic", "breathable", "casual", "shorts"},
		},
		{
			ID:          "9",
			Name:        "Wireless Earbuds",
			Description: "Premium wireless earbuds with noise cancellation",
			Price:       199.99,
			ImageURL:    "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
			Category:    "electronics",
			Tags:        []string{"wireless", "audio", "noise-cancellation", "premium"},
		},
		{
			ID:          "10",
			Name:        "Smart Watch",
			Description: "Advanced smartwatch with health monitoring and GPS",
			Price:       299.99,
			ImageURL:    "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg",
			Category:    "electronics",
			Tags:        []string{"smartwatch", "health", "GPS", "fitness"},
		},
		{
			ID:          "11",
			Name:        "Laptop Stand",
			Description: "Ergonomic aluminum laptop stand for better posture",
			Price:       49.99,
			ImageURL:    "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
			Category:    "electronics",
			Tags:        []string{"ergonomic", "aluminum", "laptop", "accessory"},
		},
		{
			ID:          "12",
			Name:        "Mechanical Keyboard",
			Description: "Premium mechanical keyboard with RGB backlighting",
			Price:       129.99,
			ImageURL:    "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg",
			Category:    "electronics",
			Tags:        []string{"mechanical", "RGB", "gaming", "typing"},
		},
		{
			ID:          "13",
			Name:        "Wireless Charger",
			Description: "Fast wireless charging pad compatible with all devices",
			Price:       29.99,
			ImageURL:    "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
			Category:    "electronics",
			Tags:        []string{"wireless", "charging", "fast", "compatible"},
		},
		{
			ID:          "14",
			Name:        "4K Webcam",
			Description: "Professional 4K webcam for streaming and video calls",
			Price:       149.99,
			ImageURL:    "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg",
			Category:    "electronics",
			Tags:        []string{"4K", "webcam", "streaming", "professional"},
		},
		{
			ID:          "15",
			Name:        "Bluetooth Speaker",
			Description: "Portable Bluetooth speaker with exceptional sound quality",
			Price:       89.99,
			ImageURL:    "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
			Category:    "electronics",
			Tags:        []string{"bluetooth", "portable", "speaker", "sound"},
		},
		{
			ID:          "16",
			Name:        "Phone Case",
			Description: "Protective phone case with wireless charging support",
			Price:       24.99,
			ImageURL:    "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg",
			Category:    "electronics",
			Tags:        []string{"protection", "wireless", "phone", "case"},
		},
		{
			ID:          "17",
			Name:        "Gaming Mouse",
			Description: "High-precision gaming mouse with customizable buttons",
			Price:       79.99,
			ImageURL:    "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
			Category:    "electronics",
			Tags:        []string{"gaming", "precision", "customizable", "mouse"},
		},
		{
			ID:          "18",
			Name:        "USB-C Hub",
			Description: "Multi-port USB-C hub with HDMI and SD card slots",
			Price:       59.99,
			ImageURL:    "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg",
			Category:    "electronics",
			Tags:        []string{"USB-C", "hub", "HDMI", "connectivity"},
		},
		{
			ID:          "19",
			Name:        "Monitor Light Bar",
			Description: "LED light bar designed for computer monitors",
			Price:       69.99,
			ImageURL:    "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
			Category:    "electronics",
			Tags:        []string{"LED", "monitor", "lighting", "ergonomic"},
		},
		{
			ID:          "20",
			Name:        "Cable Organizer",
			Description: "Magnetic cable organizer for desk cable management",
			Price:       19.99,
			ImageURL:    "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg",
			Category:    "electronics",
			Tags:        []string{"organization", "magnetic", "cable", "desk"},
		},
		{
			ID:          "21",
			Name:        "Vintage Sunglasses",
			Description: "Classic aviator sunglasses with UV protection",
			Price:       45.99,
			ImageURL:    "https://images.pexels.com/photos/1040949/pexels-photo-1040949.jpeg",
			Category:    "fashion",
			Tags:        []string{"vintage", "sunglasses", "aviator", "UV-protection"},
		},
		{
			ID:          "22",
			Name:        "Fitness Tracker",
			Description: "Advanced fitness tracker with heart rate monitoring",
			Price:       99.99,
			ImageURL:    "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg",
			Category:    "electronics",
			Tags:        []string{"fitness", "tracker", "heart-rate", "health"},
		},
	}
}
