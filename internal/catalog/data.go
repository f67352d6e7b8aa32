package catalog

import "checkcheck/internal/model"

// BusinessLocation is the base location; orders delivered there carry no fee.
const BusinessLocation = "East Legon (Boundary Road)"

// BusinessPhones are the contact numbers shown on the storefront.
var BusinessPhones = []string{"0549537343", "0206819878"}

var menuItems = []model.MenuItem{
	{
		ID:          "regular",
		Name:        "Regular",
		Description: "CheckCheck Rice, Chicken, Special Salad Mix, Eggs",
		Price:       60,
		Image:       "https://images.unsplash.com/photo-1512058564366-18510be2db19?w=600&q=80",
		Category:    "Meals",
	},
	{
		ID:          "loaded",
		Name:        "Loaded",
		Description: "More CheckCheck Rice, Larger Chicken, Special Salad Mix, Eggs & Sausage",
		Price:       80,
		Image:       "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?w=600&q=80",
		Category:    "Meals",
	},
	{
		ID:          "odogwu",
		Name:        "Odogwu",
		Description: "More CheckCheck Rice, 2 Larger Chickens, Special Salad Mix, Eggs & Sausage",
		Price:       120,
		Image:       "https://images.unsplash.com/photo-1598515214211-89d3c73ae83b?w=600&q=80",
		Category:    "Meals",
	},
}

var deliveryZones = []model.DeliveryZone{
	{Name: "Abeka", Price: 35.00},
	{Name: "Ablekuma", Price: 50.00},
	{Name: "Abokobi", Price: 40.00},
	{Name: "Achimota", Price: 35.00},
	{Name: "Adenta Frafraha", Price: 35.00},
	{Name: "Adenta Housing", Price: 30.00},
	{Name: "Adenta SDA", Price: 30.00},
	{Name: "Adjimganor", Price: 25.00},
	{Name: "Agboba", Price: 35.00},
	{Name: "Accra", Price: 40.00},
	{Name: "Airport", Price: 35.00},
	{Name: "Airport Residential", Price: 35.00},
	{Name: "Ashiaman", Price: 55.00},
	{Name: "Ashiyie", Price: 40.00},
	{Name: "Boteyman", Price: 40.00},
	{Name: "Burma Camp", Price: 40.00},
	{Name: "Cantoment", Price: 40.00},
	{Name: "Chantang", Price: 40.00},
	{Name: "Chorkor", Price: 50.00},
	{Name: "Circle", Price: 50.00},
	{Name: "Dansoman", Price: 45.00},
	{Name: "Darkuman", Price: 40.00},
	{Name: "Dewena", Price: 60.00},
	{Name: "Dodowa", Price: 60.00},
	{Name: "Dome", Price: 40.00},
	{Name: "Dzorwulu", Price: 30.00},
	{Name: "East Airport", Price: 35.00},
	{Name: "East Legon", Price: 20.00},
	{Name: "East Legon (Boundary Road)", Price: 0.00},
	{Name: "East Legon Hills", Price: 30.00},
	{Name: "Gbawe", Price: 50.00},
	{Name: "Kaneshie", Price: 40.00},
	{Name: "Kwabenya", Price: 50.00},
	{Name: "Kwashieman", Price: 40.00},
	{Name: "Labadi", Price: 40.00},
	{Name: "Labone", Price: 40.00},
	{Name: "LA", Price: 45.00},
	{Name: "Lakeside C1–C6", Price: 35.00},
	{Name: "Lakeside C7+", Price: 40.00},
	{Name: "Lakeside Hill", Price: 35.00},
	{Name: "Lapaz", Price: 20.00},
	{Name: "Legon Campus", Price: 35.00},
	{Name: "Lekma", Price: 25.00},
	{Name: "Madina", Price: 50.00},
	{Name: "Mamprobi", Price: 35.00},
	{Name: "Manet", Price: 40.00},
	{Name: "Mile 7", Price: 40.00},
	{Name: "Nima", Price: 40.00},
	{Name: "North Legon", Price: 30.00},
	{Name: "Nungua", Price: 40.00},
	{Name: "Ofankor", Price: 45.00},
	{Name: "Ogbojo", Price: 25.00},
	{Name: "Osu", Price: 40.00},
	{Name: "Oyibi", Price: 40.00},
	{Name: "Pantang", Price: 35.00},
	{Name: "Pig Farm", Price: 35.00},
	{Name: "Pokuase", Price: 50.00},
	{Name: "Sakumono", Price: 45.00},
	{Name: "Santou", Price: 35.00},
	{Name: "School Junction", Price: 25.00},
	{Name: "Sowutuom", Price: 45.00},
	{Name: "Spintex", Price: 40.00},
	{Name: "Taifa", Price: 40.00},
	{Name: "Tema", Price: 55.00},
	{Name: "Tema Comm. 18", Price: 45.00},
	{Name: "Tesano", Price: 35.00},
	{Name: "Teshie", Price: 40.00},
	{Name: "Tseaaddo", Price: 40.00},
}
