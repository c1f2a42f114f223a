package service

import "github.com/saree-store/backend/internal/models"

// sampleProducts are inserted the first time the product collection is listed empty
func sampleProducts() []models.Product {
	return []models.Product{
		sample(
			"Kanjivaram Silk Saree",
			"Handwoven zari border, traditional elegance.",
			129.0, "Silk",
			"https://images.unsplash.com/photo-1617727553252-6589b89e0ee1?q=80&w=1200&auto=format&fit=crop",
			"Maroon", "Silk",
		),
		sample(
			"Banarasi Brocade Saree",
			"Rich motifs with intricate gold threadwork.",
			149.0, "Banarasi",
			"https://images.unsplash.com/photo-1610030469975-179a5c1a7109?q=80&w=1200&auto=format&fit=crop",
			"Emerald", "Silk",
		),
		sample(
			"Chiffon Party Wear Saree",
			"Lightweight drape with subtle shimmer.",
			89.0, "Chiffon",
			"https://images.unsplash.com/photo-1503342217505-b0a15cf70489?q=80&w=1200&auto=format&fit=crop",
			"Rose Gold", "Chiffon",
		),
		sample(
			"Cotton Handloom Saree",
			"Breathable comfort with artisanal charm.",
			69.0, "Cotton",
			"https://images.unsplash.com/photo-1512436991641-6745cdb1723f?q=80&w=1200&auto=format&fit=crop",
			"Indigo", "Cotton",
		),
		sample(
			"Georgette Designer Saree",
			"Flowy silhouette with sequin accents.",
			109.0, "Georgette",
			"https://images.unsplash.com/photo-1515378791036-0648a3ef77b2?q=80&w=1200&auto=format&fit=crop",
			"Black", "Georgette",
		),
	}
}

func sample(title, description string, price float64, category, imageURL, color, fabric string) models.Product {
	return models.Product{
		Title:       title,
		Description: &description,
		Price:       price,
		Category:    category,
		InStock:     true,
		ImageURL:    &imageURL,
		Color:       &color,
		Fabric:      &fabric,
	}
}
