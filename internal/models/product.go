package models

// Product represents a saree listed in the store
// Stored in the "product" collection
type Product struct {
	Title       string  `json:"title" bson:"title"`
	Description *string `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Category    string  `json:"category" bson:"category"`
	InStock     bool    `json:"in_stock" bson:"in_stock"`
	ImageURL    *string `json:"image_url" bson:"image_url"`
	Color       *string `json:"color" bson:"color"`
	Fabric      *string `json:"fabric" bson:"fabric"`
}

// CreateProductRequest is the body accepted by POST /api/products.
// Pointer fields distinguish a missing value from a zero value.
type CreateProductRequest struct {
	Title       *string  `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    *string  `json:"category" validate:"required"`
	InStock     *bool    `json:"in_stock"`
	ImageURL    *string  `json:"image_url"`
	Color       *string  `json:"color"`
	Fabric      *string  `json:"fabric"`
}

// Product converts a validated request into a Product, applying defaults
func (r CreateProductRequest) Product() Product {
	p := Product{
		Title:       deref(r.Title),
		Description: r.Description,
		Price:       deref(r.Price),
		Category:    deref(r.Category),
		InStock:     true,
		ImageURL:    r.ImageURL,
		Color:       r.Color,
		Fabric:      r.Fabric,
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	return p
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
