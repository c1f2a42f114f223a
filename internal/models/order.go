package models

// OrderStatusReceived is the status reported for every newly created order
const OrderStatusReceived = "received"

// OrderItem is a line of an order. Title and price are snapshots taken by
// the client at order time.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Title     string  `json:"title" bson:"title"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Order represents a placed order
// Stored in the "order" collection
type Order struct {
	CustomerName    string      `json:"customer_name" bson:"customer_name"`
	CustomerEmail   string      `json:"customer_email" bson:"customer_email"`
	CustomerAddress string      `json:"customer_address" bson:"customer_address"`
	Items           []OrderItem `json:"items" bson:"items"`
	Subtotal        float64     `json:"subtotal" bson:"subtotal"`
	Shipping        float64     `json:"shipping" bson:"shipping"`
	Total           float64     `json:"total" bson:"total"`
}

// OrderItemRequest is one entry of CreateOrderRequest.Items
type OrderItemRequest struct {
	ProductID *string  `json:"product_id" validate:"required"`
	Title     *string  `json:"title" validate:"required"`
	Price     *float64 `json:"price" validate:"required,gte=0"`
	Quantity  *int     `json:"quantity" validate:"required,gte=1"`
}

// CreateOrderRequest is the body accepted by POST /api/orders.
// An empty items list is accepted; only its presence is required.
type CreateOrderRequest struct {
	CustomerName    *string            `json:"customer_name" validate:"required"`
	CustomerEmail   *string            `json:"customer_email" validate:"required"`
	CustomerAddress *string            `json:"customer_address" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,dive"`
	Subtotal        *float64           `json:"subtotal" validate:"required,gte=0"`
	Shipping        *float64           `json:"shipping" validate:"required,gte=0"`
	Total           *float64           `json:"total" validate:"required,gte=0"`
}

// Order converts a validated request into an Order
func (r CreateOrderRequest) Order() Order {
	items := make([]OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, OrderItem{
			ProductID: deref(it.ProductID),
			Title:     deref(it.Title),
			Price:     deref(it.Price),
			Quantity:  deref(it.Quantity),
		})
	}

	return Order{
		CustomerName:    deref(r.CustomerName),
		CustomerEmail:   deref(r.CustomerEmail),
		CustomerAddress: deref(r.CustomerAddress),
		Items:           items,
		Subtotal:        deref(r.Subtotal),
		Shipping:        deref(r.Shipping),
		Total:           deref(r.Total),
	}
}

// OrderReceipt is returned after an order is stored
type OrderReceipt struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
