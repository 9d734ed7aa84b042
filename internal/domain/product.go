package domain

import "time"

// Product statuses.
const (
	ProductAvailable = "available"
	ProductArchived  = "archived"
)

type Product struct {
	ProductID string    `json:"id" dynamodbav:"product_id"`
	Title     string    `json:"title" dynamodbav:"title"`
	Price     int       `json:"price" dynamodbav:"price"` // minor currency units
	Count     int       `json:"count" dynamodbav:"count"`
	Status    string    `json:"status" dynamodbav:"status"`
	ImageKey  string    `json:"-" dynamodbav:"image_key"`
	ImageURL  string    `json:"image_url,omitempty" dynamodbav:"-"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}

// Available reports whether the product can currently be sold.
func (p *Product) Available() bool {
	return p.Status == ProductAvailable && p.Count > 0
}

type CreateProductRequest struct {
	Title string `json:"title" validate:"required,max=256"`
	Price int    `json:"price" validate:"required,gt=0"`
	Count int    `json:"count" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Title  *string `json:"title" validate:"omitempty,max=256"`
	Price  *int    `json:"price" validate:"omitempty,gt=0"`
	Count  *int    `json:"count" validate:"omitempty,gte=0"`
	Status *string `json:"status" validate:"omitempty,oneof=available archived"`
}
