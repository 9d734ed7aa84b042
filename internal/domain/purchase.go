package domain

import "time"

// Purchase is the immutable record written when a buy completes.
type Purchase struct {
	PurchaseID string    `json:"id" dynamodbav:"purchase_id"`
	CustomerID string    `json:"customer_id" dynamodbav:"customer_id"`
	ProductID  string    `json:"product_id" dynamodbav:"product_id"`
	Quantity   int       `json:"quantity" dynamodbav:"quantity"`
	UnitPrice  int       `json:"unit_price" dynamodbav:"unit_price"`
	Total      int       `json:"total" dynamodbav:"total"`
	CreatedAt  time.Time `json:"created" dynamodbav:"created_at"`
}

type BuyProductRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}
