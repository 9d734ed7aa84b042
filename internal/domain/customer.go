package domain

import "time"

// Customer is the purchasing profile attached one-to-one to a user account.
// Balance is kept in the same minor units as Product.Price.
type Customer struct {
	CustomerID string    `json:"id" dynamodbav:"customer_id"`
	UserID     string    `json:"user_id" dynamodbav:"user_id"`
	Email      string    `json:"email" dynamodbav:"email"`
	Balance    int       `json:"balance" dynamodbav:"balance"`
	CreatedAt  time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt  time.Time `json:"updated" dynamodbav:"updated_at"`
}

// CanBuyMaxOf returns the largest quantity of p the customer can afford.
func (c *Customer) CanBuyMaxOf(p *Product) int {
	if p.Price <= 0 {
		return 0
	}
	return c.Balance / p.Price
}

type CreditCustomerRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}
