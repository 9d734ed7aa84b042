package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-shop-api/internal/domain"
)

// PurchaseRepo provides typed DynamoDB operations for the purchases table and
// the transactional commit that spans purchases, products and customers.
type PurchaseRepo struct {
	client         *dynamodb.Client
	tableName      string
	productsTable  string
	customersTable string
}

func NewPurchaseRepo(client *dynamodb.Client, tableName, productsTable, customersTable string) *PurchaseRepo {
	return &PurchaseRepo{
		client:         client,
		tableName:      tableName,
		productsTable:  productsTable,
		customersTable: customersTable,
	}
}

// Commit atomically decrements product stock, debits the customer balance and
// writes the purchase record. Condition expressions re-check stock and balance
// so a concurrent purchase cannot oversell or overdraw: if either check fails
// the whole transaction is cancelled and an error is returned.
func (r *PurchaseRepo) Commit(ctx context.Context, p *domain.Purchase) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal purchase: %w", err)
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(r.productsTable),
					Key:                 strKey("product_id", p.ProductID),
					UpdateExpression:    aws.String("SET #c = #c - :q"),
					ConditionExpression: aws.String("#c >= :q AND #s = :avail"),
					ExpressionAttributeNames: map[string]string{
						"#c": fieldCount,
						"#s": fieldStatus,
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":q":     numVal(p.Quantity),
						":avail": &types.AttributeValueMemberS{Value: domain.ProductAvailable},
					},
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(r.customersTable),
					Key:                 strKey("customer_id", p.CustomerID),
					UpdateExpression:    aws.String("SET #b = #b - :t"),
					ConditionExpression: aws.String("#b >= :t"),
					ExpressionAttributeNames: map[string]string{
						"#b": fieldBalance,
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":t": numVal(p.Total),
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item:      item,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("commit purchase: %w", err)
	}
	return nil
}

// Get returns (nil, nil) when the purchase does not exist.
func (r *PurchaseRepo) Get(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("purchase_id", purchaseID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}
	var p domain.Purchase
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByCustomer queries the customer_id-created_at GSI, newest first.
func (r *PurchaseRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Purchase, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("customer_id-created_at-index"),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	var purchases []domain.Purchase
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}
