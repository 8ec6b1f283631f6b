package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const DefaultStockTableName = "stock"

type stockItem struct {
	ProductID    string `dynamodbav:"product_id"`
	Available    int    `dynamodbav:"available_quantity"`
	Reserved     int    `dynamodbav:"reserved_quantity"`
	Sold         int    `dynamodbav:"sold_quantity"`
	ReorderLevel int    `dynamodbav:"reorder_level"`
	LastUpdated  string `dynamodbav:"last_updated"`
}

// StockDynamoRepository keeps one inventory row per product.
//
// Table requirements:
//   - PK: product_id (string)
type StockDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	initial   int
	now       func() time.Time
	log       *zap.Logger
}

var _ interfaces.IStockRepository = (*StockDynamoRepository)(nil)

func NewStockDynamoRepository(ddb DynamoDBAPI, tableName string, log *zap.Logger) *StockDynamoRepository {
	if tableName == "" {
		tableName = DefaultStockTableName
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &StockDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		initial:   entities.DefaultInitialStock,
		now:       time.Now,
		log:       log,
	}
}

// Get reads the stock row, seeding it on first access.
func (r *StockDynamoRepository) Get(ctx context.Context, productID string) (entities.Stock, error) {
	s, found, err := r.get(ctx, productID)
	if err != nil || found {
		return s, err
	}

	seed := entities.NewStock(productID, r.initial)
	seed.UpdatedAt = r.now()
	av, err := attributevalue.MarshalMap(toStockItem(seed))
	if err != nil {
		return entities.Stock{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(product_id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			// seeded concurrently
			s, _, err = r.get(ctx, productID)
			return s, err
		}
		return entities.Stock{}, err
	}
	r.log.Info("[stock][repository] stock initialized",
		zap.String("product_id", productID), zap.Int("available", r.initial))
	return seed, nil
}

func (r *StockDynamoRepository) get(ctx context.Context, productID string) (entities.Stock, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stockKey(productID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Stock{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Stock{}, false, nil
	}
	var it stockItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Stock{}, false, err
	}
	return fromStockItem(it), true, nil
}

func (r *StockDynamoRepository) Reserve(ctx context.Context, productID string, quantity int) (entities.Stock, error) {
	if _, err := r.Get(ctx, productID); err != nil {
		return entities.Stock{}, err
	}
	return r.update(ctx, productID, quantity,
		"SET available_quantity = available_quantity - :qty, reserved_quantity = reserved_quantity + :qty, last_updated = :now",
		"available_quantity >= :qty")
}

func (r *StockDynamoRepository) ConfirmSale(ctx context.Context, productID string, quantity int) (entities.Stock, error) {
	return r.update(ctx, productID, quantity,
		"SET reserved_quantity = reserved_quantity - :qty, sold_quantity = sold_quantity + :qty, last_updated = :now",
		"reserved_quantity >= :qty")
}

func (r *StockDynamoRepository) Release(ctx context.Context, productID string, quantity int) (entities.Stock, error) {
	return r.update(ctx, productID, quantity,
		"SET available_quantity = available_quantity + :qty, reserved_quantity = reserved_quantity - :qty, last_updated = :now",
		"reserved_quantity >= :qty")
}

func (r *StockDynamoRepository) Restock(ctx context.Context, productID string, quantity int) (entities.Stock, error) {
	if _, err := r.Get(ctx, productID); err != nil {
		return entities.Stock{}, err
	}
	return r.update(ctx, productID, quantity,
		"SET available_quantity = available_quantity + :qty, last_updated = :now",
		"attribute_exists(product_id)")
}

func (r *StockDynamoRepository) update(ctx context.Context, productID string, quantity int, expr, cond string) (entities.Stock, error) {
	if quantity < 1 {
		return entities.Stock{}, fmt.Errorf("invalid stock quantity %d", quantity)
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stockKey(productID),
		UpdateExpression:    aws.String(expr),
		ConditionExpression: aws.String(cond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qty": &types.AttributeValueMemberN{Value: strconv.Itoa(quantity)},
			":now": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Stock{}, fmt.Errorf("%w: product %s", interfaces.ErrInsufficientStock, productID)
		}
		return entities.Stock{}, err
	}

	var it stockItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Stock{}, err
	}
	s := fromStockItem(it)
	r.log.Debug("[stock][repository] stock updated",
		zap.String("product_id", productID),
		zap.Int("available", s.Available),
		zap.Int("reserved", s.Reserved),
		zap.Int("sold", s.Sold))
	return s, nil
}

func (r *StockDynamoRepository) List(ctx context.Context) ([]entities.Stock, error) {
	var (
		stock    []entities.Stock
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it stockItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			stock = append(stock, fromStockItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	slices.SortFunc(stock, func(a, b entities.Stock) int {
		return compareIDs(a.ProductID, b.ProductID)
	})
	return stock, nil
}

func stockKey(productID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"product_id": &types.AttributeValueMemberS{Value: productID},
	}
}

func toStockItem(s entities.Stock) stockItem {
	return stockItem{
		ProductID:    s.ProductID,
		Available:    s.Available,
		Reserved:     s.Reserved,
		Sold:         s.Sold,
		ReorderLevel: s.ReorderLevel,
		LastUpdated:  formatTime(s.UpdatedAt),
	}
}

func fromStockItem(it stockItem) entities.Stock {
	return entities.Stock{
		ProductID:    it.ProductID,
		Available:    it.Available,
		Reserved:     it.Reserved,
		Sold:         it.Sold,
		ReorderLevel: it.ReorderLevel,
		UpdatedAt:    parseTime(it.LastUpdated),
	}
}
