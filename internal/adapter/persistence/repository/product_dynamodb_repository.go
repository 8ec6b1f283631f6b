package repository

import (
	"cmp"
	"context"
	"slices"
	"strconv"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const DefaultProductsTableName = "products"

type productItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	PriceCents  int64  `dynamodbav:"price_cents"`
	// Price is the display string ("R$ 45,00") used when price_cents is absent.
	Price    string `dynamodbav:"price,omitempty"`
	Image    string `dynamodbav:"image,omitempty"`
	Category string `dynamodbav:"category,omitempty"`
}

// ProductDynamoRepository reads the catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ProductDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	log       *zap.Logger
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoDBAPI, tableName string, log *zap.Logger) *ProductDynamoRepository {
	if tableName == "" {
		tableName = DefaultProductsTableName
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductDynamoRepository{ddb: ddb, tableName: tableName, log: log}
}

// List scans the whole table. The catalog is small.
func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	var (
		products []entities.Product
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
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			products = append(products, r.fromItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sortProducts(products)
	return products, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return r.fromItem(it), nil
}

func (r *ProductDynamoRepository) fromItem(it productItem) entities.Product {
	price := entities.Money(it.PriceCents)
	if price == 0 && it.Price != "" {
		parsed, err := entities.ParseMoney(it.Price)
		if err != nil {
			r.log.Warn("[product][repository] unreadable price",
				zap.String("product_id", it.ID), zap.String("price", it.Price))
		}
		price = parsed
	}
	return entities.Product{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       price,
		Image:       it.Image,
		Category:    it.Category,
	}
}

func sortProducts(products []entities.Product) {
	slices.SortStableFunc(products, func(a, b entities.Product) int {
		return compareIDs(a.ID, b.ID)
	})
}

// compareIDs orders numerically when both ids are numbers, else lexically.
func compareIDs(a, b string) int {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return cmp.Compare(ai, bi)
	}
	return cmp.Compare(a, b)
}
