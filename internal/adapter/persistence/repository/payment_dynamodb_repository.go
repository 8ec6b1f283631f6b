package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const DefaultPaymentsTableName = "payments"

type paymentItem struct {
	ID                string                 `dynamodbav:"id"`
	ExternalReference string                 `dynamodbav:"external_reference"`
	ProductID         string                 `dynamodbav:"product_id"`
	ProductName       string                 `dynamodbav:"product_name"`
	Method            string                 `dynamodbav:"payment_method"`
	Status            string                 `dynamodbav:"status"`
	StatusDetail      string                 `dynamodbav:"status_detail,omitempty"`
	AmountCents       int64                  `dynamodbav:"amount_cents"`
	Quantity          int                    `dynamodbav:"quantity"`
	Installments      int                    `dynamodbav:"installments"`
	CustomerName      string                 `dynamodbav:"customer_name"`
	CustomerEmail     string                 `dynamodbav:"customer_email"`
	CustomerDocument  string                 `dynamodbav:"customer_document"`
	Date              string                 `dynamodbav:"date"`
	UpdatedAt         string                 `dynamodbav:"updated_at"`
	ApprovedAt        string                 `dynamodbav:"approved_at,omitempty"`
	MPPayload         map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw      string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, provider payment id)
type PaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
	log       *zap.Logger
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoDBAPI, tableName string, log *zap.Logger) *PaymentDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentsTableName
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now, log: log}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	r.log.Debug("[payment][repository] record created", zap.String("payment_id", p.ID))
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentItem(it), nil
}

// List scans the table without the raw provider payloads.
func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.PaymentRecord, error) {
	var (
		records  []entities.PaymentRecord
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
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			it.MPPayload, it.MPPayloadRaw = nil, ""
			records = append(records, fromPaymentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return records, nil
}

// UpdateStatus overwrites status, detail and the raw provider payload. The
// first transition to approved stamps approved_at; later updates keep it.
// An unknown id returns a zero record.
func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus, statusDetail string, providerResponse json.RawMessage) (entities.PaymentRecord, error) {
	now := formatTime(r.now())
	expr := "SET #status = :status, status_detail = :detail, mp_payload_raw = :raw, updated_at = :now"
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
		":detail": &types.AttributeValueMemberS{Value: statusDetail},
		":raw":    &types.AttributeValueMemberS{Value: string(providerResponse)},
		":now":    &types.AttributeValueMemberS{Value: now},
	}
	if status == entities.PaymentStatusApproved {
		expr += ", approved_at = if_not_exists(approved_at, :now)"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String(expr),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.PaymentRecord{}, nil
		}
		return entities.PaymentRecord{}, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.PaymentRecord) paymentItem {
	return paymentItem{
		ID:                p.ID,
		ExternalReference: p.ExternalReference,
		ProductID:         p.ProductID,
		ProductName:       p.ProductName,
		Method:            string(p.Method),
		Status:            string(p.Status),
		StatusDetail:      p.StatusDetail,
		AmountCents:       p.Amount.Cents(),
		Quantity:          p.Quantity,
		Installments:      p.Installments,
		CustomerName:      p.CustomerName,
		CustomerEmail:     p.CustomerEmail,
		CustomerDocument:  p.CustomerDocument,
		Date:              formatTime(p.Date),
		UpdatedAt:         formatTime(p.UpdatedAt),
		ApprovedAt:        formatTimePtr(p.ApprovedAt),
		MPPayload:         p.MPPayload,
		MPPayloadRaw:      string(p.MPPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.PaymentRecord {
	rec := entities.PaymentRecord{
		ID:                it.ID,
		ExternalReference: it.ExternalReference,
		ProductID:         it.ProductID,
		ProductName:       it.ProductName,
		Method:            entities.PaymentMethod(it.Method),
		Status:            entities.PaymentStatus(it.Status),
		StatusDetail:      it.StatusDetail,
		Amount:            entities.Money(it.AmountCents),
		Quantity:          it.Quantity,
		Installments:      it.Installments,
		CustomerName:      it.CustomerName,
		CustomerEmail:     it.CustomerEmail,
		CustomerDocument:  it.CustomerDocument,
		Date:              parseTime(it.Date),
		UpdatedAt:         parseTime(it.UpdatedAt),
		ApprovedAt:        parseTimePtr(it.ApprovedAt),
		MPPayload:         it.MPPayload,
	}
	if it.MPPayloadRaw != "" {
		rec.MPPayloadRaw = json.RawMessage(it.MPPayloadRaw)
	}
	return rec
}
