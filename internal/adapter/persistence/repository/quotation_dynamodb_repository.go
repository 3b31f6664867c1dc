package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"sheetfab/internal/domain/entities"
	"sheetfab/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	quotationsStatusIndex   = "status-index"
	quotationsCustomerIndex = "customer_id-index"
)

type quotationItem struct {
	DocID        string `dynamodbav:"doc_id"`
	CustomerID   string `dynamodbav:"customer_id,omitempty"`
	CustomerName string `dynamodbav:"customer_name"`
	Product      string `dynamodbav:"product"`

	ThicknessMM float64 `dynamodbav:"thickness_mm"`
	WidthMM     float64 `dynamodbav:"width_mm"`
	LengthMM    float64 `dynamodbav:"length_mm"`
	Quantity    int     `dynamodbav:"quantity"`
	ColorCount  int     `dynamodbav:"color_count"`

	WeightKG     float64 `dynamodbav:"weight_kg"`
	UnitRate     float64 `dynamodbav:"unit_rate"`
	PrintingCost float64 `dynamodbav:"printing_cost"`
	TaxAmount    float64 `dynamodbav:"tax_amount"`
	TotalPrice   float64 `dynamodbav:"total_price"`

	Status          string `dynamodbav:"status"`
	SalesAgent      string `dynamodbav:"sales_agent,omitempty"`
	ApprovedBy      string `dynamodbav:"approved_by,omitempty"`
	OverrideApplied bool   `dynamodbav:"override_applied"`

	LostReason string `dynamodbav:"lost_reason,omitempty"`
	LostNote   string `dynamodbav:"lost_note,omitempty"`

	InputWeightKG float64 `dynamodbav:"input_weight_kg,omitempty"`
	WastePercent  float64 `dynamodbav:"waste_percent,omitempty"`

	PaymentStatus string `dynamodbav:"payment_status"`
	PaidAt        string `dynamodbav:"paid_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	Version   int64  `dynamodbav:"version"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: doc_id (string)
//   - GSI: status-index (PK: status)
//   - GSI: customer_id-index (PK: customer_id)
//
// Every write is conditional: Create requires the doc_id to be free, Update
// requires the stored version to match the caller's read. A lost race
// surfaces as interfaces.ErrConflictRetry.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client, tableName string) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "doc_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, interfaces.ErrConflictRetry
		}
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, docID string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"doc_id": &types.AttributeValueMemberS{Value: docID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) ListByStatus(ctx context.Context, status entities.QuotationStatus) ([]entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalQuotations(out.Items)
}

func (r *QuotationDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsCustomerIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalQuotations(out.Items)
}

// ListCreatedOn scans for quotations created on the given UTC day. The table
// is small (a few thousand rows a year), so a filtered scan is acceptable for
// the end-of-day report.
func (r *QuotationDynamoRepository) ListCreatedOn(ctx context.Context, day time.Time) ([]entities.Quotation, error) {
	prefix := day.UTC().Format("2006-01-02")
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("begins_with(created_at, :day)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":day": &types.AttributeValueMemberS{Value: prefix},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalQuotations(out.Items)
}

// Update replaces the record's fields guarded by a version compare-and-swap.
// The returned entity carries the incremented version.
func (r *QuotationDynamoRepository) Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	expected := q.Version
	q.Version = expected + 1

	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "doc_id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: formatInt(expected)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, interfaces.ErrConflictRetry
		}
		return entities.Quotation{}, err
	}
	return q, nil
}

func unmarshalQuotations(raw []map[string]types.AttributeValue) ([]entities.Quotation, error) {
	items := make([]entities.Quotation, 0, len(raw))
	for _, m := range raw {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuotationItem(it))
	}
	return items, nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	it := quotationItem{
		DocID:           q.DocID,
		CustomerID:      q.CustomerID,
		CustomerName:    q.CustomerName,
		Product:         q.Product,
		ThicknessMM:     q.ThicknessMM,
		WidthMM:         q.WidthMM,
		LengthMM:        q.LengthMM,
		Quantity:        q.Quantity,
		ColorCount:      q.ColorCount,
		WeightKG:        q.WeightKG,
		UnitRate:        q.UnitRate,
		PrintingCost:    q.PrintingCost,
		TaxAmount:       q.TaxAmount,
		TotalPrice:      q.TotalPrice,
		Status:          string(q.Status),
		SalesAgent:      q.SalesAgent,
		ApprovedBy:      q.ApprovedBy,
		OverrideApplied: q.OverrideApplied,
		LostReason:      q.LostReason,
		LostNote:        q.LostNote,
		InputWeightKG:   q.InputWeightKG,
		WastePercent:    q.WastePercent,
		PaymentStatus:   string(q.PaymentStatus),
		CreatedAt:       q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       q.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Version:         q.Version,
	}
	if q.PaidAt != nil {
		it.PaidAt = q.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	q := entities.Quotation{
		DocID:           it.DocID,
		CustomerID:      it.CustomerID,
		CustomerName:    it.CustomerName,
		Product:         it.Product,
		ThicknessMM:     it.ThicknessMM,
		WidthMM:         it.WidthMM,
		LengthMM:        it.LengthMM,
		Quantity:        it.Quantity,
		ColorCount:      it.ColorCount,
		WeightKG:        it.WeightKG,
		UnitRate:        it.UnitRate,
		PrintingCost:    it.PrintingCost,
		TaxAmount:       it.TaxAmount,
		TotalPrice:      it.TotalPrice,
		Status:          entities.QuotationStatus(it.Status),
		SalesAgent:      it.SalesAgent,
		ApprovedBy:      it.ApprovedBy,
		OverrideApplied: it.OverrideApplied,
		LostReason:      it.LostReason,
		LostNote:        it.LostNote,
		InputWeightKG:   it.InputWeightKG,
		WastePercent:    it.WastePercent,
		PaymentStatus:   entities.PaymentStatus(it.PaymentStatus),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
		Version:         it.Version,
	}
	if it.PaidAt != "" {
		if paidAt, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			q.PaidAt = &paidAt
		}
	}
	return q
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
