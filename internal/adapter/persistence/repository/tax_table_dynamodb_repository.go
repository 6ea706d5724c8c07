package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"nbtech_pricing/internal/domain/entities"
	"nbtech_pricing/internal/domain/taxtable"
	"nbtech_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTaxTablesTableName = "tax_tables"

var ErrTaxTableAlreadyExists = errors.New("tax table already exists")

// dynamoAPI is the subset of *dynamodb.Client used here.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type taxTableItem struct {
	Year            string             `dynamodbav:"year"`
	DefaultRate     float64            `dynamodbav:"default_rate"`
	PISRate         float64            `dynamodbav:"pis_rate"`
	COFINSRate      float64            `dynamodbav:"cofins_rate"`
	InternalRates   map[string]float64 `dynamodbav:"internal_rates"`
	HighRateOrigins []string           `dynamodbav:"high_rate_origins"`
	UpdatedAt       string             `dynamodbav:"updated_at"`
}

// TaxTableDynamoRepository reads versioned regional tax tables from DynamoDB.
//
// Table requirements:
//   - PK: year (string)
//
// A table is written once per year; a new legal rate means a new year item,
// never an in-place edit of one already used for quotes.
type TaxTableDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ITaxTableRepository = (*TaxTableDynamoRepository)(nil)

// NewTaxTableDynamoRepository uses tableName, or TAX_TABLES_TABLE when empty.
func NewTaxTableDynamoRepository(ddb *dynamodb.Client, tableName string) *TaxTableDynamoRepository {
	return newTaxTableDynamoRepository(ddb, taxTablesTableName(tableName))
}

func taxTablesTableName(name string) string {
	if name != "" {
		return name
	}
	if v := os.Getenv("TAX_TABLES_TABLE"); v != "" {
		return v
	}
	return defaultTaxTablesTableName
}

func newTaxTableDynamoRepository(ddb dynamoAPI, tableName string) *TaxTableDynamoRepository {
	return &TaxTableDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TaxTableDynamoRepository) GetByYear(ctx context.Context, year string) (taxtable.Table, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"year": &types.AttributeValueMemberS{Value: year},
		},
	})
	if err != nil {
		return taxtable.Table{}, err
	}
	if len(out.Item) == 0 {
		return taxtable.Table{}, nil
	}

	var it taxTableItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return taxtable.Table{}, err
	}
	return fromTaxTableItem(it)
}

// Create stores a new year. It fails with ErrTaxTableAlreadyExists when the
// year is already present.
func (r *TaxTableDynamoRepository) Create(ctx context.Context, t taxtable.Table) error {
	av, err := attributevalue.MarshalMap(toTaxTableItem(t, time.Now().UTC()))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#year)"),
		ExpressionAttributeNames: map[string]string{
			"#year": "year",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("%w: %s", ErrTaxTableAlreadyExists, t.Year())
		}
		return err
	}
	return nil
}

func toTaxTableItem(t taxtable.Table, now time.Time) taxTableItem {
	def := t.Definition()
	rates := make(map[string]float64, len(def.InternalRates))
	for uf, rate := range def.InternalRates {
		rates[string(uf)] = rate
	}
	origins := make([]string, 0, len(def.HighRateOrigins))
	for _, uf := range def.HighRateOrigins {
		origins = append(origins, string(uf))
	}
	return taxTableItem{
		Year:            def.Year,
		DefaultRate:     def.DefaultRate,
		PISRate:         def.PISRate,
		COFINSRate:      def.COFINSRate,
		InternalRates:   rates,
		HighRateOrigins: origins,
		UpdatedAt:       now.Format(time.RFC3339Nano),
	}
}

// fromTaxTableItem rejects malformed items through taxtable.New.
func fromTaxTableItem(it taxTableItem) (taxtable.Table, error) {
	rates := make(map[entities.UF]float64, len(it.InternalRates))
	for uf, rate := range it.InternalRates {
		rates[entities.UF(uf)] = rate
	}
	origins := make([]entities.UF, 0, len(it.HighRateOrigins))
	for _, uf := range it.HighRateOrigins {
		origins = append(origins, entities.UF(uf))
	}
	return taxtable.New(taxtable.Definition{
		Year:            it.Year,
		DefaultRate:     it.DefaultRate,
		PISRate:         it.PISRate,
		COFINSRate:      it.COFINSRate,
		InternalRates:   rates,
		HighRateOrigins: origins,
	})
}
