package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"paint_estimator/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const (
	DefaultProductsTableName = "paint_products"

	// DynamoDB rejects batch writes with more than 25 requests.
	maxBatchWriteItems = 25
	maxBatchAttempts   = 5
)

var ErrUnprocessedItems = errors.New("dynamodb left items unprocessed")

// ProductTableAPI is the subset of *dynamodb.Client used by ProductDynamoSource.
type ProductTableAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

type productItem struct {
	ID               string `dynamodbav:"id"`
	Position         int    `dynamodbav:"position"`
	Name             string `dynamodbav:"name"`
	Brand            string `dynamodbav:"brand"`
	Category         string `dynamodbav:"category"`
	PricePerLitre    string `dynamodbav:"price_per_litre"`
	CoveragePerLitre string `dynamodbav:"coverage_per_litre"`
	Description      string `dynamodbav:"description"`
}

// ProductDynamoSource reads the paint catalog from a DynamoDB table once at
// startup. The result feeds a ProductMemoryRepository; nothing is written
// back at request time.
//
// Table requirements:
//   - PK: id (string)
//
// position keeps the catalog order, which a Scan does not preserve.

type ProductDynamoSource struct {
	ddb       ProductTableAPI
	tableName string
}

func NewProductDynamoSource(ddb ProductTableAPI, tableName string) *ProductDynamoSource {
	if tableName == "" {
		tableName = DefaultProductsTableName
	}
	return &ProductDynamoSource{ddb: ddb, tableName: tableName}
}

// Load scans the whole table and returns the products in catalog order.
func (s *ProductDynamoSource) Load(ctx context.Context) ([]entities.PaintProduct, error) {
	var items []productItem
	p := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []productItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Position < items[j].Position })

	products := make([]entities.PaintProduct, 0, len(items))
	for _, it := range items {
		p, err := fromProductItem(it)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// Seed writes products to the table, overwriting items with the same id.
func (s *ProductDynamoSource) Seed(ctx context.Context, products []entities.PaintProduct) error {
	requests := make([]types.WriteRequest, 0, len(products))
	for i, p := range products {
		av, err := attributevalue.MarshalMap(toProductItem(i, p))
		if err != nil {
			return err
		}
		requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}

	for start := 0; start < len(requests); start += maxBatchWriteItems {
		end := min(start+maxBatchWriteItems, len(requests))
		if err := s.batchWrite(ctx, requests[start:end]); err != nil {
			return err
		}
	}
	return nil
}

// LoadOrSeed returns the table contents, seeding the table first when it is empty.
func (s *ProductDynamoSource) LoadOrSeed(ctx context.Context, seed []entities.PaintProduct) ([]entities.PaintProduct, error) {
	log := zap.S().Named("catalog")

	products, err := s.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products from %s: %w", s.tableName, err)
	}
	if len(products) > 0 {
		log.Infow("catalog loaded from dynamodb", "table", s.tableName, "products", len(products))
		return products, nil
	}

	log.Infow("catalog table empty, seeding", "table", s.tableName, "products", len(seed))
	if err := s.Seed(ctx, seed); err != nil {
		return nil, fmt.Errorf("seed products into %s: %w", s.tableName, err)
	}
	return append([]entities.PaintProduct(nil), seed...), nil
}

func (s *ProductDynamoSource) batchWrite(ctx context.Context, requests []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{s.tableName: requests}
	for attempt := 0; attempt < maxBatchAttempts; attempt++ {
		out, err := s.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems[s.tableName]) == 0 {
			return nil
		}
		pending = out.UnprocessedItems
	}
	return fmt.Errorf("%w: %d after %d attempts", ErrUnprocessedItems, len(pending[s.tableName]), maxBatchAttempts)
}

func toProductItem(position int, p entities.PaintProduct) productItem {
	return productItem{
		ID:               p.ID,
		Position:         position,
		Name:             p.Name,
		Brand:            p.Brand,
		Category:         string(p.Category),
		PricePerLitre:    floatToString(p.PricePerLitre),
		CoveragePerLitre: floatToString(p.CoveragePerLitre),
		Description:      p.Description,
	}
}

func fromProductItem(it productItem) (entities.PaintProduct, error) {
	price, err := strconv.ParseFloat(it.PricePerLitre, 64)
	if err != nil {
		return entities.PaintProduct{}, fmt.Errorf("product %s: price_per_litre: %w", it.ID, err)
	}
	coverage, err := strconv.ParseFloat(it.CoveragePerLitre, 64)
	if err != nil {
		return entities.PaintProduct{}, fmt.Errorf("product %s: coverage_per_litre: %w", it.ID, err)
	}
	return entities.PaintProduct{
		ID:               it.ID,
		Name:             it.Name,
		Brand:            it.Brand,
		Category:         entities.ProductCategory(it.Category),
		PricePerLitre:    price,
		CoveragePerLitre: coverage,
		Description:      it.Description,
	}, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
