package repository

import (
	"context"
	"errors"
	"testing"

	"paint_estimator/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductTable keeps items in memory and pages scans pageSize at a time.
type fakeProductTable struct {
	items       []map[string]types.AttributeValue
	pageSize    int
	scanErr     error
	unprocessed int
	batchCalls  int
}

func (f *fakeProductTable) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	start := 0
	if in.ExclusiveStartKey != nil {
		var key struct {
			Offset int `dynamodbav:"offset"`
		}
		if err := attributevalue.UnmarshalMap(in.ExclusiveStartKey, &key); err != nil {
			return nil, err
		}
		start = key.Offset
	}
	size := f.pageSize
	if size <= 0 {
		size = len(f.items)
	}
	end := min(start+size, len(f.items))

	out := &dynamodb.ScanOutput{Items: f.items[start:end]}
	if end < len(f.items) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"offset": &types.AttributeValueMemberN{Value: itoa(end)},
		}
	}
	return out, nil
}

func (f *fakeProductTable) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.batchCalls++
	out := &dynamodb.BatchWriteItemOutput{UnprocessedItems: map[string][]types.WriteRequest{}}
	for table, reqs := range in.RequestItems {
		for _, r := range reqs {
			if f.unprocessed > 0 {
				f.unprocessed--
				out.UnprocessedItems[table] = append(out.UnprocessedItems[table], r)
				continue
			}
			f.items = append(f.items, r.PutRequest.Item)
		}
	}
	return out, nil
}

func itoa(v int) string {
	return floatToString(float64(v))
}

func TestProductDynamoSource_SeedThenLoad(t *testing.T) {
	table := &fakeProductTable{pageSize: 3}
	src := NewProductDynamoSource(table, "")

	require.NoError(t, src.Seed(context.Background(), SeedProducts()))
	assert.Equal(t, 1, table.batchCalls)

	// Scan order is not guaranteed; position restores catalog order.
	table.items[0], table.items[6] = table.items[6], table.items[0]

	products, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SeedProducts(), products)
}

func TestProductDynamoSource_SeedChunksAndRetries(t *testing.T) {
	table := &fakeProductTable{unprocessed: 2}
	src := NewProductDynamoSource(table, "products")

	products := make([]entities.PaintProduct, 0, 30)
	for i := 0; i < 30; i++ {
		p := SeedProducts()[0]
		p.ID = "wall_" + itoa(i)
		products = append(products, p)
	}

	require.NoError(t, src.Seed(context.Background(), products))
	assert.Len(t, table.items, 30)
	// 25 + retry of 2 unprocessed + 5
	assert.Equal(t, 3, table.batchCalls)
}

func TestProductDynamoSource_SeedGivesUp(t *testing.T) {
	table := &fakeProductTable{unprocessed: 1000}
	src := NewProductDynamoSource(table, "products")

	err := src.Seed(context.Background(), SeedProducts())
	assert.True(t, errors.Is(err, ErrUnprocessedItems))
	assert.Equal(t, maxBatchAttempts, table.batchCalls)
}

func TestProductDynamoSource_LoadOrSeed(t *testing.T) {
	t.Run("empty table is seeded", func(t *testing.T) {
		table := &fakeProductTable{}
		src := NewProductDynamoSource(table, "products")

		products, err := src.LoadOrSeed(context.Background(), SeedProducts())
		require.NoError(t, err)
		assert.Len(t, products, 7)
		assert.Len(t, table.items, 7)
	})

	t.Run("existing items win over seed", func(t *testing.T) {
		table := &fakeProductTable{}
		src := NewProductDynamoSource(table, "products")
		require.NoError(t, src.Seed(context.Background(), SeedProducts()[:2]))

		products, err := src.LoadOrSeed(context.Background(), SeedProducts())
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("scan error", func(t *testing.T) {
		table := &fakeProductTable{scanErr: errors.New("unreachable")}
		src := NewProductDynamoSource(table, "products")

		_, err := src.LoadOrSeed(context.Background(), SeedProducts())
		assert.ErrorContains(t, err, "unreachable")
	})
}

func TestProductDynamoSource_LoadRejectsBadNumbers(t *testing.T) {
	item, err := attributevalue.MarshalMap(productItem{ID: "x", PricePerLitre: "cheap", CoveragePerLitre: "10"})
	require.NoError(t, err)
	table := &fakeProductTable{items: []map[string]types.AttributeValue{item}}

	_, err = NewProductDynamoSource(table, "products").Load(context.Background())
	assert.ErrorContains(t, err, "price_per_litre")
}
