package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"pa_dog_license/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo mimics a single-table DynamoDB keyed by tracking_number.
type fakeDynamo struct {
	mu      sync.Mutex
	items   map[string]map[string]types.AttributeValue
	lastPut *dynamodb.PutItemInput
	lastGet *dynamodb.GetItemInput
	err     error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(item map[string]types.AttributeValue) string {
	if s, ok := item["tracking_number"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPut = in
	if f.err != nil {
		return nil, f.err
	}
	k := keyOf(in.Item)
	if _, exists := f.items[k]; exists && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastGet = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func TestApplicationDynamoRepository_AppendAndFind(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewApplicationDynamoRepository(ddb, "")

	in := sampleApplication("DOG-1749996000123-7")
	_, err := repo.Append(ctx, in)
	require.NoError(t, err)

	require.NotNil(t, ddb.lastPut)
	assert.Equal(t, DefaultApplicationsTableName, aws.ToString(ddb.lastPut.TableName))
	assert.Equal(t, "attribute_not_exists(#tn)", aws.ToString(ddb.lastPut.ConditionExpression))

	out, err := repo.FindByTrackingNumber(ctx, in.TrackingNumber)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.True(t, aws.ToBool(ddb.lastGet.ConsistentRead))
}

func TestApplicationDynamoRepository_NotFound(t *testing.T) {
	repo := NewApplicationDynamoRepository(newFakeDynamo(), "apps")

	out, err := repo.FindByTrackingNumber(context.Background(), "DOG-0-0")
	require.NoError(t, err)
	assert.Empty(t, out.TrackingNumber)
}

func TestApplicationDynamoRepository_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicationDynamoRepository(newFakeDynamo(), "apps")

	_, err := repo.Append(ctx, sampleApplication("DOG-1-1"))
	require.NoError(t, err)
	_, err = repo.Append(ctx, sampleApplication("DOG-1-1"))
	assert.ErrorIs(t, err, interfaces.ErrDuplicateTrackingNumber)
}

func TestApplicationDynamoRepository_ClientError(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	ddb.err = errors.New("throttled")
	repo := NewApplicationDynamoRepository(ddb, "apps")

	_, err := repo.Append(ctx, sampleApplication("DOG-1-1"))
	assert.EqualError(t, err, "throttled")
	_, err = repo.FindByTrackingNumber(ctx, "DOG-1-1")
	assert.EqualError(t, err, "throttled")
}

func TestApplicationDynamoRepository_CorruptNumber(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewApplicationDynamoRepository(ddb, "apps")

	_, err := repo.Append(ctx, sampleApplication("DOG-1-1"))
	require.NoError(t, err)

	for _, attr := range []string{"dog_age", "dog_weight", "license_fee"} {
		t.Run(attr, func(t *testing.T) {
			_, err := repo.Append(ctx, sampleApplication("DOG-1-"+attr))
			require.NoError(t, err)
			ddb.items["DOG-1-"+attr][attr] = &types.AttributeValueMemberS{Value: "three"}

			out, err := repo.FindByTrackingNumber(ctx, "DOG-1-"+attr)
			assert.ErrorContains(t, err, attr)
			assert.Empty(t, out.TrackingNumber)
		})
	}

	out, err := repo.FindByTrackingNumber(ctx, "DOG-1-1")
	require.NoError(t, err)
	assert.Equal(t, float64(3), out.DogAge)
}
