/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/primer/errors"
	"github.com/suparena/primer/registry"
	"github.com/suparena/primer/storagemodels"
)

const (
	attrPK         = "PK"
	attrSK         = "SK"
	attrID         = "ID"
	attrEntityType = "EntityType"

	// idWidth zero-pads ids in keys so lexicographic SK order is numeric order.
	idWidth = 10
)

// Client is the subset of the DynamoDB API the datastore needs.
type Client interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// DynamodbDataStore implements datastore.DataStore[T] by using AWS DynamoDB as the underlying data store.
type DynamodbDataStore[T any] struct {
	client    Client
	tableName string
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// NewClient creates a DynamoDB client from a loaded AWS configuration.
func NewClient(cfg aws.Config, optFns ...func(*sdk.Options)) *sdk.Client {
	return sdk.NewFromConfig(cfg, optFns...)
}

// NewDynamodbDataStore constructs a new DynamodbDataStore for type T.
// T must have an index map registered in the registry package.
func NewDynamodbDataStore[T any](client Client, tableName string) (*DynamodbDataStore[T], error) {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return nil, errors.ErrNoIndexMap
	}
	if strings.ContainsAny(indexMap[attrPK], "{}") {
		return nil, errors.NewValidationError(attrPK, "partition key must not contain macros")
	}
	if tableName == "" {
		return nil, errors.NewValidationError("tableName", "table name is required")
	}

	log.WithFields(log.Fields{
		"table": tableName,
		"type":  registry.TypeName[T](),
	}).Debug("dynamodb datastore initialized")

	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
	}, nil
}

// expandID replaces every macro in the PK/SK templates with the padded id.
func expandID(indexMap map[string]string, id int) map[string]string {
	padded := fmt.Sprintf("%0*d", idWidth, id)
	expanded := make(map[string]string, 2)
	for _, field := range []string{attrPK, attrSK} {
		expanded[field] = macroPattern.ReplaceAllString(indexMap[field], padded)
	}
	return expanded
}

// buildKeyFromExpanded builds a DynamoDB key from the expanded index map.
// It assumes that the expanded map has valid non-empty values for "PK" and "SK".
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded[attrPK]
	sk, okSK := expanded[attrSK]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, fmt.Errorf("expanded index map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		attrPK: &types.AttributeValueMemberS{Value: pk},
		attrSK: &types.AttributeValueMemberS{Value: sk},
	}, nil
}

func (d *DynamodbDataStore[T]) key(id int) (map[string]types.AttributeValue, error) {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return nil, errors.ErrNoIndexMap
	}
	return buildKeyFromExpanded(expandID(indexMap, id))
}

// GetOne retrieves a single item from DynamoDB by id.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, id int) (*T, error) {
	keyMap, err := d.key(id)
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError(registry.TypeName[T](), strconv.Itoa(id))
	}

	// Create a new instance of T and unmarshal the item into it.
	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores the entity under id, adding the PK/SK, ID and EntityType attributes.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, id int, entity T) error {
	keyMap, err := d.key(id)
	if err != nil {
		return fmt.Errorf("failed to build key: %w", err)
	}

	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	for k, v := range keyMap {
		av[k] = v
	}
	av[attrID] = &types.AttributeValueMemberN{Value: strconv.Itoa(id)}
	av[attrEntityType] = &types.AttributeValueMemberS{Value: registry.TypeName[T]()}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// List queries the type's partition. Items come back in SK order, which is id
// order; ids are allocated increasingly, so this is also insertion order.
func (d *DynamodbDataStore[T]) List(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.Item[T], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return nil, errors.ErrNoIndexMap
	}

	keyCond := "PK = :pkVal"
	input := &sdk.QueryInput{
		TableName:              &d.tableName,
		KeyConditionExpression: &keyCond,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pkVal": &types.AttributeValueMemberS{Value: indexMap[attrPK]},
		},
		ScanIndexForward: aws.Bool(true),
	}

	var items []storagemodels.Item[T]
	paginator := sdk.NewQueryPaginator(d.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}

		for _, raw := range page.Items {
			item, err := unmarshalItem[T](raw)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}

	return storagemodels.Page(items, params), nil
}

// Close is a no-op; the SDK client holds no resources that need releasing.
func (d *DynamodbDataStore[T]) Close() error {
	return nil
}

func unmarshalItem[T any](raw map[string]types.AttributeValue) (storagemodels.Item[T], error) {
	var item storagemodels.Item[T]

	idAttr, ok := raw[attrID]
	if !ok {
		return item, fmt.Errorf("missing %s attribute in item", attrID)
	}
	if err := attributevalue.Unmarshal(idAttr, &item.ID); err != nil {
		return item, fmt.Errorf("failed to unmarshal %s: %w", attrID, err)
	}
	if err := attributevalue.UnmarshalMap(raw, &item.Entity); err != nil {
		return item, fmt.Errorf("failed to unmarshal item %d: %w", item.ID, err)
	}
	return item, nil
}
