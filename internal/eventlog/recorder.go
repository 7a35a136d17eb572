// Package eventlog records request/outcome events for the AI flows.
// The store is append-only; nothing in the request path reads it back.
package eventlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	pkPrefixEvent = "EVENT#"
	ttlDuration   = 30 * 24 * time.Hour // 30-day TTL
)

// Sink is the observability boundary the flows write to. A failing sink
// must never affect flow results; callers log and drop the error.
type Sink interface {
	Record(ctx context.Context, label string, payload map[string]any) error
}

// dynamodbAPI is the minimal DynamoDB interface required by Recorder.
// Defined here for testability.
type dynamodbAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Recorder appends flow events to a DynamoDB table, partitioned by day.
type Recorder struct {
	api       dynamodbAPI
	tableName string
}

// New creates a new Recorder.
func New(api dynamodbAPI, tableName string) (*Recorder, error) {
	if api == nil {
		return nil, errors.New("eventlog: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("eventlog: table name must not be empty")
	}
	return &Recorder{api: api, tableName: tableName}, nil
}

// eventPK returns the partition key for the day the event occurred.
func eventPK(ts time.Time) string {
	return pkPrefixEvent + ts.UTC().Format("2006-01-02")
}

// eventSK returns a sort key that keeps same-day events chronologically
// ordered and unique.
func eventSK(ts time.Time, id string) string {
	return ts.UTC().Format(time.RFC3339Nano) + "#" + id
}

// ttlValue returns a Unix timestamp 30 days in the future.
func ttlValue(ts time.Time) int64 {
	return ts.Add(ttlDuration).Unix()
}

// Record appends one event. The payload is stored as a JSON document.
func (r *Recorder) Record(ctx context.Context, label string, payload map[string]any) error {
	if strings.TrimSpace(label) == "" {
		return errors.New("eventlog: label must not be empty")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("eventlog: marshal payload: %w", err)
	}

	now := time.Now()
	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"PK":      &types.AttributeValueMemberS{Value: eventPK(now)},
			"SK":      &types.AttributeValueMemberS{Value: eventSK(now, uuid.NewString())},
			"label":   &types.AttributeValueMemberS{Value: label},
			"payload": &types.AttributeValueMemberS{Value: string(body)},
			"ttl":     &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", ttlValue(now))},
		},
	})
	if err != nil {
		return fmt.Errorf("eventlog: Record: %w", err)
	}
	return nil
}

// Nop is a Sink that discards every event. Valid substitute in tests and
// local runs without a table.
type Nop struct{}

func (Nop) Record(context.Context, string, map[string]any) error { return nil }
