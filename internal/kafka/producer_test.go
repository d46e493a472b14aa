package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nguyentranbao-ct/deals-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducerDisabled(t *testing.T) {
	cfg := &config.Config{}

	producer, err := NewProducer(nil, cfg)
	require.NoError(t, err)

	// noop producer never touches a broker
	producer.Publish(context.Background(), QueryEvent{Query: "shirt"})
}

func TestQueryEventJSON(t *testing.T) {
	event := QueryEvent{
		Collection: "sale",
		Limit:      50,
		Factor:     2,
		Results:    12,
		DurationMs: 341,
		Timestamp:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"collection": "sale",
		"limit": 50,
		"factor": 2,
		"results": 12,
		"duration_ms": 341,
		"timestamp": "2025-06-01T12:00:00Z"
	}`, string(data))
}
