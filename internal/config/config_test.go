package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "2024-07", cfg.Shopify.APIVersion)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "deals-queries", cfg.Kafka.Topic)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SHOPIFY_STORE_DOMAIN", "store.example.com")
	t.Setenv("SHOPIFY_STOREFRONT_TOKEN", "shpat-test")
	t.Setenv("SHOPIFY_API_VERSION", "2025-01")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "store.example.com", cfg.Shopify.StoreDomain)
	assert.Equal(t, "shpat-test", cfg.Shopify.StorefrontToken)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
}

func TestShopifyURLHelpers(t *testing.T) {
	cfg := ShopifyConfig{StoreDomain: "store.example.com", APIVersion: "2024-07"}

	assert.Equal(t, "https://store.example.com", cfg.StoreBaseURL())
	assert.Equal(t, "https://store.example.com/api/2024-07/graphql.json", cfg.GraphQLEndpoint())
}
