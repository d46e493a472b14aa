package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server  ServerConfig  `envPrefix:"SERVER_"`
	Shopify ShopifyConfig `envPrefix:"SHOPIFY_"`
	Kafka   KafkaConfig   `envPrefix:"KAFKA_"`
}

type ServerConfig struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	CORSPattern string `env:"CORS_PATTERN" envDefault:".*"`
}

// ShopifyConfig configures the storefront page-fetch client. The domain and
// token are not required at startup: a request against an unconfigured client
// fails with a configuration error instead of crashing the process.
type ShopifyConfig struct {
	StoreDomain     string `env:"STORE_DOMAIN"`
	StorefrontToken string `env:"STOREFRONT_TOKEN"`
	APIVersion      string `env:"API_VERSION" envDefault:"2024-07"`
}

// StoreBaseURL is the public storefront base, used to build product URLs for
// nodes without an onlineStoreUrl.
func (c ShopifyConfig) StoreBaseURL() string {
	return fmt.Sprintf("https://%s", c.StoreDomain)
}

// GraphQLEndpoint is the Storefront API endpoint for the configured version.
func (c ShopifyConfig) GraphQLEndpoint() string {
	return fmt.Sprintf("https://%s/api/%s/graphql.json", c.StoreDomain, c.APIVersion)
}

type KafkaConfig struct {
	Enabled bool     `env:"ENABLED" envDefault:"false"`
	Brokers []string `env:"BROKERS" envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"deals-queries"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}
	return cfg
}
