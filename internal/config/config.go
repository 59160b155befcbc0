package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourceDynamoDB = "dynamodb"
)

type Config struct {
	Service svcConfig
	Pricing pricingConfig
	Catalog catalogConfig
	AWS     awsConfig
}

type svcConfig struct {
	Address         string        `envconfig:"PAINT_ESTIMATOR_ADDRESS" default:":8080"`
	LogLevel        string        `envconfig:"PAINT_ESTIMATOR_LOG_LEVEL" default:"info"`
	AllowedOrigins  []string      `envconfig:"PAINT_ESTIMATOR_ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"PAINT_ESTIMATOR_SHUTDOWN_TIMEOUT" default:"10s"`
}

// pricingConfig drives the shopping search gateway. An empty APIKey selects
// mock mode.
type pricingConfig struct {
	APIKey       string        `envconfig:"SERPAPI_KEY" default:""`
	BaseURL      string        `envconfig:"SERPAPI_BASE_URL" default:"https://serpapi.com/search.json"`
	Timeout      time.Duration `envconfig:"SERPAPI_TIMEOUT" default:"10s"`
	GoogleDomain string        `envconfig:"SERPAPI_GOOGLE_DOMAIN" default:"google.co.uk"`
	Country      string        `envconfig:"SERPAPI_COUNTRY" default:"uk"`
	Language     string        `envconfig:"SERPAPI_LANGUAGE" default:"en"`
	NumResults   int           `envconfig:"SERPAPI_NUM_RESULTS" default:"10"`
	MockDelay    time.Duration `envconfig:"PRICE_MOCK_DELAY" default:"800ms"`
}

type catalogConfig struct {
	Source        string `envconfig:"CATALOG_SOURCE" default:"static"`
	ProductsTable string `envconfig:"PRODUCTS_TABLE" default:"paint_products"`
}

// awsConfig is only read when the catalog is served from DynamoDB.
// Local DynamoDB does not validate credentials, but the SDK requires them.
type awsConfig struct {
	Region           string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID      string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey  string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT" default:""`
}

func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	cfg.Catalog.Source = strings.ToLower(strings.TrimSpace(cfg.Catalog.Source))
	switch cfg.Catalog.Source {
	case CatalogSourceStatic, CatalogSourceDynamoDB:
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.Catalog.Source)
	}
	if cfg.Pricing.NumResults <= 0 {
		return nil, fmt.Errorf("SERPAPI_NUM_RESULTS must be positive, got %d", cfg.Pricing.NumResults)
	}
	return cfg, nil
}

// MockPricing reports whether price lookups are served from synthetic data.
func (c *Config) MockPricing() bool {
	return strings.TrimSpace(c.Pricing.APIKey) == ""
}
