package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StoreDynamoDB = "dynamodb"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// memory | redis | dynamodb
	StoreBackend string        `envconfig:"STORE_BACKEND" default:"memory"`
	StoreDelay   time.Duration `envconfig:"STORE_DELAY" default:"0s"` // simulated backend latency

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"ap-northeast-2"`
	DynamoTableName    string `envconfig:"DYNAMO_TABLE_NAME" default:"shopgenius-store"`
	DynamoEndpoint     string `envconfig:"DYNAMO_ENDPOINT"` // DynamoDB Local
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY"`

	KafkaEnabled       bool   `envconfig:"KAFKA_ENABLED" default:"false"`
	KafkaBrokers       string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	KafkaOrderTopic    string `envconfig:"KAFKA_ORDER_TOPIC" default:"order-events"`
	KafkaStatusTopic   string `envconfig:"KAFKA_STATUS_TOPIC" default:"order-status-events"`
	KafkaConsumerGroup string `envconfig:"KAFKA_CONSUMER_GROUP" default:"shopgenius-storefront"`

	GenAIAPIKey          string        `envconfig:"API_KEY"`
	GenAIGenerationModel string        `envconfig:"GENAI_GENERATION_MODEL" default:"gemini-2.5-flash"`
	GenAIChatModel       string        `envconfig:"GENAI_CHAT_MODEL" default:"gemini-2.5-flash"`
	GenAITimeout         time.Duration `envconfig:"GENAI_TIMEOUT" default:"30s"`

	ListingDefaultStock int `envconfig:"LISTING_DEFAULT_STOCK" default:"10"`

	TLS TLS
}

// TLS is read from TLS_ENABLED and TLS_SPIRE_SOCKET_PATH.
type TLS struct {
	Enabled    bool   `envconfig:"ENABLED" default:"false"`
	SocketPath string `envconfig:"SPIRE_SOCKET_PATH" default:"unix:///run/spire/sockets/agent.sock"`
}

// Load reads an optional .env file at path, then the environment.
// Values already set in the environment win over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreMemory, StoreRedis, StoreDynamoDB:
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend)
	}
	if c.ListingDefaultStock < 0 {
		return fmt.Errorf("LISTING_DEFAULT_STOCK must be non-negative, got %d", c.ListingDefaultStock)
	}
	if c.StoreDelay < 0 {
		return fmt.Errorf("STORE_DELAY must be non-negative, got %s", c.StoreDelay)
	}
	return nil
}

func (c *Config) Brokers() []string {
	var out []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
