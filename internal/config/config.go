package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store backend selectors. Exactly one backend is active per process;
// the two are never combined at runtime.
const (
	BackendMongo = "mongo"
	BackendNeo4j = "neo4j"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Store struct {
		// Backend selects the persistence substrate: "mongo" or "neo4j".
		Backend string `yaml:"backend" env:"STORE_BACKEND"`
	} `yaml:"store"`

	Mongo struct {
		URI      string `yaml:"uri" env:"MONGO_URI"`
		Database string `yaml:"database" env:"MONGO_DATABASE"`
	} `yaml:"mongo"`

	Neo4j struct {
		URI      string `yaml:"uri" env:"NEO4J_URI"`
		Username string `yaml:"username" env:"NEO4J_USER"`
		Password string `yaml:"password" env:"NEO4J_PASSWORD"`
	} `yaml:"neo4j"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// The file is optional; environment variables always win.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"

	config.Store.Backend = BackendMongo

	config.Mongo.URI = "mongodb://localhost:27017"
	config.Mongo.Database = "academix"

	config.Neo4j.URI = "neo4j://localhost:7687"
	config.Neo4j.Username = "neo4j"
	config.Neo4j.Password = "password"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch strings.ToLower(config.Store.Backend) {
	case BackendMongo:
		if config.Mongo.URI == "" {
			return fmt.Errorf("mongo URI is required for the mongo backend")
		}
		if config.Mongo.Database == "" {
			return fmt.Errorf("mongo database name is required for the mongo backend")
		}
	case BackendNeo4j:
		if config.Neo4j.URI == "" {
			return fmt.Errorf("neo4j URI is required for the neo4j backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q (want %q or %q)", config.Store.Backend, BackendMongo, BackendNeo4j)
	}

	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	return nil
}
