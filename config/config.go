package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                 string            `mapstructure:"port"`
	UploadDir            string            `mapstructure:"upload_dir"`
	ArchiveUploads       bool              `mapstructure:"archive_uploads"`
	MongoDatabase        string            `mapstructure:"mongo_database"`
	AnalysisEndpoint     string            `mapstructure:"analysis_endpoint"`
	EngineTimeoutSeconds int               `mapstructure:"engine_timeout_seconds"`
	OCRLanguage          string            `mapstructure:"ocr_language"`
	SearchStoreConfig    SearchStoreConfig `mapstructure:"search_store_config"`
}

type SearchStoreConfig struct {
	Host   string `mapstructure:"host"`
	APIKey string `mapstructure:"WEAVIATE_APIKEY"` // Changed to match env var
}

// EngineTimeout is the per-analysis-engine deadline; an engine past it is
// treated as absent rather than failing the run.
func (c *Config) EngineTimeout() time.Duration {
	if c.EngineTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.EngineTimeoutSeconds) * time.Second
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("MONGODB_URI")
	v.BindEnv("WEAVIATE_APIKEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.OCRLanguage == "" {
		config.OCRLanguage = "eng"
	}

	return &config, nil
}
