package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tourwise/assets-go/pkg/asset"
)

// Settings holds everything the subsystem reads from the environment,
// once, at process start.
type Settings struct {
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	Bucket           string
	AccountID        string
	PublicDomain     string
	UseSSL           bool
	OpTimeout        time.Duration
}

// Load reads settings from a .env file (if present) and environment
// variables. A missing required value is an error so callers degrade
// to "storage unavailable" instead of running half-configured.
func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("STORAGE_USE_SSL", true)
	viper.SetDefault("STORAGE_OP_TIMEOUT", 30)

	for _, key := range []string{"STORAGE_ENDPOINT", "STORAGE_ACCESS_KEY", "STORAGE_SECRET_KEY", "STORAGE_BUCKET"} {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}
	// URLs need one authoritative domain form: a custom public domain,
	// or the canonical bucket/account endpoint.
	if !viper.IsSet("STORAGE_PUBLIC_DOMAIN") && !viper.IsSet("STORAGE_ACCOUNT_ID") {
		return nil, fmt.Errorf("either STORAGE_PUBLIC_DOMAIN or STORAGE_ACCOUNT_ID is required")
	}

	return &Settings{
		StorageEndpoint:  viper.GetString("STORAGE_ENDPOINT"),
		StorageAccessKey: viper.GetString("STORAGE_ACCESS_KEY"),
		StorageSecretKey: viper.GetString("STORAGE_SECRET_KEY"),
		Bucket:           viper.GetString("STORAGE_BUCKET"),
		AccountID:        viper.GetString("STORAGE_ACCOUNT_ID"),
		PublicDomain:     viper.GetString("STORAGE_PUBLIC_DOMAIN"),
		UseSSL:           viper.GetBool("STORAGE_USE_SSL"),
		OpTimeout:        time.Duration(viper.GetInt("STORAGE_OP_TIMEOUT")) * time.Second,
	}, nil
}

// Resolver derives the URL domain configuration from the settings.
func (s *Settings) Resolver() asset.ResolverConfig {
	return asset.ResolverConfig{
		PublicDomain: s.PublicDomain,
		Bucket:       s.Bucket,
		AccountID:    s.AccountID,
	}
}
