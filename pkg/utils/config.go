package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	ImageStore ImageStoreConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	// AccessSecret and RefreshSecret must be distinct so a leaked
	// access secret cannot mint refresh tokens.
	AccessSecret       string
	RefreshSecret      string
	AccessExpiryHours  int
	RefreshExpiryHours int
}

type ImageStoreConfig struct {
	BaseURL        string
	APIKey         string
	UploadFolder   string
	TimeoutSeconds int
	MaxRetries     int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_ACCESS_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("IMAGE_STORE_TIMEOUT_SECONDS", 15)
	viper.SetDefault("IMAGE_STORE_MAX_RETRIES", 2)
	viper.SetDefault("IMAGE_STORE_FOLDER", "products")
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			AccessSecret:       viper.GetString("JWT_SECRET"),
			RefreshSecret:      viper.GetString("JWT_REFRESH_SECRET"),
			AccessExpiryHours:  viper.GetInt("JWT_ACCESS_EXPIRY_HOURS"),
			RefreshExpiryHours: viper.GetInt("JWT_REFRESH_EXPIRY_HOURS"),
		},
		ImageStore: ImageStoreConfig{
			BaseURL:        viper.GetString("IMAGE_STORE_URL"),
			APIKey:         viper.GetString("IMAGE_STORE_API_KEY"),
			UploadFolder:   viper.GetString("IMAGE_STORE_FOLDER"),
			TimeoutSeconds: viper.GetInt("IMAGE_STORE_TIMEOUT_SECONDS"),
			MaxRetries:     viper.GetInt("IMAGE_STORE_MAX_RETRIES"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate rejects configs that cannot produce a working server.
func (c *Config) validate() error {
	if c.JWT.AccessSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWT.RefreshSecret == "" {
		return fmt.Errorf("JWT_REFRESH_SECRET is required")
	}
	if c.JWT.AccessSecret == c.JWT.RefreshSecret {
		return fmt.Errorf("JWT_SECRET and JWT_REFRESH_SECRET must differ")
	}
	if c.JWT.AccessExpiryHours <= 0 || c.JWT.RefreshExpiryHours <= 0 {
		return fmt.Errorf("JWT expiry hours must be positive")
	}
	if c.JWT.AccessExpiryHours >= c.JWT.RefreshExpiryHours {
		return fmt.Errorf("JWT_ACCESS_EXPIRY_HOURS must be shorter than JWT_REFRESH_EXPIRY_HOURS")
	}
	return nil
}
