package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Demo admin credentials for the dashboard login.
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking parameters.
	OpenHour          int `mapstructure:"OPEN_HOUR"`
	CloseHour         int `mapstructure:"CLOSE_HOUR"`
	BookingWindowDays int `mapstructure:"BOOKING_WINDOW_DAYS"`
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`

	// Outbound email.
	SendgridAPIKey string `mapstructure:"SENDGRID_API_KEY"`
	EmailFrom      string `mapstructure:"EMAIL_FROM"`
	EmailFromName  string `mapstructure:"EMAIL_FROM_NAME"`

	// Cloudinary attachment storage.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ADMIN_EMAIL", "admin@nafisreflexology.com")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("OPEN_HOUR", 9)
	viper.SetDefault("CLOSE_HOUR", 18)
	viper.SetDefault("BOOKING_WINDOW_DAYS", 30)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("EMAIL_FROM", "bookings@nafisreflexology.com")
	viper.SetDefault("EMAIL_FROM_NAME", "Nafis Reflexology")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
