package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	MongoURI          string `mapstructure:"MONGO_URI"`
	MongoDatabase     string `mapstructure:"MONGO_DATABASE"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisChatDB    int    `mapstructure:"REDIS_CHAT_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Session lifecycle knobs.
	SessionTTLMinutes     int `mapstructure:"SESSION_TTL_MINUTES"`
	SessionWarningMinutes int `mapstructure:"SESSION_WARNING_MINUTES"`
	SessionSweepSeconds   int `mapstructure:"SESSION_SWEEP_SECONDS"`

	// How long an availability save holds its per-creative lock.
	AvailabilitySaveLockMS int `mapstructure:"AVAILABILITY_SAVE_LOCK_MS"`

	// Business defaults for a creative with no saved schedule yet.
	DefaultDayStart  string `mapstructure:"DEFAULT_DAY_START"`
	DefaultDayEnd    string `mapstructure:"DEFAULT_DAY_END"`
	DefaultBufferMin int    `mapstructure:"DEFAULT_BUFFER_MIN"`

	// Cloudinary portfolio storage.
	CloudinaryURL string `mapstructure:"CLOUDINARY_URL"`

	// Firebase service account for push notifications.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
}

var AppConfig Config

func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "brandconnect")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_CHAT_DB", 2)
	viper.SetDefault("REDIS_QUEUE_DB", 3)
	viper.SetDefault("SESSION_TTL_MINUTES", 60)
	viper.SetDefault("SESSION_WARNING_MINUTES", 5)
	viper.SetDefault("SESSION_SWEEP_SECONDS", 60)
	viper.SetDefault("AVAILABILITY_SAVE_LOCK_MS", 5000)
	viper.SetDefault("DEFAULT_DAY_START", "09:00")
	viper.SetDefault("DEFAULT_DAY_END", "17:00")
	viper.SetDefault("DEFAULT_BUFFER_MIN", 0)
	viper.SetDefault("CLOUDINARY_URL", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")

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

// SessionTTL returns the lifetime of a freshly issued session.
func SessionTTL() time.Duration {
	return time.Duration(AppConfig.SessionTTLMinutes) * time.Minute
}

// SessionWarningThreshold returns how long before expiry the renewal
// warning is raised.
func SessionWarningThreshold() time.Duration {
	return time.Duration(AppConfig.SessionWarningMinutes) * time.Minute
}

// SessionSweepInterval returns the cadence of the expiry sweep.
func SessionSweepInterval() time.Duration {
	return time.Duration(AppConfig.SessionSweepSeconds) * time.Second
}
