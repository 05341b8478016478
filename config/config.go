package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Geocoder GeocoderConfig
	Matching MatchingConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type GeocoderConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	CacheTTL  time.Duration
}

type MatchingConfig struct {
	DefaultRadiusKM float64
	MaxRadiusKM     float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	geocoderTimeout, err := time.ParseDuration(viper.GetString("GEOCODER_TIMEOUT"))
	if err != nil {
		geocoderTimeout = 10 * time.Second
	}

	geocoderCacheTTL, err := time.ParseDuration(viper.GetString("GEOCODER_CACHE_TTL"))
	if err != nil {
		geocoderCacheTTL = 24 * time.Hour
	}

	geocoderBaseURL := viper.GetString("GEOCODER_BASE_URL")
	if geocoderBaseURL == "" {
		geocoderBaseURL = "https://nominatim.openstreetmap.org"
	}

	geocoderUserAgent := viper.GetString("GEOCODER_USER_AGENT")
	if geocoderUserAgent == "" {
		geocoderUserAgent = "LifeLinkGH-Backend"
	}

	defaultRadius := viper.GetFloat64("MATCHING_DEFAULT_RADIUS_KM")
	if defaultRadius <= 0 {
		defaultRadius = 50.0
	}

	maxRadius := viper.GetFloat64("MATCHING_MAX_RADIUS_KM")
	if maxRadius <= 0 {
		maxRadius = 500.0
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Geocoder: GeocoderConfig{
			BaseURL:   geocoderBaseURL,
			UserAgent: geocoderUserAgent,
			Timeout:   geocoderTimeout,
			CacheTTL:  geocoderCacheTTL,
		},
		Matching: MatchingConfig{
			DefaultRadiusKM: defaultRadius,
			MaxRadiusKM:     maxRadius,
		},
	}

	return config, nil
}
