package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultTaskServiceURL    = "http://task:3031"
	defaultProjectServiceURL = "http://project:3040"
	defaultProfileServiceURL = "http://profile:3030"
	defaultDownstreamTimeout = 10 * time.Second
	defaultProfileCacheTTL   = 5 * time.Minute
)

type Config struct {
	AppPort                 string
	TaskServiceURL          string
	ProjectServiceURL       string
	ProfileServiceURL       string
	RecurrenceServiceURL    string
	DownstreamTimeout       time.Duration
	IdentifierMode          string
	ProjectSecondaryLookups bool
	TrustedProxies          []string
	RedisURL                string
	ProfileCacheTTL         time.Duration
	KafkaBrokers            []string
	KafkaTaskTopic          string
	TranslationFolder       string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	taskURL := getEnv("TASK_SERVICE_URL", defaultTaskServiceURL)

	return &Config{
		AppPort:                 getEnv("APP_PORT", "8080"),
		TaskServiceURL:          taskURL,
		ProjectServiceURL:       getEnv("PROJECT_SERVICE_URL", defaultProjectServiceURL),
		ProfileServiceURL:       getEnv("PROFILE_SERVICE_URL", defaultProfileServiceURL),
		RecurrenceServiceURL:    getEnv("RECURRENCE_SERVICE_URL", taskURL),
		DownstreamTimeout:       getDuration("DOWNSTREAM_TIMEOUT", defaultDownstreamTimeout),
		IdentifierMode:          getEnv("IDENTIFIER_MODE", "lenient"),
		ProjectSecondaryLookups: getBool("PROJECT_SECONDARY_LOOKUPS", true),
		TrustedProxies:          parseList(os.Getenv("TRUSTED_PROXIES")),
		RedisURL:                getEnv("REDIS_URL", ""),
		ProfileCacheTTL:         getDuration("PROFILE_CACHE_TTL", defaultProfileCacheTTL),
		KafkaBrokers:            parseList(os.Getenv("KAFKA_BROKERS")),
		KafkaTaskTopic:          getEnv("KAFKA_TASK_TOPIC", "task-events"),
		TranslationFolder:       getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
