package config_test

import (
	"os"
	"testing"
	"time"

	"taskhub/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_PORT", "TASK_SERVICE_URL", "PROJECT_SERVICE_URL", "PROFILE_SERVICE_URL",
		"RECURRENCE_SERVICE_URL", "DOWNSTREAM_TIMEOUT", "IDENTIFIER_MODE",
		"PROJECT_SECONDARY_LOOKUPS", "TRUSTED_PROXIES", "REDIS_URL", "PROFILE_CACHE_TTL",
		"KAFKA_BROKERS", "KAFKA_TASK_TOPIC", "TRANSLATION_FOLDER",
	} {
		// Setenv restores the original value after the test.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := config.LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "http://task:3031", cfg.TaskServiceURL)
	assert.Equal(t, "http://task:3031", cfg.RecurrenceServiceURL)
	assert.Equal(t, "lenient", cfg.IdentifierMode)
	assert.Equal(t, "task-events", cfg.KafkaTaskTopic)
	assert.Equal(t, 10*time.Second, cfg.DownstreamTimeout)
	assert.True(t, cfg.ProjectSecondaryLookups)
	assert.Equal(t, 5*time.Minute, cfg.ProfileCacheTTL)
	assert.Nil(t, cfg.KafkaBrokers)
	assert.Nil(t, cfg.TrustedProxies)
}

func TestLoadConfig_ParsesOverrides(t *testing.T) {
	t.Setenv("DOWNSTREAM_TIMEOUT", "3s")
	t.Setenv("PROJECT_SECONDARY_LOOKUPS", "false")
	t.Setenv("KAFKA_BROKERS", " kafka-1:9092, ,kafka-2:9092 ")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")
	t.Setenv("PROFILE_CACHE_TTL", "not-a-duration")

	cfg := config.LoadConfig()

	assert.Equal(t, 3*time.Second, cfg.DownstreamTimeout)
	assert.False(t, cfg.ProjectSecondaryLookups)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	assert.Equal(t, 5*time.Minute, cfg.ProfileCacheTTL)
}
