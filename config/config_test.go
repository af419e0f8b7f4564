package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PBI_TEST_STRING", "value")
	t.Setenv("PBI_TEST_EMPTY", "")
	assert.Equal(t, "value", getEnv("PBI_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", getEnv("PBI_TEST_EMPTY", "fallback"))
	assert.Equal(t, "fallback", getEnv("PBI_TEST_UNSET", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("PBI_TEST_INT", "42")
	t.Setenv("PBI_TEST_BAD_INT", "forty-two")
	assert.Equal(t, 42, getEnvInt("PBI_TEST_INT", 7))
	assert.Equal(t, 7, getEnvInt("PBI_TEST_BAD_INT", 7))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("PBI_TEST_DURATION", "90s")
	t.Setenv("PBI_TEST_BAD_DURATION", "soon")
	assert.Equal(t, 90*time.Second, getEnvDuration("PBI_TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, getEnvDuration("PBI_TEST_BAD_DURATION", time.Minute))
}
