package config_test

import (
	"testing"
	"time"

	"github.com/limbo/serene/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	cfg := config.New()
	t.Setenv("SERENE_TEST_STR", "value")
	t.Setenv("SERENE_TEST_INT", "42")
	t.Setenv("SERENE_TEST_BAD_INT", "forty two")
	t.Setenv("SERENE_TEST_DUR", "90s")
	t.Setenv("SERENE_TEST_TZ", "Europe/Berlin")
	t.Setenv("SERENE_TEST_BAD_TZ", "Mars/Olympus")

	assert.Equal(t, "value", cfg.GetString("SERENE_TEST_STR"))
	assert.Equal(t, "fallback", cfg.GetStringOr("SERENE_TEST_MISSING", "fallback"))
	assert.Equal(t, 42, cfg.GetInt("SERENE_TEST_INT", 1))
	assert.Equal(t, 1, cfg.GetInt("SERENE_TEST_BAD_INT", 1))
	assert.Equal(t, 90*time.Second, cfg.GetDuration("SERENE_TEST_DUR", time.Second))
	assert.Equal(t, time.Second, cfg.GetDuration("SERENE_TEST_MISSING", time.Second))
	assert.Equal(t, time.UTC, cfg.GetLocation("SERENE_TEST_BAD_TZ"))
	assert.Equal(t, time.UTC, cfg.GetLocation("SERENE_TEST_MISSING"))
	if loc := cfg.GetLocation("SERENE_TEST_TZ"); loc != time.UTC {
		assert.Equal(t, "Europe/Berlin", loc.String())
	}
}
