package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"STUDYTRIP_HTTP_ADDR", "STUDYTRIP_CORS_ORIGINS", "STUDYTRIP_LOG_LEVEL",
		"STUDYTRIP_AI_PROVIDER", "STUDYTRIP_AI_MODEL", "STUDYTRIP_AI_TEMPERATURE",
		"STUDYTRIP_AI_MAX_TOKENS", "STUDYTRIP_AI_TIMEOUT", "GEMINI_API_KEY", "OPENAI_API_KEY",
		"STUDYTRIP_MAX_DAYS", "STUDYTRIP_POINTS_MATCHER", "STUDYTRIP_DAILY_GENERATIONS",
		"GOOGLE_MAPS_API_KEY", "STUDYTRIP_PLAN_SINK", "STUDYTRIP_PLAN_FILE", "STUDYTRIP_DB_DSN",
		"STUDYTRIP_REDIS_ADDR", "STUDYTRIP_MONGO_URI", "STUDYTRIP_MONGO_DB",
		"STUDYTRIP_FIREBASE_PROJECT_ID", "STUDYTRIP_FIREBASE_CREDENTIALS",
	} {
		t.Setenv(k, "")
	}
}

// TestLoad_defaults verifies that optional env vars fall back to their defaults
// when only the Gemini key is provided.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.HTTP.CORSOrigins)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, ProviderGemini, cfg.AI.Provider)
	require.Equal(t, "g-key", cfg.AI.APIKey)
	require.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	require.Equal(t, float32(0.2), cfg.AI.Temperature)
	require.Equal(t, int32(800), cfg.AI.MaxTokens)
	require.Equal(t, 60*time.Second, cfg.AI.Timeout)
	require.Equal(t, 14, cfg.Planner.MaxDays)
	require.Equal(t, "balanced", cfg.Planner.PointsMatcher)
	require.Equal(t, 20, cfg.Planner.DailyGenerations)
	require.Equal(t, SinkCSV, cfg.Sink.Kind)
	require.Equal(t, "plans.csv", cfg.Sink.File)
	require.Empty(t, cfg.Redis.Addr)
	require.Empty(t, cfg.Maps.APIKey)
	require.Empty(t, cfg.Firebase.ProjectID)
}

// TestLoad_overrides verifies that values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STUDYTRIP_AI_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("STUDYTRIP_AI_TIMEOUT", "15s")
	t.Setenv("STUDYTRIP_AI_TEMPERATURE", "0.7")
	t.Setenv("STUDYTRIP_MAX_DAYS", "7")
	t.Setenv("STUDYTRIP_POINTS_MATCHER", "greedy")
	t.Setenv("STUDYTRIP_PLAN_SINK", "redis")
	t.Setenv("STUDYTRIP_REDIS_ADDR", "localhost:6379")
	t.Setenv("STUDYTRIP_CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	require.Equal(t, "o-key", cfg.AI.APIKey)
	require.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	require.Equal(t, 15*time.Second, cfg.AI.Timeout)
	require.Equal(t, float32(0.7), cfg.AI.Temperature)
	require.Equal(t, 7, cfg.Planner.MaxDays)
	require.Equal(t, "greedy", cfg.Planner.PointsMatcher)
	require.Equal(t, SinkRedis, cfg.Sink.Kind)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.CORSOrigins)
}

// TestLoad_missingRequired verifies that the error names every missing variable.
func TestLoad_missingRequired(t *testing.T) {
	clearEnv(t)
	t.Setenv("STUDYTRIP_PLAN_SINK", "redis")

	_, err := Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "GEMINI_API_KEY")
	require.ErrorContains(t, err, "STUDYTRIP_REDIS_ADDR")
}

func TestLoad_unknownValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("STUDYTRIP_AI_PROVIDER", "llama")
	t.Setenv("STUDYTRIP_PLAN_SINK", "s3")

	_, err := Load()

	require.ErrorContains(t, err, "STUDYTRIP_AI_PROVIDER")
	require.ErrorContains(t, err, "STUDYTRIP_PLAN_SINK")
}

// TestLoad_malformedValues verifies that unparsable numbers, durations and
// matcher names are reported instead of silently replaced by defaults.
func TestLoad_malformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("STUDYTRIP_AI_TIMEOUT", "soon")
	t.Setenv("STUDYTRIP_MAX_DAYS", "two")
	t.Setenv("STUDYTRIP_AI_TEMPERATURE", "warm")
	t.Setenv("STUDYTRIP_AI_MAX_TOKENS", "lots")
	t.Setenv("STUDYTRIP_DAILY_GENERATIONS", "1.5")
	t.Setenv("STUDYTRIP_POINTS_MATCHER", "fuzzy")

	_, err := Load()

	require.ErrorContains(t, err, `STUDYTRIP_AI_TIMEOUT must be a duration such as 60s, got "soon"`)
	require.ErrorContains(t, err, `STUDYTRIP_MAX_DAYS must be an integer, got "two"`)
	require.ErrorContains(t, err, "STUDYTRIP_AI_TEMPERATURE")
	require.ErrorContains(t, err, "STUDYTRIP_AI_MAX_TOKENS")
	require.ErrorContains(t, err, "STUDYTRIP_DAILY_GENERATIONS")
	require.ErrorContains(t, err, `STUDYTRIP_POINTS_MATCHER must be balanced or greedy, got "fuzzy"`)
}

func TestLoad_matcherIsCaseInsensitive(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("STUDYTRIP_POINTS_MATCHER", "Greedy")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, MatcherGreedy, cfg.Planner.PointsMatcher)
}
