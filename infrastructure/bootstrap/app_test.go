package bootstrap

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"news-video-lambda/config"
	"strings"
	"testing"
	"time"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:     &config.ServerConfig{Port: "8080", LogLevel: "error"},
		Pipeline:   &config.PipelineConfig{NarrationMode: config.NarrationModeSummary, PoolSize: 2},
		Perplexity: &config.PerplexityConfig{ApiUrl: "http://127.0.0.1:1", ApiKey: "k", Model: "m", MaxTokens: 10},
		ElevenLabs: &config.ElevenLabsConfig{ApiUrl: "http://127.0.0.1:1", ApiKey: "k", ModelId: "eleven_multilingual_v2"},
		HeyGen:     &config.HeyGenConfig{ApiUrl: "http://127.0.0.1:1", ApiKey: "k"},
		S3:         &config.S3Config{BucketName: "b", Region: "ap-south-1", KeyPrefix: "audio"},
		Dynamo:     &config.DynamoConfig{TableName: "news"},
		Poller:     &config.PollerConfig{InitialInterval: time.Second, MaxInterval: time.Second, MaxAttempts: 1, Timeout: time.Second},
	}
}

func TestNew_ServesHealthAndValidates(t *testing.T) {
	app, err := New(testConfig())
	require.NoError(t, err)
	defer app.Close()

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(`{"title":"T"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required key: created_time"}`, w.Body.String())
}

func TestNew_UnreachableJWKS(t *testing.T) {
	cfg := testConfig()
	cfg.Server.JwksUrl = "http://127.0.0.1:1/.well-known/jwks.json"

	_, err := New(cfg)

	assert.ErrorContains(t, err, "failed to create auth handler")
}
