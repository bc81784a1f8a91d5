package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/llm/gemini"
	"coverletter-backend/internal/llm/openai"
	"coverletter-backend/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:                  "0",
		Env:                   "dev",
		CORSAllowOrigin:       []string{"*"},
		LLMProvider:           config.ProviderOpenAI,
		LLMModel:              "gpt-4o",
		LLMTemperature:        0.7,
		LLMTimeout:            time.Minute,
		OpenAIAPIKey:          "sk-test",
		MaxUploadBytes:        1 << 20,
		ExtractMaxConcurrency: 2,
	}
}

func TestBuildCompleterSelectsProvider(t *testing.T) {
	cfg := testConfig()
	completer, err := BuildCompleter(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &openai.Client{}, completer)

	cfg.LLMProvider = config.ProviderGemini
	cfg.LLMModel = "gemini-2.5-flash"
	cfg.GeminiAPIKey = "gm-test"
	completer, err = BuildCompleter(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &gemini.Client{}, completer)
}

func TestBuildCompleterRejectsUnknownProvider(t *testing.T) {
	cfg := testConfig()
	cfg.LLMProvider = "llama"
	_, err := BuildCompleter(context.Background(), cfg)
	assert.Error(t, err)
}

func TestBuildWithCompleterWiresRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := llm.CompleterFunc(func(ctx context.Context, prompt string) (llm.CoverLetter, error) {
		return llm.CoverLetter{}, nil
	})
	app := BuildWithCompleter(testConfig(), stub)
	require.NotNil(t, app.Router)
	assert.Equal(t, time.Minute, app.Service.Timeout)
	assert.Equal(t, int64(1<<20), app.Handler.MaxUploadBytes)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
}
