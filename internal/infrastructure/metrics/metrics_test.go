package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nbtech_pricing/internal/domain/entities"
	"nbtech_pricing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics("test")

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/v1/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for _, path := range []string{"/v1/ping", "/v1/ping", "/nope/123"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	out := scrape(t, m)
	assert.Contains(t, out, `test_http_requests_total{method="GET",path="/v1/ping",status="200"} 2`)
	assert.Contains(t, out, `test_http_requests_total{method="GET",path="unmatched",status="404"} 1`)
	assert.Contains(t, out, "test_http_requests_in_flight 0")
	assert.False(t, strings.Contains(out, "/nope/123"), "raw paths must not become labels")
}

func TestMetrics_ObserveQuote(t *testing.T) {
	m := NewMetrics("test")

	m.ObserveQuote(entities.QuoteKindProduct, interfaces.QuoteOutcomeOK, 2583.98)
	m.ObserveQuote(entities.QuoteKindProduct, interfaces.QuoteOutcomeUnpriceable, 0)
	m.ObserveQuote(entities.QuoteKindContract, interfaces.QuoteOutcomeClamped, 6045)

	out := scrape(t, m)
	assert.Contains(t, out, `test_quotes_total{kind="produto",outcome="ok"} 1`)
	assert.Contains(t, out, `test_quotes_total{kind="produto",outcome="unpriceable"} 1`)
	assert.Contains(t, out, `test_quotes_total{kind="contrato",outcome="clamped"} 1`)
	assert.Contains(t, out, `test_quote_price_brl_count{kind="produto"} 1`)
	assert.Contains(t, out, `test_quote_price_brl_count{kind="contrato"} 1`)
}

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics("")
		NewMetrics("")
	})
}
