package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/fx_deal_system/internal/apperrors"
	portssvc "github.com/SscSPs/fx_deal_system/internal/core/ports/services"
	"github.com/SscSPs/fx_deal_system/internal/dto"
	"github.com/SscSPs/fx_deal_system/internal/handlers"
	"github.com/SscSPs/fx_deal_system/internal/middleware"
	"github.com/SscSPs/fx_deal_system/internal/platform/config"
	"github.com/SscSPs/fx_deal_system/internal/platform/validation"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDealService struct {
	imported [][]dto.DealRequest
	results  []dto.DealResponse
}

func (f *fakeDealService) ImportDeal(ctx context.Context, req dto.DealRequest) (*dto.DealResponse, error) {
	return nil, nil
}

func (f *fakeDealService) ImportDeals(ctx context.Context, reqs []dto.DealRequest) []dto.DealResponse {
	f.imported = append(f.imported, reqs)
	return f.results
}

func (f *fakeDealService) GetDealByUniqueID(ctx context.Context, dealUniqueID string) (*dto.DealResponse, error) {
	return nil, nil
}

func (f *fakeDealService) ListDeals(ctx context.Context) ([]dto.DealResponse, error) {
	return []dto.DealResponse{}, nil
}

var _ portssvc.DealSvcFacade = (*fakeDealService)(nil)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger("info", "text", &buf)
	require.NoError(t, err)
	logger.Info("hello", slog.String("k", "v"))
	assert.Contains(t, buf.String(), "k=v")

	buf.Reset()
	logger, err = newLogger("info", "json", &buf)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("hello")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	_, err = newLogger("info", "xml", &buf)
	assert.Error(t, err)
}

func TestDecodeDeals(t *testing.T) {
	batch, err := decodeDeals(strings.NewReader(`[{"dealUniqueId":"D1","dealAmount":"10"},{"dealUniqueId":"D2"},{"dealUniqueId":5}]`))
	require.NoError(t, err)
	require.Len(t, batch.Items, 3)
	assert.True(t, batch.Items[0].Request.DealAmount.Equal(decimal.NewFromInt(10)))
	assert.Nil(t, batch.Items[1].Request.DealAmount)
	require.Error(t, batch.Items[2].DecodeErr)
	assert.Contains(t, batch.Items[2].DecodeErr.Error(), "dealUniqueId")
	assert.Len(t, batch.Requests(), 2)

	_, err = decodeDeals(strings.NewReader(`{"dealUniqueId":"D1"}`))
	assert.Error(t, err)
}

func TestImportDeals_ReportAndStrict(t *testing.T) {
	amount := decimal.RequireFromString("1000.5")
	svc := &fakeDealService{results: []dto.DealResponse{
		{
			DealUniqueID:        "D1",
			Status:              "SUCCESS",
			Message:             "Deal imported successfully",
			FromCurrencyISOCode: "USD",
			ToCurrencyISOCode:   "JPY",
			DealAmount:          &amount,
		},
		dto.NewFailedDealResponse("D2", "Deal with ID D2 already exists"),
	}}
	batch, err := decodeDeals(strings.NewReader(
		`[{"dealUniqueId":"D1"},{"dealUniqueId":"D3","dealTimestamp":"15/01/2024"},{"dealUniqueId":"D2"}]`))
	require.NoError(t, err)

	var out bytes.Buffer
	err = importDeals(context.Background(), batch, &out, svc, false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "SUCCESS D1: Deal imported successfully (USD 1000.50 -> JPY)")
	assert.Contains(t, out.String(), "FAILED  D3: Malformed deal: ")
	assert.Contains(t, out.String(), "must be formatted as yyyy-MM-ddTHH:mm:ss")
	assert.Contains(t, out.String(), "FAILED  D2: Deal with ID D2 already exists")
	assert.Contains(t, out.String(), "imported 1 of 3 deals, 2 failed")
	assert.Less(t, strings.Index(out.String(), "D3:"), strings.Index(out.String(), "D2:"))

	require.Len(t, svc.imported, 1)
	require.Len(t, svc.imported[0], 2)
	assert.Equal(t, "D1", svc.imported[0][0].DealUniqueID)
	assert.Equal(t, "D2", svc.imported[0][1].DealUniqueID)

	out.Reset()
	err = importDeals(context.Background(), batch, &out, svc, true)
	assert.EqualError(t, err, "2 of 3 deals failed to import")
}

func TestCheckDeals(t *testing.T) {
	v, err := validation.New()
	require.NoError(t, err)

	amount := decimal.NewFromInt(100)
	batch := &dto.DealBatch{Items: []dto.DealBatchItem{
		{
			DealUniqueID: "D1",
			Request: dto.DealRequest{
				DealUniqueID:        "D1",
				FromCurrencyISOCode: "USD",
				ToCurrencyISOCode:   "EUR",
				DealTimestamp:       dto.NewDealTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)),
				DealAmount:          &amount,
			},
		},
		{DealUniqueID: "D2", Request: dto.DealRequest{DealUniqueID: "D2", FromCurrencyISOCode: "US"}},
		{DealUniqueID: "D3", DecodeErr: apperrors.NewInvalidDealError("Malformed deal: bad timestamp")},
	}}

	var out bytes.Buffer
	require.NoError(t, checkDeals(batch, &out, v, false))
	assert.Contains(t, out.String(), "OK      #0 D1")
	assert.Contains(t, out.String(), "INVALID #1 D2")
	assert.Contains(t, out.String(), "fromCurrencyIsoCode must be 3 letters")
	assert.Contains(t, out.String(), "INVALID #2 D3: Malformed deal: bad timestamp")
	assert.Contains(t, out.String(), "checked 3 deals, 2 invalid")

	assert.EqualError(t, checkDeals(batch, &out, v, true), "2 of 3 deals are invalid")
}

func TestNewEngine_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		APIBasePath:        "/api",
		IsProduction:       true,
		RateLimit:          "100-M",
		CORSAllowedOrigins: []string{"*"},
	}
	svcs := &portssvc.ServiceContainer{Deal: &fakeDealService{}}

	engine, err := newEngine(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), svcs)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/deals/health", nil)
	req.Header.Set("Origin", "http://frontend.test")
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, handlers.HealthMessage, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "100", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCorsConfig(t *testing.T) {
	c := corsConfig([]string{"https://a.example", "https://b.example"})
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowOrigins)

	c = corsConfig(nil)
	assert.True(t, c.AllowAllOrigins)
	assert.Empty(t, c.AllowOrigins)
}
