package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Priyanndarshan/stock-website/internal/domain/models"
	"github.com/Priyanndarshan/stock-website/internal/usecase"
	xlogger "github.com/Priyanndarshan/stock-website/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMarket struct {
	histories map[string][]models.Bar
	histErrs  map[string]error
	infos     map[string]models.CompanyInfo
	news      []models.NewsItem
}

func (f *fakeMarket) History(_ context.Context, symbol, _, _ string) ([]models.Bar, error) {
	if err, ok := f.histErrs[symbol]; ok {
		return nil, err
	}
	return f.histories[symbol], nil
}

func (f *fakeMarket) Info(_ context.Context, symbol string) (models.CompanyInfo, error) {
	return f.infos[symbol], nil
}

func (f *fakeMarket) News(_ context.Context, _ string) ([]models.NewsItem, error) {
	return f.news, nil
}

type fakeMetrics struct{}

func (fakeMetrics) RecordRequest(string)        {}
func (fakeMetrics) RecordFetch(string, float64) {}
func (fakeMetrics) RecordFetchError(string)     {}
func (fakeMetrics) RecordBatchSize(string, int) {}

func newTestServer(t *testing.T, provider *fakeMarket) *echo.Echo {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	require.NoError(t, err)

	series := usecase.NewSeriesFetcher(provider, fakeMetrics{}, l, 4)
	info := usecase.NewInfoFetcher(provider, fakeMetrics{}, l, 4)
	assembler := usecase.NewResponseAssembler(series, info, usecase.NewComparativeAggregator(), provider, fakeMetrics{})

	e := echo.New()
	NewStocksEchoHandler(l, assembler).RegisterRoutes(e)
	return e
}

func doPost(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func defaultMarket() *fakeMarket {
	base := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	return &fakeMarket{
		histories: map[string][]models.Bar{
			"AAPL": {
				{Time: base, Open: 187, High: 188, Low: 186.5, Close: 187.6, Volume: 1200},
				{Time: base.Add(time.Minute), Open: 187.6, High: 189, Low: 187.2, Close: 188.4, Volume: 900},
			},
			"MSFT": {
				{Time: base, Open: 410, High: 412, Low: 409, Close: 411, Volume: 700},
			},
		},
		infos: map[string]models.CompanyInfo{
			"AAPL": {ShortName: "Apple Inc.", Sector: "Technology", Industry: "Consumer Electronics", MarketCap: 2_000_000},
			"MSFT": {ShortName: "Microsoft", Sector: "Technology", Industry: "Software", MarketCap: 1_900_000},
		},
		news: []models.NewsItem{{Title: "Headline", Summary: "Body"}},
	}
}

func TestHomeRoute(t *testing.T) {
	e := newTestServer(t, defaultMarket())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Stock Data API is Running"}`, rec.Body.String())
}

func TestStockDataSuccess(t *testing.T) {
	e := newTestServer(t, defaultMarket())

	rec := doPost(e, "/get_stock_data", `{"symbol":"AAPL","compareSymbols":["MSFT"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	for _, key := range []string{"symbol", "timestamps", "open", "high", "low", "close", "volume", "news", "compareData"} {
		assert.Contains(t, payload, key)
	}

	var closes []float64
	require.NoError(t, json.Unmarshal(payload["close"], &closes))
	assert.Equal(t, []float64{187.6, 188.4}, closes)

	var news [][2]string
	require.NoError(t, json.Unmarshal(payload["news"], &news))
	assert.Equal(t, [][2]string{{"Headline", "Body"}}, news)
}

func TestStockDataDefaultsApply(t *testing.T) {
	e := newTestServer(t, defaultMarket())

	rec := doPost(e, "/get_stock_data", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Symbol string `json:"symbol"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "AAPL", payload.Symbol)
}

func TestStockDataNotFound(t *testing.T) {
	m := defaultMarket()
	m.histories["GHOST"] = nil
	e := newTestServer(t, m)

	rec := doPost(e, "/get_stock_data", `{"symbol":"GHOST"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"No data found"}`, rec.Body.String())
}

func TestStockDataProviderFailure(t *testing.T) {
	m := defaultMarket()
	m.histErrs = map[string]error{"AAPL": errors.New("upstream down")}
	e := newTestServer(t, m)

	rec := doPost(e, "/get_stock_data", `{"symbol":"AAPL"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"An error occurred while processing your request."}`, rec.Body.String())
}

func TestStockDataMalformedBody(t *testing.T) {
	e := newTestServer(t, defaultMarket())

	rec := doPost(e, "/get_stock_data", `{"symbol":`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"An error occurred while processing your request."}`, rec.Body.String())
}

func TestStockInfoLegacyShape(t *testing.T) {
	e := newTestServer(t, defaultMarket())

	rec := doPost(e, "/get_stock_info", `{"symbol":"AAPL","compareSymbols":["MSFT"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload, "stocks")
	assert.Contains(t, payload, "comparativeMetrics")
	assert.Contains(t, payload, "mainStock")
	assert.Contains(t, payload, "compareStocks")

	var main struct {
		Symbol string `json:"symbol"`
		Name   string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(payload["mainStock"], &main))
	assert.Equal(t, "AAPL", main.Symbol)
	assert.Equal(t, "Apple Inc.", main.Name)

	var compare map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload["compareStocks"], &compare))
	assert.Contains(t, compare, "MSFT")
	assert.NotContains(t, compare, "AAPL")
}

func TestStockInfoListShape(t *testing.T) {
	e := newTestServer(t, defaultMarket())

	rec := doPost(e, "/get_stock_info", `{"symbols":["AAPL","MSFT"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload, "stocks")
	assert.Contains(t, payload, "comparativeMetrics")
	assert.NotContains(t, payload, "mainStock")
	assert.NotContains(t, payload, "compareStocks")

	var metrics struct {
		MarketCap struct {
			Highest *string `json:"highest"`
			Lowest  *string `json:"lowest"`
		} `json:"marketCap"`
	}
	require.NoError(t, json.Unmarshal(payload["comparativeMetrics"], &metrics))
	require.NotNil(t, metrics.MarketCap.Highest)
	assert.Equal(t, "AAPL", *metrics.MarketCap.Highest)
	require.NotNil(t, metrics.MarketCap.Lowest)
	assert.Equal(t, "MSFT", *metrics.MarketCap.Lowest)
}

func TestStockInfoEmptySymbolsList(t *testing.T) {
	e := newTestServer(t, defaultMarket())

	rec := doPost(e, "/get_stock_info", `{"symbols":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Stocks map[string]json.RawMessage `json:"stocks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Empty(t, payload.Stocks)
}
