package api

import (
	"github.com/Priyanndarshan/stock-website/internal/domain/models"
	"github.com/Priyanndarshan/stock-website/internal/usecase"
	xhttp "github.com/Priyanndarshan/stock-website/pkg/http"
	xlogger "github.com/Priyanndarshan/stock-website/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StocksEchoHandler exposes the stock data endpoints over Echo.
type StocksEchoHandler struct {
	logger    *xlogger.Logger
	assembler *usecase.ResponseAssembler
}

func NewStocksEchoHandler(logger *xlogger.Logger, assembler *usecase.ResponseAssembler) *StocksEchoHandler {
	return &StocksEchoHandler{logger: logger, assembler: assembler}
}

func (h *StocksEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home)
	e.POST("/get_stock_data", h.StockData)
	e.POST("/get_stock_info", h.StockInfo)
}

func (h *StocksEchoHandler) Home(c echo.Context) error {
	return xhttp.SuccessResponse(c, xhttp.MessageBody{Message: "Stock Data API is Running"})
}

// StockData serves the time-series payload. A malformed body surfaces as the
// generic processing error, never as internal detail.
func (h *StocksEchoHandler) StockData(c echo.Context) error {
	req := &models.StockDataRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		h.logger.Error("invalid stock data request", xlogger.Any("details", verr))
		return xhttp.InternalServerErrorResponse(c)
	}

	h.logger.Info("stock data request",
		xlogger.String("symbol", req.Symbol),
		xlogger.String("period", req.Period),
		xlogger.String("interval", req.Interval),
		xlogger.Strings("compare", req.CompareSymbols),
	)

	res, err := h.assembler.BuildChartResponse(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("stock data request failed",
			xlogger.String("symbol", req.Symbol),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// StockInfo serves the fundamentals payload for both request shapes.
func (h *StocksEchoHandler) StockInfo(c echo.Context) error {
	req := &models.StockInfoRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		h.logger.Error("invalid stock info request", xlogger.Any("details", verr))
		return xhttp.InternalServerErrorResponse(c)
	}

	if req.ListShape() {
		h.logger.Info("stock info request", xlogger.Strings("symbols", req.Symbols))
	} else {
		h.logger.Info("stock info request",
			xlogger.String("symbol", req.Symbol),
			xlogger.Strings("compare", req.CompareSymbols),
		)
	}

	res, err := h.assembler.BuildInfoResponse(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("stock info request failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}
