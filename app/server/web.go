package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jumpei00/gostocksignal/app/models"
	"github.com/jumpei00/gostocksignal/app/models/indicator"
	"github.com/jumpei00/gostocksignal/config"
	"github.com/jumpei00/gostocksignal/stock"
	"github.com/jumpei00/gostocksignal/utils"
	"github.com/moznion/go-optional"
	"github.com/sirupsen/logrus"
)

// Provider downloads price history when a request asks for it
var Provider stock.Provider

// JSONError is json error massage
type JSONError struct {
	Error string `json:"error"`
}

func errorAPI(w http.ResponseWriter, message string, code int) {
	jsonMessage, err := json.Marshal(JSONError{Error: message})
	if err != nil {
		logrus.Warnf("error message create error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(jsonMessage)
}

// writeJSON writes v, gzipped when the client accepts it
func writeJSON(w http.ResponseWriter, req *http.Request, v any) {
	js, err := json.Marshal(v)
	if err != nil {
		logrus.Warnf("json error: %v", err)
		errorAPI(w, "json error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
		compressed, err := utils.Compress(js)
		if err == nil {
			w.Header().Set("Content-Encoding", "gzip")
			w.Write(compressed)
			return
		}
		logrus.Warnf("gzip error: %v", err)
	}
	w.Write(js)
}

type apiError struct {
	message string
	code    int
}

func parseDate(value string) (optional.Option[time.Time], error) {
	if value == "" {
		return optional.None[time.Time](), nil
	}
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return optional.None[time.Time](), err
	}
	return optional.Some(t), nil
}

// loadCandleFrame reads symbol, get, period, start and end from the query,
// downloads history when get is true and returns the stored candles in range
func loadCandleFrame(req *http.Request) (*models.CandleFrame, *apiError) {
	query := req.URL.Query()
	symbol := strings.ToUpper(query.Get("symbol"))
	if symbol == "" {
		return nil, &apiError{"bad parameter(symbol)", http.StatusBadRequest}
	}

	get, _ := strconv.ParseBool(query.Get("get"))
	period := config.Config.Period
	if p := query.Get("period"); p != "" {
		var err error
		if period, err = strconv.Atoi(p); err != nil || period <= 0 {
			return nil, &apiError{"bad parameter(period)", http.StatusBadRequest}
		}
	}
	if period <= 0 {
		period = 365
	}

	start, err := parseDate(query.Get("start"))
	if err != nil {
		return nil, &apiError{"bad parameter(start)", http.StatusBadRequest}
	}
	end, err := parseDate(query.Get("end"))
	if err != nil {
		return nil, &apiError{"bad parameter(end)", http.StatusBadRequest}
	}

	// Downloads stock data
	if get {
		if Provider == nil {
			return nil, &apiError{"no stock provider configured", http.StatusInternalServerError}
		}
		q, err := stock.GetStockDataForDays(req.Context(), Provider, symbol, period)
		if err != nil {
			logrus.Warnf("stock get error, symbol: %v, error: %v", symbol, err)
			return nil, &apiError{fmt.Sprintf("stock get error, symbol: %v", symbol), http.StatusBadGateway}
		}
		// After delete existing data, store stock data in DB
		if err := models.ReplaceCandles(symbol, models.NewCandlesFromQuote(symbol, q)); err != nil {
			logrus.Warnf("candle store error: %v", err)
			return nil, &apiError{"candle store error", http.StatusInternalServerError}
		}
	}

	cframe, err := models.GetCandleFrame(symbol, period)
	if err != nil {
		logrus.Warnf("candle get error: %v", err)
		return nil, &apiError{"candle get error", http.StatusInternalServerError}
	}
	return cframe.Between(start, end), nil
}

// CandleGetAPIHandler returns candles of a symbol with their trend and close extremes,
// when path is "/candles"
func CandleGetAPIHandler(w http.ResponseWriter, req *http.Request) {
	logrus.Infof("candle get request: url -> %s", req.URL)

	cframe, apiErr := loadCandleFrame(req)
	if apiErr != nil {
		errorAPI(w, apiErr.message, apiErr.code)
		return
	}

	dframe := models.NewDataFrame()
	dframe.AddCandleFrame(cframe)
	dframe.AddSummaryFrame(cframe)
	writeJSON(w, req, dframe)
}

// RecommendAPIHandler returns the MACD, Bollinger Bands and RSI recommendations of a symbol,
// when path is "/recommendations"
func RecommendAPIHandler(w http.ResponseWriter, req *http.Request) {
	logrus.Infof("recommend request: url -> %s", req.URL)

	cframe, apiErr := loadCandleFrame(req)
	if apiErr != nil {
		errorAPI(w, apiErr.message, apiErr.code)
		return
	}

	table, err := models.Recommend(req.Context(), cframe)
	switch {
	case indicator.IsInsufficientDataError(err):
		errorAPI(w, fmt.Sprintf("not enough price history for %s, pick a longer range: %v", cframe.Symbol, err),
			http.StatusUnprocessableEntity)
		return
	case indicator.IsMalformedSeriesError(err):
		errorAPI(w, fmt.Sprintf("price history of %s is malformed: %v", cframe.Symbol, err),
			http.StatusUnprocessableEntity)
		return
	case err != nil:
		errorAPI(w, fmt.Sprintf("recommend error: %v", err), http.StatusInternalServerError)
		return
	}

	dframe := models.NewDataFrame()
	dframe.AddRecommendFrame(cframe.Symbol, table)
	writeJSON(w, req, dframe)
}

// NewHandler returns the routes of the API
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/candles", CandleGetAPIHandler)
	mux.HandleFunc("/recommendations", RecommendAPIHandler)
	return mux
}

// Run starts webserver with provider and stops it when ctx is done
func Run(ctx context.Context, provider stock.Provider) error {
	Provider = provider
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.Config.IP, config.Config.Port),
		Handler: NewHandler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logrus.Infof("server start: %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
