package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Simplici0/candle-pricer/internal/config"
	"github.com/Simplici0/candle-pricer/internal/db"
	"github.com/Simplici0/candle-pricer/internal/history"
	"github.com/Simplici0/candle-pricer/internal/kv"
	"github.com/Simplici0/candle-pricer/internal/logging"
	"github.com/Simplici0/candle-pricer/internal/migrations"
	"github.com/Simplici0/candle-pricer/internal/pricing"
)

type server struct {
	history       *history.Store
	logger        zerolog.Logger
	maxImageBytes int64
	now           func() time.Time
}

type priceResponse struct {
	Inputs       pricing.Input  `json:"inputs"`
	Outputs      pricing.Output `json:"outputs"`
	Lines        []pricing.Line `json:"lines"`
	PricePerDrop string         `json:"pricePerDrop"`
}

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer database.Close()

	if err := migrations.Up(database, logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to run database migrations")
	}

	store := history.NewStore(kv.New(database), cfg.HistoryKey, logger)
	logger.Info().Int("records", len(store.Records())).Str("key", cfg.HistoryKey).Msg("history loaded")

	srv := &server{
		history:       store,
		logger:        logger,
		maxImageBytes: cfg.MaxImageBytes,
		now:           time.Now,
	}

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("listening")
	if err := http.ListenAndServe(addr, srv.routes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Get("/price/defaults", s.handlePriceDefaults)
	r.Post("/price", s.handlePrice)
	r.Post("/price/text", s.handlePriceText)
	r.Get("/history", s.handleHistoryList)
	r.Get("/history/table", s.handleHistoryTable)
	r.Post("/history", s.handleHistoryCreate)
	r.Delete("/history", s.handleHistoryClear)
	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handlePriceDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pricing.DefaultInput())
}

func (s *server) handlePrice(w http.ResponseWriter, r *http.Request) {
	in, _, err := s.parseCalculation(w, r)
	if err != nil {
		writeRequestError(w, err)
		return
	}

	out := pricing.Compute(in)
	writeJSON(w, http.StatusOK, priceResponse{
		Inputs:       in,
		Outputs:      out,
		Lines:        pricing.Breakdown(in, out),
		PricePerDrop: pricing.FormatPerDrop(out.PricePerColorDrop),
	})
}

func (s *server) handlePriceText(w http.ResponseWriter, r *http.Request) {
	in, _, err := s.parseCalculation(w, r)
	if err != nil {
		writeRequestError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(pricing.Summary(in, pricing.Compute(in))))
}

func (s *server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.history.Records())
}

func (s *server) handleHistoryTable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, history.Rows(s.history.Records()))
}

func (s *server) handleHistoryCreate(w http.ResponseWriter, r *http.Request) {
	in, image, err := s.parseCalculation(w, r)
	if err != nil {
		writeRequestError(w, err)
		return
	}

	rec := history.NewRecord(in, pricing.Compute(in), image, s.now())
	if err := s.history.Append(rec); err != nil {
		s.logger.Error().Err(err).Msg("failed to save calculation")
		writeJSONError(w, http.StatusInternalServerError, "failed to save calculation")
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (s *server) handleHistoryClear(w http.ResponseWriter, r *http.Request) {
	if err := s.history.Clear(); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear history")
		writeJSONError(w, http.StatusInternalServerError, "failed to clear history")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
