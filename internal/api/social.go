package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/npezzotti/go-social/internal/config"
	"github.com/npezzotti/go-social/internal/database"
	"github.com/npezzotti/go-social/internal/service"
	"github.com/npezzotti/go-social/internal/stats"
)

type SocialApp struct {
	log      *log.Logger
	db       database.SocialRepository
	accounts *service.AccountService
	messages *service.MessageService
	stats    stats.StatsProvider
	mux      *http.Server
}

func NewSocialApp(mux *http.ServeMux, logger *log.Logger, db database.SocialRepository, statsProvider stats.StatsProvider, cfg *config.Config) *SocialApp {
	s := &SocialApp{
		log:      logger,
		db:       db,
		accounts: service.NewAccountService(logger, db),
		messages: service.NewMessageService(logger, db),
		stats:    statsProvider,
	}

	for _, name := range metricNames {
		s.stats.RegisterMetric(name)
	}

	mux.HandleFunc("GET /healthz", s.healthCheck)
	mux.HandleFunc("POST /register", s.register)
	mux.HandleFunc("POST /login", s.login)
	mux.HandleFunc("POST /messages", s.createMessage)
	mux.HandleFunc("GET /messages", s.getAllMessages)
	mux.HandleFunc("GET /messages/{message_id}", s.getMessage)
	mux.HandleFunc("DELETE /messages/{message_id}", s.deleteMessage)
	mux.HandleFunc("PATCH /messages/{message_id}", s.updateMessage)
	mux.HandleFunc("GET /accounts/{account_id}/messages", s.getAccountMessages)

	var h http.Handler = mux
	if len(cfg.AllowedOrigins) > 0 {
		h = handlers.CORS(
			handlers.MaxAge(3600),
			handlers.AllowedOrigins(cfg.AllowedOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
			handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept"}),
		)(h)
	}

	h = s.metricsMiddleware(h)
	h = handlers.CombinedLoggingHandler(logger.Writer(), h)
	h = s.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	s.mux = srv
	return s
}

func (s *SocialApp) Start() error {
	s.log.Printf("starting server on %s\n", s.mux.Addr)
	return s.mux.ListenAndServe()
}

func (s *SocialApp) Shutdown(ctx context.Context) error {
	s.log.Println("shutting down HTTP server...")
	if err := s.mux.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
