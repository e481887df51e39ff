package impl_http

import (
	"context"
	"net/http"
	"time"

	port_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/account"
	port_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/bank"
	port_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/transfer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type UseCases struct {
	CreateBank port_bank.CreateBankUseCase
	GetBank    port_bank.GetBankUseCase
	ListBanks  port_bank.ListBanksUseCase

	CreateAccount port_account.CreateAccountUseCase
	GetAccount    port_account.GetAccountUseCase
	ListAccounts  port_account.ListAccountsUseCase

	CreateTransfer port_transfer.CreateTransferUseCase
	ListTransfers  port_transfer.ListTransfersUseCase
}

// Server translates HTTP requests into use-case calls. It holds no ledger
// logic of its own.
type Server struct {
	uc     UseCases
	log    *zap.Logger
	health func(ctx context.Context) error
}

// NewServer builds the request layer. health may be nil; when set, /health
// reports 503 while it fails.
func NewServer(uc UseCases, log *zap.Logger, health func(ctx context.Context) error) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	return &Server{uc: uc, log: log, health: health}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.getHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/banks", func(r chi.Router) {
			r.Get("/", s.listBanks)
			r.Post("/", s.createBank)
			r.Get("/{bankID}", s.getBank)
			r.Get("/{bankID}/accounts", s.listAccounts)
			r.Post("/{bankID}/accounts", s.createAccount)
		})

		r.Route("/accounts/{accountID}", func(r chi.Router) {
			r.Get("/", s.getAccount)
			r.Get("/transfers", s.listTransfers)
			r.Put("/add", s.addFunds)
			r.Put("/retire", s.retireFunds)
		})

		r.Put("/transfer", s.internalTransfer)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			s.log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health(r.Context()); err != nil {
			s.log.Warn("health check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
