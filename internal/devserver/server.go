package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"walletkit/internal/gateway"
)

const maxRequestBytes = 1 << 20

// Server holds every account, card, payment and link in memory.
type Server struct {
	secret []byte
	log    logrus.FieldLogger
	now    func() time.Time
	cost   int
	router *mux.Router

	mu          sync.Mutex
	nextUser    int64
	nextCard    int64
	nextPayment int64
	accounts    map[int64]*account
	emails      map[string]int64
	payments    []*payment
	links       map[uuid.UUID]*paymentLink
}

type account struct {
	user       gateway.UserDTO
	password   []byte
	balance    decimal.Decimal
	investment decimal.Decimal
	cards      []gateway.CardDTO
}

type payment struct {
	dto      gateway.PaymentDTO
	payer    int64
	receiver int64
}

type paymentLink struct {
	owner       int64
	amount      decimal.Decimal
	description string
	paid        *payment
	createdAt   time.Time
}

// Option customises a Server.
type Option func(*Server)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option { return func(s *Server) { s.now = now } }

// WithBcryptCost sets the password hashing cost.
func WithBcryptCost(cost int) Option { return func(s *Server) { s.cost = cost } }

// New returns a Server signing tokens with secret.
func New(secret []byte, log logrus.FieldLogger, opts ...Option) *Server {
	s := &Server{
		secret:   secret,
		log:      log.WithField("component", "devserver"),
		now:      time.Now,
		cost:     bcrypt.DefaultCost,
		accounts: make(map[int64]*account),
		emails:   make(map[string]int64),
		links:    make(map[uuid.UUID]*paymentLink),
	}
	for _, o := range opts {
		o(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	// Public routes
	r.HandleFunc("/user", s.register).Methods(http.MethodPost)

	// Protected routes
	wallet := r.PathPrefix("/wallet").Subrouter()
	wallet.Use(s.requireAuth)
	wallet.HandleFunc("/balance", s.balance).Methods(http.MethodGet)
	wallet.HandleFunc("/recharge", s.recharge).Methods(http.MethodPost)
	wallet.HandleFunc("/investment", s.investment).Methods(http.MethodGet)
	wallet.HandleFunc("/invest", s.invest).Methods(http.MethodPost)
	wallet.HandleFunc("/divest", s.divest).Methods(http.MethodPost)
	wallet.HandleFunc("/cards", s.listCards).Methods(http.MethodGet)
	wallet.HandleFunc("/cards", s.addCard).Methods(http.MethodPost)
	wallet.HandleFunc("/cards/{id:[0-9]+}", s.deleteCard).Methods(http.MethodDelete)
	wallet.HandleFunc("/daily-returns", s.dailyReturns).Methods(http.MethodGet)
	wallet.HandleFunc("/daily-interest", s.dailyInterest).Methods(http.MethodGet)
	wallet.HandleFunc("/details", s.details).Methods(http.MethodGet)

	pay := r.PathPrefix("/payment").Subrouter()
	pay.Use(s.requireAuth)
	pay.HandleFunc("", s.makePayment).Methods(http.MethodPost)
	pay.HandleFunc("", s.listPayments).Methods(http.MethodGet)
	pay.HandleFunc("/{id:[0-9]+}", s.getPayment).Methods(http.MethodGet)
	pay.HandleFunc("/link/{uuid}", s.getPaymentByLink).Methods(http.MethodGet)
	pay.HandleFunc("/link/{uuid}", s.createLink).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("request served")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, gateway.ErrorEnvelope{Message: msg})
}
