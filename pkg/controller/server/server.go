package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/octogate/pkg/domain/interfaces"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is encoded JSON or a constant
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	jwtSecret types.JWTSecret
	jwtIssuer types.JWTIssuer
}

type Option func(*config)

// WithJWTSecret sets the HMAC key used to verify caller identity tokens.
// Without it every /repositories request is rejected.
func WithJWTSecret(secret types.JWTSecret) Option {
	return func(cfg *config) {
		cfg.jwtSecret = secret
	}
}

// WithJWTIssuer requires identity tokens to carry the given iss claim.
func WithJWTIssuer(issuer types.JWTIssuer) Option {
	return func(cfg *config) {
		cfg.jwtIssuer = issuer
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/repositories", func(r chi.Router) {
		r.Use(authenticate(cfg.jwtSecret, cfg.jwtIssuer))
		r.Get("/", handleListRepositories(uc))
		r.Post("/validate", handleValidateRepository(uc))
		r.Get("/{owner}/{repo}/branches", handleListBranches(uc))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
