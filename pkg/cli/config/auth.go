package config

import (
	"log/slog"

	"github.com/m-mizutani/octogate/pkg/controller/server"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Auth configures verification of caller identity tokens.
type Auth struct {
	jwtSecret string
	jwtIssuer string
}

func (x *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jwt-secret",
			Usage:       "HMAC secret to verify HS256 identity tokens",
			Category:    "Auth",
			Destination: &x.jwtSecret,
			Sources:     cli.EnvVars("OCTOGATE_JWT_SECRET"),
		},
		&cli.StringFlag{
			Name:        "jwt-issuer",
			Usage:       "Required iss claim of identity tokens (optional)",
			Category:    "Auth",
			Destination: &x.jwtIssuer,
			Sources:     cli.EnvVars("OCTOGATE_JWT_ISSUER"),
		},
	}
}

func (x *Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Secret", types.JWTSecret(x.jwtSecret)),
		slog.String("Issuer", x.jwtIssuer),
	)
}

// ServerOptions returns the server options for identity verification.
func (x *Auth) ServerOptions() []server.Option {
	return []server.Option{
		server.WithJWTSecret(types.JWTSecret(x.jwtSecret)),
		server.WithJWTIssuer(types.JWTIssuer(x.jwtIssuer)),
	}
}
