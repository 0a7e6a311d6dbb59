package server

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/utils/logging"
)

// authenticate verifies the HS256 bearer token of the request and stores its
// subject as the caller.
func authenticate(secret types.JWTSecret, issuer types.JWTIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := verifyIdentity(r, secret, issuer)
			if err != nil {
				logging.From(r.Context()).Info("rejected caller identity", "error", err)
				writeError(w, r, err)
				return
			}

			ctx := ctxWithCaller(r.Context(), caller)
			ctx = logging.With(ctx, logging.From(ctx).With("caller", caller))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verifyIdentity(r *http.Request, secret types.JWTSecret, issuer types.JWTIssuer) (types.CallerID, error) {
	if secret == "" {
		return "", goerr.Wrap(types.ErrUnauthenticated, "identity verification is not configured")
	}

	authz := r.Header.Get("Authorization")
	tokenStr, ok := strings.CutPrefix(authz, "Bearer ")
	if !ok || tokenStr == "" {
		return "", goerr.Wrap(types.ErrUnauthenticated, "missing bearer token")
	}

	parserOptions := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(string(issuer)))
	}

	var claims jwt.RegisteredClaims
	if _, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, parserOptions...); err != nil {
		return "", goerr.Wrap(types.ErrUnauthenticated, "invalid bearer token", goerr.V("cause", err.Error()))
	}

	if claims.Subject == "" {
		return "", goerr.Wrap(types.ErrUnauthenticated, "bearer token has no subject")
	}

	return types.CallerID(claims.Subject), nil
}
