package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octogate/pkg/controller/server"
	"github.com/m-mizutani/octogate/pkg/domain/mock"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
)

const (
	testSecret = types.JWTSecret("test-secret-12345")
	testIssuer = types.JWTIssuer("https://auth.example.com")
)

func signToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	gt.NoError(t, err)
	return signed
}

func validClaims(subject string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    string(testIssuer),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

func newServer(uc *mock.UseCaseMock) *server.Server {
	return server.New(uc, server.WithJWTSecret(testSecret), server.WithJWTIssuer(testIssuer))
}

func doRequest(t *testing.T, srv *server.Server, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var resp model.ErrorResponse
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	srv := newServer(&mock.UseCaseMock{})

	rec := doRequest(t, srv, http.MethodGet, "/health", "", "")
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestAuthentication(t *testing.T) {
	testCases := map[string]struct {
		token func(t *testing.T) string
	}{
		"missing token": {
			token: func(t *testing.T) string { return "" },
		},
		"malformed token": {
			token: func(t *testing.T) string { return "not-a-jwt" },
		},
		"expired token": {
			token: func(t *testing.T) string {
				claims := validClaims("caller-1")
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return signToken(t, claims)
			},
		},
		"no expiration": {
			token: func(t *testing.T) string {
				claims := validClaims("caller-1")
				claims.ExpiresAt = nil
				return signToken(t, claims)
			},
		},
		"wrong issuer": {
			token: func(t *testing.T) string {
				claims := validClaims("caller-1")
				claims.Issuer = "https://evil.example.com"
				return signToken(t, claims)
			},
		},
		"no subject": {
			token: func(t *testing.T) string { return signToken(t, validClaims("")) },
		},
		"wrong key": {
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims("caller-1"))
				signed, err := token.SignedString([]byte("another-secret"))
				gt.NoError(t, err)
				return signed
			},
		},
	}

	for title, tc := range testCases {
		t.Run(title, func(t *testing.T) {
			uc := &mock.UseCaseMock{}
			srv := newServer(uc)

			rec := doRequest(t, srv, http.MethodGet, "/repositories", "", tc.token(t))
			gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
			gt.V(t, decodeError(t, rec).Error).Equal(model.ErrorCodeUnauthorized)
			gt.A(t, uc.ListRepositoriesCalls()).Length(0)
		})
	}

	t.Run("no secret configured rejects everything", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc)

		rec := doRequest(t, srv, http.MethodGet, "/repositories", "", signToken(t, validClaims("caller-1")))
		gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
		gt.A(t, uc.ListRepositoriesCalls()).Length(0)
	})
}

func TestListRepositories(t *testing.T) {
	t.Run("returns repositories of caller", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListRepositoriesFunc: func(ctx context.Context, caller types.CallerID) ([]*model.RepositorySummary, error) {
				id := int64(1)
				name := "widgets"
				return []*model.RepositorySummary{{ID: &id, Name: &name}}, nil
			},
		}
		srv := newServer(uc)

		rec := doRequest(t, srv, http.MethodGet, "/repositories", "", signToken(t, validClaims("caller-1")))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")
		gt.S(t, rec.Body.String()).Contains(`"repositories":[{"id":1,"name":"widgets","full_name":null`)

		calls := uc.ListRepositoriesCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Caller).Equal(types.CallerID("caller-1"))
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListRepositoriesFunc: func(ctx context.Context, caller types.CallerID) ([]*model.RepositorySummary, error) {
				return nil, nil
			},
		}
		srv := newServer(uc)

		rec := doRequest(t, srv, http.MethodGet, "/repositories", "", signToken(t, validClaims("caller-1")))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`{"repositories":[]}`)
	})

	t.Run("credential errors ask for GitHub auth", func(t *testing.T) {
		for _, sentinel := range []error{types.ErrCredentialNotFound, types.ErrCredentialInvalid} {
			uc := &mock.UseCaseMock{
				ListRepositoriesFunc: func(ctx context.Context, caller types.CallerID) ([]*model.RepositorySummary, error) {
					return nil, goerr.Wrap(sentinel, "no token")
				},
			}
			srv := newServer(uc)

			rec := doRequest(t, srv, http.MethodGet, "/repositories", "", signToken(t, validClaims("caller-1")))
			gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
			gt.V(t, decodeError(t, rec).Error).Equal(model.ErrorCodeGitHubAuthRequired)
		}
	})

	t.Run("internal detail is not exposed", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListRepositoriesFunc: func(ctx context.Context, caller types.CallerID) ([]*model.RepositorySummary, error) {
				return nil, goerr.New("pq: password authentication failed", goerr.V("sample", "u1,u2,u3"))
			},
		}
		srv := newServer(uc)

		rec := doRequest(t, srv, http.MethodGet, "/repositories", "", signToken(t, validClaims("caller-1")))
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
		gt.V(t, rec.Body.String()).Equal(`{"error":"InternalServerError","message":"internal server error"}`)
	})
}

func TestListBranches(t *testing.T) {
	t.Run("passes branches through", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListBranchesFunc: func(ctx context.Context, caller types.CallerID, owner, repo string) ([]json.RawMessage, error) {
				return []json.RawMessage{json.RawMessage(`{"name":"main","protected":true}`)}, nil
			},
		}
		srv := newServer(uc)

		rec := doRequest(t, srv, http.MethodGet, "/repositories/acme/widgets/branches", "", signToken(t, validClaims("caller-1")))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`{"branches":[{"name":"main","protected":true}]}`)

		calls := uc.ListBranchesCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Owner).Equal("acme")
		gt.V(t, calls[0].Repo).Equal("widgets")
	})

	t.Run("escaped path segments are decoded", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListBranchesFunc: func(ctx context.Context, caller types.CallerID, owner, repo string) ([]json.RawMessage, error) {
				return []json.RawMessage{}, nil
			},
		}
		srv := newServer(uc)

		rec := doRequest(t, srv, http.MethodGet, "/repositories/acme%2Dlabs/my%2Ewidgets/branches", "", signToken(t, validClaims("caller-1")))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`{"branches":[]}`)

		calls := uc.ListBranchesCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Owner).Equal("acme-labs")
		gt.V(t, calls[0].Repo).Equal("my.widgets")
	})

	t.Run("encoded slash is rejected", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := newServer(uc)

		rec := doRequest(t, srv, http.MethodGet, "/repositories/acme/widgets%2F..%2Fother/branches", "", signToken(t, validClaims("caller-1")))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, decodeError(t, rec).Error).Equal(model.ErrorCodeInvalidPathParameter)
		gt.A(t, uc.ListBranchesCalls()).Length(0)
	})

	t.Run("upstream status is propagated", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListBranchesFunc: func(ctx context.Context, caller types.CallerID, owner, repo string) ([]json.RawMessage, error) {
				return nil, goerr.Wrap(&types.UpstreamError{StatusCode: http.StatusNotFound, Message: "Not Found"}, "failed")
			},
		}
		srv := newServer(uc)

		rec := doRequest(t, srv, http.MethodGet, "/repositories/acme/missing/branches", "", signToken(t, validClaims("caller-1")))
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
		resp := decodeError(t, rec)
		gt.V(t, resp.Error).Equal(model.ErrorCodeUpstreamError)
		gt.V(t, resp.Message).Equal("Not Found")
	})
}

func TestValidateRepository(t *testing.T) {
	t.Run("returns validation result", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ValidateRepositoryFunc: func(ctx context.Context, caller types.CallerID, repositoryURL string) (*model.RepositoryValidation, error) {
				gt.V(t, repositoryURL).Equal("https://github.com/acme/widgets")
				id := int64(1)
				name, fullName, branch, visibility := "widgets", "acme/widgets", "main", "public"
				return &model.RepositoryValidation{
					Valid: true,
					Repository: &model.ValidatedRepository{
						ID: &id, Name: &name, FullName: &fullName, DefaultBranch: &branch, Visibility: &visibility,
					},
				}, nil
			},
		}
		srv := newServer(uc)

		rec := doRequest(t, srv, http.MethodPost, "/repositories/validate",
			`{"repositoryUrl":"https://github.com/acme/widgets"}`, signToken(t, validClaims("caller-1")))
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal(`{"valid":true,"repository":{"id":1,"name":"widgets","full_name":"acme/widgets","default_branch":"main","visibility":"public"}}`)
	})

	t.Run("broken body is rejected", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := newServer(uc)

		rec := doRequest(t, srv, http.MethodPost, "/repositories/validate", `{"repositoryUrl":`, signToken(t, validClaims("caller-1")))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, decodeError(t, rec).Error).Equal(model.ErrorCodeInvalidRequestBody)
		gt.A(t, uc.ValidateRepositoryCalls()).Length(0)
	})

	testCases := map[string]struct {
		err    error
		status int
		code   string
	}{
		"invalid URL": {
			err:    types.ErrInvalidRepositoryURL,
			status: http.StatusBadRequest,
			code:   model.ErrorCodeInvalidRepositoryURL,
		},
		"not accessible": {
			err:    types.ErrRepositoryNotAccessible,
			status: http.StatusForbidden,
			code:   model.ErrorCodeRepositoryNotAccessible,
		},
		"no credential": {
			err:    types.ErrCredentialNotFound,
			status: http.StatusUnauthorized,
			code:   model.ErrorCodeGitHubAuthRequired,
		},
	}

	for title, tc := range testCases {
		t.Run(title, func(t *testing.T) {
			uc := &mock.UseCaseMock{
				ValidateRepositoryFunc: func(ctx context.Context, caller types.CallerID, repositoryURL string) (*model.RepositoryValidation, error) {
					return nil, goerr.Wrap(tc.err, "validation failed")
				},
			}
			srv := newServer(uc)

			rec := doRequest(t, srv, http.MethodPost, "/repositories/validate",
				`{"repositoryUrl":"https://github.com/acme/widgets"}`, signToken(t, validClaims("caller-1")))
			gt.V(t, rec.Code).Equal(tc.status)
			gt.V(t, decodeError(t, rec).Error).Equal(tc.code)
		})
	}
}
