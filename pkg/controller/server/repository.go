package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/interfaces"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
)

// maxRequestBody bounds the validate request body.
const maxRequestBody = 64 * 1024

type listRepositoriesResponse struct {
	Repositories []*model.RepositorySummary `json:"repositories"`
}

type listBranchesResponse struct {
	Branches []json.RawMessage `json:"branches"`
}

type validateRepositoryRequest struct {
	RepositoryURL string `json:"repositoryUrl"`
}

func handleListRepositories(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repos, err := uc.ListRepositories(r.Context(), CallerFromContext(r.Context()))
		if err != nil {
			writeError(w, r, err)
			return
		}
		if repos == nil {
			repos = []*model.RepositorySummary{}
		}

		writeJSON(w, r, http.StatusOK, &listRepositoriesResponse{Repositories: repos})
	}
}

func handleListBranches(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := pathParam(r, "owner")
		if err != nil {
			writeError(w, r, err)
			return
		}
		repo, err := pathParam(r, "repo")
		if err != nil {
			writeError(w, r, err)
			return
		}

		branches, err := uc.ListBranches(r.Context(), CallerFromContext(r.Context()), owner, repo)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if branches == nil {
			branches = []json.RawMessage{}
		}

		writeJSON(w, r, http.StatusOK, &listBranchesResponse{Branches: branches})
	}
}

// pathParam returns the decoded value of a path segment. chi matches on the
// raw path, so the value may still be percent-encoded. A decoded "/" is
// rejected because the value is placed into a GitHub API path.
func pathParam(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", goerr.Wrap(types.ErrInvalidPathParameter, "malformed path parameter", goerr.V(name, raw))
	}
	if v == "" || strings.Contains(v, "/") {
		return "", goerr.Wrap(types.ErrInvalidPathParameter, "path parameter is empty or holds a slash", goerr.V(name, raw))
	}
	return v, nil
}

func handleValidateRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validateRepositoryRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
			writeError(w, r, goerr.Wrap(types.ErrInvalidRequest, "failed to decode request body", goerr.V("cause", err.Error())))
			return
		}

		result, err := uc.ValidateRepository(r.Context(), CallerFromContext(r.Context()), req.RepositoryURL)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
