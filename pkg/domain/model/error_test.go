package model_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
)

func TestNewErrorResponse(t *testing.T) {
	testCases := map[string]struct {
		err    error
		status int
		code   string
	}{
		"unauthenticated": {
			err:    goerr.Wrap(types.ErrUnauthenticated, "no token"),
			status: http.StatusUnauthorized,
			code:   model.ErrorCodeUnauthorized,
		},
		"credential not found": {
			err:    goerr.Wrap(types.ErrCredentialNotFound, "no row"),
			status: http.StatusUnauthorized,
			code:   model.ErrorCodeGitHubAuthRequired,
		},
		"credential invalid": {
			err:    goerr.Wrap(types.ErrCredentialInvalid, "rejected"),
			status: http.StatusUnauthorized,
			code:   model.ErrorCodeGitHubAuthRequired,
		},
		"invalid URL": {
			err:    goerr.Wrap(types.ErrInvalidRepositoryURL, "bad"),
			status: http.StatusBadRequest,
			code:   model.ErrorCodeInvalidRepositoryURL,
		},
		"not accessible": {
			err:    goerr.Wrap(types.ErrRepositoryNotAccessible, "404"),
			status: http.StatusForbidden,
			code:   model.ErrorCodeRepositoryNotAccessible,
		},
		"invalid body": {
			err:    goerr.Wrap(types.ErrInvalidRequest, "bad json"),
			status: http.StatusBadRequest,
			code:   model.ErrorCodeInvalidRequestBody,
		},
		"invalid path parameter": {
			err:    goerr.Wrap(types.ErrInvalidPathParameter, "slash"),
			status: http.StatusBadRequest,
			code:   model.ErrorCodeInvalidPathParameter,
		},
		"upstream with status": {
			err:    goerr.Wrap(&types.UpstreamError{StatusCode: http.StatusBadGateway, Message: "bad gateway"}, "failed"),
			status: http.StatusBadGateway,
			code:   model.ErrorCodeUpstreamError,
		},
		"upstream without status": {
			err:    goerr.Wrap(&types.UpstreamError{Message: "timeout"}, "failed"),
			status: http.StatusInternalServerError,
			code:   model.ErrorCodeUpstreamError,
		},
		"unexpected": {
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   model.ErrorCodeInternalServerError,
		},
	}

	for title, tc := range testCases {
		t.Run(title, func(t *testing.T) {
			status, resp := model.NewErrorResponse(tc.err)
			gt.V(t, status).Equal(tc.status)
			gt.V(t, resp.Error).Equal(tc.code)
			gt.V(t, resp.Message).NotEqual("")
		})
	}

	t.Run("internal detail is not exposed", func(t *testing.T) {
		_, resp := model.NewErrorResponse(goerr.New("db password is hunter2"))
		gt.V(t, resp.Message).Equal("internal server error")
	})
}
