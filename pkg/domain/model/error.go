package model

import (
	"errors"
	"net/http"

	"github.com/m-mizutani/octogate/pkg/domain/types"
)

const (
	ErrorCodeUnauthorized            = "Unauthorized"
	ErrorCodeGitHubAuthRequired      = "GitHubAuthRequired"
	ErrorCodeUpstreamError           = "UpstreamError"
	ErrorCodeInvalidRepositoryURL    = "InvalidRepositoryUrl"
	ErrorCodeRepositoryNotAccessible = "RepositoryNotAccessible"
	ErrorCodeInvalidRequestBody      = "InvalidRequestBody"
	ErrorCodeInvalidPathParameter    = "InvalidPathParameter"
	ErrorCodeInternalServerError     = "InternalServerError"
)

// ErrorResponse is the JSON body of every failed request. It never carries
// internal detail such as wrapped values or stack traces.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewErrorResponse classifies err into an HTTP status and response body.
func NewErrorResponse(err error) (int, *ErrorResponse) {
	var upErr *types.UpstreamError

	switch {
	case errors.Is(err, types.ErrUnauthenticated):
		return http.StatusUnauthorized, &ErrorResponse{
			Error:   ErrorCodeUnauthorized,
			Message: "valid caller identity is required",
		}

	case errors.Is(err, types.ErrCredentialNotFound), errors.Is(err, types.ErrCredentialInvalid):
		return http.StatusUnauthorized, &ErrorResponse{
			Error:   ErrorCodeGitHubAuthRequired,
			Message: "GitHub authentication required",
		}

	case errors.Is(err, types.ErrInvalidRepositoryURL):
		return http.StatusBadRequest, &ErrorResponse{
			Error:   ErrorCodeInvalidRepositoryURL,
			Message: "repositoryUrl must look like https://github.com/<owner>/<repo>",
		}

	case errors.Is(err, types.ErrRepositoryNotAccessible):
		return http.StatusForbidden, &ErrorResponse{
			Error:   ErrorCodeRepositoryNotAccessible,
			Message: "repository does not exist or is not accessible with the stored GitHub credential",
		}

	case errors.Is(err, types.ErrInvalidRequest):
		return http.StatusBadRequest, &ErrorResponse{
			Error:   ErrorCodeInvalidRequestBody,
			Message: "request body must be a JSON object",
		}

	case errors.Is(err, types.ErrInvalidPathParameter):
		return http.StatusBadRequest, &ErrorResponse{
			Error:   ErrorCodeInvalidPathParameter,
			Message: "owner and repo must be single path segments",
		}

	case errors.As(err, &upErr):
		status := upErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusInternalServerError
		}
		return status, &ErrorResponse{
			Error:   ErrorCodeUpstreamError,
			Message: upErr.Message,
		}

	default:
		return http.StatusInternalServerError, &ErrorResponse{
			Error:   ErrorCodeInternalServerError,
			Message: "internal server error",
		}
	}
}
