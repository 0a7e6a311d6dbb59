package types

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption = goerr.New("invalid option")

	// ErrUnauthenticated means the request carried no verifiable caller identity.
	ErrUnauthenticated = goerr.New("caller identity is required")
	// ErrCredentialNotFound means no usable GitHub token is stored for the caller.
	ErrCredentialNotFound = goerr.New("GitHub credential not found")
	// ErrCredentialInvalid means GitHub rejected the stored token.
	ErrCredentialInvalid = goerr.New("GitHub credential is invalid")

	ErrInvalidRepositoryURL    = goerr.New("invalid repository URL")
	ErrRepositoryNotAccessible = goerr.New("repository is not accessible")
	ErrInvalidRequest          = goerr.New("invalid request")
	ErrInvalidPathParameter    = goerr.New("invalid path parameter")
)

// UpstreamError is a failed call to the GitHub API. StatusCode is zero when
// no response was received (network failure, timeout).
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (x *UpstreamError) Error() string {
	if x.StatusCode == 0 {
		return "upstream request failed: " + x.Message
	}
	return fmt.Sprintf("upstream responded %d: %s", x.StatusCode, x.Message)
}
