package usecase

import (
	"sync"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/m-mizutani/octogate/pkg/domain/interfaces"
	"github.com/m-mizutani/octogate/pkg/infra"
)

const (
	// DefaultUserSample is the number of user rows logged when a credential
	// lookup fails with the diagnostic sample enabled.
	DefaultUserSample = 5

	invalidateTimeout = 5 * time.Second
	auditTimeout      = 10 * time.Second
)

type UseCase struct {
	clients    *infra.Clients
	userSample int

	// audit writes run in the background; Close waits for them
	auditWG     sync.WaitGroup
	auditMu     sync.Mutex
	auditSchema bigquery.Schema
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithUserSample enables logging of at most n user rows at debug level when
// no credential is found for a caller. Zero disables it.
func WithUserSample(n int) Option {
	return func(x *UseCase) {
		x.userSample = n
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

// Close blocks until every pending audit write has finished or timed out.
func (x *UseCase) Close() {
	x.auditWG.Wait()
}
