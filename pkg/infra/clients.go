package infra

import (
	"github.com/m-mizutani/octogate/pkg/domain/interfaces"
)

type Clients struct {
	github   interfaces.GitHub
	userRepo interfaces.UserRepository
	bqClient interfaces.BigQuery
	archive  interfaces.ObjectStorage
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) UserRepository() interfaces.UserRepository {
	return x.userRepo
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func (x *Clients) AuditArchive() interfaces.ObjectStorage {
	return x.archive
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithUserRepository(repo interfaces.UserRepository) Option {
	return func(x *Clients) {
		x.userRepo = repo
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

// WithAuditArchive sets the bucket audit events are copied to as JSON objects.
func WithAuditArchive(storage interfaces.ObjectStorage) Option {
	return func(x *Clients) {
		x.archive = storage
	}
}
