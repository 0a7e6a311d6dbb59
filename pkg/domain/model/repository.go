package model

import (
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/types"
)

// RepositorySummary is the projection of a GitHub repository returned by the
// repository list. Fields missing upstream stay nil and are rendered as null.
type RepositorySummary struct {
	ID            *int64     `json:"id"`
	Name          *string    `json:"name"`
	FullName      *string    `json:"full_name"`
	HTMLURL       *string    `json:"html_url"`
	Description   *string    `json:"description"`
	DefaultBranch *string    `json:"default_branch"`
	Visibility    *string    `json:"visibility"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

// ValidatedRepository is the reduced summary returned by repository validation.
type ValidatedRepository struct {
	ID            *int64  `json:"id"`
	Name          *string `json:"name"`
	FullName      *string `json:"full_name"`
	DefaultBranch *string `json:"default_branch"`
	Visibility    *string `json:"visibility"`
}

type RepositoryValidation struct {
	Valid      bool                 `json:"valid"`
	Repository *ValidatedRepository `json:"repository"`
}

// RepositoryRef identifies a repository by owner and name.
type RepositoryRef struct {
	Owner string
	Name  string
}

func (x RepositoryRef) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidRepositoryURL, "owner is empty")
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrInvalidRepositoryURL, "repository name is empty")
	}
	return nil
}

func (x RepositoryRef) String() string {
	return x.Owner + "/" + x.Name
}

// The pattern is unanchored: any string containing
// github.com/<owner>/<repo> is accepted, whatever the scheme or suffix.
var repositoryURLPattern = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)`)

// ParseRepositoryURL extracts owner and repository name from a GitHub URL.
// A trailing ".git" on the repository name is dropped.
func ParseRepositoryURL(repositoryURL string) (RepositoryRef, error) {
	m := repositoryURLPattern.FindStringSubmatch(repositoryURL)
	if m == nil {
		return RepositoryRef{}, goerr.Wrap(types.ErrInvalidRepositoryURL, "URL does not match github.com/<owner>/<repo>",
			goerr.V("url", repositoryURL),
		)
	}

	ref := RepositoryRef{
		Owner: m[1],
		Name:  strings.TrimSuffix(m[2], ".git"),
	}
	if err := ref.Validate(); err != nil {
		return RepositoryRef{}, goerr.Wrap(err, "invalid repository reference", goerr.V("url", repositoryURL))
	}

	return ref, nil
}
