package types

import "log/slog"

type (
	// CallerID is the authenticated subject taken from the verified identity
	// claims. Depending on the upstream issuer it holds either an identity_id
	// or an internal user id, so both lookups accept it.
	CallerID string

	UserID     string
	IdentityID string

	GitHubAccessToken string
	GitHubUsername    string
)

func (x GitHubAccessToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAccessToken) String() string {
	return "***********"
}

// UserKey names a lookup column of the users table.
type UserKey string

const (
	UserKeyIdentityID UserKey = "identity_id"
	UserKeyID         UserKey = "id"
)

// Validate rejects any key that is not a known column. Keys end up in SQL
// text, so only the constants above are accepted.
func (x UserKey) Validate() error {
	switch x {
	case UserKeyIdentityID, UserKeyID:
		return nil
	default:
		return ErrInvalidOption
	}
}

func (x UserKey) String() string {
	return string(x)
}
