package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionUser = "users"

// userDoc mirrors the users table. Documents are keyed by the user id.
type userDoc struct {
	ID                string  `firestore:"id"`
	IdentityID        string  `firestore:"identity_id"`
	GitHubAccessToken *string `firestore:"github_access_token"`
	GitHubUsername    *string `firestore:"github_username"`
}

func toUserDoc(user *model.User) *userDoc {
	doc := &userDoc{
		ID:         string(user.ID),
		IdentityID: string(user.IdentityID),
	}
	if user.GitHubAccessToken != nil {
		v := string(*user.GitHubAccessToken)
		doc.GitHubAccessToken = &v
	}
	if user.GitHubUsername != nil {
		v := string(*user.GitHubUsername)
		doc.GitHubUsername = &v
	}
	return doc
}

func (x *userDoc) toModel() *model.User {
	user := &model.User{
		ID:         types.UserID(x.ID),
		IdentityID: types.IdentityID(x.IdentityID),
	}
	if x.GitHubAccessToken != nil {
		v := types.GitHubAccessToken(*x.GitHubAccessToken)
		user.GitHubAccessToken = &v
	}
	if x.GitHubUsername != nil {
		v := types.GitHubUsername(*x.GitHubUsername)
		user.GitHubUsername = &v
	}
	return user
}

type userRepository struct {
	client *firestore.Client
}

func (r *userRepository) GetUser(ctx context.Context, key types.UserKey, value string) (*model.User, error) {
	if err := key.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user key", goerr.V("key", key))
	}

	if key == types.UserKeyID {
		return r.getUserByID(ctx, value)
	}

	snap, err := r.findByIdentityID(ctx, types.IdentityID(value))
	if err != nil {
		return nil, err
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user", goerr.V("identity_id", value))
	}
	return doc.toModel(), nil
}

func (r *userRepository) getUserByID(ctx context.Context, id string) (*model.User, error) {
	// Firestore rejects document IDs containing "/", which can never be a user id.
	if id == "" || strings.Contains(id, "/") {
		return nil, goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("id", id))
	}

	snap, err := r.client.Collection(collectionUser).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("id", id))
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user", goerr.V("id", id))
	}
	return doc.toModel(), nil
}

func (r *userRepository) findByIdentityID(ctx context.Context, identityID types.IdentityID) (*firestore.DocumentSnapshot, error) {
	iter := r.client.Collection(collectionUser).
		Where("identity_id", "==", string(identityID)).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("identity_id", identityID))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query user", goerr.V("identity_id", identityID))
	}

	return snap, nil
}

func (r *userRepository) PutUser(ctx context.Context, user *model.User) error {
	if user == nil || user.ID == "" || strings.Contains(string(user.ID), "/") {
		return goerr.Wrap(repository.ErrInvalidInput, "user ID is empty or contains '/'")
	}

	snap, err := r.findByIdentityID(ctx, user.IdentityID)
	switch {
	case err == nil:
		if snap.Ref.ID != string(user.ID) {
			return goerr.Wrap(repository.ErrAlreadyExists, "identity_id is held by another user",
				goerr.V("id", user.ID),
				goerr.V("identity_id", user.IdentityID),
			)
		}
	case !errors.Is(err, repository.ErrNotFound):
		return err
	}

	if _, err := r.client.Collection(collectionUser).Doc(string(user.ID)).Set(ctx, toUserDoc(user)); err != nil {
		return goerr.Wrap(err, "failed to put user", goerr.V("id", user.ID))
	}

	return nil
}

func (r *userRepository) ClearGitHubAccessToken(ctx context.Context, key types.UserKey, value string) (bool, error) {
	if err := key.Validate(); err != nil {
		return false, goerr.Wrap(err, "invalid user key", goerr.V("key", key))
	}

	var ref *firestore.DocumentRef
	if key == types.UserKeyID {
		if value == "" || strings.Contains(value, "/") {
			return false, nil
		}
		ref = r.client.Collection(collectionUser).Doc(value)
	} else {
		snap, err := r.findByIdentityID(ctx, types.IdentityID(value))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		ref = snap.Ref
	}

	var cleared bool
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil
			}
			return err
		}

		var doc userDoc
		if err := snap.DataTo(&doc); err != nil {
			return err
		}
		if doc.GitHubAccessToken == nil {
			return nil
		}

		cleared = true
		return tx.Update(ref, []firestore.Update{
			{Path: "github_access_token", Value: nil},
		})
	})
	if err != nil {
		return false, goerr.Wrap(err, "failed to clear GitHub access token", goerr.V("key", key), goerr.V("value", value))
	}

	return cleared, nil
}

func (r *userRepository) SampleUsers(ctx context.Context, limit int) ([]*model.User, error) {
	iter := r.client.Collection(collectionUser).Limit(limit).Documents(ctx)
	defer iter.Stop()

	var users []*model.User
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate users")
		}

		var doc userDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode user")
		}
		user := doc.toModel()
		user.GitHubAccessToken = nil
		users = append(users, user)
	}

	return users, nil
}
