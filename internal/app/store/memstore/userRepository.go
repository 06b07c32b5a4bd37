package memstore

import (
	"github.com/katelinlis/SocialHub/internal/app/model"
	"github.com/katelinlis/SocialHub/internal/app/store"
)

// UserRepository ...
type UserRepository struct {
	store *Store
}

// Current ...
func (r *UserRepository) Current() model.User {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return *r.store.currentUser.Clone()
}

// UpdateProfile edits the current user in place. Posts and comments
// authored by the current user reflect the change.
func (r *UserRepository) UpdateProfile(patch model.UpdateProfileRequest) model.User {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.currentUser.Apply(patch)

	return *r.store.currentUser.Clone()
}

// Find ...
func (r *UserRepository) Find(userID string) (model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.findUser(userID)
	if !ok {
		return model.User{}, &store.NotFoundError{Kind: store.KindUser, ID: userID}
	}

	return *user.Clone(), nil
}

// List ...
func (r *UserRepository) List() []model.User {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return cloneUsers(r.store.roster())
}
