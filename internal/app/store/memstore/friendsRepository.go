package memstore

import (
	"github.com/katelinlis/SocialHub/internal/app/model"
	"github.com/katelinlis/SocialHub/internal/app/store"
)

//FriendsRepository ...
type FriendsRepository struct {
	store *Store
}

//Get ...
func (r *FriendsRepository) Get() []model.User {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return cloneUsers(r.store.friends.Values())
}

//Requests ...
func (r *FriendsRepository) Requests() []model.FriendRequest {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.requestsSnapshot()
}

//Suggestions lists known users who are neither the current user nor friends.
func (r *FriendsRepository) Suggestions() []model.User {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var users []*model.User
	for _, u := range r.store.roster() {
		if u.ID == r.store.currentUser.ID {
			continue
		}
		if _, ok := r.store.friends.Get(u.ID); ok {
			continue
		}
		users = append(users, u)
	}

	return cloneUsers(users)
}

//Add befriends any discoverable user, the current user included.
func (r *FriendsRepository) Add(userID string) (model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.findUser(userID)
	if !ok {
		return model.User{}, &store.NotFoundError{Kind: store.KindUser, ID: userID}
	}
	r.store.friends.Set(user.ID, user)

	return *user.Clone(), nil
}

//Remove ...
func (r *FriendsRepository) Remove(userID string) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.friends.Delete(userID)
}

//Decide resolves a pending request. An accepted request returns the new
//friend; a rejected one returns nil.
func (r *FriendsRepository) Decide(requestID string, accept bool) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	request, ok := r.store.friendRequests.Get(requestID)
	if !ok {
		return nil, &store.NotFoundError{Kind: store.KindFriendRequest, ID: requestID}
	}
	r.store.friendRequests.Delete(requestID)

	if !accept {
		return nil, nil
	}

	r.store.friends.Set(request.From.ID, request.From)
	return request.From.Clone(), nil
}
