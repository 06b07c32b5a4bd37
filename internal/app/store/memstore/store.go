package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/katelinlis/SocialHub/internal/app/model"
	"github.com/katelinlis/SocialHub/internal/app/store"
)

//Store keeps every record in process memory. All repositories share one
//lock and hand out copies, so callers never see a half-applied change.
type Store struct {
	mu    sync.Mutex
	now   func() time.Time
	newID func() string

	currentUser    *model.User
	posts          *orderedMap[*model.Post] // newest first
	friendRequests *orderedMap[*model.FriendRequest]
	friends        *orderedMap[*model.User]

	postRepository    *PostRepository
	userRepository    *UserRepository
	friendsRepository *FriendsRepository
}

var _ store.Store = (*Store)(nil)

// Option ...
type Option func(*Store)

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the uuid generator used for new posts and comments.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

//New returns a store seeded with the demo feed.
func New(opts ...Option) *Store {
	s := &Store{
		now:            func() time.Time { return time.Now().UTC() },
		newID:          uuid.NewString,
		posts:          newOrderedMap[*model.Post](),
		friendRequests: newOrderedMap[*model.FriendRequest](),
		friends:        newOrderedMap[*model.User](),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.postRepository = &PostRepository{store: s}
	s.userRepository = &UserRepository{store: s}
	s.friendsRepository = &FriendsRepository{store: s}

	s.seed()

	return s
}

//Post ...
func (s *Store) Post() store.PostRepository {
	return s.postRepository
}

//User ...
func (s *Store) User() store.UserRepository {
	return s.userRepository
}

//Friends ...
func (s *Store) Friends() store.FriendsRepository {
	return s.friendsRepository
}

//Feed returns a snapshot of everything the current user sees.
func (s *Store) Feed() model.Feed {
	s.mu.Lock()
	defer s.mu.Unlock()

	return model.Feed{
		CurrentUser:    *s.currentUser.Clone(),
		Posts:          s.postsSnapshot(),
		FriendRequests: s.requestsSnapshot(),
		Friends:        cloneUsers(s.friends.Values()),
	}
}

func (s *Store) postsSnapshot() []model.Post {
	posts := make([]model.Post, 0, s.posts.Len())
	for _, post := range s.posts.Values() {
		posts = append(posts, post.Clone())
	}
	return posts
}

func (s *Store) requestsSnapshot() []model.FriendRequest {
	requests := make([]model.FriendRequest, 0, s.friendRequests.Len())
	for _, request := range s.friendRequests.Values() {
		requests = append(requests, request.Clone())
	}
	return requests
}

// requirePost must be called with s.mu held.
func (s *Store) requirePost(postID string) (*model.Post, error) {
	post, ok := s.posts.Get(postID)
	if !ok {
		return nil, &store.NotFoundError{Kind: store.KindPost, ID: postID}
	}
	return post, nil
}

// findUser resolves a user id from everywhere a user can appear except the
// friends set: the current user, post and comment authors in feed order,
// then pending request senders. Must be called with s.mu held.
func (s *Store) findUser(userID string) (*model.User, bool) {
	if s.currentUser.ID == userID {
		return s.currentUser, true
	}

	for _, post := range s.posts.Values() {
		if post.User.ID == userID {
			return post.User, true
		}
		for _, comment := range post.Comments {
			if comment.User.ID == userID {
				return comment.User, true
			}
		}
	}

	for _, request := range s.friendRequests.Values() {
		if request.From.ID == userID {
			return request.From, true
		}
	}

	return nil, false
}

// roster lists every known user once, first occurrence wins. Must be called
// with s.mu held.
func (s *Store) roster() []*model.User {
	seen := map[string]bool{}
	var users []*model.User
	add := func(u *model.User) {
		if seen[u.ID] {
			return
		}
		seen[u.ID] = true
		users = append(users, u)
	}

	add(s.currentUser)
	for _, post := range s.posts.Values() {
		add(post.User)
		for _, comment := range post.Comments {
			add(comment.User)
		}
	}
	for _, friend := range s.friends.Values() {
		add(friend)
	}
	for _, request := range s.friendRequests.Values() {
		add(request.From)
	}

	return users
}

func cloneUsers(users []*model.User) []model.User {
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		out = append(out, *u.Clone())
	}
	return out
}
