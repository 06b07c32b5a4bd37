package store

import "github.com/katelinlis/SocialHub/internal/app/model"

// PostRepository ...
type PostRepository interface {
	Create(content string, images []string, files []model.FileAttachment) model.Post
	ToggleLike(postID string) (model.Post, error)
	AddComment(postID string, content string) (model.Post, error)
	LikeComment(postID string, commentID string) (model.Post, error)
	Update(postID string, patch model.UpdatePostRequest) (model.Post, error)
	Delete(postID string)
}

// UserRepository ...
type UserRepository interface {
	Current() model.User
	UpdateProfile(patch model.UpdateProfileRequest) model.User
	Find(userID string) (model.User, error)
	List() []model.User
}

// FriendsRepository ...
type FriendsRepository interface {
	Get() []model.User
	Requests() []model.FriendRequest
	Suggestions() []model.User
	Add(userID string) (model.User, error)
	Remove(userID string)
	Decide(requestID string, accept bool) (*model.User, error)
}
