package memstore

import (
	"github.com/katelinlis/SocialHub/internal/app/model"
	"github.com/katelinlis/SocialHub/internal/app/store"
)

//PostRepository ...
type PostRepository struct {
	store *Store
}

//Create publishes a post as the current user at the front of the feed.
func (r *PostRepository) Create(content string, images []string, files []model.FileAttachment) model.Post {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	post := &model.Post{
		ID:          r.store.newID(),
		User:        r.store.currentUser,
		Content:     content,
		Images:      model.NormalizeImages(append([]string(nil), images...)),
		Files:       model.NormalizeFiles(append([]model.FileAttachment(nil), files...)),
		Timestamp:   r.store.now(),
		Likes:       0,
		LikedByUser: false,
		Comments:    []model.Comment{},
	}
	r.store.posts.Prepend(post.ID, post)

	return post.Clone()
}

//ToggleLike ...
func (r *PostRepository) ToggleLike(postID string) (model.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	post, err := r.store.requirePost(postID)
	if err != nil {
		return model.Post{}, err
	}

	if post.LikedByUser {
		if post.Likes > 0 {
			post.Likes--
		}
	} else {
		post.Likes++
	}
	post.LikedByUser = !post.LikedByUser

	return post.Clone(), nil
}

//AddComment ...
func (r *PostRepository) AddComment(postID string, content string) (model.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	post, err := r.store.requirePost(postID)
	if err != nil {
		return model.Post{}, err
	}

	post.Comments = append(post.Comments, model.Comment{
		ID:        r.store.newID(),
		User:      r.store.currentUser,
		Content:   content,
		Timestamp: r.store.now(),
		Likes:     0,
	})

	return post.Clone(), nil
}

//LikeComment adds one like to a comment. Comments have no unlike.
func (r *PostRepository) LikeComment(postID string, commentID string) (model.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	post, err := r.store.requirePost(postID)
	if err != nil {
		return model.Post{}, err
	}

	comment := post.FindComment(commentID)
	if comment == nil {
		return model.Post{}, &store.NotFoundError{Kind: store.KindComment, ID: commentID, PostID: postID}
	}
	comment.Likes++

	return post.Clone(), nil
}

//Update ...
func (r *PostRepository) Update(postID string, patch model.UpdatePostRequest) (model.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	post, err := r.store.requirePost(postID)
	if err != nil {
		return model.Post{}, err
	}

	if patch.Content.Set {
		post.Content = patch.Content.Value
	}
	if patch.Images.Set {
		post.Images = model.NormalizeImages(append([]string(nil), patch.Images.Value...))
	}
	if patch.Files.Set {
		post.Files = model.NormalizeFiles(model.Attachments(patch.Files.Value))
	}

	return post.Clone(), nil
}

//Delete removes a post. Unknown ids are ignored.
func (r *PostRepository) Delete(postID string) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.posts.Delete(postID)
}
