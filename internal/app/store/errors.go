package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("not found")

// Kinds of records a NotFoundError can name.
const (
	KindPost          = "post"
	KindComment       = "comment"
	KindUser          = "user"
	KindFriendRequest = "friend request"
)

// NotFoundError reports an id that did not resolve to a record.
type NotFoundError struct {
	Kind   string
	ID     string
	PostID string // set for comments, which are scoped to their post
}

func (e *NotFoundError) Error() string {
	if e.PostID != "" {
		return fmt.Sprintf("%s %s not found in post %s", e.Kind, e.ID, e.PostID)
	}
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// Is ...
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
