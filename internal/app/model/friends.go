package model

import (
	"time"
)

//FriendRequest is a pending invitation sent to the current user.
type FriendRequest struct {
	ID        string    `json:"id"`
	From      *User     `json:"from"`
	Timestamp time.Time `json:"timestamp"`
}

// Clone ...
func (r *FriendRequest) Clone() FriendRequest {
	c := *r
	c.From = r.From.Clone()
	return c
}

//Feed ...
type Feed struct {
	CurrentUser    User            `json:"currentUser"`
	Posts          []Post          `json:"posts"`
	FriendRequests []FriendRequest `json:"friendRequests"`
	Friends        []User          `json:"friends"`
}
