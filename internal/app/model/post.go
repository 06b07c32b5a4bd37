package model

import (
	"time"
)

//FileAttachment ...
type FileAttachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

//Comment ...
type Comment struct {
	ID        string    `json:"id"`
	User      *User     `json:"user"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Likes     int       `json:"likes"`
}

//Post ...
type Post struct {
	ID          string           `json:"id"`
	User        *User            `json:"user"`
	Content     string           `json:"content"`
	Images      []string         `json:"images"`
	Files       []FileAttachment `json:"files"`
	Timestamp   time.Time        `json:"timestamp"`
	Likes       int              `json:"likes"`
	LikedByUser bool             `json:"likedByUser"`
	Comments    []Comment        `json:"comments"`
}

// Clone returns a deep copy of p. Comments are never nil in the copy so
// they serialize as an empty list.
func (p *Post) Clone() Post {
	c := *p
	c.User = p.User.Clone()
	c.Images = nil
	if len(p.Images) > 0 {
		c.Images = append([]string(nil), p.Images...)
	}
	c.Files = nil
	if len(p.Files) > 0 {
		c.Files = append([]FileAttachment(nil), p.Files...)
	}

	c.Comments = make([]Comment, len(p.Comments))
	for i, comment := range p.Comments {
		comment.User = comment.User.Clone()
		c.Comments[i] = comment
	}

	return c
}

// FindComment returns the comment with the given id, or nil.
func (p *Post) FindComment(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}

// NormalizeImages maps an empty list to nil: a post either has images or
// has none.
func NormalizeImages(images []string) []string {
	if len(images) == 0 {
		return nil
	}
	return images
}

// NormalizeFiles is NormalizeImages for attachments.
func NormalizeFiles(files []FileAttachment) []FileAttachment {
	if len(files) == 0 {
		return nil
	}
	return files
}
