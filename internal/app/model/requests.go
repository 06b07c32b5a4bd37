package model

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// Required keys are pointers so that an empty string is still accepted
// while a missing key is not.

//FileAttachmentRequest is an attachment as sent by the client.
type FileAttachmentRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
	URL  *string `json:"url"`
}

//Validate ...
func (f FileAttachmentRequest) Validate() error {
	return validation.ValidateStruct(
		&f,
		validation.Field(&f.Name, validation.NotNil),
		validation.Field(&f.Type, validation.NotNil),
		validation.Field(&f.URL, validation.NotNil),
	)
}

//Attachments converts validated request attachments into model values.
func Attachments(files []FileAttachmentRequest) []FileAttachment {
	if files == nil {
		return nil
	}
	out := make([]FileAttachment, 0, len(files))
	for _, f := range files {
		out = append(out, FileAttachment{
			Name: deref(f.Name),
			Type: deref(f.Type),
			URL:  deref(f.URL),
		})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

//CreatePostRequest ...
type CreatePostRequest struct {
	Content *string                 `json:"content"`
	Images  []string                `json:"images"`
	Files   []FileAttachmentRequest `json:"files"`
}

//Validate ...
func (r *CreatePostRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Content, validation.NotNil),
		validation.Field(&r.Files),
	)
}

//UpdatePostRequest ...
type UpdatePostRequest struct {
	Content Optional[string]                  `json:"content"`
	Images  Optional[[]string]                `json:"images"`
	Files   Optional[[]FileAttachmentRequest] `json:"files"`
}

//Validate ...
func (r *UpdatePostRequest) Validate() error {
	if !r.Files.Set {
		return nil
	}
	if err := validation.Validate(r.Files.Value); err != nil {
		return validation.Errors{"files": err}
	}
	return nil
}

//CreateCommentRequest ...
type CreateCommentRequest struct {
	Content *string `json:"content"`
}

//Validate ...
func (r *CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Content, validation.NotNil),
	)
}

//UpdateProfileRequest carries the profile fields to change; nil fields are left alone.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Title    *string `json:"title"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
	Website  *string `json:"website"`
}

//FriendActionRequest ...
type FriendActionRequest struct {
	UserID *string `json:"userId"`
}

//Validate ...
func (r *FriendActionRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.UserID, validation.NotNil),
	)
}

//FriendRequestDecision ...
type FriendRequestDecision struct {
	RequestID *string `json:"requestId"`
}

//Validate ...
func (r *FriendRequestDecision) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.RequestID, validation.NotNil),
	)
}
