package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Request bodies are capped well above any legitimate payload.
const maxBodyBytes = 1 << 20

// decodeJSON reads a request body into dst, failing closed on junk input
// and unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r credentialsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 256)),
	)
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r createUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 256)),
		validation.Field(&r.Role, validation.Required, validation.In("member", "admin")),
	)
}

// updateUserRequest carries partial updates. Absent fields leave the
// attribute untouched; at least one must be present.
type updateUserRequest struct {
	Role     string `json:"role"`
	Password string `json:"password"`
}

func (r updateUserRequest) Validate() error {
	if r.Role == "" && r.Password == "" {
		return errors.New("at least one of role or password is required")
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role, validation.In("member", "admin")),
		validation.Field(&r.Password, validation.Length(1, 256)),
	)
}

type boardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r boardRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 128)),
		validation.Field(&r.Description, validation.Length(0, 1024)),
	)
}

type createPostRequest struct {
	BoardID  string `json:"board_id"`
	AuthorID string `json:"author_id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

func (r createPostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BoardID, validation.Required),
		validation.Field(&r.AuthorID, validation.Required),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 256)),
	)
}

type updatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (r updatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 256)),
	)
}

type createCommentRequest struct {
	PostID   string `json:"post_id"`
	AuthorID string `json:"author_id"`
	Body     string `json:"body"`
}

func (r createCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PostID, validation.Required),
		validation.Field(&r.AuthorID, validation.Required),
		validation.Field(&r.Body, validation.Required, validation.Length(1, 4096)),
	)
}

type updateCommentRequest struct {
	Body string `json:"body"`
}

func (r updateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Body, validation.Required, validation.Length(1, 4096)),
	)
}
