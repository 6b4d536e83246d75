package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/driftboard/driftboard/internal/board/domain"
	"github.com/driftboard/driftboard/internal/board/service"
	"github.com/driftboard/driftboard/pkg/boardsdk"
	"github.com/driftboard/driftboard/pkg/httpx"
	"github.com/driftboard/driftboard/pkg/jwtx"
	"github.com/driftboard/driftboard/pkg/slogx"
)

// requestClaims pulls the verified claims attached by the auth middleware.
// A false return means the route was wired without RequireAuth; respond 401
// rather than panic.
func requestClaims(w http.ResponseWriter, r *http.Request) (jwtx.Claims, bool) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "")
	}
	return claims, ok
}

// writeBadRequest reports a decoding or validation failure.
func writeBadRequest(w http.ResponseWriter, err error) {
	httpx.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
}

// writeServiceError translates service sentinels into the uniform wire
// mapping: bad input and conflicts are 400, policy denials 401, missing
// resources 404, everything else 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "")
	case errors.Is(err, service.ErrAlreadyExists):
		httpx.WriteError(w, http.StatusBadRequest, "already_exists", "")
	case errors.Is(err, service.ErrUnauthorized):
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "")
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "")
	default:
		slogx.FromContext(r.Context()).Error(op+" failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
	}
}

func toUserResponse(u domain.User) boardsdk.UserResponse {
	return boardsdk.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toBoardResponse(b domain.Board) boardsdk.BoardResponse {
	return boardsdk.BoardResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toPostResponse(p domain.Post) boardsdk.PostResponse {
	return boardsdk.PostResponse{
		ID:        p.ID,
		BoardID:   p.BoardID,
		AuthorID:  p.AuthorID,
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toCommentResponse(c domain.Comment) boardsdk.CommentResponse {
	return boardsdk.CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// setTokenCookie mirrors the bearer token into the session cookie so
// browser clients stay signed in without scripting the header.
func setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.TokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
