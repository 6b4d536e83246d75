package http

import (
	"net/http"

	"github.com/driftboard/driftboard/internal/board/service"
	"github.com/driftboard/driftboard/pkg/boardsdk"
	"github.com/driftboard/driftboard/pkg/httpx"
)

type PostHandler struct {
	PostService *service.PostService
}

func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get post", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPostResponse(post))
}

// HandleList returns posts newest first, optionally scoped to one board
// with ?board_id=.
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.List(r.Context(), r.URL.Query().Get("board_id"))
	if err != nil {
		writeServiceError(w, r, "list posts", err)
		return
	}

	out := make([]boardsdk.PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var req createPostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err)
		return
	}

	post, err := h.PostService.Create(r.Context(), claims, req.BoardID, req.AuthorID, req.Title, req.Body)
	if err != nil {
		writeServiceError(w, r, "create post", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toPostResponse(post))
}

func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var req updatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err)
		return
	}

	post, err := h.PostService.Update(r.Context(), claims, r.PathValue("id"), req.Title, req.Body)
	if err != nil {
		writeServiceError(w, r, "update post", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPostResponse(post))
}

func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	if err := h.PostService.Delete(r.Context(), claims, r.PathValue("id")); err != nil {
		writeServiceError(w, r, "delete post", err)
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, boardsdk.StatusResponse{Status: "deleted"})
}
