package http

import (
	"net/http"

	"github.com/driftboard/driftboard/internal/board/service"
	"github.com/driftboard/driftboard/pkg/boardsdk"
	"github.com/driftboard/driftboard/pkg/httpx"
)

type CommentHandler struct {
	CommentService *service.CommentService
}

func (h *CommentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	comment, err := h.CommentService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get comment", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCommentResponse(comment))
}

// HandleList returns a post's comments oldest first, scoped with ?post_id=.
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	comments, err := h.CommentService.List(r.Context(), r.URL.Query().Get("post_id"))
	if err != nil {
		writeServiceError(w, r, "list comments", err)
		return
	}

	out := make([]boardsdk.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var req createCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err)
		return
	}

	comment, err := h.CommentService.Create(r.Context(), claims, req.PostID, req.AuthorID, req.Body)
	if err != nil {
		writeServiceError(w, r, "create comment", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCommentResponse(comment))
}

func (h *CommentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var req updateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err)
		return
	}

	comment, err := h.CommentService.Update(r.Context(), claims, r.PathValue("id"), req.Body)
	if err != nil {
		writeServiceError(w, r, "update comment", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCommentResponse(comment))
}

func (h *CommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	if err := h.CommentService.Delete(r.Context(), claims, r.PathValue("id")); err != nil {
		writeServiceError(w, r, "delete comment", err)
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, boardsdk.StatusResponse{Status: "deleted"})
}
