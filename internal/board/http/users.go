package http

import (
	"net/http"

	"github.com/driftboard/driftboard/internal/board/domain"
	"github.com/driftboard/driftboard/internal/board/service"
	"github.com/driftboard/driftboard/pkg/boardsdk"
	"github.com/driftboard/driftboard/pkg/httpx"
)

type UserHandler struct {
	UserService *service.UserService
}

// HandleCurrent returns the account behind the caller's token, re-read
// from the store. A token whose account has since been deleted gets 404.
func (h *UserHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	user, err := h.UserService.Current(r.Context(), claims)
	if err != nil {
		writeServiceError(w, r, "current user", err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err)
		return
	}

	user, err := h.UserService.Create(r.Context(), claims, req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		writeServiceError(w, r, "create user", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	user, err := h.UserService.Get(r.Context(), claims, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get user", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	users, err := h.UserService.List(r.Context(), claims)
	if err != nil {
		writeServiceError(w, r, "list users", err)
		return
	}

	out := make([]boardsdk.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err)
		return
	}

	user, err := h.UserService.Update(r.Context(), claims, r.PathValue("id"), domain.Role(req.Role), req.Password)
	if err != nil {
		writeServiceError(w, r, "update user", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	if err := h.UserService.Delete(r.Context(), claims, r.PathValue("id")); err != nil {
		writeServiceError(w, r, "delete user", err)
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, boardsdk.StatusResponse{Status: "deleted"})
}
