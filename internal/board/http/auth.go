package http

import (
	"errors"
	"net/http"

	"github.com/driftboard/driftboard/internal/board/domain"
	"github.com/driftboard/driftboard/internal/board/service"
	"github.com/driftboard/driftboard/pkg/boardsdk"
	"github.com/driftboard/driftboard/pkg/httpx"
	"github.com/driftboard/driftboard/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleSignUp registers a MEMBER account and signs it in, returning the
// fresh token in the body and as the session cookie.
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err)
		return
	}

	result, err := h.AuthService.SignUp(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, "signup", err)
		return
	}

	setTokenCookie(w, result.Token)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, boardsdk.AuthResponse{
		UserID: result.UserID,
		Token:  result.Token,
	})
}

// HandleSignIn authenticates stored credentials. Unknown usernames and
// wrong passwords get the same response, so the endpoint does not confirm
// which accounts exist.
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	// Missing credentials get the same answer as wrong ones.
	if err := req.Validate(); err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "")
		return
	}

	result, err := h.AuthService.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrInvalidPassword) {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "")
			return
		}
		writeServiceError(w, r, "signin", err)
		return
	}

	setTokenCookie(w, result.Token)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, boardsdk.AuthResponse{
		UserID: result.UserID,
		Token:  result.Token,
	})
}

// HandleSignOut acknowledges the sign-out and clears the session cookie.
// Issued tokens remain valid; see AuthService.SignOut.
func (h *AuthHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.SignOut(r.Context()); err != nil {
		writeServiceError(w, r, "signout", err)
		return
	}

	if claims, ok := httpx.ClaimsFromContext(r.Context()); ok {
		slogx.FromContext(r.Context()).Info("user signed out", "user_id", claims.UserID())
	}

	clearTokenCookie(w)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, boardsdk.StatusResponse{Status: "signed_out"})
}

// HandleDemoMember provisions and signs in a throwaway member account.
func (h *AuthHandler) HandleDemoMember(w http.ResponseWriter, r *http.Request) {
	h.handleDemo(w, r, domain.RoleMember)
}

// HandleDemoAdmin provisions and signs in a throwaway admin account.
func (h *AuthHandler) HandleDemoAdmin(w http.ResponseWriter, r *http.Request) {
	h.handleDemo(w, r, domain.RoleAdmin)
}

func (h *AuthHandler) handleDemo(w http.ResponseWriter, r *http.Request, role domain.Role) {
	result, err := h.AuthService.SignInDemo(r.Context(), role)
	if err != nil {
		writeServiceError(w, r, "demo signin", err)
		return
	}

	setTokenCookie(w, result.Token)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, boardsdk.AuthResponse{
		UserID: result.UserID,
		Token:  result.Token,
	})
}
