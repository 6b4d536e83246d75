package http

import (
	"net/http"

	"github.com/driftboard/driftboard/internal/board/service"
	"github.com/driftboard/driftboard/pkg/boardsdk"
	"github.com/driftboard/driftboard/pkg/httpx"
)

type BoardHandler struct {
	BoardService *service.BoardService
}

func (h *BoardHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	board, err := h.BoardService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get board", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toBoardResponse(board))
}

func (h *BoardHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	boards, err := h.BoardService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "list boards", err)
		return
	}

	out := make([]boardsdk.BoardResponse, 0, len(boards))
	for _, b := range boards {
		out = append(out, toBoardResponse(b))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *BoardHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var req boardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err)
		return
	}

	board, err := h.BoardService.Create(r.Context(), claims, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, "create board", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toBoardResponse(board))
}

func (h *BoardHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	var req boardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(w, err)
		return
	}

	board, err := h.BoardService.Update(r.Context(), claims, r.PathValue("id"), req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, "update board", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toBoardResponse(board))
}

func (h *BoardHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestClaims(w, r)
	if !ok {
		return
	}

	if err := h.BoardService.Delete(r.Context(), claims, r.PathValue("id")); err != nil {
		writeServiceError(w, r, "delete board", err)
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, boardsdk.StatusResponse{Status: "deleted"})
}
