package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/match3/internal/board"
)

type handlers struct {
	svc *Service
}

var heartbeatInterval = 15 * time.Second

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service and engine errors to status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, board.ErrOutOfBounds), errors.Is(err, board.ErrInvalidConfig):
		status = http.StatusBadRequest
	case errors.Is(err, board.ErrBoardEdited):
		status = http.StatusConflict
	}
	writeJSON(w, status, errorView{Error: err.Error()})
}

// decode reads an optional JSON body into v. An empty body leaves v alone.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("%w: bad request body: %v", board.ErrInvalidConfig, err)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	view, err := h.svc.CreateGame(req)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/games/"+view.ID)
	writeJSON(w, http.StatusCreated, view)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *handlers) swap(w http.ResponseWriter, r *http.Request) {
	var req SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorView{Error: "body must be {\"first\": n, \"second\": n}"})
		return
	}
	res, err := h.svc.Swap(chi.URLParam(r, "id"), req.First, req.Second)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) redeal(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.NewDeal(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *handlers) hint(w http.ResponseWriter, r *http.Request) {
	swap, ok, err := h.svc.Hint(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, HintView{Found: ok, First: swap.A, Second: swap.B})
}

func (h *handlers) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// events streams the board after every change. The current board is sent
// first so a client never starts blind.
func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusNotImplemented, errorView{Error: "streaming unsupported"})
		return
	}

	ctx := r.Context()
	ch, unsub, err := h.svc.Subscribe(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	defer unsub()

	current, err := h.svc.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	first, err := json.Marshal(current)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	writeEvent(w, first)
	flusher.Flush()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = io.WriteString(w, ": ping\n\n")
			flusher.Flush()
		case b, ok := <-ch:
			if !ok {
				return
			}
			writeEvent(w, b)
			flusher.Flush()
		}
	}
}

func writeEvent(w io.Writer, data []byte) {
	_, _ = fmt.Fprintf(w, "event: board\ndata: %s\n\n", data)
}
