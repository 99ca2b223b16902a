package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/frame"
	"github.com/san-kum/algolab/internal/playback"
)

type errorResponse struct {
	Error string `json:"error"`
}

type AlgorithmInfo struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type ResetRequest struct {
	Size     int    `json:"size"`
	Category string `json:"category"`
}

// ConfigRequest changes only the fields that are set.
type ConfigRequest struct {
	Speed     *int    `json:"speed"`
	Size      *int    `json:"size"`
	Category  *string `json:"category"`
	Algorithm *string `json:"algorithm"`
	Target    *string `json:"target"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	if s.user == nil {
		writeError(w, http.StatusNotFound, "no user signed in")
		return
	}
	writeJSON(w, http.StatusOK, s.user)
}

func (s *Server) getAlgorithms(w http.ResponseWriter, r *http.Request) {
	categories := drivers.Categories
	if name, ok := mux.Vars(r)["category"]; ok {
		c, err := drivers.ParseCategory(name)
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		categories = []drivers.Category{c}
	}

	lang := s.ctrl.Lang()
	out := []AlgorithmInfo{}
	for _, c := range categories {
		for _, name := range s.reg.Algorithms(c) {
			out = append(out, AlgorithmInfo{
				Name:        name,
				Category:    string(c),
				Description: s.reg.Description(c, name, lang),
			})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// postStart toggles like the start button: it stops an active run.
func (s *Server) postStart(w http.ResponseWriter, r *http.Request) {
	if err := s.ctrl.Start(); err != nil {
		var inputErr *playback.InputError
		if errors.As(err, &inputErr) {
			writeError(w, http.StatusBadRequest, inputErr.Msg)
			return
		}
		s.logger.Error("start failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) postStop(w http.ResponseWriter, r *http.Request) {
	if !s.ctrl.Stop() {
		writeError(w, http.StatusConflict, "not running")
		return
	}
	writeJSON(w, http.StatusOK, s.ctrl.View())
}

// postReset accepts an optional body; missing fields keep the current values.
func (s *Server) postReset(w http.ResponseWriter, r *http.Request) {
	view := s.ctrl.View()
	req := ResetRequest{Size: view.Size, Category: view.Category}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Size == 0 {
			req.Size = view.Size
		}
		if req.Category == "" {
			req.Category = view.Category
		}
	}

	if !s.ctrl.Reset(req.Size, drivers.Category(req.Category)) {
		writeError(w, http.StatusConflict, "reset rejected")
		return
	}
	writeJSON(w, http.StatusOK, s.ctrl.View())
}

func (s *Server) putConfig(w http.ResponseWriter, r *http.Request) {
	var req ConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validateConfig(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Category != nil {
		if err := s.ctrl.SetCategory(drivers.Category(*req.Category)); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Algorithm != nil {
		if err := s.ctrl.SetAlgorithm(*req.Algorithm); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Size != nil {
		if err := s.ctrl.SetSize(*req.Size); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Speed != nil {
		s.ctrl.SetSpeed(*req.Speed)
	}
	if req.Target != nil {
		s.ctrl.SetTarget(*req.Target)
	}
	writeJSON(w, http.StatusOK, s.ctrl.View())
}

// validateConfig checks the whole request against the current view so a
// rejected request leaves the controller untouched.
func (s *Server) validateConfig(req ConfigRequest) error {
	category := drivers.Category(s.ctrl.View().Category)
	if req.Category != nil {
		c, err := drivers.ParseCategory(*req.Category)
		if err != nil {
			return playback.ErrUnknownCategory
		}
		category = c
	}
	if req.Algorithm != nil && !s.reg.Has(category, *req.Algorithm) {
		return playback.ErrUnknownAlgorithm
	}
	if req.Size != nil && (*req.Size < frame.MinSize || *req.Size > frame.MaxSize) {
		return playback.ErrSizeOutOfRange
	}
	return nil
}
