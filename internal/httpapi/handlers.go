// SPDX-License-Identifier: MIT

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/katalvlaran/wordladder/game"
	"github.com/katalvlaran/wordladder/internal/puzzle"
)

const (
	maxBodyBytes        = 1 << 16
	defaultHistoryLimit = 30
	maxHistoryLimit     = 365
)

type errorBody struct {
	Error string `json:"error"`
}

type guessRequest struct {
	Guess       string `json:"guess"`
	CurrentWord string `json:"current_word"`
}

type hintRequest struct {
	Word string `json:"word"`
}

type hintResponse struct {
	Distance int       `json:"distance"`
	Tier     game.Tier `json:"tier"`
	Message  string    `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("httpapi: encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorBody{Error: msg})
}

// decode reads a bounded JSON body into v.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDailyPair(w http.ResponseWriter, r *http.Request) {
	rec, err := s.puzzle.DailyPair(r.Context())
	if err != nil {
		s.logger.Error("httpapi: daily pair", "error", err)
		if errors.Is(err, puzzle.ErrSelectionFailed) {
			s.writeError(w, http.StatusInternalServerError, "could not generate a daily pair, please try again")
			return
		}
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.writeJSON(w, http.StatusOK, rec.Pair)
}

func (s *Server) handleDailySolution(w http.ResponseWriter, r *http.Request) {
	p, err := s.puzzle.Solution(r.Context())
	switch {
	case errors.Is(err, puzzle.ErrNoSolution):
		s.writeError(w, http.StatusNotFound, "no solution found")
		return
	case err != nil:
		s.logger.Error("httpapi: daily solution", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"solution": p})
}

func (s *Server) handleValidateGuess(w http.ResponseWriter, r *http.Request) {
	var req guessRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Guess) == "" || strings.TrimSpace(req.CurrentWord) == "" {
		s.writeError(w, http.StatusBadRequest, "missing guess or current_word")
		return
	}
	s.writeJSON(w, http.StatusOK, s.puzzle.ValidateGuess(r.Context(), req.Guess, req.CurrentWord))
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Word) == "" {
		s.writeError(w, http.StatusBadRequest, "missing word")
		return
	}
	h, err := s.puzzle.Hint(r.Context(), req.Word)
	if err != nil {
		s.logger.Error("httpapi: hint", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.writeJSON(w, http.StatusOK, hintResponse{Distance: h.Distance, Tier: h.Tier, Message: h.Message})
}

func (s *Server) handleDistance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	word, target := q.Get("word"), q.Get("target")
	if word == "" || target == "" {
		s.writeError(w, http.StatusBadRequest, "missing word or target")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"distance": s.puzzle.Distance(word, target)})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			s.writeError(w, http.StatusBadRequest, "limit must be between 1 and 365")
			return
		}
		limit = n
	}
	recs, err := s.puzzle.History(r.Context(), limit)
	if err != nil {
		s.logger.Error("httpapi: history", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.writeJSON(w, http.StatusOK, recs)
}
