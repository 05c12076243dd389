package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"question-lab/domain"
	"question-lab/errors"
	"question-lab/services"
	"strconv"
)

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Stats   any    `json:"stats,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{Status: "ok", Service: s.cfg.AppName}
	if s.monitoring != nil {
		resp.Stats = s.monitoring.Snapshot()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTopSlide(w http.ResponseWriter, r *http.Request) {
	latestFirst := false
	if raw := r.URL.Query().Get("latest_first"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeError(w, r, fmt.Errorf("%w: latest_first must be a boolean", errors.ErrInvalidQuestion))
			return
		}
		latestFirst = v
	}
	report, err := s.reports.TopSlide(r.Context(), domain.RoomID(r.PathValue("roomId")), latestFirst)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, http.StatusOK, "Top slide report generated", report)
}

func (s *Server) handleTop3(w http.ResponseWriter, r *http.Request) {
	report, err := s.reports.Top3(r.Context(), domain.RoomID(r.PathValue("roomId")))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	message := "Top 3 questions generated"
	if report.TotalQuestions == 0 {
		message = "No questions in this room"
	}
	s.writeData(w, http.StatusOK, message, report)
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	var fromTs *int64
	if raw := r.URL.Query().Get("fromTs"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.writeError(w, r, fmt.Errorf("%w: fromTs must be an integer", errors.ErrInvalidQuestion))
			return
		}
		fromTs = &v
	}
	questions, err := s.questions.List(r.Context(), domain.RoomID(r.PathValue("roomId")), fromTs)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if questions == nil {
		questions = []domain.QuestionRecord{}
	}
	s.writeData(w, http.StatusOK, "Questions listed", questions)
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var body services.IngestRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", errors.ErrInvalidQuestion, err))
		return
	}
	question, err := s.questions.Ingest(r.Context(), domain.RoomID(r.PathValue("roomId")), body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, http.StatusCreated, "Question stored", question)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		s.writeError(w, r, fmt.Errorf("%w: q is required", errors.ErrInvalidQuestion))
		return
	}
	hits, err := s.questions.Search(r.Context(), domain.RoomID(r.PathValue("roomId")), q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeData(w, http.StatusOK, "Search results", hits)
}
