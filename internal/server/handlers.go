package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/placement-prep/internal/analysis"
	"github.com/jonathan/placement-prep/internal/history"
	"github.com/jonathan/placement-prep/internal/ingestion"
	"github.com/jonathan/placement-prep/internal/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// createAnalysisRequest is the request body for POST /analyses. Exactly one of
// JDText and JDURL must be provided.
type createAnalysisRequest struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	JDText  string `json:"jd_text"`
	JDURL   string `json:"jd_url" validate:"omitempty,http_url"`
}

// listAnalysesResponse is the response body for GET /analyses.
type listAnalysesResponse struct {
	Entries       []types.AnalysisEntry `json:"entries"`
	Count         int                   `json:"count"`
	HadCorruption bool                  `json:"had_corruption"`
}

// handleCreateAnalysis runs a full analysis over the submitted job description
// and persists the resulting entry.
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req createAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "jd_url must be an absolute http or https URL")
		return
	}
	if (req.JDText == "") == (req.JDURL == "") {
		verr := &ErrValidation{Field: "jd_text", Message: "exactly one of jd_text and jd_url is required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	jdText := req.JDText
	if req.JDURL != "" {
		fetched, err := ingestion.FromURL(r.Context(), req.JDURL)
		if err != nil {
			ierr := &ErrIngestion{Source: req.JDURL, Err: err}
			s.log.Warn("job description fetch failed", zap.String("url", req.JDURL), zap.Error(err))
			s.errorResponse(w, HTTPStatus(ierr), ierr.Error())
			return
		}
		jdText = fetched
	}

	entry := analysis.Run(req.Company, req.Role, ingestion.CleanText(jdText))
	if err := s.store.SaveEntry(r.Context(), entry); err != nil {
		s.log.Error("failed to save analysis entry", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to save analysis")
		return
	}

	s.jsonResponse(w, http.StatusCreated, entry)
}

// handleListAnalyses returns the stored history, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	result, err := s.store.History(r.Context())
	if err != nil {
		s.log.Error("failed to load history", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	entries := result.Entries
	if entries == nil {
		entries = []types.AnalysisEntry{}
	}
	s.jsonResponse(w, http.StatusOK, listAnalysesResponse{
		Entries:       entries,
		Count:         len(entries),
		HadCorruption: result.HadCorruption,
	})
}

// handleLastAnalysis returns the id of the most recently created entry.
func (s *Server) handleLastAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := s.store.LastAnalysisID(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to read last analysis id")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"id": id})
}

// handleGetAnalysis returns one entry by id.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	entry, err := s.store.EntryByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if entry == nil {
		nferr := &ErrEntryNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(nferr), nferr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, entry)
}

// handleDeleteAnalysis removes one entry by id.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	entry, err := s.store.EntryByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if entry == nil {
		nferr := &ErrEntryNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(nferr), nferr.Error())
		return
	}

	if err := s.store.DeleteEntry(r.Context(), id); err != nil {
		s.log.Error("failed to delete entry", zap.String("id", id), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete entry")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"deleted": id})
}

// toggleConfidenceRequest is the request body for POST /analyses/{id}/confidence.
type toggleConfidenceRequest struct {
	Skill string `json:"skill" validate:"required"`
}

// handleToggleConfidence flips one skill's confidence level on an entry and
// returns the rescored entry.
func (s *Server) handleToggleConfidence(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req toggleConfidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		verr := &ErrValidation{Field: "skill", Message: "skill is required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	existing, err := s.store.EntryByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if existing == nil {
		nferr := &ErrEntryNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(nferr), nferr.Error())
		return
	}

	entry, err := s.store.ToggleSkillConfidence(r.Context(), id, req.Skill)
	if err != nil {
		s.log.Error("failed to toggle skill confidence",
			zap.String("id", id), zap.String("skill", req.Skill), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to update entry")
		return
	}

	s.jsonResponse(w, http.StatusOK, entry)
}

// handleGetChecklist returns the manual test checklist state.
func (s *Server) handleGetChecklist(w http.ResponseWriter, r *http.Request) {
	checklist, err := s.store.TestChecklist(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load checklist")
		return
	}
	s.jsonResponse(w, http.StatusOK, checklist)
}

// handlePutChecklist replaces the manual test checklist state.
func (s *Server) handlePutChecklist(w http.ResponseWriter, r *http.Request) {
	var checklist history.TestChecklist
	if err := json.NewDecoder(r.Body).Decode(&checklist); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if checklist == nil {
		checklist = history.TestChecklist{}
	}

	if err := s.store.SaveTestChecklist(r.Context(), checklist); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save checklist")
		return
	}
	s.jsonResponse(w, http.StatusOK, checklist)
}

// handleGetSubmission returns the stored submission links, if any.
func (s *Server) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	links, err := s.store.SubmissionLinks(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load submission links")
		return
	}
	if links == nil {
		s.errorResponse(w, http.StatusNotFound, "no submission links saved")
		return
	}
	s.jsonResponse(w, http.StatusOK, links)
}

// handlePutSubmission validates and stores the submission links.
func (s *Server) handlePutSubmission(w http.ResponseWriter, r *http.Request) {
	var links history.SubmissionLinks
	if err := json.NewDecoder(r.Body).Decode(&links); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := links.Validate(); err != nil {
		verr := &ErrValidation{Field: "links", Message: "all links must be absolute http or https URLs"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	if err := s.store.SaveSubmissionLinks(r.Context(), &links); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save submission links")
		return
	}
	s.jsonResponse(w, http.StatusOK, links)
}
