package server

import (
	"encoding/json"
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/Apshaya/RES-Checker/internal/analysis"
	"github.com/Apshaya/RES-Checker/internal/extraction"
	"github.com/Apshaya/RES-Checker/internal/ingestion"
	"github.com/Apshaya/RES-Checker/internal/prep"
	"github.com/Apshaya/RES-Checker/internal/scoring"
	"github.com/Apshaya/RES-Checker/internal/types"
)

// maxUploadBytes bounds multipart upload size.
const maxUploadBytes = 10 << 20 // 10 MiB

type analyzeResumeRequest struct {
	Text string `json:"text" validate:"required,min=50"`
}

type analyzeJobRequest struct {
	Text string `json:"text" validate:"omitempty,min=50"`
	URL  string `json:"url" validate:"omitempty,url"`
}

type compareRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=50"`
	JobText    string `json:"job_text" validate:"required,min=50"`
}

type recommendRequest struct {
	Skills     string `json:"skills" validate:"required,min=10"`
	TargetRole string `json:"target_role"`
}

type interviewRequest struct {
	Skills     string `json:"skills" validate:"required,min=10"`
	TargetRole string `json:"target_role"`
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation on it.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return false
	}
	return true
}

func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req analyzeResumeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis.AnalyzeResume(ingestion.CleanText(req.Text)))
}

func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var req analyzeJobRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	text := req.Text
	switch {
	case text == "" && req.URL == "":
		s.errorResponse(w, http.StatusBadRequest, "either 'text' or 'url' is required")
		return
	case text != "" && req.URL != "":
		s.errorResponse(w, http.StatusBadRequest, "'text' and 'url' are mutually exclusive")
		return
	case req.URL != "":
		fetched, _, err := ingestion.IngestFromURL(r.Context(), req.URL, s.useBrowser, false)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		text = fetched
	default:
		text = ingestion.CleanText(text)
	}

	s.jsonResponse(w, http.StatusOK, analysis.AnalyzeJob(text))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	var (
		resume *types.ResumeAnalysis
		job    *types.JobAnalysis
	)
	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		resume = analysis.AnalyzeResume(ingestion.CleanText(req.ResumeText))
		return nil
	})
	g.Go(func() error {
		job = analysis.AnalyzeJob(ingestion.CleanText(req.JobText))
		return nil
	})
	_ = g.Wait() // analyses are total; the group only coordinates

	s.jsonResponse(w, http.StatusOK, scoring.Compare(resume, job))
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	skills := extraction.ExtractSkills(req.Skills)
	s.jsonResponse(w, http.StatusOK, prep.RecommendSkills(skills, req.TargetRole))
}

func (s *Server) handleInterview(w http.ResponseWriter, r *http.Request) {
	var req interviewRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	skills := extraction.ExtractSkills(req.Skills)
	s.jsonResponse(w, http.StatusOK, prep.PrepareInterview(skills, req.TargetRole))
}

// handleUpload accepts a multipart document upload and analyzes it as the
// kind named in the path: /upload/resume or /upload/job.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	if kind != "resume" && kind != "job" {
		s.errorResponse(w, http.StatusNotFound, "unknown upload kind: "+kind)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'file' form field")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload: "+err.Error())
		return
	}

	text, err := ingestion.ReadDocumentBytes(header.Filename, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := ingestion.CheckLength(text, kind, ingestion.MinDocumentChars); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if kind == "resume" {
		s.jsonResponse(w, http.StatusOK, analysis.AnalyzeResume(text))
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis.AnalyzeJob(text))
}
