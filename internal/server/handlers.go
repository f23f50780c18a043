package server

import (
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/resume-mentor/internal/ingestion"
	"github.com/jonathan/resume-mentor/internal/schemas"
	"github.com/jonathan/resume-mentor/internal/types"
)

// maxUploadBytes caps resume PDF uploads.
const maxUploadBytes = 10 << 20 // 10 MiB

// AnalyzeRequest is the JSON request body for /analyze. Multipart requests
// carry the same fields as form values plus a "resume" PDF file instead of
// resume_text.
type AnalyzeRequest struct {
	JobDescription string `json:"job_description" validate:"required_without=JobURL"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
	ResumeText     string `json:"resume_text" validate:"required"`
}

// AnalyzeResponse is the response body for /analyze.
type AnalyzeResponse struct {
	RunID    string                `json:"run_id"`
	Report   *types.AnalysisReport `json:"report"`
	Guidance *types.GuidanceResult `json:"guidance"`
}

// handleAnalyze runs a full analysis over the submitted job description and
// resume and returns the structured report plus mentor guidance.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	jdText, resumeText, err := s.parseAnalyzeRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report, err := s.analyzer.Run(r.Context(), jdText, resumeText)
	if err != nil {
		log.Printf("analysis failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to serialize report")
		return
	}
	if err := schemas.ValidateReport(reportJSON); err != nil {
		log.Printf("report failed schema validation: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "report failed schema validation")
		return
	}

	result := s.generator.Generate(r.Context(), report)

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		RunID:    uuid.New().String(),
		Report:   report,
		Guidance: result,
	})
}

// parseAnalyzeRequest extracts cleaned JD and resume text from either a JSON
// body or a multipart form with an uploaded PDF.
func (s *Server) parseAnalyzeRequest(r *http.Request) (jdText, resumeText string, err error) {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch {
	case contentType == "application/json":
		jdText, resumeText, err = s.parseJSONRequest(r)
	case strings.HasPrefix(contentType, "multipart/"):
		jdText, resumeText, err = s.parseMultipartRequest(r)
	default:
		return "", "", &ErrUnsupportedMedia{ContentType: contentType}
	}
	if err != nil {
		return "", "", err
	}

	return ingestion.CleanText(jdText), ingestion.CleanText(resumeText), nil
}

func (s *Server) parseJSONRequest(r *http.Request) (string, string, error) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", "", &ErrBadUpload{Message: "invalid JSON body: " + err.Error()}
	}
	if err := s.validate.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return "", "", &ErrMissingInput{Field: strings.ToLower(verrs[0].Field())}
		}
		return "", "", &ErrBadUpload{Message: err.Error()}
	}

	jdText := req.JobDescription
	if jdText == "" && req.JobURL != "" {
		fetched, err := ingestion.FetchJobPosting(r.Context(), req.JobURL)
		if err != nil {
			return "", "", &ErrBadUpload{Message: err.Error()}
		}
		jdText = fetched
	}

	return jdText, req.ResumeText, nil
}

func (s *Server) parseMultipartRequest(r *http.Request) (string, string, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", "", &ErrBadUpload{Message: "invalid multipart form: " + err.Error()}
	}

	jdText := r.FormValue("job_description")
	if jdText == "" {
		if jobURL := r.FormValue("job_url"); jobURL != "" {
			fetched, err := ingestion.FetchJobPosting(r.Context(), jobURL)
			if err != nil {
				return "", "", &ErrBadUpload{Message: err.Error()}
			}
			jdText = fetched
		}
	}
	if jdText == "" {
		return "", "", &ErrMissingInput{Field: "job_description"}
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		return "", "", &ErrMissingInput{Field: "resume"}
	}
	defer file.Close() //nolint:errcheck // read-only upload

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return "", "", &ErrBadUpload{Message: "only PDF resumes are allowed"}
	}

	resumeText, err := ingestion.ExtractPDFText(file, header.Size)
	if err != nil {
		return "", "", &ErrBadUpload{Message: err.Error()}
	}

	return jdText, resumeText, nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
