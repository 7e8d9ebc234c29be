package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/sample"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/jonathan/resume-tailor/internal/validation"
)

// maxBodyBytes caps request bodies; every request is a couple of URLs
const maxBodyBytes = 64 << 10

// TailorRequest represents the request body for /tailor and /tailor/stream
type TailorRequest struct {
	ProfileURL string `json:"profile_url" validate:"max=2048"`
	JobURL     string `json:"job_url" validate:"max=2048"`
	Demo       bool   `json:"demo"`
	Template   string `json:"template" validate:"omitempty,template"`
}

// TailorResponse is a run result plus the rendered preview
type TailorResponse struct {
	*pipeline.Result
	Template string `json:"template"`
	Preview  string `json:"preview,omitempty"`
}

// ValidateRequest represents the request body for /validate
type ValidateRequest struct {
	ProfileURL string `json:"profile_url" validate:"max=2048"`
	JobURL     string `json:"job_url" validate:"max=2048"`
}

// ValidateResponse reports each URL separately so the wizard can mark both fields
type ValidateResponse struct {
	ProfileURLValid bool              `json:"profile_url_valid"`
	JobURLValid     bool              `json:"job_url_valid"`
	Errors          map[string]string `json:"errors"`
}

// SampleResponse represents the response for /sample
type SampleResponse struct {
	ProfileURL string            `json:"profile_url"`
	JobURL     string            `json:"job_url"`
	Profile    *types.Profile    `json:"profile"`
	JobPosting *types.JobPosting `json:"job_posting"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("template", func(fl validator.FieldLevel) bool {
		_, ok := rendering.Lookup(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}
	return v
}

// decode reads a JSON body into req and validates it
func (s *Server) decode(w http.ResponseWriter, r *http.Request, req any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := s.validate.Struct(req); err != nil {
		return validationError(err)
	}
	return nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleValidate checks both URLs without scraping anything
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}

	resp := ValidateResponse{Errors: map[string]string{}}
	if err := validation.CheckProfileURL(req.ProfileURL); err != nil {
		resp.Errors[validation.FieldProfileURL] = urlErrorMessage(err)
	} else {
		resp.ProfileURLValid = true
	}
	if err := validation.CheckJobURL(req.JobURL, s.jobMatcher); err != nil {
		resp.Errors[validation.FieldJobURL] = urlErrorMessage(err)
	} else {
		resp.JobURLValid = true
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

func urlErrorMessage(err error) string {
	if ue := userError(err); ue != nil {
		return ue.Message
	}
	return err.Error()
}

// handleTailor runs the pipeline and returns the result once it completes
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	var req TailorRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}

	resp, err := s.run(r.Context(), req, nil)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleTailorStream runs the pipeline and streams stage progress via SSE
func (s *Server) handleTailorStream(w http.ResponseWriter, r *http.Request) {
	var req TailorRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.jsonResponse(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	resp, err := s.run(r.Context(), req, func(event pipeline.ProgressEvent) {
		if err := sse.WriteEvent(eventStage, event); err != nil {
			s.logger.Debug("failed to write SSE event", zap.Error(err))
		}
	})
	if err != nil {
		sse.WriteError(userError(err))
		return
	}
	sse.WriteResult(resp)
}

// handleSample returns the built-in demo pair
func (s *Server) handleSample(w http.ResponseWriter, _ *http.Request) {
	profile, job := sample.Pair()
	s.jsonResponse(w, http.StatusOK, SampleResponse{
		ProfileURL: sample.ProfileURL,
		JobURL:     sample.JobURL,
		Profile:    profile,
		JobPosting: job,
	})
}

// handleTemplates lists the preview templates
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"default":   s.defaultTemplate,
		"templates": rendering.Templates(),
	})
}

// run executes one pipeline run in a bounded slot. The run is detached from the
// client connection so a dropped request does not abandon half-finished model calls.
func (s *Server) run(ctx context.Context, req TailorRequest, onProgress pipeline.ProgressCallback) (*TailorResponse, error) {
	if !s.runs.TryAcquire(1) {
		return nil, &ErrBusy{}
	}
	defer s.runs.Release(1)

	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), runTimeout)
	defer cancel()

	result, err := s.pipeline.Run(runCtx, pipeline.RunOptions{
		ProfileURL: req.ProfileURL,
		JobURL:     req.JobURL,
		Demo:       req.Demo,
		JobMatcher: s.jobMatcher,
		OnProgress: onProgress,
	})
	if err != nil {
		s.logger.Warn("tailoring run failed", zap.Error(err))
		return nil, err
	}

	templateID := req.Template
	if templateID == "" {
		templateID = s.defaultTemplate
	}
	resp := &TailorResponse{Result: result, Template: templateID}

	preview, err := rendering.Render(result.Tailored.TailoredProfile, templateID)
	if err != nil {
		s.logger.Warn("preview rendering failed", zap.String("template", templateID), zap.Error(err))
	} else {
		resp.Preview = preview
	}
	return resp, nil
}
