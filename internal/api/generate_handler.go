package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/tweetgen/internal/api/shared"
	"github.com/phrazzld/tweetgen/internal/domain"
	"github.com/phrazzld/tweetgen/internal/generation"
	"github.com/phrazzld/tweetgen/internal/platform/logger"
)

// maxFormBytes limits the size of submitted forms.
const maxFormBytes = 1 << 20

// Generator performs one post generation request.
type Generator interface {
	Generate(ctx context.Context, in generation.Input) (*generation.Result, error)
}

// GenerateHandler serves the form page and both generation endpoints.
type GenerateHandler struct {
	generator Generator
	info      PageInfo
	logger    *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler. info is shown on the
// form page; empty fields fall back to defaults.
func NewGenerateHandler(generator Generator, info PageInfo, logger *slog.Logger) *GenerateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerateHandler{
		generator: generator,
		info:      defaultPageInfo(info),
		logger:    logger.With("component", "generate_handler"),
	}
}

// ShowForm handles GET / requests
func (h *GenerateHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.requestLogger(r), http.StatusOK, newPageData(h.info, domain.DefaultExamples))
}

// SubmitForm handles POST /generate requests. The page is re-rendered with
// the submitted examples and either the generated posts, a warning for an
// empty result or an error message. The API key is never rendered back.
func (h *GenerateHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		data := newPageData(h.info, domain.DefaultExamples)
		data.Error = "Invalid form submission"
		shared.LogError(r, http.StatusBadRequest, data.Error, err)
		renderPage(w, h.requestLogger(r), http.StatusBadRequest, data)
		return
	}

	examplesText := r.PostForm.Get("examples")
	data := newPageData(h.info, domain.ParseExamples(examplesText))

	result, err := h.generator.Generate(r.Context(), generation.Input{
		Credential:   r.PostForm.Get("api_key"),
		ExamplesText: examplesText,
	})
	if err != nil {
		status := MapErrorToStatusCode(err)
		data.Error = GetSafeErrorMessage(err)
		shared.LogError(r, status, data.Error, err, logOptions(err)...)
		renderPage(w, h.requestLogger(r), status, data)
		return
	}

	if result.Empty() {
		data.Warning = generation.EmptyResultMessage
	} else {
		data.Items = numberItems(result.Items)
	}
	renderPage(w, h.requestLogger(r), http.StatusOK, data)
}

// GenerateJSON handles POST /api/generate requests
func (h *GenerateHandler) GenerateJSON(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	result, err := h.generator.Generate(r.Context(), generation.Input{
		Credential: req.APIKey,
		Examples:   req.Examples,
		Model:      req.Model,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err, logOptions(err)...)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resultToResponse(result))
}

// Health handles GET /health requests
func (h *GenerateHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("OK")); err != nil {
		h.requestLogger(r).Error("failed to write health response", "error", err)
	}
}

func logOptions(err error) []shared.ResponseOption {
	if errors.Is(err, generation.ErrCredentialRejected) {
		return []shared.ResponseOption{shared.WithElevatedLogLevel()}
	}
	return nil
}

func (h *GenerateHandler) requestLogger(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), h.logger)
}
