package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/seimei-api/internal/api/shared"
	"github.com/phrazzld/seimei-api/internal/platform/logger"
	"github.com/phrazzld/seimei-api/internal/redact"
	"github.com/phrazzld/seimei-api/internal/service"
	"github.com/phrazzld/seimei-api/internal/store"
)

// SeimeiHandler handles name-analysis HTTP requests
type SeimeiHandler struct {
	seimeiService service.SeimeiService
	dictionary    store.CharacterStore
	logger        *slog.Logger
}

// NewSeimeiHandler creates a new SeimeiHandler. The dictionary is only used
// by the health check.
func NewSeimeiHandler(
	seimeiService service.SeimeiService,
	dictionary store.CharacterStore,
	logger *slog.Logger,
) *SeimeiHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SeimeiHandler{
		seimeiService: seimeiService,
		dictionary:    dictionary,
		logger:        logger.With(slog.String("component", "seimei_handler")),
	}
}

// Analyze handles POST /seimei/analyze requests
func (h *SeimeiHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeName(w, r)
	if !ok {
		return
	}

	in, err := req.analyzeInput()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	analysis, err := h.seimeiService.Analyze(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to analyze name")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, analysisToResponse(analysis, shared.Timestamp(analysis.CreatedAt)))
}

// Kakusu handles POST /seimei/kakusu requests
func (h *SeimeiHandler) Kakusu(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeName(w, r)
	if !ok {
		return
	}

	result, err := h.seimeiService.Kakusu(r.Context(), req.nameInput())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute stroke counts")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, kakusuToResponse(result, shared.Timestamp(shared.Now())))
}

// Kantei handles POST /seimei/kantei requests
func (h *SeimeiHandler) Kantei(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeName(w, r)
	if !ok {
		return
	}

	in, err := req.analyzeInput()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	analysis, err := h.seimeiService.Analyze(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to score name")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, kanteiToResponse(analysis, shared.Timestamp(analysis.CreatedAt)))
}

// Health handles GET /health requests
func (h *SeimeiHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Timestamp: shared.Timestamp(shared.Now())}
	if h.dictionary != nil {
		n, err := h.dictionary.Count(r.Context())
		if err != nil {
			logger.FromContextOrDefault(r.Context(), h.logger).Warn("dictionary health check failed",
				slog.String("driver_error", redact.Error(err)))
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
				CodeInternal, "Dictionary unavailable", err)
			return
		}
		resp.Dictionary = n
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// decodeName parses and validates the shared request body. It writes the
// error response itself and reports whether the handler should continue.
func (h *SeimeiHandler) decodeName(w http.ResponseWriter, r *http.Request) (NameRequest, bool) {
	var req NameRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %v", ErrInvalidRequest, err), "")
		return NameRequest{}, false
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return NameRequest{}, false
	}

	return req, true
}
