package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/misnaged/annales/logger"

	"loro-backend/internal/apierr"
	"loro-backend/internal/metrics"
	"loro-backend/internal/models"
	"loro-backend/internal/service"
)

const (
	ownerPath = "owner"
	repoPath  = "repo"
)

// route labels used for metrics
const (
	routeRepository = "repository"
	routeStructure  = "structure"
	routeUnknown    = "unknown"
)

type Handlers struct {
	srv      service.IRepoService
	recorder *metrics.Recorder
	// strategy is used when a structure request does not name one
	strategy models.TreeStrategy
}

func NewHandlers(srv service.IRepoService, recorder *metrics.Recorder, strategy models.TreeStrategy) *Handlers {
	return &Handlers{
		srv:      srv,
		recorder: recorder,
		strategy: strategy,
	}
}

// NotFound answers requests no route matched.
func (h *Handlers) NotFound() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		h.recorder.IncResponse(routeUnknown, apierr.KindNotFound.String())
		writeJSON(rw, http.StatusNotFound, models.ErrorEnvelope{Error: "Route not found"})
	}
}

// MethodNotAllowed answers requests with a method no route accepts.
func (h *Handlers) MethodNotAllowed() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		h.recorder.IncResponse(routeUnknown, apierr.KindInvalidRequest.String())
		writeJSON(rw, http.StatusMethodNotAllowed, models.ErrorEnvelope{Error: "Method not allowed"})
	}
}

// respond writes payload with a 200 status.
func (h *Handlers) respond(rw http.ResponseWriter, route string, payload any) {
	b, err := json.Marshal(payload)
	if err != nil {
		h.fail(rw, route, err)
		return
	}

	h.recorder.IncResponse(route, "ok")
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write(b)
}

// fail translates err and writes it as an ErrorEnvelope.
// Only the translated message ever reaches the client.
func (h *Handlers) fail(rw http.ResponseWriter, route string, err error) {
	translated := apierr.Translate(err)
	if translated.Status >= http.StatusInternalServerError {
		logger.Log().Error(err)
	}

	h.recorder.IncResponse(route, translated.Kind.String())
	writeJSON(rw, translated.Status, models.ErrorEnvelope{Error: translated.Message})
}

func writeJSON(rw http.ResponseWriter, status int, payload any) {
	b, err := json.Marshal(payload)
	if err != nil {
		logger.Log().Error(err)
		status = http.StatusInternalServerError
		b = []byte(`{"error":"` + apierr.MsgInternal + `"}`)
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(b)
}
