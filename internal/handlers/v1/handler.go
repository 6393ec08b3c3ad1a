package v1

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/moveplanner/estimator/internal/service"
	"github.com/moveplanner/estimator/internal/validator"
	"go.uber.org/zap"
)

type ServiceHandler struct {
	forms *service.FormProvider
}

func NewServiceHandler(forms *service.FormProvider) *ServiceHandler {
	return &ServiceHandler{forms: forms}
}

// Routes mounts the api on r.
func (h *ServiceHandler) Routes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/estimates/defaults", h.GetEstimateDefaults)
		r.Post("/estimates/validate", h.ValidateEstimate)
		r.Get("/settings/defaults", h.GetSettingsDefaults)
		r.Post("/settings/validate", h.ValidateSettings)
	})
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type ValidationResponse struct {
	Valid  bool                 `json:"valid"`
	Errors validator.MessageBag `json:"errors,omitempty"`
}

// (GET /health)
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

type form interface {
	Valid(ctx context.Context, input validator.Input) (bool, error)
	Errors() validator.MessageBag
}

func validate(w http.ResponseWriter, r *http.Request, f form) {
	input, err := decodeInput(w, r)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Message: err.Error()})
		return
	}

	ok, err := f.Valid(r.Context(), input)
	if err != nil {
		internalError(w, r, err)
		return
	}

	if !ok {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, ValidationResponse{Valid: false, Errors: f.Errors()})
		return
	}

	render.JSON(w, r, ValidationResponse{Valid: true})
}

func internalError(w http.ResponseWriter, r *http.Request, err error) {
	zap.S().Named("handlers").Errorw("request failed", "path", r.URL.Path, "error", err)
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, ErrorResponse{Message: http.StatusText(http.StatusInternalServerError)})
}
