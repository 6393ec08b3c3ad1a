package v1

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/moveplanner/estimator/pkg/metrics"
	"github.com/moveplanner/estimator/pkg/middleware"
)

// (GET /api/v1/estimates/defaults)
func (h *ServiceHandler) GetEstimateDefaults(w http.ResponseWriter, r *http.Request) {
	defaults, err := h.forms.EstimateForm().GetDefaults(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	render.JSON(w, r, defaults)
}

// (POST /api/v1/estimates/validate)
func (h *ServiceHandler) ValidateEstimate(w http.ResponseWriter, r *http.Request) {
	metrics.UniqueEstimateVisitorsPerWeek.Visit(middleware.ClientIP(r))
	validate(w, r, h.forms.EstimateForm())
}
