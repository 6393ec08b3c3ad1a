package v1

import (
	"net/http"

	"github.com/go-chi/render"
)

// (GET /api/v1/settings/defaults)
func (h *ServiceHandler) GetSettingsDefaults(w http.ResponseWriter, r *http.Request) {
	defaults, err := h.forms.SettingsForm().GetDefaults(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	render.JSON(w, r, defaults)
}

// (POST /api/v1/settings/validate)
func (h *ServiceHandler) ValidateSettings(w http.ResponseWriter, r *http.Request) {
	validate(w, r, h.forms.SettingsForm())
}
