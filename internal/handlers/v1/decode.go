package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/render"
	"github.com/moveplanner/estimator/internal/validator"
)

const maxBodySize = 1 << 20

var errEmptyBody = errors.New("empty body")

// decodeInput reads a flat form from a json object or an url encoded body.
func decodeInput(w http.ResponseWriter, r *http.Request) (validator.Input, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	switch render.GetRequestContentType(r) {
	case render.ContentTypeForm:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("invalid form body: %w", err)
		}
		input := make(validator.Input, len(r.PostForm))
		for field, values := range r.PostForm {
			input[field] = values
		}
		return input, nil
	default:
		input := validator.Input{}
		if err := render.DecodeJSON(r.Body, &input); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errEmptyBody
			}
			return nil, fmt.Errorf("invalid json body: %w", err)
		}
		return input, nil
	}
}
