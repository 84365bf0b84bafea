package http

import (
	"errors"
	"net/http"

	"expense-assistant/internal/assistant"
	pkgErrors "expense-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Everything but a validation failure is a 500 carrying the error's own message.
func (h *handler) mapError(err error) error {
	if errors.Is(err, assistant.ErrMissingFields) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, assistant.ErrMissingFields.Error())
	}
	return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
}
