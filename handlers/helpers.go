package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Afriels/Presensi-Fix/attendance"
)

var validate = validator.New()

// bindAndValidate binds the JSON payload and runs its validator tags. The
// returned error is an *echo.HTTPError ready to bubble up.
func bindAndValidate(c echo.Context, payload any) error {
	if err := c.Bind(payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := validate.Struct(payload); err != nil {
		fields := map[string]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fields})
	}
	return nil
}

// coreError maps attendance package errors onto the JSON error bodies the
// rest of the handlers speak.
// Anything unrecognized is a persistence failure: the caller must know the
// write is not guaranteed saved.
func coreError(c echo.Context, err error) error {
	var verr attendance.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": map[string]string(verr)})
	case errors.Is(err, attendance.ErrUnknownStudent):
		return c.JSON(http.StatusNotFound, map[string]any{"error": "UNKNOWN_STUDENT"})
	case errors.Is(err, attendance.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "PERSISTENCE_FAILURE", "detail": err.Error()})
	}
}
