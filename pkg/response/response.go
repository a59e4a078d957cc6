package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "filesmanager/pkg/errors"
)

type ErrorBody struct {
	Error string `json:"error"`
}

func JSON(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error maps an error to the wire format. Validation errors become
// "Missing <field>" bad requests, AppErrors keep their status and message,
// anything else is a generic 500 so store failures never leak details.
func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorBody{Error: appErr.Message})
	}

	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal Server Error"})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())

		var message string
		switch err.Tag() {
		case "required":
			message = "Missing " + field
		case "oneof":
			message = field + " must be one of: " + err.Param()
		case "email":
			message = field + " must be a valid email address"
		default:
			message = field + " is invalid"
		}

		return c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
	}

	return c.JSON(http.StatusBadRequest, ErrorBody{Error: "Invalid input data"})
}
