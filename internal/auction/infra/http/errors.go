package http

import (
	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MapErrorToHTTP translates an engine error into a status code by its kind
func MapErrorToHTTP(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindConflict, domain.KindIntegrity:
		return fiber.StatusConflict
	case domain.KindRejected:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func writeError(c *fiber.Ctx, err error) error {
	status := MapErrorToHTTP(err)
	body := ErrorResponse{Error: err.Error(), Code: domain.ReasonCode(err)}
	if status == fiber.StatusInternalServerError {
		body = ErrorResponse{Error: "internal error", Code: "internal"}
	}
	return c.Status(status).JSON(body)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msg, Code: "validation"})
}
