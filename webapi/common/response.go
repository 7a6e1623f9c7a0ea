package common

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProblemDetailsJSON writes an RFC 9457 problem response.
//
// The optional args are a detail string and/or an explicit status code.
// Without a status the code is derived from err with ErrorToStatusCode, or
// 400 when err is nil. Internal errors never leak their message.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, args ...any) error {
	status := 0
	detail := ""
	for _, a := range args {
		switch v := a.(type) {
		case int:
			status = v
		case string:
			detail = v
		}
	}
	if status == 0 {
		status = fiber.StatusBadRequest
		if err != nil {
			status = ErrorToStatusCode(err)
		}
	}

	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		pd.Errors = fieldErrors(ve)
	}
	if pd.Detail == "" && err != nil {
		if status >= fiber.StatusInternalServerError {
			pd.Detail = "An unexpected error occurred"
		} else {
			pd.Detail = err.Error()
		}
	}

	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(pd)
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}
