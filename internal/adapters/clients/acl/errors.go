package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen/quoteboard/internal/adapters/clients"
	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// maxErrorBody bounds how much of an error body is read.
const maxErrorBody = 64 << 10

// ErrorResponse is the board's JSON error envelope.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail carries the code, message and per-field details.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Codes the board puts in the envelope.
const (
	CodeNotFound    = "NOT_FOUND"
	CodeConflict    = "CONFLICT"
	CodeValidation  = "VALIDATION_ERROR"
	CodeUnavailable = "SERVICE_UNAVAILABLE"
)

// ParseErrorResponse reads an error body. Not-found answers from the board
// are plain text, so a body that is not an envelope comes back as a
// response whose message is the trimmed text. Empty bodies return nil.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return nil
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil
	}

	var resp ErrorResponse
	if err := json.Unmarshal(raw, &resp); err == nil && (resp.Error.Code != "" || resp.Error.Message != "") {
		return &resp
	}

	return &ErrorResponse{Error: ErrorDetail{Message: text}}
}

// MapHTTPError turns a failed call into a domain error. clientErr wins over
// resp; a 2xx or 3xx resp maps to nil. entity and id name what a 404 refers to.
func MapHTTPError(resp *http.Response, clientErr error, service, operation, entity, id string) error {
	if clientErr != nil {
		return mapClientError(clientErr, service, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(service, "no response received")
	}

	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	return mapStatusCode(resp.StatusCode, ParseErrorResponse(resp.Body), service, operation, entity, id)
}

func mapClientError(err error, service, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(service, "circuit breaker open during "+operation)
	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(service, "max retries exceeded during "+operation)
	default:
		return domain.NewUnavailableError(service, fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatusCode(status int, errResp *ErrorResponse, service, operation, entity, id string) error {
	message := fmt.Sprintf("%s failed with status %d", operation, status)
	if errResp != nil && errResp.Error.Message != "" {
		message = errResp.Error.Message
	}

	switch {
	case status == http.StatusNotFound:
		return domain.NewNotFoundError(entity, id)

	case status == http.StatusConflict:
		return domain.NewConflictError(entity, message)

	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if errResp != nil {
			for field, msg := range errResp.Error.Details {
				return domain.NewValidationError(field, msg)
			}
		}

		return domain.NewValidationError("", message)

	case status == http.StatusTooManyRequests:
		return domain.NewUnavailableError(service, "rate limit exceeded")

	case status >= http.StatusInternalServerError:
		return domain.NewUnavailableError(service, message)

	default:
		return MapExternalCode(codeOf(errResp), message, service, entity, id)
	}
}

func codeOf(errResp *ErrorResponse) string {
	if errResp == nil {
		return ""
	}

	return errResp.Error.Code
}

// MapExternalCode maps an envelope code to a domain error. Unknown codes are
// treated as validation failures, since only 4xx answers get here.
func MapExternalCode(code, message, service, entity, id string) error {
	switch code {
	case CodeNotFound:
		return domain.NewNotFoundError(entity, id)
	case CodeConflict:
		return domain.NewConflictError(entity, message)
	case CodeUnavailable:
		return domain.NewUnavailableError(service, message)
	default:
		return domain.NewValidationError("", message)
	}
}
