package errors

import (
	stderrors "errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stwalsh4118/faasdoc/internal/middleware"
)

// Error code constants for standardized error responses
const (
	ErrNotFound          = "NOT_FOUND"
	ErrBadRequest        = "BAD_REQUEST"
	ErrInternalServer    = "INTERNAL_SERVER_ERROR"
	ErrValidation        = "VALIDATION_ERROR"
	ErrPayloadTooLarge   = "PAYLOAD_TOO_LARGE"
	ErrStoreUnavailable  = "RECORD_STORE_UNAVAILABLE"
	ErrUnsupportedFormat = "UNSUPPORTED_FORMAT"
)

const validationFailedTitle = "Validation failed for one or more fields"

// ErrorResponse is the top-level error response structure.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// respond writes the error envelope and aborts the handler chain.
func respond(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: middleware.GetRequestID(c),
		},
	})
}

// warn logs a client-side failure on the request logger, if any.
func warn(c *gin.Context, msg string, fields map[string]interface{}) {
	log := middleware.GetLogger(c)
	if log == nil {
		return
	}
	fields["request_id"] = middleware.GetRequestID(c)
	fields["path"] = c.Request.URL.Path
	log.Warn(msg, fields)
}

// NotFound returns a 404 Not Found error response.
func NotFound(c *gin.Context, message string) {
	warn(c, "Resource not found", map[string]interface{}{"message": message})
	respond(c, http.StatusNotFound, ErrNotFound, message, nil)
}

// BadRequest returns a 400 Bad Request error response with optional details.
func BadRequest(c *gin.Context, message string, details map[string]interface{}) {
	fields := map[string]interface{}{"message": message}
	if details != nil {
		fields["details"] = details
	}
	warn(c, "Bad request", fields)
	respond(c, http.StatusBadRequest, ErrBadRequest, message, details)
}

// UnsupportedFormat returns a 400 response for an unknown output format.
func UnsupportedFormat(c *gin.Context, format string) {
	warn(c, "Unsupported output format", map[string]interface{}{"format": format})
	respond(c, http.StatusBadRequest, ErrUnsupportedFormat,
		"Output format must be json or yaml", map[string]interface{}{"format": format})
}

// PayloadTooLarge returns a 413 response for bodies over the size limit.
func PayloadTooLarge(c *gin.Context, limit int64) {
	warn(c, "Request body too large", map[string]interface{}{"limit_bytes": limit})
	respond(c, http.StatusRequestEntityTooLarge, ErrPayloadTooLarge,
		"Request body is too large", map[string]interface{}{"limit_bytes": limit})
}

// StoreUnavailable returns a 503 response when the record store is not
// configured or cannot be reached.
func StoreUnavailable(c *gin.Context, message string) {
	warn(c, "Record store unavailable", map[string]interface{}{"message": message})
	respond(c, http.StatusServiceUnavailable, ErrStoreUnavailable, message, nil)
}

// InternalServerError returns a 500 Internal Server Error response.
// The underlying error is logged but never sent to the client.
func InternalServerError(c *gin.Context, message string, err error) {
	if log := middleware.GetLogger(c); log != nil {
		log.Error("Internal server error", err, map[string]interface{}{
			"message":    message,
			"request_id": middleware.GetRequestID(c),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
		})
	}
	respond(c, http.StatusInternalServerError, ErrInternalServer, message, nil)
}

// ValidationError returns a 400 Bad Request error response with one detail
// entry per failing field, keyed by the field's path in the request body.
func ValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	details := make(map[string]interface{}, len(validationErrors))
	for _, fe := range validationErrors {
		details[fieldPath(fe)] = formatValidationError(fe)
	}

	warn(c, "Validation error", map[string]interface{}{"fields": details})
	respond(c, http.StatusBadRequest, ErrValidation, validationFailedTitle, details)
}

// BindError classifies an error returned by gin's binders: field
// validation failures, oversized bodies and malformed JSON.
func BindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		ValidationError(c, validationErrors)
		return
	}

	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		PayloadTooLarge(c, tooLarge.Limit)
		return
	}

	BadRequest(c, "Request body is not valid JSON", map[string]interface{}{
		"reason": err.Error(),
	})
}

// RegisterJSONFieldNames makes v report fields by their json names, so
// validation details use the same keys as the request body.
func RegisterJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
}

// fieldPath drops the root struct name from the error's namespace,
// e.g. "TaxDeclaration.effectivity_quarter" becomes "effectivity_quarter".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short or small (minimum: " + err.Param() + ")"
	case "max":
		return "Value is too long or large (maximum: " + err.Param() + ")"
	case "len":
		return "Must have length of " + err.Param()
	case "gt":
		return "Must be greater than " + err.Param()
	case "gte":
		return "Must be greater than or equal to " + err.Param()
	case "lt":
		return "Must be less than " + err.Param()
	case "lte":
		return "Must be less than or equal to " + err.Param()
	case "oneof":
		return "Must be one of: " + err.Param()
	case "numeric":
		return "Must be a number"
	default:
		return "Validation failed for tag: " + err.Tag()
	}
}
