package utils

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/artsoul-app/artsoul/internal/shared/constants"
	"github.com/artsoul-app/artsoul/internal/shared/errors"
)

var exposeServerErrorDetails atomic.Bool

// SetExposeErrorDetails controls whether details of 5xx errors reach clients.
// It is switched off in production.
func SetExposeErrorDetails(expose bool) {
	exposeServerErrorDetails.Store(expose)
}

// ErrorBody is the single error envelope of the API.
type ErrorBody struct {
	Error   bool     `json:"error"`
	Type    string   `json:"type"`
	Message string   `json:"message"`
	Code    int      `json:"code"`
	Details string   `json:"details,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

// DataBody wraps a single resource or a collection.
type DataBody struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// PaginationInfo describes a page of a listing.
type PaginationInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// PageBody is the listing envelope.
type PageBody struct {
	Data       any            `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// MessageBody acknowledges an action without a resource.
type MessageBody struct {
	Message string `json:"message"`
}

// DataResponse sends {data, message?} with the given status
func DataResponse(c *gin.Context, statusCode int, data any, message ...string) {
	body := DataBody{Data: data}
	if len(message) > 0 {
		body.Message = message[0]
	}
	c.JSON(statusCode, body)
}

// MessageResponse sends {message} with the given status
func MessageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}

// PageResponse sends a page of items with pagination metadata
func PageResponse(c *gin.Context, items any, total int64, p Pagination) {
	c.JSON(http.StatusOK, PageBody{
		Data: items,
		Pagination: PaginationInfo{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      total,
			TotalPages: TotalPages(total, p.Limit),
		},
	})
}

// ErrorResponse sends an error envelope with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		Error:   true,
		Type:    string(errorTypeForStatus(statusCode)),
		Message: message,
		Code:    statusCode,
	})
}

// ErrorResponseWithError renders err through the error taxonomy.
// Errors outside the taxonomy become a generic 500 without details.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		c.JSON(http.StatusInternalServerError, ErrorBody{
			Error:   true,
			Type:    string(errors.ErrorTypeInternal),
			Message: constants.ErrMsgInternalServerError,
			Code:    http.StatusInternalServerError,
		})
		return
	}

	body := ErrorBody{
		Error:   true,
		Type:    string(appErr.Type),
		Message: appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
		Fields:  appErr.Fields,
	}
	if appErr.Code >= http.StatusInternalServerError && !exposeServerErrorDetails.Load() {
		body.Details = ""
	}
	c.JSON(appErr.Code, body)
}

func errorTypeForStatus(status int) errors.ErrorType {
	switch status {
	case http.StatusBadRequest:
		return errors.ErrorTypeBadRequest
	case http.StatusUnauthorized:
		return errors.ErrorTypeUnauthorized
	case http.StatusForbidden:
		return errors.ErrorTypeForbidden
	case http.StatusNotFound:
		return errors.ErrorTypeNotFound
	case http.StatusConflict:
		return errors.ErrorTypeConflict
	case http.StatusTooManyRequests:
		return errors.ErrorTypeTooManyRequests
	case http.StatusBadGateway:
		return errors.ErrorTypeUpstreamFailure
	case http.StatusServiceUnavailable:
		return errors.ErrorTypeServiceUnavailable
	default:
		return errors.ErrorTypeInternal
	}
}
