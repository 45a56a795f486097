package httperr

import (
	"errors"
	"net/http"

	"support-notify/internal/domain/notification"
	domtpl "support-notify/internal/domain/template"
	"support-notify/internal/pkg/errs"
	"support-notify/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortDomainError maps domain and query sentinel errors onto HTTP statuses
// so handlers do not repeat the same switch.
func AbortDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrNotificationNotFound),
		errors.Is(err, queries.ErrTemplateNotFound),
		errors.Is(err, errs.ErrNotificationNotFound),
		errors.Is(err, errs.ErrTemplateNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, errs.ErrDuplicateTemplate):
		AbortWithError(c, http.StatusConflict, err, "Already exists", nil)
	case errors.Is(err, notification.ErrNotCancellable):
		AbortWithError(c, http.StatusConflict, err, "Notification can no longer be cancelled", nil)
	case errors.Is(err, queries.ErrInvalidCursor):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
	case isValidationError(err):
		AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		notification.ErrInvalidChannel,
		notification.ErrInvalidPriority,
		notification.ErrInvalidStatus,
		notification.ErrInvalidMaxAttempts,
		notification.ErrMissingRecipient,
		notification.ErrMissingDestination,
		notification.ErrMissingContent,
		domtpl.ErrMissingName,
		domtpl.ErrMissingBody,
		domtpl.ErrMissingSubject,
		domtpl.ErrInvalidLanguage,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
