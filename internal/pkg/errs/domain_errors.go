package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotificationNotReady = errors.New("notification not ready to send")
	ErrAlreadyClaimed       = errors.New("notification already claimed by another worker")
	ErrUnsupportedChannel   = errors.New("unsupported notification channel")

	// Template errors
	ErrTemplateNotFound   = errors.New("template not found")
	ErrTemplateIncomplete = errors.New("template is missing required content")
	ErrDuplicateTemplate  = errors.New("template name already exists for tenant")

	// Tenant errors
	ErrTenantRequired = errors.New("tenant id required")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
