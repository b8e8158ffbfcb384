package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound      ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized  ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden     ErrorType = "FORBIDDEN"
	ErrorTypeConflict      ErrorType = "CONFLICT"
	ErrorTypeConfiguration ErrorType = "CONFIGURATION_ERROR"
	ErrorTypeInternal      ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidDate      ErrorCode = "INVALID_DATE"
	ErrCodeInvalidAmount    ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidDuration  ErrorCode = "INVALID_DURATION"
	ErrCodeInvalidRole      ErrorCode = "INVALID_ROLE"

	ErrCodeUserNotFound           ErrorCode = "USER_NOT_FOUND"
	ErrCodePlanNotFound           ErrorCode = "MEMBERSHIP_PLAN_NOT_FOUND"
	ErrCodeUserMembershipNotFound ErrorCode = "USER_MEMBERSHIP_NOT_FOUND"
	ErrCodeEmployeeNotFound       ErrorCode = "EMPLOYEE_NOT_FOUND"
	ErrCodeTrainerNotFound        ErrorCode = "TRAINER_NOT_FOUND"
	ErrCodeSupervisorNotFound     ErrorCode = "SUPERVISOR_NOT_FOUND"
	ErrCodeEquipmentNotFound      ErrorCode = "EQUIPMENT_NOT_FOUND"
	ErrCodeMaintenanceNotFound    ErrorCode = "MAINTENANCE_NOT_FOUND"
	ErrCodeClassNotFound          ErrorCode = "CLASS_NOT_FOUND"
	ErrCodeCheckInNotFound        ErrorCode = "CHECK_IN_NOT_FOUND"
	ErrCodePaymentNotFound        ErrorCode = "PAYMENT_NOT_FOUND"

	ErrCodeMembershipAlreadyActive ErrorCode = "MEMBERSHIP_ALREADY_ACTIVE"
	ErrCodeAlreadyEmployee         ErrorCode = "ALREADY_EMPLOYEE"
	ErrCodeEmailTaken              ErrorCode = "EMAIL_TAKEN"

	ErrCodeRoleSeedMissing ErrorCode = "ROLE_SEED_MISSING"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) GetDetailedMessage() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok {
			if len(validationErrors.Errors) == 1 {
				return validationErrors.Errors[0].Message
			} else if len(validationErrors.Errors) > 1 {
				messages := make([]string, len(validationErrors.Errors))
				for i, err := range validationErrors.Errors {
					messages[i] = err.Message
				}
				return strings.Join(messages, "; ")
			}
		}
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewValidationFieldError(field, message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeValidationFailed,
		Message:    "Validation failed",
		StatusCode: http.StatusBadRequest,
		Details: ValidationErrors{
			Errors: []ValidationError{
				{Field: field, Message: message, Code: string(code)},
			},
		},
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

// NewConfigurationError marks missing seed data (a role row) and similar
// deployment defects. Surfaced to clients as a plain internal error.
func NewConfigurationError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeConfiguration,
		Code:       ErrCodeRoleSeedMissing,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewPersistenceError wraps an unexpected store failure. The cause is logged
// at the boundary, never serialized to the client.
func NewPersistenceError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "PERSISTENCE_ERROR",
		Message:    "storage operation failed",
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrUserNotFound           = NewNotFoundError("user not found", ErrCodeUserNotFound)
	ErrPlanNotFound           = NewNotFoundError("membership plan not found", ErrCodePlanNotFound)
	ErrUserMembershipNotFound = NewNotFoundError("user membership not found", ErrCodeUserMembershipNotFound)
	ErrEmployeeNotFound       = NewNotFoundError("employee not found", ErrCodeEmployeeNotFound)
	ErrTrainerNotFound        = NewNotFoundError("trainer not found", ErrCodeTrainerNotFound)
	ErrSupervisorNotFound     = NewNotFoundError("supervisor trainer not found", ErrCodeSupervisorNotFound)
	ErrEquipmentNotFound      = NewNotFoundError("equipment not found", ErrCodeEquipmentNotFound)
	ErrMaintenanceNotFound    = NewNotFoundError("maintenance record not found", ErrCodeMaintenanceNotFound)
	ErrClassNotFound          = NewNotFoundError("class not found", ErrCodeClassNotFound)
	ErrCheckInNotFound        = NewNotFoundError("check-in not found", ErrCodeCheckInNotFound)
	ErrPaymentNotFound        = NewNotFoundError("payment not found", ErrCodePaymentNotFound)

	ErrMembershipAlreadyActive = NewConflictError("user already has an active membership", ErrCodeMembershipAlreadyActive)
	ErrAlreadyEmployee         = NewConflictError("user is already an employee", ErrCodeAlreadyEmployee)
	ErrEmailTaken              = NewConflictError("email already exists", ErrCodeEmailTaken)

	ErrInvalidCredentials = NewUnauthorizedError("invalid email or password", ErrCodeInvalidCredentials)
	ErrInvalidToken       = NewUnauthorizedError("invalid token", ErrCodeInvalidToken)
	ErrTokenExpired       = NewUnauthorizedError("token has expired", ErrCodeTokenExpired)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
