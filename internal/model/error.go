package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodePhoneTaken       = "PHONE_TAKEN"
	ErrCodeInvalidPassword  = "INVALID_PASSWORD"
	ErrCodeNoActiveCode     = "NO_ACTIVE_CODE"
	ErrCodeCodeExpired      = "CODE_EXPIRED"
	ErrCodeCodeMismatch     = "CODE_MISMATCH"
	ErrCodeSMSNotConfigured = "SMS_NOT_CONFIGURED"
	ErrCodeMenuItemNotFound = "MENU_ITEM_NOT_FOUND"
	ErrCodeZoneNotFound     = "ZONE_NOT_FOUND"
	ErrCodeEmptyCart        = "EMPTY_CART"
	ErrCodeNoZoneSelected   = "NO_ZONE_SELECTED"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeInvalidStatus    = "INVALID_STATUS"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a business-logic error with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrPhoneTaken          = NewDomainError(ErrCodePhoneTaken, "This phone number is already registered. Please log in instead.")
	ErrInvalidPassword     = NewDomainError(ErrCodeInvalidPassword, "Invalid password")
	ErrSignupFieldsMissing = NewDomainError(ErrCodeMissingField, "Name, address, and password required for new account")
	ErrNoActiveCode        = NewDomainError(ErrCodeNoActiveCode, "No active code for this phone number")
	ErrCodeHasExpired      = NewDomainError(ErrCodeCodeExpired, "Code has expired")
	ErrCodeDoesNotMatch    = NewDomainError(ErrCodeCodeMismatch, "Incorrect OTP")
	ErrSMSNotConfigured    = NewDomainError(ErrCodeSMSNotConfigured, "Vonage credentials not configured")
	ErrMenuItemNotFound    = NewDomainError(ErrCodeMenuItemNotFound, "Menu item not found")
	ErrZoneNotFound        = NewDomainError(ErrCodeZoneNotFound, "Delivery zone not found")
	ErrEmptyCart           = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrNoZoneSelected      = NewDomainError(ErrCodeNoZoneSelected, "Select a delivery location first")
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidStatus       = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
)
