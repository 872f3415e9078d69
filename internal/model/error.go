package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeMissingField         = "MISSING_FIELD"
	ErrCodeInvalidCategory      = "INVALID_CATEGORY"
	ErrCodeInvalidPrice         = "INVALID_PRICE"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidQuantity      = "INVALID_QUANTITY"
	ErrCodeEmptyComment         = "EMPTY_COMMENT"
	ErrCodeInvalidPayment       = "INVALID_PAYMENT_METHOD"
	ErrCodeNoCheckoutInProgress = "NO_CHECKOUT_IN_PROGRESS"
	ErrCodeSessionNotFound      = "SESSION_NOT_FOUND"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// DomainError is a business-logic failure with a stable code.
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
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidCategory      = NewDomainError(ErrCodeInvalidCategory, "Category is not one of the storefront departments")
	ErrInvalidPrice         = NewDomainError(ErrCodeInvalidPrice, "Price must not be negative")
	ErrInvalidQuantity      = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrEmptyComment         = NewDomainError(ErrCodeEmptyComment, "Comment text and author name are required")
	ErrInvalidPayment       = NewDomainError(ErrCodeInvalidPayment, "Payment method must be Wise, MonCash or Bank")
	ErrNoCheckoutInProgress = NewDomainError(ErrCodeNoCheckoutInProgress, "No checkout in progress for this session")
	ErrSessionNotFound      = NewDomainError(ErrCodeSessionNotFound, "Unknown session token")
)
