package apperror

import "fmt"

// AppError is a structured, recoverable error surfaced as an inline
// message on the current screen. No error in this app is fatal.
type AppError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Err     error  `json:"-"` // Wrapped internal error (not shown to the user)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ---- Transfer Validation (VAL) ----

func ErrEmptyRecipient() *AppError {
	return New("VAL_001", "Recipient is required")
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Amount must be a positive number")
}

func ErrInsufficientBalance() *AppError {
	return New("VAL_003", "Amount exceeds available balance")
}

func ErrNameRequired() *AppError {
	return New("VAL_004", "Enter your name to sign in")
}

// ---- Camera & Offline Scan (CAM) ----

func ErrCameraUnsupported() *AppError {
	return New("CAM_001", "Camera is not available on this device")
}

func ErrCameraDenied(err error) *AppError {
	return Wrap("CAM_002", "Camera access was denied", err)
}

func ErrScanInProgress() *AppError {
	return New("CAM_003", "A scan is already in progress")
}

// ---- Navigation Guards (NAV) ----

func ErrNotLoggedIn() *AppError {
	return New("NAV_001", "Sign in to continue")
}

func ErrIllegalTransition(from, to string) *AppError {
	return New("NAV_002", fmt.Sprintf("Cannot navigate from %s to %s", from, to))
}

func ErrNoPendingTransfer() *AppError {
	return New("NAV_003", "No transfer is awaiting confirmation")
}

// Internal wraps an unexpected internal error.
func Internal(err error) *AppError {
	return Wrap("SYS_001", "Internal error", err)
}
