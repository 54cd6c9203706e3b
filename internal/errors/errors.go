package errors

import "fmt"

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// AppError carries an operator-facing message, a user-facing message, and
// routing hints for the central handler.
type AppError struct {
	Code        string
	Message     string
	UserMessage string
	Severity    Severity
	Retryable   bool
	cause       error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

func (e *AppError) Cause() error {
	return e.Unwrap()
}

// NewProviderError wraps a failed or unusable content fetch. The affected
// group/category is skipped for the tick; nothing user-visible for
// scheduled sends.
func NewProviderError(category string, cause error) *AppError {
	return &AppError{
		Code:        "E100",
		Message:     fmt.Sprintf("content provider error for %s", category),
		UserMessage: "عذراً، تعذر جلب المحتوى حالياً. حاول لاحقاً",
		Severity:    SeverityMedium,
		Retryable:   true,
		cause:       cause,
	}
}

// NewTransportError wraps a failed send, edit, or callback acknowledgement.
func NewTransportError(op string, cause error) *AppError {
	return &AppError{
		Code:        "E200",
		Message:     fmt.Sprintf("transport error during %s", op),
		UserMessage: "⚠️ تعذر إرسال الرسالة. حاول مرة أخرى",
		Severity:    SeverityMedium,
		Retryable:   true,
		cause:       cause,
	}
}

// NewPermissionError marks an admin-only action invoked by a regular
// member. Not a system fault; never retried.
func NewPermissionError() *AppError {
	return &AppError{
		Code:        "E300",
		Message:     "admin-only action invoked by non-admin",
		UserMessage: "⛔️ هذا الأمر متاح للمدراء فقط",
		Severity:    SeverityLow,
		Retryable:   false,
	}
}

// NewAdjustmentError marks a rejected interval adjustment, e.g. decreasing
// below the floor. No mutation occurs.
func NewAdjustmentError(msg string) *AppError {
	return &AppError{
		Code:        "E400",
		Message:     msg,
		UserMessage: "⚠️ الحد الأدنى 30 دقيقة",
		Severity:    SeverityLow,
		Retryable:   false,
	}
}

// NewUnknownActionError marks a malformed or stale callback action. The
// interaction is acknowledged silently.
func NewUnknownActionError(action string) *AppError {
	return &AppError{
		Code:        "E500",
		Message:     fmt.Sprintf("unknown callback action %q", action),
		UserMessage: "",
		Severity:    SeverityLow,
		Retryable:   false,
	}
}

// NewInternalError wraps unexpected faults such as recovered panics.
func NewInternalError(cause error) *AppError {
	return &AppError{
		Code:        "E900",
		Message:     "internal error",
		UserMessage: "حدث خطأ غير متوقع. حاول لاحقاً",
		Severity:    SeverityHigh,
		Retryable:   false,
		cause:       cause,
	}
}
