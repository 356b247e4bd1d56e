package domain

// PaymentStatus is the transient state of one checkout attempt.
// Lifecycle: None -> Processing -> {Success | Expired | Timeout | Error},
// terminal states have no transitions out
type PaymentStatus string

const (
	PaymentStatusNone       PaymentStatus = "none"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSuccess    PaymentStatus = "success"
	PaymentStatusExpired    PaymentStatus = "expired"
	PaymentStatusTimeout    PaymentStatus = "timeout"
	PaymentStatusError      PaymentStatus = "error"
)

// IsTerminal returns true if no further transition is possible from the status
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusSuccess, PaymentStatusExpired, PaymentStatusTimeout, PaymentStatusError:
		return true
	default:
		return false
	}
}
