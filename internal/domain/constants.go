package domain

// Vehicle capacities
const (
	SedanCapacity   = 4
	MinivanCapacity = 8
)

// Booking draft defaults
const (
	DefaultGroupSize     = 1
	DefaultDurationHours = 2
	DefaultCarType       = CarTypeSedan
	DefaultVisitType     = VisitMasjidQuba
	DefaultPaymentMethod = PaymentMethodOther
)

// Business validation constants
const (
	MinDurationHours      = 1
	MaxDurationHours      = 10
	MinGroupSize          = 1
	MaxSpecialRequestsLen = 500

	// CashConfirmationFeeRate share of the total charged up front for cash bookings
	CashConfirmationFeeRate = 0.25
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Checkout session constants
const (
	// SessionIDPlaceholder literal token the payment provider substitutes
	// with the real session id when redirecting back to the success URL
	SessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"

	// SessionIDQueryParam query parameter name the session id is read back from
	SessionIDQueryParam = "session_id"
)
