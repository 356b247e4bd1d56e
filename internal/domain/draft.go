package domain

import (
	"time"

	"github.com/m04kA/MHT-StorefrontService/pkg/types"
)

// CarType represents the vehicle selected for the tour
type CarType string

const (
	CarTypeSedan   CarType = "sedan"
	CarTypeMinivan CarType = "minivan"
)

// IsValid returns true if the car type is one of the known values
func (c CarType) IsValid() bool {
	return c == CarTypeSedan || c == CarTypeMinivan
}

// Capacity returns the maximum group size the vehicle can take
func (c CarType) Capacity() int {
	switch c {
	case CarTypeMinivan:
		return MinivanCapacity
	default:
		return SedanCapacity
	}
}

// VisitType represents the location selection the price table is keyed by
type VisitType string

const (
	VisitMasjidQuba      VisitType = "masjid-quba"
	VisitMountUhud       VisitType = "mount-uhud"
	VisitMasjidQiblatain VisitType = "masjid-qiblatain"
	VisitTrenchBattle    VisitType = "trench-battle"
	VisitPackage         VisitType = "package"
	VisitOtherLocations  VisitType = "other-locations"
)

// IsValid returns true if the visit type is one of the known values
func (v VisitType) IsValid() bool {
	switch v {
	case VisitMasjidQuba, VisitMountUhud, VisitMasjidQiblatain,
		VisitTrenchBattle, VisitPackage, VisitOtherLocations:
		return true
	default:
		return false
	}
}

// PaymentMethod represents how the visitor intends to pay
type PaymentMethod string

const (
	// PaymentMethodCash pay cash at location; requires a 25% confirmation fee
	PaymentMethodCash PaymentMethod = "cash"
	// PaymentMethodOther card / apple-pay / hosted checkout
	PaymentMethodOther PaymentMethod = "other"
)

// IsValid returns true if the payment method is one of the known values
func (p PaymentMethod) IsValid() bool {
	return p == PaymentMethodCash || p == PaymentMethodOther
}

// BookingType distinguishes a request-only submission from an immediate-payment one
type BookingType string

const (
	BookingTypeContact BookingType = "contact"
	BookingTypePayment BookingType = "payment"
)

// IsValid returns true if the booking type is one of the known values
func (b BookingType) IsValid() bool {
	return b == BookingTypeContact || b == BookingTypePayment
}

// BookingDraft is the in-progress, unsubmitted form state for one booking attempt.
// Owned exclusively by the active form session; updated field-by-field and reset
// to defaults on successful contact submission or cancel.
type BookingDraft struct {
	Name            string
	Email           string
	Phone           string
	GroupSize       int
	Date            time.Time // Zero value means "not selected yet"
	Time            types.TimeString
	DurationHours   int
	CarType         CarType
	VisitType       VisitType
	PaymentMethod   PaymentMethod
	SpecialRequests string
}

// NewBookingDraft returns a draft with every field at its documented default
func NewBookingDraft() BookingDraft {
	return BookingDraft{
		GroupSize:     DefaultGroupSize,
		DurationHours: DefaultDurationHours,
		CarType:       DefaultCarType,
		VisitType:     DefaultVisitType,
		PaymentMethod: DefaultPaymentMethod,
	}
}

// Reset restores every field to its default
func (d *BookingDraft) Reset() {
	*d = NewBookingDraft()
}

// SetCarType switches the vehicle and clamps the group size to its capacity,
// so the sedan<=4 / minivan<=8 invariant always holds
func (d *BookingDraft) SetCarType(carType CarType) {
	d.CarType = carType
	if cap := carType.Capacity(); d.GroupSize > cap {
		d.GroupSize = cap
	}
}

// FitsCapacity returns true if the group size does not exceed the vehicle capacity
func (d *BookingDraft) FitsCapacity() bool {
	return d.GroupSize >= 1 && d.GroupSize <= d.CarType.Capacity()
}
