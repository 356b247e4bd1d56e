package submit_booking

import (
	"fmt"
	"net/mail"

	"github.com/m04kA/MHT-StorefrontService/internal/config"
	"github.com/m04kA/MHT-StorefrontService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Локация, дата и время обязательны всегда; требуемость контактных полей
// задается конфигурацией (наборы обязательных полей различались между
// вариантами формы)
func validateRequest(req *Request, rules config.BookingConfig) error {
	if req.SiteID <= 0 {
		return fmt.Errorf("%w: site is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if rules.RequireName && req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if rules.RequirePhone && req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if rules.RequireEmail && req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	// Необязательный email все равно проверяем на корректность формата
	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
		}
	}

	if !req.CarType.IsValid() {
		return fmt.Errorf("%w: unknown car type %q", ErrInvalidInput, req.CarType)
	}

	if !req.VisitType.IsValid() {
		return fmt.Errorf("%w: unknown visit type %q", ErrInvalidInput, req.VisitType)
	}

	if !req.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	if !req.BookingType.IsValid() {
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.BookingType)
	}

	if req.GroupSize < domain.MinGroupSize {
		return fmt.Errorf("%w: group size must be at least %d", ErrInvalidInput, domain.MinGroupSize)
	}
	if req.GroupSize > req.CarType.Capacity() {
		return fmt.Errorf("%w: %s takes at most %d people", ErrGroupTooLarge, req.CarType, req.CarType.Capacity())
	}

	if req.DurationHours < domain.MinDurationHours || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: duration must be between %d and %d hours",
			ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
	}

	if len(req.SpecialRequests) > domain.MaxSpecialRequestsLen {
		return fmt.Errorf("%w: special requests too long", ErrInvalidInput)
	}

	return nil
}
