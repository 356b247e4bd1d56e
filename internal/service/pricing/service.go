package pricing

import (
	"math"

	"github.com/m04kA/MHT-StorefrontService/internal/config"
	"github.com/m04kA/MHT-StorefrontService/internal/domain"
)

// Service сервис расчета стоимости тура
// Единая точка для обеих стратегий расчета: почасовая по выбору (car type + локация)
// и фиксированная за человека (базовая цена локации * размер группы).
// Стратегия выбирается конфигурацией, а не дублированием кода
type Service struct {
	strategy string
}

// NewService создает новый экземпляр сервиса расчета стоимости
func NewService(cfg config.PricingConfig) *Service {
	return &Service{strategy: cfg.Strategy}
}

// Strategy возвращает активную стратегию расчета
func (s *Service) Strategy() string {
	return s.strategy
}

// PriceFor возвращает цену за час для выбранной комбинации
// Чистая функция: lookup по вложенной таблице с фиксированным fallback
func (s *Service) PriceFor(carType domain.CarType, visitType domain.VisitType) float64 {
	return domain.PriceFor(carType, visitType)
}

// Total считает итоговую стоимость тура по активной стратегии
// hourly_by_selection: цена за час * длительность в часах
// flat_per_person: базовая цена локации * размер группы
func (s *Service) Total(draft *domain.BookingDraft, site *domain.Site) float64 {
	if s.strategy == config.StrategyFlatPerPerson {
		return site.Price * float64(draft.GroupSize)
	}
	return s.PriceFor(draft.CarType, draft.VisitType) * float64(draft.DurationHours)
}

// ConfirmationFee считает предоплату для бронирований с оплатой наличными
// (25% от итоговой стоимости, округление до целого)
// Для остальных способов оплаты возвращает 0
func (s *Service) ConfirmationFee(total float64, method domain.PaymentMethod) float64 {
	if method != domain.PaymentMethodCash {
		return 0
	}
	return math.Round(total * domain.CashConfirmationFeeRate)
}
