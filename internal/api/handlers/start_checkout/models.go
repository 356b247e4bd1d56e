package start_checkout

import startCheckout "github.com/m04kA/MHT-StorefrontService/internal/usecase/start_checkout"

// StartCheckoutRequest HTTP request model
type StartCheckoutRequest struct {
	BookingID string `json:"bookingId"`
}

// CheckoutResponse HTTP response model
// Клиент выполняет полный редирект на redirectUrl
type CheckoutResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *StartCheckoutRequest) ToUseCaseRequest() *startCheckout.Request {
	return &startCheckout.Request{BookingID: r.BookingID}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *startCheckout.Response) *CheckoutResponse {
	return &CheckoutResponse{RedirectURL: resp.RedirectURL}
}
