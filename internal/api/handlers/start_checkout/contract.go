package start_checkout

import (
	"context"

	startCheckout "github.com/m04kA/MHT-StorefrontService/internal/usecase/start_checkout"
)

type StartCheckoutUseCase interface {
	Execute(ctx context.Context, req *startCheckout.Request) (*startCheckout.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
