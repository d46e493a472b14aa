package app

import (
	"github.com/carousell/ct-go/pkg/logger"
	"github.com/nguyentranbao-ct/deals-api/internal/config"
	"github.com/nguyentranbao-ct/deals-api/internal/kafka"
	"github.com/nguyentranbao-ct/deals-api/internal/repo/storefront"
	"github.com/nguyentranbao-ct/deals-api/internal/server"
	"github.com/nguyentranbao-ct/deals-api/internal/usecase"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			server.NewController,

			usecase.NewDealsUsecase,

			storefront.NewClient,
			kafka.NewProducer,
		),
		fx.Supply(conf),
		fx.Invoke(funcs...),
	)
}
