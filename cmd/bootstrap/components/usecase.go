package components

import (
	"stayquote/internal/domain/pricing"
	"stayquote/internal/pkg/clock"
	"stayquote/internal/pkg/config"
	"stayquote/internal/usecase/commands"
	"stayquote/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPriceCalculator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewQuoteCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
	),
)

func NewPriceCalculator(cfg config.Config) (*pricing.Calculator, error) {
	rate, err := cfg.Pricing.FallbackRate()
	if err != nil {
		return nil, err
	}
	return pricing.NewCalculatorWithRate(rate), nil
}
