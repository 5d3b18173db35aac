package components

import (
	"stayquote/internal/infra/cache"
	"stayquote/internal/infra/repository"
	"stayquote/internal/pkg/config"
	"stayquote/internal/usecase/commands"
	"stayquote/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewQuoteRepository,
			fx.As(new(commands.QuoteRepository)),
			fx.As(new(queries.QuoteReadStore)),
		),
		fx.Annotate(
			NewQuoteCache,
			fx.As(new(queries.QuoteCache)),
		),
	),
)

func NewQuoteCache(client *redis.Client, cfg config.Config) *cache.QuoteCache {
	return cache.NewQuoteCache(client, cfg.Redis.QuoteTTL)
}
