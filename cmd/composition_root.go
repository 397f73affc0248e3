package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "littlelemon/internal/adapters/in/http"
	"littlelemon/internal/adapters/out/auth"
	"littlelemon/internal/adapters/out/notify"
	"littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/adapters/out/throttle"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/jobs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	tokens     *auth.JWTTokenService
	hasher     *auth.Argon2Hasher
	limiter    ports.RateLimiter
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	limiter ports.RateLimiter,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) (CompositionRoot, error) {
	tokens, err := auth.NewJWTTokenService(configs.JWTSecret, configs.JWTExpiry)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("JWT_SECRET/JWT_EXPIRY: %w", err)
	}
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     tokens,
		hasher:     auth.NewArgon2Hasher(),
		limiter:    limiter,
		notifier:   notifier,
		logger:     logger,
	}, nil
}

// NewRateLimiter picks the Redis limiter when Redis is configured and reachable,
// and the in-process limiter otherwise. The returned close func is never nil.
func NewRateLimiter(ctx context.Context, configs Config, logger *slog.Logger) (ports.RateLimiter, func(), error) {
	rate, err := throttle.ParseRate(configs.ThrottleRate)
	if err != nil {
		return nil, nil, fmt.Errorf("THROTTLE_RATE: %w", err)
	}

	if configs.RedisURL == "" && configs.RedisAddr == "" {
		logger.Info("throttling in process", "rate", rate.String())
		return throttle.NewMemoryLimiter(rate), func() {}, nil
	}

	client, err := throttle.NewRedisClient(ctx, configs.RedisURL, configs.RedisAddr, configs.RedisPassword)
	if err != nil {
		logger.Warn("redis unavailable, throttling in process", "error", err)
		return throttle.NewMemoryLimiter(rate), func() {}, nil
	}
	logger.Info("throttling through redis", "rate", rate.String())
	return throttle.NewRedisLimiter(client, rate), func() { closeRedis(client, logger) }, nil
}

func closeRedis(client *redis.Client, logger *slog.Logger) {
	if err := client.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
		logger.Warn("close redis", "error", err)
	}
}

// NewOrderNotifier posts to Telegram when a bot token and chat are configured
// and writes to the log otherwise.
func NewOrderNotifier(configs Config, logger *slog.Logger) ports.OrderNotifier {
	if configs.TelegramToken == "" || configs.TelegramChatID == 0 {
		return notify.NewLogNotifier(logger)
	}
	notifier, err := notify.NewTelegramNotifier(configs.TelegramToken, configs.TelegramChatID)
	if err != nil {
		logger.Warn("telegram unavailable, logging orders instead", "error", err)
		return notify.NewLogNotifier(logger)
	}
	return notifier
}

func (c *CompositionRoot) identityUoWFactory() commands.IdentityUoWFactory {
	return FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.identityUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreatePurgeStaleCartItemsCommandHandler() commands.PurgeStaleCartItemsCommandHandler {
	return commands.NewPurgeStaleCartItemsCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCommandHandlers() httpin.CommandHandlers {
	return httpin.CommandHandlers{
		IssueToken:        commands.NewIssueTokenCommandHandler(c.identityUoWFactory(), c.hasher, c.tokens),
		AddGroupMember:    commands.NewAddGroupMemberCommandHandler(c.identityUoWFactory()),
		RemoveGroupMember: commands.NewRemoveGroupMemberCommandHandler(c.identityUoWFactory()),
		CreateCategory:    commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory()),
		UpdateCategory:    commands.NewUpdateCategoryCommandHandler(c.catalogUoWFactory()),
		DeleteCategory:    commands.NewDeleteCategoryCommandHandler(c.catalogUoWFactory()),
		CreateMenuItem:    commands.NewCreateMenuItemCommandHandler(c.catalogUoWFactory()),
		UpdateMenuItem:    commands.NewUpdateMenuItemCommandHandler(c.catalogUoWFactory()),
		DeleteMenuItem:    commands.NewDeleteMenuItemCommandHandler(c.catalogUoWFactory()),
		AddCartItem:       commands.NewAddCartItemCommandHandler(c.cartUoWFactory()),
		ClearCart:         commands.NewClearCartCommandHandler(c.cartUoWFactory()),
		PlaceOrder:        commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.logger),
		UpdateOrder:       commands.NewUpdateOrderCommandHandler(c.orderUoWFactory()),
		DeleteOrder:       commands.NewDeleteOrderCommandHandler(c.orderUoWFactory()),
	}
}

func (c *CompositionRoot) CreateQueryHandlers() httpin.QueryHandlers {
	return httpin.QueryHandlers{
		ListGroupMembers: queries.NewListGroupMembersQueryHandler(c.gormDB),
		GetGroupMember:   queries.NewGetGroupMemberQueryHandler(c.gormDB),
		ListCategories:   queries.NewListCategoriesQueryHandler(c.gormDB),
		GetCategory:      queries.NewGetCategoryQueryHandler(c.gormDB),
		ListMenuItems:    queries.NewListMenuItemsQueryHandler(c.gormDB),
		GetMenuItem:      queries.NewGetMenuItemQueryHandler(c.gormDB),
		GetCart:          queries.NewGetCartQueryHandler(c.gormDB),
		ListOrders:       queries.NewListOrdersQueryHandler(c.gormDB),
		GetOrder:         queries.NewGetOrderQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	return queries.NewAuthenticateQueryHandler(c.gormDB, c.tokens)
}

// CreateRouter wires the HTTP surface described by doc.
func (c *CompositionRoot) CreateRouter(doc *openapi3.T) (*echo.Echo, error) {
	server := httpin.NewServer(c.CreateCommandHandlers(), c.CreateQueryHandlers())
	return httpin.NewRouter(server, httpin.RouterConfig{
		Doc:           doc,
		Authenticator: c.CreateAuthenticateQueryHandler(),
		Limiter:       c.limiter,
		Logger:        c.logger,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	purge := c.CreatePurgeStaleCartItemsCommandHandler()
	return jobs.NewJobManager(
		jobs.NewCartExpiryJob(&purge, c.configs.CartExpirySchedule, c.configs.CartTTL, c.logger),
	)
}

type FuncIdentityUoWFactory func() commands.IdentityUoW

func (f FuncIdentityUoWFactory) Create() commands.IdentityUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
