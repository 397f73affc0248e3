package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const swaggerInstance = "littlelemon"

// RouterConfig carries the collaborators of the router besides the use cases.
type RouterConfig struct {
	Doc           *openapi3.T
	Authenticator queries.AuthenticateQueryHandler
	Limiter       ports.RateLimiter
	Logger        *slog.Logger
}

// NewRouter builds the echo instance: global middleware, health and docs
// endpoints, and the API routes behind authentication, parameter validation
// and throttling.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	validate, err := ValidateRequests(cfg.Doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwagger(cfg.Doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(RequestLogger(cfg.Logger))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(swaggerInstance)))

	apiMiddleware := []echo.MiddlewareFunc{
		Authenticate(cfg.Authenticator, func(c echo.Context) bool {
			return c.Path() == "/token/login"
		}),
		validate,
		Throttle(cfg.Limiter, ThrottledScope, cfg.Logger),
	}
	servers.RegisterHandlers(apiRoutes{e: e, middleware: apiMiddleware}, server)

	return e, nil
}

// apiRoutes attaches the API middleware to each generated route. Paths outside
// the API never reach authentication and get echo's 404.
type apiRoutes struct {
	e          *echo.Echo
	middleware []echo.MiddlewareFunc
}

func (r apiRoutes) with(m []echo.MiddlewareFunc) []echo.MiddlewareFunc {
	return slices.Concat(r.middleware, m)
}

func (r apiRoutes) CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.CONNECT(path, h, r.with(m)...)
}

func (r apiRoutes) DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.DELETE(path, h, r.with(m)...)
}

func (r apiRoutes) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.GET(path, h, r.with(m)...)
}

func (r apiRoutes) HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.HEAD(path, h, r.with(m)...)
}

func (r apiRoutes) OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.OPTIONS(path, h, r.with(m)...)
}

func (r apiRoutes) PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.PATCH(path, h, r.with(m)...)
}

func (r apiRoutes) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.POST(path, h, r.with(m)...)
}

func (r apiRoutes) PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.PUT(path, h, r.with(m)...)
}

func (r apiRoutes) TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.TRACE(path, h, r.with(m)...)
}

type swaggerDoc string

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

func registerSwagger(doc *openapi3.T) error {
	if swag.GetSwagger(swaggerInstance) != nil {
		return nil
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("render openapi document: %w", err)
	}
	swag.Register(swaggerInstance, swaggerDoc(raw))
	return nil
}
