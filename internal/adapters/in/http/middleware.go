package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const actorKey = "actor"

// Authenticate resolves the bearer token into an identity.Actor stored on the
// context. Requests picked by skipper pass through anonymously.
func Authenticate(handler queries.AuthenticateQueryHandler, skipper middleware.Skipper) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(c, "Authentication credentials were not provided.", errs.ErrUnauthenticated)
			}
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") {
				return unauthorized(c, "Invalid token header.", errs.ErrUnauthenticated)
			}

			query, err := queries.NewAuthenticateQuery(token)
			if err != nil {
				return unauthorized(c, "Invalid token header.", err)
			}
			actor, err := handler.Handle(c.Request().Context(), query)
			if errors.Is(err, errs.ErrUnauthenticated) {
				return unauthorized(c, "Invalid token.", err)
			}
			if err != nil {
				return err
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, message string, cause error) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer realm="api"`)
	return echo.NewHTTPError(http.StatusUnauthorized, message).SetInternal(cause)
}

func actorFrom(c echo.Context) (identity.Actor, error) {
	actor, ok := c.Get(actorKey).(identity.Actor)
	if !ok {
		return identity.Actor{}, fmt.Errorf("%w: no actor on the request", errs.ErrUnauthenticated)
	}
	return actor, nil
}

// Throttle limits authenticated requests per user and endpoint family. Routes
// scope does not recognize are not limited. Limiter failures let the request
// through.
func Throttle(limiter ports.RateLimiter, scope func(route string) (string, bool), logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "throttle")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			name, limited := scope(c.Path())
			if !limited {
				return next(c)
			}
			actor, err := actorFrom(c)
			if err != nil {
				return next(c)
			}

			key := fmt.Sprintf("user:%d:%s", actor.UserID(), name)
			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				logger.WarnContext(c.Request().Context(), "rate limiter unavailable", "key", key, "error", err)
				return next(c)
			}
			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Request was throttled.")
			}
			return next(c)
		}
	}
}

// ThrottledScope maps the menu and order routes to their throttle scope.
func ThrottledScope(route string) (string, bool) {
	for _, prefix := range []string{"/menu-items", "/orders"} {
		if route == prefix || strings.HasPrefix(route, prefix+"/") {
			return strings.TrimPrefix(prefix, "/"), true
		}
	}
	return "", false
}

// ValidateRequests checks path and query parameters against the OpenAPI
// document. Bodies are left to the use cases. Requests the document does not
// describe are passed on for echo to answer.
func ValidateRequests(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	options := &openapi3filter.Options{
		ExcludeRequestBody: true,
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route, pathParams, err := router.FindRoute(c.Request())
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    c.Request(),
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(c.Request().Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err)).SetInternal(err)
			}
			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) && reqErr.Parameter != nil {
		return fmt.Sprintf("Invalid %s parameter %q: %s", reqErr.Parameter.In, reqErr.Parameter.Name, reqErr.Reason)
	}
	return err.Error()
}

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
