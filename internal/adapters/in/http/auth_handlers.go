package http

import (
	"errors"
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/generated/servers"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Login handles POST /token/login - exchanges credentials for a bearer token.
func (s *Server) Login(c echo.Context) error {
	var body servers.LoginJSONRequestBody
	if err := bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewIssueTokenCommand(deref(body.Username), deref(body.Password))
	if err != nil {
		return err
	}

	token, err := s.commands.IssueToken.Handle(c.Request().Context(), cmd)
	if errors.Is(err, errs.ErrUnauthenticated) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unable to log in with provided credentials.").SetInternal(err)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, servers.Token{AuthToken: token})
}

// authorize resolves the caller and checks op against the role matrix. Write
// handlers call it before reading the body.
func (s *Server) authorize(c echo.Context, op services.Operation) (identity.Actor, error) {
	actor, err := actorFrom(c)
	if err != nil {
		return identity.Actor{}, err
	}
	if err = s.policy.Authorize(actor, op); err != nil {
		return identity.Actor{}, err
	}
	return actor, nil
}

// bind decodes the request body. Decoder errors stay internal; the client only
// learns that the body was malformed.
func bind(c echo.Context, body any) error {
	err := c.Bind(body)
	if err == nil {
		return nil
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code != http.StatusBadRequest {
		return err
	}
	return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body.").SetInternal(err)
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func message(c echo.Context, status int, text string) error {
	return c.JSON(status, servers.Message{Message: text})
}
