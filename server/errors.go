package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zoobzio/loadz/content"
)

var errBadClass = echo.NewHTTPError(http.StatusBadRequest, "class must be a number")

// appHTTPErrorHandler writes every error as {"error": message}.
func appHTTPErrorHandler(err error, ctx echo.Context) {
	var code int
	var message string

	var herr *echo.HTTPError
	switch {
	case errors.As(err, &herr):
		code = herr.Code
		if m, ok := herr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	case errors.Is(err, content.ErrNotFound):
		code = http.StatusNotFound
		message = err.Error()
	default: // any other error is a server error
		code = http.StatusInternalServerError
		message = http.StatusText(code)
		ctx.Logger().Error(err)
	}

	if ctx.Echo().Debug {
		message = err.Error()
	}

	if !ctx.Response().Committed {
		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, echo.Map{"error": message})
		}
		if err != nil {
			ctx.Echo().Logger.Error(err)
		}
	}
}
