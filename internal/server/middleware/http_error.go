package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/deals-api/internal/models"
)

// ErrorHandler translates every failure into the {error, detail?} envelope.
// The detail field carries the underlying cause for 5xx responses so an
// upstream message survives to the caller.
func ErrorHandler(log Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if err == nil || c.Response().Committed {
			return
		}

		he := &echo.HTTPError{
			Code:     http.StatusInternalServerError,
			Message:  http.StatusText(http.StatusInternalServerError),
			Internal: err,
		}
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			he = echoErr
		}

		resp := models.ErrorResponse{Error: fmt.Sprint(he.Message)}
		if he.Internal != nil {
			resp.Detail = he.Internal.Error()
		}

		if c.Request().Method == http.MethodHead {
			if err := c.NoContent(he.Code); err != nil {
				log.Errorw("could not respond", "code", he.Code, "error", err)
			}
			return
		}
		if err := c.JSON(he.Code, resp); err != nil {
			log.Errorw("could not respond", "code", he.Code, "response_body", resp)
		}
	}
}
