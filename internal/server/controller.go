package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/deals-api/internal/kafka"
	"github.com/nguyentranbao-ct/deals-api/internal/models"
	"github.com/nguyentranbao-ct/deals-api/internal/usecase"
)

type Controller interface {
	GetDeals(c echo.Context) error
	Health(c echo.Context) error
}

type controller struct {
	dealsUsecase usecase.DealsUsecase
	events       kafka.Producer
}

func NewController(dealsUsecase usecase.DealsUsecase, events kafka.Producer) Controller {
	return &controller{
		dealsUsecase: dealsUsecase,
		events:       events,
	}
}

func (h *controller) GetDeals(c echo.Context) error {
	var req models.DealsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			"exactly one of collection or query must be provided")
	}

	params := req.Params()
	ctx := c.Request().Context()
	start := time.Now()

	products, err := h.dealsUsecase.TopDeals(ctx, params)
	if err != nil {
		if errors.Is(err, models.ErrNotConfigured) {
			return echo.NewHTTPError(http.StatusInternalServerError,
				"storefront client not configured").SetInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError,
			"upstream query failed").SetInternal(err)
	}

	h.events.Publish(ctx, kafka.QueryEvent{
		Collection: params.Spec.Collection,
		Query:      params.Spec.Search,
		Limit:      params.Limit,
		Factor:     params.Factor,
		Results:    len(products),
		DurationMs: time.Since(start).Milliseconds(),
		Timestamp:  time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, models.DealsResponse{
		Meta: models.DealsMeta{
			Collection: params.Spec.Collection,
			Query:      params.Spec.Search,
			Limit:      params.Limit,
			Factor:     params.Factor,
		},
		Products: products,
	})
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "deals-api",
	})
}
