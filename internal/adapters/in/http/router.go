package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"freight/internal/observability"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the echo instance with every marketplace route.
// Registration, /health and /metrics are public; everything under
// /api/v1/carrier and /api/v1/shipper needs a bearer token.
func NewRouter(s *Server, jwtSecret []byte, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewErrorHandler(logger)
	e.Validator = newRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(recordMetrics)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/carriers", s.RegisterCarrier)
	api.POST("/shippers", s.RegisterShipper)

	carrier := api.Group("/carrier", Authenticate(jwtSecret))
	carrier.GET("/loads", s.GetEligibleLoads)
	carrier.GET("/loads/:loadId", s.GetCarrierLoad)
	carrier.POST("/loads/:loadId/not-interested", s.MarkNotInterested)
	carrier.GET("/loads/:loadId/vehicles", s.GetEligibleVehicles)
	carrier.POST("/loads/:loadId/bids", s.PlaceBid)
	carrier.POST("/loads/:loadId/start-transit", s.StartTransit)
	carrier.POST("/loads/:loadId/deliver", s.MarkDelivered)
	carrier.GET("/bids", s.GetCarrierBids)
	carrier.GET("/bids/:bidId", s.GetCarrierBid)

	carrier.POST("/vehicles", s.AddVehicle)
	carrier.GET("/vehicles", s.GetVehicles)
	carrier.GET("/vehicles/:vehicleId", s.GetVehicle)
	carrier.PATCH("/vehicles/:vehicleId", s.UpdateVehicle)
	carrier.PATCH("/vehicles/:vehicleId/status", s.UpdateVehicleStatus)
	carrier.POST("/vehicles/:vehicleId/maintenance", s.MarkMaintenance)
	carrier.DELETE("/vehicles/:vehicleId", s.RemoveVehicle)

	shipper := api.Group("/shipper", Authenticate(jwtSecret))
	shipper.POST("/loads", s.CreateLoad)
	shipper.GET("/loads", s.GetShipperLoads)
	shipper.GET("/loads/:loadId", s.GetShipperLoad)
	shipper.GET("/loads/:loadId/bids", s.GetBidsForLoad)
	shipper.POST("/loads/:loadId/rating", s.RateCarrier)
	shipper.GET("/bids/:bidId", s.GetShipperBid)
	shipper.POST("/bids/:bidId/accept", s.AcceptBid)

	return e
}

// recordMetrics counts requests by route template so ids do not explode the
// label space. The error handler runs first so the final status is recorded.
func recordMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Response().Status)
		observability.HTTPRequestsTotal.WithLabelValues(c.Request().Method, route, status).Inc()
		observability.HTTPRequestDuration.WithLabelValues(c.Request().Method, route, status).
			Observe(time.Since(start).Seconds())
		return nil
	}
}
