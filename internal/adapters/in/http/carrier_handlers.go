package http

import (
	"net/http"

	"freight/internal/core/application/roles"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetEligibleLoads handles GET /api/v1/carrier/loads.
func (s *Server) GetEligibleLoads(c echo.Context) error {
	carrier, err := s.marketplace.Carrier(principal(c))
	if err != nil {
		return err
	}
	loads, err := carrier.EligibleLoads(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loads)
}

// GetCarrierLoad handles GET /api/v1/carrier/loads/:loadId.
func (s *Server) GetCarrierLoad(c echo.Context) error {
	carrier, loadID, err := s.carrierOn(c, "loadId")
	if err != nil {
		return err
	}
	detail, err := carrier.LoadDetail(c.Request().Context(), loadID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// MarkNotInterested handles POST /api/v1/carrier/loads/:loadId/not-interested.
func (s *Server) MarkNotInterested(c echo.Context) error {
	carrier, loadID, err := s.carrierOn(c, "loadId")
	if err != nil {
		return err
	}
	if err = carrier.MarkNotInterested(c.Request().Context(), loadID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetEligibleVehicles handles GET /api/v1/carrier/loads/:loadId/vehicles.
func (s *Server) GetEligibleVehicles(c echo.Context) error {
	carrier, loadID, err := s.carrierOn(c, "loadId")
	if err != nil {
		return err
	}
	vehicles, err := carrier.EligibleVehicles(c.Request().Context(), loadID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicles)
}

// PlaceBid handles POST /api/v1/carrier/loads/:loadId/bids.
func (s *Server) PlaceBid(c echo.Context) error {
	carrier, loadID, err := s.carrierOn(c, "loadId")
	if err != nil {
		return err
	}

	var req placeBidRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicleId", err)
	}

	bidID, err := carrier.PlaceBid(c.Request().Context(), roles.BidRequest{
		LoadID:         loadID,
		VehicleID:      vehicleID,
		Amount:         req.BidAmount,
		EstimatedHours: req.EstimatedTransitTimeHours,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: bidID})
}

// GetCarrierBids handles GET /api/v1/carrier/bids?status=.
func (s *Server) GetCarrierBids(c echo.Context) error {
	carrier, err := s.marketplace.Carrier(principal(c))
	if err != nil {
		return err
	}
	bids, err := carrier.ListBids(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bids)
}

// GetCarrierBid handles GET /api/v1/carrier/bids/:bidId.
func (s *Server) GetCarrierBid(c echo.Context) error {
	carrier, bidID, err := s.carrierOn(c, "bidId")
	if err != nil {
		return err
	}
	detail, err := carrier.BidDetail(c.Request().Context(), bidID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// StartTransit handles POST /api/v1/carrier/loads/:loadId/start-transit.
func (s *Server) StartTransit(c echo.Context) error {
	carrier, loadID, err := s.carrierOn(c, "loadId")
	if err != nil {
		return err
	}
	if err = carrier.StartTransit(c.Request().Context(), loadID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/carrier/loads/:loadId/deliver.
func (s *Server) MarkDelivered(c echo.Context) error {
	carrier, loadID, err := s.carrierOn(c, "loadId")
	if err != nil {
		return err
	}
	if err = carrier.MarkDelivered(c.Request().Context(), loadID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// carrierOn resolves the role before the path id so an anonymous caller
// gets 401 rather than a validation error.
func (s *Server) carrierOn(c echo.Context, param string) (roles.CarrierActions, kernel.UUID, error) {
	carrier, err := s.marketplace.Carrier(principal(c))
	if err != nil {
		return nil, kernel.UUID{}, err
	}
	id, err := pathID(c, param)
	if err != nil {
		return nil, kernel.UUID{}, err
	}
	return carrier, id, nil
}
