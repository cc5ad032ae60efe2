package http

import (
	"net/http"

	"freight/internal/core/application/roles"
	"freight/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateLoad handles POST /api/v1/shipper/loads.
func (s *Server) CreateLoad(c echo.Context) error {
	shipper, err := s.marketplace.Shipper(principal(c))
	if err != nil {
		return err
	}

	var req createLoadRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	loadID, err := shipper.CreateLoad(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: loadID})
}

// GetShipperLoads handles GET /api/v1/shipper/loads?status=.
func (s *Server) GetShipperLoads(c echo.Context) error {
	shipper, err := s.marketplace.Shipper(principal(c))
	if err != nil {
		return err
	}
	loads, err := shipper.ListLoads(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loads)
}

// GetShipperLoad handles GET /api/v1/shipper/loads/:loadId.
func (s *Server) GetShipperLoad(c echo.Context) error {
	shipper, loadID, err := s.shipperOn(c, "loadId")
	if err != nil {
		return err
	}
	detail, err := shipper.LoadDetail(c.Request().Context(), loadID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// GetBidsForLoad handles GET /api/v1/shipper/loads/:loadId/bids.
func (s *Server) GetBidsForLoad(c echo.Context) error {
	shipper, loadID, err := s.shipperOn(c, "loadId")
	if err != nil {
		return err
	}
	bids, err := shipper.BidsForLoad(c.Request().Context(), loadID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bids)
}

// GetShipperBid handles GET /api/v1/shipper/bids/:bidId.
func (s *Server) GetShipperBid(c echo.Context) error {
	shipper, bidID, err := s.shipperOn(c, "bidId")
	if err != nil {
		return err
	}
	detail, err := shipper.BidDetail(c.Request().Context(), bidID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// AcceptBid handles POST /api/v1/shipper/bids/:bidId/accept.
func (s *Server) AcceptBid(c echo.Context) error {
	shipper, bidID, err := s.shipperOn(c, "bidId")
	if err != nil {
		return err
	}
	if err = shipper.AcceptBid(c.Request().Context(), bidID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RateCarrier handles POST /api/v1/shipper/loads/:loadId/rating.
func (s *Server) RateCarrier(c echo.Context) error {
	shipper, loadID, err := s.shipperOn(c, "loadId")
	if err != nil {
		return err
	}

	var req rateCarrierRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	if err = shipper.RateCarrier(c.Request().Context(), loadID, req.Rating); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) shipperOn(c echo.Context, param string) (roles.ShipperActions, kernel.UUID, error) {
	shipper, err := s.marketplace.Shipper(principal(c))
	if err != nil {
		return nil, kernel.UUID{}, err
	}
	id, err := pathID(c, param)
	if err != nil {
		return nil, kernel.UUID{}, err
	}
	return shipper, id, nil
}
