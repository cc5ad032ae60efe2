package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterCarrier handles POST /api/v1/carriers.
func (s *Server) RegisterCarrier(c echo.Context) error {
	var req profileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterCarrierCommand(id, req.input())
	if err != nil {
		return err
	}
	if err = s.registerCarrier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// RegisterShipper handles POST /api/v1/shippers.
func (s *Server) RegisterShipper(c echo.Context) error {
	var req registerShipperRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterShipperCommand(id, req.input(), req.IndustryType)
	if err != nil {
		return err
	}
	if err = s.registerShipper.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}
