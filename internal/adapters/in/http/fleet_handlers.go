package http

import (
	"net/http"

	"freight/internal/core/application/roles"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// AddVehicle handles POST /api/v1/carrier/vehicles.
func (s *Server) AddVehicle(c echo.Context) error {
	fleet, err := s.marketplace.Fleet(principal(c))
	if err != nil {
		return err
	}

	var req addVehicleRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	vehicleID, err := fleet.AddVehicle(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: vehicleID})
}

// GetVehicles handles GET /api/v1/carrier/vehicles.
func (s *Server) GetVehicles(c echo.Context) error {
	fleet, err := s.marketplace.Fleet(principal(c))
	if err != nil {
		return err
	}
	vehicles, err := fleet.ListVehicles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicles)
}

// GetVehicle handles GET /api/v1/carrier/vehicles/:vehicleId.
func (s *Server) GetVehicle(c echo.Context) error {
	fleet, vehicleID, err := s.fleetOn(c)
	if err != nil {
		return err
	}
	v, err := fleet.VehicleDetail(c.Request().Context(), vehicleID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// UpdateVehicle handles PATCH /api/v1/carrier/vehicles/:vehicleId. Fields
// left out of the body keep their current value.
func (s *Server) UpdateVehicle(c echo.Context) error {
	fleet, vehicleID, err := s.fleetOn(c)
	if err != nil {
		return err
	}

	var req updateVehicleRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	if err = fleet.UpdateVehicle(c.Request().Context(), vehicleID, req.input()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateVehicleStatus handles PATCH /api/v1/carrier/vehicles/:vehicleId/status.
func (s *Server) UpdateVehicleStatus(c echo.Context) error {
	fleet, vehicleID, err := s.fleetOn(c)
	if err != nil {
		return err
	}

	var req updateVehicleStatusRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	if err = fleet.UpdateVehicleStatus(c.Request().Context(), vehicleID, req.Status); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkMaintenance handles POST /api/v1/carrier/vehicles/:vehicleId/maintenance.
func (s *Server) MarkMaintenance(c echo.Context) error {
	fleet, vehicleID, err := s.fleetOn(c)
	if err != nil {
		return err
	}
	if err = fleet.MarkMaintenance(c.Request().Context(), vehicleID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveVehicle handles DELETE /api/v1/carrier/vehicles/:vehicleId.
// The outcome tells the client whether the vehicle was erased or retired.
func (s *Server) RemoveVehicle(c echo.Context) error {
	fleet, vehicleID, err := s.fleetOn(c)
	if err != nil {
		return err
	}
	removal, err := fleet.RemoveVehicle(c.Request().Context(), vehicleID)
	if err != nil {
		return err
	}

	outcome := "RETIRED"
	if removal == vehicle.HardDelete {
		outcome = "DELETED"
	}
	return c.JSON(http.StatusOK, removalResponse{ID: vehicleID, Outcome: outcome})
}

func (s *Server) fleetOn(c echo.Context) (roles.FleetActions, kernel.UUID, error) {
	fleet, err := s.marketplace.Fleet(principal(c))
	if err != nil {
		return nil, kernel.UUID{}, err
	}
	id, err := pathID(c, "vehicleId")
	if err != nil {
		return nil, kernel.UUID{}, err
	}
	return fleet, id, nil
}
