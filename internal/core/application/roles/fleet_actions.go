package roles

import (
	"context"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/vehicle"
)

// FleetActions are the operations a carrier performs on its own vehicles.
type FleetActions interface {
	AddVehicle(ctx context.Context, in commands.VehicleInput) (kernel.UUID, error)
	ListVehicles(ctx context.Context) ([]queries.VehicleView, error)
	VehicleDetail(ctx context.Context, vehicleID kernel.UUID) (queries.VehicleView, error)
	UpdateVehicle(ctx context.Context, vehicleID kernel.UUID, in commands.VehicleInput) error
	UpdateVehicleStatus(ctx context.Context, vehicleID kernel.UUID, status string) error
	MarkMaintenance(ctx context.Context, vehicleID kernel.UUID) error
	RemoveVehicle(ctx context.Context, vehicleID kernel.UUID) (vehicle.Removal, error)
}

type fleetActions struct {
	carrierID kernel.UUID
	h         *Handlers
}

func (a fleetActions) AddVehicle(ctx context.Context, in commands.VehicleInput) (kernel.UUID, error) {
	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewAddVehicleCommand(vehicleID, a.carrierID, in)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = a.h.AddVehicle.Handle(ctx, cmd); err != nil {
		return kernel.UUID{}, err
	}
	return vehicleID, nil
}

func (a fleetActions) ListVehicles(ctx context.Context) ([]queries.VehicleView, error) {
	query, err := queries.NewListVehiclesQuery(a.carrierID)
	if err != nil {
		return nil, err
	}
	return a.h.ListVehicles.Handle(ctx, query)
}

func (a fleetActions) VehicleDetail(ctx context.Context, vehicleID kernel.UUID) (queries.VehicleView, error) {
	query, err := queries.NewVehicleDetailQuery(a.carrierID, vehicleID)
	if err != nil {
		return queries.VehicleView{}, err
	}
	return a.h.VehicleDetail.Handle(ctx, query)
}

func (a fleetActions) UpdateVehicle(ctx context.Context, vehicleID kernel.UUID, in commands.VehicleInput) error {
	cmd, err := commands.NewUpdateVehicleDetailsCommand(a.carrierID, vehicleID, in)
	if err != nil {
		return err
	}
	return a.h.UpdateVehicle.Handle(ctx, cmd)
}

func (a fleetActions) UpdateVehicleStatus(ctx context.Context, vehicleID kernel.UUID, status string) error {
	cmd, err := commands.NewUpdateVehicleStatusCommand(a.carrierID, vehicleID, status)
	if err != nil {
		return err
	}
	return a.h.UpdateVehicleStatus.Handle(ctx, cmd)
}

func (a fleetActions) MarkMaintenance(ctx context.Context, vehicleID kernel.UUID) error {
	cmd, err := commands.NewMarkMaintenanceCommand(a.carrierID, vehicleID)
	if err != nil {
		return err
	}
	return a.h.MarkMaintenance.Handle(ctx, cmd)
}

func (a fleetActions) RemoveVehicle(ctx context.Context, vehicleID kernel.UUID) (vehicle.Removal, error) {
	cmd, err := commands.NewRemoveVehicleCommand(a.carrierID, vehicleID)
	if err != nil {
		return 0, err
	}
	return a.h.RemoveVehicle.Handle(ctx, cmd)
}
