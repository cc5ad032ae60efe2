package commands_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/interaction"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/shipper"
	"freight/internal/core/domain/model/vehicle"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// memoryStore is an in-process stand-in for the database. A unit of work
// holds the store lock from Begin until Commit or Rollback, which gives the
// same one-writer-at-a-time behaviour the row locks give in Postgres.
type memoryStore struct {
	tx     sync.Mutex
	data   memoryData
	events []kernel.DomainEvent
}

type interactionKey struct {
	carrierID kernel.UUID
	loadID    kernel.UUID
}

type memoryData struct {
	loads        map[kernel.UUID]load.State
	vehicles     map[kernel.UUID]vehicle.State
	bids         map[kernel.UUID]bid.State
	interactions map[interactionKey]*interaction.Interaction
	ratings      map[kernel.UUID]*carrier.Rating
	carriers     map[kernel.UUID]carrier.State
	shippers     map[kernel.UUID]*shipper.Shipper
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: memoryData{
		loads:        map[kernel.UUID]load.State{},
		vehicles:     map[kernel.UUID]vehicle.State{},
		bids:         map[kernel.UUID]bid.State{},
		interactions: map[interactionKey]*interaction.Interaction{},
		ratings:      map[kernel.UUID]*carrier.Rating{},
		carriers:     map[kernel.UUID]carrier.State{},
		shippers:     map[kernel.UUID]*shipper.Shipper{},
	}}
}

func (d memoryData) clone() memoryData {
	return memoryData{
		loads:        cloneMap(d.loads),
		vehicles:     cloneMap(d.vehicles),
		bids:         cloneMap(d.bids),
		interactions: cloneMap(d.interactions),
		ratings:      cloneMap(d.ratings),
		carriers:     cloneMap(d.carriers),
		shippers:     cloneMap(d.shippers),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memoryStore) Create() commands.UoW {
	return &memoryUoW{store: s}
}

// eventNames lists the names of every event committed so far.
func (s *memoryStore) eventNames() []string {
	s.tx.Lock()
	defer s.tx.Unlock()
	names := make([]string, 0, len(s.events))
	for _, e := range s.events {
		names = append(names, e.EventName())
	}
	return names
}

func (s *memoryStore) load(id kernel.UUID) *load.Load {
	s.tx.Lock()
	defer s.tx.Unlock()
	l, err := load.RestoreLoad(s.data.loads[id])
	if err != nil {
		panic(err)
	}
	return l
}

func (s *memoryStore) vehicle(id kernel.UUID) *vehicle.Vehicle {
	s.tx.Lock()
	defer s.tx.Unlock()
	state, ok := s.data.vehicles[id]
	if !ok {
		return nil
	}
	v, err := vehicle.RestoreVehicle(state)
	if err != nil {
		panic(err)
	}
	return v
}

func (s *memoryStore) bid(id kernel.UUID) *bid.Bid {
	s.tx.Lock()
	defer s.tx.Unlock()
	b, err := bid.RestoreBid(s.data.bids[id])
	if err != nil {
		panic(err)
	}
	return b
}

func (s *memoryStore) carrier(id kernel.UUID) *carrier.Carrier {
	s.tx.Lock()
	defer s.tx.Unlock()
	c, err := carrier.RestoreCarrier(s.data.carriers[id])
	if err != nil {
		panic(err)
	}
	return c
}

var errNoTransaction = errors.New("no transaction in progress")

type memoryUoW struct {
	store    *memoryStore
	snapshot memoryData
	active   bool
	tracked  []kernel.AggregateRoot
}

func (u *memoryUoW) Begin(context.Context) error {
	u.store.tx.Lock()
	u.snapshot = u.store.data.clone()
	u.active = true
	return nil
}

func (u *memoryUoW) Commit(context.Context) error {
	if !u.active {
		return errNoTransaction
	}
	for _, agg := range u.tracked {
		u.store.events = append(u.store.events, agg.DomainEvents()...)
		agg.ClearDomainEvents()
	}
	u.finish()
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	if !u.active {
		return errNoTransaction
	}
	u.store.data = u.snapshot
	u.finish()
	return nil
}

func (u *memoryUoW) finish() {
	u.active = false
	u.tracked = nil
	u.store.tx.Unlock()
}

func (u *memoryUoW) track(agg kernel.AggregateRoot) {
	u.tracked = append(u.tracked, agg)
}

func (u *memoryUoW) LoadRepository() ports.LoadRepository {
	return memoryLoads{u}
}

func (u *memoryUoW) VehicleRepository() ports.VehicleRepository {
	return memoryVehicles{u}
}

func (u *memoryUoW) BidRepository() ports.BidRepository {
	return memoryBids{u}
}

func (u *memoryUoW) InteractionRepository() ports.InteractionRepository {
	return memoryInteractions{u}
}

func (u *memoryUoW) RatingRepository() ports.RatingRepository {
	return memoryRatings{u}
}

func (u *memoryUoW) CarrierRepository() ports.CarrierRepository {
	return memoryCarriers{u}
}

func (u *memoryUoW) ShipperRepository() ports.ShipperRepository {
	return memoryShippers{u}
}

type memoryLoads struct{ uow *memoryUoW }

func loadState(l *load.Load) load.State {
	return load.State{
		ID:              l.ID(),
		ShipperID:       l.ShipperID(),
		Pickup:          l.Pickup(),
		Delivery:        l.Delivery(),
		Material:        l.Material(),
		Description:     l.Description(),
		Requirement:     l.Requirement(),
		RequiredTypes:   l.RequiredTypes(),
		Budget:          l.Budget(),
		Schedule:        l.Schedule(),
		SelectedCarrier: l.SelectedCarrier(),
		AssignedVehicle: l.AssignedVehicle(),
		Status:          l.Status(),
		CreatedAt:       l.CreatedAt(),
	}
}

func (r memoryLoads) Add(_ context.Context, l *load.Load) error {
	if _, ok := r.uow.store.data.loads[l.ID()]; ok {
		return errs.NewConflictError("load", l.ID())
	}
	r.uow.store.data.loads[l.ID()] = loadState(l)
	r.uow.track(l)
	return nil
}

func (r memoryLoads) Update(_ context.Context, l *load.Load) error {
	if _, ok := r.uow.store.data.loads[l.ID()]; !ok {
		return errs.NewObjectNotFoundError("load", l.ID())
	}
	r.uow.store.data.loads[l.ID()] = loadState(l)
	r.uow.track(l)
	return nil
}

func (r memoryLoads) Get(_ context.Context, id kernel.UUID) (*load.Load, error) {
	state, ok := r.uow.store.data.loads[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("load", id)
	}
	return load.RestoreLoad(state)
}

func (r memoryLoads) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.Get(ctx, id)
}

func (r memoryLoads) ListOpenForBidding(ctx context.Context, carrierID kernel.UUID, now time.Time) ([]*load.Load, error) {
	out := []*load.Load{}
	for id, state := range r.uow.store.data.loads {
		if _, seen := r.uow.store.data.interactions[interactionKey{carrierID, id}]; seen {
			continue
		}
		if state.Status != load.Created || !state.Schedule.BiddingOpen(now) {
			continue
		}
		l, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	slices.SortFunc(out, func(a, b *load.Load) int {
		return a.Schedule().BiddingDeadline().Compare(b.Schedule().BiddingDeadline())
	})
	return out, nil
}

type memoryVehicles struct{ uow *memoryUoW }

func vehicleState(v *vehicle.Vehicle) vehicle.State {
	return vehicle.State{
		ID:                v.ID(),
		CarrierID:         v.CarrierID(),
		Number:            v.Number().String(),
		Type:              v.Type(),
		Capacity:          v.Capacity(),
		Dimensions:        v.Dimensions(),
		ManufacturingYear: v.ManufacturingYear(),
		Status:            v.Status(),
		CreatedAt:         v.CreatedAt(),
	}
}

func (r memoryVehicles) Add(_ context.Context, v *vehicle.Vehicle) error {
	for _, existing := range r.uow.store.data.vehicles {
		if existing.Number == v.Number().String() {
			return errs.NewConflictError("vehicleNumber", v.Number())
		}
	}
	r.uow.store.data.vehicles[v.ID()] = vehicleState(v)
	r.uow.track(v)
	return nil
}

func (r memoryVehicles) Update(_ context.Context, v *vehicle.Vehicle) error {
	if _, ok := r.uow.store.data.vehicles[v.ID()]; !ok {
		return errs.NewObjectNotFoundError("vehicle", v.ID())
	}
	for id, existing := range r.uow.store.data.vehicles {
		if !id.IsEqual(v.ID()) && existing.Number == v.Number().String() {
			return errs.NewConflictError("vehicleNumber", v.Number())
		}
	}
	r.uow.store.data.vehicles[v.ID()] = vehicleState(v)
	r.uow.track(v)
	return nil
}

func (r memoryVehicles) Delete(_ context.Context, id kernel.UUID) error {
	if _, ok := r.uow.store.data.vehicles[id]; !ok {
		return errs.NewObjectNotFoundError("vehicle", id)
	}
	delete(r.uow.store.data.vehicles, id)
	return nil
}

func (r memoryVehicles) Get(_ context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	state, ok := r.uow.store.data.vehicles[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("vehicle", id)
	}
	return vehicle.RestoreVehicle(state)
}

func (r memoryVehicles) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.Get(ctx, id)
}

func (r memoryVehicles) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*vehicle.Vehicle, error) {
	out := make([]*vehicle.Vehicle, 0, len(ids))
	for _, id := range ids {
		v, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r memoryVehicles) ListByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*vehicle.Vehicle, error) {
	return r.list(ctx, carrierID, func(vehicle.State) bool { return true })
}

func (r memoryVehicles) ListAvailableByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*vehicle.Vehicle, error) {
	return r.list(ctx, carrierID, func(s vehicle.State) bool { return s.Status == vehicle.Available })
}

func (r memoryVehicles) list(
	ctx context.Context,
	carrierID kernel.UUID,
	keep func(vehicle.State) bool,
) ([]*vehicle.Vehicle, error) {
	out := []*vehicle.Vehicle{}
	for id, state := range r.uow.store.data.vehicles {
		if !state.CarrierID.IsEqual(carrierID) || !keep(state) {
			continue
		}
		v, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b *vehicle.Vehicle) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})
	return out, nil
}

func (r memoryVehicles) HasHistory(_ context.Context, id kernel.UUID) (bool, error) {
	for _, b := range r.uow.store.data.bids {
		if b.VehicleID.IsEqual(id) {
			return true, nil
		}
	}
	for _, l := range r.uow.store.data.loads {
		if l.AssignedVehicle != nil && l.AssignedVehicle.IsEqual(id) {
			return true, nil
		}
	}
	return false, nil
}

type memoryBids struct{ uow *memoryUoW }

func bidState(b *bid.Bid) bid.State {
	return bid.State{
		ID:             b.ID(),
		LoadID:         b.LoadID(),
		CarrierID:      b.CarrierID(),
		VehicleID:      b.VehicleID(),
		Amount:         b.Amount(),
		EstimatedHours: b.EstimatedHours(),
		Status:         b.Status(),
		CreatedAt:      b.CreatedAt(),
	}
}

func (r memoryBids) Add(_ context.Context, b *bid.Bid) error {
	if _, ok := r.uow.store.data.bids[b.ID()]; ok {
		return errs.NewConflictError("bid", b.ID())
	}
	r.uow.store.data.bids[b.ID()] = bidState(b)
	r.uow.track(b)
	return nil
}

func (r memoryBids) Update(_ context.Context, b *bid.Bid) error {
	if _, ok := r.uow.store.data.bids[b.ID()]; !ok {
		return errs.NewObjectNotFoundError("bid", b.ID())
	}
	r.uow.store.data.bids[b.ID()] = bidState(b)
	r.uow.track(b)
	return nil
}

func (r memoryBids) Get(_ context.Context, id kernel.UUID) (*bid.Bid, error) {
	state, ok := r.uow.store.data.bids[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("bid", id)
	}
	return bid.RestoreBid(state)
}

func (r memoryBids) GetForUpdate(ctx context.Context, id kernel.UUID) (*bid.Bid, error) {
	return r.Get(ctx, id)
}

func (r memoryBids) ListPendingByLoadForUpdate(ctx context.Context, loadID kernel.UUID) ([]*bid.Bid, error) {
	out := []*bid.Bid{}
	for id, state := range r.uow.store.data.bids {
		if !state.LoadID.IsEqual(loadID) || state.Status != bid.Pending {
			continue
		}
		b, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

type memoryInteractions struct{ uow *memoryUoW }

func (r memoryInteractions) Add(_ context.Context, i *interaction.Interaction) error {
	key := interactionKey{i.CarrierID(), i.LoadID()}
	if _, ok := r.uow.store.data.interactions[key]; ok {
		return errs.NewConflictError("interaction", i.Kind())
	}
	r.uow.store.data.interactions[key] = i
	return nil
}

func (r memoryInteractions) Get(_ context.Context, carrierID, loadID kernel.UUID) (*interaction.Interaction, error) {
	i, ok := r.uow.store.data.interactions[interactionKey{carrierID, loadID}]
	if !ok {
		return nil, errs.NewObjectNotFoundError("interaction", loadID)
	}
	return i, nil
}

type memoryRatings struct{ uow *memoryUoW }

func (r memoryRatings) Add(_ context.Context, rating *carrier.Rating) error {
	if _, ok := r.uow.store.data.ratings[rating.LoadID()]; ok {
		return errs.NewConflictError("rating", rating.LoadID())
	}
	r.uow.store.data.ratings[rating.LoadID()] = rating
	return nil
}

func (r memoryRatings) ExistsForLoad(_ context.Context, loadID kernel.UUID) (bool, error) {
	_, ok := r.uow.store.data.ratings[loadID]
	return ok, nil
}

type memoryCarriers struct{ uow *memoryUoW }

func carrierState(c *carrier.Carrier) carrier.State {
	return carrier.State{
		ID:          c.ID(),
		Profile:     c.Profile(),
		FleetSize:   c.FleetSize(),
		RatingTotal: c.RatingTotal(),
		RatingCount: c.RatingCount(),
		TotalTrips:  c.TotalTrips(),
		CreatedAt:   c.CreatedAt(),
	}
}

func (r memoryCarriers) Add(_ context.Context, c *carrier.Carrier) error {
	for _, existing := range r.uow.store.data.carriers {
		if existing.ID.IsEqual(c.ID()) || existing.Profile.Email() == c.Profile().Email() {
			return errs.NewConflictError("carrier", c.Profile().Email())
		}
	}
	r.uow.store.data.carriers[c.ID()] = carrierState(c)
	r.uow.track(c)
	return nil
}

func (r memoryCarriers) Update(_ context.Context, c *carrier.Carrier) error {
	if _, ok := r.uow.store.data.carriers[c.ID()]; !ok {
		return errs.NewObjectNotFoundError("carrier", c.ID())
	}
	r.uow.store.data.carriers[c.ID()] = carrierState(c)
	r.uow.track(c)
	return nil
}

func (r memoryCarriers) Get(_ context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	state, ok := r.uow.store.data.carriers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("carrier", id)
	}
	return carrier.RestoreCarrier(state)
}

func (r memoryCarriers) GetForUpdate(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	return r.Get(ctx, id)
}

type memoryShippers struct{ uow *memoryUoW }

func (r memoryShippers) Add(_ context.Context, s *shipper.Shipper) error {
	if _, ok := r.uow.store.data.shippers[s.ID()]; ok {
		return errs.NewConflictError("shipper", s.ID())
	}
	r.uow.store.data.shippers[s.ID()] = s
	r.uow.track(s)
	return nil
}

func (r memoryShippers) Get(_ context.Context, id kernel.UUID) (*shipper.Shipper, error) {
	s, ok := r.uow.store.data.shippers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipper", id)
	}
	return s, nil
}
