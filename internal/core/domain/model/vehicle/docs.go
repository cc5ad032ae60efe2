// Package vehicle provides the Vehicle aggregate: a truck, tanker or light
// commercial vehicle registered by a carrier and offered against loads.
//
// The package includes:
//   - Vehicle: the aggregate root holding identity, registration number, type,
//     capacity, dimensions and status
//   - Status: the vehicle state machine
//   - Number: the normalized national registration number
//
// Key business rules:
//   - A tanker is rated in litres only; every other type is rated in tons and
//     carries physical dimensions (a flatbed has no height)
//   - An LCV carries at most 3 tons; every other tonnage type carries more
//   - The manufacturing year lies within the last 20 years and not in the future
//   - Status changes follow a fixed edge table; only AVAILABLE <-> MAINTENANCE may
//     be requested directly, the rest happen as effects of bidding, assignment and
//     transit
//   - A vehicle with history is retired rather than deleted
package vehicle
