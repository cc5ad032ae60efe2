// Package kernel holds the value objects shared by the marketplace aggregates.
//
// The package includes:
//   - UUID: identifiers for aggregates and entities
//   - Address: a street/city/state/pincode location
//   - Money: a positive decimal amount for budgets and bids
//   - Capacity: a tagged tons-or-litres quantity
//   - VehicleType and VehicleTypeSet: the closed vehicle category enum
//   - Profile: business identity shared by carriers and shippers
//   - Event and EventRecorder: domain events collected by aggregates until commit
package kernel
