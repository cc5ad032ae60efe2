// Package carrier provides the Carrier aggregate: a transport company that
// registers vehicles and bids on loads.
//
// The package includes:
//   - Carrier: the aggregate root holding the business profile and the
//     reputation counters (fleet size, total trips, rating)
//   - Rating: a shipper's 1 to 5 score for one delivered load
//
// Key business rules:
//   - Fleet size counts vehicles that are not retired; it never goes below zero
//   - Total trips grows by one per delivered load
//   - The rating is the mean of every score received, rounded to 2 decimals,
//     so it does not depend on the order the scores arrived in
//   - Counters change in the same transaction as the mutation that triggers them
package carrier
