// Package services provides domain services that coordinate several
// marketplace aggregates in one decision.
//
// The package includes:
//   - EligibilityPolicy: which loads a carrier may bid on and which of its
//     vehicles qualify for a load
//   - VisibilityPolicy: which load and bid details a party may read
//   - BidResolver: the assignment decision that accepts one bid, rejects the
//     rest and relabels the vehicles and the load
//
// Services never load or store anything. Command handlers read the aggregates
// inside a unit of work, hand them to a service and persist what it changed.
package services
