// Package bid implements the Bid aggregate: a carrier's offer of one vehicle,
// a price and a transit time for one load. Bids are never deleted; a PENDING
// bid ends ACCEPTED or REJECTED when the shipper picks a winner.
package bid
