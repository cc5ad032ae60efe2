// Package load implements the Load aggregate: a shipment a shipper posts and
// carriers bid on.
//
// A load moves strictly forward through CREATED -> ASSIGNED -> IN_TRANSIT ->
// DELIVERED. The selected carrier and assigned vehicle are set once, at
// assignment, and never change. Deadlines are checked against the time the
// caller passes in; nothing expires on its own.
package load
