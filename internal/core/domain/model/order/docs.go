// Package order holds the Order aggregate: one customer invoice from the invoicing
// system and its journey to the door.
//
// An order is created Pending when its invoice is pulled, is dispatched to exactly one
// branch, may go out in transit, and ends Delivered with the receiver's document and an
// optional signature. Delivered orders stay locally authoritative; the only change they
// accept afterwards is MarkSynced, once the confirmation reached the invoicing system.
package order
