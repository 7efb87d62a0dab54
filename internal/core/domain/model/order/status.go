package order

import (
	"fmt"

	"entregas/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions (forward only):
//
//	Pending ──> Assigned ──┬──> InTransit ──> Delivered
//	                       │                      ▲
//	                       └──────────────────────┘
//
// Delivered is terminal. Unknown (the zero value) catches uninitialized values.
type Status int

const (
	Unknown Status = iota

	// Pending orders were pulled from the invoicing system and wait for a branch.
	Pending

	// Assigned orders are bound to a branch and the user who assigned them.
	Assigned

	// InTransit orders are out for delivery.
	InTransit

	// Delivered orders carry the delivery confirmation. No further transitions.
	Delivered
)

var statusNames = map[Status]string{
	Pending:   "PENDING",
	Assigned:  "ASSIGNED",
	InTransit: "EN_TRANSITO",
	Delivered: "DELIVERED",
}

// ParseStatus converts the persisted/wire name back into a Status.
//
// Example:
//
//	status, err := order.ParseStatus(c.QueryParam("status"))
//	if err != nil {
//	    return err // value is invalid: status
//	}
func ParseStatus(name string) (Status, error) {
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks that the status is one of the four lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name ("PENDING", "ASSIGNED", "EN_TRANSITO", "DELIVERED"),
// or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no lifecycle transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Assign transitions Pending -> Assigned. Reassignment is not allowed.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewStateIsInvalidError(s.String(), "assign")
	}
	return Assigned, nil
}

// MarkInTransit transitions Assigned -> InTransit.
func (s Status) MarkInTransit() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewStateIsInvalidError(s.String(), "mark in transit")
	}
	return InTransit, nil
}

// Deliver transitions Assigned or InTransit -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Assigned && s != InTransit {
		return Unknown, errs.NewStateIsInvalidError(s.String(), "confirm delivery")
	}
	return Delivered, nil
}

// ValidateCanHaveBranch enforces that orders past Pending are bound to a branch
// and that pending orders are not.
func (s Status) ValidateCanHaveBranch(hasBranch bool) error {
	if hasBranch && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a branch", s),
		)
	}
	if !hasBranch && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no branch", s),
		)
	}
	return nil
}
