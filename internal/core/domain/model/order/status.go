package order

import (
	"fmt"

	"canteen/internal/pkg/errs"
)

// Status represents the lifecycle state of an order line.
// It implements a state machine with defined transitions to ensure
// orders follow the correct venue workflow.
//
// State transitions:
//
//	Unapproved ──> Pending ──> Completed ──> Delivered
//	     │                          │
//	     └────────> Declined <──────┘
//
// Unapproved is the sole initial state; Delivered and Declined are terminal.
// Any requested transition not in the diagram is rejected with an
// InvalidTransition error and the status stays unchanged.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display. The string forms are
// part of the stored schema and must not change.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Unapproved is the initial status of every line of a new submission.
	// Staff have not yet accepted the order or taken payment.
	Unapproved

	// Pending indicates staff approved the order; the kitchen is working on it.
	Pending

	// Completed indicates the item is prepared and waiting at the counter.
	Completed

	// Delivered indicates the item was handed to the customer. Terminal.
	Delivered

	// Declined indicates staff refused the order at intake or before serving. Terminal.
	Declined
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Unapproved: "Unapproved",
		Pending:    "Pending",
		Completed:  "Completed",
		Delivered:  "Delivered",
		Declined:   "Declined",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unapproved: "Unapproved",
		Pending:    "Pending",
		Completed:  "Completed",
		Delivered:  "Delivered",
		Declined:   "Declined",
	}
}

// AllStatuses returns every valid lifecycle status.
// Used by queries that partition or count the store per status.
func AllStatuses() []Status {
	return []Status{Unapproved, Pending, Completed, Delivered, Declined}
}

// StatusFromString parses a stored status string back into a Status.
// Returns an error for any string outside the fixed vocabulary.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other out-of-vocabulary value is invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// Implements fmt.Stringer and is safe to call on any value; invalid values
// return "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Rank orders statuses by lifecycle progress for group-level reporting.
// A group's progress is the minimum rank among its lines, since a group is
// only as ready as its slowest item. Declined ranks lowest so a declined
// sibling pins the group. Unknown ranks below everything.
func (s Status) Rank() int {
	switch s {
	case Declined:
		return 1
	case Unapproved:
		return 2
	case Pending:
		return 3
	case Completed:
		return 4
	case Delivered:
		return 5
	case Unknown:
		return 0
	default:
		return 0
	}
}

// Approve transitions the status to Pending.
//
// Valid transitions:
//   - Unapproved -> Pending (staff accepted the order)
//
// Returns:
//   - (Pending, nil) on valid transition
//   - (0, InvalidTransitionError) if the line is not Unapproved
func (s Status) Approve() (Status, error) {
	if s != Unapproved {
		return 0, errs.NewInvalidTransitionError(s.String(), Pending.String())
	}
	return Pending, nil
}

// Decline transitions the status to Declined.
//
// Valid transitions:
//   - Unapproved -> Declined (refused at intake)
//   - Completed -> Declined (refused before serving)
//
// Returns:
//   - (Declined, nil) on valid transition
//   - (0, InvalidTransitionError) otherwise
func (s Status) Decline() (Status, error) {
	if s != Unapproved && s != Completed {
		return 0, errs.NewInvalidTransitionError(s.String(), Declined.String())
	}
	return Declined, nil
}

// MarkPrepared transitions the status to Completed.
//
// Valid transitions:
//   - Pending -> Completed (kitchen finished the item)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, InvalidTransitionError) otherwise
func (s Status) MarkPrepared() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), Completed.String())
	}
	return Completed, nil
}

// MarkDelivered transitions the status to Delivered.
//
// Valid transitions:
//   - Completed -> Delivered (item handed to the customer)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, InvalidTransitionError) otherwise
func (s Status) MarkDelivered() (Status, error) {
	if s != Completed {
		return 0, errs.NewInvalidTransitionError(s.String(), Delivered.String())
	}
	return Delivered, nil
}
