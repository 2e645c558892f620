package order

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotNew is returned when a master assignment is attempted on an
	// order that has already left the new status.
	ErrOrderIsNotNew = errors.New("order must be in new status to assign a master")

	// ErrOrderNotStartable is returned when work is started on an order that
	// has not been assigned to a master.
	ErrOrderNotStartable = errors.New("order must be in assigned status to start")

	// ErrOrderNotCompletable is returned when completion is attempted from a
	// status other than assigned or in_progress.
	ErrOrderNotCompletable = errors.New("order must be assigned or in progress to complete")

	// ErrOrderNotRejectable is returned when rejection is attempted on an
	// order that is already in a terminal status.
	ErrOrderNotRejectable = errors.New("order is already in a terminal status")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	New ──> Assigned ──> InProgress ──┬──> Completed
//	 │          │   └─────────────────┘
//	 └──────────┴──> Rejected
//
// Completed and Rejected are terminal. Completion is reachable from both
// Assigned and InProgress; rejection from any non-terminal status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first created.
	// Orders in this status are waiting to be assigned to a master.
	New

	// Assigned indicates the order has been assigned to a master.
	Assigned

	// InProgress indicates the assigned master has started the work.
	InProgress

	// Completed indicates the work was finished and evidence accepted.
	// This is a terminal status.
	Completed

	// Rejected indicates the order was cancelled before completion.
	// This is a terminal status.
	Rejected
)

// getStatusStrings returns a map of Status values to their string tokens.
// The tokens are the stable external representation used by the API.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		New:        "new",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
		Rejected:   "rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "new",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
		Rejected:   "rejected",
	}
}

// StatusFromString parses a status token into a Status value.
// Returns an error for tokens that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status token, e.g. "in_progress".
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected
}

// ValidateAssign checks if the status allows master assignment without
// performing the transition. Only New orders may be assigned; there is
// no reassignment.
func (s Status) ValidateAssign() error {
	if s != New {
		return ErrOrderIsNotNew
	}
	return nil
}

// ValidateCanHaveMaster validates the consistency between order status and
// master assignment.
//
// Business rules:
//   - New and Rejected orders must not have a master assigned
//   - Assigned, InProgress and Completed orders must have a master assigned
//
// The master reference survives completion: once assigned, it stays on the
// order so completed work remains attributable.
func (s Status) ValidateCanHaveMaster(hasMaster bool) error {
	if hasMaster && s != Assigned && s != InProgress && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a master", s.String()),
		)
	}

	if !hasMaster && (s == Assigned || s == InProgress || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no master", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - New -> Assigned
//
// Returns ErrOrderIsNotNew for any other source status, including
// Assigned: an order already holding a master is never silently reassigned.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Assigned -> InProgress
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, ErrOrderNotStartable
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Assigned -> Completed
//   - InProgress -> Completed
//
// Completed is a terminal status with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != Assigned && s != InProgress {
		return 0, ErrOrderNotCompletable
	}

	return Completed, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - New -> Rejected
//   - Assigned -> Rejected
//   - InProgress -> Rejected
//
// Rejected is a terminal status with no further transitions possible.
func (s Status) Reject() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, ErrOrderNotRejectable
	}

	return Rejected, nil
}
