// Package services contains stateless domain services that coordinate
// multiple aggregates. MasterDispatcher selects the best master for an
// order without committing the assignment.
package services
