// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MasterRepoFactory provides access to the master repository within a transaction.
	MasterRepoFactory interface {
		MasterRepository() ports.MasterRepository
	}

	// EvidenceRepoFactory provides access to the evidence repository within a transaction.
	EvidenceRepoFactory interface {
		EvidenceRepository() ports.EvidenceRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MasterUoW manages transactions for master-only operations.
	MasterUoW interface {
		TxManager
		MasterRepoFactory
	}

	// MasterUoWFactory creates new master unit of work instances.
	MasterUoWFactory interface {
		Create() MasterUoW
	}

	// AssignmentUoW manages transactions for master assignment, which reads
	// masters and their loads and conditionally updates the order.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		MasterRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// EvidenceUoW manages transactions for operations touching orders and
	// their evidence: attaching records and the completion gate.
	EvidenceUoW interface {
		TxManager
		OrderRepoFactory
		EvidenceRepoFactory
	}

	// EvidenceUoWFactory creates new evidence unit of work instances.
	EvidenceUoWFactory interface {
		Create() EvidenceUoW
	}
)
