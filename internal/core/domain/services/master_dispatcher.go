package services

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"
	"dispatch/internal/core/domain/model/order"
)

// TieTolerance is the epsilon a distance (km) or rating difference must
// exceed to be considered different during candidate comparison. Smaller
// differences are floating-point jitter on otherwise-identical inputs.
const TieTolerance = 0.001

// ErrMasterNotFound is returned when no suitable master is available for
// order assignment. This occurs when either no masters are provided or
// none of the provided masters is currently available.
var ErrMasterNotFound = errors.New("master not found")

// MasterDispatcher is a domain service responsible for selecting the best
// master for an order.
//
// Selection criteria, in precedence order:
//   - ascending distance from the master to the order location
//   - descending rating within distance tolerance
//   - ascending active load within rating tolerance
//
// Among fully tied candidates the earliest one in the input slice wins,
// keeping selection deterministic for identical inputs.
//
// SelectBestMaster is pure: it mutates neither the order nor the masters.
// Committing the assignment is the caller's responsibility, performed as a
// separate conditional update so concurrent assignments cannot both win.
type MasterDispatcher struct{}

// NewMasterDispatcher creates a new MasterDispatcher instance.
func NewMasterDispatcher() MasterDispatcher {
	return MasterDispatcher{}
}

// SelectBestMaster finds the best available master for the given order.
//
// Parameters:
//   - ord: the order to assign (must be valid and in new status)
//   - masters: candidate masters; unavailable ones are skipped
//   - loads: active load per master ID, freshly derived from order storage
//
// A master missing from loads is treated as having zero active load.
//
// Returns ErrMasterNotFound if no available candidate exists, and
// order.ErrOrderIsNotNew if the order has already left the new status.
func (d MasterDispatcher) SelectBestMaster(
	ord *order.Order,
	masters []*master.Master,
	loads map[kernel.UUID]int,
) (*master.Master, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	if err := ord.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	var (
		best         *master.Master
		bestDistance float64
		bestRating   float64
		bestLoad     int
	)

	for _, m := range masters {
		if err := m.Validate(); err != nil {
			return nil, err
		}

		if !m.IsAvailable() {
			continue
		}

		distance, err := m.DistanceTo(ord.Location())
		if err != nil {
			return nil, err
		}
		load := loads[m.ID()]

		if best == nil || beats(distance, m.Rating(), load, bestDistance, bestRating, bestLoad) {
			best = m
			bestDistance = distance
			bestRating = m.Rating()
			bestLoad = load
		}
	}

	if best == nil {
		return nil, ErrMasterNotFound
	}

	return best, nil
}

// beats reports whether the candidate key strictly beats the current best.
// A full tie returns false, so the earlier candidate is kept.
func beats(distance, rating float64, load int, bestDistance, bestRating float64, bestLoad int) bool {
	switch diff := distance - bestDistance; {
	case diff < -TieTolerance:
		return true
	case diff > TieTolerance:
		return false
	}

	switch diff := rating - bestRating; {
	case diff > TieTolerance:
		return true
	case diff < -TieTolerance:
		return false
	}

	return load < bestLoad
}
