package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMastersWithLoadQueryHandler retrieves the master list with derived
// active order counts. The count joins the orders table at query time so it
// can never drift from the order statuses.
type GetMastersWithLoadQueryHandler struct {
	db *gorm.DB
}

// NewGetMastersWithLoadQueryHandler creates a handler for master list
// queries.
func NewGetMastersWithLoadQueryHandler(db *gorm.DB) GetMastersWithLoadQueryHandler {
	return GetMastersWithLoadQueryHandler{db: db}
}

// Handle executes the query. Returns all masters sorted by name, each with
// its count of assigned or in-progress orders.
func (h GetMastersWithLoadQueryHandler) Handle(
	ctx context.Context,
	query GetMastersWithLoadQuery,
) ([]GetMastersWithLoadQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	masters := make([]GetMastersWithLoadQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.name,
			m.rating,
			m.is_available,
			m.location_lat,
			m.location_lng,
			COUNT(o.id) AS active_orders
		FROM masters m
		LEFT JOIN orders o ON o.master_id = m.id AND o.status IN (?, ?)
		GROUP BY m.id, m.name, m.rating, m.is_available, m.location_lat, m.location_lng
		ORDER BY m.name
	`, int(order.Assigned), int(order.InProgress)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetMastersWithLoadQueryResponse
		var id uuid.UUID
		var lat, lng float64

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Rating,
			&resp.IsAvailable,
			&lat,
			&lng,
			&resp.ActiveOrders,
		)
		if err != nil {
			return nil, err
		}

		masterID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = masterID

		location, locErr := kernel.NewLocation(lat, lng)
		if locErr != nil {
			return nil, locErr
		}
		resp.Location = location

		masters = append(masters, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return masters, nil
}
