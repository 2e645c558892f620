package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler assembles the order details read model from
// the orders, masters, and evidence tables.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the
// order does not exist.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	resp, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	evidence, err := h.readEvidence(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	resp.Evidence = evidence

	return resp, nil
}

func (h GetOrderDetailsQueryHandler) readOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderDetailsQueryResponse, error) {
	var resp GetOrderDetailsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.title,
			o.description,
			o.customer_name,
			o.customer_phone,
			o.location_lat,
			o.location_lng,
			o.status,
			o.created_at,
			o.updated_at,
			m.id,
			m.name,
			m.rating
		FROM orders o
		LEFT JOIN masters m ON m.id = o.master_id
		WHERE o.id = ?
	`, orderID.Bytes()).Row()

	var id uuid.UUID
	var lat, lng float64
	var status int
	var masterID uuid.NullUUID
	var masterName sql.NullString
	var masterRating sql.NullFloat64

	err := row.Scan(
		&id,
		&resp.Title,
		&resp.Description,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&lat,
		&lng,
		&status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&masterID,
		&masterName,
		&masterRating,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return resp, errs.NewObjectNotFoundError("order", orderID.String())
	}
	if err != nil {
		return resp, err
	}

	respID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return resp, err
	}
	resp.ID = respID

	location, err := kernel.NewLocation(lat, lng)
	if err != nil {
		return resp, err
	}
	resp.Location = location

	resp.Status = order.Status(status).String()

	if masterID.Valid {
		mID, mErr := kernel.UUIDFromBytes(masterID.UUID[:])
		if mErr != nil {
			return resp, mErr
		}

		resp.Master = &MasterSummary{
			ID:     mID,
			Name:   masterName.String,
			Rating: masterRating.Float64,
		}
	}

	return resp, nil
}

func (h GetOrderDetailsQueryHandler) readEvidence(
	ctx context.Context,
	orderID kernel.UUID,
) ([]EvidenceRecord, error) {
	records := make([]EvidenceRecord, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			url,
			location_lat,
			location_lng,
			captured_at,
			meta
		FROM evidence
		WHERE order_id = ?
		ORDER BY captured_at ASC
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record EvidenceRecord
		var id uuid.UUID
		var lat, lng float64
		var rawMeta []byte

		err = rows.Scan(
			&id,
			&record.Kind,
			&record.URL,
			&lat,
			&lng,
			&record.CapturedAt,
			&rawMeta,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		record.ID = recordID

		location, locErr := kernel.NewLocation(lat, lng)
		if locErr != nil {
			return nil, locErr
		}
		record.Location = location

		if len(rawMeta) > 0 {
			if metaErr := json.Unmarshal(rawMeta, &record.Meta); metaErr != nil {
				return nil, metaErr
			}
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
