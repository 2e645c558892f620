package http

import (
	"time"
)

// ErrorResponse is the error body returned by every failing endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GeoPoint carries a geographic coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GPSPoint is like GeoPoint but with optional components, used on evidence
// submission where missing coordinates must be rejected by the domain rather
// than silently defaulted to zero.
type GPSPoint struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	Geo           *GeoPoint `json:"geo"`
}

// CreateMasterRequest is the body of POST /api/v1/masters.
type CreateMasterRequest struct {
	Name   string    `json:"name"`
	Rating float64   `json:"rating"`
	Geo    *GeoPoint `json:"geo"`
}

// AvailabilityRequest is the body of PATCH /api/v1/masters/:id/availability.
// The flag is a pointer so that a missing field is distinguishable from an
// explicit false.
type AvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable"`
}

// StatusUpdateRequest is the body of POST /api/v1/orders/:id/status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// AttachEvidenceRequest is the body of POST /api/v1/orders/:id/adl.
type AttachEvidenceRequest struct {
	Type       string         `json:"type"`
	URL        string         `json:"url"`
	GPS        *GPSPoint      `json:"gps"`
	CapturedAt string         `json:"capturedAt"`
	Meta       map[string]any `json:"meta"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderSummaryResponse is a single element of the order list.
type OrderSummaryResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	CustomerName string    `json:"customerName"`
	Geo          GeoPoint  `json:"geo"`
	Status       string    `json:"status"`
	MasterID     *string   `json:"masterId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MasterSummaryResponse describes the master assigned to an order.
type MasterSummaryResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// EvidenceResponse describes a single stored evidence record.
type EvidenceResponse struct {
	ID         string         `json:"id"`
	OrderID    string         `json:"orderId"`
	Type       string         `json:"type"`
	URL        string         `json:"url"`
	GPS        GeoPoint       `json:"gps"`
	CapturedAt time.Time      `json:"capturedAt"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// OrderDetailsResponse is the body of GET /api/v1/orders/:id.
type OrderDetailsResponse struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	CustomerName  string                 `json:"customerName"`
	CustomerPhone string                 `json:"customerPhone"`
	Geo           GeoPoint               `json:"geo"`
	Status        string                 `json:"status"`
	Master        *MasterSummaryResponse `json:"master"`
	Evidence      []EvidenceResponse     `json:"evidence"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// MasterWithLoadResponse is a single element of the master list.
type MasterWithLoadResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Rating       float64  `json:"rating"`
	IsAvailable  bool     `json:"isAvailable"`
	Geo          GeoPoint `json:"geo"`
	ActiveOrders int      `json:"activeOrders"`
}
