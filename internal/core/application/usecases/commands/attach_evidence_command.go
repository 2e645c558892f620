package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAttachEvidenceCommandIsNotConstructed = errors.New(
	"AttachEvidenceCommand must be created via NewAttachEvidenceCommand constructor",
)

// AttachEvidenceCommand represents a request to attach a completion evidence
// record to an order. The evidence fields are carried raw; the structural
// checks run in the evidence model so their order and messages stay in one
// place.
type AttachEvidenceCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	kind      string
	url       string
	latitude  *float64
	longitude *float64
	timestamp string
	meta      map[string]any

	guard guard.ConstructorGuard
}

// NewAttachEvidenceCommand creates a command to attach evidence to the given
// order.
func NewAttachEvidenceCommand(
	orderID kernel.UUID,
	kind string,
	url string,
	latitude *float64,
	longitude *float64,
	timestamp string,
	meta map[string]any,
) (AttachEvidenceCommand, error) {
	cmd := AttachEvidenceCommand{
		kind:      kind,
		url:       url,
		latitude:  latitude,
		longitude: longitude,
		timestamp: timestamp,
		meta:      meta,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AttachEvidenceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachEvidenceCommand) Validate() error {
	return c.guard.Validate(ErrAttachEvidenceCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order.
func (c AttachEvidenceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns the raw evidence kind string.
func (c AttachEvidenceCommand) Kind() string {
	return c.kind
}

// URL returns the evidence file location.
func (c AttachEvidenceCommand) URL() string {
	return c.url
}

// Latitude returns the capture latitude, or nil when absent.
func (c AttachEvidenceCommand) Latitude() *float64 {
	return c.latitude
}

// Longitude returns the capture longitude, or nil when absent.
func (c AttachEvidenceCommand) Longitude() *float64 {
	return c.longitude
}

// Timestamp returns the raw capture timestamp string.
func (c AttachEvidenceCommand) Timestamp() string {
	return c.timestamp
}

// Meta returns the free-form metadata attached to the evidence.
func (c AttachEvidenceCommand) Meta() map[string]any {
	return c.meta
}

func (c *AttachEvidenceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
