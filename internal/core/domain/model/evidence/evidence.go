package evidence

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// Kind classifies the media attached as completion evidence.
type Kind string

const (
	// KindPhoto is photographic evidence. Order completion requires at
	// least one stored photo record.
	KindPhoto Kind = "photo"

	// KindVideo is video evidence. Accepted and stored but not sufficient
	// for completion on its own.
	KindVideo Kind = "video"
)

// Validation failures carry user-facing reason strings and are reported in
// the exact order the checks run. Each check short-circuits the rest.
var (
	// ErrEvidenceIsNotConstructed is returned when an Evidence instance was not
	// created through the NewEvidence or RestoreEvidence factory methods.
	ErrEvidenceIsNotConstructed = errors.New("Evidence must be created via NewEvidence or RestoreEvidence constructor")

	// ErrGPSCoordinatesRequired is returned when the capture coordinates are absent.
	ErrGPSCoordinatesRequired = errors.New("GPS coordinates are required")

	// ErrTimestampRequired is returned when the capture timestamp is absent or empty.
	ErrTimestampRequired = errors.New("timestamp is required")

	// ErrTimestampInvalid is returned when the capture timestamp is present
	// but does not parse as a point in time.
	ErrTimestampInvalid = errors.New("timestamp must be a valid ISO timestamp")

	// ErrKindInvalid is returned when the media kind is neither photo nor video.
	ErrKindInvalid = errors.New("type must be photo or video")

	// ErrURLRequired is returned when the resource locator is empty.
	ErrURLRequired = errors.New("url is required")
)

// Evidence is an append-only record of completion media attached to an
// order: a photo or video with the location and time of capture. Records
// are created once and never mutated or deleted.
//
// Construction runs the structural checks in a fixed order, each failure
// short-circuiting with its own sentinel error:
//
//  1. capture coordinates present (ErrGPSCoordinatesRequired)
//  2. timestamp non-empty (ErrTimestampRequired)
//  3. timestamp parses as RFC 3339 (ErrTimestampInvalid)
//  4. kind is photo or video (ErrKindInvalid)
//  5. url non-empty (ErrURLRequired)
type Evidence struct {
	// id is the unique identifier for the record
	id kernel.UUID

	// orderID references the owning order
	orderID kernel.UUID

	// kind is the media kind, photo or video
	kind Kind

	// url locates the media resource
	url string

	// location is where the media was captured
	location kernel.Location

	// capturedAt is when the media was captured (UTC)
	capturedAt time.Time

	// meta carries optional free-form metadata
	meta map[string]any

	// isConstructed ensures the record was created via a constructor
	isConstructed bool
}

// NewEvidence creates a new Evidence record from raw request input.
//
// The coordinates arrive as pointers so an absent coordinate is
// distinguishable from (0, 0); the timestamp arrives as the raw string so
// an absent value is distinguishable from an unparseable one. The checks
// run in the documented order and the first failure is returned alone.
func NewEvidence(
	id kernel.UUID,
	orderID kernel.UUID,
	kind string,
	url string,
	latitude *float64,
	longitude *float64,
	timestamp string,
	meta map[string]any,
) (*Evidence, error) {
	if latitude == nil || longitude == nil {
		return nil, ErrGPSCoordinatesRequired
	}

	if timestamp == "" {
		return nil, ErrTimestampRequired
	}

	capturedAt, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return nil, ErrTimestampInvalid
	}

	if Kind(kind) != KindPhoto && Kind(kind) != KindVideo {
		return nil, ErrKindInvalid
	}

	if url == "" {
		return nil, ErrURLRequired
	}

	location, err := kernel.NewLocation(*latitude, *longitude)
	if err != nil {
		return nil, err
	}

	ev := &Evidence{
		kind:          Kind(kind),
		url:           url,
		location:      location,
		capturedAt:    capturedAt.UTC(),
		meta:          meta,
		isConstructed: true,
	}

	if err := errors.Join(ev.setID(id), ev.setOrderID(orderID)); err != nil {
		return nil, err
	}

	return ev, nil
}

// RestoreEvidence reconstructs an Evidence record from its persisted state.
// Stored records have already passed the structural checks, so only the
// identities and location are validated here.
func RestoreEvidence(
	id kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	url string,
	location kernel.Location,
	capturedAt time.Time,
	meta map[string]any,
) (*Evidence, error) {
	ev := &Evidence{
		kind:          kind,
		url:           url,
		capturedAt:    capturedAt.UTC(),
		meta:          meta,
		isConstructed: true,
	}

	if err := errors.Join(ev.setID(id), ev.setOrderID(orderID), ev.setLocation(location)); err != nil {
		return nil, err
	}

	return ev, nil
}

// Validate ensures the Evidence instance was properly constructed.
func (e *Evidence) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEvidenceIsNotConstructed
	}

	return nil
}

// ID returns the record's unique identifier.
func (e *Evidence) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the owning order.
func (e *Evidence) OrderID() kernel.UUID {
	return e.orderID
}

// Kind returns the media kind.
func (e *Evidence) Kind() Kind {
	return e.kind
}

// URL returns the media resource locator.
func (e *Evidence) URL() string {
	return e.url
}

// Location returns the capture location.
func (e *Evidence) Location() kernel.Location {
	return e.location
}

// CapturedAt returns the UTC capture timestamp.
func (e *Evidence) CapturedAt() time.Time {
	return e.capturedAt
}

// Meta returns the optional free-form metadata, nil when none was supplied.
func (e *Evidence) Meta() map[string]any {
	return e.meta
}

// setID validates and sets the record's unique identifier.
// This is a private method used only during construction.
func (e *Evidence) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

// setOrderID validates and sets the owning order reference.
// This is a private method used only during construction.
func (e *Evidence) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

// setLocation validates and sets the capture location.
// This is a private method used only during construction.
func (e *Evidence) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	e.location = location
	return nil
}
