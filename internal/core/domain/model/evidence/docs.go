// Package evidence contains the append-only completion evidence record: a
// photo or video attached to an order with its capture location and time.
// Construction enforces a fixed sequence of structural checks, each with a
// distinct user-facing reason.
package evidence
