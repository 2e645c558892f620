// Package master contains the Master aggregate root: a service provider with
// a rating, a current location and an availability flag for new assignments.
package master
