// Package kernel contains the shared value objects of the domain model:
// UUID identifiers and geographic locations. These types are immutable,
// constructor-validated, and safe for concurrent use.
package kernel
