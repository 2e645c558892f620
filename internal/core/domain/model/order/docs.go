// Package order contains the Order aggregate root and its Status state
// machine. Orders move from new through assignment and work progress to a
// terminal completed or rejected status, holding a master reference exactly
// while one is responsible for the work.
package order
