// Package session holds the ordered, named collection of inlet measurements
// a user is comparing. The collection is owned by whoever constructs the
// Store — there is no process-global state — and lives only for the duration
// of the session.
//
// Resize mirrors the count control of the original form: growing appends
// default-valued measurements named by position, shrinking trims the tail.
package session
