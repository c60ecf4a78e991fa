// Package store defines the persistence interfaces and shared persistence
// errors for the application. Implementations live under platform/postgres.
package store
