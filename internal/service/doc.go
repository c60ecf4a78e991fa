// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the stores
// (defined in internal/store) to fulfill application features.
//
// Key components:
//
// 1. Service Interfaces:
//   - Define application-specific operations available to the delivery mechanisms
//   - AttendanceService owns the daily check-in/check-out lifecycle
//   - EnrollmentService owns capacity- and age-constrained program membership
//
// 2. Use Case Implementations:
//   - Coordinate between multiple stores and domain rules
//   - Apply transactional boundaries when operations span multiple stores
//   - Emit events for side effects (parent notifications) after commit
//
// 3. Error Handling:
//   - Expected conditions are sentinel errors (ErrAlreadyPresent,
//     ErrCapacityExceeded, ...) checked with errors.Is
//   - Unexpected failures are wrapped in service-specific error types
//
// The service layer depends on domain entities and store interfaces, but never
// on specific infrastructure implementations.
package service
