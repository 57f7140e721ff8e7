// Package kernel provides shared value objects for the parcel domain model.
//
// The package includes:
//   - PhoneNumber: a contact number that always carries its normalized form
//   - Coordinates: a validated geographic point with free-form address text
//
// All value objects are immutable, created through constructor functions,
// and replaced wholesale rather than partially mutated.
package kernel
