// Package services contains stateless domain services that implement business
// logic spanning the store and the domain model.
//
// The package includes:
//   - TokenAllocator: picks a free 3-digit token for a new order group
//
// Domain services here hold no state of their own; they operate on values
// passed in and on narrow interfaces satisfied by the persistence layer.
package services
