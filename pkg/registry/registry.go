// Package registry provides the process-wide type registry that maps
// insight and metric identities to their loaded implementations.
//
// The registry is built once at startup and treated as read-only
// afterwards, so concurrent resolution calls need no locking.
package registry

import (
	"errors"
	"fmt"
)

// Capability flags describing what a registered identity implements.
type Capability uint8

// Capability bits.
const (
	// CapInsight marks an identity as a pluggable insight check.
	CapInsight Capability = 1 << iota
	// CapMetric marks an identity as a metric category.
	CapMetric
	// CapValue marks a metric that derives a scalar value from facts.
	CapValue
	// CapPercentage marks a metric that derives a percentage from facts.
	CapPercentage
)

// ErrDuplicateIdentity indicates two registrations share the same identity.
var ErrDuplicateIdentity = errors.New("duplicate registry identity")

// Descriptor is the resolved metadata for a registered identity.
type Descriptor struct {
	ID           string
	Description  string
	Capabilities Capability
	Impl         any
}

// Has reports whether the descriptor carries the given capability.
func (d Descriptor) Has(c Capability) bool {
	return d.Capabilities&c != 0
}

// Registry holds registered descriptors in registration order.
type Registry struct {
	entries map[string]Descriptor
	order   []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Descriptor)}
}

// Register adds a descriptor. Identities must be unique.
func (r *Registry) Register(d Descriptor) error {
	if _, exists := r.entries[d.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateIdentity, d.ID)
	}

	r.entries[d.ID] = d
	r.order = append(r.order, d.ID)

	return nil
}

// Resolve looks up a descriptor by identity.
func (r *Registry) Resolve(identity string) (Descriptor, bool) {
	d, ok := r.entries[identity]

	return d, ok
}

// IDs returns all registered identities in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)

	return ids
}
