package world

import "errors"

// Sentinel errors returned by layout generation. Callers branch with errors.Is.
var (
	// ErrInvalidParams marks a precondition violation detected before generation starts.
	ErrInvalidParams = errors.New("world: invalid layout parameters")

	// ErrCapacityExceedsCatalog means more rooms were requested than there are names.
	ErrCapacityExceedsCatalog = errors.New("world: capacity exceeds catalog size")

	// ErrCatalogSize means the catalog size is outside [1, CatalogSize].
	ErrCatalogSize = errors.New("world: catalog size out of range")

	// ErrCapacityTooSmall means the room count cannot carry the roles or reach MinDegree.
	ErrCapacityTooSmall = errors.New("world: capacity too small")

	// ErrSampleExhausted means a bounded sampler found no acceptable candidate.
	ErrSampleExhausted = errors.New("world: sample attempts exhausted")

	// ErrUngenerable means the graph cannot be completed with these parameters.
	ErrUngenerable = errors.New("world: graph not generable with these parameters")

	// ErrInvariant means a finished layout failed verification.
	ErrInvariant = errors.New("world: layout invariant violated")
)
