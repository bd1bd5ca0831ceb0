// Package: abcvrp/foodsource
//
// errors.go: sentinel errors for the foodsource package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Call sites attach context with %w (position, length, method name).
//   • Operations never panic on caller input; option constructors do.

package foodsource

import "errors"

// ErrNoNodes indicates New received an empty node list.
var ErrNoNodes = errors.New("foodsource: no nodes")

// ErrNilNode indicates a nil *node.Node in a node list or route.
var ErrNilNode = errors.New("foodsource: nil node")

// ErrDepotNotFirst indicates allNodes[0] is not flagged as the depot.
// The depot is replicated into every vehicle separator, so it must come first.
var ErrDepotNotFirst = errors.New("foodsource: first node is not the depot")

// ErrBadVehicleCount indicates a vehicle count below one.
var ErrBadVehicleCount = errors.New("foodsource: vehicle count must be at least 1")

// ErrEmptyRoute indicates SetRoute received an empty route.
var ErrEmptyRoute = errors.New("foodsource: empty route")

// ErrLengthMismatch indicates SetRoute received a route whose length differs
// from totalNodes + vehicleCount.
var ErrLengthMismatch = errors.New("foodsource: route length mismatch")

// ErrAnchorNotDepot indicates a route whose first or last position is not a depot.
var ErrAnchorNotDepot = errors.New("foodsource: anchor position is not a depot")

// ErrIndexOutOfRange indicates a position outside the permitted range
// (the interior [1, len-2] for mutations, [0, len-1] for reads).
var ErrIndexOutOfRange = errors.New("foodsource: index out of range")

// ErrUnknownShuffle indicates an unrecognized shuffle mode name.
var ErrUnknownShuffle = errors.New("foodsource: unknown shuffle mode")
