// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// errors.go - sentinel errors for the builder package.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not place its edges,
// usually because the topology does not fit in the graph capacity.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology is returned by ByName for an unrecognized name.
var ErrUnknownTopology = errors.New("builder: unknown topology")

// ErrOptionViolation indicates a meaningless option value (e.g. negative offset).
var ErrOptionViolation = errors.New("builder: invalid option value")
