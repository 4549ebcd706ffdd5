// SPDX-License-Identifier: MIT
// Package: sixdegrees/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w at the failure site.

package builder

import "errors"

// ErrNilSource indicates Build was called without a record source.
var ErrNilSource = errors.New("builder: nil record source")

// ErrConstructFailed indicates that inserting a record into the graph failed.
// The wrapped core error (core.ErrEmptyVertexID, core.ErrFrozen, ...) is
// reachable through errors.Is.
var ErrConstructFailed = errors.New("builder: construction failed")
