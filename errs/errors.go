// SPDX-License-Identifier: MIT
// Package: slitpore/errs
//
// errors.go — sentinel errors shared by every construction stage.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     implementations attach context with Wrapf (method tag + "%w").
//   • All errors are synchronous and fatal to the call that raised them:
//     no partial structure is ever returned alongside an error.

package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension indicates a required physical length is ≤ 0 (sheet
// size, pore width), a layer count is < 1, a padding is negative, or a
// truncated replication count came out as zero.
// Raised eagerly, before any lattice work.
var ErrInvalidDimension = errors.New("errs: invalid dimension")

// ErrConfiguration indicates inconsistent construction inputs: mismatched
// template/coverage/direction list lengths, a coverage outside (0,1], a
// zero attachment direction, a missing input required by the selected pore
// kind, or more solvent kinds than the packer supports.
var ErrConfiguration = errors.New("errs: configuration error")

// ErrOverQuota indicates the integer functionalization quotas sum to more
// than the number of available candidate sites.
var ErrOverQuota = errors.New("errs: quotas exceed candidate sites")

// ErrPackingFailed indicates the solvent packer could not place the
// requested number of molecules inside the box, or returned molecules that
// violate the packing contract.
var ErrPackingFailed = errors.New("errs: packing failed")

// Wrapf attaches a method tag and a formatted message to a sentinel:
//
//	Wrapf("Build", ErrInvalidDimension, "pore_width=%g", w)
//	→ "Build: pore_width=0: errs: invalid dimension"
//
// Complexity: O(len(format) + Σlen(args)).
func Wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
