// SPDX-License-Identifier: MIT
// Package: slitpore/pore
//
// kind.go — Kind: which optional stages a build runs.

package pore

import (
	"strings"

	"github.com/katalvlaran/slitpore/errs"
)

// Kind is a bit set of optional construction stages.
type Kind uint8

// KindBasic builds the dry, unmodified pore.
const KindBasic Kind = 0

const (
	// KindSurface records the pore-facing candidate sites without placing
	// anything on them.
	KindSurface Kind = 1 << iota
	// KindFunctionalized decorates the candidate sites with templates.
	KindFunctionalized
	// KindSolvated packs solvent into the box after the freeze.
	KindSolvated

	kindMask = KindSurface | KindFunctionalized | KindSolvated
)

var kindNames = []struct {
	k    Kind
	name string
}{
	{KindSurface, "surface"},
	{KindFunctionalized, "functionalized"},
	{KindSolvated, "solvated"},
}

// Has reports whether every bit of f is set in k.
func (k Kind) Has(f Kind) bool { return k&f == f }

// String renders k as "basic" or a "+"-joined list, e.g.
// "functionalized+solvated".
func (k Kind) String() string {
	if k == KindBasic {
		return "basic"
	}
	var parts []string
	for _, kn := range kindNames {
		if k.Has(kn.k) {
			parts = append(parts, kn.name)
		}
	}
	if rest := k &^ kindMask; rest != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "+")
}

// Validate rejects unknown bits and Surface combined with Functionalized.
func (k Kind) Validate() error {
	if k&^kindMask != 0 {
		return errs.Wrapf("Kind.Validate", errs.ErrConfiguration, "unknown kind bits %#x", uint8(k))
	}
	if k.Has(KindSurface | KindFunctionalized) {
		return errs.Wrapf("Kind.Validate", errs.ErrConfiguration,
			"surface and functionalized are exclusive (functionalized selects the surface itself)")
	}
	return nil
}

// ParseKind parses the String form. Parts may be separated by '+' or ','.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "basic" {
		return KindBasic, nil
	}
	var k Kind
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '+' || r == ',' }) {
		part = strings.TrimSpace(part)
		found := false
		for _, kn := range kindNames {
			if kn.name == part {
				k |= kn.k
				found = true
				break
			}
		}
		if !found && part != "basic" {
			return KindBasic, errs.Wrapf("ParseKind", errs.ErrConfiguration, "unknown kind %q", part)
		}
	}
	return k, k.Validate()
}
