// SPDX-License-Identifier: MIT
// Package: slitpore/pore
//
// pore.go — Pore: the built structure and its groupings.

package pore

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/functional"
	"github.com/katalvlaran/slitpore/structure"
)

// RootName names the composite returned by Pore.Structure.
const RootName = "PORE"

// Pore is the result of Build. Coordinates are in box frame: every atom
// lies in [0, L) on each axis.
type Pore struct {
	Kind   Kind
	Params Params
	// Counts holds the replication counts nx, ny and the layer count.
	Counts [3]int
	Box    structure.Box

	Near *Sheet
	Far  *Sheet

	// Solvent holds the packed molecules in solvent order, each named by
	// its solvent label. Empty unless Kind has KindSolvated.
	Solvent []*structure.Group

	// Sites holds the pore-facing candidate sites per sheet
	// (KindSurface, KindFunctionalized).
	Sites map[Role][]functional.Site
	// Placements records every attached group per sheet
	// (KindFunctionalized). Site indexes Sites[role].
	Placements map[Role][]functional.Placement
}

// Sheets returns NEAR then FAR.
func (p *Pore) Sheets() [2]*Sheet { return [2]*Sheet{p.Near, p.Far} }

// Sheet returns the sheet playing role r.
func (p *Pore) Sheet(r Role) *Sheet {
	if r == Far {
		return p.Far
	}
	return p.Near
}

// Structure returns a deep copy of the pore as one tree: root "PORE" with
// children "TOP", "BOT" (each carrying its functional groups) followed by
// one child per solvent molecule.
// Complexity: O(total atoms).
func (p *Pore) Structure() *structure.Group {
	root := structure.NewGroup(RootName)
	root.AddChild(p.Near.Group.Clone())
	root.AddChild(p.Far.Group.Clone())
	for _, m := range p.Solvent {
		root.AddChild(m.Clone())
	}
	return root
}

// Groups returns the functional groups and solvent molecules named label,
// NEAR groups first, then FAR, then solvent. The groups are not copied.
func (p *Pore) Groups(label string) []*structure.Group {
	var out []*structure.Group
	out = append(out, p.Near.Group.Find(label)...)
	out = append(out, p.Far.Group.Find(label)...)
	for _, m := range p.Solvent {
		if m.Name == label {
			out = append(out, m)
		}
	}
	return out
}

// NumAtoms counts every atom: sheets, functional groups and solvent.
func (p *Pore) NumAtoms() int {
	n := p.Near.Group.NumAtoms() + p.Far.Group.NumAtoms()
	for _, m := range p.Solvent {
		n += m.NumAtoms()
	}
	return n
}

// Positions returns every position in Structure order.
func (p *Pore) Positions() []r3.Vec {
	out := make([]r3.Vec, 0, p.NumAtoms())
	out = append(out, p.Near.Group.Positions()...)
	out = append(out, p.Far.Group.Positions()...)
	for _, m := range p.Solvent {
		out = append(out, m.Positions()...)
	}
	return out
}

// NumPlaced returns the number of attached groups using template t over
// both sheets.
func (p *Pore) NumPlaced(t int) int {
	n := 0
	for _, pl := range p.Placements {
		for _, x := range pl {
			if x.Template == t {
				n++
			}
		}
	}
	return n
}
