// Package structure is the plain composite data model shared by every
// construction stage: a tree of named groups of atoms plus the periodic box
// they live in.
//
// What:
//
//   - Atom: an element label and a Cartesian position (nm).
//   - Bond: a pair of atom indices local to one Group.
//   - Group: a named node owning atoms, bonds and child groups.
//   - Box: three lengths and three angles of the periodic frame.
//
// Ownership:
//
//   - A Group exclusively owns its atoms and children. Clone performs a deep
//     copy, so two sheets cloned from one lattice, or many placed copies of
//     one functional-group template, never share storage.
//   - Traversal order is stable: a group's own atoms first, then its
//     children depth-first in insertion order.
//
// Complexity:
//
//   - Clone, NumAtoms, Positions, Translate, Bounds: O(total atoms).
package structure
