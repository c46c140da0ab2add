/*
 * doc.go, part of fraggrow.
 *
 * Copyright 2024 Raul Mera rauldotmeraatusachdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package grow attaches chemical fragments to a core ligand, producing new
ligand structures for molecular simulations.

	**fraggrow Capabilities**

	Reads and writes PDB files, plain, gzip (.gz) or zstd (.zst) compressed.

	Selects atoms by name, chain, residue, element and distance, combining
	predicates with And, Or and Not.

	Finds the hydrogen to be replaced on a growth atom. When the atom has
	several hydrogens, the first one not in contact with the protein is used.

	Superimposes the bond of the fragment on the bond vacated in the core,
	and applies the rigid transformation to the whole fragment. The rotation
	around the bond axis is not determined by two points; the smallest
	rotation is used.

	Renames the fragment atoms (G0, G1...) and detects and fixes repeated
	atom names in the grown ligand.

	Assigns bonds from interatomic distances, to check that the grown ligand
	is one bonded unit.

Errors returned by the package are *Error values. Their kind can be checked
with errors.Is against ErrParse, ErrResolution, ErrNoHydrogen, ErrPrecondition
and ErrCollision. The components log through a Logger given to them; nothing
is logged globally.

Structures are not safe for concurrent use. Join works on copies of its input.
*/
package grow
