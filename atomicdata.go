/*
 * atomicdata.go, part of fraggrow.
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

package grow

import "strings"

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//Note that just common "bio-elements" are present
var symbolCovrad = map[string]float64{
	"H":  0.4, // 0.31 I altered this one. Since H always has only one bond, it doesn't matter if I set a longer radius.
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5,  // hs
	"Fe": 1.52, //hs
	"Mn": 1.61, //hs
	"Si": 1.11,
	"B":  0.84,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
}

//A map between 3-letters name for aminoacidic residues to the corresponding 1-letter names.
//Residues in this map are the ones considered "protein".
var three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"CYS": 'C',
	"CYX": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"PHE": 'F',
	"TYR": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"HIS": 'H',
	"HID": 'H',
	"HIE": 'H',
	"HIP": 'H',
	"LYS": 'K',
	"ASP": 'D',
	"GLU": 'E',
}

//Two-letter element names that can be told apart from the atom name alone.
//CA is not here, it is nearly always an alpha carbon.
var twoLetterNames = map[string]string{
	"CU": "Cu",
	"CO": "Co",
	"CL": "Cl",
	"NA": "Na",
	"SE": "Se",
	"ZN": "Zn",
	"FE": "Fe",
	"MG": "Mg",
	"MN": "Mn",
	"BR": "Br",
}

//symbolFromName tries to guess a chemical element symbol from a PDB atom name.
//It only deals with some common bio-elements, and returns the empty
//string when it can't tell.
func symbolFromName(name string) string {
	letters := strings.TrimLeft(strings.ToUpper(name), "0123456789")
	letters = strings.TrimRight(letters, "0123456789'*")
	if letters == "" {
		return ""
	}
	if s, ok := twoLetterNames[letters]; ok {
		return s
	}
	switch letters[0] {
	case 'H', 'C', 'N', 'O', 'P', 'S', 'F', 'I', 'B', 'K':
		return string(letters[0])
	}
	return ""
}

//normalizeSymbol turns element columns such as "CL" or " c" into "Cl" or "C".
func normalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
