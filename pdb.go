/*
 * pdb.go, part of fraggrow.
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

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/spatial/r3"
)

//PDBFileRead reads the first model of the PDB file pdbname and returns it as a
//Structure, with the atoms in file order. Files ending in ".gz" are gzip-decompressed
//and files ending in ".zst" are zstd-decompressed. Other files are memory-mapped.
func PDBFileRead(pdbname string) (*Structure, error) {
	f, err := os.Open(pdbname)
	if err != nil {
		return nil, &Error{kind: ErrParse, msg: err.Error(), filename: pdbname, deco: []string{"PDBFileRead"}, critical: true}
	}
	defer f.Close()
	var r io.Reader
	switch filepath.Ext(pdbname) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, &Error{kind: ErrParse, msg: err.Error(), filename: pdbname, deco: []string{"PDBFileRead"}, critical: true}
		}
		defer gz.Close()
		r = gz
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, &Error{kind: ErrParse, msg: err.Error(), filename: pdbname, deco: []string{"PDBFileRead"}, critical: true}
		}
		defer dec.Close()
		r = dec
	default:
		info, err := f.Stat()
		if err != nil {
			return nil, &Error{kind: ErrParse, msg: err.Error(), filename: pdbname, deco: []string{"PDBFileRead"}, critical: true}
		}
		if info.Size() == 0 {
			return nil, &Error{kind: ErrParse, msg: "empty file", filename: pdbname, deco: []string{"PDBFileRead"}, critical: true}
		}
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			return nil, &Error{kind: ErrParse, msg: err.Error(), filename: pdbname, deco: []string{"PDBFileRead"}, critical: true}
		}
		defer m.Unmap()
		r = bytes.NewReader(m)
	}
	S, err := PDBRead(r, pdbname)
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead")
	}
	return S, nil
}

//PDBRead reads the ATOM and HETATM records of the first model in r.
//name is used to name the structure and in error messages.
func PDBRead(r io.Reader, name string) (*Structure, error) {
	S := NewStructure(name)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)
	contlines := 0 //count the lines read to better report errors
	for scanner.Scan() {
		contlines++
		line := scanner.Text()
		//The record name is in the first six columns, but the serial number
		//may follow it without a space.
		record := strings.TrimSpace(field(line, 0, 6))
		if record == "ENDMDL" || record == "END" {
			break //only the first model is read
		}
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		at, err := readPDBLine(line)
		if err != nil {
			return nil, &Error{kind: ErrParse, msg: fmt.Sprintf("line %d: %s", contlines, err.Error()), filename: name, deco: []string{"PDBRead"}, critical: true}
		}
		S.Atoms = append(S.Atoms, at)
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{kind: ErrParse, msg: fmt.Sprintf("line %d: %s", contlines, err.Error()), filename: name, deco: []string{"PDBRead"}, critical: true}
	}
	if S.Len() == 0 {
		return nil, &Error{kind: ErrParse, msg: "no atom records found", filename: name, deco: []string{"PDBRead"}, critical: true}
	}
	return S, nil
}

//field returns line[from:to], trimmed to the length of the line.
func field(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return line[from:to]
}

//readPDBLine parses an ATOM or HETATM line. Fixed PDB columns are tried first,
//whitespace-separated tokens are accepted if that fails.
func readPDBLine(line string) (*Atom, error) {
	at, err := readFixedPDBLine(line)
	if err == nil {
		return at, nil
	}
	at, err2 := readTokenPDBLine(line)
	if err2 != nil {
		return nil, err //the fixed-column complaint is the most informative one
	}
	return at, nil
}

func readFixedPDBLine(line string) (*Atom, error) {
	if len(line) < 54 {
		return nil, fmt.Errorf("record too short for coordinate columns")
	}
	var err error
	at := new(Atom)
	at.Het = strings.HasPrefix(line, "HETATM")
	//serial numbers are not always decimal in large files, we don't need them anyway.
	at.ID, _ = strconv.Atoi(strings.TrimSpace(field(line, 6, 11)))
	at.Name = strings.TrimSpace(field(line, 12, 16))
	if at.Name == "" {
		return nil, fmt.Errorf("empty atom name")
	}
	at.Resname = strings.TrimSpace(field(line, 17, 20))
	at.Chain = strings.TrimSpace(field(line, 21, 22))
	if at.Resid, err = strconv.Atoi(strings.TrimSpace(field(line, 22, 26))); err != nil {
		return nil, fmt.Errorf("malformed residue number: %w", err)
	}
	if at.Pos, err = parseCoords(field(line, 30, 38), field(line, 38, 46), field(line, 46, 54)); err != nil {
		return nil, err
	}
	//Occupancy and b-factors are optional. If something is missing we
	//just omit it.
	if o, err := strconv.ParseFloat(strings.TrimSpace(field(line, 54, 60)), 64); err == nil {
		at.Occupancy = o
	}
	if b, err := strconv.ParseFloat(strings.TrimSpace(field(line, 60, 66)), 64); err == nil {
		at.Bfactor = b
	}
	at.Symbol = normalizeSymbol(field(line, 76, 78))
	if at.Symbol == "" {
		at.Symbol = symbolFromName(at.Name)
	}
	return at, nil
}

//readTokenPDBLine parses records like
//  ATOM 1 C1 LIG L 1 0.000 1.000 2.000 [occupancy [bfactor [element]]]
//The chain may be omitted.
func readTokenPDBLine(line string) (*Atom, error) {
	f := strings.Fields(line)
	if len(f) < 8 {
		return nil, fmt.Errorf("too few fields")
	}
	at := new(Atom)
	at.Het = f[0] == "HETATM"
	at.ID, _ = strconv.Atoi(f[1])
	at.Name = f[2]
	at.Resname = f[3]
	rest := f[4:]
	if _, err := strconv.Atoi(f[4]); err != nil {
		at.Chain = f[4]
		rest = f[5:]
	}
	if len(rest) < 4 {
		return nil, fmt.Errorf("too few fields")
	}
	var err error
	if at.Resid, err = strconv.Atoi(rest[0]); err != nil {
		return nil, fmt.Errorf("malformed residue number: %w", err)
	}
	if at.Pos, err = parseCoords(rest[1], rest[2], rest[3]); err != nil {
		return nil, err
	}
	rest = rest[4:]
	if len(rest) > 0 {
		at.Occupancy, _ = strconv.ParseFloat(rest[0], 64)
	}
	if len(rest) > 1 {
		at.Bfactor, _ = strconv.ParseFloat(rest[1], 64)
	}
	if len(rest) > 2 {
		at.Symbol = normalizeSymbol(rest[2])
	}
	if at.Symbol == "" {
		at.Symbol = symbolFromName(at.Name)
	}
	return at, nil
}

func parseCoords(xs, ys, zs string) (r3.Vec, error) {
	var c [3]float64
	var err error
	for i, s := range [3]string{xs, ys, zs} {
		if c[i], err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return r3.Vec{}, fmt.Errorf("malformed coordinate: %w", err)
		}
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

//PDBFileWrite writes S to the file pdbname, which is created or truncated.
//The compression follows the extension, as in PDBFileRead.
func PDBFileWrite(pdbname string, S *Structure) (err error) {
	out, err := os.Create(pdbname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	var w io.WriteCloser
	switch filepath.Ext(pdbname) {
	case ".gz":
		w = gzip.NewWriter(out)
	case ".zst":
		if w, err = zstd.NewWriter(out); err != nil {
			return err
		}
	default:
		return PDBWrite(out, S)
	}
	if err = PDBWrite(w, S); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

//PDBWrite writes the atoms of S as PDB ATOM/HETATM records. Atoms are
//renumbered in structure order. A TER record is written at each chain change.
func PDBWrite(w io.Writer, S *Structure) error {
	out := bufio.NewWriter(w)
	fmt.Fprint(out, "REMARK     WRITTEN WITH FRAGGROW\n")
	for i, at := range S.Atoms {
		if i > 0 && at.Chain != S.Atoms[i-1].Chain {
			fmt.Fprintln(out, "TER")
		}
		first := "ATOM"
		if at.Het {
			first = "HETATM"
		}
		chain := at.Chain
		if chain == "" {
			chain = " "
		}
		resname := at.Resname
		if len(resname) > 3 {
			resname = resname[:3]
		}
		var err error
		//4 chars for the atom name are used when hydrogens are included.
		switch {
		case len(at.Name) < 4:
			_, err = fmt.Fprintf(out, "%-6s%5d  %-3s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n", first, (i+1)%100000, at.Name, resname, chain[:1],
				at.Resid, at.Pos.X, at.Pos.Y, at.Pos.Z, at.Occupancy, at.Bfactor, strings.ToUpper(at.Symbol))
		case len(at.Name) == 4:
			_, err = fmt.Fprintf(out, "%-6s%5d %4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n", first, (i+1)%100000, at.Name, resname, chain[:1],
				at.Resid, at.Pos.X, at.Pos.Y, at.Pos.Z, at.Occupancy, at.Bfactor, strings.ToUpper(at.Symbol))
		default:
			err = newError(ErrPrecondition, "can't write atom name %q, longer than 4 characters", at.Name)
		}
		if err != nil {
			return errDecorate(err, "PDBWrite")
		}
	}
	fmt.Fprint(out, "TER\nEND\n")
	return out.Flush()
}
