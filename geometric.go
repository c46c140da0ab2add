/*
 * geometric.go, part of fraggrow.
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
	"math"

	v3 "github.com/rmera/fraggrow/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

const appzero float64 = 1e-12 //Everything equal or less than this is considered zero.

//Transform is a rigid rotation plus translation: a point x is taken
//to Rot(x-From)+To. There is no scaling.
type Transform struct {
	Rot  *mat.Dense //3x3
	From *v3.Matrix //1x3, center of the moving points
	To   *v3.Matrix //1x3, center of the fixed points
}

//Apply returns a transformed copy of coords. coords is not modified.
func (T *Transform) Apply(coords *v3.Matrix) *v3.Matrix {
	n := coords.NVecs()
	centered := v3.Zeros(n)
	centered.SubVec(coords, T.From)
	ret := v3.Zeros(n)
	ret.Mul(centered, T.Rot.T())
	ret.AddVec(ret, T.To)
	return ret
}

//BondSuper returns the rigid transformation that best superimposes the 2 points
//in test on the 2 points in templa, in the least-squares sense. The centers of both
//pairs are made to coincide and the test bond direction is rotated onto the templa one.
//Two points don't fix the rotation around the bond axis, so the smallest rotation
//that aligns the directions is the one used. Any twist around the bond has to be
//set by the caller afterwards.
func BondSuper(test, templa *v3.Matrix) (*Transform, error) {
	if test == nil || templa == nil || test.NVecs() != 2 || templa.NVecs() != 2 {
		return nil, newError(ErrPrecondition, "bond superposition needs exactly 2 test and 2 template points")
	}
	if !finite(test) || !finite(templa) {
		return nil, newError(ErrPrecondition, "non-finite coordinates in bond vectors")
	}
	a := r3.Sub(row(test, 1), row(test, 0))
	b := r3.Sub(row(templa, 1), row(templa, 0))
	if r3.Norm(a) <= appzero || r3.Norm(b) <= appzero {
		return nil, newError(ErrPrecondition, "zero-length bond vector")
	}
	rot := rotatorBetween(r3.Unit(a), r3.Unit(b))
	if d := v3.Det(rot); math.Abs(d-1) > 1e-6 {
		return nil, newError(ErrPrecondition, "got an improper rotation (det %.4f)", d)
	}
	return &Transform{Rot: rot, From: test.Centroid(), To: templa.Centroid()}, nil
}

//Align superimposes the bond vector moving (2 atoms) on the bond vector
//fixed (2 atoms), and applies the same rotation and translation to all the
//atoms in atoms, in place. The moving atoms are usually part of atoms. The fixed
//atoms are never modified, and must not be part of atoms. All the checks are
//done before any atom is touched, so on error no atom has moved.
//It returns atoms, for chaining.
func Align(fixed, moving, atoms []*Atom) ([]*Atom, error) {
	if len(fixed) != 2 || len(moving) != 2 {
		return nil, newError(ErrPrecondition, "bond vectors must have 2 atoms, got %d fixed and %d moving", len(fixed), len(moving))
	}
	for _, at := range append(append([]*Atom{}, fixed...), moving...) {
		if at == nil {
			return nil, newError(ErrPrecondition, "nil atom in bond vector")
		}
	}
	for _, at := range atoms {
		if at == nil {
			return nil, newError(ErrPrecondition, "nil atom in list to transform")
		}
		if at == fixed[0] || at == fixed[1] {
			return nil, newError(ErrPrecondition, "fixed atom %s is in the list of atoms to transform", at)
		}
	}
	T, err := BondSuper(Coords(moving), Coords(fixed))
	if err != nil {
		return nil, errDecorate(err, "Align")
	}
	if len(atoms) == 0 {
		return atoms, nil
	}
	moved := T.Apply(Coords(atoms))
	if !finite(moved) {
		return nil, newError(ErrPrecondition, "transformation produced non-finite coordinates")
	}
	if err := SetCoords(atoms, moved); err != nil {
		return nil, errDecorate(err, "Align")
	}
	return atoms, nil
}

//rotatorBetween returns the smallest rotation that takes the unit
//vector a to the unit vector b.
func rotatorBetween(a, b r3.Vec) *mat.Dense {
	v := r3.Cross(a, b)
	s := r3.Norm(v)
	c := r3.Dot(a, b)
	if s <= appzero {
		if c > 0 {
			return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
		}
		//Antiparallel: half a turn around any axis perpendicular to a.
		e := r3.Vec{X: 1}
		if math.Abs(a.X) > 0.9 {
			e = r3.Vec{Y: 1}
		}
		n := r3.Unit(r3.Cross(a, e))
		return mat.NewDense(3, 3, []float64{
			2*n.X*n.X - 1, 2 * n.X * n.Y, 2 * n.X * n.Z,
			2 * n.Y * n.X, 2*n.Y*n.Y - 1, 2 * n.Y * n.Z,
			2 * n.Z * n.X, 2 * n.Z * n.Y, 2*n.Z*n.Z - 1,
		})
	}
	//Rodrigues: R = I + K + K^2 (1-c)/s^2, with K the cross-product matrix of v.
	K := mat.NewDense(3, 3, []float64{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	})
	K2 := mat.NewDense(3, 3, nil)
	K2.Mul(K, K)
	K2.Scale((1-c)/(s*s), K2)
	R := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	R.Add(R, K)
	R.Add(R, K2)
	return R
}

//RMSD returns the RSMD (root of the mean square deviation) for the sets of cartesian
//coordinates in test and template.
func RMSD(test, template *v3.Matrix) (float64, error) {
	if test == nil || template == nil || test.NVecs() != template.NVecs() {
		return 0, newError(ErrPrecondition, "ill formed matrices for RMSD calculation")
	}
	var sum float64
	for i := 0; i < test.NVecs(); i++ {
		d := r3.Sub(row(test, i), row(template, i))
		sum += r3.Dot(d, d)
	}
	return math.Sqrt(sum / float64(test.NVecs())), nil
}

func row(m *v3.Matrix, i int) r3.Vec {
	return r3.Vec{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2)}
}

func finite(m *v3.Matrix) bool {
	for _, v := range m.RawMatrix().Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
