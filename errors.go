/*
 * errors.go, part of fraggrow.
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
	"errors"
	"fmt"
	"strings"
)

//Error kinds. Compare with errors.Is, e.g. errors.Is(err, ErrParse).
var (
	//The structure file is not a well formed record.
	ErrParse = errors.New("parse error")
	//The attachment atom requested is not in the structure.
	ErrResolution = errors.New("resolution error")
	//The attachment atom has no hydrogen at bonding distance.
	ErrNoHydrogen = errors.New("no hydrogen found")
	//Malformed arguments, i.e. a programming error in the caller.
	ErrPrecondition = errors.New("precondition violation")
	//Repeated atom names remain in the merged structure.
	ErrCollision = errors.New("atom name collision")
)

//Error is the error type returned by fraggrow functions. The Decorate method
//allows to add the names of the functions the error goes through, without
//changing its type or wrapping it around something else.
type Error struct {
	kind     error
	msg      string
	filename string
	deco     []string
	critical bool
}

func newError(kind error, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...), critical: true}
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	s := err.kind.Error() + ": " + err.msg
	if err.filename != "" {
		s = err.filename + ": " + s
	}
	if len(err.deco) > 0 {
		s = s + " (" + strings.Join(err.deco, " <- ") + ")"
	}
	return s
}

//Decorate adds dec to the decoration slice of the error and returns
//the resulting slice. An empty dec just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error aborts the current join.
func (err *Error) Critical() bool { return err.critical }

//FileName returns the structure file the error refers to, if any.
func (err *Error) FileName() string { return err.filename }

//Unwrap returns the kind of the error, so errors.Is(err, ErrParse) and
//friends work.
func (err *Error) Unwrap() error { return err.kind }

//errDecorate decorates err with the caller's name if err is an *Error,
//and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
