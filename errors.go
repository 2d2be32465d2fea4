/*
 * errors.go, part of goconformer.
 *
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
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
 *
 * goconformer is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package conformer

import "fmt"

// CError is the concrete general error type of the root package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds the dec string to the decoration trail of the error and
// returns the updated trail.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate asserts that err implements Error, decorates it with the
// caller's name and returns it.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// NotLoadedError is returned by analysis entry points invoked before a
// geometry set has been successfully loaded.
type NotLoadedError struct {
	deco []string
}

// NewNotLoadedError returns a NotLoadedError decorated with the caller's
// name.
func NewNotLoadedError(caller string) *NotLoadedError {
	return &NotLoadedError{deco: []string{caller}}
}

func (err *NotLoadedError) Error() string {
	return "goconformer: no geometry set loaded: call a Load function first"
}

func (err *NotLoadedError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// EmptyInputError is returned when a load resolved to zero geometries.
// It distinguishes the no-files-given case from the case where files were
// read but contained no geometry blocks.
type EmptyInputError struct {
	files int
	deco  []string
}

// NewEmptyInputError returns an EmptyInputError for a load over nfiles
// input files.
func NewEmptyInputError(nfiles int, caller string) *EmptyInputError {
	return &EmptyInputError{files: nfiles, deco: []string{caller}}
}

func (err *EmptyInputError) Error() string {
	if err.files == 0 {
		return "goconformer: no geometry files given"
	}
	return fmt.Sprintf("goconformer: no geometries found in the %d file(s) given", err.files)
}

func (err *EmptyInputError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Files returns the number of input files of the load that produced the
// error.
func (err *EmptyInputError) Files() int { return err.files }

// RingError is returned when a ring specification is invalid: too few
// atoms, an index out of range, or a repeated index.
type RingError struct {
	msg  string
	ring []int
	deco []string
}

func newRingError(msg string, ring []int, caller string) *RingError {
	return &RingError{msg: msg, ring: ring, deco: []string{caller}}
}

func (err *RingError) Error() string {
	return fmt.Sprintf("goconformer: invalid ring specification %v: %s", err.ring, err.msg)
}

func (err *RingError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Ring returns the offending ring specification.
func (err *RingError) Ring() []int { return err.ring }
