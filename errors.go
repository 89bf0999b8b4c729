// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package didentry

import "fmt"

// Kind identifies the class of failure a Error carries. The set is
// exhaustive: every failure this module can produce maps to exactly
// one Kind.
type Kind string

const (
	KindValidation           Kind = "validation"
	KindKeyFormat            Kind = "key-format"
	KindKeyMismatch          Kind = "key-mismatch"
	KindAliasInUse           Kind = "alias-in-use"
	KindUnknownAlias         Kind = "unknown-alias"
	KindInsufficientAuthority Kind = "insufficient-authority"
	KindNoManagementKey      Kind = "no-management-key"
	KindNoTopPriorityKey     Kind = "no-top-priority-key"
	KindEntryTooLarge        Kind = "entry-too-large"
	KindNoPrivateKey         Kind = "no-private-key"
	KindTypeError            Kind = "type-error"
)

// Error is the single error type surfaced across this module. Kind
// classifies the failure; Field names the offending field or alias
// when applicable, matching §7's "errors carry the field name or
// alias responsible" policy.
type Error struct {
	Kind  Kind
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Kind, e.Field, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *Error with the same Kind as e,
// letting errors.Is match on failure category regardless of Field or
// wrapped cause. Prefer IsKind when comparing against a bare Kind
// value rather than a constructed *Error.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// newErr builds a *Error for kind, optionally naming field and
// wrapping cause.
func newErr(kind Kind, field string, cause error) *Error {
	return &Error{Kind: kind, Field: field, Err: cause}
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}
