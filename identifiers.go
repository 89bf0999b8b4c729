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

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	aliasPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
	nonceHexPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)
)

// validAlias reports whether s is a non-empty lowercase
// alias: [a-z0-9-]+.
func validAlias(s string) bool {
	return s != "" && aliasPattern.MatchString(s)
}

// normalizeAlias lowercases s for alias comparison and storage. Per
// the lowercase-normalization decision in DESIGN.md, revocation calls
// normalize their alias argument too, so a revocation spelled in a
// different case than the one stored still matches it.
func normalizeAlias(s string) string {
	return strings.ToLower(s)
}

// validDID reports whether s matches "<methodName>:[a-f0-9]{64}"
// exactly.
func validDID(s, methodName string) bool {
	prefix := methodName + ":"
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	return nonceHexPattern.MatchString(s[len(prefix):])
}

// validURL reports whether s parses as an absolute http(s) URL with a
// non-empty host.
func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Host == "" {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return true
	default:
		return false
	}
}

// parseController validates that controller is a well-formed DID
// string under methodName, returning a *Error(validation) naming
// field on failure.
func parseController(controller, methodName, field string) error {
	if !validDID(controller, methodName) {
		return newErr(KindValidation, field, fmt.Errorf("controller %q is not a valid DID", controller))
	}
	return nil
}
