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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAlias(t *testing.T) {
	cases := map[string]bool{
		"my-key":  true,
		"mykey1":  true,
		"a":       true,
		"myKey":   false,
		"my-k@y":  false,
		"my_key":  false,
		"":        false,
		"MY-KEY":  false,
	}
	for alias, want := range cases {
		assert.Equalf(t, want, validAlias(alias), "alias %q", alias)
	}
}

func TestNormalizeAlias(t *testing.T) {
	assert.Equal(t, "my-key", normalizeAlias("My-Key"))
	assert.Equal(t, "my-key", normalizeAlias("MY-KEY"))
}

func TestValidDID(t *testing.T) {
	nonce := generateNonceHex()
	assert.True(t, validDID("did:factom:"+nonce, "did:factom"))
	assert.False(t, validDID("did:factom:"+nonce[:10], "did:factom"))
	assert.False(t, validDID("did:other:"+nonce, "did:factom"))
	assert.False(t, validDID("not-a-did", "did:factom"))
}

func TestValidURL(t *testing.T) {
	assert.True(t, validURL("https://example.com/endpoint"))
	assert.True(t, validURL("http://example.com"))
	assert.False(t, validURL("ftp://example.com"))
	assert.False(t, validURL("not a url"))
	assert.False(t, validURL("https:///missing-host"))
}
