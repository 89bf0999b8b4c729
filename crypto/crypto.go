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

// Package crypto provides the collaborator crypto-provider abstraction
// consumed by the document/key layer: generation, signing, verification
// and wire encoding, one Provider per signature scheme. Concrete
// schemes live in crypto/keys; wire encoders live in crypto/formats.
package crypto

import "fmt"

// registry holds the Provider registered for each KeyType. Concrete
// schemes register themselves from crypto/keys via init(), mirroring
// the teacher's algorithm-registration pattern.
var registry = map[KeyType]Provider{}

// Register associates a Provider implementation with a scheme. It
// panics on a duplicate registration since that indicates two
// providers compiled in for the same scheme, a programming error.
func Register(scheme KeyType, provider Provider) {
	if _, exists := registry[scheme]; exists {
		panic(fmt.Sprintf("crypto: provider already registered for scheme %s", scheme))
	}
	registry[scheme] = provider
}

// ProviderFor returns the registered Provider for scheme.
func ProviderFor(scheme KeyType) (Provider, error) {
	p, ok := registry[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, scheme)
	}
	return p, nil
}
