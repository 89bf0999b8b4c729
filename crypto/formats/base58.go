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

// Package formats holds the wire encoders for public keys: base58 for
// EdDSA/ECDSA, PEM for RSA.
package formats

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// EncodeBase58Public renders a raw public key as a base58 string,
// suitable for a document fragment's publicKeyBase58 field.
func EncodeBase58Public(public []byte) ([]byte, error) {
	if len(public) == 0 {
		return nil, fmt.Errorf("formats: empty public key")
	}
	return []byte(base58.Encode(public)), nil
}

// DecodeBase58Public reverses EncodeBase58Public.
func DecodeBase58Public(wire []byte) ([]byte, error) {
	decoded, err := base58.Decode(string(wire))
	if err != nil {
		return nil, fmt.Errorf("formats: invalid base58 public key: %w", err)
	}
	return decoded, nil
}
