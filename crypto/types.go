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

// Package crypto is the collaborator crypto provider abstraction: key
// generation, signing, verification and wire encoding per signature
// scheme. The document/updater/entry layers never touch a concrete
// curve or padding scheme directly; they only call through Provider.
package crypto

import "errors"

// KeyType is a supported signature scheme.
type KeyType string

const (
	KeyTypeEdDSA KeyType = "EdDSA"
	KeyTypeECDSA KeyType = "ECDSA"
	KeyTypeRSA   KeyType = "RSA"
)

// KeyFormat is the wire encoding used to serialize a public key.
type KeyFormat string

const (
	KeyFormatBase58 KeyFormat = "base58"
	KeyFormatPEM    KeyFormat = "pem"
)

// WireFormat returns the wire format mandated for a scheme: base58 for
// EdDSA/ECDSA, PEM for RSA.
func (t KeyType) WireFormat() (KeyFormat, error) {
	switch t {
	case KeyTypeEdDSA, KeyTypeECDSA:
		return KeyFormatBase58, nil
	case KeyTypeRSA:
		return KeyFormatPEM, nil
	default:
		return "", ErrUnknownScheme
	}
}

// Provider is the per-scheme cryptographic collaborator consumed by the
// document/key layer. Every method operates on raw key bytes rather
// than scheme-specific types so that callers outside this package
// never import a curve library directly.
type Provider interface {
	// Generate produces a fresh private/public key pair.
	Generate() (private, public []byte, err error)

	// DerivePublic computes the public key for a given private key.
	DerivePublic(private []byte) (public []byte, err error)

	// Sign produces a signature over message using private.
	Sign(private, message []byte) (signature []byte, err error)

	// Verify reports whether signature is valid for message under public.
	Verify(public, message, signature []byte) (bool, error)

	// EncodePublic renders public in this scheme's wire format.
	EncodePublic(public []byte) ([]byte, error)

	// DecodePrivate parses wire-encoded bytes into a private key. For
	// schemes whose private material has no wire encoding (EdDSA,
	// ECDSA) this validates and returns the bytes unchanged.
	DecodePrivate(wire []byte) (private []byte, err error)

	// ValidatePrivateFormat reports whether private satisfies this
	// scheme's format rules without doing any other work.
	ValidatePrivateFormat(private []byte) error
}

// Common errors surfaced by Provider implementations. These map
// directly onto the error kinds the document/key layer re-exports.
var (
	ErrUnknownScheme  = errors.New("crypto: unknown signature scheme")
	ErrKeyFormat      = errors.New("crypto: key bytes do not satisfy scheme format")
	ErrKeyMismatch    = errors.New("crypto: supplied public key does not match private key")
	ErrNoPrivateKey   = errors.New("crypto: operation requires a private key")
	ErrTypeError      = errors.New("crypto: sign/verify requires byte buffers")
	ErrInvalidSig     = errors.New("crypto: signature verification failed")
)
