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

package keys

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"

	sagecrypto "github.com/sage-x-project/didentry/crypto"
	"github.com/sage-x-project/didentry/crypto/formats"
)

// ed25519Provider implements sagecrypto.Provider for EdDSA (RFC 8032).
// Private keys are the 32-byte seed, never the expanded 64-byte form.
type ed25519Provider struct{}

func init() {
	sagecrypto.Register(sagecrypto.KeyTypeEdDSA, ed25519Provider{})
}

func (ed25519Provider) Generate() (private, public []byte, err error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return priv.Seed(), []byte(pub), nil
}

func (ed25519Provider) DerivePublic(private []byte) ([]byte, error) {
	if err := (ed25519Provider{}).ValidatePrivateFormat(private); err != nil {
		return nil, err
	}
	priv := ed25519.NewKeyFromSeed(private)
	return []byte(priv.Public().(ed25519.PublicKey)), nil
}

func (p ed25519Provider) Sign(private, message []byte) ([]byte, error) {
	if err := p.ValidatePrivateFormat(private); err != nil {
		return nil, err
	}
	priv := ed25519.NewKeyFromSeed(private)
	return ed25519.Sign(priv, message), nil
}

func (ed25519Provider) Verify(public, message, signature []byte) (bool, error) {
	if len(public) != ed25519.PublicKeySize {
		return false, sagecrypto.ErrKeyFormat
	}
	return ed25519.Verify(ed25519.PublicKey(public), message, signature), nil
}

func (ed25519Provider) EncodePublic(public []byte) ([]byte, error) {
	return formats.EncodeBase58Public(public)
}

func (p ed25519Provider) DecodePrivate(wire []byte) ([]byte, error) {
	if err := p.ValidatePrivateFormat(wire); err != nil {
		return nil, err
	}
	return bytes.Clone(wire), nil
}

func (ed25519Provider) ValidatePrivateFormat(private []byte) error {
	if len(private) != ed25519.SeedSize {
		return sagecrypto.ErrKeyFormat
	}
	return nil
}
