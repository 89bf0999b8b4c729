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
	"crypto/sha256"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	sagecrypto "github.com/sage-x-project/didentry/crypto"
	"github.com/sage-x-project/didentry/crypto/formats"
)

// secp256k1Order is the order N of the secp256k1 base point. A private
// scalar must satisfy 0 < d < N.
var secp256k1Order, _ = new(big.Int).SetString(
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

// secp256k1Provider implements sagecrypto.Provider for ECDSA over
// secp256k1 with RFC 6979 deterministic nonces and SHA-256.
type secp256k1Provider struct{}

func init() {
	sagecrypto.Register(sagecrypto.KeyTypeECDSA, secp256k1Provider{})
}

func (secp256k1Provider) Generate() (private, public []byte, err error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, nil, err
	}
	return priv.Serialize(), priv.PubKey().SerializeCompressed(), nil
}

func (p secp256k1Provider) DerivePublic(private []byte) ([]byte, error) {
	if err := p.ValidatePrivateFormat(private); err != nil {
		return nil, err
	}
	priv := secp256k1.PrivKeyFromBytes(private)
	return priv.PubKey().SerializeCompressed(), nil
}

func (p secp256k1Provider) Sign(private, message []byte) ([]byte, error) {
	if err := p.ValidatePrivateFormat(private); err != nil {
		return nil, err
	}
	priv := secp256k1.PrivKeyFromBytes(private)
	hash := sha256.Sum256(message)
	sig := ecdsa.Sign(priv, hash[:])
	return sig.Serialize(), nil
}

func (secp256k1Provider) Verify(public, message, signature []byte) (bool, error) {
	pub, err := secp256k1.ParsePubKey(public)
	if err != nil {
		return false, sagecrypto.ErrKeyFormat
	}
	sig, err := ecdsa.ParseDERSignature(signature)
	if err != nil {
		return false, nil
	}
	hash := sha256.Sum256(message)
	return sig.Verify(hash[:], pub), nil
}

func (secp256k1Provider) EncodePublic(public []byte) ([]byte, error) {
	return formats.EncodeBase58Public(public)
}

func (p secp256k1Provider) DecodePrivate(wire []byte) ([]byte, error) {
	if err := p.ValidatePrivateFormat(wire); err != nil {
		return nil, err
	}
	return bytes.Clone(wire), nil
}

func (secp256k1Provider) ValidatePrivateFormat(private []byte) error {
	if len(private) != 32 {
		return sagecrypto.ErrKeyFormat
	}
	d := new(big.Int).SetBytes(private)
	if d.Sign() == 0 || d.Cmp(secp256k1Order) >= 0 {
		return sagecrypto.ErrKeyFormat
	}
	return nil
}
