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
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"

	sagecrypto "github.com/sage-x-project/didentry/crypto"
	"github.com/sage-x-project/didentry/crypto/formats"
)

const rsaMinBits = 2048

// rsaProvider implements sagecrypto.Provider for RSA PKCS#1 v1.5 with
// SHA-256. Private keys are carried internally as PKCS#8 DER bytes
// regardless of the wire format they were supplied in.
type rsaProvider struct{}

func init() {
	sagecrypto.Register(sagecrypto.KeyTypeRSA, rsaProvider{})
}

func (rsaProvider) Generate() (private, public []byte, err error) {
	key, err := rsa.GenerateKey(rand.Reader, rsaMinBits)
	if err != nil {
		return nil, nil, err
	}
	der, err := formats.EncodeRSAPrivateKeyPKCS8(key)
	if err != nil {
		return nil, nil, err
	}
	pubDER, err := formats.EncodeRSAPublicKeyPEM(&key.PublicKey)
	if err != nil {
		return nil, nil, err
	}
	return der, pubDER, nil
}

func (p rsaProvider) DerivePublic(private []byte) ([]byte, error) {
	key, err := p.parsePrivate(private)
	if err != nil {
		return nil, err
	}
	return formats.EncodeRSAPublicKeyPEM(&key.PublicKey)
}

func (p rsaProvider) Sign(private, message []byte) ([]byte, error) {
	key, err := p.parsePrivate(private)
	if err != nil {
		return nil, err
	}
	hash := sha256.Sum256(message)
	return rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, hash[:])
}

func (rsaProvider) Verify(public, message, signature []byte) (bool, error) {
	pub, err := formats.DecodeRSAPublicKeyPEM(public)
	if err != nil {
		return false, sagecrypto.ErrKeyFormat
	}
	hash := sha256.Sum256(message)
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, hash[:], signature); err != nil {
		return false, nil
	}
	return true, nil
}

func (rsaProvider) EncodePublic(public []byte) ([]byte, error) {
	// public is already PEM-encoded by DerivePublic/Generate.
	return public, nil
}

// DecodePrivate accepts PEM (PKCS#1 or PKCS#8) or bare DER and
// normalizes to the PKCS#8 DER representation used internally.
func (rsaProvider) DecodePrivate(wire []byte) ([]byte, error) {
	key, err := formats.DecodeRSAPrivateKey(wire)
	if err != nil {
		return nil, sagecrypto.ErrKeyFormat
	}
	if key.N.BitLen() < rsaMinBits {
		return nil, sagecrypto.ErrKeyFormat
	}
	return formats.EncodeRSAPrivateKeyPKCS8(key)
}

func (p rsaProvider) ValidatePrivateFormat(private []byte) error {
	_, err := p.parsePrivate(private)
	return err
}

func (rsaProvider) parsePrivate(private []byte) (*rsa.PrivateKey, error) {
	key, err := formats.DecodeRSAPrivateKey(private)
	if err != nil {
		return nil, sagecrypto.ErrKeyFormat
	}
	if key.N.BitLen() < rsaMinBits {
		return nil, sagecrypto.ErrKeyFormat
	}
	return key, nil
}
