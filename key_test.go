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
	"github.com/stretchr/testify/require"
)

func TestManagementKeySignVerifyRoundTrip(t *testing.T) {
	d := New()
	key, err := d.AddManagementKey("man-key1", 0, EdDSA, "", nil, nil)
	require.NoError(t, err)

	msg := []byte("hello world")
	sig, err := key.Sign(msg)
	require.NoError(t, err)

	ok, err := key.Verify(msg, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = key.Verify([]byte("tampered"), sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManagementKeyFromPrivateDerivesPublic(t *testing.T) {
	d := New()
	generated, err := d.AddManagementKey("man-key1", 0, EdDSA, "", nil, nil)
	require.NoError(t, err)
	priv := generated.privateKey

	d2 := New()
	derived, err := d2.AddManagementKey("man-key2", 0, EdDSA, "", nil, priv)
	require.NoError(t, err)
	assert.Equal(t, generated.PublicKey(), derived.PublicKey())
}

func TestManagementKeyPublicPrivateMismatchRejected(t *testing.T) {
	d := New()
	k1, err := d.AddManagementKey("man-key1", 0, EdDSA, "", nil, nil)
	require.NoError(t, err)
	k2, err := d.AddManagementKey("man-key2", 1, EdDSA, "", nil, nil)
	require.NoError(t, err)

	_, err = d.AddManagementKey("man-key3", 2, EdDSA, "", k2.PublicKey(), k1.privateKey)
	assert.True(t, IsKind(err, KindKeyMismatch))
}

func TestManagementKeyVerificationOnlyHasNoPrivateKey(t *testing.T) {
	d := New()
	k1, err := d.AddManagementKey("man-key1", 0, EdDSA, "", nil, nil)
	require.NoError(t, err)

	d2 := New()
	pubOnly, err := d2.AddManagementKey("man-key2", 0, EdDSA, "", k1.PublicKey(), nil)
	require.NoError(t, err)
	assert.False(t, pubOnly.HasPrivateKey())

	_, err = pubOnly.Sign([]byte("msg"))
	assert.True(t, IsKind(err, KindNoPrivateKey))
}

func TestManagementKeyRejectsNegativePriority(t *testing.T) {
	d := New()
	_, err := d.AddManagementKey("man-key1", -1, EdDSA, "", nil, nil)
	assert.True(t, IsKind(err, KindValidation))
}

func TestManagementKeyEqualOnlyComparesSameKind(t *testing.T) {
	d := New()
	k1, err := d.AddManagementKey("man-key1", 0, EdDSA, "", nil, nil)
	require.NoError(t, err)
	k1Again, err := d.AddManagementKey("man-key1-copy", 0, EdDSA, "", k1.PublicKey(), nil)
	require.NoError(t, err)

	assert.False(t, k1.Equal(k1Again)) // different alias
	assert.True(t, k1.Equal(k1))
	// ManagementKey.Equal has no overload accepting *DIDKey or *Service:
	// cross-kind comparison does not type-check, by construction.
}

func TestDIDKeyPurposesDeduplicatedAndOrdered(t *testing.T) {
	d := New()
	key, err := d.AddDIDKey("auth-key1", []Purpose{PurposeAuthentication, PurposePublicKey, PurposeAuthentication}, EdDSA, "", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []Purpose{PurposeAuthentication, PurposePublicKey}, key.Purpose())
}

func TestDIDKeyRejectsEmptyPurpose(t *testing.T) {
	d := New()
	_, err := d.AddDIDKey("auth-key1", nil, EdDSA, "", nil, nil, nil)
	assert.True(t, IsKind(err, KindValidation))
}

func TestDIDKeyRejectsUnknownPurpose(t *testing.T) {
	d := New()
	_, err := d.AddDIDKey("auth-key1", []Purpose{"unknown"}, EdDSA, "", nil, nil, nil)
	assert.True(t, IsKind(err, KindValidation))
}

func TestWireTypeNames(t *testing.T) {
	eddsa, err := wireTypeName(EdDSA)
	require.NoError(t, err)
	assert.Equal(t, "Ed25519VerificationKey", eddsa)

	ecdsa, err := wireTypeName(ECDSA)
	require.NoError(t, err)
	assert.Equal(t, "ECDSASecp256k1VerificationKey", ecdsa)

	rsa, err := wireTypeName(RSA)
	require.NoError(t, err)
	assert.Equal(t, "RSAVerificationKey", rsa)
}
