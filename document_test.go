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

func TestNewDocumentID(t *testing.T) {
	d := New()
	assert.Equal(t, DefaultMethodName, d.MethodName())
	assert.True(t, validDID(d.ID(), DefaultMethodName))
	assert.Len(t, d.Nonce(), 64)
}

func TestNewDocumentWithMethodName(t *testing.T) {
	d := New(WithMethodName("did:example"))
	assert.Equal(t, "did:example", d.MethodName())
	assert.True(t, validDID(d.ID(), "did:example"))
}

func TestAddManagementKeyGeneratesFreshPair(t *testing.T) {
	d := New()
	key, err := d.AddManagementKey("man-key1", 0, EdDSA, "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "man-key1", key.Alias())
	assert.Equal(t, d.ID(), key.Controller())
	assert.True(t, key.HasPrivateKey())
	assert.Len(t, d.ManagementKeys(), 1)
}

func TestAddManagementKeyRejectsDuplicateAlias(t *testing.T) {
	d := New()
	_, err := d.AddManagementKey("man-key1", 0, EdDSA, "", nil, nil)
	require.NoError(t, err)
	_, err = d.AddManagementKey("man-key1", 1, EdDSA, "", nil, nil)
	assert.True(t, IsKind(err, KindAliasInUse))
}

func TestAddManagementKeyRejectsInvalidAlias(t *testing.T) {
	for _, alias := range []string{"myKey", "my-k@y", "my_key", ""} {
		d := New()
		_, err := d.AddManagementKey(alias, 0, EdDSA, "", nil, nil)
		assert.Truef(t, IsKind(err, KindValidation), "alias %q", alias)
	}
}

func TestAddDIDKeyAliasCollidesWithManagementKey(t *testing.T) {
	d := New()
	_, err := d.AddManagementKey("shared", 0, EdDSA, "", nil, nil)
	require.NoError(t, err)
	_, err = d.AddDIDKey("shared", []Purpose{PurposeAuthentication}, EdDSA, "", nil, nil, nil)
	assert.True(t, IsKind(err, KindAliasInUse))
}

func TestAddService(t *testing.T) {
	d := New()
	svc, err := d.AddService("my-service", "MessagingService", "https://example.com/endpoint", nil)
	require.NoError(t, err)
	assert.Equal(t, "my-service", svc.Alias())
	assert.Equal(t, "MessagingService", svc.Type())
}

func TestBuilderChain(t *testing.T) {
	d := New().
		ManagementKeyBuilder("man-key1", 0, EdDSA, "").
		DIDKeyBuilder("auth-key1", []Purpose{PurposeAuthentication}, EdDSA, "", nil).
		ServiceBuilder("my-service", "MessagingService", "https://example.com", nil)
	assert.Len(t, d.ManagementKeys(), 1)
	assert.Len(t, d.DIDKeys(), 1)
	assert.Len(t, d.Services(), 1)
}

func TestBuilderChainPanicsOnInvalidAlias(t *testing.T) {
	d := New()
	assert.Panics(t, func() {
		d.ManagementKeyBuilder("my_key", 0, EdDSA, "")
	})
}

func TestUpdateFailsWithoutManagementKey(t *testing.T) {
	d := New()
	_, err := d.Update()
	assert.True(t, IsKind(err, KindNoManagementKey))
}

func TestCloneIsIndependent(t *testing.T) {
	d := New()
	_, err := d.AddManagementKey("man-key1", 0, EdDSA, "", nil, nil)
	require.NoError(t, err)

	clone := d.clone()
	_, err = clone.AddManagementKey("man-key2", 1, EdDSA, "", nil, nil)
	require.NoError(t, err)

	assert.Len(t, d.ManagementKeys(), 1)
	assert.Len(t, clone.ManagementKeys(), 2)
}
