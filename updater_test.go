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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFullDID constructs the fixture used across these tests: four
// management keys, three DID keys and two services at varying
// priorities and priority requirements.
func buildFullDID(t *testing.T) *Document {
	t.Helper()
	d := New()

	_, err := d.AddManagementKey("man-key1", 0, EdDSA, "", nil, nil)
	require.NoError(t, err)
	_, err = d.AddManagementKey("man-key2", 1, EdDSA, "", nil, nil)
	require.NoError(t, err)
	_, err = d.AddManagementKey("man-key3", 1, EdDSA, "", nil, nil)
	require.NoError(t, err)
	_, err = d.AddManagementKey("man-key4", 2, EdDSA, "", nil, nil)
	require.NoError(t, err)

	req1, req2, req3 := 1, 2, 3
	_, err = d.AddDIDKey("did-key1", []Purpose{PurposeAuthentication}, EdDSA, "", &req2, nil, nil)
	require.NoError(t, err)
	_, err = d.AddDIDKey("did-key2", []Purpose{PurposeAuthentication}, EdDSA, "", &req3, nil, nil)
	require.NoError(t, err)
	_, err = d.AddDIDKey("did-key3", []Purpose{PurposeAuthentication}, EdDSA, "", &req1, nil, nil)
	require.NoError(t, err)

	req0 := 0
	_, err = d.AddService("gmail-service", "MessagingService", "https://mail.example.com", &req2)
	require.NoError(t, err)
	_, err = d.AddService("banking-service", "FinanceService", "https://bank.example.com", &req0)
	require.NoError(t, err)

	return d
}

func TestUpdaterNoChangesExportsNothing(t *testing.T) {
	d := buildFullDID(t)
	updater, err := d.Update()
	require.NoError(t, err)

	entry, err := updater.ExportEntryData()
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestUpdaterRevokeOnlySelectsMostPrivilegedSigner(t *testing.T) {
	d := buildFullDID(t)
	updater, err := d.Update()
	require.NoError(t, err)

	require.NoError(t, updater.RevokeManagementKey("man-key3"))
	require.NoError(t, updater.RevokeDIDKey("did-key2"))
	require.NoError(t, updater.RevokeService("gmail-service"))

	signer, err := updater.selectSigner()
	require.NoError(t, err)
	assert.Equal(t, "man-key1", signer.Alias())

	entry, err := updater.ExportEntryData()
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, []byte(EntryKindUpdate), entry.ExtIDs[0])
	assert.Equal(t, d.ID()+"#man-key1", string(entry.ExtIDs[2]))

	var content updateContent
	require.NoError(t, json.Unmarshal(entry.Content, &content))
	assert.Nil(t, content.Add)
	require.NotNil(t, content.Revoke)
	assert.ElementsMatch(t, []string{"man-key3"}, idsOf(content.Revoke.ManagementKey))
	assert.ElementsMatch(t, []string{"did-key2"}, idsOf(content.Revoke.DIDKey))
	assert.ElementsMatch(t, []string{"gmail-service"}, idsOf(content.Revoke.Service))
}

func TestUpdaterAddAndRevokeSelectsTopPriorityAfterRotation(t *testing.T) {
	d := buildFullDID(t)
	updater, err := d.Update()
	require.NoError(t, err)

	_, err = updater.AddManagementKey("man-key5", 0, EdDSA, "", nil, nil)
	require.NoError(t, err)
	_, err = updater.AddDIDKey("auth-key1", []Purpose{PurposeAuthentication}, EdDSA, "", nil, nil, nil)
	require.NoError(t, err)
	_, err = updater.AddService("encrypted-chat", "MessagingService", "https://chat.example.com", nil)
	require.NoError(t, err)

	require.NoError(t, updater.RevokeManagementKey("man-key1"))
	require.NoError(t, updater.RevokeDIDKey("did-key3"))
	require.NoError(t, updater.RevokeDIDKey("did-key1"))
	require.NoError(t, updater.RevokeService("gmail-service"))

	signer, err := updater.selectSigner()
	require.NoError(t, err)
	assert.Equal(t, "man-key1", signer.Alias())

	updated := updater.GetUpdated()
	assert.True(t, updated.hasTopPriorityManagementKey())

	entry, err := updater.ExportEntryData()
	require.NoError(t, err)
	require.NotNil(t, entry)

	var content updateContent
	require.NoError(t, json.Unmarshal(entry.Content, &content))
	require.NotNil(t, content.Add)
	assert.ElementsMatch(t, []string{d.ID() + "#man-key5"}, managementKeyIDs(content.Add.ManagementKey))
	assert.ElementsMatch(t, []string{d.ID() + "#auth-key1"}, didKeyIDs(content.Add.DIDKey))
	assert.ElementsMatch(t, []string{d.ID() + "#encrypted-chat"}, serviceIDs(content.Add.Service))
	require.NotNil(t, content.Revoke)
	assert.ElementsMatch(t, []string{"man-key1"}, idsOf(content.Revoke.ManagementKey))
	assert.ElementsMatch(t, []string{"did-key3", "did-key1"}, idsOf(content.Revoke.DIDKey))
	assert.ElementsMatch(t, []string{"gmail-service"}, idsOf(content.Revoke.Service))
}

func TestUpdaterAddThenRevokeSameAliasCancelsOut(t *testing.T) {
	d := buildFullDID(t)
	updater, err := d.Update()
	require.NoError(t, err)

	_, err = updater.AddManagementKey("man-key5", 3, EdDSA, "", nil, nil)
	require.NoError(t, err)
	require.NoError(t, updater.RevokeManagementKey("man-key5"))

	entry, err := updater.ExportEntryData()
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestUpdaterRevokeUnknownAliasFails(t *testing.T) {
	d := buildFullDID(t)
	updater, err := d.Update()
	require.NoError(t, err)

	err = updater.RevokeManagementKey("does-not-exist")
	assert.True(t, IsKind(err, KindUnknownAlias))
}

func TestUpdaterRevokeAllManagementKeysFailsNoManagementKey(t *testing.T) {
	d := New()
	_, err := d.AddManagementKey("man-key1", 0, EdDSA, "", nil, nil)
	require.NoError(t, err)
	updater, err := d.Update()
	require.NoError(t, err)

	require.NoError(t, updater.RevokeManagementKey("man-key1"))
	_, err = updater.ExportEntryData()
	assert.True(t, IsKind(err, KindNoManagementKey))
}

func TestUpdaterRevokeTopPriorityWithoutReplacementFails(t *testing.T) {
	d := New()
	_, err := d.AddManagementKey("man-key1", 0, EdDSA, "", nil, nil)
	require.NoError(t, err)
	_, err = d.AddManagementKey("man-key2", 1, EdDSA, "", nil, nil)
	require.NoError(t, err)
	updater, err := d.Update()
	require.NoError(t, err)

	require.NoError(t, updater.RevokeManagementKey("man-key1"))
	_, err = updater.ExportEntryData()
	assert.True(t, IsKind(err, KindNoTopPriorityKey))
}

func idsOf(frags []revokedFragment) []string {
	out := make([]string, len(frags))
	for i, f := range frags {
		out[i] = f.ID
	}
	return out
}

func managementKeyIDs(frags []managementKeyFragment) []string {
	out := make([]string, len(frags))
	for i, f := range frags {
		out[i] = f.ID
	}
	return out
}

func didKeyIDs(frags []didKeyFragment) []string {
	out := make([]string, len(frags))
	for i, f := range frags {
		out[i] = f.ID
	}
	return out
}

func serviceIDs(frags []serviceFragment) []string {
	out := make([]string, len(frags))
	for i, f := range frags {
		out[i] = f.ID
	}
	return out
}
