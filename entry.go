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
	"bytes"
	"encoding/json"
	"fmt"
)

// EntryKind names a chain entry's wire kind, ext_ids[0]. The registry
// enumerates all four entry kinds original_source's method defines;
// this module's codec (below) only implements Create and Update, per
// the scope decision recorded in DESIGN.md.
type EntryKind string

const (
	EntryKindCreate              EntryKind = "DIDManagement"
	EntryKindUpdate              EntryKind = "DIDUpdate"
	EntryKindMethodVersionUpgrade EntryKind = "DIDMethodVersionUpgrade"
	EntryKindDeactivation        EntryKind = "DIDDeactivation"
)

// EntryBytes is the (ext_ids, content) tuple this module produces for
// downstream submission by an unrelated transport component.
type EntryBytes struct {
	ExtIDs  [][]byte
	Content []byte
}

func (e *EntryBytes) size() int {
	n := len(e.Content)
	for _, id := range e.ExtIDs {
		n += len(id)
	}
	return n
}

func (e *EntryBytes) checkSize() error {
	if size := e.size(); size > MaxEntrySize {
		return newErr(KindEntryTooLarge, "", fmt.Errorf("entry is %d bytes, exceeds cap of %d", size, MaxEntrySize))
	}
	return nil
}

// createContent is the canonical JSON body of a create entry. Field
// order here is the field declaration order, which encoding/json
// preserves, and is the module's canonical-JSON mechanism (see
// SPEC_FULL.md §4.6).
type createContent struct {
	DIDMethodVersion string                   `json:"didMethodVersion"`
	ManagementKey    []managementKeyFragment  `json:"managementKey"`
	DIDKey           []didKeyFragment         `json:"didKey,omitempty"`
	Service          []serviceFragment        `json:"service,omitempty"`
}

// ExportEntryData serializes d as a create entry: ext_ids =
// ["DIDManagement", schemaVersion, nonce-hex], content = the document's
// management keys, DID keys and services. Requires at least one
// management key, at least one priority-0 management key, and the
// resulting entry to fit within MaxEntrySize.
func (d *Document) ExportEntryData() (*EntryBytes, error) {
	if len(d.managementKeys) == 0 {
		return nil, newErr(KindNoManagementKey, "", nil)
	}
	if !d.hasTopPriorityManagementKey() {
		return nil, newErr(KindNoTopPriorityKey, "", nil)
	}

	mgmtFrags := make([]managementKeyFragment, len(d.managementKeys))
	for i, k := range d.managementKeys {
		frag, err := k.fragment(d.id)
		if err != nil {
			return nil, err
		}
		mgmtFrags[i] = frag
	}
	didFrags := make([]didKeyFragment, len(d.didKeys))
	for i, k := range d.didKeys {
		frag, err := k.fragment(d.id)
		if err != nil {
			return nil, err
		}
		didFrags[i] = frag
	}
	svcFrags := make([]serviceFragment, len(d.services))
	for i, s := range d.services {
		svcFrags[i] = s.fragment(d.id)
	}

	content, err := json.Marshal(createContent{
		DIDMethodVersion: MethodSpecVersion,
		ManagementKey:    mgmtFrags,
		DIDKey:           didFrags,
		Service:          svcFrags,
	})
	if err != nil {
		return nil, fmt.Errorf("didentry: marshal create content: %w", err)
	}

	entry := &EntryBytes{
		ExtIDs: [][]byte{
			[]byte(EntryKindCreate),
			[]byte(SchemaVersion),
			[]byte(d.nonce),
		},
		Content: content,
	}
	if err := entry.checkSize(); err != nil {
		return nil, err
	}
	return entry, nil
}

func (d *Document) hasTopPriorityManagementKey() bool {
	for _, k := range d.managementKeys {
		if k.priority == 0 {
			return true
		}
	}
	return false
}

// elementSet is the {managementKey, didKey, service} shape shared by
// an update entry's "add" object (fully-qualified ids) and, with
// revokedFragment elements, its "revoke" object (bare alias ids).
type elementSet struct {
	ManagementKey []managementKeyFragment `json:"managementKey,omitempty"`
	DIDKey        []didKeyFragment        `json:"didKey,omitempty"`
	Service       []serviceFragment        `json:"service,omitempty"`
}

type revocationSet struct {
	ManagementKey []revokedFragment `json:"managementKey,omitempty"`
	DIDKey        []revokedFragment `json:"didKey,omitempty"`
	Service       []revokedFragment `json:"service,omitempty"`
}

type updateContent struct {
	Add    *elementSet    `json:"add,omitempty"`
	Revoke *revocationSet `json:"revoke,omitempty"`
}

func concatBytes(parts ...[]byte) []byte {
	var buf bytes.Buffer
	for _, p := range parts {
		buf.Write(p)
	}
	return buf.Bytes()
}
