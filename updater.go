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

import "encoding/json"

type revokedManagement struct {
	alias    string
	priority int
}

type revokedWithRequirement struct {
	alias               string
	priorityRequirement *int
}

// Updater builds a differential update against a frozen snapshot of a
// Document's management-key list. Additions and revocations accumulate
// in insertion order as they are applied to an internal working copy;
// ExportEntryData later selects the most-privileged (lowest priority
// number) management key required to authorize everything that
// accumulated.
type Updater struct {
	original *Document
	working  *Document

	// existingManagement is the original management-key list, frozen at
	// Updater creation. Authorization always selects from this list,
	// never from keys added during this update.
	existingManagement []*ManagementKey

	additions struct {
		management []*ManagementKey
		did        []*DIDKey
		service    []*Service
	}
	revocations struct {
		management []revokedManagement
		did        []revokedWithRequirement
		service    []revokedWithRequirement
	}

	revokedTopPriorityManagement bool
}

func newUpdater(d *Document) *Updater {
	existing := make([]*ManagementKey, len(d.managementKeys))
	copy(existing, d.managementKeys)
	return &Updater{
		original:           d,
		working:            d.clone(),
		existingManagement: existing,
	}
}

// AddManagementKey adds a management key to the working document.
func (u *Updater) AddManagementKey(alias string, priority int, scheme Scheme, controller string, publicKey, privateKey []byte) (*ManagementKey, error) {
	key, err := u.working.AddManagementKey(alias, priority, scheme, controller, publicKey, privateKey)
	if err != nil {
		return nil, err
	}
	u.additions.management = append(u.additions.management, key)
	return key, nil
}

// AddDIDKey adds a DID key to the working document.
func (u *Updater) AddDIDKey(alias string, purposes []Purpose, scheme Scheme, controller string, priorityRequirement *int, publicKey, privateKey []byte) (*DIDKey, error) {
	key, err := u.working.AddDIDKey(alias, purposes, scheme, controller, priorityRequirement, publicKey, privateKey)
	if err != nil {
		return nil, err
	}
	u.additions.did = append(u.additions.did, key)
	return key, nil
}

// AddService adds a service to the working document.
func (u *Updater) AddService(alias, serviceType, endpoint string, priorityRequirement *int) (*Service, error) {
	svc, err := u.working.AddService(alias, serviceType, endpoint, priorityRequirement)
	if err != nil {
		return nil, err
	}
	u.additions.service = append(u.additions.service, svc)
	return svc, nil
}

// RevokeManagementKey removes the management key with the given alias
// (matched case-insensitively) from the working document. If the key
// was itself added earlier in this same Updater, it is simply dropped
// from the pending additions; otherwise it is recorded as a
// revocation against the original document.
func (u *Updater) RevokeManagementKey(alias string) error {
	norm := normalizeAlias(alias)
	idx := -1
	for i, k := range u.working.managementKeys {
		if k.alias == norm {
			idx = i
			break
		}
	}
	if idx == -1 {
		return newErr(KindUnknownAlias, alias, nil)
	}
	removed := u.working.managementKeys[idx]
	u.working.managementKeys = append(u.working.managementKeys[:idx:idx], u.working.managementKeys[idx+1:]...)
	u.working.freeAlias(norm)

	if u.dropAddedManagement(norm) {
		return nil
	}
	u.revocations.management = append(u.revocations.management, revokedManagement{alias: removed.alias, priority: removed.priority})
	if removed.priority == 0 {
		u.revokedTopPriorityManagement = true
	}
	return nil
}

// RevokeDIDKey removes the DID key with the given alias from the
// working document.
func (u *Updater) RevokeDIDKey(alias string) error {
	norm := normalizeAlias(alias)
	idx := -1
	for i, k := range u.working.didKeys {
		if k.alias == norm {
			idx = i
			break
		}
	}
	if idx == -1 {
		return newErr(KindUnknownAlias, alias, nil)
	}
	removed := u.working.didKeys[idx]
	u.working.didKeys = append(u.working.didKeys[:idx:idx], u.working.didKeys[idx+1:]...)
	u.working.freeAlias(norm)

	if u.dropAddedDID(norm) {
		return nil
	}
	u.revocations.did = append(u.revocations.did, revokedWithRequirement{alias: removed.alias, priorityRequirement: removed.priorityRequirement})
	return nil
}

// RevokeService removes the service with the given alias from the
// working document.
func (u *Updater) RevokeService(alias string) error {
	norm := normalizeAlias(alias)
	idx := -1
	for i, s := range u.working.services {
		if s.alias == norm {
			idx = i
			break
		}
	}
	if idx == -1 {
		return newErr(KindUnknownAlias, alias, nil)
	}
	removed := u.working.services[idx]
	u.working.services = append(u.working.services[:idx:idx], u.working.services[idx+1:]...)
	u.working.freeAlias(norm)

	if u.dropAddedService(norm) {
		return nil
	}
	u.revocations.service = append(u.revocations.service, revokedWithRequirement{alias: removed.alias, priorityRequirement: removed.priorityRequirement})
	return nil
}

// RotateManagementKey revokes the named management key and adds a
// fresh one back at the same alias, priority, scheme and controller.
func (u *Updater) RotateManagementKey(alias string) (*ManagementKey, error) {
	norm := normalizeAlias(alias)
	var target *ManagementKey
	for _, k := range u.working.managementKeys {
		if k.alias == norm {
			target = k
			break
		}
	}
	if target == nil {
		return nil, newErr(KindUnknownAlias, alias, nil)
	}
	priority, scheme, controller := target.priority, target.scheme, target.controller
	if err := u.RevokeManagementKey(alias); err != nil {
		return nil, err
	}
	return u.AddManagementKey(alias, priority, scheme, controller, nil, nil)
}

func (u *Updater) dropAddedManagement(norm string) bool {
	for i, k := range u.additions.management {
		if k.alias == norm {
			u.additions.management = append(u.additions.management[:i:i], u.additions.management[i+1:]...)
			return true
		}
	}
	return false
}

func (u *Updater) dropAddedDID(norm string) bool {
	for i, k := range u.additions.did {
		if k.alias == norm {
			u.additions.did = append(u.additions.did[:i:i], u.additions.did[i+1:]...)
			return true
		}
	}
	return false
}

func (u *Updater) dropAddedService(norm string) bool {
	for i, s := range u.additions.service {
		if s.alias == norm {
			u.additions.service = append(u.additions.service[:i:i], u.additions.service[i+1:]...)
			return true
		}
	}
	return false
}

// GetUpdated returns the document resulting from all adds and revokes
// applied so far. It is terminal and idempotent: calling it again, or
// calling ExportEntryData afterward, does not change its result.
func (u *Updater) GetUpdated() *Document {
	return u.working
}

func (u *Updater) isEmpty() bool {
	return len(u.additions.management) == 0 && len(u.additions.did) == 0 && len(u.additions.service) == 0 &&
		len(u.revocations.management) == 0 && len(u.revocations.did) == 0 && len(u.revocations.service) == 0
}

// selectSigner picks the most-privileged (lowest priority number)
// eligible management key from the original document: it computes the
// strictest priority ceiling required by the added and revoked
// management keys' priorities and the revoked DID keys' and services'
// priority requirements (added DID keys and services impose none),
// then returns the lowest-priority original key whose
// priority is at or below that ceiling, breaking ties by list
// position.
func (u *Updater) selectSigner() (*ManagementKey, error) {
	ceiling := 0
	hasCeiling := false
	consider := func(p int) {
		if !hasCeiling || p < ceiling {
			ceiling = p
			hasCeiling = true
		}
	}

	for _, k := range u.additions.management {
		consider(k.priority)
	}
	for _, r := range u.revocations.management {
		consider(r.priority)
	}
	for _, r := range u.revocations.did {
		if r.priorityRequirement != nil {
			consider(*r.priorityRequirement)
		}
	}
	for _, r := range u.revocations.service {
		if r.priorityRequirement != nil {
			consider(*r.priorityRequirement)
		}
	}

	var best *ManagementKey
	for _, k := range u.existingManagement {
		if hasCeiling && k.priority > ceiling {
			continue
		}
		if best == nil || k.priority < best.priority {
			best = k
		}
	}
	if best == nil {
		return nil, newErr(KindInsufficientAuthority, "", nil)
	}
	return best, nil
}

func (u *Updater) buildUpdateContent() ([]byte, error) {
	var add *elementSet
	if len(u.additions.management) > 0 || len(u.additions.did) > 0 || len(u.additions.service) > 0 {
		set := elementSet{}
		for _, k := range u.additions.management {
			frag, err := k.fragment(u.original.id)
			if err != nil {
				return nil, err
			}
			set.ManagementKey = append(set.ManagementKey, frag)
		}
		for _, k := range u.additions.did {
			frag, err := k.fragment(u.original.id)
			if err != nil {
				return nil, err
			}
			set.DIDKey = append(set.DIDKey, frag)
		}
		for _, s := range u.additions.service {
			set.Service = append(set.Service, s.fragment(u.original.id))
		}
		add = &set
	}

	var revoke *revocationSet
	if len(u.revocations.management) > 0 || len(u.revocations.did) > 0 || len(u.revocations.service) > 0 {
		set := revocationSet{}
		for _, r := range u.revocations.management {
			set.ManagementKey = append(set.ManagementKey, revokedFragment{ID: r.alias})
		}
		for _, r := range u.revocations.did {
			set.DIDKey = append(set.DIDKey, revokedFragment{ID: r.alias})
		}
		for _, r := range u.revocations.service {
			set.Service = append(set.Service, revokedFragment{ID: r.alias})
		}
		revoke = &set
	}

	return json.Marshal(updateContent{Add: add, Revoke: revoke})
}

// ExportEntryData serializes the accumulated changes as an update
// entry, signed by the most-privileged management key required to
// authorize them. It returns (nil, nil) if nothing was added or
// revoked. It fails no-management-key if the working document would
// end up with zero management keys, no-top-priority-key if a
// priority-0 management key was revoked and none remains, and
// insufficient-authority if no original management key can cover the
// accumulated changes.
func (u *Updater) ExportEntryData() (*EntryBytes, error) {
	if u.isEmpty() {
		return nil, nil
	}
	if len(u.working.managementKeys) == 0 {
		return nil, newErr(KindNoManagementKey, "", nil)
	}
	if u.revokedTopPriorityManagement && !u.working.hasTopPriorityManagementKey() {
		return nil, newErr(KindNoTopPriorityKey, "", nil)
	}

	signer, err := u.selectSigner()
	if err != nil {
		return nil, err
	}

	content, err := u.buildUpdateContent()
	if err != nil {
		return nil, err
	}

	extIDs := [][]byte{
		[]byte(EntryKindUpdate),
		[]byte(SchemaVersion),
		[]byte(u.original.id + "#" + signer.alias),
	}
	signature, err := signer.Sign(concatBytes(extIDs[0], extIDs[1], extIDs[2], content))
	if err != nil {
		return nil, err
	}
	extIDs = append(extIDs, signature)

	entry := &EntryBytes{ExtIDs: extIDs, Content: content}
	if err := entry.checkSize(); err != nil {
		return nil, err
	}
	return entry, nil
}
