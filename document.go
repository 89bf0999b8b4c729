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
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Option configures a Document at construction time.
type Option func(*Document)

// WithMethodName overrides the DID method name prefix (default
// DefaultMethodName).
func WithMethodName(name string) Option {
	return func(d *Document) { d.methodName = name }
}

// Document is the aggregate of management keys, DID keys and services
// for one DID, plus the identity nonce that forms its id. Document is
// not safe for concurrent use (§5): callers wanting concurrent access
// must externally serialize it or clone it.
type Document struct {
	id         string
	nonce      string
	methodName string

	managementKeys []*ManagementKey
	didKeys        []*DIDKey
	services       []*Service

	aliases map[string]bool
}

// New creates an empty Document with a freshly drawn 32-byte nonce.
func New(opts ...Option) *Document {
	d := &Document{
		methodName: DefaultMethodName,
		aliases:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.nonce = generateNonceHex()
	d.id = d.methodName + ":" + d.nonce
	return d
}

func generateNonceHex() string {
	buf := make([]byte, NonceSize)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand.Read only fails if the OS entropy source is
		// broken, a condition this library cannot recover from.
		panic(fmt.Sprintf("didentry: failed to draw nonce: %v", err))
	}
	return hex.EncodeToString(buf)
}

// ID returns the document's DID string, "<methodName>:<nonce-hex>".
func (d *Document) ID() string { return d.id }

// Nonce returns the document's 64-char hex-encoded identity nonce.
func (d *Document) Nonce() string { return d.nonce }

// MethodName returns the DID method name prefix this document uses.
func (d *Document) MethodName() string { return d.methodName }

// ManagementKeys returns the document's management keys in insertion
// order. The returned slice is a copy; mutating it does not affect
// the document.
func (d *Document) ManagementKeys() []*ManagementKey {
	out := make([]*ManagementKey, len(d.managementKeys))
	copy(out, d.managementKeys)
	return out
}

// DIDKeys returns the document's DID keys in insertion order.
func (d *Document) DIDKeys() []*DIDKey {
	out := make([]*DIDKey, len(d.didKeys))
	copy(out, d.didKeys)
	return out
}

// Services returns the document's services in insertion order.
func (d *Document) Services() []*Service {
	out := make([]*Service, len(d.services))
	copy(out, d.services)
	return out
}

func (d *Document) checkAliasFree(alias string) error {
	if d.aliases[normalizeAlias(alias)] {
		return newErr(KindAliasInUse, alias, nil)
	}
	return nil
}

func (d *Document) reserveAlias(alias string) {
	d.aliases[normalizeAlias(alias)] = true
}

func (d *Document) freeAlias(alias string) {
	delete(d.aliases, normalizeAlias(alias))
}

// AddManagementKey appends a management key with the given alias and
// priority. scheme defaults to EdDSA and controller defaults to the
// document's own id when zero-valued; pass publicKey/privateKey to
// supply existing key material (nil/nil generates a fresh pair).
func (d *Document) AddManagementKey(alias string, priority int, scheme Scheme, controller string, publicKey, privateKey []byte) (*ManagementKey, error) {
	if scheme == "" {
		scheme = EdDSA
	}
	if controller == "" {
		controller = d.id
	}
	if !validAlias(alias) {
		return nil, newErr(KindValidation, "alias", fmt.Errorf("alias %q must match [a-z0-9-]+", alias))
	}
	if err := d.checkAliasFree(alias); err != nil {
		return nil, err
	}
	key, err := newManagementKey(alias, priority, scheme, controller, d.methodName, publicKey, privateKey)
	if err != nil {
		return nil, err
	}
	d.managementKeys = append(d.managementKeys, key)
	d.reserveAlias(alias)
	return key, nil
}

// AddDIDKey appends a DID key with the given alias and purposes.
func (d *Document) AddDIDKey(alias string, purposes []Purpose, scheme Scheme, controller string, priorityRequirement *int, publicKey, privateKey []byte) (*DIDKey, error) {
	if scheme == "" {
		scheme = EdDSA
	}
	if controller == "" {
		controller = d.id
	}
	if !validAlias(alias) {
		return nil, newErr(KindValidation, "alias", fmt.Errorf("alias %q must match [a-z0-9-]+", alias))
	}
	if err := d.checkAliasFree(alias); err != nil {
		return nil, err
	}
	key, err := newDIDKey(alias, purposes, scheme, controller, d.methodName, priorityRequirement, publicKey, privateKey)
	if err != nil {
		return nil, err
	}
	d.didKeys = append(d.didKeys, key)
	d.reserveAlias(alias)
	return key, nil
}

// AddService appends a service with the given alias, type and
// endpoint.
func (d *Document) AddService(alias, serviceType, endpoint string, priorityRequirement *int) (*Service, error) {
	if !validAlias(alias) {
		return nil, newErr(KindValidation, "alias", fmt.Errorf("alias %q must match [a-z0-9-]+", alias))
	}
	if err := d.checkAliasFree(alias); err != nil {
		return nil, err
	}
	svc, err := newService(alias, serviceType, endpoint, priorityRequirement)
	if err != nil {
		return nil, err
	}
	d.services = append(d.services, svc)
	d.reserveAlias(alias)
	return svc, nil
}

// ManagementKeyBuilder appends a management key and returns the
// document itself, for chained construction. It panics if the
// underlying add fails; use AddManagementKey when you need the error.
func (d *Document) ManagementKeyBuilder(alias string, priority int, scheme Scheme, controller string) *Document {
	if _, err := d.AddManagementKey(alias, priority, scheme, controller, nil, nil); err != nil {
		panic(err)
	}
	return d
}

// DIDKeyBuilder appends a DID key and returns the document itself, for
// chained construction.
func (d *Document) DIDKeyBuilder(alias string, purposes []Purpose, scheme Scheme, controller string, priorityRequirement *int) *Document {
	if _, err := d.AddDIDKey(alias, purposes, scheme, controller, priorityRequirement, nil, nil); err != nil {
		panic(err)
	}
	return d
}

// ServiceBuilder appends a service and returns the document itself,
// for chained construction.
func (d *Document) ServiceBuilder(alias, serviceType, endpoint string, priorityRequirement *int) *Document {
	if _, err := d.AddService(alias, serviceType, endpoint, priorityRequirement); err != nil {
		panic(err)
	}
	return d
}

// Update returns an Updater snapshotting this document's current
// state. It fails no-management-key if the document has zero
// management keys.
func (d *Document) Update() (*Updater, error) {
	if len(d.managementKeys) == 0 {
		return nil, newErr(KindNoManagementKey, "", nil)
	}
	return newUpdater(d), nil
}

// clone returns a deep copy of d: key/service slices are re-allocated
// and their elements copied by value, but private-key byte slices are
// shared since keys are immutable once constructed (see DESIGN.md).
func (d *Document) clone() *Document {
	out := &Document{
		id:         d.id,
		nonce:      d.nonce,
		methodName: d.methodName,
		aliases:    make(map[string]bool, len(d.aliases)),
	}
	for alias := range d.aliases {
		out.aliases[alias] = true
	}
	out.managementKeys = make([]*ManagementKey, len(d.managementKeys))
	for i, k := range d.managementKeys {
		copied := *k
		out.managementKeys[i] = &copied
	}
	out.didKeys = make([]*DIDKey, len(d.didKeys))
	for i, k := range d.didKeys {
		copied := *k
		copied.purpose = append([]Purpose(nil), k.purpose...)
		out.didKeys[i] = &copied
	}
	out.services = make([]*Service, len(d.services))
	for i, s := range d.services {
		copied := *s
		out.services[i] = &copied
	}
	return out
}
