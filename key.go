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
	"fmt"

	sagecrypto "github.com/sage-x-project/didentry/crypto"
)

// Scheme is a supported signature scheme, re-exported from the crypto
// collaborator so callers never need to import it directly.
type Scheme = sagecrypto.KeyType

const (
	EdDSA Scheme = sagecrypto.KeyTypeEdDSA
	ECDSA Scheme = sagecrypto.KeyTypeECDSA
	RSA   Scheme = sagecrypto.KeyTypeRSA
)

// Purpose is a DID key's declared use.
type Purpose string

const (
	PurposePublicKey      Purpose = "publicKey"
	PurposeAuthentication Purpose = "authentication"
)

func wireTypeName(scheme Scheme) (string, error) {
	switch scheme {
	case EdDSA:
		return "Ed25519VerificationKey", nil
	case ECDSA:
		return "ECDSASecp256k1VerificationKey", nil
	case RSA:
		return "RSAVerificationKey", nil
	default:
		return "", newErr(KindValidation, "scheme", fmt.Errorf("unknown scheme %q", scheme))
	}
}

// abstractKey holds the fields common to ManagementKey and DIDKey.
// It is never exposed as a standalone type: Go's "refuse to implement
// equality across subtype boundaries" treatment of §9's not-comparable
// rule means ManagementKey and DIDKey only ever compare against their
// own kind.
type abstractKey struct {
	alias               string
	scheme              Scheme
	controller          string
	priorityRequirement *int
	publicKey           []byte
	privateKey          []byte // nil: verification-only
}

// id returns the fully qualified "<did>#<alias>" fragment identifier.
func (k *abstractKey) id(didID string) string {
	return didID + "#" + k.alias
}

// Alias returns the key's alias.
func (k *abstractKey) Alias() string { return k.alias }

// Scheme returns the key's signature scheme.
func (k *abstractKey) Scheme() Scheme { return k.scheme }

// Controller returns the DID that controls this key.
func (k *abstractKey) Controller() string { return k.controller }

// PriorityRequirement returns the key's priority requirement and
// whether one is set.
func (k *abstractKey) PriorityRequirement() (int, bool) {
	if k.priorityRequirement == nil {
		return 0, false
	}
	return *k.priorityRequirement, true
}

// PublicKey returns the raw public key bytes.
func (k *abstractKey) PublicKey() []byte { return bytes.Clone(k.publicKey) }

// HasPrivateKey reports whether this key can sign.
func (k *abstractKey) HasPrivateKey() bool { return k.privateKey != nil }

// Sign signs message with this key's private key.
func (k *abstractKey) Sign(message []byte) ([]byte, error) {
	if k.privateKey == nil {
		return nil, newErr(KindNoPrivateKey, k.alias, nil)
	}
	provider, err := sagecrypto.ProviderFor(k.scheme)
	if err != nil {
		return nil, newErr(KindValidation, "scheme", err)
	}
	sig, err := provider.Sign(k.privateKey, message)
	if err != nil {
		return nil, newErr(KindKeyFormat, k.alias, err)
	}
	return sig, nil
}

// Verify reports whether signature is valid over message under this
// key's public key.
func (k *abstractKey) Verify(message, signature []byte) (bool, error) {
	provider, err := sagecrypto.ProviderFor(k.scheme)
	if err != nil {
		return false, newErr(KindValidation, "scheme", err)
	}
	ok, err := provider.Verify(k.publicKey, message, signature)
	if err != nil {
		return false, newErr(KindKeyFormat, k.alias, err)
	}
	return ok, nil
}

// resolveKeyMaterial resolves the public/private material for a new key
// construction: generating a fresh pair if neither is supplied,
// deriving the public key if only a private key is supplied (and
// asserting any supplied public key matches), or accepting a
// public-only, verification-only key.
func resolveKeyMaterial(scheme Scheme, publicKey, privateKey []byte) (pub, priv []byte, err error) {
	provider, err := sagecrypto.ProviderFor(scheme)
	if err != nil {
		return nil, nil, newErr(KindValidation, "scheme", err)
	}

	switch {
	case privateKey == nil && publicKey == nil:
		priv, pub, err := provider.Generate()
		if err != nil {
			return nil, nil, newErr(KindKeyFormat, "privateKey", err)
		}
		return pub, priv, nil

	case privateKey != nil:
		if err := provider.ValidatePrivateFormat(privateKey); err != nil {
			return nil, nil, newErr(KindKeyFormat, "privateKey", err)
		}
		derived, err := provider.DerivePublic(privateKey)
		if err != nil {
			return nil, nil, newErr(KindKeyFormat, "privateKey", err)
		}
		if publicKey != nil && !bytes.Equal(derived, publicKey) {
			return nil, nil, newErr(KindKeyMismatch, "publicKey", nil)
		}
		return derived, privateKey, nil

	default: // publicKey only: verification-only key
		return publicKey, nil, nil
	}
}

func newAbstractKey(alias string, scheme Scheme, controller string, methodName string, priorityRequirement *int, publicKey, privateKey []byte) (abstractKey, error) {
	if !validAlias(alias) {
		return abstractKey{}, newErr(KindValidation, "alias", fmt.Errorf("alias %q must match [a-z0-9-]+", alias))
	}
	if err := parseController(controller, methodName, "controller"); err != nil {
		return abstractKey{}, err
	}
	if priorityRequirement != nil && *priorityRequirement < 0 {
		return abstractKey{}, newErr(KindValidation, "priorityRequirement", fmt.Errorf("priorityRequirement must be non-negative"))
	}

	pub, priv, err := resolveKeyMaterial(scheme, publicKey, privateKey)
	if err != nil {
		return abstractKey{}, err
	}

	return abstractKey{
		alias:               normalizeAlias(alias),
		scheme:              scheme,
		controller:          controller,
		priorityRequirement: priorityRequirement,
		publicKey:           pub,
		privateKey:          priv,
	}, nil
}

// ManagementKey is a key authorized to sign updates to a document; its
// Priority governs how much authority it carries (0 is highest).
type ManagementKey struct {
	abstractKey
	priority int
}

// Priority returns the management key's priority.
func (k *ManagementKey) Priority() int { return k.priority }

// Equal reports whether k and other have identical alias, scheme,
// controller, priority and public key. ManagementKey
// intentionally has no Equal method comparable against DIDKey or
// Service: cross-kind comparison is not expressible through this API,
// which is this module's static-typing treatment of the source's
// three-valued "not-comparable" equality (see DESIGN.md).
func (k *ManagementKey) Equal(other *ManagementKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.alias == other.alias &&
		k.scheme == other.scheme &&
		k.controller == other.controller &&
		k.priority == other.priority &&
		bytes.Equal(k.publicKey, other.publicKey)
}

func newManagementKey(alias string, priority int, scheme Scheme, controller, methodName string, publicKey, privateKey []byte) (*ManagementKey, error) {
	if priority < 0 {
		return nil, newErr(KindValidation, "priority", fmt.Errorf("priority must be non-negative"))
	}
	base, err := newAbstractKey(alias, scheme, controller, methodName, nil, publicKey, privateKey)
	if err != nil {
		return nil, err
	}
	return &ManagementKey{abstractKey: base, priority: priority}, nil
}

func (k *ManagementKey) fragment(didID string) (managementKeyFragment, error) {
	wireType, err := wireTypeName(k.scheme)
	if err != nil {
		return managementKeyFragment{}, err
	}
	frag := managementKeyFragment{
		ID:         k.id(didID),
		Type:       wireType,
		Controller: k.controller,
		Priority:   k.priority,
	}
	if err := frag.setPublicKey(k.scheme, k.publicKey); err != nil {
		return managementKeyFragment{}, err
	}
	return frag, nil
}

// DIDKey is a verification key published in the document for external
// use, carrying one or more purposes.
type DIDKey struct {
	abstractKey
	purpose []Purpose
}

// Purpose returns the DID key's purposes, in insertion order.
func (k *DIDKey) Purpose() []Purpose {
	out := make([]Purpose, len(k.purpose))
	copy(out, k.purpose)
	return out
}

// Equal reports whether k and other have identical alias, scheme,
// controller, priority-requirement, purposes and public key.
func (k *DIDKey) Equal(other *DIDKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	if k.alias != other.alias || k.scheme != other.scheme || k.controller != other.controller {
		return false
	}
	if !bytes.Equal(k.publicKey, other.publicKey) {
		return false
	}
	if (k.priorityRequirement == nil) != (other.priorityRequirement == nil) {
		return false
	}
	if k.priorityRequirement != nil && *k.priorityRequirement != *other.priorityRequirement {
		return false
	}
	if len(k.purpose) != len(other.purpose) {
		return false
	}
	for i := range k.purpose {
		if k.purpose[i] != other.purpose[i] {
			return false
		}
	}
	return true
}

// normalizePurposes discards duplicates while preserving insertion
// order, and rejects an empty result.
func normalizePurposes(purposes []Purpose) ([]Purpose, error) {
	seen := make(map[Purpose]bool, len(purposes))
	out := make([]Purpose, 0, len(purposes))
	for _, p := range purposes {
		if p != PurposePublicKey && p != PurposeAuthentication {
			return nil, newErr(KindValidation, "purpose", fmt.Errorf("unknown purpose %q", p))
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, newErr(KindValidation, "purpose", fmt.Errorf("purpose must be non-empty"))
	}
	return out, nil
}

func newDIDKey(alias string, purposes []Purpose, scheme Scheme, controller, methodName string, priorityRequirement *int, publicKey, privateKey []byte) (*DIDKey, error) {
	normalized, err := normalizePurposes(purposes)
	if err != nil {
		return nil, err
	}
	base, err := newAbstractKey(alias, scheme, controller, methodName, priorityRequirement, publicKey, privateKey)
	if err != nil {
		return nil, err
	}
	return &DIDKey{abstractKey: base, purpose: normalized}, nil
}

func (k *DIDKey) fragment(didID string) (didKeyFragment, error) {
	wireType, err := wireTypeName(k.scheme)
	if err != nil {
		return didKeyFragment{}, err
	}
	purposeStrings := make([]string, len(k.purpose))
	for i, p := range k.purpose {
		purposeStrings[i] = string(p)
	}
	frag := didKeyFragment{
		ID:                  k.id(didID),
		Type:                wireType,
		Controller:          k.controller,
		Purpose:             purposeStrings,
		PriorityRequirement: k.priorityRequirement,
	}
	if err := frag.setPublicKey(k.scheme, k.publicKey); err != nil {
		return didKeyFragment{}, err
	}
	return frag, nil
}
