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
	sagecrypto "github.com/sage-x-project/didentry/crypto"
)

// These fragment types are the canonical JSON shapes for document
// elements. Field order is the struct's declaration order, which
// encoding/json preserves; this is how canonical field ordering is
// achieved without a hand-rolled encoder (see SPEC_FULL.md §4.6).

type managementKeyFragment struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Controller      string `json:"controller"`
	PublicKeyBase58 string `json:"publicKeyBase58,omitempty"`
	PublicKeyPem    string `json:"publicKeyPem,omitempty"`
	Priority        int    `json:"priority"`
}

type didKeyFragment struct {
	ID                  string   `json:"id"`
	Type                string   `json:"type"`
	Controller          string   `json:"controller"`
	PublicKeyBase58     string   `json:"publicKeyBase58,omitempty"`
	PublicKeyPem        string   `json:"publicKeyPem,omitempty"`
	Purpose             []string `json:"purpose"`
	PriorityRequirement *int     `json:"priorityRequirement,omitempty"`
}

type serviceFragment struct {
	ID                  string `json:"id"`
	Type                string `json:"type"`
	ServiceEndpoint     string `json:"serviceEndpoint"`
	PriorityRequirement *int   `json:"priorityRequirement,omitempty"`
}

// revokedFragment is the bare-alias wire shape used for revocations in
// update entries: {"id": "<alias>"}, not the "<did>#<alias>" form.
type revokedFragment struct {
	ID string `json:"id"`
}

func encodePublicKey(scheme Scheme, public []byte) ([]byte, error) {
	provider, err := sagecrypto.ProviderFor(scheme)
	if err != nil {
		return nil, newErr(KindValidation, "scheme", err)
	}
	wire, err := provider.EncodePublic(public)
	if err != nil {
		return nil, newErr(KindKeyFormat, "publicKey", err)
	}
	return wire, nil
}

func (f *managementKeyFragment) setPublicKey(scheme Scheme, public []byte) error {
	wire, err := encodePublicKey(scheme, public)
	if err != nil {
		return err
	}
	format, err := scheme.WireFormat()
	if err != nil {
		return newErr(KindValidation, "scheme", err)
	}
	switch format {
	case sagecrypto.KeyFormatBase58:
		f.PublicKeyBase58 = string(wire)
	case sagecrypto.KeyFormatPEM:
		f.PublicKeyPem = string(wire)
	}
	return nil
}

func (f *didKeyFragment) setPublicKey(scheme Scheme, public []byte) error {
	wire, err := encodePublicKey(scheme, public)
	if err != nil {
		return err
	}
	format, err := scheme.WireFormat()
	if err != nil {
		return newErr(KindValidation, "scheme", err)
	}
	switch format {
	case sagecrypto.KeyFormatBase58:
		f.PublicKeyBase58 = string(wire)
	case sagecrypto.KeyFormatPEM:
		f.PublicKeyPem = string(wire)
	}
	return nil
}
