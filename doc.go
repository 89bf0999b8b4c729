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

// Package didentry constructs, mutates and serializes DID documents
// destined for publication as entries on an append-only content-
// addressed chain. It manages management keys, DID keys and services
// under identity, cryptographic and authorization invariants, and
// emits two kinds of chain entries: a create entry that establishes a
// DID, and an update entry that records a signed delta against a
// previously published state.
//
// Key generation, signing, verification and wire encoding are
// delegated to the crypto sub-package (a collaborator, not a concern
// of this package). Wire submission, DID resolution and persistence
// are out of scope: this package produces byte-level entries only.
package didentry

import (
	_ "github.com/sage-x-project/didentry/internal/cryptoinit" // registers crypto providers
)

// Version is the module's semantic version.
const Version = "0.1.0"

const (
	// DefaultMethodName is the DID method name prefix used when a
	// Document is not configured with WithMethodName.
	DefaultMethodName = "did:factom"

	// SchemaVersion is the entry schema version string written to
	// every entry's ext_ids.
	SchemaVersion = "1.0.0"

	// MethodSpecVersion is the method specification version recorded
	// in a create entry's content as didMethodVersion.
	MethodSpecVersion = "0.2.0"

	// MaxEntrySize is the hard cap, in bytes, on a serialized entry's
	// total size (sum of every ext_id plus the content payload).
	MaxEntrySize = 10240

	// NonceSize is the length, in bytes, of a Document's identity
	// nonce before hex encoding.
	NonceSize = 32
)
