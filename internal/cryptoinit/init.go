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

// Package cryptoinit exists only to pull in crypto/keys for its
// side-effecting init(), which registers each scheme's Provider.
// Importing it where package didentry is imported (see doc.go)
// guarantees the registry is populated before any Document is built.
package cryptoinit

import (
	_ "github.com/sage-x-project/didentry/crypto/keys" // registers EdDSA, ECDSA and RSA providers
)
