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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sage-x-project/didentry"
)

// parseScheme maps a CLI scheme name to a didentry.Scheme, defaulting
// to EdDSA when name is empty.
func parseScheme(name string) (didentry.Scheme, error) {
	switch strings.ToLower(name) {
	case "", "eddsa", "ed25519":
		return didentry.EdDSA, nil
	case "ecdsa", "secp256k1":
		return didentry.ECDSA, nil
	case "rsa":
		return didentry.RSA, nil
	default:
		return "", fmt.Errorf("unsupported scheme %q (want eddsa, ecdsa or rsa)", name)
	}
}

// parsedManagementKey is a --management-key flag value of the form
// "alias:priority[:scheme]".
type parsedManagementKey struct {
	alias    string
	priority int
	scheme   didentry.Scheme
}

func parseManagementKeyFlag(s string) (parsedManagementKey, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return parsedManagementKey{}, fmt.Errorf("--management-key %q: want alias:priority[:scheme]", s)
	}
	priority, err := strconv.Atoi(parts[1])
	if err != nil {
		return parsedManagementKey{}, fmt.Errorf("--management-key %q: priority must be an integer", s)
	}
	schemeName := ""
	if len(parts) > 2 {
		schemeName = parts[2]
	}
	scheme, err := parseScheme(schemeName)
	if err != nil {
		return parsedManagementKey{}, fmt.Errorf("--management-key %q: %w", s, err)
	}
	return parsedManagementKey{alias: parts[0], priority: priority, scheme: scheme}, nil
}

// parsedDIDKey is a --did-key flag value of the form
// "alias:purpose1,purpose2[:priorityRequirement][:scheme]".
type parsedDIDKey struct {
	alias               string
	purposes            []didentry.Purpose
	priorityRequirement *int
	scheme              didentry.Scheme
}

func parseDIDKeyFlag(s string) (parsedDIDKey, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return parsedDIDKey{}, fmt.Errorf("--did-key %q: want alias:purposes[:priorityRequirement][:scheme]", s)
	}
	var purposes []didentry.Purpose
	for _, p := range strings.Split(parts[1], ",") {
		purposes = append(purposes, didentry.Purpose(p))
	}

	var priorityRequirement *int
	schemeName := ""
	if len(parts) > 2 && parts[2] != "" {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return parsedDIDKey{}, fmt.Errorf("--did-key %q: priorityRequirement must be an integer", s)
		}
		priorityRequirement = &n
	}
	if len(parts) > 3 {
		schemeName = parts[3]
	}
	scheme, err := parseScheme(schemeName)
	if err != nil {
		return parsedDIDKey{}, fmt.Errorf("--did-key %q: %w", s, err)
	}
	return parsedDIDKey{alias: parts[0], purposes: purposes, priorityRequirement: priorityRequirement, scheme: scheme}, nil
}

// parsedService is a --service flag value of the form
// "alias|type|endpoint[|priorityRequirement]". The pipe delimiter
// keeps the endpoint's own colons and slashes unambiguous.
type parsedService struct {
	alias               string
	serviceType         string
	endpoint            string
	priorityRequirement *int
}

func parseServiceFlag(s string) (parsedService, error) {
	parts := strings.Split(s, "|")
	if len(parts) < 3 {
		return parsedService{}, fmt.Errorf("--service %q: want alias|type|endpoint[|priorityRequirement]", s)
	}
	var priorityRequirement *int
	if len(parts) > 3 && parts[3] != "" {
		n, err := strconv.Atoi(parts[3])
		if err != nil {
			return parsedService{}, fmt.Errorf("--service %q: priorityRequirement must be an integer", s)
		}
		priorityRequirement = &n
	}
	return parsedService{alias: parts[0], serviceType: parts[1], endpoint: parts[2], priorityRequirement: priorityRequirement}, nil
}
