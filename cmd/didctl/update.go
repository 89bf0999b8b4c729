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
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sage-x-project/didentry"
	"github.com/sage-x-project/didentry/internal/logger"
)

// updateCmd demonstrates the differential update flow against a
// document built in the same process: it is a worked example of the
// Updater API, not a tool for updating a previously published DID
// (that would require resolving prior state, out of scope here).
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Build a document, apply adds/revokes, and print the update entry",
	Long: `Update builds a fresh document from --management-key (as in create),
applies the requested additions and revocations, and prints the
resulting update entry as JSON. Prints null if nothing was added or
revoked.`,
	RunE: runUpdate,
}

var (
	updateMethodName       string
	updateManagementKeys   []string
	updateAddManagementKey []string
	updateAddDIDKey        []string
	updateAddService       []string
	updateRevokeAlias      []string
)

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&updateMethodName, "method", didentry.DefaultMethodName, "DID method name prefix")
	updateCmd.Flags().StringArrayVar(&updateManagementKeys, "management-key", nil, "alias:priority[:scheme] seeding the starting document, repeatable")
	updateCmd.Flags().StringArrayVar(&updateAddManagementKey, "add-management-key", nil, "alias:priority[:scheme] to add, repeatable")
	updateCmd.Flags().StringArrayVar(&updateAddDIDKey, "add-did-key", nil, "alias:purposes[:priorityRequirement][:scheme] to add, repeatable")
	updateCmd.Flags().StringArrayVar(&updateAddService, "add-service", nil, "alias|type|endpoint[|priorityRequirement] to add, repeatable")
	updateCmd.Flags().StringArrayVar(&updateRevokeAlias, "revoke", nil, "alias to revoke (management key, DID key or service), repeatable")

	updateCmd.MarkFlagRequired("management-key")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger(os.Stderr, logger.InfoLevel).WithFields(logger.String("correlation_id", uuid.NewString()))

	d := didentry.New(didentry.WithMethodName(updateMethodName))
	for _, raw := range updateManagementKeys {
		mk, err := parseManagementKeyFlag(raw)
		if err != nil {
			return err
		}
		if _, err := d.AddManagementKey(mk.alias, mk.priority, mk.scheme, "", nil, nil); err != nil {
			return logFailure(log, fmt.Sprintf("management key %q", mk.alias), err)
		}
	}

	updater, err := d.Update()
	if err != nil {
		return logFailure(log, "start update", err)
	}

	for _, raw := range updateAddManagementKey {
		mk, err := parseManagementKeyFlag(raw)
		if err != nil {
			return err
		}
		if _, err := updater.AddManagementKey(mk.alias, mk.priority, mk.scheme, "", nil, nil); err != nil {
			return logFailure(log, fmt.Sprintf("add management key %q", mk.alias), err)
		}
	}
	for _, raw := range updateAddDIDKey {
		dk, err := parseDIDKeyFlag(raw)
		if err != nil {
			return err
		}
		if _, err := updater.AddDIDKey(dk.alias, dk.purposes, dk.scheme, "", dk.priorityRequirement, nil, nil); err != nil {
			return logFailure(log, fmt.Sprintf("add did key %q", dk.alias), err)
		}
	}
	for _, raw := range updateAddService {
		svc, err := parseServiceFlag(raw)
		if err != nil {
			return err
		}
		if _, err := updater.AddService(svc.alias, svc.serviceType, svc.endpoint, svc.priorityRequirement); err != nil {
			return logFailure(log, fmt.Sprintf("add service %q", svc.alias), err)
		}
	}
	for _, alias := range updateRevokeAlias {
		if err := revokeByAlias(updater, alias); err != nil {
			return logFailure(log, fmt.Sprintf("revoke %q", alias), err)
		}
	}

	entry, err := updater.ExportEntryData()
	if err != nil {
		return logFailure(log, "export update entry", err)
	}
	if entry == nil {
		fmt.Fprintln(os.Stdout, "null")
		return nil
	}

	out := createOutput{ID: d.ID(), Nonce: d.Nonce(), Content: entry.Content}
	for _, extID := range entry.ExtIDs {
		out.ExtIDs = append(out.ExtIDs, string(extID))
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// revokeByAlias tries each element kind in turn, since --revoke does
// not ask the caller which kind the alias names.
func revokeByAlias(updater *didentry.Updater, alias string) error {
	if err := updater.RevokeManagementKey(alias); !didentry.IsKind(err, didentry.KindUnknownAlias) {
		return err
	}
	if err := updater.RevokeDIDKey(alias); !didentry.IsKind(err, didentry.KindUnknownAlias) {
		return err
	}
	return updater.RevokeService(alias)
}
