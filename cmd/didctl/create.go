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
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sage-x-project/didentry"
	"github.com/sage-x-project/didentry/internal/logger"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a document and print its create entry",
	Long: `Create builds a new Document from the given management keys, DID keys
and services, and prints the resulting create entry as JSON on stdout.

Every key is generated fresh; didctl has no way to read private key
material back out of a Document, by the library's own design, so only
the public keys are logged, to stderr, tagged with a correlation id.`,
	RunE: runCreate,
}

var (
	createMethodName     string
	createManagementKeys []string
	createDIDKeys        []string
	createServices       []string
)

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createMethodName, "method", didentry.DefaultMethodName, "DID method name prefix")
	createCmd.Flags().StringArrayVar(&createManagementKeys, "management-key", nil, "alias:priority[:scheme], repeatable")
	createCmd.Flags().StringArrayVar(&createDIDKeys, "did-key", nil, "alias:purposes[:priorityRequirement][:scheme], repeatable")
	createCmd.Flags().StringArrayVar(&createServices, "service", nil, "alias|type|endpoint[|priorityRequirement], repeatable")

	createCmd.MarkFlagRequired("management-key")
}

type createOutput struct {
	ID      string          `json:"id"`
	Nonce   string          `json:"nonce"`
	ExtIDs  []string        `json:"extIds"`
	Content json.RawMessage `json:"content"`
}

func runCreate(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger(os.Stderr, logger.InfoLevel).WithFields(logger.String("correlation_id", uuid.NewString()))

	d := didentry.New(didentry.WithMethodName(createMethodName))

	for _, raw := range createManagementKeys {
		mk, err := parseManagementKeyFlag(raw)
		if err != nil {
			return err
		}
		key, err := d.AddManagementKey(mk.alias, mk.priority, mk.scheme, "", nil, nil)
		if err != nil {
			return logFailure(log, fmt.Sprintf("management key %q", mk.alias), err)
		}
		reportGeneratedKey(log, key.Alias(), key.PublicKey())
	}

	for _, raw := range createDIDKeys {
		dk, err := parseDIDKeyFlag(raw)
		if err != nil {
			return err
		}
		key, err := d.AddDIDKey(dk.alias, dk.purposes, dk.scheme, "", dk.priorityRequirement, nil, nil)
		if err != nil {
			return logFailure(log, fmt.Sprintf("did key %q", dk.alias), err)
		}
		reportGeneratedKey(log, key.Alias(), key.PublicKey())
	}

	for _, raw := range createServices {
		svc, err := parseServiceFlag(raw)
		if err != nil {
			return err
		}
		if _, err := d.AddService(svc.alias, svc.serviceType, svc.endpoint, svc.priorityRequirement); err != nil {
			return logFailure(log, fmt.Sprintf("service %q", svc.alias), err)
		}
	}

	entry, err := d.ExportEntryData()
	if err != nil {
		return logFailure(log, "export create entry", err)
	}

	out := createOutput{
		ID:      d.ID(),
		Nonce:   d.Nonce(),
		Content: entry.Content,
	}
	for _, extID := range entry.ExtIDs {
		out.ExtIDs = append(out.ExtIDs, string(extID))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func reportGeneratedKey(log logger.Logger, alias string, public []byte) {
	log.Info("generated key", logger.String("alias", alias), logger.String("publicKey", base64.StdEncoding.EncodeToString(public)))
}
