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
	"os"

	"github.com/spf13/cobra"

	"github.com/sage-x-project/didentry/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "didctl",
	Short: "didctl - build and update DID documents",
	Long: `didctl builds, mutates and serializes DID documents into chain entries.

This tool supports:
- Creating a document and emitting its create entry
- Adding and revoking management keys, DID keys and services
- Emitting the signed update entry for a set of pending changes

didctl never submits an entry to a chain, resolves a DID, or persists a
document: it only produces the bytes a separate transport component
would publish.`,
}

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the didctl version and entry-protocol versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionJSON {
			out, err := version.JSON()
			if err != nil {
				return fmt.Errorf("marshal version info: %w", err)
			}
			fmt.Println(out)
			return nil
		}
		fmt.Println(version.String())
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "print version info as JSON, including schema and method-spec versions")
	rootCmd.AddCommand(versionCmd)
}
