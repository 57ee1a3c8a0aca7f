// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var ringsCmd = &cobra.Command{
	Use:   "rings",
	Short: "list the available coefficient rings.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listRings(cmd.OutOrStdout())
	},
}

func listRings(out io.Writer) {
	for _, r := range Rings {
		fmt.Fprintf(out, "%-10s %s\n", r.Name, r.Description)
	}
}

func init() {
	rootCmd.AddCommand(ringsCmd)
}
