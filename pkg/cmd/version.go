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
	"runtime/debug"

	"github.com/spf13/cobra"
)

// versionCmd reports the build version, the same fallback chain rootCmd's
// --version flag uses: a version baked in at build time, else the module
// version Go's build info recorded, else unknown.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of this executable",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print("sigma ")

		switch {
		case Version != "":
			fmt.Print(Version)
		default:
			if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Print(info.Main.Version)
			} else {
				fmt.Print("(unknown version)")
			}
		}

		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
