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

// Package cmd wires the sigma CLI's cobra commands: eval, print, alpha and
// version, laid out the way the teacher lays out its own pkg/cmd — a shared
// rootCmd carrying persistent flags, one file per subcommand.
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via
// "go install".
var Version string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sigma",
	Short: "A framework for universal algebra over a fixed arithmetic signature.",
	Long: "sigma builds terms over a hash-consed term DAG and evaluates them " +
		"under any interpretation (float, interval, or the term DAG itself), " +
		"resolving recursive variable definitions by fixpoint iteration.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("sigma ")

			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}

			fmt.Println()

			return
		}

		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it. It is
// called once by main.main.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Uint("max-iter", 10000, "bound on fixpoint iteration per strongly connected component")

	cobra.OnInitialize(func() {
		if GetFlag(rootCmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	})
}

// GetFlag reads a named bool flag, exiting the process if it was not
// declared (a programmer error, not a user one).
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}
