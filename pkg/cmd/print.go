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
	"os"

	"github.com/spf13/cobra"

	"github.com/sigma-ir/sigma/pkg/algebra"
	"github.com/sigma-ir/sigma/pkg/printer"
	"github.com/sigma-ir/sigma/pkg/sexpr"
)

// printCmd parses a term and pretty-prints it as precedence-aware infix
// notation.
var printCmd = &cobra.Command{
	Use:   "print <term>",
	Short: "Pretty-print a term as infix notation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		b := algebra.NewBuilder()
		t := sexpr.NewTranslator(b)

		s := mustParse(readTermSource(args[0]))

		node, err := t.Translate(s)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		fmt.Println(printer.Print(node))
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
