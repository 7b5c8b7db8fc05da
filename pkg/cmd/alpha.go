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
	"github.com/sigma-ir/sigma/pkg/alpha"
	"github.com/sigma-ir/sigma/pkg/sexpr"
)

// alphaCmd parses two terms, sharing one Builder so identical subterms
// intern to the same node, and reports whether they are α-equivalent.
var alphaCmd = &cobra.Command{
	Use:   "alpha <term-a> <term-b>",
	Short: "Report whether two terms are alpha-equivalent",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		b := algebra.NewBuilder()

		// Separate translators: each term gets its own variable namespace,
		// since a shared name in both arguments is not meant to denote a
		// shared variable, only the translation of a textually identical
		// name within one argument is.
		a, err := sexpr.NewTranslator(b).Translate(mustParse(readTermSource(args[0])))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		c, err := sexpr.NewTranslator(b).Translate(mustParse(readTermSource(args[1])))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		if alpha.Equivalent(a, c) {
			fmt.Println("equivalent")
		} else {
			fmt.Println("not equivalent")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(alphaCmd)
}
