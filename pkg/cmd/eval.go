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
	"github.com/sigma-ir/sigma/pkg/algebra/identity"
	"github.com/sigma-ir/sigma/pkg/eval"
	"github.com/sigma-ir/sigma/pkg/interp/floatalg"
	"github.com/sigma-ir/sigma/pkg/interp/intervalalg"
	"github.com/sigma-ir/sigma/pkg/printer"
	"github.com/sigma-ir/sigma/pkg/sexpr"
)

// narrowEpsilon is the width below which an interval result is reported as
// narrow enough to trust (see Interval.IsNarrow).
const narrowEpsilon = 1e-6

// evalCmd parses a term and evaluates it under the chosen interpretation.
var evalCmd = &cobra.Command{
	Use:   "eval <term>",
	Short: "Evaluate a term under a given interpretation",
	Long: "eval parses a term written in sigma's s-expression surface syntax " +
		"and evaluates it, resolving any recursive variable definitions by " +
		"fixpoint iteration bounded by --max-iter.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		b := algebra.NewBuilder()
		t := sexpr.NewTranslator(b)

		s := mustParse(readTermSource(args[0]))

		node, err := t.Translate(s)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		opts := []eval.Option{eval.WithMaxIterations(getUintFlag(rootCmd, "max-iter"))}
		format := getStringFlag(cmd, "format")

		var out string

		switch format {
		case "float":
			v, err := eval.Eval(node, floatalg.Float64{}, opts...)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			out = fmt.Sprintf("%g", v)

		case "interval":
			v, err := eval.Eval(node, intervalalg.Algebra{}, opts...)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			switch {
			case v.IsEmpty():
				out = "∅"
			case v.IsNarrow(narrowEpsilon):
				out = fmt.Sprintf("[%g, %g] (narrow)", v.Lo, v.Hi)
			default:
				out = fmt.Sprintf("[%g, %g]", v.Lo, v.Hi)
			}

		case "tree":
			v, err := eval.Eval(node, identity.Of(b), opts...)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			out = printer.Print(v)

		default:
			fmt.Printf("unknown format %q (want float, interval or tree)\n", format)
			os.Exit(2)
		}

		fmt.Println(out)
	},
}

func init() {
	evalCmd.Flags().String("format", "float", "evaluation target: float, interval or tree")
	rootCmd.AddCommand(evalCmd)
}
