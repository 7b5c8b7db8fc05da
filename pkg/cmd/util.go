package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigma-ir/sigma/pkg/sexpr"
)

// getUintFlag reads an expected uint flag, exiting the process on a
// programmer error (an undeclared or wrongly typed flag name).
func getUintFlag(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// getStringFlag reads an expected string flag.
func getStringFlag(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// readTermSource returns text to parse for a term argument: if arg begins
// with "@" the remainder is a filename to read, otherwise arg is the text
// itself.
func readTermSource(arg string) string {
	if len(arg) == 0 || arg[0] != '@' {
		return arg
	}

	bytes, err := os.ReadFile(arg[1:])
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return string(bytes)
}

// mustParse parses exactly one term from text, printing a syntax error and
// exiting on failure.
func mustParse(text string) sexpr.SExp {
	term, err := sexpr.Parse(text)
	if err != nil {
		printSyntaxError(err, text)
		os.Exit(2)
	}

	return term
}

// printSyntaxError reports a sexpr.SyntaxError with its offending line
// highlighted.
func printSyntaxError(err error, text string) {
	se, ok := err.(*sexpr.SyntaxError)
	if !ok {
		fmt.Println(err)
		return
	}

	line, offset, num := findEnclosingLine(se.Pos, text)
	fmt.Printf("%d: %s\n", num, se.Msg)
	fmt.Println(line)

	if col := se.Pos - offset; col > 0 {
		fmt.Print(string(make([]byte, col)))
	}

	fmt.Println("^")
}

func findEnclosingLine(index int, text string) (string, int, int) {
	num, start := 1, 0

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			if index <= i {
				return text[start:i], start, num
			}

			num++
			start = i + 1
		}
	}

	return text[start:], start, num
}
