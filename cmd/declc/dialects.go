package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"declc/internal/dialect"
)

var dialectsCmd = &cobra.Command{
	Use:   "dialects [flags]",
	Short: "List supported dialects",
	Long:  `List every dialect declc can check against, optionally with a feature support matrix.`,
	Args:  cobra.NoArgs,
	RunE:  runDialects,
}

func init() {
	dialectsCmd.Flags().Bool("features", false, "print a feature support matrix")
}

// featureRows is the subset of dialect-sensitive constructs worth showing in
// the matrix; the full set lives in the dialect package.
var featureRows = []struct {
	name  string
	langs dialect.ID
}{
	{"K&R function declarations", dialect.KnRFunctions},
	{"implicit int", dialect.ImplicitInt},
	{"variable length arrays", dialect.VLAs},
	{"long long", dialect.LongLong},
	{"_BitInt", dialect.BitInt},
	{"_Atomic", dialect.Atomic},
	{"restrict", dialect.Restrict},
	{"thread-local storage", dialect.ThreadLocal},
	{"references", dialect.References},
	{"rvalue references", dialect.RvalueReferences},
	{"pointers to member", dialect.PointersToMember},
	{"lambdas", dialect.Lambdas},
	{"structured bindings", dialect.StructuredBindings},
	{"user-defined literals", dialect.UserDefinedLiterals},
	{"constexpr", dialect.Constexpr},
	{"consteval", dialect.Consteval},
	{"concepts", dialect.Concepts},
	{"alignment specifiers", dialect.Alignment},
}

func runDialects(cmd *cobra.Command, args []string) error {
	features, err := cmd.Flags().GetBool("features")
	if err != nil {
		return fmt.Errorf("failed to get features flag: %w", err)
	}

	out := cmd.OutOrStdout()
	names := dialect.List()

	if !features {
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	fmt.Fprintf(out, "%-28s", "")
	for _, name := range names {
		fmt.Fprintf(out, " %-6s", name)
	}
	fmt.Fprintln(out)

	for _, row := range featureRows {
		fmt.Fprintf(out, "%-28s", row.name)
		for _, name := range names {
			id, err := dialect.Parse(name)
			if err != nil {
				return err
			}
			mark := "."
			if row.langs.Intersects(id) {
				mark = "x"
			}
			fmt.Fprintf(out, " %-6s", mark)
		}
		fmt.Fprintln(out)
	}
	return nil
}
