package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"declc/internal/diagfmt"
	"declc/internal/english"
)

var explainCmd = &cobra.Command{
	Use:   "explain [flags] <declaration>...",
	Short: "Explain a declaration in plain English",
	Long: `Explain checks the given declaration and, when it is valid, renders each
declarator as an English sentence. Arguments are joined into one input;
with no arguments, input is read from stdin.`,
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().Bool("notes", false, "include diagnostic notes in output")
	explainCmd.Flags().Bool("fixes", false, "include fix suggestions in output")
}

func runExplain(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	opts, err := prettyOpts(cmd, s)
	if err != nil {
		return err
	}

	var text []byte
	if len(args) == 0 {
		text, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		text = []byte(strings.Join(args, " "))
	}

	r := analyzeText("<explain>", text, s)
	if !s.quiet {
		diagfmt.Pretty(os.Stderr, r.Bag, r.FS, opts)
	}
	if !r.OK {
		return silentExit(cmd)
	}

	out := cmd.OutOrStdout()
	for _, stmt := range r.Stmts {
		for _, root := range stmt.Roots {
			fmt.Fprintln(out, english.Render(r.Tree, root, r.Lang))
		}
	}
	return nil
}
