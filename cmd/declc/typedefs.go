package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"declc/internal/ast"
	"declc/internal/diag"
	"declc/internal/diagfmt"
	"declc/internal/parser"
	"declc/internal/sema"
	"declc/internal/source"
	"declc/internal/typedefs"
)

var typedefsCmd = &cobra.Command{
	Use:   "typedefs [flags] [<declaration>...]",
	Short: "List known typedef names or save a typedef snapshot",
	Long: `Typedefs lists the typedef names known for the selected dialect: the
standard names the dialect predefines, any names loaded from the configured
snapshot, and any names defined by the given declarations. With --save, the
user-defined names are written to a snapshot file instead.`,
	RunE: runTypedefs,
}

func init() {
	typedefsCmd.Flags().String("save", "", "write user-defined typedefs to this snapshot file")
}

func runTypedefs(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	savePath, err := cmd.Flags().GetString("save")
	if err != nil {
		return fmt.Errorf("failed to get save flag: %w", err)
	}

	bag := diag.NewBag(s.max)
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	reg := typedefs.New(ast.NewTree(64), s.lang)
	loadSnapshot(reg, s.snapshot, rep)

	fs := source.NewFileSet()
	ok := true
	if len(args) > 0 {
		ok = defineFrom(fs, []byte(strings.Join(args, " ")), reg, rep, s)
	} else if savePath != "" {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		ok = defineFrom(fs, text, reg, rep, s)
	}

	bag.Sort()
	if !s.quiet {
		on, err := useColor(cmd)
		if err != nil {
			return err
		}
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:    on,
			PathMode: diagfmt.PathModeAuto,
			Max:      s.max,
		})
	}
	if !ok || bag.HasErrors() {
		return silentExit(cmd)
	}

	if savePath != "" {
		f, err := os.Create(savePath)
		if err != nil {
			return fmt.Errorf("failed to create snapshot: %w", err)
		}
		defer f.Close()
		if err := reg.Save(f); err != nil {
			return err
		}
		return nil
	}

	out := cmd.OutOrStdout()
	for _, name := range reg.Names() {
		if reg.IsPredefined(name) {
			fmt.Fprintf(out, "%s (predefined)\n", name)
		} else {
			fmt.Fprintln(out, name)
		}
	}
	return nil
}

// defineFrom parses text against reg so typedef declarations in it register
// their names.
func defineFrom(fs *source.FileSet, text []byte, reg *typedefs.Registry, rep diag.Reporter, s settings) bool {
	id := fs.AddVirtual("<typedefs>", text)
	p := parser.New(fs.Get(id), reg, parser.Options{Lang: s.lang, Reporter: rep})
	stmts, ok := p.Parse()
	for _, stmt := range stmts {
		if !sema.CheckList(p.Tree(), stmt.Roots, sema.Options{Lang: s.lang, Reporter: rep}) {
			ok = false
		}
	}
	return ok
}
