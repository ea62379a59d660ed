package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"declc/internal/ast"
	"declc/internal/diag"
	"declc/internal/dialect"
	"declc/internal/parser"
	"declc/internal/project"
	"declc/internal/sema"
	"declc/internal/source"
	"declc/internal/typedefs"
)

// settings is the per-run configuration after merging declc.toml with the
// persistent flags. Flags win over the config, the config over built-in
// defaults.
type settings struct {
	lang     dialect.ID
	max      int
	quiet    bool
	snapshot string
}

func resolveSettings(cmd *cobra.Command) (settings, error) {
	manifest, _, err := project.Discover(".")
	if err != nil {
		return settings{}, err
	}

	var s settings

	langFlag, err := cmd.Root().PersistentFlags().GetString("lang")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get lang flag: %w", err)
	}
	if langFlag != "" {
		s.lang, err = dialect.Parse(langFlag)
	} else {
		s.lang, err = manifest.Lang(dialect.C23)
	}
	if err != nil {
		return settings{}, err
	}

	s.max, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if s.max <= 0 {
		s.max = manifest.MaxDiagnostics()
	}

	s.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get quiet flag: %w", err)
	}

	s.snapshot = manifest.SnapshotPath()
	return s, nil
}

// analysis is the result of running one input through the parser and the
// checker: the statement trees plus everything needed to format output.
type analysis struct {
	FS    *source.FileSet
	Tree  *ast.Tree
	Bag   *diag.Bag
	Stmts []parser.Statement
	Lang  dialect.ID
	OK    bool
}

// analyzeFile loads path into a fresh file set and analyzes it.
func analyzeFile(path string, s settings) (*analysis, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return analyze(fs, id, s), nil
}

// analyzeText analyzes inline declaration text under a virtual file name.
func analyzeText(name string, text []byte, s settings) *analysis {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, text)
	return analyze(fs, id, s)
}

func analyze(fs *source.FileSet, id source.FileID, s settings) *analysis {
	bag := diag.NewBag(s.max)
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	reg := typedefs.New(ast.NewTree(64), s.lang)
	loadSnapshot(reg, s.snapshot, rep)

	p := parser.New(fs.Get(id), reg, parser.Options{Lang: s.lang, Reporter: rep})
	stmts, ok := p.Parse()
	for _, stmt := range stmts {
		if !sema.CheckList(p.Tree(), stmt.Roots, sema.Options{Lang: s.lang, Reporter: rep}) {
			ok = false
		}
	}
	bag.Sort()

	return &analysis{
		FS:    fs,
		Tree:  p.Tree(),
		Bag:   bag,
		Stmts: stmts,
		Lang:  s.lang,
		OK:    ok && !bag.HasErrors(),
	}
}

// loadSnapshot merges a typedef snapshot into reg when one is configured.
// A missing snapshot file is not an error.
func loadSnapshot(reg *typedefs.Registry, path string, rep diag.Reporter) {
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err == nil {
		err = reg.Load(f)
		f.Close()
	}
	if err != nil {
		diag.ReportError(rep, diag.IoSnapshot, source.Span{},
			fmt.Sprintf("failed to load typedef snapshot %s: %v", path, err)).Emit()
	}
}

// silentExit makes the command exit non-zero without cobra printing usage;
// diagnostics were already written.
func silentExit(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("")
}
