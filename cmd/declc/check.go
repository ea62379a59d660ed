package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"declc/internal/diag"
	"declc/internal/diagfmt"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [<declaration>|<file>...]",
	Short: "Check declarations against a dialect",
	Long: `Check parses each input and validates it against the selected dialect.
Arguments naming existing files are checked as files; any other argument is
treated as inline declaration text. With no arguments, input is read from
stdin.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("fixes", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("short", false, "one line per diagnostic, no source context")
	checkCmd.Flags().Int("jobs", 4, "max parallel workers when checking multiple files")
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	opts, err := prettyOpts(cmd, s)
	if err != nil {
		return err
	}

	results, err := analyzeInputs(cmd, args, s)
	if err != nil {
		return err
	}

	short, err := cmd.Flags().GetBool("short")
	if err != nil {
		return fmt.Errorf("failed to get short flag: %w", err)
	}

	ok := true
	for _, r := range results {
		if !r.OK {
			ok = false
		}
		if s.quiet {
			continue
		}
		if short {
			if out := diag.FormatGoldenDiagnostics(r.Bag.Items(), r.FS, opts.ShowNotes); out != "" {
				fmt.Fprintln(os.Stderr, out)
			}
			continue
		}
		diagfmt.Pretty(os.Stderr, r.Bag, r.FS, opts)
	}
	if !ok {
		return silentExit(cmd)
	}
	return nil
}

// analyzeInputs resolves the argument list into analyses: files fan out
// over a bounded worker group, inline text and stdin run in place.
func analyzeInputs(cmd *cobra.Command, args []string, s settings) ([]*analysis, error) {
	if len(args) == 0 {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []*analysis{analyzeText("<stdin>", text, s)}, nil
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		jobs = 1
	}
	if jobs < 1 {
		jobs = 1
	}

	results := make([]*analysis, len(args))
	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i, arg := range args {
		i, arg := i, arg
		if st, err := os.Stat(arg); err != nil || st.IsDir() {
			results[i] = analyzeText(fmt.Sprintf("<arg:%d>", i+1), []byte(arg), s)
			continue
		}
		g.Go(func() error {
			r, err := analyzeFile(arg, s)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func prettyOpts(cmd *cobra.Command, s settings) (diagfmt.PrettyOpts, error) {
	on, err := useColor(cmd)
	if err != nil {
		return diagfmt.PrettyOpts{}, err
	}
	notes, err := cmd.Flags().GetBool("notes")
	if err != nil {
		notes = false
	}
	fixes, err := cmd.Flags().GetBool("fixes")
	if err != nil {
		fixes = false
	}
	return diagfmt.PrettyOpts{
		Color:     on,
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: notes,
		ShowFixes: fixes,
		Max:       s.max,
	}, nil
}
