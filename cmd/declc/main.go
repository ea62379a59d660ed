package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"declc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "declc",
	Short: "declc is a checker and explainer for C and C++ declarations",
	Long: `declc parses C and C++ declarations and casts, validates them against a
selected language dialect, and can render them as plain English.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(dialectsCmd)
	rootCmd.AddCommand(typedefsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("lang", "", "dialect to check against (c89..c23, c++98..c++23)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress diagnostic output, report via exit code only")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum diagnostics to keep per input (0=config default)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the terminal state and flips
// the global color switch so every colored writer agrees.
func useColor(cmd *cobra.Command) (bool, error) {
	flag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	on := flag == "on" || (flag == "auto" && isTerminal(os.Stdout))
	color.NoColor = !on
	return on, nil
}
