package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/buhanec/yafwi/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "yafwi",
	Short: "Fixed-width integers with exact wraparound",
	Long: `yafwi inspects and evaluates fixed-width integer types of any width,
signed or unsigned, with two's-complement wraparound on every operation.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupSession,
}

func init() {
	rootCmd.AddCommand(limitsCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to yafwi.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "text", "trace format (text|ndjson|zap)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")
}

// main executes the root command and exits with status 1 on failure.
func main() {
	rootCmd.Version = version.Version
	cmd, err := rootCmd.ExecuteC()
	closeSession(cmd)
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
