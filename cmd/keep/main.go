package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "keep",
	Short: "Store and fetch a blob at a per-environment resolved location",
	Long: `keep resolves a set of per-environment location candidates to a single
storage location (a file path, or a key in a key-value store) and reads and
writes an opaque blob there.

Examples:
  keep --generic ~/.app/settings.dat resolve
  keep --linux ~/.config/app/state --generic ~/.app-state put state.bin
  keep --generic cache.bin --kv ./keep.db cat`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("linux", "", "location candidate for Linux builds")
	pf.String("macos", "", "location candidate for macOS builds")
	pf.String("unix", "", "location candidate for other unix-family builds")
	pf.String("windows", "", "location candidate for Windows builds")
	pf.String("generic", "", "fallback location candidate for every build")
	pf.String("browser", "", "storage key for sandboxed web builds")
	pf.String("kv", "", "store in a SQLite key-value database at this path instead of the filesystem")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(existsCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(putCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
}
