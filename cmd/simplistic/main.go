package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TheNexusGroup/simplistic/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┬┌┬┐┌─┐┬  ┬┌─┐┌┬┐┬┌─┐
  ╚═╗││││├─┘│  │└─┐ │ ││
  ╚═╝┴┴ ┴┴  ┴─┘┴└─┘ ┴ ┴└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "simplistic",
		Short: "Reactive UI state for Go, served live over WebSocket",
		Long: `Simplistic keeps a live render tree in sync with reactive state.

State lives in value cells and computed cells. Bindings attach pieces
of the tree to cells and update in place when they change, with no
virtual tree and no diffing. The bundled demo server renders the
example apps on the server and pushes updates to the browser over a
WebSocket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
