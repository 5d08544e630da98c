package main

import (
	"context"
	"errors"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/TheNexusGroup/simplistic/internal/config"
	clierrors "github.com/TheNexusGroup/simplistic/internal/errors"
	"github.com/TheNexusGroup/simplistic/pkg/middleware"
	"github.com/TheNexusGroup/simplistic/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		port        int
		host        string
		pretty      bool
		openBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo server",
		Long: `Start the demo server.

Serves the bundled demo apps, rendering each one on the server and
pushing live updates to connected browsers over a WebSocket. Caching
is disabled so a reload always shows the current state of the code.

Examples:
  simplistic serve
  simplistic serve --port=8080
  simplistic serve --host=0.0.0.0 --open`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, pretty, openBrowser)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from simplistic.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from simplistic.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent rendered HTML")
	cmd.Flags().BoolVarP(&openBrowser, "open", "o", false, "Open browser on start")

	return cmd
}

func runServe(port int, host string, pretty, openBrowser bool) error {
	// A missing simplistic.json is fine, the defaults serve the demos.
	cfg, err := config.Load(".")
	if err != nil {
		var ce *clierrors.CLIError
		if !errors.As(err, &ce) || ce.Code != "E100" {
			return err
		}
		cfg = config.New()
	}

	if port > 0 {
		cfg.Port = port
	}
	if host != "" {
		cfg.Host = host
	}
	if pretty {
		cfg.Pretty = true
	}
	if openBrowser {
		cfg.OpenBrowser = true
	}

	printBanner()
	info("serving demos on http://" + cfg.Address())

	serverConfig := server.DefaultServerConfig()
	serverConfig.Address = cfg.Address()
	serverConfig.Pretty = cfg.Pretty

	srv := server.New(serverConfig, nil)
	srv.Use(
		middleware.Prometheus(),
		middleware.OpenTelemetry(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.OpenBrowser {
		go openURL("http://" + cfg.Address())
	}

	if err := srv.Run(ctx); err != nil {
		return clierrors.New("E200").Wrap(err)
	}
	success("server stopped")
	return nil
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd

	switch {
	case commandExists("xdg-open"):
		cmd = exec.Command("xdg-open", url)
	case commandExists("open"):
		cmd = exec.Command("open", url)
	case commandExists("start"):
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return
	}

	cmd.Start()
}

// commandExists checks if a command exists in PATH.
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
