package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/ironsheep/paint-bucket-mcp/internal/config"
	"github.com/ironsheep/paint-bucket-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "paint-bucket-mcp - MCP server for flood filling images")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage: paint-bucket-mcp [options]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fmt.Fprintln(out, "  --version        Print version information")
	fmt.Fprintln(out, "  --help, -h       Print this help message")
	fmt.Fprintln(out, "  -v=N             glog verbosity (1 traces every request)")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment variables (also read from a .env file):")
	fmt.Fprintf(out, "  %s=debug            Enable debug logging\n", config.EnvLogLevel)
	fmt.Fprintf(out, "  %s=N        Tolerance used when a call omits it (default %d)\n", config.EnvDefaultTolerance, config.DefaultTolerance)
	fmt.Fprintf(out, "  %s=N              Largest image accepted for filling, 0 for no limit\n", config.EnvMaxPixels)
	fmt.Fprintf(out, "  %s=PATH            Env file to read (default %s)\n", config.EnvFile, config.DefaultEnvFile)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "This server communicates via MCP protocol over stdin/stdout.")
	fmt.Fprintln(out, "Configure it in your MCP client (e.g., Claude Desktop).")
}

func main() {
	showVersion := flag.Bool("version", false, "print version information")
	flag.Usage = usage

	// stdout is for MCP protocol
	_ = flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	if *showVersion {
		fmt.Printf("paint-bucket-mcp %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "paint-bucket-mcp: %v\n", err)
		os.Exit(2)
	}
	if cfg.Debug() {
		_ = flag.Set("v", "1")
	}

	if Version != "dev" {
		server.Version = Version
	}
	glog.Infof("Paint Bucket MCP Server v%s (built %s, commit %s)", server.Version, BuildTime, GitCommit)
	glog.V(1).Infof("default tolerance %d, max pixels %d", cfg.DefaultTolerance, cfg.MaxPixels)

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		glog.Exitf("Server error: %v", err)
	}
}
