package config

import (
	"flag"
	"os"

	"github.com/biteai-labs/biteai-core/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the local database file
//	-no-delay   disable the simulated network latency
//
// os.Args is filtered to only the flags handled here, so other components
// can define their own without interference.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-no-delay"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	noDelay := fs.Bool("no-delay", false, "disable simulated latency")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *noDelay {
		cfg.RegisterDelay = 0
		cfg.LoginDelay = 0
		cfg.LogoutDelay = 0
	}
}
