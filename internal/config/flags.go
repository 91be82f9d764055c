package config

import (
	"flag"
	"os"

	"github.com/dkuleshov/emgtrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory (default from Config)
//	-b string   storage backend, "file" or "kv" (default from Config)
//	-g string   password digest algorithm (default from Config)
//	-n int      latest-readings limit (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-g", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (file or kv)")
	fs.StringVar(&cfg.Digest, "g", cfg.Digest, "password digest algorithm")
	fs.IntVar(&cfg.LatestLimit, "n", cfg.LatestLimit, "latest-readings limit")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
