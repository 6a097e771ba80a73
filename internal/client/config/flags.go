package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/refugio/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed here are passed to the flag set, see flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l", "-i", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file")
	fs.BoolVar(&cfg.Debug, "v", cfg.Debug, "debug logging")
	autosave := fs.Int("i", int(cfg.AutosaveInterval.Seconds()), "draft autosave interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AutosaveInterval = time.Duration(*autosave) * time.Second
}
