package config

import (
	"flag"
	"os"
	"time"

	"github.com/mribeiro/bibliocli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   backend base URL (default from earlier stages)
//	-d string   session database path
//	-t int      per-request timeout in seconds
//
// os.Args is filtered to only the flags handled here so the JSON stage's
// -c/-config flag does not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "backend base URL")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "session database path")
	timeoutSecs := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *timeoutSecs > 0 {
		cfg.RequestTimeout = time.Duration(*timeoutSecs) * time.Second
	}
}
