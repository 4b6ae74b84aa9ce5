package config

import (
	"flag"
	"os"

	"github.com/kyraymege/bookmarkd/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags. Only the flags
// handled here are filtered out of os.Args to avoid collisions with other
// components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "base URL of the server endpoint")
	fs.StringVar(&config.CacheFile, "f", config.CacheFile, "local cache database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
