package config

import (
	"flag"
	"os"

	"github.com/avolkovs/techcards/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server
//	-l int      browse page size
//	-m int      study-mode card ceiling
//
// The function filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the backend server")
	fs.IntVar(&cfg.PageSize, "l", cfg.PageSize, "browse page size")
	fs.IntVar(&cfg.StudyMaxCards, "m", cfg.StudyMaxCards, "study-mode card ceiling")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
