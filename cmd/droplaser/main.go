package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"droplaser/internal/config"
	"droplaser/internal/game"
	"droplaser/internal/logging"
)

func main() {
	configPath := flag.String("config", "droplaser.yaml", "settings file, created with defaults if missing")
	scenePath := flag.String("scene", filepath.Join("assets", "scenes", "warehouse.yaml"), "scene file to load")
	flag.Parse()

	// Paths given on the command line are relative to where the user ran us;
	// the defaults are relative to the executable.
	if err := absExplicitPaths(flag.CommandLine, map[string]*string{
		"config": configPath,
		"scene":  scenePath,
	}); err != nil {
		log.Fatalf("flags: %v", err)
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if err := os.Chdir(execDir); err != nil {
				log.Printf("chdir %s: %v", execDir, err)
			}
		}
	} else {
		log.Printf("locate executable: %v", err)
	}

	src, err := config.Open(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	defer src.Close()

	logger := logging.Default(func() bool { return src.Snapshot().LoggingEnabled })
	src.Log = logger

	g := game.New(src, logger, game.RaylibInput{})
	if err := g.LoadScene(*scenePath); err != nil {
		log.Fatalf("scene: %v", err)
	}
	g.Run()
}

// absExplicitPaths makes the named flags absolute, but only those set on the
// command line.
func absExplicitPaths(fs *flag.FlagSet, paths map[string]*string) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		p, ok := paths[f.Name]
		if !ok || err != nil {
			return
		}
		abs, absErr := filepath.Abs(*p)
		if absErr != nil {
			err = fmt.Errorf("%s: %w", f.Name, absErr)
			return
		}
		*p = abs
	})
	return err
}
