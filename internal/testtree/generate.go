// Package testtree builds random directory trees with a controlled
// fraction of duplicate files, for exercising the duplicate engine.
package testtree

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

// duplicatePayload is the shared content of every generated duplicate.
const duplicatePayload = "This is a randomly generated duplicate file."

// Config bounds one generated tree. The base directory is an explicit
// parameter; the generator never touches the process working directory.
type Config struct {
	// BaseDir is the existing directory to populate.
	BaseDir string
	// Depth is how many directory levels to create below BaseDir.
	// Depth 0 generates nothing.
	Depth int
	// DuplicatePercent of each level's files share identical content.
	DuplicatePercent int
	// MaxDirs bounds the subdirectories created per level (at least 1).
	MaxDirs int
	// MaxFiles bounds the files created per level (at least 1).
	MaxFiles int
	// Rand drives every random choice; a seeded source makes the tree
	// reproducible. Required.
	Rand *rand.Rand
}

// Generate populates cfg.BaseDir with a random tree: per level, a random
// number of subdirectories up to MaxDirs and a random number of text
// files up to MaxFiles, of which DuplicatePercent share byte-identical
// content. Roughly half of the subdirectories recurse another level,
// until Depth is exhausted.
func Generate(cfg Config) error {
	if cfg.Rand == nil {
		return fmt.Errorf("testtree: Config.Rand is required")
	}
	if cfg.MaxDirs < 1 || cfg.MaxFiles < 1 {
		return fmt.Errorf("testtree: MaxDirs and MaxFiles must be at least 1")
	}
	return generate(cfg, cfg.BaseDir, cfg.Depth)
}

func generate(cfg Config, dir string, depth int) error {
	if depth == 0 {
		return nil
	}

	numDirs := 1 + cfg.Rand.Intn(cfg.MaxDirs)
	for i := 0; i < numDirs; i++ {
		if err := os.Mkdir(filepath.Join(dir, fmt.Sprintf("dir_%d", i)), 0o755); err != nil {
			return err
		}
	}

	numFiles := 1 + cfg.Rand.Intn(cfg.MaxFiles)
	numDups := numFiles * cfg.DuplicatePercent / 100

	for i := 0; i < numFiles; i++ {
		name := filepath.Join(dir, fmt.Sprintf("file_%d.txt", i))
		content := duplicatePayload
		if i >= numDups {
			// Embedding the full path keeps non-duplicates unique
			// across the whole tree.
			content = fmt.Sprintf("This is a randomly generated unique file. Path: %s", name)
		}
		if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
			return err
		}
	}

	for i := 0; i < numDirs; i++ {
		if cfg.Rand.Intn(2) == 1 {
			sub := filepath.Join(dir, fmt.Sprintf("dir_%d", i))
			if err := generate(cfg, sub, depth-1); err != nil {
				return err
			}
		}
	}
	return nil
}
