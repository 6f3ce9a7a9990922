package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/svalverde/dupscan/internal/engine"
	"github.com/svalverde/dupscan/internal/entities"
	"github.com/svalverde/dupscan/internal/utils"
)

// --- REPORT STRUCTURES ---

type Report struct {
	Summary  Summary       `json:"summary"`
	Groups   []GroupResult `json:"groups"`
	Metadata Metadata      `json:"metadata"`
}

type Metadata struct {
	ScannedPaths []string  `json:"scanned_paths"`
	Strategy     string    `json:"strategy"`
	Timestamp    time.Time `json:"timestamp"`
	Duration     string    `json:"duration_human"`
}

type Summary struct {
	TotalFilesScanned int64  `json:"total_files_scanned"`
	TotalDuplicates   int64  `json:"total_duplicates"`
	TotalHardLinks    int64  `json:"total_hard_links"`
	BytesSaved        int64  `json:"bytes_saved"`
	BytesSavedHuman   string `json:"bytes_saved_human"`
}

type GroupResult struct {
	Digest    entities.Digest    `json:"digest"`
	Size      int64              `json:"file_size"`
	Keeper    *entities.FileInfo `json:"keeper"`
	Victims   []Victim           `json:"victims"`
	HardLinks []string           `json:"hardlinks"`
}

type Victim struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

type sysID struct {
	dev, inode uint64
}

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func main() {
	var dirs, excludes multiFlag
	flag.Var(&dirs, "dir", "Directory to scan (repeatable; default \".\")")
	flag.Var(&excludes, "exclude", "Directory whose subtree is excluded from the scan (repeatable)")
	deletePtr := flag.Bool("delete", false, "Delete duplicate files immediately, keeping one per group")
	keepPtr := flag.String("keep", "", "Keeper criterion: first, shortest, longest, oldest, newest")
	jsonPtr := flag.Bool("json", false, "Write the report as JSON to stdout")
	outputPtr := flag.String("output", "", "Write a review .sh script instead of acting")
	configPtr := flag.String("config", "", "Optional ini config file")

	flag.Parse()

	if *deletePtr && *outputPtr != "" {
		fmt.Fprintln(os.Stderr, "Error: choose ONE action, -delete or -output")
		os.Exit(1)
	}

	cfg, err := LoadConfig(*configPtr)
	if err != nil {
		die(err, *jsonPtr)
	}

	// Flags override config file values.
	keepName := cfg.Keep
	if *keepPtr != "" {
		keepName = *keepPtr
	}
	if len(excludes) == 0 {
		excludes = cfg.Excludes
	}
	if len(dirs) == 0 {
		dirs = multiFlag{"."}
	}
	jsonMode := *jsonPtr || cfg.Format == "json"

	strategy, err := parseStrategy(keepName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runner := engine.New(engine.Options{Strategy: strategy})

	if !jsonMode {
		fmt.Printf("dupscan - scanning: %s\n", strings.Join(dirs, ", "))
		fmt.Printf("Keeper strategy: %s\n", strings.ToUpper(keepName))
		fmt.Println("------------------------------------------------")
	}

	var exclude any
	if len(excludes) > 0 {
		exclude = []string(excludes)
	}
	stats, err := runner.Run([]string(dirs), exclude)
	if err != nil {
		die(err, jsonMode)
	}

	report := generateReport(stats, dirs, keepName)

	if jsonMode {
		printJSON(report)
		return
	}

	if *outputPtr != "" {
		if err := generateShellScript(report, *outputPtr); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing script: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nScript written: %s\n", *outputPtr)
		return
	}

	processResults(report, *deletePtr)
}

func parseStrategy(name string) (engine.KeepStrategy, error) {
	switch strings.ToLower(name) {
	case "first":
		return engine.KeepFirst, nil
	case "shortest":
		return engine.KeepShortestPath, nil
	case "longest":
		return engine.KeepLongestPath, nil
	case "oldest":
		return engine.KeepOldest, nil
	case "newest":
		return engine.KeepNewest, nil
	default:
		return 0, fmt.Errorf("unknown keeper strategy: %s", name)
	}
}

// processResults prints the groups and, in delete mode, removes victims.
func processResults(r Report, deleteMode bool) {
	if len(r.Groups) == 0 {
		fmt.Println("Clean! No duplicates found.")
		return
	}

	if deleteMode {
		fmt.Println("DELETE MODE: victim files will be removed permanently.")
	}

	fmt.Println("DUPLICATES FOUND:")
	removed := 0

	for _, g := range r.Groups {
		fmt.Printf("   Group (size: %s) | KEEPER: %s\n", utils.ByteCountDecimal(g.Size), g.Keeper.Path)

		for _, hl := range g.HardLinks {
			fmt.Printf("      [hardlink] %s (0 B)\n", hl)
		}

		for _, v := range g.Victims {
			if deleteMode {
				if err := engine.RemoveFile(entities.Path(v.Path)); err != nil {
					fmt.Printf("      FAILED: %v\n", err)
				} else {
					fmt.Printf("      removed: %s\n", v.Path)
					removed++
				}
			} else {
				fmt.Printf("      [candidate] %s\n", v.Path)
			}
		}
		fmt.Println("")
	}

	fmt.Println("------------------------------------------------")
	if deleteMode {
		fmt.Printf("Done. Files removed: %d\n", removed)
		fmt.Printf("Space reclaimed: %s\n", r.Summary.BytesSavedHuman)
	} else {
		fmt.Printf("Scan finished. Deletion candidates: %d\n", r.Summary.TotalDuplicates)
		fmt.Printf("Reclaimable space: %s\n", r.Summary.BytesSavedHuman)
		fmt.Println("Options:")
		fmt.Println("   -output  -> generate a review script")
		fmt.Println("   -delete  -> delete immediately")
	}
}

// generateReport converts engine stats into the report, classifying
// hard links (same device and inode as an already-seen group member) so
// they are not counted as reclaimable duplicates.
func generateReport(stats *engine.Stats, dirs []string, strategy string) Report {
	rep := Report{
		Metadata: Metadata{
			ScannedPaths: dirs,
			Strategy:     strategy,
			Timestamp:    time.Now(),
			Duration:     stats.Duration.String(),
		},
		Summary: Summary{
			TotalFilesScanned: stats.TotalFilesScanned,
		},
		Groups: []GroupResult{},
	}

	for digest, group := range stats.FilesByDigest {
		keeper := group.Files[0]
		gRes := GroupResult{
			Digest: digest,
			Size:   keeper.Size,
			Keeper: keeper,
		}

		seenInodes := make(map[sysID]bool)
		seenInodes[sysID{keeper.DeviceID, keeper.Inode}] = true

		for _, file := range group.Files[1:] {
			id := sysID{file.DeviceID, file.Inode}

			// The zero identity means the platform gave us nothing;
			// never treat those as links of each other.
			if id != (sysID{}) && seenInodes[id] {
				gRes.HardLinks = append(gRes.HardLinks, file.Path.String())
				rep.Summary.TotalHardLinks++
			} else {
				gRes.Victims = append(gRes.Victims, Victim{
					Path: file.Path.String(),
					Size: file.Size,
				})
				rep.Summary.TotalDuplicates++
				rep.Summary.BytesSaved += file.Size
				seenInodes[id] = true
			}
		}

		rep.Groups = append(rep.Groups, gRes)
	}

	rep.Summary.BytesSavedHuman = utils.ByteCountDecimal(rep.Summary.BytesSaved)
	return rep
}

func generateShellScript(r Report, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "#!/bin/sh\n")
	fmt.Fprintf(w, "# Generated by dupscan\n")
	fmt.Fprintf(w, "echo 'Starting cleanup...'\n\n")

	for _, g := range r.Groups {
		if len(g.Victims) == 0 {
			continue
		}
		fmt.Fprintf(w, "# Group digest: %s\n", g.Digest)
		fmt.Fprintf(w, "# Keeper: %s\n", g.Keeper.Path)
		for _, v := range g.Victims {
			fmt.Fprintf(w, "rm -v %q\n", v.Path)
		}
		fmt.Fprintf(w, "\n")
	}
	return w.Flush()
}

func printJSON(r Report) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(r)
}

func die(err error, jsonMode bool) {
	if jsonMode {
		fmt.Printf(`{"error": "%v"}`+"\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
	}
	os.Exit(1)
}
