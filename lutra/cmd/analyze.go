package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/sarchlab/lutra/analysis"
	"github.com/sarchlab/lutra/datarecording"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [netlist]...",
	Short: "Classify the lookup tables of mapped netlists.",
	Long: "`analyze [netlist]...` extracts the lookup tables of mapped " +
		"netlists and reports which custom cells can realize them. The " +
		"arguments are glob patterns, so `analyze 'out/**/*.v'` classifies " +
		"every netlist below out. With --watch, the command keeps running " +
		"and reclassifies a netlist whenever it is rewritten.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Fprintln(os.Stderr, "Error: netlist path argument is required")
			os.Exit(1)
		}

		workers, _ := cmd.Flags().GetInt("workers")
		record, _ := cmd.Flags().GetString("record")
		watch, _ := cmd.Flags().GetBool("watch")

		paths := expandNetlistPatterns(args)
		if len(paths) == 0 {
			log.Fatalf("Error: no netlist matches %v", args)
		}

		matcher := analysis.MakeMatcherBuilder().
			WithWorkers(workers).
			WithProgressFunc(func(done, total int) {
				if done%10 == 0 || done == total {
					log.Printf("Classified %d/%d lookup tables", done, total)
				}
			}).
			Build()

		var rec *analysis.Recorder
		if record != "" {
			backend := datarecording.New(record)
			defer backend.Close()

			rec = analysis.NewRecorder(backend)
		}

		for _, path := range paths {
			analyzeNetlist(matcher, rec, path)
		}

		if watch {
			watchNetlists(matcher, rec, args, paths)
		}
	},
}

// analyzeNetlist classifies one netlist and prints its report. Failures are
// logged rather than fatal so that a watch session survives a half-written
// file.
func analyzeNetlist(
	matcher *analysis.Matcher,
	rec *analysis.Recorder,
	path string,
) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading netlist %s: %v", path, err)
		return
	}

	luts := analysis.ExtractLUTs(string(data))
	if len(luts) == 0 {
		fmt.Printf("No lookup tables found in %s\n", path)
		return
	}

	results := matcher.ClassifyAll(luts)

	var report analysis.Report
	if rec != nil {
		report = rec.Record(path, results)
	} else {
		report = analysis.BuildReport(results)
	}

	fmt.Printf("%s:\n", path)
	fmt.Printf("  Total LUTs: %d\n", report.Total)
	fmt.Printf("  c1 can realize: %d\n", report.C1Matched)
	fmt.Printf("  c2 can realize: %d\n", report.C2Matched)
	fmt.Printf("  Both can realize: %d\n", report.Both)
	fmt.Printf("  Neither can realize: %d\n", report.Unmatched)
}

// expandNetlistPatterns globs each argument and returns the union of the
// matches, sorted and without duplicates. An argument that matches nothing
// is kept verbatim so that the read error names it.
func expandNetlistPatterns(patterns []string) []string {
	seen := make(map[string]bool)
	paths := make([]string, 0, len(patterns))

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			log.Fatalf("Error in netlist pattern %s: %v", pattern, err)
		}

		if matches == nil && !hasGlobMeta(pattern) {
			matches = []string{pattern}
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				paths = append(paths, match)
			}
		}
	}

	sort.Strings(paths)

	return paths
}

func hasGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}

	return false
}

// watchNetlists blocks and reclassifies any matched netlist when it is
// written. The watcher follows the directories of the matched files, so a
// netlist recreated by a synthesis rerun is picked up as well.
func watchNetlists(
	matcher *analysis.Matcher,
	rec *analysis.Recorder,
	patterns, paths []string,
) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("Error creating watcher: %v", err)
	}
	defer watcher.Close()

	dirs := make(map[string]bool)
	for _, path := range paths {
		dirs[filepath.Dir(path)] = true
	}

	for dir := range dirs {
		err := watcher.Add(dir)
		if err != nil {
			log.Fatalf("Error watching %s: %v", dir, err)
		}
	}

	log.Printf("Watching %d directories, interrupt to stop", len(dirs))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if !matchesNetlistPattern(patterns, event.Name) {
				continue
			}

			log.Printf("Netlist %s changed, reclassifying", event.Name)
			analyzeNetlist(matcher, rec, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			log.Printf("Watcher error: %v", err)
		}
	}
}

func matchesNetlistPattern(patterns []string, path string) bool {
	for _, pattern := range patterns {
		match, err := doublestar.Match(
			filepath.ToSlash(pattern), filepath.ToSlash(path))
		if err == nil && match {
			return true
		}
	}

	return false
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Int("workers", 0,
		"number of classification workers, one per CPU when 0")
	analyzeCmd.Flags().String("record", "",
		"record per-LUT classifications into this database")
	analyzeCmd.Flags().Bool("watch", false,
		"keep running and reclassify netlists when they change")
}
