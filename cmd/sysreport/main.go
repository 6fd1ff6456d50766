package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/srodi/sysreport/pkg/collector/proc"
	"github.com/srodi/sysreport/pkg/config"
	"github.com/srodi/sysreport/pkg/export"
	"github.com/srodi/sysreport/pkg/pathenv"
	"github.com/srodi/sysreport/pkg/report"
	"github.com/srodi/sysreport/pkg/types"
	"github.com/srodi/sysreport/pkg/ui"
)

type runConfig struct {
	cfg      config.Config
	showPath bool
	noPause  bool
}

func parseConfig() (runConfig, error) {
	configPath := flag.String("config", "", "path to a YAML config file")
	output := flag.String("output", "", "destination directory for report files (overrides config)")
	topN := flag.Int("topn", 0, "number of processes to keep after ranking (overrides config)")
	excludeSystem := flag.Bool("exclude-system", false, "exclude built-in OS infrastructure process names")
	exclude := flag.String("exclude", "", "comma-separated process names to exclude (case-insensitive)")
	showPath := flag.Bool("show-path", false, "print the PATH entries and exit")
	noPause := flag.Bool("no-pause", false, "skip the final keypress prompt even on a terminal")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return runConfig{}, err
		}
		cfg = loaded
	}
	if *output != "" {
		cfg.OutputPath = *output
	}
	if *topN != 0 {
		cfg.TopN = *topN
	}
	if *excludeSystem {
		cfg.ExcludeSystem = true
	}
	if names := splitNames(*exclude); len(names) > 0 {
		cfg.ExcludeProcesses = append(cfg.ExcludeProcesses, names...)
	}
	if err := cfg.Validate(); err != nil {
		return runConfig{}, err
	}
	return runConfig{cfg: cfg, showPath: *showPath, noPause: *noPause}, nil
}

func main() {
	run, err := parseConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if run.showPath {
		printPathEntries(os.Stdout)
		maybePause(run.noPause)
		return
	}

	collector := proc.NewCollector()
	samples, capturedAt, err := collector.Snapshot()
	if err != nil {
		log.Fatalf("collecting process snapshot: %v", err)
	}

	filtered := report.FilterSamples(samples, report.FilterConfig{
		ExcludeSystem: run.cfg.ExcludeSystem,
		ExcludeNames:  run.cfg.ExcludeProcesses,
	})
	ranked, err := report.Rank(filtered, run.cfg.TopN, capturedAt)
	if err != nil {
		log.Fatalf("ranking processes: %v", err)
	}

	path, err := export.WriteCSV(run.cfg.OutputPath, ranked, capturedAt)
	if err != nil {
		log.Fatalf("writing report: %v", err)
	}

	fmt.Print(ui.Banner())
	printRanked(os.Stdout, ranked)
	fmt.Printf("\nReport written to %s (%d of %d sampled processes)\n", path, len(ranked), len(samples))
	maybePause(run.noPause)
}

func printRanked(w io.Writer, rows []types.RankedProcess) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No processes matched the current filters")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tNAME\tPID\tCPU(%)\tCPU(s)\tMEM(MB)\tPAGEFILE(MB)\tTHREADS\tSCORE")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t%.2f\n",
			row.Rank, row.Name, row.PID, row.CPUPercent, row.CPUSeconds,
			row.MemoryMB, row.PageFileMB, row.ThreadCount, row.CompositeScore)
	}
	tw.Flush()
}

func printPathEntries(w io.Writer) {
	entries := pathenv.FromEnv()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDIRECTORY\tEXISTS\tDUPLICATE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%t\t%t\n", e.Position, e.Dir, e.Exists, e.Duplicate)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d PATH entries\n", len(entries))
}

func splitNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// maybePause blocks for one keypress before exit so the report stays on
// screen, but only when stdin is attached to a terminal.
func maybePause(disabled bool) {
	fd := int(os.Stdin.Fd())
	if disabled || !term.IsTerminal(fd) {
		return
	}
	fmt.Print("Press any key to exit...")
	if err := waitForKeypress(fd); err != nil {
		log.Printf("keypress wait failed: %v", err)
	}
	fmt.Println()
}
