// Command shadow_compare replays a list of requests against the Go service and
// the legacy enrollment service and reports status and body differences.
// Targets run in file order against both services, so mutating requests keep
// the two stores in step when both start empty.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// The legacy service always binds 5000, so the Go service runs beside it with
// PORT=5001.
const (
	defaultGoBase     = "http://localhost:5001"
	defaultLegacyBase = "http://localhost:5000"
)

func main() {
	var (
		goBase      string
		legacyBase  string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&goBase, "go-base", defaultGoBase, "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", defaultLegacyBase, "Legacy API base URL")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "shadow_compare", "targets.json"), "Path to JSON targets file")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	logr, _ := zap.NewDevelopment()
	defer logr.Sync() //nolint:errcheck

	targets, err := loadTargets(targetsPath)
	if err != nil {
		logr.Fatal("failed to load targets", zap.String("path", targetsPath), zap.Error(err))
	}

	client := &http.Client{Timeout: timeout}
	results := make([]comparison, 0, len(targets))
	for _, t := range targets {
		results = append(results, compareTarget(client, goBase, legacyBase, t))
	}

	printReport(os.Stdout, results)

	breaking, optional := tally(results)
	fmt.Printf("Breaking diffs: %d, Optional diffs: %d\n", breaking, optional)
	if breaking > 0 {
		os.Exit(1)
	}
}
