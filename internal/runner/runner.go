// Package runner wires the pipeline together: fetch the candidate
// list, check every candidate, export the report.
package runner

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/projectdiscovery/gologger"
	"github.com/robfig/cron/v3"

	"freeproxy/common"
	"freeproxy/internal/checker"
	"freeproxy/internal/daemon"
	"freeproxy/internal/fetcher"
	"freeproxy/internal/reporter"
	"freeproxy/pkg/helper"
)

var glyphs = []rune{'|', '/', '-', '\\'}

// progress picks the per-probe feedback for a run. Verbose mode prints
// its own line per checked proxy, so the rewriting spinner line would
// only garble that output and is left out.
func progress(opt *common.Options) func(done int) {
	if opt.Verbose {
		return nil
	}

	return func(done int) {
		fmt.Printf("\rChecking proxies... %c", glyphs[done%len(glyphs)])
	}
}

// New runs a single pipeline pass, or schedules it when watch mode is
// requested.
func New(opt *common.Options) error {
	if opt.Watch != "" {
		if opt.Daemon {
			return daemon.New(func() {
				if err := watch(opt); err != nil {
					gologger.Error().Msgf("Error! %s", err)
				}
			})
		}

		return watch(opt)
	}

	return run(opt)
}

// run is one fetch -> check -> report pass. Only a fetch failure or a
// report write failure can make it return an error; per-proxy faults
// never surface past the checker.
func run(opt *common.Options) error {
	defer helper.TimeTrack(time.Now(), "run")

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond)
	s.Suffix = " Fetching proxy list..."
	s.Start()

	proxies, err := fetcher.Fetch(fetcher.URL)

	s.Stop()

	if err != nil {
		return fmt.Errorf("fetch %s: %w", fetcher.URL, err)
	}

	gologger.Info().Msgf("Found %d proxies.", len(proxies))

	chk := checker.New(opt)

	start := time.Now()
	results := chk.CheckAll(proxies, progress(opt))
	if !opt.Verbose {
		fmt.Println()
	}
	helper.TimeTrack(start, "check")

	gologger.Info().Msg("Exporting report...")

	start = time.Now()
	name, err := reporter.Write(results, opt.Output)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	helper.TimeTrack(start, "export")

	gologger.Info().Msgf("Report saved to %s", name)

	return nil
}

// watch re-runs the pipeline on a cron schedule. A failed pass is
// logged and the schedule keeps going.
func watch(opt *common.Options) error {
	c := cron.New()

	if _, err := c.AddFunc(opt.Watch, func() {
		if err := run(opt); err != nil {
			gologger.Error().Msgf("Error! %s", err)
		}
	}); err != nil {
		return err
	}

	gologger.Info().Msgf("Watching on schedule %q", opt.Watch)
	c.Start()

	select {}
}
