package common

import (
	"flag"
	"time"
)

// Options holds the run configuration shared across packages.
type Options struct {
	// Timeout applies to each individual probe request.
	Timeout time.Duration
	// Goroutine caps the number of simultaneous in-flight probes.
	Goroutine int
	// Output is the report file name prefix.
	Output string
	// Verbose prints a colored line per checked proxy and dumps
	// probe traffic.
	Verbose bool
	// Watch is a cron expression; when set, the pipeline re-runs on
	// that schedule instead of exiting after one pass.
	Watch string
	// Daemon runs watch mode under the system service manager.
	Daemon bool
}

// ParseOptions builds Options from command-line flags. Running without
// any flags reproduces the defaults: 5s probe timeout, 100 concurrent
// probes, a "freeproxylist" report in the working directory.
func ParseOptions() *Options {
	opt := &Options{}

	flag.DurationVar(&opt.Timeout, "timeout", 5*time.Second, "Probe timeout")
	flag.IntVar(&opt.Goroutine, "goroutine", 100, "Maximum number of concurrent probes")
	flag.StringVar(&opt.Output, "output", "freeproxylist", "Report file name prefix")
	flag.BoolVar(&opt.Verbose, "verbose", false, "Print per-proxy results and dump probe traffic")
	flag.StringVar(&opt.Watch, "watch", "", "Cron expression to re-run the pipeline periodically")
	flag.BoolVar(&opt.Daemon, "daemon", false, "Run watch mode as a daemon")
	flag.Parse()

	if opt.Goroutine < 1 {
		opt.Goroutine = 1
	}

	return opt
}
