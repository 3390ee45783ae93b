package helper

import (
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/valyala/fastrand"
	"github.com/valyala/fasttemplate"
)

var filename = fasttemplate.New("{{prefix}}_{{timestamp}}.xlsx", "{{", "}}")

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:128.0) Gecko/20100101 Firefox/128.0",
}

// TimeTrack logs how long an operation took. Call it deferred with the
// start time captured at the top of the operation:
//
//	defer helper.TimeTrack(time.Now(), "check")
func TimeTrack(start time.Time, name string) {
	gologger.Info().Msgf("%s took %s", name, time.Since(start).Round(time.Millisecond))
}

// Timestamp returns the current local time formatted for report file names.
func Timestamp() string {
	return time.Now().Format("2006_01_02_1504")
}

// Filename renders the report file name for the given prefix and timestamp.
func Filename(prefix, timestamp string) string {
	return filename.ExecuteString(map[string]interface{}{
		"prefix":    prefix,
		"timestamp": timestamp,
	})
}

// RandomUA picks a browser User-Agent for the listing fetch.
func RandomUA() string {
	return userAgents[fastrand.Uint32n(uint32(len(userAgents)))]
}
