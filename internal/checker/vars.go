package checker

import (
	"os"

	"github.com/henvic/httpretty"
	"github.com/mbndr/logo"
)

// endpoint is the fixed probe target. A proxy is Working only when a
// request to it through the proxy comes back 200.
var endpoint = "https://www.google.com"

var dump = &httpretty.Logger{
	Time:           true,
	TLS:            true,
	RequestHeader:  true,
	ResponseHeader: true,
}

var (
	cli *logo.Receiver
	log *logo.Logger
)

func init() {
	cli = logo.NewReceiver(os.Stderr, "")
	cli.Color = true
	cli.Level = logo.WARN

	log = logo.NewLogger(cli)
}
