// Package checker probes candidate proxies and classifies each one as
// working or not working.
package checker

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/mbndr/logo"
	"github.com/sourcegraph/conc/pool"

	"freeproxy/common"
	"freeproxy/pkg/proxyclient"
)

// Status is the binary outcome of a single probe.
type Status string

const (
	Working    Status = "working"
	NotWorking Status = "not working"
)

// Result pairs a candidate with its probe outcome. The pair stays
// together from the probe to the report, results are never split into
// parallel collections.
type Result struct {
	Proxy  common.Proxy
	Status Status
}

// Checker runs probes against candidate proxies.
type Checker struct {
	Timeout   time.Duration
	Goroutine int
	Verbose   bool

	// probe issues one request through the proxy. A nil error means
	// the target answered 200. Swapped out in tests.
	probe func(common.Proxy) error
}

// New builds a Checker from run options.
func New(opt *common.Options) *Checker {
	c := &Checker{
		Timeout:   opt.Timeout,
		Goroutine: opt.Goroutine,
		Verbose:   opt.Verbose,
	}
	c.probe = c.probeHTTP

	// Per-proxy failure diagnostics are debug-level; surface them when
	// verbose is requested.
	if opt.Verbose {
		cli.Level = logo.DEBUG
	}

	return c
}

// Check probes a single candidate. Every network fault, timeout, DNS
// failure, refused connection, TLS failure, proxy refusal, as well as
// any non-200 answer, collapses to NotWorking. Nothing propagates to
// the caller.
func (c *Checker) Check(proxy common.Proxy) Status {
	if err := c.probe(proxy); err != nil {
		log.Debugf("%s:%s %s", proxy.Address, proxy.Port, err)
		return NotWorking
	}

	return Working
}

// CheckAll probes every candidate with at most c.Goroutine probes in
// flight at once. The returned slice has exactly one Result per input,
// and results[i] always belongs to proxies[i] no matter which probe
// finishes first: each goroutine writes only its own index into the
// pre-sized slice. All probes run to completion, there is no batch
// cancellation.
//
// progress, when non-nil, is called once per completed probe with the
// completion count. It is cosmetic only and must not block.
func (c *Checker) CheckAll(proxies []common.Proxy, progress func(done int)) []Result {
	results := make([]Result, len(proxies))

	var done int64

	p := pool.New().WithMaxGoroutines(c.Goroutine)

	for i, proxy := range proxies {
		i, proxy := i, proxy

		p.Go(func() {
			status := c.Check(proxy)
			results[i] = Result{Proxy: proxy, Status: status}

			if c.Verbose {
				if status == Working {
					fmt.Printf("[%s] %s:%s\n", aurora.Green("LIVE"), proxy.Address, proxy.Port)
				} else {
					fmt.Printf("[%s] %s:%s\n", aurora.Red("DIED"), proxy.Address, proxy.Port)
				}
			}

			if progress != nil {
				progress(int(atomic.AddInt64(&done, 1)))
			}
		})
	}

	p.Wait()

	return results
}

func (c *Checker) probeHTTP(proxy common.Proxy) error {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return err
	}

	tr, err := proxyclient.Transport(net.JoinHostPort(proxy.Address, proxy.Port))
	if err != nil {
		return err
	}
	defer tr.CloseIdleConnections()

	p := &proxyclient.Proxy{
		Address:   net.JoinHostPort(proxy.Address, proxy.Port),
		Transport: tr,
	}

	client, req := p.New(req)
	client.Timeout = c.Timeout

	if c.Verbose {
		client.Transport = dump.RoundTripper(tr)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	return nil
}
