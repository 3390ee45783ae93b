// Package proxyclient builds HTTP clients that route their traffic
// through a given proxy endpoint.
package proxyclient

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	xproxy "golang.org/x/net/proxy"
	"h12.io/socks"
)

// Proxy pairs a proxy address with the transport built for it.
type Proxy struct {
	Address   string
	Transport *http.Transport
}

// Transport builds an http.Transport that tunnels through the proxy at
// address. Bare host:port values, which is what scraped listings carry,
// default to the http scheme.
func Transport(address string) (*http.Transport, error) {
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}

	proxyURL, err := url.Parse(address)
	if err != nil {
		return nil, err
	}

	tr := &http.Transport{
		TLSClientConfig:   &tls.Config{InsecureSkipVerify: true},
		DisableKeepAlives: true,
	}

	switch proxyURL.Scheme {
	case "http", "https":
		tr.Proxy = http.ProxyURL(proxyURL)
	case "socks4", "socks4a":
		tr.Dial = socks.Dial(address)
	case "socks5":
		dialer, err := xproxy.FromURL(proxyURL, xproxy.Direct)
		if err != nil {
			return nil, err
		}
		tr.Dial = dialer.Dial
	default:
		return nil, fmt.Errorf("unsupported proxy scheme: %s", proxyURL.Scheme)
	}

	return tr, nil
}

// New wraps req with a client that uses the proxy transport. The
// connection is not reused, each probe stands alone.
func (p *Proxy) New(req *http.Request) (*http.Client, *http.Request) {
	client := &http.Client{Transport: p.Transport}
	req.Header.Set("Connection", "close")

	return client, req
}
