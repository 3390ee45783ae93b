package proxyclient

import (
	"net/http"
	"testing"
)

func TestTransportDefaultsToHTTP(t *testing.T) {
	tr, err := Transport("203.0.113.5:8080")
	if err != nil {
		t.Fatal(err)
	}

	if tr.Proxy == nil {
		t.Fatal("expected HTTP proxy function on transport")
	}

	u, err := tr.Proxy(&http.Request{})
	if err != nil {
		t.Fatal(err)
	}

	if u.String() != "http://203.0.113.5:8080" {
		t.Errorf("got proxy URL %q", u)
	}
}

func TestTransportSocksSchemes(t *testing.T) {
	for _, scheme := range []string{"socks4", "socks4a", "socks5"} {
		tr, err := Transport(scheme + "://203.0.113.5:1080")
		if err != nil {
			t.Fatalf("%s: %s", scheme, err)
		}

		if tr.Dial == nil {
			t.Errorf("%s: expected dialer on transport", scheme)
		}
	}
}

func TestTransportUnsupportedScheme(t *testing.T) {
	if _, err := Transport("ftp://203.0.113.5:21"); err == nil {
		t.Error("expected error for unsupported scheme")
	}
}

func TestNewSetsConnectionClose(t *testing.T) {
	tr, err := Transport("203.0.113.5:8080")
	if err != nil {
		t.Fatal(err)
	}

	req, err := http.NewRequest("GET", "https://www.google.com", nil)
	if err != nil {
		t.Fatal(err)
	}

	p := &Proxy{Address: "203.0.113.5:8080", Transport: tr}

	client, req := p.New(req)

	if client.Transport != tr {
		t.Error("client does not use the proxy transport")
	}

	if req.Header.Get("Connection") != "close" {
		t.Error("Connection: close not set on request")
	}
}
