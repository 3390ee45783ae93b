package common

// Proxy is a single candidate endpoint scraped from the source listing.
// All fields are carried as-is from the page; nothing is range-validated
// here, malformed values simply fail their probe later.
type Proxy struct {
	Address     string
	Port        string
	Country     string
	Anonymity   string
	HTTPS       string
	LastChecked string
}
