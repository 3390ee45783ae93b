// Package fetcher scrapes the candidate proxy table from the source
// listing page.
package fetcher

import (
	"bytes"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"freeproxy/common"
	"freeproxy/pkg/helper"
)

// URL is the listing page this tool audits.
const URL = "https://free-proxy-list.net/"

const tableSelector = "table.table.table-striped.table-bordered"

var fetchTimeout = 30 * time.Second

// Fetch retrieves the listing page at url and parses its candidate
// table into proxies in page order. An unreachable page, a non-2xx
// response, or a page without the expected table structure is an error,
// there is no partial result.
func Fetch(url string) ([]common.Proxy, error) {
	client := resty.New().
		SetTimeout(fetchTimeout).
		SetHeader("User-Agent", helper.RandomUA())

	resp, err := client.R().Get(url)
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status())
	}

	return parse(resp.Body())
}

func parse(body []byte) ([]common.Proxy, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	table := doc.Find(tableSelector).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("proxy table not found in page")
	}

	var proxies []common.Proxy

	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td").Map(func(_ int, col *goquery.Selection) string {
			return col.Text()
		})

		if len(cols) < 8 {
			return
		}

		proxies = append(proxies, common.Proxy{
			Address:     cols[0],
			Port:        cols[1],
			Country:     cols[3],
			Anonymity:   cols[4],
			HTTPS:       cols[6],
			LastChecked: cols[7],
		})
	})

	if len(proxies) == 0 {
		return nil, fmt.Errorf("proxy table has no rows")
	}

	return proxies, nil
}
