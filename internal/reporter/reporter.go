// Package reporter writes validation results to a timestamped xlsx
// report, working proxies first.
package reporter

import (
	"sort"

	"github.com/xuri/excelize/v2"

	"freeproxy/internal/checker"
	"freeproxy/pkg/helper"
)

var header = []interface{}{"ip", "port", "country", "anonymity", "https", "last checked", "status"}

// Sort returns a copy of results ordered Working first. The sort is
// stable, entries with the same status keep their relative order, so
// sorting an already sorted slice is a no-op.
func Sort(results []checker.Result) []checker.Result {
	sorted := make([]checker.Result, len(results))
	copy(sorted, results)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Status == checker.Working && sorted[j].Status != checker.Working
	})

	return sorted
}

// Write sorts results and saves them as "<prefix>_<YYYY_MM_DD_HHMM>.xlsx"
// with one row per candidate under a header row. An empty result set
// still produces a header-only file. Returns the written file name.
func Write(results []checker.Result, prefix string) (string, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", err
	}

	for i, r := range Sort(results) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}

		row := []interface{}{
			r.Proxy.Address,
			r.Proxy.Port,
			r.Proxy.Country,
			r.Proxy.Anonymity,
			r.Proxy.HTTPS,
			r.Proxy.LastChecked,
			string(r.Status),
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", err
		}
	}

	name := helper.Filename(prefix, helper.Timestamp())

	if err := f.SaveAs(name); err != nil {
		return "", err
	}

	return name, nil
}
