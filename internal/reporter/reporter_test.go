package reporter

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/go-test/deep"
	"github.com/xuri/excelize/v2"

	"freeproxy/common"
	"freeproxy/internal/checker"
)

var sample = []checker.Result{
	{Proxy: common.Proxy{Address: "10.0.0.1", Port: "3128", Country: "Germany"}, Status: checker.NotWorking},
	{Proxy: common.Proxy{Address: "10.0.0.2", Port: "8080", Country: "France"}, Status: checker.Working},
	{Proxy: common.Proxy{Address: "10.0.0.3", Port: "80", Country: "Japan"}, Status: checker.NotWorking},
}

func TestSortWorkingFirstAndStable(t *testing.T) {
	sorted := Sort(sample)

	want := []checker.Result{sample[1], sample[0], sample[2]}
	if diff := deep.Equal(sorted, want); diff != nil {
		t.Error(diff)
	}

	// Sorting an already sorted slice changes nothing.
	if diff := deep.Equal(Sort(sorted), sorted); diff != nil {
		t.Error(diff)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	input := make([]checker.Result, len(sample))
	copy(input, sample)

	Sort(input)

	if diff := deep.Equal(input, sample); diff != nil {
		t.Error(diff)
	}
}

func TestWriteSortedReport(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "freeproxylist")

	name, err := Write(sample, prefix)
	if err != nil {
		t.Fatal(err)
	}

	pattern := regexp.MustCompile(`freeproxylist_\d{4}_\d{2}_\d{2}_\d{4}\.xlsx$`)
	if !pattern.MatchString(name) {
		t.Errorf("file name %q does not match the timestamp pattern", name)
	}

	f, err := excelize.OpenFile(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatal(err)
	}

	want := [][]string{
		{"ip", "port", "country", "anonymity", "https", "last checked", "status"},
		{"10.0.0.2", "8080", "France", "", "", "", "working"},
		{"10.0.0.1", "3128", "Germany", "", "", "", "not working"},
		{"10.0.0.3", "80", "Japan", "", "", "", "not working"},
	}

	if diff := deep.Equal(rows, want); diff != nil {
		t.Error(diff)
	}
}

func TestWriteEmptyResults(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "freeproxylist")

	name, err := Write(nil, prefix)
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
}

func TestWriteBadPath(t *testing.T) {
	if _, err := Write(sample, filepath.Join(t.TempDir(), "missing", "freeproxylist")); err == nil {
		t.Error("expected error for unwritable path")
	}
}
