package market

import (
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "Date,Open,High,Low,Close,Volume\n" +
		"2025-01-02,10,11,9.5,10.5,50000\n" +
		"2025/01/03,10.5,12,10,11.5,60000\n"

	bars, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].Close != 10.5 || bars[0].Volume != 50000 {
		t.Errorf("first bar parsed wrong: %+v", bars[0])
	}
	if bars[1].Date.Format("2006-01-02") != "2025-01-03" {
		t.Errorf("slash date not parsed: %v", bars[1].Date)
	}
}

func TestReadCSVNoHeader(t *testing.T) {
	bars, err := ReadCSV(strings.NewReader("20250102,10,11,9,10.5,100\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 1 {
		t.Fatalf("expected 1 bar, got %d", len(bars))
	}
}

func TestReadCSVBadRow(t *testing.T) {
	input := "2025-01-02,10,11,9,10.5,100\nnot-a-date,1,2,3,4,5\n"
	if _, err := ReadCSV(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for malformed date past the header row")
	}
}
