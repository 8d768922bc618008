package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// ReadCSV parses daily bars from a broker CSV export with columns
// date,open,high,low,close,volume. Exports from HK/mainland broker terminals
// are frequently GBK encoded, so the stream is passed through a GBK decoder
// first; plain ASCII/UTF-8 files survive that unchanged. A header row is
// skipped when the first field does not parse as a date.
func ReadCSV(r io.Reader) ([]Bar, error) {
	utf8Reader := transform.NewReader(r, simplifiedchinese.GBK.NewDecoder())
	reader := csv.NewReader(utf8Reader)
	reader.TrimLeadingSpace = true

	var bars []Bar
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line+1, err)
		}
		line++

		if len(record) < 6 {
			return nil, fmt.Errorf("csv line %d: want 6 columns, got %d", line, len(record))
		}

		date, err := parseDate(record[0])
		if err != nil {
			if line == 1 {
				// header row
				continue
			}
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}

		open, err1 := strconv.ParseFloat(record[1], 64)
		high, err2 := strconv.ParseFloat(record[2], 64)
		low, err3 := strconv.ParseFloat(record[3], 64)
		closePx, err4 := strconv.ParseFloat(record[4], 64)
		volume, err5 := strconv.ParseFloat(record[5], 64)
		for _, err := range []error{err1, err2, err3, err4, err5} {
			if err != nil {
				return nil, fmt.Errorf("csv line %d: %w", line, err)
			}
		}

		bars = append(bars, Bar{
			Date:   date,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePx,
			Volume: int64(volume),
		})
	}
	return bars, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", "2006/01/02", "20060102"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
