// Command import loads a broker CSV export of daily bars into the SQLite
// store. GBK-encoded exports are decoded transparently.
//
//	import -db hkquant.db -symbol 0700 -file 0700.csv [-shares 9600000000]
package main

import (
	"flag"
	"fmt"
	"os"

	"hkquant/db"
	"hkquant/market"
)

func main() {
	dbPath := flag.String("db", "hkquant.db", "path to the SQLite bar store")
	symbol := flag.String("symbol", "", "instrument code, e.g. 0700")
	file := flag.String("file", "", "CSV file with date,open,high,low,close,volume rows")
	shares := flag.Float64("shares", 0, "shares outstanding (optional; enables turnover metrics)")
	flag.Parse()

	if *symbol == "" || *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*file)
	if err != nil {
		fail("open csv: %v", err)
	}
	defer f.Close()

	rows, err := market.ReadCSV(f)
	if err != nil {
		fail("parse csv: %v", err)
	}
	if len(rows) == 0 {
		fail("no bars in %s", *file)
	}

	if err := db.InitDB(*dbPath); err != nil {
		fail("open db: %v", err)
	}
	defer db.Close()

	// Run the rows through the series so the store only ever holds clean,
	// de-duplicated sessions.
	series := market.NewBarSeries(*symbol, rows)
	if err := db.SaveBars(*symbol, series.Bars()); err != nil {
		fail("save bars: %v", err)
	}
	if *shares > 0 {
		if err := db.SaveShares(*symbol, *shares); err != nil {
			fail("save shares: %v", err)
		}
	}

	dropped := len(rows) - series.Len()
	fmt.Printf("imported %d bars for %s (%d rows dropped)\n", series.Len(), *symbol, dropped)
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
