package db

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"hkquant/market"
)

var database *sql.DB

// InitDB opens the SQLite bar store, creating the schema if needed.
func InitDB(path string) error {
	var err error
	database, err = sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	query := `
    CREATE TABLE IF NOT EXISTS bars (
        id INTEGER PRIMARY KEY,
        symbol VARCHAR(20),
        date DATE,
        open REAL,
        high REAL,
        low REAL,
        close REAL,
        volume INTEGER,
        UNIQUE(symbol, date)
    );
    CREATE TABLE IF NOT EXISTS shares_outstanding (
        symbol VARCHAR(20) PRIMARY KEY,
        shares REAL,
        updated_at DATETIME
    );`
	_, err = database.Exec(query)
	return err
}

// Close releases the store handle.
func Close() error {
	if database == nil {
		return nil
	}
	return database.Close()
}

// SaveBars upserts daily bars for a symbol; a re-import of the same session
// replaces the earlier row.
func SaveBars(symbol string, bars []market.Bar) error {
	tx, err := database.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO bars (symbol, date, open, high, low, close, volume)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(symbol, date) DO UPDATE SET
            open=excluded.open, high=excluded.high, low=excluded.low,
            close=excluded.close, volume=excluded.volume`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, b := range bars {
		day := market.Day(b.Date).Format("2006-01-02")
		if _, err := stmt.Exec(symbol, day, b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// QueryBars loads every stored bar for a symbol, oldest first.
func QueryBars(symbol string) ([]market.Bar, error) {
	rows, err := database.Query(
		`SELECT date, open, high, low, close, volume FROM bars WHERE symbol = ? ORDER BY date ASC`, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bars []market.Bar
	for rows.Next() {
		var b market.Bar
		var day string
		if err := rows.Scan(&day, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, err
		}
		b.Date, err = time.ParseInLocation("2006-01-02", day, time.UTC)
		if err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}
	return bars, rows.Err()
}

// Symbols lists every symbol with stored bars.
func Symbols() ([]string, error) {
	rows, err := database.Query(`SELECT DISTINCT symbol FROM bars ORDER BY symbol`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SaveShares records the shares-outstanding figure for a symbol.
func SaveShares(symbol string, shares float64) error {
	_, err := database.Exec(
		`INSERT INTO shares_outstanding (symbol, shares, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(symbol) DO UPDATE SET shares=excluded.shares, updated_at=excluded.updated_at`,
		symbol, shares, time.Now().UTC())
	return err
}

// QueryShares returns the stored shares-outstanding figure, or ok=false when
// none was ever recorded. Callers must keep "absent" distinct from zero: the
// engine treats a missing figure as unavailable turnover, not 0% turnover.
func QueryShares(symbol string) (shares float64, ok bool, err error) {
	row := database.QueryRow(`SELECT shares FROM shares_outstanding WHERE symbol = ?`, symbol)
	switch err = row.Scan(&shares); err {
	case nil:
		return shares, shares > 0, nil
	case sql.ErrNoRows:
		return 0, false, nil
	default:
		return 0, false, err
	}
}
