/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package history persists a ledger of kernel runs (scenario evaluated, resulting chi2, band count, wall-clock
// duration) to a local SQLite database, so the bench CLI subcommand can answer "did this get better or worse
// since last time" without the caller having to keep their own spreadsheet. The kernel itself stays a pure
// function; this package is purely an outer-layer convenience, never imported by pkg/kernel.
package history

/*****************************************************************************************************************/

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*****************************************************************************************************************/

// Run is one recorded kernel evaluation.
type Run struct {
	ID         string `gorm:"primaryKey"`
	Scenario   string
	Bands      int
	Chi2       float64
	DurationMS int64
	CreatedAt  time.Time
}

/*****************************************************************************************************************/

// Ledger wraps a gorm.DB connection to the run-history table.
type Ledger struct {
	db *gorm.DB
}

/*****************************************************************************************************************/

// Open opens (and migrates, if necessary) the SQLite database at path.
func Open(path string) (*Ledger, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}

	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("history: migrate: %w", err)
	}

	return &Ledger{db: db}, nil
}

/*****************************************************************************************************************/

// Record inserts a new Run, generating a time-sortable ULID for its ID.
func (l *Ledger) Record(scenario string, bands int, chi2 float64, duration time.Duration) (Run, error) {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)

	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return Run{}, fmt.Errorf("history: generate run id: %w", err)
	}

	run := Run{
		ID:         id.String(),
		Scenario:   scenario,
		Bands:      bands,
		Chi2:       chi2,
		DurationMS: duration.Milliseconds(),
		CreatedAt:  time.Now(),
	}

	if err := l.db.Create(&run).Error; err != nil {
		return Run{}, fmt.Errorf("history: record run: %w", err)
	}

	return run, nil
}

/*****************************************************************************************************************/

// Recent returns the last n runs for scenario, most recent first.
func (l *Ledger) Recent(scenario string, n int) ([]Run, error) {
	var runs []Run

	q := l.db.Order("created_at desc").Limit(n)
	if scenario != "" {
		q = q.Where("scenario = ?", scenario)
	}

	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("history: list runs: %w", err)
	}

	return runs, nil
}

/*****************************************************************************************************************/

// Close releases the underlying SQLite connection.
func (l *Ledger) Close() error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return fmt.Errorf("history: close: %w", err)
	}

	return sqlDB.Close()
}

/*****************************************************************************************************************/
