package database

import (
	"time"
)

// Run is one recorded rewrite pass.
type Run struct {
	ID            int64     `db:"id"`
	Root          string    `db:"root"`
	FilesScanned  int       `db:"files_scanned"`
	FilesModified int       `db:"files_modified"`
	IconsReplaced int       `db:"icons_replaced"`
	ErrorCount    int       `db:"error_count"`
	DryRun        bool      `db:"dry_run"`
	FinishedAt    time.Time `db:"finished_at"`
}

// RunFile is one file touched (or failed) during a run. Files scanned but
// left unchanged are not stored; only the interesting ones are.
type RunFile struct {
	ID            int64   `db:"id"`
	RunID         int64   `db:"run_id"`
	Path          string  `db:"path"`
	IconsReplaced int     `db:"icons_replaced"`
	Error         *string `db:"error"`
}
