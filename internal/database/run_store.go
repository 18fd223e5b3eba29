package database

import (
	"context"
	"fmt"
	"time"

	"github.com/haytac/fa2emoji/pkg/interfaces"
)

// RunStore persists run history.
type RunStore struct {
	db *DB
}

// NewRunStore creates a new RunStore.
func NewRunStore(db *DB) *RunStore {
	return &RunStore{db: db}
}

// CreateRun inserts a run and returns its ID.
func (s *RunStore) CreateRun(ctx context.Context, run *Run) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (root, files_scanned, files_modified, icons_replaced, error_count, dry_run, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Root, run.FilesScanned, run.FilesModified, run.IconsReplaced,
		run.ErrorCount, run.DryRun, run.FinishedAt)
	if err != nil {
		return 0, fmt.Errorf("CreateRun exec: %w", err)
	}
	return res.LastInsertId()
}

// AddRunFile attaches one file record to a run.
func (s *RunStore) AddRunFile(ctx context.Context, rf *RunFile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO run_files (run_id, path, icons_replaced, error)
		VALUES (?, ?, ?, ?)`,
		rf.RunID, rf.Path, rf.IconsReplaced, rf.Error)
	if err != nil {
		return fmt.Errorf("AddRunFile exec: %w", err)
	}
	return nil
}

// RecordRun stores a completed run and its noteworthy per-file results
// (files with substitutions or errors; untouched files are only reflected
// in the scanned counter).
func (s *RunStore) RecordRun(ctx context.Context, root string, dryRun bool, results []interfaces.FileResult) (int64, error) {
	run := &Run{
		Root:       root,
		DryRun:     dryRun,
		FinishedAt: time.Now().UTC(),
	}
	for _, r := range results {
		run.FilesScanned++
		switch {
		case r.Err != nil:
			run.ErrorCount++
		case r.Modified:
			run.FilesModified++
		}
		run.IconsReplaced += r.Count
	}

	id, err := s.CreateRun(ctx, run)
	if err != nil {
		return 0, err
	}

	for _, r := range results {
		if r.Count == 0 && r.Err == nil {
			continue
		}
		rf := &RunFile{RunID: id, Path: r.Path, IconsReplaced: r.Count}
		if r.Err != nil {
			msg := r.Err.Error()
			rf.Error = &msg
		}
		if err := s.AddRunFile(ctx, rf); err != nil {
			return id, err
		}
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *RunStore) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, root, files_scanned, files_modified, icons_replaced, error_count, dry_run, finished_at
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("ListRuns query: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		r := &Run{}
		err := rows.Scan(&r.ID, &r.Root, &r.FilesScanned, &r.FilesModified,
			&r.IconsReplaced, &r.ErrorCount, &r.DryRun, &r.FinishedAt)
		if err != nil {
			return nil, fmt.Errorf("ListRuns scan: %w", err)
		}
		runs = append(runs, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRuns rows error: %w", err)
	}
	return runs, nil
}

// GetRunFiles returns the file records attached to a run.
func (s *RunStore) GetRunFiles(ctx context.Context, runID int64) ([]*RunFile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, path, icons_replaced, error
		FROM run_files WHERE run_id = ? ORDER BY path`, runID)
	if err != nil {
		return nil, fmt.Errorf("GetRunFiles query: %w", err)
	}
	defer rows.Close()

	var files []*RunFile
	for rows.Next() {
		rf := &RunFile{}
		if err := rows.Scan(&rf.ID, &rf.RunID, &rf.Path, &rf.IconsReplaced, &rf.Error); err != nil {
			return nil, fmt.Errorf("GetRunFiles scan: %w", err)
		}
		files = append(files, rf)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("GetRunFiles rows error: %w", err)
	}
	return files, nil
}
