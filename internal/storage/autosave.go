/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"nuviacanvas/internal/domain"
)

// language=SQL
const insertAutosaveSQL = `INSERT INTO autosaves(ts, doc_blob) VALUES (?, ?)`

// language=SQL
const selectLatestAutosaveSQL = `SELECT ts, doc_blob FROM autosaves ORDER BY ts DESC LIMIT 1`

// language=SQL
const listAutosavesSQL = `SELECT ts FROM autosaves ORDER BY ts DESC LIMIT ?`

// language=SQL
const pruneAutosavesSQL = `DELETE FROM autosaves WHERE id NOT IN (
	SELECT id FROM autosaves ORDER BY ts DESC LIMIT ?
)`

// SaveAutosave persists an autosave snapshot of the handle's document into
// the design's index database, keeping at most keep rows (0 keeps all).
func SaveAutosave(ctx context.Context, h *DesignHandle, keep int) error {
	if h == nil {
		return errors.New("nil DesignHandle")
	}
	blob, err := domain.EncodeDocument(h.Doc)
	if err != nil {
		return err
	}
	db, err := InitOrOpenIndex(h.Root)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	ts := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := db.ExecContext(ctx, insertAutosaveSQL, ts, blob); err != nil {
		return fmt.Errorf("insert autosave: %w", err)
	}
	if keep > 0 {
		if _, err := db.ExecContext(ctx, pruneAutosavesSQL, keep); err != nil {
			return fmt.Errorf("prune autosaves: %w", err)
		}
	}
	return nil
}

// LatestAutosave returns the newest autosave document, or ok=false when the
// index holds none.
func LatestAutosave(ctx context.Context, h *DesignHandle) (domain.Document, time.Time, bool, error) {
	if h == nil {
		return domain.Document{}, time.Time{}, false, errors.New("nil DesignHandle")
	}
	db, err := InitOrOpenIndex(h.Root)
	if err != nil {
		return domain.Document{}, time.Time{}, false, err
	}
	defer func() { _ = db.Close() }()
	var tsStr string
	var blob []byte
	err = db.QueryRowContext(ctx, selectLatestAutosaveSQL).Scan(&tsStr, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Document{}, time.Time{}, false, nil
	}
	if err != nil {
		return domain.Document{}, time.Time{}, false, fmt.Errorf("read autosave: %w", err)
	}
	doc, err := domain.DecodeDocument(blob)
	if err != nil {
		return domain.Document{}, time.Time{}, false, err
	}
	ts, terr := time.Parse(time.RFC3339Nano, tsStr)
	if terr != nil {
		ts = time.Time{}
	}
	return doc, ts, true, nil
}

// ListAutosaves returns the timestamps of up to limit most recent autosaves,
// newest first.
func ListAutosaves(ctx context.Context, h *DesignHandle, limit int) ([]time.Time, error) {
	if h == nil {
		return nil, errors.New("nil DesignHandle")
	}
	if limit <= 0 {
		limit = 20
	}
	db, err := InitOrOpenIndex(h.Root)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()
	rows, err := db.QueryContext(ctx, listAutosavesSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list autosaves: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []time.Time
	for rows.Next() {
		var tsStr string
		if err := rows.Scan(&tsStr); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339Nano, tsStr); err == nil {
			out = append(out, ts)
		}
	}
	return out, rows.Err()
}
