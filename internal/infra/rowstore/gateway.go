// Package rowstore abstracts the remote, row-oriented store the service
// keeps its data in. The store offers batch reads and a batch mutation
// call that is applied as one unit server-side; it offers no multi-call
// transactions and no per-cell atomic increments. Everything above this
// package must live with those guarantees.
package rowstore

import "context"

// Row is one stored row. Cell values are strings or numbers (float64
// after JSON decoding); the store has no richer types.
type Row []any

// Range addresses a contiguous block of data rows within a sheet.
// Rows are 1-based and exclude the header row; StartRow 0 means the
// first data row, EndRow 0 means through the last.
type Range struct {
	Sheet    string `json:"sheet"`
	StartRow int    `json:"startRow,omitempty"`
	EndRow   int    `json:"endRow,omitempty"`
}

// AppendOp appends rows at the end of a sheet.
type AppendOp struct {
	Sheet string `json:"sheet"`
	Rows  []Row  `json:"rows"`
}

// UpdateOp overwrites individual cells of one data row. Cells maps
// zero-based column index to the new value.
type UpdateOp struct {
	Sheet string      `json:"sheet"`
	Row   int         `json:"row"`
	Cells map[int]any `json:"cells"`
}

// DeleteOp removes one data row; later rows shift up. Administrative use
// only.
type DeleteOp struct {
	Sheet string `json:"sheet"`
	Row   int    `json:"row"`
}

// Op is exactly one of Append, Update or Delete.
type Op struct {
	Append *AppendOp `json:"append,omitempty"`
	Update *UpdateOp `json:"update,omitempty"`
	Delete *DeleteOp `json:"delete,omitempty"`
}

// Gateway is the batch read/write surface of the row store. A BatchUpdate
// call is applied atomically by the store, but nothing stops another
// client from reading stale rows and issuing a conflicting BatchUpdate in
// between; write-time re-validation is the caller's problem.
type Gateway interface {
	Get(ctx context.Context, rng Range) ([]Row, error)
	BatchGet(ctx context.Context, ranges []Range) ([][]Row, error)
	BatchUpdate(ctx context.Context, ops []Op) error
}

func AppendRows(sheet string, rows []Row) Op {
	return Op{Append: &AppendOp{Sheet: sheet, Rows: rows}}
}

func UpdateCells(sheet string, row int, cells map[int]any) Op {
	return Op{Update: &UpdateOp{Sheet: sheet, Row: row, Cells: cells}}
}

func DeleteRow(sheet string, row int) Op {
	return Op{Delete: &DeleteOp{Sheet: sheet, Row: row}}
}
