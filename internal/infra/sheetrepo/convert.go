package sheetrepo

import (
	"strconv"
	"strings"

	"slotbooking/internal/infra/rowstore"
)

// The store's surrogate keys are, historically, sheet row numbers: the
// header occupies row 1 and the first data row is row 2. That positional
// detail is confined to this package; everything above it sees opaque IDs.
const headerRows = 1

func idToDataRow(id int) int {
	return id - headerRows
}

func dataRowToID(row int) int {
	return row + headerRows
}

func cellString(row rowstore.Row, col int) string {
	if col >= len(row) {
		return ""
	}
	switch v := row[col].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

func cellInt(row rowstore.Row, col int) int {
	if col >= len(row) {
		return 0
	}
	switch v := row[col].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
