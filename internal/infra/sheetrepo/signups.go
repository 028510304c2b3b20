package sheetrepo

import (
	"context"

	"slotbooking/internal/domain/signup"
	"slotbooking/internal/domain/slot"
	"slotbooking/internal/infra"
	"slotbooking/internal/infra/rowstore"
	"slotbooking/internal/pkg/phone"
)

// Signup sheet columns.
const (
	signupColTimestamp = iota
	signupColDate
	signupColSlotLabel
	signupColName
	signupColEmail
	signupColPhone
	signupColCategory
	signupColNotes
	signupColSlotID
	signupColStatus
)

type SignupRepository struct {
	gw    rowstore.Gateway
	sheet string
}

func NewSignupRepository(gw rowstore.Gateway, sheet string) *SignupRepository {
	return &SignupRepository{gw: gw, sheet: sheet}
}

// FindAll returns every signup row. The status cell is parsed into its
// tagged form here; no raw status strings travel upward.
func (r *SignupRepository) FindAll(ctx context.Context) ([]signup.Signup, error) {
	rows, err := r.gw.Get(ctx, rowstore.Range{Sheet: r.sheet})
	if err != nil {
		return nil, infra.WrapStoreErr(infra.KindStoreFailure, "failed to read signup rows", err)
	}

	signups := make([]signup.Signup, 0, len(rows))
	for i, row := range rows {
		signups = append(signups, parseSignup(signup.ID(dataRowToID(i+1)), row))
	}
	return signups, nil
}

// FindByID fetches one signup row, or a NOT_FOUND store error when the
// row does not exist.
func (r *SignupRepository) FindByID(ctx context.Context, id signup.ID) (*signup.Signup, error) {
	row := idToDataRow(int(id))
	if row < 1 {
		return nil, infra.WrapStoreErr(infra.KindNotFound, "signup row does not exist", nil)
	}

	rows, err := r.gw.Get(ctx, rowstore.Range{Sheet: r.sheet, StartRow: row, EndRow: row})
	if err != nil {
		return nil, infra.WrapStoreErr(infra.KindStoreFailure, "failed to read signup row", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, infra.WrapStoreErr(infra.KindNotFound, "signup row does not exist", nil)
	}

	s := parseSignup(id, rows[0])
	return &s, nil
}

// AppendOp builds the append mutation for a set of signup drafts.
func (r *SignupRepository) AppendOp(drafts []signup.Draft) rowstore.Op {
	rows := make([]rowstore.Row, len(drafts))
	for i, d := range drafts {
		rows[i] = rowstore.Row{
			d.Timestamp,
			d.Date,
			d.SlotLabel,
			d.Requester.Name,
			d.Requester.Email,
			d.Requester.Phone,
			d.Requester.Category,
			d.Requester.Notes,
			int(d.SlotID),
			signup.Active().Encode(),
		}
	}
	return rowstore.AppendRows(r.sheet, rows)
}

// SetStatusOp builds the status cell mutation for one signup row.
func (r *SignupRepository) SetStatusOp(id signup.ID, status signup.Status) rowstore.Op {
	return rowstore.UpdateCells(r.sheet, idToDataRow(int(id)), map[int]any{signupColStatus: status.Encode()})
}

func parseSignup(id signup.ID, row rowstore.Row) signup.Signup {
	return signup.Signup{
		ID:        id,
		Timestamp: cellString(row, signupColTimestamp),
		Date:      cellString(row, signupColDate),
		SlotLabel: cellString(row, signupColSlotLabel),
		Requester: signup.Requester{
			Name:     cellString(row, signupColName),
			Email:    cellString(row, signupColEmail),
			// Rows written by this service are already digits-only, but the
			// sheet can be edited by hand; ownership and duplicate checks
			// compare normalized phones, so normalize on the way in too.
			Phone:    phone.Normalize(cellString(row, signupColPhone)),
			Category: cellString(row, signupColCategory),
			Notes:    cellString(row, signupColNotes),
		},
		SlotID: slot.ID(cellInt(row, signupColSlotID)),
		Status: signup.ParseStatus(cellString(row, signupColStatus)),
	}
}
