package repository

import (
	"context"
	"fmt"

	"github.com/ironforge/footylab/internal/gen"
	"github.com/ironforge/footylab/internal/store"
)

// TransferRepository handles transfer history data access
type TransferRepository struct {
	db *store.Database
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *store.Database) *TransferRepository {
	return &TransferRepository{db: db}
}

// GetBySeason returns a season's transfers, biggest fees first. An empty
// season returns the whole ledger.
func (r *TransferRepository) GetBySeason(ctx context.Context, season string) ([]*gen.Transfer, error) {
	query := `
		SELECT transfer_id, season, transfer_window, to_char(transfer_date, 'YYYY-MM-DD'),
			player_id, player_name, from_club, to_club,
			transfer_type, transfer_fee, contract_length_years, weekly_wage,
			player_age, player_ability, reason
		FROM transfers
		WHERE $1 = '' OR season = $1
		ORDER BY transfer_fee DESC, transfer_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("querying transfers: %w", err)
	}
	defer rows.Close()

	var transfers []*gen.Transfer
	for rows.Next() {
		t := &gen.Transfer{}
		err := rows.Scan(
			&t.TransferID, &t.Season, &t.Window, &t.Date,
			&t.PlayerID, &t.PlayerName, &t.FromClub, &t.ToClub,
			&t.Type, &t.Fee, &t.ContractLengthYears, &t.WeeklyWage,
			&t.PlayerAge, &t.PlayerAbility, &t.Reason,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning transfer: %w", err)
		}
		transfers = append(transfers, t)
	}

	return transfers, rows.Err()
}
