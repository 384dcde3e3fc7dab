package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"obmenBack/internal/models"
)

type ProposalRepository struct {
	DB *sql.DB
}

func (r *ProposalRepository) CreateProposal(ctx context.Context, p models.ExchangeProposal) (models.ExchangeProposal, error) {
	query := `
        INSERT INTO exchange_proposals (sender_id, receiver_id, ad_id, status, created_at)
        VALUES (?, ?, ?, ?, ?)
		`
	result, err := r.DB.ExecContext(ctx, query,
		p.SenderID,
		p.ReceiverID,
		p.AdID,
		p.Status,
		p.CreatedAt,
	)
	if err != nil {
		return models.ExchangeProposal{}, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return models.ExchangeProposal{}, err
	}
	p.ID = int(lastID)
	return p, nil
}

func (r *ProposalRepository) GetProposalByID(ctx context.Context, id int) (models.ExchangeProposal, error) {
	query := `
        SELECT id, sender_id, receiver_id, ad_id, status, created_at, updated_at
        FROM exchange_proposals
        WHERE id = ?
	`
	var p models.ExchangeProposal
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.SenderID, &p.ReceiverID, &p.AdID, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ExchangeProposal{}, models.ErrProposalNotFound
	}
	if err != nil {
		return models.ExchangeProposal{}, err
	}
	return p, nil
}

// ListProposals returns the user's proposals. role narrows to "sender" or
// "receiver"; any other value selects both sides. A non-empty statuses set
// restricts to matching statuses.
func (r *ProposalRepository) ListProposals(ctx context.Context, userID int, role string, statuses []string) ([]models.ExchangeProposal, error) {
	var (
		params     []interface{}
		conditions []string
	)

	baseQuery := `
        SELECT id, sender_id, receiver_id, ad_id, status, created_at, updated_at
        FROM exchange_proposals
	`

	switch role {
	case "sender":
		conditions = append(conditions, "sender_id = ?")
		params = append(params, userID)
	case "receiver":
		conditions = append(conditions, "receiver_id = ?")
		params = append(params, userID)
	default:
		conditions = append(conditions, "(sender_id = ? OR receiver_id = ?)")
		params = append(params, userID, userID)
	}

	if len(statuses) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(statuses)), ",")
		conditions = append(conditions, fmt.Sprintf("status IN (%s)", placeholders))
		for _, s := range statuses {
			params = append(params, s)
		}
	}

	baseQuery += " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY id"

	rows, err := r.DB.QueryContext(ctx, baseQuery, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var proposals []models.ExchangeProposal
	for rows.Next() {
		var p models.ExchangeProposal
		if err := rows.Scan(
			&p.ID, &p.SenderID, &p.ReceiverID, &p.AdID, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}

func (r *ProposalRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `UPDATE exchange_proposals SET status = ?, updated_at = ? WHERE id = ?`
	res, err := r.DB.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrProposalNotFound
	}
	return nil
}
