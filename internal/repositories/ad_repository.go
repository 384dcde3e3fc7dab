package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"obmenBack/internal/models"
)

type AdRepository struct {
	DB *sql.DB
}

func (r *AdRepository) CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	query := `
        INSERT INTO ads (user_id, title, description, image_url, category_id, item_condition, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
		`
	result, err := r.DB.ExecContext(ctx, query,
		ad.UserID,
		ad.Title,
		ad.Description,
		ad.ImageURL,
		ad.CategoryID,
		ad.Condition,
		ad.CreatedAt,
	)
	if err != nil {
		return models.Ad{}, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return models.Ad{}, err
	}
	ad.ID = int(lastID)
	return ad, nil
}

func (r *AdRepository) GetAdByID(ctx context.Context, id int) (models.Ad, error) {
	query := `
        SELECT id, user_id, title, description, image_url, category_id, item_condition, created_at, updated_at
        FROM ads
        WHERE id = ?
	`
	var ad models.Ad
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&ad.ID, &ad.UserID, &ad.Title, &ad.Description, &ad.ImageURL,
		&ad.CategoryID, &ad.Condition, &ad.CreatedAt, &ad.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ad{}, models.ErrAdNotFound
	}
	if err != nil {
		return models.Ad{}, err
	}
	return ad, nil
}

// UpdateAd rewrites the mutable fields. Owner and created_at never change
// after creation.
func (r *AdRepository) UpdateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	query := `
        UPDATE ads
        SET title = ?, description = ?, image_url = ?, category_id = ?, item_condition = ?, updated_at = ?
        WHERE id = ?
    `
	updatedAt := time.Now()
	ad.UpdatedAt = &updatedAt
	result, err := r.DB.ExecContext(ctx, query,
		ad.Title, ad.Description, ad.ImageURL, ad.CategoryID, ad.Condition, ad.UpdatedAt, ad.ID,
	)
	if err != nil {
		return models.Ad{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Ad{}, err
	}
	if rowsAffected == 0 {
		return models.Ad{}, models.ErrAdNotFound
	}
	return r.GetAdByID(ctx, ad.ID)
}

func (r *AdRepository) DeleteAd(ctx context.Context, id int) error {
	query := `DELETE FROM ads WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrAdNotFound
	}
	return nil
}

const adColumns = `id, user_id, title, description, image_url, category_id, item_condition, created_at, updated_at`

func (r *AdRepository) ListAds(ctx context.Context) ([]models.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads ORDER BY id`
	return r.queryAds(ctx, query)
}

func (r *AdRepository) ListAdsByOwner(ctx context.Context, userID int) ([]models.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE user_id = ? ORDER BY id`
	return r.queryAds(ctx, query, userID)
}

func (r *AdRepository) ListAdsExcludingOwner(ctx context.Context, userID int) ([]models.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE user_id <> ? ORDER BY id`
	return r.queryAds(ctx, query, userID)
}

func (r *AdRepository) queryAds(ctx context.Context, query string, args ...interface{}) ([]models.Ad, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []models.Ad
	for rows.Next() {
		var ad models.Ad
		if err := rows.Scan(
			&ad.ID, &ad.UserID, &ad.Title, &ad.Description, &ad.ImageURL,
			&ad.CategoryID, &ad.Condition, &ad.CreatedAt, &ad.UpdatedAt,
		); err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}
