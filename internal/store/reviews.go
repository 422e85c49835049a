package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Review struct {
	ID          int64     `json:"id"`
	Rating      int       `json:"rating"` // 1-5
	Description string    `json:"description"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	BreweryID   string    `json:"brewery_id"`
	BreweryName string    `json:"brewery_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReviewsStore struct {
	db *pgxpool.Pool
}

// Upsert writes the review, overwriting rating and description in place when the
// user already reviewed this brewery. The unique constraint on
// (username, email, brewery_id) serializes concurrent writers, so at most one row
// per pair can ever exist. The returned bool reports whether a new row was created:
// xmax = 0 only holds for freshly inserted rows.
func (s *ReviewsStore) Upsert(ctx context.Context, review *Review) (bool, error) {
	query := `
        INSERT INTO reviews (rating, description, username, email, brewery_id, brewery_name)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (username, email, brewery_id) DO UPDATE
        SET rating = EXCLUDED.rating, description = EXCLUDED.description, updated_at = now()
        RETURNING id, created_at, updated_at, (xmax = 0)
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var created bool
	err := s.db.QueryRow(ctx, query,
		review.Rating,
		review.Description,
		review.Username,
		review.Email,
		review.BreweryID,
		review.BreweryName,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt, &created)
	if err != nil {
		return false, err
	}
	return created, nil
}

func (s *ReviewsStore) GetByBrewery(ctx context.Context, breweryID string) ([]Review, error) {
	query := `
        SELECT id, rating, description, username, email, brewery_id, brewery_name, created_at, updated_at
        FROM reviews
        WHERE brewery_id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, breweryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID,
			&review.Rating,
			&review.Description,
			&review.Username,
			&review.Email,
			&review.BreweryID,
			&review.BreweryName,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// AverageRating returns the arithmetic mean of all ratings for a brewery.
// A brewery with no reviews is ErrNotFound, never a numeric zero.
func (s *ReviewsStore) AverageRating(ctx context.Context, breweryID string) (float64, error) {
	query := `
        SELECT AVG(rating) FROM reviews WHERE brewery_id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var average *float64
	if err := s.db.QueryRow(ctx, query, breweryID).Scan(&average); err != nil {
		return 0, err
	}
	if average == nil {
		return 0, ErrNotFound
	}
	return *average, nil
}
