package db

import (
	"context"
	"database/sql"
	"errors"

	"meus-podcasts/internal/models"
)

const podcastColumns = "id, titulo, descricao, autor, poster_url, feed_url"

// ListPodcasts returns every podcast in the base.
func (s *Store) ListPodcasts(ctx context.Context) ([]models.Podcast, error) {
	var podcasts []models.Podcast
	err := s.db.SelectContext(ctx, &podcasts, "SELECT "+podcastColumns+" FROM podcast ORDER BY id")
	if err != nil {
		return nil, err
	}
	return podcasts, nil
}

// GetPodcastByID fetches a podcast by primary key.
func (s *Store) GetPodcastByID(ctx context.Context, id int64) (*models.Podcast, error) {
	podcast := &models.Podcast{}
	err := s.db.GetContext(ctx, podcast, "SELECT "+podcastColumns+" FROM podcast WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return podcast, nil
}

// GetPodcastByTitle looks a podcast up by title, case-insensitively.
// Used by the import dedup pre-check.
func (s *Store) GetPodcastByTitle(ctx context.Context, titulo string) (*models.Podcast, error) {
	podcast := &models.Podcast{}
	query := "SELECT " + podcastColumns + " FROM podcast WHERE LOWER(titulo) = LOWER($1)"
	err := s.db.GetContext(ctx, podcast, query, titulo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return podcast, nil
}

// CreatePodcast inserts a podcast inside a transaction and returns the
// committed row, re-read by its assigned id. A title collision (the
// unique index on LOWER(titulo)) yields ErrDuplicate and no state change.
func (s *Store) CreatePodcast(ctx context.Context, p *models.Podcast) (*models.Podcast, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO podcast (titulo, descricao, autor, poster_url, feed_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err = tx.GetContext(ctx, &id, query, p.Titulo, p.Descricao, p.Autor, p.PosterURL, p.FeedURL)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.GetPodcastByID(ctx, id)
}
