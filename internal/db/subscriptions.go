package db

import (
	"context"

	"meus-podcasts/internal/models"
)

// ListUserPodcasts returns the podcasts in a user's list, in storage
// order.
func (s *Store) ListUserPodcasts(ctx context.Context, usuarioID int64) ([]models.Podcast, error) {
	query := `
		SELECT p.id, p.titulo, p.descricao, p.autor, p.poster_url, p.feed_url
		FROM podcast p
		JOIN rel_podcast_usuario r ON r.podcast_id = p.id
		WHERE r.usuario_id = $1
	`
	var podcasts []models.Podcast
	err := s.db.SelectContext(ctx, &podcasts, query, usuarioID)
	if err != nil {
		return nil, err
	}
	return podcasts, nil
}

// HasSubscription reports whether the (user, podcast) membership exists.
func (s *Store) HasSubscription(ctx context.Context, usuarioID, podcastID int64) (bool, error) {
	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM rel_podcast_usuario WHERE usuario_id = $1 AND podcast_id = $2)"
	err := s.db.GetContext(ctx, &exists, query, usuarioID, podcastID)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// AddSubscription inserts the membership row. The composite primary key
// rejects a duplicate pair with ErrDuplicate.
func (s *Store) AddSubscription(ctx context.Context, usuarioID, podcastID int64) error {
	query := "INSERT INTO rel_podcast_usuario (usuario_id, podcast_id) VALUES ($1, $2)"
	_, err := s.db.ExecContext(ctx, query, usuarioID, podcastID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// RemoveSubscription deletes the membership row. ErrNotFound is returned
// when the podcast was not in the user's list.
func (s *Store) RemoveSubscription(ctx context.Context, usuarioID, podcastID int64) error {
	query := "DELETE FROM rel_podcast_usuario WHERE usuario_id = $1 AND podcast_id = $2"
	res, err := s.db.ExecContext(ctx, query, usuarioID, podcastID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
