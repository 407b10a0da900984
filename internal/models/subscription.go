package models

// Subscription links a user to a podcast in their list. The pair is the
// whole identity; there is no payload beyond the relation.
type Subscription struct {
	UsuarioID int64 `db:"usuario_id" json:"usuario_id"`
	PodcastID int64 `db:"podcast_id" json:"podcast_id"`
}
