package models

// Podcast represents an imported podcast. FeedURL is the URL the feed
// was imported from, stored verbatim.
type Podcast struct {
	ID        int64  `db:"id" json:"id"`
	Titulo    string `db:"titulo" json:"titulo"`
	Descricao string `db:"descricao" json:"descricao"`
	Autor     string `db:"autor" json:"autor"`
	PosterURL string `db:"poster_url" json:"poster_url"`
	FeedURL   string `db:"feed_url" json:"feed_url"`
}
