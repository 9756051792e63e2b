package domain

import "time"

// Article represents a stored article entity. Tag membership is shared:
// tags are attached by name, created lazily on first use and never
// deleted when the last article referencing them goes away.
type Article struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Body        string    `json:"body"`
	AuthorID    string    `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ArticleUpdate carries partial-update fields for an article.
// A nil or empty field means "leave unchanged", never "clear".
type ArticleUpdate struct {
	Title       *string
	Description *string
	Body        *string
}

// CanMutate reports whether an actor may update or delete a resource.
// Ownership is the only rule: the actor must be the resource's author.
func CanMutate(actorID, authorID string) bool {
	return actorID != "" && actorID == authorID
}
