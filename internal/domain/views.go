package domain

import "time"

// View types are the externally visible shapes assembled by the
// services. Every response goes through one of these; handlers never
// build ad hoc maps.

// ProfileView is the public representation of a user as seen by a viewer.
type ProfileView struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

// ArticleView is the composed representation of an article: the stored
// entity joined with its author profile, tag list, favorite count and
// the viewer's favorite state.
type ArticleView struct {
	Slug           string      `json:"slug"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Body           string      `json:"body"`
	TagList        []string    `json:"tagList"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
	Favorited      bool        `json:"favorited"`
	FavoritesCount int         `json:"favoritesCount"`
	Author         ProfileView `json:"author"`
}

// ArticleList pairs a page of composed articles with the total count of
// the unfiltered population.
type ArticleList struct {
	Articles      []ArticleView `json:"articles"`
	ArticlesCount int           `json:"articlesCount"`
}

// CommentView is the composed representation of a comment.
type CommentView struct {
	ID        string      `json:"id"`
	Body      string      `json:"body"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Author    ProfileView `json:"author"`
}

// UserView is the authenticated user's own representation. Token is
// attached on auth operations only.
type UserView struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Token    string `json:"token,omitempty"`
}

// NewProfileView builds a profile for a user with an explicit follow
// flag. A nil user yields an empty profile rather than a panic, so
// composition tolerates a missing author row.
func NewProfileView(u *User, following bool) ProfileView {
	if u == nil {
		return ProfileView{Following: following}
	}
	return ProfileView{
		Username:  u.Username,
		Bio:       u.Bio,
		Image:     u.Image,
		Following: following,
	}
}
