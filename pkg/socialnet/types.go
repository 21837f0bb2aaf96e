package socialnet

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// PostKind is the domain type for post variants.
type PostKind string

// Post kind constants (typed).
const (
	PostKindText  PostKind = "text"
	PostKindImage PostKind = "image"
	PostKindSale  PostKind = "sale"
)

// Account represents a registered identity. Follow edges, posts and
// notifications are relationship state owned by the Repository, not embedded
// here.
type Account struct {
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Connected bool      `json:"connected"`
	CreatedAt time.Time `json:"created_at"`
}

// Post represents a published post. Kind selects which payload fields are
// meaningful: Body for text posts, ImageRef for image posts, and
// Item/Price/Location/Available for sale listings. Likes has set semantics
// (one like per account); Comments holds one slot per commenting account,
// overwritten on re-comment.
type Post struct {
	ID        uuid.UUID           `json:"id"`
	Author    string              `json:"author"`
	Kind      PostKind            `json:"kind"`
	Body      string              `json:"body,omitempty"`
	ImageRef  string              `json:"image_ref,omitempty"`
	Item      string              `json:"item,omitempty"`
	Price     float64             `json:"price,omitempty"`
	Location  string              `json:"location,omitempty"`
	Available bool                `json:"available,omitempty"`
	Likes     map[string]struct{} `json:"-"`
	Comments  map[string]string   `json:"-"`
	CreatedAt time.Time           `json:"created_at"`
}

// LikedBy reports whether username already likes the post.
func (p *Post) LikedBy(username string) bool {
	_, ok := p.Likes[username]
	return ok
}

// Announcement returns the deterministic per-variant announcement string,
// prefixed with the author's username.
func (p *Post) Announcement() string {
	switch p.Kind {
	case PostKindText:
		return p.Author + " published a post:\n\"" + p.Body + "\""
	case PostKindImage:
		return p.Author + " posted a picture"
	case PostKindSale:
		state := "For sale!"
		if !p.Available {
			state = "Sold!"
		}
		return fmt.Sprintf("%s posted a product for sale:\n%s %s, price: %s, pickup from: %s",
			p.Author, state, p.Item, formatPrice(p.Price), p.Location)
	default:
		return p.Author + " published a post"
	}
}

// formatPrice renders a price without trailing zeros (100 not 100.000000).
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// Notification message constructors. These are the only strings ever
// appended to a notification channel.

func newPostNotification(author string) string {
	return author + " has a new post"
}

func likeNotification(actor string) string {
	return actor + " liked your post"
}

func commentNotification(actor, text string) string {
	return actor + " commented on your post: " + text
}
