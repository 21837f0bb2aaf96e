package socialnet

import "github.com/google/uuid"

// Request DTOs

// RegisterRequest contains parameters for registering an account. Password
// length is bounded to [4,8].
type RegisterRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required,min=4,max=8"`
}

// ConnectRequest contains parameters for connecting a disconnected account.
type ConnectRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// PublishPostRequest contains parameters for publishing a post. Exactly one
// payload applies per kind: Body for text, ImageRef for image,
// Item/Price/Location for sale.
type PublishPostRequest struct {
	Author   string   `validate:"required"`
	Kind     PostKind `validate:"required,oneof=text image sale"`
	Body     string   `validate:"required_if=Kind text"`
	ImageRef string   `validate:"required_if=Kind image"`
	Item     string   `validate:"required_if=Kind sale"`
	Price    float64  `validate:"gte=0"`
	Location string   `validate:"required_if=Kind sale"`
}

// CommentRequest contains parameters for commenting on a post.
type CommentRequest struct {
	PostID uuid.UUID `validate:"required"`
	Actor  string    `validate:"required"`
	Text   string    `validate:"required"`
}

// DiscountRequest contains parameters for discounting a sale listing.
// Percent is applied as price * (100-percent)/100.
type DiscountRequest struct {
	PostID   uuid.UUID `validate:"required"`
	Percent  float64
	Password string `validate:"required"`
}
