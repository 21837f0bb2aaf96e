package socialnet

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the main interface for the socialnet library
type Service interface {
	// Account registry operations
	Register(ctx context.Context, req RegisterRequest) (*Account, error)
	Connect(ctx context.Context, req ConnectRequest) (*Account, error)
	Disconnect(ctx context.Context, username string) error
	GetAccount(ctx context.Context, username string) (*Account, error)
	Render(ctx context.Context) (string, error)

	// Social graph operations
	Follow(ctx context.Context, follower, target string) error
	Unfollow(ctx context.Context, follower, target string) error
	Followers(ctx context.Context, username string) ([]string, error)
	Following(ctx context.Context, username string) ([]string, error)

	// Content operations
	Publish(ctx context.Context, req PublishPostRequest) (*Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*Post, error)
	ListPosts(ctx context.Context, author string) ([]*Post, error)
	Like(ctx context.Context, postID uuid.UUID, actor string) error
	Comment(ctx context.Context, req CommentRequest) error

	// Sale listing operations
	MarkSold(ctx context.Context, postID uuid.UUID, password string) (bool, error)
	ApplyDiscount(ctx context.Context, req DiscountRequest) error

	// Image display (delegated to the Displayer collaborator)
	DisplayImage(ctx context.Context, postID uuid.UUID) error

	// Notification channel access
	Notifications(ctx context.Context, username string) ([]string, error)
}
