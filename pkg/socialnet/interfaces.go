package socialnet

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for all mutable network state: the
// connected/disconnected account partitions, the follow graph, posts, and
// per-account notification channels.
type Repository interface {
	// Account operations
	CreateAccount(ctx context.Context, account *Account) error
	GetAccount(ctx context.Context, username string) (*Account, error)
	SetConnectivity(ctx context.Context, username string, connected bool) error
	ListConnectedAccounts(ctx context.Context) ([]*Account, error)

	// Follow graph operations. Follower lists preserve subscription
	// insertion order; that order is the notification fan-out order.
	AddFollow(ctx context.Context, follower, target string) error
	RemoveFollow(ctx context.Context, follower, target string) error
	IsFollowing(ctx context.Context, follower, target string) (bool, error)
	ListFollowers(ctx context.Context, target string) ([]string, error)
	ListFollowing(ctx context.Context, follower string) ([]string, error)

	// Post operations. Mutations run atomically under the repository's
	// lock; concurrent likes, comments, and sale updates on one post
	// never lose each other's writes.
	CreatePost(ctx context.Context, post *Post) error
	GetPost(ctx context.Context, id uuid.UUID) (*Post, error)
	AddLike(ctx context.Context, id uuid.UUID, actor string) (*Post, bool, error)
	SetComment(ctx context.Context, id uuid.UUID, actor, text string) (*Post, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*Post, error)
	ScalePrice(ctx context.Context, id uuid.UUID, factor float64) (*Post, error)
	ListPostsByAuthor(ctx context.Context, author string) ([]*Post, error)

	// Notification channel operations
	AppendNotification(ctx context.Context, username, message string) error
	ListNotifications(ctx context.Context, username string) ([]string, error)
}

// EventSink defines the interface for reporting successful mutations. One
// event fires per successful operation, after state has changed; sink
// failures never fail the operation.
type EventSink interface {
	// AccountRegistered is fired when an account is registered
	AccountRegistered(ctx context.Context, account *Account) error

	// AccountConnected is fired when an account connects
	AccountConnected(ctx context.Context, account *Account) error

	// AccountDisconnected is fired when an account disconnects
	AccountDisconnected(ctx context.Context, username string) error

	// FollowAdded is fired when a follow edge is created
	FollowAdded(ctx context.Context, follower, target string) error

	// FollowRemoved is fired when a follow edge is removed
	FollowRemoved(ctx context.Context, follower, target string) error

	// PostPublished is fired when a post is published
	PostPublished(ctx context.Context, post *Post) error

	// PostLiked is fired when a post is liked
	PostLiked(ctx context.Context, post *Post, actor string) error

	// PostCommented is fired when a post receives a comment
	PostCommented(ctx context.Context, post *Post, actor, text string) error

	// PostSold is fired when a sale post is marked sold
	PostSold(ctx context.Context, post *Post) error

	// PostDiscounted is fired when a sale post price is discounted
	PostDiscounted(ctx context.Context, post *Post, percent float64) error
}

// ImageAsset is the opaque in-memory representation of an image. The library
// never decodes it; Data is whatever the ImageLibrary resolved for the
// reference.
type ImageAsset struct {
	Ref  string
	Data []byte
}

// ImageLibrary resolves an image reference to an opaque asset. Publishing an
// image post resolves the reference once; decoding and rendering stay
// outside this library.
type ImageLibrary interface {
	Resolve(ctx context.Context, ref string) (*ImageAsset, error)
}

// Displayer hands a resolved asset to an external display collaborator. It
// is invoked only by an explicit display request, never by publish.
type Displayer interface {
	Display(ctx context.Context, asset *ImageAsset) error
}
