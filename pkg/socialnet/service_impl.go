package socialnet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// service implements the Service interface
type service struct {
	repository Repository
	events     EventSink
	images     ImageLibrary
	displayer  Displayer
	validate   *validator.Validate
	name       string
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.events = sink
	}
}

// WithImageLibrary sets the image asset library for the service
func WithImageLibrary(library ImageLibrary) Option {
	return func(s *service) {
		s.images = library
	}
}

// WithDisplayer sets the display collaborator for the service
func WithDisplayer(displayer Displayer) Option {
	return func(s *service) {
		s.displayer = displayer
	}
}

// WithNetworkName sets the network name used by Render
func WithNetworkName(name string) Option {
	return func(s *service) {
		s.name = name
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		events:    NewNoopEventSink(),
		images:    NewPassthroughImageLibrary(),
		displayer: NewNoopDisplayer(),
		validate:  newValidator(),
		name:      "socialnet",
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}

	return s, nil
}

// Account registry operations

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Account, error) {
	if err := s.checkRegister(req); err != nil {
		return nil, &AccountError{Username: req.Username, Op: "register", Err: err}
	}

	account := &Account{
		Username:  req.Username,
		Password:  req.Password,
		Connected: true,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repository.CreateAccount(ctx, account); err != nil {
		return nil, &AccountError{Username: req.Username, Op: "register", Err: err}
	}

	_ = s.events.AccountRegistered(ctx, account) // sink failures never fail the operation

	return account, nil
}

func (s *service) Connect(ctx context.Context, req ConnectRequest) (*Account, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, &AccountError{Username: req.Username, Op: "connect", Err: err}
	}

	account, err := s.repository.GetAccount(ctx, req.Username)
	if err != nil {
		return nil, &AccountError{Username: req.Username, Op: "connect", Err: ErrUnknownAccount}
	}

	switch {
	case account.Connected && account.Password == req.Password:
		return nil, &AccountError{Username: req.Username, Op: "connect", Err: ErrAlreadyConnected}
	case account.Connected || account.Password != req.Password:
		// No disconnected account matches both username and password.
		return nil, &AccountError{Username: req.Username, Op: "connect", Err: ErrUnknownAccount}
	}

	if err := s.repository.SetConnectivity(ctx, req.Username, true); err != nil {
		return nil, &AccountError{Username: req.Username, Op: "connect", Err: err}
	}
	account.Connected = true

	_ = s.events.AccountConnected(ctx, account) // sink failures never fail the operation

	return account, nil
}

func (s *service) Disconnect(ctx context.Context, username string) error {
	account, err := s.repository.GetAccount(ctx, username)
	if err != nil {
		return &AccountError{Username: username, Op: "disconnect", Err: ErrUnknownAccount}
	}

	// The disconnected partition is checked first so a repeat disconnect
	// deterministically reports ErrAlreadyDisconnected.
	if !account.Connected {
		return &AccountError{Username: username, Op: "disconnect", Err: ErrAlreadyDisconnected}
	}

	if err := s.repository.SetConnectivity(ctx, username, false); err != nil {
		return &AccountError{Username: username, Op: "disconnect", Err: err}
	}

	_ = s.events.AccountDisconnected(ctx, username) // sink failures never fail the operation

	return nil
}

func (s *service) GetAccount(ctx context.Context, username string) (*Account, error) {
	return s.repository.GetAccount(ctx, username)
}

// Render returns a textual summary of the network: one line per connected
// account, ordered by username ascending.
func (s *service) Render(ctx context.Context) (string, error) {
	accounts, err := s.repository.ListConnectedAccounts(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(s.name + " social network:\n")
	for _, account := range accounts {
		posts, err := s.repository.ListPostsByAuthor(ctx, account.Username)
		if err != nil {
			return "", err
		}
		followers, err := s.repository.ListFollowers(ctx, account.Username)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "User name: %s, Number of posts: %d, Number of followers: %d\n",
			account.Username, len(posts), len(followers))
	}
	return b.String(), nil
}

// Social graph operations

func (s *service) Follow(ctx context.Context, follower, target string) error {
	if err := checkDistinct(follower, target); err != nil {
		return &AccountError{Username: follower, Op: "follow", Err: err}
	}

	actor, err := s.repository.GetAccount(ctx, follower)
	if err != nil {
		return &AccountError{Username: follower, Op: "follow", Err: err}
	}
	if err := checkConnected(actor); err != nil {
		return &AccountError{Username: follower, Op: "follow", Err: err}
	}
	if _, err := s.repository.GetAccount(ctx, target); err != nil {
		return &AccountError{Username: target, Op: "follow", Err: err}
	}

	if err := s.repository.AddFollow(ctx, follower, target); err != nil {
		return &AccountError{Username: follower, Op: "follow", Err: err}
	}

	_ = s.events.FollowAdded(ctx, follower, target) // sink failures never fail the operation

	return nil
}

func (s *service) Unfollow(ctx context.Context, follower, target string) error {
	if err := checkDistinct(follower, target); err != nil {
		return &AccountError{Username: follower, Op: "unfollow", Err: err}
	}

	actor, err := s.repository.GetAccount(ctx, follower)
	if err != nil {
		return &AccountError{Username: follower, Op: "unfollow", Err: err}
	}
	if err := checkConnected(actor); err != nil {
		return &AccountError{Username: follower, Op: "unfollow", Err: err}
	}
	if _, err := s.repository.GetAccount(ctx, target); err != nil {
		return &AccountError{Username: target, Op: "unfollow", Err: err}
	}

	if err := s.repository.RemoveFollow(ctx, follower, target); err != nil {
		return &AccountError{Username: follower, Op: "unfollow", Err: err}
	}

	_ = s.events.FollowRemoved(ctx, follower, target) // sink failures never fail the operation

	return nil
}

func (s *service) Followers(ctx context.Context, username string) ([]string, error) {
	if _, err := s.repository.GetAccount(ctx, username); err != nil {
		return nil, err
	}
	return s.repository.ListFollowers(ctx, username)
}

func (s *service) Following(ctx context.Context, username string) ([]string, error) {
	if _, err := s.repository.GetAccount(ctx, username); err != nil {
		return nil, err
	}
	return s.repository.ListFollowing(ctx, username)
}

// Content operations

func (s *service) Publish(ctx context.Context, req PublishPostRequest) (*Post, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, &AccountError{Username: req.Author, Op: "publish", Err: err}
	}

	author, err := s.repository.GetAccount(ctx, req.Author)
	if err != nil {
		return nil, &AccountError{Username: req.Author, Op: "publish", Err: err}
	}
	if err := checkConnected(author); err != nil {
		return nil, &AccountError{Username: req.Author, Op: "publish", Err: err}
	}

	post := &Post{
		ID:        uuid.New(),
		Author:    req.Author,
		Kind:      req.Kind,
		Body:      req.Body,
		ImageRef:  req.ImageRef,
		Item:      req.Item,
		Price:     req.Price,
		Location:  req.Location,
		Likes:     make(map[string]struct{}),
		Comments:  make(map[string]string),
		CreatedAt: time.Now().UTC(),
	}
	if req.Kind == PostKindSale {
		post.Available = true
	}

	if req.Kind == PostKindImage {
		// The asset stays an opaque handle; resolution only confirms the
		// reference is usable.
		if _, err := s.images.Resolve(ctx, req.ImageRef); err != nil {
			return nil, &AccountError{Username: req.Author, Op: "publish", Err: err}
		}
	}

	if err := s.repository.CreatePost(ctx, post); err != nil {
		return nil, &PostError{PostID: post.ID, Op: "publish", Err: err}
	}

	if err := s.notifyFollowers(ctx, req.Author); err != nil {
		return nil, &PostError{PostID: post.ID, Op: "publish", Err: err}
	}

	_ = s.events.PostPublished(ctx, post) // sink failures never fail the operation

	return post, nil
}

// notifyFollowers appends the new-post notification to every subscriber of
// the author, in subscription insertion order.
func (s *service) notifyFollowers(ctx context.Context, author string) error {
	followers, err := s.repository.ListFollowers(ctx, author)
	if err != nil {
		return err
	}
	message := newPostNotification(author)
	for _, follower := range followers {
		if err := s.repository.AppendNotification(ctx, follower, message); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) GetPost(ctx context.Context, id uuid.UUID) (*Post, error) {
	return s.repository.GetPost(ctx, id)
}

func (s *service) ListPosts(ctx context.Context, author string) ([]*Post, error) {
	if _, err := s.repository.GetAccount(ctx, author); err != nil {
		return nil, err
	}
	return s.repository.ListPostsByAuthor(ctx, author)
}

func (s *service) Like(ctx context.Context, postID uuid.UUID, actor string) error {
	account, err := s.repository.GetAccount(ctx, actor)
	if err != nil {
		return &PostError{PostID: postID, Op: "like", Err: err}
	}
	if err := checkConnected(account); err != nil {
		return &PostError{PostID: postID, Op: "like", Err: err}
	}

	post, added, err := s.repository.AddLike(ctx, postID, actor)
	if err != nil {
		return &PostError{PostID: postID, Op: "like", Err: err}
	}

	// Set semantics: a repeat like changes nothing and notifies nobody.
	if !added {
		return nil
	}

	if actor != post.Author {
		if err := s.repository.AppendNotification(ctx, post.Author, likeNotification(actor)); err != nil {
			return &PostError{PostID: postID, Op: "like", Err: err}
		}
	}

	_ = s.events.PostLiked(ctx, post, actor) // sink failures never fail the operation

	return nil
}

func (s *service) Comment(ctx context.Context, req CommentRequest) error {
	if err := s.checkRequest(req); err != nil {
		return &PostError{PostID: req.PostID, Op: "comment", Err: err}
	}

	account, err := s.repository.GetAccount(ctx, req.Actor)
	if err != nil {
		return &PostError{PostID: req.PostID, Op: "comment", Err: err}
	}
	if err := checkConnected(account); err != nil {
		return &PostError{PostID: req.PostID, Op: "comment", Err: err}
	}

	// One comment slot per commenter; re-commenting overwrites.
	post, err := s.repository.SetComment(ctx, req.PostID, req.Actor, req.Text)
	if err != nil {
		return &PostError{PostID: req.PostID, Op: "comment", Err: err}
	}

	if req.Actor != post.Author {
		message := commentNotification(req.Actor, req.Text)
		if err := s.repository.AppendNotification(ctx, post.Author, message); err != nil {
			return &PostError{PostID: req.PostID, Op: "comment", Err: err}
		}
	}

	_ = s.events.PostCommented(ctx, post, req.Actor, req.Text) // sink failures never fail the operation

	return nil
}

// Sale listing operations

func (s *service) MarkSold(ctx context.Context, postID uuid.UUID, password string) (bool, error) {
	post, err := s.repository.GetPost(ctx, postID)
	if err != nil {
		return false, &PostError{PostID: postID, Op: "sold", Err: err}
	}
	if post.Kind != PostKindSale {
		return false, &PostError{PostID: postID, Op: "sold", Err: ErrInvalidRequest}
	}

	author, err := s.repository.GetAccount(ctx, post.Author)
	if err != nil {
		return false, &PostError{PostID: postID, Op: "sold", Err: err}
	}

	// A wrong password is not an error here: availability is defensively
	// reset and the call reports failure through the boolean.
	if password == "" || password != author.Password {
		if _, err := s.repository.SetAvailability(ctx, postID, true); err != nil {
			return false, &PostError{PostID: postID, Op: "sold", Err: err}
		}
		return false, nil
	}

	post, err = s.repository.SetAvailability(ctx, postID, false)
	if err != nil {
		return false, &PostError{PostID: postID, Op: "sold", Err: err}
	}

	_ = s.events.PostSold(ctx, post) // sink failures never fail the operation

	return true, nil
}

func (s *service) ApplyDiscount(ctx context.Context, req DiscountRequest) error {
	if err := s.checkRequest(req); err != nil {
		return &PostError{PostID: req.PostID, Op: "discount", Err: err}
	}

	post, err := s.repository.GetPost(ctx, req.PostID)
	if err != nil {
		return &PostError{PostID: req.PostID, Op: "discount", Err: err}
	}
	if post.Kind != PostKindSale {
		return &PostError{PostID: req.PostID, Op: "discount", Err: ErrInvalidRequest}
	}

	author, err := s.repository.GetAccount(ctx, post.Author)
	if err != nil {
		return &PostError{PostID: req.PostID, Op: "discount", Err: err}
	}
	if req.Password != author.Password {
		return &PostError{PostID: req.PostID, Op: "discount", Err: ErrBadCredential}
	}

	// ScalePrice rejects sold listings under the repository lock, so a
	// concurrent MarkSold cannot slip between the check and the write.
	post, err = s.repository.ScalePrice(ctx, req.PostID, (100-req.Percent)/100)
	if err != nil {
		return &PostError{PostID: req.PostID, Op: "discount", Err: err}
	}

	_ = s.events.PostDiscounted(ctx, post, req.Percent) // sink failures never fail the operation

	return nil
}

// DisplayImage resolves an image post's asset and hands it to the display
// collaborator.
func (s *service) DisplayImage(ctx context.Context, postID uuid.UUID) error {
	post, err := s.repository.GetPost(ctx, postID)
	if err != nil {
		return &PostError{PostID: postID, Op: "display", Err: err}
	}
	if post.Kind != PostKindImage {
		return &PostError{PostID: postID, Op: "display", Err: ErrInvalidRequest}
	}

	asset, err := s.images.Resolve(ctx, post.ImageRef)
	if err != nil {
		return &PostError{PostID: postID, Op: "display", Err: err}
	}

	return s.displayer.Display(ctx, asset)
}

// Notification channel access

func (s *service) Notifications(ctx context.Context, username string) ([]string, error) {
	if _, err := s.repository.GetAccount(ctx, username); err != nil {
		return nil, err
	}
	return s.repository.ListNotifications(ctx, username)
}
