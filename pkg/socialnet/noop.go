package socialnet

import (
	"context"
)

// NoopEventSink is a no-operation implementation of EventSink
// Useful when no event reporting is wanted, and for testing
type NoopEventSink struct{}

// NewNoopEventSink creates a new no-operation event sink
func NewNoopEventSink() EventSink {
	return &NoopEventSink{}
}

func (n *NoopEventSink) AccountRegistered(ctx context.Context, account *Account) error { return nil }

func (n *NoopEventSink) AccountConnected(ctx context.Context, account *Account) error { return nil }

func (n *NoopEventSink) AccountDisconnected(ctx context.Context, username string) error { return nil }

func (n *NoopEventSink) FollowAdded(ctx context.Context, follower, target string) error { return nil }

func (n *NoopEventSink) FollowRemoved(ctx context.Context, follower, target string) error {
	return nil
}

func (n *NoopEventSink) PostPublished(ctx context.Context, post *Post) error { return nil }

func (n *NoopEventSink) PostLiked(ctx context.Context, post *Post, actor string) error { return nil }

func (n *NoopEventSink) PostCommented(ctx context.Context, post *Post, actor, text string) error {
	return nil
}

func (n *NoopEventSink) PostSold(ctx context.Context, post *Post) error { return nil }

func (n *NoopEventSink) PostDiscounted(ctx context.Context, post *Post, percent float64) error {
	return nil
}

// PassthroughImageLibrary resolves every reference to an asset holding the
// reference and no data. It is the default library: publishing an image post
// stores the handle without touching any asset source.
type PassthroughImageLibrary struct{}

// NewPassthroughImageLibrary creates a new passthrough image library
func NewPassthroughImageLibrary() ImageLibrary {
	return &PassthroughImageLibrary{}
}

// Resolve returns an asset carrying only the reference
func (p *PassthroughImageLibrary) Resolve(ctx context.Context, ref string) (*ImageAsset, error) {
	return &ImageAsset{Ref: ref}, nil
}

// NoopDisplayer is a no-operation implementation of Displayer
type NoopDisplayer struct{}

// NewNoopDisplayer creates a new no-operation displayer
func NewNoopDisplayer() Displayer {
	return &NoopDisplayer{}
}

// Display does nothing and returns nil
func (n *NoopDisplayer) Display(ctx context.Context, asset *ImageAsset) error {
	return nil
}

// LoggingEventSink is an event sink that logs events but takes no other
// action. Useful for development and debugging.
type LoggingEventSink struct {
	logger Logger
}

// Logger interface for logging events. *zap.SugaredLogger satisfies it.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NewLoggingEventSink creates a new logging event sink
func NewLoggingEventSink(logger Logger) EventSink {
	return &LoggingEventSink{logger: logger}
}

func (l *LoggingEventSink) AccountRegistered(ctx context.Context, account *Account) error {
	l.logger.Infof("account registered: username=%s", account.Username)
	return nil
}

func (l *LoggingEventSink) AccountConnected(ctx context.Context, account *Account) error {
	l.logger.Infof("account connected: username=%s", account.Username)
	return nil
}

func (l *LoggingEventSink) AccountDisconnected(ctx context.Context, username string) error {
	l.logger.Infof("account disconnected: username=%s", username)
	return nil
}

func (l *LoggingEventSink) FollowAdded(ctx context.Context, follower, target string) error {
	l.logger.Infof("follow added: follower=%s target=%s", follower, target)
	return nil
}

func (l *LoggingEventSink) FollowRemoved(ctx context.Context, follower, target string) error {
	l.logger.Infof("follow removed: follower=%s target=%s", follower, target)
	return nil
}

func (l *LoggingEventSink) PostPublished(ctx context.Context, post *Post) error {
	l.logger.Infof("post published: id=%s author=%s kind=%s", post.ID, post.Author, post.Kind)
	return nil
}

func (l *LoggingEventSink) PostLiked(ctx context.Context, post *Post, actor string) error {
	l.logger.Infof("post liked: id=%s actor=%s", post.ID, actor)
	return nil
}

func (l *LoggingEventSink) PostCommented(ctx context.Context, post *Post, actor, text string) error {
	l.logger.Infof("post commented: id=%s actor=%s", post.ID, actor)
	return nil
}

func (l *LoggingEventSink) PostSold(ctx context.Context, post *Post) error {
	l.logger.Infof("post sold: id=%s item=%s", post.ID, post.Item)
	return nil
}

func (l *LoggingEventSink) PostDiscounted(ctx context.Context, post *Post, percent float64) error {
	l.logger.Infof("post discounted: id=%s percent=%v price=%v", post.ID, percent, post.Price)
	return nil
}
