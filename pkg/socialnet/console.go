package socialnet

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ConsoleEventSink writes one human-readable line per successful mutating
// operation to an io.Writer, stdout by default.
type ConsoleEventSink struct {
	w io.Writer
}

// NewConsoleEventSink creates a console event sink writing to w. A nil
// writer means stdout.
func NewConsoleEventSink(w io.Writer) EventSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleEventSink{w: w}
}

func (c *ConsoleEventSink) AccountRegistered(ctx context.Context, account *Account) error {
	_, err := fmt.Fprintf(c.w, "%s signed up\n", account.Username)
	return err
}

func (c *ConsoleEventSink) AccountConnected(ctx context.Context, account *Account) error {
	_, err := fmt.Fprintf(c.w, "%s connected\n", account.Username)
	return err
}

func (c *ConsoleEventSink) AccountDisconnected(ctx context.Context, username string) error {
	_, err := fmt.Fprintf(c.w, "%s disconnected\n", username)
	return err
}

func (c *ConsoleEventSink) FollowAdded(ctx context.Context, follower, target string) error {
	_, err := fmt.Fprintf(c.w, "%s started following %s\n", follower, target)
	return err
}

func (c *ConsoleEventSink) FollowRemoved(ctx context.Context, follower, target string) error {
	_, err := fmt.Fprintf(c.w, "%s unfollowed %s\n", follower, target)
	return err
}

func (c *ConsoleEventSink) PostPublished(ctx context.Context, post *Post) error {
	_, err := fmt.Fprintf(c.w, "%s\n", post.Announcement())
	return err
}

func (c *ConsoleEventSink) PostLiked(ctx context.Context, post *Post, actor string) error {
	if actor == post.Author {
		_, err := fmt.Fprintf(c.w, "%s liked their own post\n", actor)
		return err
	}
	_, err := fmt.Fprintf(c.w, "notification to %s: %s liked your post\n", post.Author, actor)
	return err
}

func (c *ConsoleEventSink) PostCommented(ctx context.Context, post *Post, actor, text string) error {
	if actor == post.Author {
		_, err := fmt.Fprintf(c.w, "%s commented on their own post\n", actor)
		return err
	}
	_, err := fmt.Fprintf(c.w, "notification to %s: %s commented on your post: %s\n", post.Author, actor, text)
	return err
}

func (c *ConsoleEventSink) PostSold(ctx context.Context, post *Post) error {
	_, err := fmt.Fprintf(c.w, "%s's product is sold\n", post.Author)
	return err
}

func (c *ConsoleEventSink) PostDiscounted(ctx context.Context, post *Post, percent float64) error {
	_, err := fmt.Fprintf(c.w, "Discount on %s product! the new price is: %s\n", post.Author, formatPrice(post.Price))
	return err
}

// ConsoleDisplayer announces a display request on an io.Writer without
// decoding the asset.
type ConsoleDisplayer struct {
	w io.Writer
}

// NewConsoleDisplayer creates a console displayer writing to w. A nil writer
// means stdout.
func NewConsoleDisplayer(w io.Writer) Displayer {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleDisplayer{w: w}
}

// Display announces the asset being shown
func (c *ConsoleDisplayer) Display(ctx context.Context, asset *ImageAsset) error {
	_, err := fmt.Fprintf(c.w, "Shows picture %s\n", asset.Ref)
	return err
}
