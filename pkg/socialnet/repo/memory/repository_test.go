package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplesocial/socialnet/pkg/socialnet"
	"github.com/simplesocial/socialnet/pkg/socialnet/repo/memory"
)

func newAccount(username string, connected bool) *socialnet.Account {
	return &socialnet.Account{
		Username:  username,
		Password:  "pass1",
		Connected: connected,
		CreatedAt: time.Now().UTC(),
	}
}

func newPost(author string) *socialnet.Post {
	return &socialnet.Post{
		ID:        uuid.New(),
		Author:    author,
		Kind:      socialnet.PostKindText,
		Body:      "hi",
		Likes:     make(map[string]struct{}),
		Comments:  make(map[string]string),
		CreatedAt: time.Now().UTC(),
	}
}

func TestAccountPartitions(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		require.NoError(t, repo.CreateAccount(ctx, newAccount("alice", true)))

		account, err := repo.GetAccount(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, account.Connected)
	})

	t.Run("uniqueness across partitions", func(t *testing.T) {
		require.NoError(t, repo.CreateAccount(ctx, newAccount("bob", true)))
		require.NoError(t, repo.SetConnectivity(ctx, "bob", false))

		err := repo.CreateAccount(ctx, newAccount("bob", true))
		assert.ErrorIs(t, err, socialnet.ErrDuplicateAccount)
	})

	t.Run("connectivity moves between partitions", func(t *testing.T) {
		require.NoError(t, repo.SetConnectivity(ctx, "alice", false))

		account, err := repo.GetAccount(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, account.Connected)

		require.NoError(t, repo.SetConnectivity(ctx, "alice", true))

		account, err = repo.GetAccount(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, account.Connected)
	})

	t.Run("repeat transition errors", func(t *testing.T) {
		assert.ErrorIs(t, repo.SetConnectivity(ctx, "alice", true), socialnet.ErrAlreadyConnected)
		assert.ErrorIs(t, repo.SetConnectivity(ctx, "bob", false), socialnet.ErrAlreadyDisconnected)
		assert.ErrorIs(t, repo.SetConnectivity(ctx, "ghost", true), socialnet.ErrUnknownAccount)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := repo.GetAccount(ctx, "ghost")
		assert.ErrorIs(t, err, socialnet.ErrUnknownAccount)
	})

	t.Run("list connected is sorted by username", func(t *testing.T) {
		require.NoError(t, repo.CreateAccount(ctx, newAccount("zoe", true)))
		require.NoError(t, repo.CreateAccount(ctx, newAccount("carl", true)))

		accounts, err := repo.ListConnectedAccounts(ctx)
		require.NoError(t, err)

		usernames := make([]string, 0, len(accounts))
		for _, account := range accounts {
			usernames = append(usernames, account.Username)
		}
		assert.Equal(t, []string{"alice", "carl", "zoe"}, usernames)
	})

	t.Run("returned accounts are copies", func(t *testing.T) {
		account, err := repo.GetAccount(ctx, "alice")
		require.NoError(t, err)
		account.Password = "changed"

		again, err := repo.GetAccount(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "pass1", again.Password)
	})
}

func TestFollowGraph(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	t.Run("followers keep insertion order", func(t *testing.T) {
		require.NoError(t, repo.AddFollow(ctx, "f1", "author"))
		require.NoError(t, repo.AddFollow(ctx, "f2", "author"))
		require.NoError(t, repo.AddFollow(ctx, "f3", "author"))

		followers, err := repo.ListFollowers(ctx, "author")
		require.NoError(t, err)
		assert.Equal(t, []string{"f1", "f2", "f3"}, followers)
	})

	t.Run("duplicate edge is rejected", func(t *testing.T) {
		err := repo.AddFollow(ctx, "f1", "author")
		assert.ErrorIs(t, err, socialnet.ErrAlreadyFollowing)

		followers, err := repo.ListFollowers(ctx, "author")
		require.NoError(t, err)
		assert.Len(t, followers, 3)
	})

	t.Run("remove keeps the order of the rest", func(t *testing.T) {
		require.NoError(t, repo.RemoveFollow(ctx, "f2", "author"))

		followers, err := repo.ListFollowers(ctx, "author")
		require.NoError(t, err)
		assert.Equal(t, []string{"f1", "f3"}, followers)

		following, err := repo.ListFollowing(ctx, "f2")
		require.NoError(t, err)
		assert.Empty(t, following)
	})

	t.Run("remove of absent edge fails", func(t *testing.T) {
		err := repo.RemoveFollow(ctx, "f2", "author")
		assert.ErrorIs(t, err, socialnet.ErrNotFollowing)
	})

	t.Run("is following", func(t *testing.T) {
		ok, err := repo.IsFollowing(ctx, "f1", "author")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.IsFollowing(ctx, "f2", "author")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPosts(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		post := newPost("bob")
		require.NoError(t, repo.CreatePost(ctx, post))

		got, err := repo.GetPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, post.Body, got.Body)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := repo.GetPost(ctx, uuid.New())
		assert.ErrorIs(t, err, socialnet.ErrPostNotFound)

		_, _, err = repo.AddLike(ctx, uuid.New(), "alice")
		assert.ErrorIs(t, err, socialnet.ErrPostNotFound)

		_, err = repo.SetComment(ctx, uuid.New(), "alice", "hi")
		assert.ErrorIs(t, err, socialnet.ErrPostNotFound)
	})

	t.Run("list by author keeps publication order", func(t *testing.T) {
		repo := memory.New()
		first := newPost("bob")
		second := newPost("bob")
		require.NoError(t, repo.CreatePost(ctx, first))
		require.NoError(t, repo.CreatePost(ctx, second))

		posts, err := repo.ListPostsByAuthor(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, first.ID, posts[0].ID)
		assert.Equal(t, second.ID, posts[1].ID)
	})

	t.Run("returned posts do not share like and comment maps", func(t *testing.T) {
		post := newPost("bob")
		require.NoError(t, repo.CreatePost(ctx, post))

		got, err := repo.GetPost(ctx, post.ID)
		require.NoError(t, err)
		got.Likes["mallory"] = struct{}{}
		got.Comments["mallory"] = "sneaky"

		again, err := repo.GetPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Empty(t, again.Likes)
		assert.Empty(t, again.Comments)
	})

	t.Run("add like reports whether the actor is new", func(t *testing.T) {
		post := newPost("bob")
		require.NoError(t, repo.CreatePost(ctx, post))

		got, added, err := repo.AddLike(ctx, post.ID, "alice")
		require.NoError(t, err)
		assert.True(t, added)
		assert.Len(t, got.Likes, 1)

		got, added, err = repo.AddLike(ctx, post.ID, "alice")
		require.NoError(t, err)
		assert.False(t, added)
		assert.Len(t, got.Likes, 1)
	})

	t.Run("set comment overwrites the actor slot", func(t *testing.T) {
		post := newPost("bob")
		require.NoError(t, repo.CreatePost(ctx, post))

		_, err := repo.SetComment(ctx, post.ID, "alice", "nice")
		require.NoError(t, err)

		got, err := repo.SetComment(ctx, post.ID, "alice", "even nicer")
		require.NoError(t, err)
		assert.Len(t, got.Comments, 1)
		assert.Equal(t, "even nicer", got.Comments["alice"])
	})

	t.Run("scale price requires availability", func(t *testing.T) {
		post := newPost("bob")
		post.Kind = socialnet.PostKindSale
		post.Price = 100
		post.Available = true
		require.NoError(t, repo.CreatePost(ctx, post))

		got, err := repo.ScalePrice(ctx, post.ID, 0.9)
		require.NoError(t, err)
		assert.Equal(t, float64(90), got.Price)

		_, err = repo.SetAvailability(ctx, post.ID, false)
		require.NoError(t, err)

		_, err = repo.ScalePrice(ctx, post.ID, 0.9)
		assert.ErrorIs(t, err, socialnet.ErrUnavailable)
	})

	t.Run("concurrent likes are all recorded", func(t *testing.T) {
		post := newPost("bob")
		require.NoError(t, repo.CreatePost(ctx, post))

		const actors = 32
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < actors; i++ {
			wg.Add(1)
			go func(actor string) {
				defer wg.Done()
				<-start
				_, _, _ = repo.AddLike(ctx, post.ID, actor)
			}(fmt.Sprintf("user%02d", i))
		}
		close(start)
		wg.Wait()

		got, err := repo.GetPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Len(t, got.Likes, actors)
	})
}

func TestNotifications(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	t.Run("appends preserve order", func(t *testing.T) {
		require.NoError(t, repo.AppendNotification(ctx, "alice", "first"))
		require.NoError(t, repo.AppendNotification(ctx, "alice", "second"))

		notifications, err := repo.ListNotifications(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, notifications)
	})

	t.Run("channels are per account", func(t *testing.T) {
		notifications, err := repo.ListNotifications(ctx, "bob")
		require.NoError(t, err)
		assert.Empty(t, notifications)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		notifications, err := repo.ListNotifications(ctx, "alice")
		require.NoError(t, err)
		notifications[0] = "tampered"

		again, err := repo.ListNotifications(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "first", again[0])
	})
}
