package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"github.com/simplesocial/socialnet/pkg/socialnet"
)

// Repository implements socialnet.Repository using in-memory storage. All
// state sits behind one RWMutex, so notification appends to a channel are
// serialized in the order their operations were admitted.
type Repository struct {
	mu            sync.RWMutex
	connected     map[string]*socialnet.Account
	disconnected  map[string]*socialnet.Account
	following     map[string][]string // follower -> targets, insertion order
	followers     map[string][]string // target -> subscribers, insertion order
	posts         map[uuid.UUID]*socialnet.Post
	postsByAuthor map[string][]uuid.UUID
	notifications map[string][]string
}

// New creates a new in-memory repository
func New() socialnet.Repository {
	return &Repository{
		connected:     make(map[string]*socialnet.Account),
		disconnected:  make(map[string]*socialnet.Account),
		following:     make(map[string][]string),
		followers:     make(map[string][]string),
		posts:         make(map[uuid.UUID]*socialnet.Post),
		postsByAuthor: make(map[string][]uuid.UUID),
		notifications: make(map[string][]string),
	}
}

// Account operations

func (r *Repository) CreateAccount(ctx context.Context, account *socialnet.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Uniqueness holds across both partitions.
	if _, exists := r.connected[account.Username]; exists {
		return socialnet.ErrDuplicateAccount
	}
	if _, exists := r.disconnected[account.Username]; exists {
		return socialnet.ErrDuplicateAccount
	}

	accountCopy := *account
	if accountCopy.Connected {
		r.connected[account.Username] = &accountCopy
	} else {
		r.disconnected[account.Username] = &accountCopy
	}

	return nil
}

func (r *Repository) GetAccount(ctx context.Context, username string) (*socialnet.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.connected[username]
	if !exists {
		account, exists = r.disconnected[username]
	}
	if !exists {
		return nil, socialnet.ErrUnknownAccount
	}

	// Return a copy to prevent external modifications
	accountCopy := *account
	return &accountCopy, nil
}

func (r *Repository) SetConnectivity(ctx context.Context, username string, connected bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	from, to := r.disconnected, r.connected
	if !connected {
		from, to = r.connected, r.disconnected
	}

	account, exists := from[username]
	if !exists {
		if _, already := to[username]; already {
			// Already in the requested partition.
			if connected {
				return socialnet.ErrAlreadyConnected
			}
			return socialnet.ErrAlreadyDisconnected
		}
		return socialnet.ErrUnknownAccount
	}

	delete(from, username)
	account.Connected = connected
	to[username] = account

	return nil
}

func (r *Repository) ListConnectedAccounts(ctx context.Context) ([]*socialnet.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	usernames := maps.Keys(r.connected)
	sort.Strings(usernames)

	result := make([]*socialnet.Account, 0, len(usernames))
	for _, username := range usernames {
		accountCopy := *r.connected[username]
		result = append(result, &accountCopy)
	}

	return result, nil
}

// Follow graph operations

func (r *Repository) AddFollow(ctx context.Context, follower, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.following[follower] {
		if existing == target {
			return socialnet.ErrAlreadyFollowing
		}
	}

	r.following[follower] = append(r.following[follower], target)
	r.followers[target] = append(r.followers[target], follower)

	return nil
}

func (r *Repository) RemoveFollow(ctx context.Context, follower, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, existing := range r.following[follower] {
		if existing == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return socialnet.ErrNotFollowing
	}

	r.following[follower] = append(r.following[follower][:idx], r.following[follower][idx+1:]...)
	for i, subscriber := range r.followers[target] {
		if subscriber == follower {
			r.followers[target] = append(r.followers[target][:i], r.followers[target][i+1:]...)
			break
		}
	}

	return nil
}

func (r *Repository) IsFollowing(ctx context.Context, follower, target string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.following[follower] {
		if existing == target {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) ListFollowers(ctx context.Context, target string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.followers[target]...), nil
}

func (r *Repository) ListFollowing(ctx context.Context, follower string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.following[follower]...), nil
}

// Post operations

func (r *Repository) CreatePost(ctx context.Context, post *socialnet.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	postCopy := clonePost(post)
	r.posts[post.ID] = postCopy
	r.postsByAuthor[post.Author] = append(r.postsByAuthor[post.Author], post.ID)

	return nil
}

func (r *Repository) GetPost(ctx context.Context, id uuid.UUID) (*socialnet.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, exists := r.posts[id]
	if !exists {
		return nil, socialnet.ErrPostNotFound
	}

	return clonePost(post), nil
}

func (r *Repository) AddLike(ctx context.Context, id uuid.UUID, actor string) (*socialnet.Post, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, exists := r.posts[id]
	if !exists {
		return nil, false, socialnet.ErrPostNotFound
	}

	if _, already := post.Likes[actor]; already {
		return clonePost(post), false, nil
	}

	post.Likes[actor] = struct{}{}
	return clonePost(post), true, nil
}

func (r *Repository) SetComment(ctx context.Context, id uuid.UUID, actor, text string) (*socialnet.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, exists := r.posts[id]
	if !exists {
		return nil, socialnet.ErrPostNotFound
	}

	post.Comments[actor] = text
	return clonePost(post), nil
}

func (r *Repository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*socialnet.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, exists := r.posts[id]
	if !exists {
		return nil, socialnet.ErrPostNotFound
	}

	post.Available = available
	return clonePost(post), nil
}

// ScalePrice multiplies the price of an available listing. A sold listing
// fails with ErrUnavailable; the availability check and the price write
// happen under the same lock hold.
func (r *Repository) ScalePrice(ctx context.Context, id uuid.UUID, factor float64) (*socialnet.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, exists := r.posts[id]
	if !exists {
		return nil, socialnet.ErrPostNotFound
	}
	if !post.Available {
		return nil, socialnet.ErrUnavailable
	}

	post.Price = post.Price * factor
	return clonePost(post), nil
}

func (r *Repository) ListPostsByAuthor(ctx context.Context, author string) ([]*socialnet.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.postsByAuthor[author]
	result := make([]*socialnet.Post, 0, len(ids))
	for _, id := range ids {
		if post, exists := r.posts[id]; exists {
			result = append(result, clonePost(post))
		}
	}

	return result, nil
}

// Notification channel operations

func (r *Repository) AppendNotification(ctx context.Context, username, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications[username] = append(r.notifications[username], message)

	return nil
}

func (r *Repository) ListNotifications(ctx context.Context, username string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.notifications[username]...), nil
}

// clonePost deep-copies a post so callers never share the like and comment
// maps with stored state.
func clonePost(post *socialnet.Post) *socialnet.Post {
	postCopy := *post
	postCopy.Likes = maps.Clone(post.Likes)
	postCopy.Comments = maps.Clone(post.Comments)
	if postCopy.Likes == nil {
		postCopy.Likes = make(map[string]struct{})
	}
	if postCopy.Comments == nil {
		postCopy.Comments = make(map[string]string)
	}
	return &postCopy
}
