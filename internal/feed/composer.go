package feed

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inovira/inovira/internal/ai"
	"github.com/inovira/inovira/internal/bus"
	"go.uber.org/zap"
)

// ErrBusy is returned when an enhancement is already running.
var ErrBusy = errors.New("feed: enhancement already in progress")

// ErrEmptyDraft is returned when the draft has no visible characters.
var ErrEmptyDraft = errors.New("feed: empty draft")

// Composer manages the post draft and its AI enhancement step. One
// enhancement may run at a time; the busy flag rejects re-entry.
type Composer struct {
	tl     *Timeline
	client ai.Client
	bus    *bus.Bus
	log    *zap.Logger
	author User

	mu        sync.Mutex
	draft     string
	enhancing bool
}

// NewComposer creates a composer posting as author.
func NewComposer(tl *Timeline, client ai.Client, b *bus.Bus, log *zap.Logger, author User) *Composer {
	return &Composer{tl: tl, client: client, bus: b, log: log, author: author}
}

// Draft returns the current draft text.
func (c *Composer) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// SetDraft replaces the draft text.
func (c *Composer) SetDraft(text string) {
	c.mu.Lock()
	c.draft = text
	c.mu.Unlock()
}

// Enhancing reports whether an enhancement is in flight.
func (c *Composer) Enhancing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enhancing
}

// Enhance rewrites the draft through the model. Blank drafts and
// concurrent calls are rejected before any request is made. On success
// the draft is replaced with the rewritten text. On failure the draft
// is left untouched.
func (c *Composer) Enhance(ctx context.Context) error {
	c.mu.Lock()
	if c.enhancing {
		c.mu.Unlock()
		return ErrBusy
	}
	draft := c.draft
	if strings.TrimSpace(draft) == "" {
		c.mu.Unlock()
		return ErrEmptyDraft
	}
	c.enhancing = true
	c.mu.Unlock()

	if c.bus != nil {
		c.bus.Publish(bus.Now(bus.KindFeedEnhancing, true))
	}
	defer func() {
		c.mu.Lock()
		c.enhancing = false
		c.mu.Unlock()
		if c.bus != nil {
			c.bus.Publish(bus.Now(bus.KindFeedEnhancing, false))
		}
	}()

	enhanced, err := c.client.Generate(ctx, draft)
	if err != nil {
		if c.log != nil {
			c.log.Warn("post enhancement failed", zap.Error(err))
		}
		return err
	}
	enhanced = strings.TrimSpace(enhanced)
	if enhanced == "" {
		return ai.ErrGeneration
	}

	c.mu.Lock()
	// Keep a draft the user edited mid-flight.
	if c.draft == draft {
		c.draft = enhanced
	}
	c.mu.Unlock()
	return nil
}

// Publish turns the draft into a timeline post and clears it. Blank
// drafts are a silent no-op at the UI; callers get ErrEmptyDraft to
// decide for themselves.
func (c *Composer) Publish() (Post, error) {
	c.mu.Lock()
	draft := strings.TrimSpace(c.draft)
	if draft == "" {
		c.mu.Unlock()
		return Post{}, ErrEmptyDraft
	}
	c.draft = ""
	c.mu.Unlock()

	p := Post{
		ID:        uuid.NewString(),
		Author:    c.author,
		Body:      draft,
		CreatedAt: time.Now(),
	}
	c.tl.Prepend(p)
	if c.bus != nil {
		c.bus.Publish(bus.Now(bus.KindFeedPosted, p))
	}
	return p, nil
}
