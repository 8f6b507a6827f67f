package feed

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/inovira/inovira/internal/ai"
	"github.com/inovira/inovira/internal/bus"
)

var testAuthor = User{Name: "Ben Carter", Handle: "@bencarter"}

func TestEnhanceReplacesDraft(t *testing.T) {
	c := NewComposer(NewTimeline(), &ai.Scripted{GenerateResult: "A polished post."}, bus.New(), nil, testAuthor)
	c.SetDraft("a rough post")

	if err := c.Enhance(context.Background()); err != nil {
		t.Fatalf("Enhance() error = %v", err)
	}
	if got := c.Draft(); got != "A polished post." {
		t.Errorf("draft = %q, want A polished post.", got)
	}
	if c.Enhancing() {
		t.Error("busy flag still set after Enhance returned")
	}
}

func TestEnhanceEmptyDraft(t *testing.T) {
	c := NewComposer(NewTimeline(), &ai.Scripted{GenerateResult: "x"}, bus.New(), nil, testAuthor)
	c.SetDraft("   \n ")

	if err := c.Enhance(context.Background()); !errors.Is(err, ErrEmptyDraft) {
		t.Errorf("error = %v, want ErrEmptyDraft", err)
	}
}

func TestEnhanceFailureKeepsDraft(t *testing.T) {
	c := NewComposer(NewTimeline(), &ai.Scripted{GenerateErr: ai.ErrUnavailable}, bus.New(), nil, testAuthor)
	c.SetDraft("original words")

	err := c.Enhance(context.Background())
	if !errors.Is(err, ai.ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
	if got := c.Draft(); got != "original words" {
		t.Errorf("draft = %q, want original words", got)
	}
	if c.Enhancing() {
		t.Error("busy flag stuck after failure")
	}
}

// blockingClient lets the test hold Generate open to observe the busy flag.
type blockingClient struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingClient) Generate(ctx context.Context, _ string) (string, error) {
	close(b.started)
	<-b.release
	return "done", nil
}

func (b *blockingClient) ChatStream(context.Context, string, func(string)) error { return nil }
func (b *blockingClient) Reset() {}

func TestEnhanceRejectsConcurrent(t *testing.T) {
	bc := &blockingClient{started: make(chan struct{}), release: make(chan struct{})}
	c := NewComposer(NewTimeline(), bc, bus.New(), nil, testAuthor)
	c.SetDraft("draft")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = c.Enhance(context.Background())
	}()

	<-bc.started
	if !c.Enhancing() {
		t.Error("busy flag not set while request in flight")
	}
	if err := c.Enhance(context.Background()); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent Enhance() error = %v, want ErrBusy", err)
	}

	close(bc.release)
	wg.Wait()

	if c.Enhancing() {
		t.Error("busy flag not cleared")
	}
}

func TestPublishPrependsAndClears(t *testing.T) {
	tl := NewTimeline()
	before := len(tl.Posts())

	c := NewComposer(tl, &ai.Scripted{}, bus.New(), nil, testAuthor)
	c.SetDraft("hello world")

	p, err := c.Publish()
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if p.Body != "hello world" {
		t.Errorf("body = %q, want hello world", p.Body)
	}
	if p.Author != testAuthor {
		t.Errorf("author = %+v, want %+v", p.Author, testAuthor)
	}

	posts := tl.Posts()
	if len(posts) != before+1 {
		t.Fatalf("got %d posts, want %d", len(posts), before+1)
	}
	if posts[0].ID != p.ID {
		t.Error("new post is not first in timeline")
	}
	if c.Draft() != "" {
		t.Errorf("draft = %q, want empty after publish", c.Draft())
	}
}

func TestPublishEmptyDraft(t *testing.T) {
	tl := NewTimeline()
	before := len(tl.Posts())

	c := NewComposer(tl, &ai.Scripted{}, bus.New(), nil, testAuthor)
	c.SetDraft("  ")

	if _, err := c.Publish(); !errors.Is(err, ErrEmptyDraft) {
		t.Errorf("error = %v, want ErrEmptyDraft", err)
	}
	if len(tl.Posts()) != before {
		t.Error("empty publish changed the timeline")
	}
}

func TestPublishEvents(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe("feed.", 10)
	defer unsub()

	c := NewComposer(NewTimeline(), &ai.Scripted{}, b, nil, testAuthor)
	c.SetDraft("evented")
	if _, err := c.Publish(); err != nil {
		t.Fatal(err)
	}

	select {
	case evt := <-ch:
		if evt.Kind != bus.KindFeedPosted {
			t.Errorf("kind = %q, want %q", evt.Kind, bus.KindFeedPosted)
		}
	default:
		t.Fatal("no feed.posted event")
	}
}

func TestTimelineLike(t *testing.T) {
	tl := NewTimeline()
	p := tl.Posts()[0]

	tl.Like(p.ID)
	if got := tl.Posts()[0].Likes; got != p.Likes+1 {
		t.Errorf("likes = %d, want %d", got, p.Likes+1)
	}
}

func TestPostsBy(t *testing.T) {
	tl := NewTimeline()
	c := NewComposer(tl, &ai.Scripted{}, bus.New(), nil, testAuthor)
	c.SetDraft("mine")
	if _, err := c.Publish(); err != nil {
		t.Fatal(err)
	}

	mine := tl.PostsBy(testAuthor.Handle)
	found := false
	for _, p := range mine {
		if p.Body == "mine" {
			found = true
		}
		if p.Author.Handle != testAuthor.Handle {
			t.Errorf("foreign post in PostsBy: %+v", p)
		}
	}
	if !found {
		t.Error("published post missing from PostsBy")
	}
}
