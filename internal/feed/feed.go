// Package feed holds the home timeline: posts, stories and the
// composer with its AI enhancement step.
package feed

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// User identifies a post author.
type User struct {
	Name   string
	Handle string
}

// Post is a single timeline entry.
type Post struct {
	ID        string
	Author    User
	Body      string
	Likes     int
	Comments  int
	CreatedAt time.Time
}

// Story is a story-rail entry.
type Story struct {
	ID     string
	Author User
}

// Timeline is the in-memory post list, newest first.
type Timeline struct {
	mu      sync.RWMutex
	posts   []Post
	stories []Story
}

// NewTimeline returns a timeline seeded with demo content.
func NewTimeline() *Timeline {
	now := time.Now()
	return &Timeline{
		posts: []Post{
			{
				ID:        uuid.NewString(),
				Author:    User{Name: "Elena Rodriguez", Handle: "@elena_r"},
				Body:      "Just finished hanging the new exhibition. Opening night is Friday, come say hi!",
				Likes:     128,
				Comments:  24,
				CreatedAt: now.Add(-2 * time.Hour),
			},
			{
				ID:        uuid.NewString(),
				Author:    User{Name: "Ben Carter", Handle: "@bencarter"},
				Body:      "Morning run along the river. Nothing beats the city at 6am.",
				Likes:     56,
				Comments:  8,
				CreatedAt: now.Add(-5 * time.Hour),
			},
			{
				ID:        uuid.NewString(),
				Author:    User{Name: "Aisha Khan", Handle: "@aisha.codes"},
				Body:      "Shipped the new release today. Huge thanks to everyone who filed bug reports!",
				Likes:     210,
				Comments:  41,
				CreatedAt: now.Add(-26 * time.Hour),
			},
		},
		stories: []Story{
			{ID: uuid.NewString(), Author: User{Name: "Elena Rodriguez", Handle: "@elena_r"}},
			{ID: uuid.NewString(), Author: User{Name: "Liam Smith", Handle: "@liamsmith"}},
			{ID: uuid.NewString(), Author: User{Name: "Aisha Khan", Handle: "@aisha.codes"}},
		},
	}
}

// Posts returns all posts, newest first.
func (tl *Timeline) Posts() []Post {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	out := make([]Post, len(tl.posts))
	copy(out, tl.posts)
	return out
}

// Stories returns the story rail.
func (tl *Timeline) Stories() []Story {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	out := make([]Story, len(tl.stories))
	copy(out, tl.stories)
	return out
}

// PostsBy returns the posts authored by the given handle.
func (tl *Timeline) PostsBy(handle string) []Post {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	var out []Post
	for _, p := range tl.posts {
		if p.Author.Handle == handle {
			out = append(out, p)
		}
	}
	return out
}

// Prepend inserts a post at the top of the timeline.
func (tl *Timeline) Prepend(p Post) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.posts = append([]Post{p}, tl.posts...)
}

// Like increments a post's like count.
func (tl *Timeline) Like(id string) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	for i := range tl.posts {
		if tl.posts[i].ID == id {
			tl.posts[i].Likes++
			return
		}
	}
}
