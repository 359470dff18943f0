package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"blogapi/internal/auth"
	apperr "blogapi/internal/errors"
	"blogapi/internal/service"
)

// SeedUser is one user of the seed file along with the posts they author.
type SeedUser struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Posts    []SeedPost `json:"posts"`
}

// SeedPost is a post and the comments left on it.
type SeedPost struct {
	Title    string        `json:"title"`
	Body     string        `json:"body"`
	Comments []SeedComment `json:"comments"`
}

// SeedComment names its author by username; the author must appear in the same file.
type SeedComment struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

var demoData = []SeedUser{
	{
		Username: "alice",
		Password: "alice-password",
		Posts: []SeedPost{
			{
				Title:    "Hello, blog",
				Body:     "First post on the new blog.",
				Comments: []SeedComment{{Author: "bob", Body: "Welcome!"}},
			},
		},
	},
	{
		Username: "bob",
		Password: "bob-password",
		Posts: []SeedPost{
			{
				Title: "Notes on basic auth",
				Body:  "Credentials travel with every request.",
				Comments: []SeedComment{
					{Author: "alice", Body: "Use TLS."},
					{Author: "bob", Body: "Always."},
				},
			},
		},
	},
}

type seedStats struct {
	usersCreated  int
	usersExisting int
	posts         int
	comments      int
}

type seeder struct {
	auth     service.AuthService
	posts    service.PostService
	comments service.CommentService
}

func loadSeedFile(path string) ([]SeedUser, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var users []SeedUser
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return users, nil
}

// run registers every user first so comments can reference any of them.
// Users that already exist are reused when their password still matches.
func (s *seeder) run(ctx context.Context, users []SeedUser) (seedStats, error) {
	var stats seedStats
	principals := make(map[string]auth.Principal, len(users))

	for _, u := range users {
		user, err := s.auth.Register(ctx, u.Username, u.Password)
		switch {
		case err == nil:
			stats.usersCreated++
		case apperr.IsKind(err, apperr.KindConflict):
			user, err = s.auth.Authenticate(ctx, u.Username, u.Password)
			if err != nil {
				return stats, fmt.Errorf("error reusing user %s: %w", u.Username, err)
			}
			stats.usersExisting++
		default:
			return stats, fmt.Errorf("error registering user %s: %w", u.Username, err)
		}
		principals[u.Username] = auth.Principal{ID: user.ID, Username: user.Username}
	}

	for _, u := range users {
		author := principals[u.Username]
		for _, p := range u.Posts {
			post, err := s.posts.CreatePost(ctx, author, service.PostInput{Title: p.Title, Body: p.Body})
			if err != nil {
				return stats, fmt.Errorf("error creating post %q: %w", p.Title, err)
			}
			stats.posts++

			for _, c := range p.Comments {
				commenter, ok := principals[c.Author]
				if !ok {
					return stats, fmt.Errorf("comment on %q: unknown author %s", p.Title, c.Author)
				}
				if _, err := s.comments.CreateComment(ctx, commenter, post.ID, service.CommentInput{Body: c.Body}); err != nil {
					return stats, fmt.Errorf("error creating comment on %q: %w", p.Title, err)
				}
				stats.comments++
			}
		}
	}

	return stats, nil
}
