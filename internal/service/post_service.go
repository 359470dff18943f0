package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blogapi/internal/auth"
	apperr "blogapi/internal/errors"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/validation"
)

// PostInput carries the writable fields of a post.
type PostInput struct {
	Title string `validate:"required,max=255"`
	Body  string
}

// PostService handles post operations on behalf of a principal.
type PostService interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	GetPost(ctx context.Context, id uint) (*model.Post, error)
	CreatePost(ctx context.Context, principal auth.Principal, input PostInput) (*model.Post, error)
	UpdatePost(ctx context.Context, principal auth.Principal, id uint, input PostInput) (*model.Post, error)
	DeletePost(ctx context.Context, principal auth.Principal, id uint) error
}

type postService struct {
	repo              repository.PostRepository
	emptyListNotFound bool
}

// NewPostService creates a new post service. With emptyListNotFound set an
// empty listing is reported as a not-found error.
func NewPostService(repo repository.PostRepository, emptyListNotFound bool) PostService {
	return &postService{
		repo:              repo,
		emptyListNotFound: emptyListNotFound,
	}
}

// ListPosts returns every post with its author's username.
func (s *postService) ListPosts(ctx context.Context) ([]model.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.NewInternal("list posts", err)
	}
	if len(posts) == 0 && s.emptyListNotFound {
		return nil, apperr.NewNotFound("No posts available.")
	}
	if posts == nil {
		posts = []model.Post{}
	}
	return posts, nil
}

// GetPost retrieves a post by ID. Reading requires no ownership.
func (s *postService) GetPost(ctx context.Context, id uint) (*model.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, postNotFound(id)
		}
		return nil, apperr.NewInternal("get post", err)
	}
	return post, nil
}

// CreatePost stores a new post authored by the principal.
func (s *postService) CreatePost(ctx context.Context, principal auth.Principal, input PostInput) (*model.Post, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	post := &model.Post{
		Title:    input.Title,
		Body:     input.Body,
		AuthorID: principal.ID,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, apperr.NewInternal("create post", err)
	}
	post.Author = model.User{ID: principal.ID, Username: principal.Username}
	return post, nil
}

// UpdatePost replaces title and body. Only the author may update.
func (s *postService) UpdatePost(ctx context.Context, principal auth.Principal, id uint, input PostInput) (*model.Post, error) {
	post, err := s.ownedPost(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, input.Title, input.Body); err != nil {
		return nil, apperr.NewInternal("update post", err)
	}
	post.Title = input.Title
	post.Body = input.Body
	return post, nil
}

// DeletePost removes a post. Only the author may delete.
func (s *postService) DeletePost(ctx context.Context, principal auth.Principal, id uint) error {
	if _, err := s.ownedPost(ctx, principal, id); err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.NewInternal("delete post", err)
	}
	if affected == 0 {
		return postNotFound(id)
	}
	return nil
}

func (s *postService) ownedPost(ctx context.Context, principal auth.Principal, id uint) (*model.Post, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.Owns(post.AuthorID) {
		return nil, apperr.NewForbidden(fmt.Sprintf("Post id %d belongs to another user.", id))
	}
	return post, nil
}

func postNotFound(id uint) error {
	return apperr.NewNotFound(fmt.Sprintf("Post id %d doesn't exist.", id))
}
