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

// CommentInput carries the writable fields of a comment.
type CommentInput struct {
	Body string `validate:"required"`
}

// CommentService handles comment operations scoped to a post.
type CommentService interface {
	ListComments(ctx context.Context, postID uint) ([]model.Comment, error)
	GetComment(ctx context.Context, postID, id uint) (*model.Comment, error)
	CreateComment(ctx context.Context, principal auth.Principal, postID uint, input CommentInput) (*model.Comment, error)
	UpdateComment(ctx context.Context, principal auth.Principal, postID, id uint, input CommentInput) (*model.Comment, error)
	DeleteComment(ctx context.Context, principal auth.Principal, postID, id uint) error
}

type commentService struct {
	posts             PostService
	repo              repository.CommentRepository
	emptyListNotFound bool
}

// NewCommentService creates a new comment service. Post existence is
// checked through posts.
func NewCommentService(posts PostService, repo repository.CommentRepository, emptyListNotFound bool) CommentService {
	return &commentService{
		posts:             posts,
		repo:              repo,
		emptyListNotFound: emptyListNotFound,
	}
}

// ListComments returns a post's comments in creation order.
func (s *commentService) ListComments(ctx context.Context, postID uint) ([]model.Comment, error) {
	if _, err := s.posts.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, apperr.NewInternal("list comments", err)
	}
	if len(comments) == 0 && s.emptyListNotFound {
		return nil, apperr.NewNotFound("No comments available.")
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return comments, nil
}

// GetComment retrieves a comment that belongs to postID.
func (s *commentService) GetComment(ctx context.Context, postID, id uint) (*model.Comment, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commentNotFound(id)
		}
		return nil, apperr.NewInternal("get comment", err)
	}
	if comment.PostID != postID {
		return nil, commentNotFound(id)
	}
	return comment, nil
}

// CreateComment attaches a new comment by the principal to an existing post.
func (s *commentService) CreateComment(ctx context.Context, principal auth.Principal, postID uint, input CommentInput) (*model.Comment, error) {
	if _, err := s.posts.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Body:     input.Body,
		AuthorID: principal.ID,
		PostID:   postID,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, apperr.NewInternal("create comment", err)
	}
	comment.Author = model.User{ID: principal.ID, Username: principal.Username}
	return comment, nil
}

// UpdateComment replaces the body. Only the author may update.
func (s *commentService) UpdateComment(ctx context.Context, principal auth.Principal, postID, id uint, input CommentInput) (*model.Comment, error) {
	comment, err := s.ownedComment(ctx, principal, postID, id)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, input.Body); err != nil {
		return nil, apperr.NewInternal("update comment", err)
	}
	comment.Body = input.Body
	return comment, nil
}

// DeleteComment removes a comment. Only the author may delete.
func (s *commentService) DeleteComment(ctx context.Context, principal auth.Principal, postID, id uint) error {
	if _, err := s.ownedComment(ctx, principal, postID, id); err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.NewInternal("delete comment", err)
	}
	if affected == 0 {
		return commentNotFound(id)
	}
	return nil
}

func (s *commentService) ownedComment(ctx context.Context, principal auth.Principal, postID, id uint) (*model.Comment, error) {
	comment, err := s.GetComment(ctx, postID, id)
	if err != nil {
		return nil, err
	}
	if !principal.Owns(comment.AuthorID) {
		return nil, apperr.NewForbidden(fmt.Sprintf("Comment id %d belongs to another user.", id))
	}
	return comment, nil
}

func commentNotFound(id uint) error {
	return apperr.NewNotFound(fmt.Sprintf("Comment id %d doesn't exist.", id))
}
