package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blogapi/internal/model"
)

// CommentRepository defines comment persistence operations.
// Each method issues exactly one statement.
type CommentRepository interface {
	ListByPost(ctx context.Context, postID uint) ([]model.Comment, error)
	FindByID(ctx context.Context, id uint) (*model.Comment, error)
	Create(ctx context.Context, comment *model.Comment) error
	Update(ctx context.Context, id uint, body string) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByPost returns a post's comments in creation order.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).
		Joins("Author").
		Where("comment.post_id = ?", postID).
		Order("comment.created ASC, comment.id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByID finds a comment and its author by ID.
func (r *commentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).
		Joins("Author").
		Where("comment.id = ?", id).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Create inserts a comment; ID and Created are filled in on success.
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error
}

// Update overwrites the body.
func (r *commentRepository) Update(ctx context.Context, id uint, body string) error {
	return r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).
		Update("body", body).Error
}

// Delete removes a comment and returns the affected row count.
func (r *commentRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Comment{}, id)
	return res.RowsAffected, res.Error
}
