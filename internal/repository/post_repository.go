package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blogapi/internal/model"
)

// PostRepository defines post persistence operations.
// Each method issues exactly one statement.
type PostRepository interface {
	List(ctx context.Context) ([]model.Post, error)
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, id uint, title, body string) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// List returns every post joined with its author, newest first.
func (r *postRepository) List(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).
		Joins("Author").
		Order("post.created DESC, post.id DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByID finds a post and its author by ID.
func (r *postRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).
		Joins("Author").
		Where("post.id = ?", id).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts a post; ID and Created are filled in on success.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

// Update overwrites title and body. Rows affected is not reported: MySQL
// counts changed rows, so rewriting identical values reports zero.
func (r *postRepository) Update(ctx context.Context, id uint, title, body string) error {
	return r.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "body": body}).Error
}

// Delete removes a post and returns the affected row count.
func (r *postRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Post{}, id)
	return res.RowsAffected, res.Error
}
