package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blogapi/internal/auth"
	apperr "blogapi/internal/errors"
	"blogapi/internal/model"
)

var (
	alice = auth.Principal{ID: 1, Username: "alice"}
	bob   = auth.Principal{ID: 2, Username: "bob"}
)

func alicesPost() *model.Post {
	return &model.Post{ID: 5, Title: "T", Body: "B", Created: time.Now(), AuthorID: alice.ID, Author: model.User{ID: alice.ID, Username: "alice"}}
}

func TestPostService_ListPosts(t *testing.T) {
	tests := []struct {
		name              string
		emptyListNotFound bool
		rows              []model.Post
		wantErr           bool
		wantLen           int
	}{
		{"posts available", true, []model.Post{*alicesPost()}, false, 1},
		{"empty list is not found", true, nil, true, 0},
		{"empty list allowed", false, nil, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			mockRepo.On("List", mock.Anything).Return(tt.rows, nil)

			posts, err := NewPostService(mockRepo, tt.emptyListNotFound).ListPosts(context.Background())

			if tt.wantErr {
				assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
				assert.EqualError(t, err, "No posts available.")
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, posts)
			assert.Len(t, posts, tt.wantLen)
		})
	}
}

func TestPostService_GetPost(t *testing.T) {
	mockRepo := new(MockPostRepository)
	mockRepo.On("FindByID", mock.Anything, uint(5)).Return(alicesPost(), nil)
	mockRepo.On("FindByID", mock.Anything, uint(6)).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByID", mock.Anything, uint(7)).Return(nil, errors.New("i/o timeout"))
	service := NewPostService(mockRepo, true)

	post, err := service.GetPost(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "T", post.Title)

	_, err = service.GetPost(context.Background(), 6)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.EqualError(t, err, "Post id 6 doesn't exist.")

	_, err = service.GetPost(context.Background(), 7)
	assert.True(t, apperr.IsKind(err, apperr.KindInternal))
}

func TestPostService_CreatePost(t *testing.T) {
	t.Run("stores post for principal", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
			return p.Title == "T" && p.Body == "B" && p.AuthorID == alice.ID
		})).Return(nil)

		post, err := NewPostService(mockRepo, true).CreatePost(context.Background(), alice, PostInput{Title: "T", Body: "B"})
		require.NoError(t, err)
		assert.Equal(t, uint(10), post.ID)
		assert.Equal(t, "alice", post.Author.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("title required", func(t *testing.T) {
		mockRepo := new(MockPostRepository)

		_, err := NewPostService(mockRepo, true).CreatePost(context.Background(), alice, PostInput{Body: "B"})
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		assert.EqualError(t, err, "Title is required.")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	tests := []struct {
		name      string
		principal auth.Principal
		id        uint
		input     PostInput
		setupMock func(*MockPostRepository)
		wantKind  apperr.Kind
		wantErr   bool
	}{
		{
			name:      "author updates",
			principal: alice,
			id:        5,
			input:     PostInput{Title: "T2", Body: "B2"},
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(alicesPost(), nil)
				m.On("Update", mock.Anything, uint(5), "T2", "B2").Return(nil)
			},
		},
		{
			name:      "missing post",
			principal: alice,
			id:        9,
			input:     PostInput{Title: "T2"},
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr:  true,
			wantKind: apperr.KindNotFound,
		},
		{
			name:      "other user is forbidden",
			principal: bob,
			id:        5,
			input:     PostInput{Title: "T2"},
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(alicesPost(), nil)
			},
			wantErr:  true,
			wantKind: apperr.KindForbidden,
		},
		{
			name:      "authorization checked before validation",
			principal: bob,
			id:        5,
			input:     PostInput{},
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(alicesPost(), nil)
			},
			wantErr:  true,
			wantKind: apperr.KindForbidden,
		},
		{
			name:      "author with empty title",
			principal: alice,
			id:        5,
			input:     PostInput{Body: "B2"},
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(alicesPost(), nil)
			},
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
		{
			name:      "store failure",
			principal: alice,
			id:        5,
			input:     PostInput{Title: "T2"},
			setupMock: func(m *MockPostRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(alicesPost(), nil)
				m.On("Update", mock.Anything, uint(5), "T2", "").Return(errors.New("connection reset"))
			},
			wantErr:  true,
			wantKind: apperr.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPostRepository)
			tt.setupMock(mockRepo)

			post, err := NewPostService(mockRepo, true).UpdatePost(context.Background(), tt.principal, tt.id, tt.input)

			if tt.wantErr {
				assert.True(t, apperr.IsKind(err, tt.wantKind), "got %v", err)
				assert.Nil(t, post)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input.Title, post.Title)
				assert.Equal(t, tt.input.Body, post.Body)
				assert.Equal(t, alice.ID, post.AuthorID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_DeletePost(t *testing.T) {
	t.Run("author deletes", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(alicesPost(), nil)
		mockRepo.On("Delete", mock.Anything, uint(5)).Return(int64(1), nil)

		assert.NoError(t, NewPostService(mockRepo, true).DeletePost(context.Background(), alice, 5))
		mockRepo.AssertExpectations(t)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(alicesPost(), nil)

		err := NewPostService(mockRepo, true).DeletePost(context.Background(), bob, 5)
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(alicesPost(), nil)
		mockRepo.On("Delete", mock.Anything, uint(5)).Return(int64(0), errors.New("disk full"))

		err := NewPostService(mockRepo, true).DeletePost(context.Background(), alice, 5)
		assert.True(t, apperr.IsKind(err, apperr.KindInternal))
	})
}
