package test

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"glassblog/internal/blog"
	"glassblog/internal/models"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, username, password string) (bool, error) {
	args := m.Called(ctx, username, password)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionService) Register(ctx context.Context, username, email, password string) (bool, error) {
	args := m.Called(ctx, username, email, password)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionService) Logout() {
	m.Called()
}

func (m *MockSessionService) CheckAuth() {
	m.Called()
}

func (m *MockSessionService) Current() models.Session {
	args := m.Called()
	return args.Get(0).(models.Session)
}

func (m *MockSessionService) IsAuthenticated() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockSessionService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

type MockContentStore struct {
	mock.Mock
}

func (m *MockContentStore) Posts() []*models.Post {
	args := m.Called()
	return args.Get(0).([]*models.Post)
}

func (m *MockContentStore) GetPostByID(id int64) (*models.Post, bool) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.Post), args.Bool(1)
}

func (m *MockContentStore) GetPostsByCategory(category string) []*models.Post {
	args := m.Called(category)
	return args.Get(0).([]*models.Post)
}

func (m *MockContentStore) GetPostsByTag(tag string) []*models.Post {
	args := m.Called(tag)
	return args.Get(0).([]*models.Post)
}

func (m *MockContentStore) CreatePost(in blog.CreatePostInput) *models.Post {
	args := m.Called(in)
	return args.Get(0).(*models.Post)
}

func (m *MockContentStore) UpdatePost(id int64, in blog.UpdatePostInput) (*models.Post, bool) {
	args := m.Called(id, in)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.Post), args.Bool(1)
}

func (m *MockContentStore) DeletePost(id int64) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockContentStore) IncrementViews(id int64) {
	m.Called(id)
}

func (m *MockContentStore) SetSearchQuery(query string) {
	m.Called(query)
}

func (m *MockContentStore) SearchQuery() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockContentStore) FilteredPosts() []*models.Post {
	args := m.Called()
	return args.Get(0).([]*models.Post)
}

func (m *MockContentStore) Categories() []*models.Category {
	args := m.Called()
	return args.Get(0).([]*models.Category)
}

func (m *MockContentStore) Tags() []*models.Tag {
	args := m.Called()
	return args.Get(0).([]*models.Tag)
}
