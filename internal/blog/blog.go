package blog

import (
	"slices"
	"strings"
	"sync"
	"time"

	"glassblog/internal/models"
)

const dateLayout = "2006-01-02"

type CreatePostInput struct {
	Title    string
	Content  string
	Excerpt  string
	Author   string
	Category string
	Tags     []string
}

// UpdatePostInput carries a partial update; nil fields are left untouched.
type UpdatePostInput struct {
	Title    *string
	Content  *string
	Excerpt  *string
	Author   *string
	Category *string
	Tags     []string
}

type ContentStore interface {
	Posts() []*models.Post
	GetPostByID(id int64) (*models.Post, bool)
	GetPostsByCategory(category string) []*models.Post
	GetPostsByTag(tag string) []*models.Post
	CreatePost(in CreatePostInput) *models.Post
	UpdatePost(id int64, in UpdatePostInput) (*models.Post, bool)
	DeletePost(id int64) bool
	IncrementViews(id int64)
	SetSearchQuery(query string)
	SearchQuery() string
	FilteredPosts() []*models.Post
	Categories() []*models.Category
	Tags() []*models.Tag
}

// Store holds the authoritative in-memory collections. Posts are kept
// newest-first; ids come from a monotonic counter seeded with the current
// Unix millisecond so rapid creation cannot collide.
type Store struct {
	mu          sync.RWMutex
	posts       []*models.Post
	categories  []*models.Category
	tags        []*models.Tag
	searchQuery string
	nextID      int64
	now         func() time.Time
}

func NewStore() *Store {
	return &Store{
		nextID: time.Now().UnixMilli(),
		now:    time.Now,
	}
}

func (s *Store) Posts() []*models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePosts(s.posts)
}

func (s *Store) GetPostByID(id int64) (*models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post := s.findLocked(id)
	if post == nil {
		return nil, false
	}
	return clonePost(post), true
}

func (s *Store) GetPostsByCategory(category string) []*models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Post
	for _, post := range s.posts {
		if post.Category == category {
			out = append(out, clonePost(post))
		}
	}
	return out
}

func (s *Store) GetPostsByTag(tag string) []*models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Post
	for _, post := range s.posts {
		if slices.Contains(post.Tags, tag) {
			out = append(out, clonePost(post))
		}
	}
	return out
}

func (s *Store) CreatePost(in CreatePostInput) *models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().Format(dateLayout)
	post := &models.Post{
		ID:        s.nextID,
		Title:     in.Title,
		Content:   in.Content,
		Excerpt:   in.Excerpt,
		Author:    in.Author,
		CreatedAt: today,
		UpdatedAt: today,
		Category:  in.Category,
		Tags:      append([]string(nil), in.Tags...),
		Views:     0,
	}
	s.nextID++

	// newest first
	s.posts = append([]*models.Post{post}, s.posts...)
	s.recountLocked()

	return clonePost(post)
}

func (s *Store) UpdatePost(id int64, in UpdatePostInput) (*models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findLocked(id)
	if post == nil {
		return nil, false
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Excerpt != nil {
		post.Excerpt = *in.Excerpt
	}
	if in.Author != nil {
		post.Author = *in.Author
	}
	if in.Category != nil {
		post.Category = *in.Category
	}
	if in.Tags != nil {
		post.Tags = append([]string(nil), in.Tags...)
	}
	post.UpdatedAt = s.now().Format(dateLayout)

	s.recountLocked()

	return clonePost(post), true
}

func (s *Store) DeletePost(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, post := range s.posts {
		if post.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			s.recountLocked()
			return true
		}
	}
	return false
}

// IncrementViews is a no-op when no post carries the id. Repeated calls all
// count; there is no upper bound and no viewer deduplication.
func (s *Store) IncrementViews(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post := s.findLocked(id); post != nil {
		post.Views++
	}
}

func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// FilteredPosts returns every post when the search query is empty, otherwise
// the posts whose title, content, excerpt or any tag contains the query
// case-insensitively. Order follows the post collection.
func (s *Store) FilteredPosts() []*models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.searchQuery == "" {
		return clonePosts(s.posts)
	}

	query := strings.ToLower(s.searchQuery)
	var out []*models.Post
	for _, post := range s.posts {
		if matchesQuery(post, query) {
			out = append(out, clonePost(post))
		}
	}
	return out
}

func (s *Store) Categories() []*models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Category, len(s.categories))
	for i, c := range s.categories {
		category := *c
		out[i] = &category
	}
	return out
}

func (s *Store) Tags() []*models.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Tag, len(s.tags))
	for i, t := range s.tags {
		tag := *t
		out[i] = &tag
	}
	return out
}

func (s *Store) findLocked(id int64) *models.Post {
	for _, post := range s.posts {
		if post.ID == id {
			return post
		}
	}
	return nil
}

// recountLocked recomputes the Count caches from the post collection, so
// they never go stale across post mutations.
func (s *Store) recountLocked() {
	for _, category := range s.categories {
		category.Count = 0
		for _, post := range s.posts {
			if post.Category == category.Name {
				category.Count++
			}
		}
	}

	for _, tag := range s.tags {
		tag.Count = 0
		for _, post := range s.posts {
			if slices.Contains(post.Tags, tag.Name) {
				tag.Count++
			}
		}
	}
}

func matchesQuery(post *models.Post, query string) bool {
	if strings.Contains(strings.ToLower(post.Title), query) ||
		strings.Contains(strings.ToLower(post.Content), query) ||
		strings.Contains(strings.ToLower(post.Excerpt), query) {
		return true
	}
	for _, tag := range post.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func clonePost(post *models.Post) *models.Post {
	out := *post
	out.Tags = append([]string(nil), post.Tags...)
	return &out
}

func clonePosts(posts []*models.Post) []*models.Post {
	out := make([]*models.Post, len(posts))
	for i, post := range posts {
		out[i] = clonePost(post)
	}
	return out
}
