package blog

import "glassblog/internal/models"

// NewSeededStore returns a store preloaded with the default content the
// application ships with: three posts, three categories and four tags.
func NewSeededStore() *Store {
	s := NewStore()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = []*models.Post{
		{
			ID:        1,
			Title:     "Welcome to my blog",
			Content:   "# Welcome to my blog\n\nThis is a modern blog built with a glassmorphism design style.\n\n## Features\n\n- Clean glass-like design\n- Responsive layout\n- Smooth user experience\n- A modern stack\n\nHope you enjoy it!",
			Excerpt:   "This is a modern blog built with a glassmorphism design style.",
			Author:    "Admin",
			CreatedAt: "2024-01-15",
			UpdatedAt: "2024-01-15",
			Category:  "Tech",
			Tags:      []string{"Vue", "Design"},
			Views:     120,
		},
		{
			ID:        2,
			Title:     "Getting started with the Composition API",
			Content:   "# Getting started with the Composition API\n\nThe Composition API offers a more flexible way to organize component logic.\n\n## Why use it?\n\n- Better logic reuse\n- Clearer code organization\n- Better type support",
			Excerpt:   "The Composition API offers a more flexible way to organize component logic.",
			Author:    "Admin",
			CreatedAt: "2024-01-14",
			UpdatedAt: "2024-01-14",
			Category:  "Tech",
			Tags:      []string{"Vue", "JavaScript"},
			Views:     89,
		},
		{
			ID:        3,
			Title:     "The glassmorphism design trend",
			Content:   "# The glassmorphism design trend\n\nGlassmorphism creates an elegant visual experience through translucency and background blur.\n\n## Characteristics\n\n- Translucent backgrounds\n- Background blur\n- Soft shadows\n- Clear layering",
			Excerpt:   "Glassmorphism creates an elegant visual experience through translucency and background blur.",
			Author:    "Admin",
			CreatedAt: "2024-01-13",
			UpdatedAt: "2024-01-13",
			Category:  "Design",
			Tags:      []string{"Design", "UI"},
			Views:     156,
		},
	}

	s.categories = []*models.Category{
		{ID: 1, Name: "Tech", Slug: "tech"},
		{ID: 2, Name: "Design", Slug: "design"},
		{ID: 3, Name: "Life", Slug: "life"},
	}

	s.tags = []*models.Tag{
		{ID: 1, Name: "Vue", Slug: "vue"},
		{ID: 2, Name: "JavaScript", Slug: "javascript"},
		{ID: 3, Name: "Design", Slug: "design"},
		{ID: 4, Name: "UI", Slug: "ui"},
	}

	s.recountLocked()

	return s
}
