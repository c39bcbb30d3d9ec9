package handlers

import (
	"net/http"

	"glassblog/internal/models"
)

// Page handlers back the guarded view routes. Each returns the data its view
// renders; the navigation guard has already run by the time they execute.

type postListPage struct {
	Posts       []*models.Post `json:"posts"`
	SearchQuery string         `json:"searchQuery"`
}

type postEditorPage struct {
	Post       *models.Post       `json:"post,omitempty"`
	Categories []*models.Category `json:"categories"`
	Tags       []*models.Tag      `json:"tags"`
}

func (h *Handlers) PostListPage(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, postListPage{
		Posts:       h.Blog.FilteredPosts(),
		SearchQuery: h.Blog.SearchQuery(),
	}, http.StatusOK)
}

// PostDetailPage counts the visit; every view of the page increments,
// deliberately without deduplication.
func (h *Handlers) PostDetailPage(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	h.Blog.IncrementViews(id)

	post, found := h.Blog.GetPostByID(id)
	if !found {
		WriteError(w, "Post not found", http.StatusNotFound)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) PostCreatePage(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, postEditorPage{
		Categories: h.Blog.Categories(),
		Tags:       h.Blog.Tags(),
	}, http.StatusOK)
}

func (h *Handlers) PostEditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	post, found := h.Blog.GetPostByID(id)
	if !found {
		WriteError(w, "Post not found", http.StatusNotFound)
		return
	}

	writeSuccess(w, postEditorPage{
		Post:       post,
		Categories: h.Blog.Categories(),
		Tags:       h.Blog.Tags(),
	}, http.StatusOK)
}

func (h *Handlers) CategoriesPage(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.Blog.Categories(), http.StatusOK)
}

func (h *Handlers) TagsPage(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.Blog.Tags(), http.StatusOK)
}

func (h *Handlers) SearchPage(w http.ResponseWriter, r *http.Request) {
	h.Blog.SetSearchQuery(r.URL.Query().Get("q"))
	writeSuccess(w, h.Blog.FilteredPosts(), http.StatusOK)
}

func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{
		"view":     "login",
		"redirect": r.URL.Query().Get("redirect"),
	}, http.StatusOK)
}

func (h *Handlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"view": "register"}, http.StatusOK)
}
