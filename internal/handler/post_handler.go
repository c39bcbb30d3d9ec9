package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"glassblog/internal/blog"
)

type CreatePostRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Excerpt  string   `json:"excerpt"`
	Author   string   `json:"author"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// UpdatePostRequest mirrors the partial-update contract: absent fields stay
// untouched on the post.
type UpdatePostRequest struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Excerpt  *string  `json:"excerpt"`
	Author   *string  `json:"author"`
	Category *string  `json:"category"`
	Tags     []string `json:"tags"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	if category := query.Get("category"); category != "" {
		writeSuccess(w, h.Blog.GetPostsByCategory(category), http.StatusOK)
		return
	}
	if tag := query.Get("tag"); tag != "" {
		writeSuccess(w, h.Blog.GetPostsByTag(tag), http.StatusOK)
		return
	}

	writeSuccess(w, h.Blog.Posts(), http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

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

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Title and content are required", http.StatusBadRequest)
		return
	}

	// default the author to the logged-in user
	if req.Author == "" {
		if user := h.Sessions.Current().User; user != nil {
			req.Author = user.Username
		}
	}

	post := h.Blog.CreatePost(blog.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		Author:   req.Author,
		Category: req.Category,
		Tags:     req.Tags,
	})

	writeSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := postID(r)
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	post, found := h.Blog.UpdatePost(id, blog.UpdatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		Author:   req.Author,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if !found {
		WriteError(w, "Post not found", http.StatusNotFound)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := postID(r)
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	if !h.Blog.DeletePost(id) {
		WriteError(w, "Post not found", http.StatusNotFound)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Post deleted"}, http.StatusOK)
}

// IncrementViews counts a view. A missing post is a no-op, not an error.
func (h *Handlers) IncrementViews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := postID(r)
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	h.Blog.IncrementViews(id)

	writeSuccess(w, MessageResponse{Message: "View counted"}, http.StatusOK)
}

func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeSuccess(w, h.Blog.Categories(), http.StatusOK)
}

func (h *Handlers) GetTags(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeSuccess(w, h.Blog.Tags(), http.StatusOK)
}

// Search stores the query on the content store and returns the derived
// filtered view.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.Blog.SetSearchQuery(r.URL.Query().Get("q"))

	writeSuccess(w, h.Blog.FilteredPosts(), http.StatusOK)
}

func postID(r *http.Request) (int64, bool) {
	raw, ok := mux.Vars(r)["id"]
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
