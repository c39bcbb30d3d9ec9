package models

type User struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// RegisteredUser is the shape persisted under the registeredUsers key.
// Password always holds the redaction placeholder, never the cleartext value.
type RegisteredUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session holds the current authentication state. IsAuthenticated is true
// iff Token is non-empty, and User is set iff IsAuthenticated.
type Session struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	User            *User  `json:"user,omitempty"`
	Token           string `json:"token,omitempty"`
}

type Post struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Excerpt   string   `json:"excerpt"`
	Author    string   `json:"author"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Views     int      `json:"views"`
}

type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}
