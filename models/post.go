package models

import "time"

// Post is the record persisted for every created post. AuthorID always comes
// from the verified token, never from client input, and CreatedAt is assigned
// server-side. Posts are immutable once written.
type Post struct {
	AuthorID     string    `json:"author_id"`
	CourseID     string    `json:"course_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Tags         []string  `json:"tags"`
	VoteScore    int       `json:"vote_score"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreatePostRequest struct {
	CourseID string      `json:"courseId" binding:"required"`
	Title    string      `json:"title" binding:"required"`
	Content  string      `json:"content" binding:"required"`
	Tags     interface{} `json:"tags"`
}

// NormalizedTags returns the request's tags as a string slice. A JSON array
// keeps its string elements in order; any other value becomes the empty
// slice, without raising an error.
func (r *CreatePostRequest) NormalizedTags() []string {
	tags := []string{}
	arr, ok := r.Tags.([]interface{})
	if !ok {
		return tags
	}
	for _, v := range arr {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}

// Document flattens the post into the shape stored in the document database.
func (p *Post) Document() map[string]interface{} {
	return map[string]interface{}{
		"author_id":     p.AuthorID,
		"course_id":     p.CourseID,
		"title":         p.Title,
		"content":       p.Content,
		"tags":          p.Tags,
		"vote_score":    p.VoteScore,
		"comment_count": p.CommentCount,
		"created_at":    p.CreatedAt,
	}
}

// MockPostSummary is the fixture shape returned by the public listing
// endpoint, which is not wired to the store yet.
type MockPostSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Votes int    `json:"votes"`
}
