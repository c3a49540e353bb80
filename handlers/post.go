package handlers

import (
	"log"
	"net/http"
	"time"

	"courseboard_backend/db"
	"courseboard_backend/models"
	"courseboard_backend/paths"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	store db.DocumentStore
	appID string
}

func NewPostHandler(store db.DocumentStore, appID string) *PostHandler {
	return &PostHandler{store: store, appID: appID}
}

// CreatePost inserts a single post document under the shared public root.
// Auth middleware must run first; a missing userID here is treated as a
// validation failure, not an auth failure.
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("userID") // from auth middleware

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "courseId, title and content are required"})
		return
	}

	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authenticated user ID is missing"})
		return
	}

	post := models.Post{
		AuthorID:     userID,
		CourseID:     req.CourseID,
		Title:        req.Title,
		Content:      req.Content,
		Tags:         req.NormalizedTags(),
		VoteScore:    0,
		CommentCount: 0,
		CreatedAt:    time.Now().UTC(),
	}

	collection := paths.PostsCollection(h.appID, req.CourseID)
	postID, err := h.store.Add(c.Request.Context(), collection, post.Document())
	if err != nil {
		log.Printf("Error inserting post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"postId":  postID,
	})
}

// GetPosts returns a fixed fixture. Listing is not wired to persisted data
// yet; the response mocks what a store-backed listing will eventually return.
func (h *PostHandler) GetPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "This is the public list of posts (Mock Data).",
		"data": []models.MockPostSummary{
			{ID: "mock-101", Title: "Intro to Express", Votes: 5},
		},
	})
}
