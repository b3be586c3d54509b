package server

import (
	"linkhive/internal/models"
	"linkhive/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost creates a post or draft
// @Summary Create a post
// @Description Stores a post. With draft=true the post stays private to the author until published.
// @Tags posts
// @Accept json
// @Produce json
// @Param request body service.CreatePostInput true "Post fields"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var in service.CreatePostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if in.AuthorID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("author_id is required"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost returns a single post
// @Summary Get a post
// @Description Drafts are only visible to their author (viewer passed via userId query param).
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Param userId query int false "Viewer user ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewerID := uint(c.QueryInt("userId", 0))

	post, err := s.postService.GetPost(c.UserContext(), id, viewerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// GetAuthorPosts returns a user's published posts
// @Summary List a user's published posts
// @Tags posts
// @Produce json
// @Param userId path int true "Author user ID"
// @Param limit query int false "Page size" default(25)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} models.FeedPost
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/author/{userId} [get]
func (s *Server) GetAuthorPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	p := parsePagination(c, 25)

	posts, err := s.postService.AuthorPosts(c.UserContext(), userID, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(posts)
}

// GetDrafts returns a user's draft posts
// @Summary List a user's drafts
// @Tags posts
// @Produce json
// @Param userId path int true "Author user ID"
// @Success 200 {array} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/drafts/{userId} [get]
func (s *Server) GetDrafts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	drafts, err := s.postService.Drafts(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(drafts)
}

// PublishPost publishes a draft
// @Summary Publish a draft
// @Description Flips a draft to published. Only the author (userId query param) may publish.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Param userId query int true "Author user ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /posts/{id}/publish [post]
func (s *Server) PublishPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := uint(c.QueryInt("userId", 0))
	if userID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("userId query parameter is required"))
	}

	post, err := s.postService.Publish(c.UserContext(), id, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// DeletePost deletes a post
// @Summary Delete a post
// @Description Only the author (userId query param) may delete a post.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Param userId query int true "Author user ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := uint(c.QueryInt("userId", 0))
	if userID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("userId query parameter is required"))
	}

	if err := s.postService.DeletePost(c.UserContext(), id, userID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// LikePost records a like
// @Summary Like a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Param userId query int true "Liking user ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /posts/{id}/like [post]
func (s *Server) LikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := uint(c.QueryInt("userId", 0))
	if userID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("userId query parameter is required"))
	}

	if err := s.postService.Like(c.UserContext(), userID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post liked"})
}

// UnlikePost removes a like
// @Summary Unlike a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Param userId query int true "Unliking user ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/like [delete]
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := uint(c.QueryInt("userId", 0))
	if userID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("userId query parameter is required"))
	}

	if err := s.postService.Unlike(c.UserContext(), userID, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Like removed"})
}

// GetLikeCount returns the number of likes on a post
// @Summary Count likes on a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]int
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/likes [get]
func (s *Server) GetLikeCount(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	count, err := s.postService.LikeCount(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"likes": count})
}
