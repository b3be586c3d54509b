package service

import (
	"context"
	"strings"

	"linkhive/internal/models"
	"linkhive/internal/repository"
)

// PostService manages posts, drafts and likes.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a new post service instance.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// CreatePostInput carries the fields accepted when creating a post.
type CreatePostInput struct {
	AuthorID uint   `json:"author_id"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Draft    bool   `json:"draft"`
}

// CreatePost stores a new post, published or as a draft.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("content is required")
	}
	if _, err := s.userRepo.GetByID(ctx, in.AuthorID); err != nil {
		return nil, err
	}

	post := &models.Post{
		AuthorID: in.AuthorID,
		Content:  in.Content,
		Image:    in.Image,
		Draft:    in.Draft,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns a post. Drafts are visible only to their author; to anyone
// else the post does not exist.
func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Draft && post.AuthorID != viewerID {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return post, nil
}

// AuthorPosts returns a user's published posts, newest first.
func (s *PostService) AuthorPosts(ctx context.Context, authorID uint, limit, offset int) ([]models.FeedPost, error) {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	posts, err := s.postRepo.GetPublishedByAuthor(ctx, authorID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]models.FeedPost, 0, len(posts))
	for i := range posts {
		out = append(out, posts[i].FeedView())
	}
	return out, nil
}

// Drafts returns a user's unpublished posts.
func (s *PostService) Drafts(ctx context.Context, authorID uint) ([]models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	return s.postRepo.GetDraftsByAuthor(ctx, authorID)
}

// Publish flips a draft to published. Only the author may publish, and a
// post already published cannot be published again.
func (s *PostService) Publish(ctx context.Context, postID, userID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, models.NewNotFoundError("Post", postID)
	}
	if !post.Draft {
		return nil, models.NewConflictError("Post is already published")
	}
	if err := s.postRepo.Publish(ctx, postID); err != nil {
		return nil, err
	}
	post.Draft = false
	return post, nil
}

// DeletePost removes a post. Only the author may delete it.
func (s *PostService) DeletePost(ctx context.Context, postID, userID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return models.NewNotFoundError("Post", postID)
	}
	return s.postRepo.Delete(ctx, postID)
}

// Like records a like. Draft posts cannot be liked, and liking twice
// conflicts.
func (s *PostService) Like(ctx context.Context, userID, postID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.Draft {
		return models.NewNotFoundError("Post", postID)
	}
	return s.postRepo.Like(ctx, userID, postID)
}

// Unlike removes a like.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) error {
	return s.postRepo.Unlike(ctx, userID, postID)
}

// LikeCount returns the number of likes on a post.
func (s *PostService) LikeCount(ctx context.Context, postID uint) (int64, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return 0, err
	}
	return s.postRepo.CountLikes(ctx, postID)
}
