package service

import (
	"context"
	"sort"

	"linkhive/internal/models"
	"linkhive/internal/observability"
	"linkhive/internal/repository"
)

// FeedService assembles a user's feed from their own posts and their
// accepted peers' posts.
type FeedService struct {
	graph    *GraphService
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewFeedService creates a new feed service instance.
func NewFeedService(graph *GraphService, postRepo repository.PostRepository, userRepo repository.UserRepository) *FeedService {
	return &FeedService{graph: graph, postRepo: postRepo, userRepo: userRepo}
}

// BuildFeed returns published posts authored by the user or any accepted
// peer, newest first. Drafts never appear, not even the user's own.
func (s *FeedService) BuildFeed(ctx context.Context, userID uint, limit, offset int) ([]models.FeedPost, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	peers, err := s.graph.AcceptedPeers(ctx, userID)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uint, 0, len(peers)+1)
	authorIDs = append(authorIDs, userID)
	for id := range peers {
		authorIDs = append(authorIDs, id)
	}
	sort.Slice(authorIDs, func(i, j int) bool { return authorIDs[i] < authorIDs[j] })

	posts, err := s.postRepo.GetFeed(ctx, authorIDs, limit, offset)
	if err != nil {
		return nil, err
	}

	feed := make([]models.FeedPost, 0, len(posts))
	for i := range posts {
		feed = append(feed, posts[i].FeedView())
	}

	observability.FeedPostsReturned.Observe(float64(len(feed)))
	return feed, nil
}
