package service

import (
	"context"
	"testing"
	"time"

	"linkhive/internal/models"
)

func TestBuildFeedIncludesSelfAndAcceptedPeersOnly(t *testing.T) {
	edges := []models.Connection{
		{ID: 1, SenderID: 1, ReceiverID: 2, Status: models.ConnectionStatusAccepted},
		{ID: 2, SenderID: 3, ReceiverID: 1, Status: models.ConnectionStatusPending},
	}
	connRepo := noopConnRepo()
	connRepo.getAcceptedParticipantFn = func(_ context.Context, userID uint) ([]models.Connection, error) {
		return acceptedEdgesFor(edges, userID), nil
	}

	var gotAuthors []uint
	postRepo := noopPostRepo()
	postRepo.getFeedFn = func(_ context.Context, authorIDs []uint, _, _ int) ([]models.Post, error) {
		gotAuthors = authorIDs
		return nil, nil
	}

	graph := NewGraphService(connRepo, noopUserRepo())
	svc := NewFeedService(graph, postRepo, noopUserRepo())

	if _, err := svc.BuildFeed(context.Background(), 1, 25, 0); err != nil {
		t.Fatalf("BuildFeed: %v", err)
	}

	// Author set is the user plus accepted peer 2; pending peer 3 is out.
	if len(gotAuthors) != 2 || gotAuthors[0] != 1 || gotAuthors[1] != 2 {
		t.Errorf("expected authors [1 2], got %v", gotAuthors)
	}
}

func TestBuildFeedProjectsAuthorsAndPreservesOrder(t *testing.T) {
	now := time.Now()
	postRepo := noopPostRepo()
	postRepo.getFeedFn = func(context.Context, []uint, int, int) ([]models.Post, error) {
		return []models.Post{
			{ID: 10, AuthorID: 2, Content: "newest", CreatedAt: now,
				Author: models.User{ID: 2, FirstName: "Ana", LastName: "Reyes", Headline: "Engineer", Password: "secret"}},
			{ID: 9, AuthorID: 1, Content: "older", CreatedAt: now.Add(-time.Hour),
				Author: models.User{ID: 1, FirstName: "Me", LastName: "Self"}},
		}, nil
	}

	graph := NewGraphService(noopConnRepo(), noopUserRepo())
	svc := NewFeedService(graph, postRepo, noopUserRepo())

	feed, err := svc.BuildFeed(context.Background(), 1, 25, 0)
	if err != nil {
		t.Fatalf("BuildFeed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(feed))
	}
	if feed[0].ID != 10 || feed[1].ID != 9 {
		t.Errorf("store ordering not preserved: %d, %d", feed[0].ID, feed[1].ID)
	}
	if feed[0].Author.FirstName != "Ana" || feed[0].Author.Headline != "Engineer" {
		t.Errorf("author projection incomplete: %+v", feed[0].Author)
	}
}

func TestBuildFeedUnknownUser(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}

	graph := NewGraphService(noopConnRepo(), noopUserRepo())
	svc := NewFeedService(graph, noopPostRepo(), userRepo)

	if _, err := svc.BuildFeed(context.Background(), 42, 25, 0); err == nil {
		t.Fatal("expected error for unknown user")
	}
}

func TestBuildFeedEmptyWhenNoPosts(t *testing.T) {
	graph := NewGraphService(noopConnRepo(), noopUserRepo())
	svc := NewFeedService(graph, noopPostRepo(), noopUserRepo())

	feed, err := svc.BuildFeed(context.Background(), 1, 25, 0)
	if err != nil {
		t.Fatalf("BuildFeed: %v", err)
	}
	if feed == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(feed) != 0 {
		t.Errorf("expected empty feed, got %d posts", len(feed))
	}
}
