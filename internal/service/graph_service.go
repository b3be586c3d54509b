// Package service contains the application's business logic.
package service

import (
	"context"
	"sort"

	"linkhive/internal/models"
	"linkhive/internal/observability"
	"linkhive/internal/repository"

	"golang.org/x/sync/errgroup"
)

// GraphService derives views over the connection graph: accepted peer sets,
// discovery exclusions, mutual counts and pending invitations.
type GraphService struct {
	connRepo repository.ConnectionRepository
	userRepo repository.UserRepository
}

// NewGraphService creates a new graph service instance.
func NewGraphService(connRepo repository.ConnectionRepository, userRepo repository.UserRepository) *GraphService {
	return &GraphService{connRepo: connRepo, userRepo: userRepo}
}

// AcceptedPeers returns the set of user IDs connected to userID by an
// accepted edge, regardless of who sent the request. The user itself is
// never a member of its own peer set.
func (s *GraphService) AcceptedPeers(ctx context.Context, userID uint) (map[uint]struct{}, error) {
	done := observability.TrackDerivation("accepted_peers")
	defer done()

	conns, err := s.connRepo.GetAcceptedByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	peers := make(map[uint]struct{}, len(conns))
	for i := range conns {
		peer := conns[i].OtherParticipant(userID)
		if peer != userID {
			peers[peer] = struct{}{}
		}
	}
	return peers, nil
}

// ExcludedIDs returns every user involved in ANY edge touching userID,
// whatever its status, plus userID itself. This feeds people discovery:
// anyone with an edge in flight should not be suggested again.
func (s *GraphService) ExcludedIDs(ctx context.Context, userID uint) ([]uint, error) {
	done := observability.TrackDerivation("excluded_ids")
	defer done()

	conns, err := s.connRepo.GetByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := map[uint]struct{}{userID: {}}
	for i := range conns {
		seen[conns[i].SenderID] = struct{}{}
		seen[conns[i].ReceiverID] = struct{}{}
	}

	ids := make([]uint, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// MutualCount returns the size of the intersection of both users' accepted
// peer sets. The count is symmetric: MutualCount(a, b) == MutualCount(b, a).
func (s *GraphService) MutualCount(ctx context.Context, userID, otherID uint) (int, error) {
	done := observability.TrackDerivation("mutual_count")
	defer done()

	// A user shares no mutual connections with themselves; without the guard
	// the intersection below would report their full peer count.
	if userID == otherID {
		return 0, nil
	}

	var mine, theirs map[uint]struct{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mine, err = s.AcceptedPeers(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		theirs, err = s.AcceptedPeers(gctx, otherID)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	// Iterate the smaller set.
	if len(theirs) < len(mine) {
		mine, theirs = theirs, mine
	}
	count := 0
	for id := range mine {
		if _, ok := theirs[id]; ok {
			count++
		}
	}
	return count, nil
}

// PendingInvitations returns invitations addressed to userID, oldest first.
// Requests sent by admin accounts are suppressed.
func (s *GraphService) PendingInvitations(ctx context.Context, userID uint) ([]models.Invitation, error) {
	done := observability.TrackDerivation("pending_invitations")
	defer done()

	conns, err := s.connRepo.GetPendingForReceiver(ctx, userID)
	if err != nil {
		return nil, err
	}

	invitations := make([]models.Invitation, 0, len(conns))
	for i := range conns {
		if conns[i].Sender.IsAdmin() {
			continue
		}
		invitations = append(invitations, models.Invitation{
			ID:        conns[i].ID,
			Sender:    conns[i].Sender.Summary(),
			CreatedAt: conns[i].CreatedAt,
		})
	}
	return invitations, nil
}

// SuggestPeople returns users the given user might connect with: everyone
// except admins, the user itself, and anyone sharing an edge with the user
// in any state.
func (s *GraphService) SuggestPeople(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	done := observability.TrackDerivation("suggest_people")
	defer done()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	excluded, err := s.ExcludedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListExcluding(ctx, excluded, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}

// ListOthers returns every non-admin user except the current one. Unlike
// SuggestPeople it does NOT remove users with edges in flight; the two
// exclusion rules are intentionally different.
func (s *GraphService) ListOthers(ctx context.Context, currentUserID uint) ([]models.UserSummary, error) {
	done := observability.TrackDerivation("list_others")
	defer done()

	if _, err := s.userRepo.GetByID(ctx, currentUserID); err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListExcluding(ctx, []uint{currentUserID}, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}
