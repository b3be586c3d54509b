package service

import (
	"context"
	"testing"

	"linkhive/internal/models"
)

func TestAcceptedPeersNeverContainsSelf(t *testing.T) {
	edges := []models.Connection{
		{ID: 1, SenderID: 1, ReceiverID: 2, Status: models.ConnectionStatusAccepted},
		{ID: 2, SenderID: 3, ReceiverID: 1, Status: models.ConnectionStatusAccepted},
		{ID: 3, SenderID: 1, ReceiverID: 4, Status: models.ConnectionStatusPending},
	}
	connRepo := noopConnRepo()
	connRepo.getAcceptedParticipantFn = func(_ context.Context, userID uint) ([]models.Connection, error) {
		return acceptedEdgesFor(edges, userID), nil
	}
	svc := NewGraphService(connRepo, noopUserRepo())

	peers, err := svc.AcceptedPeers(context.Background(), 1)
	if err != nil {
		t.Fatalf("AcceptedPeers: %v", err)
	}
	if _, ok := peers[1]; ok {
		t.Error("peer set contains the user itself")
	}
	if len(peers) != 2 {
		t.Fatalf("expected 2 peers, got %d", len(peers))
	}
	if _, ok := peers[2]; !ok {
		t.Error("missing peer 2 (edge sent by user)")
	}
	if _, ok := peers[3]; !ok {
		t.Error("missing peer 3 (edge received by user)")
	}
	if _, ok := peers[4]; ok {
		t.Error("pending edge must not contribute a peer")
	}
}

func TestAcceptedPeersSymmetry(t *testing.T) {
	edges := []models.Connection{
		{ID: 1, SenderID: 1, ReceiverID: 2, Status: models.ConnectionStatusAccepted},
		{ID: 2, SenderID: 3, ReceiverID: 2, Status: models.ConnectionStatusAccepted},
	}
	connRepo := noopConnRepo()
	connRepo.getAcceptedParticipantFn = func(_ context.Context, userID uint) ([]models.Connection, error) {
		return acceptedEdgesFor(edges, userID), nil
	}
	svc := NewGraphService(connRepo, noopUserRepo())

	for a := uint(1); a <= 3; a++ {
		for b := uint(1); b <= 3; b++ {
			if a == b {
				continue
			}
			peersA, err := svc.AcceptedPeers(context.Background(), a)
			if err != nil {
				t.Fatalf("AcceptedPeers(%d): %v", a, err)
			}
			peersB, err := svc.AcceptedPeers(context.Background(), b)
			if err != nil {
				t.Fatalf("AcceptedPeers(%d): %v", b, err)
			}
			_, aHasB := peersA[b]
			_, bHasA := peersB[a]
			if aHasB != bHasA {
				t.Errorf("asymmetric peer relation between %d and %d", a, b)
			}
		}
	}
}

func TestMutualCountIntersection(t *testing.T) {
	// A(1) is connected to B(2) and C(3). B and C are not connected to
	// each other, so their only mutual connection is A.
	edges := []models.Connection{
		{ID: 1, SenderID: 1, ReceiverID: 2, Status: models.ConnectionStatusAccepted},
		{ID: 2, SenderID: 3, ReceiverID: 1, Status: models.ConnectionStatusAccepted},
	}
	connRepo := noopConnRepo()
	connRepo.getAcceptedParticipantFn = func(_ context.Context, userID uint) ([]models.Connection, error) {
		return acceptedEdgesFor(edges, userID), nil
	}
	svc := NewGraphService(connRepo, noopUserRepo())

	count, err := svc.MutualCount(context.Background(), 2, 3)
	if err != nil {
		t.Fatalf("MutualCount: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 mutual connection between B and C, got %d", count)
	}

	// A shares no peers with B: A's peers are {B, C}, B's peers are {A}.
	count, err = svc.MutualCount(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("MutualCount: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 mutual connections between A and B, got %d", count)
	}
}

func TestMutualCountSymmetric(t *testing.T) {
	edges := []models.Connection{
		{ID: 1, SenderID: 1, ReceiverID: 2, Status: models.ConnectionStatusAccepted},
		{ID: 2, SenderID: 1, ReceiverID: 3, Status: models.ConnectionStatusAccepted},
		{ID: 3, SenderID: 4, ReceiverID: 2, Status: models.ConnectionStatusAccepted},
		{ID: 4, SenderID: 4, ReceiverID: 3, Status: models.ConnectionStatusAccepted},
	}
	connRepo := noopConnRepo()
	connRepo.getAcceptedParticipantFn = func(_ context.Context, userID uint) ([]models.Connection, error) {
		return acceptedEdgesFor(edges, userID), nil
	}
	svc := NewGraphService(connRepo, noopUserRepo())

	ab, err := svc.MutualCount(context.Background(), 2, 3)
	if err != nil {
		t.Fatalf("MutualCount(2,3): %v", err)
	}
	ba, err := svc.MutualCount(context.Background(), 3, 2)
	if err != nil {
		t.Fatalf("MutualCount(3,2): %v", err)
	}
	if ab != ba {
		t.Errorf("MutualCount not symmetric: %d vs %d", ab, ba)
	}
	if ab != 2 {
		t.Errorf("expected 2 mutual connections, got %d", ab)
	}
}

func TestMutualCountSelfIsZero(t *testing.T) {
	// User 5 has two accepted peers; intersecting their peer set with itself
	// must not report those peers as "mutual".
	edges := []models.Connection{
		{ID: 1, SenderID: 5, ReceiverID: 2, Status: models.ConnectionStatusAccepted},
		{ID: 2, SenderID: 3, ReceiverID: 5, Status: models.ConnectionStatusAccepted},
	}
	connRepo := noopConnRepo()
	connRepo.getAcceptedParticipantFn = func(_ context.Context, userID uint) ([]models.Connection, error) {
		return acceptedEdgesFor(edges, userID), nil
	}
	svc := NewGraphService(connRepo, noopUserRepo())

	count, err := svc.MutualCount(context.Background(), 5, 5)
	if err != nil {
		t.Fatalf("MutualCount(5,5): %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 mutual connections with oneself, got %d", count)
	}
}

func TestPendingInvitationsFiltersAdminSenders(t *testing.T) {
	connRepo := noopConnRepo()
	connRepo.getPendingForReceiverFn = func(context.Context, uint) ([]models.Connection, error) {
		return []models.Connection{
			{ID: 1, SenderID: 2, ReceiverID: 5, Status: models.ConnectionStatusPending,
				Sender: models.User{ID: 2, FirstName: "Ana", Role: models.RoleUser}},
			{ID: 2, SenderID: 3, ReceiverID: 5, Status: models.ConnectionStatusPending,
				Sender: models.User{ID: 3, FirstName: "Ops", Role: models.RoleAdmin}},
			{ID: 3, SenderID: 4, ReceiverID: 5, Status: models.ConnectionStatusPending,
				Sender: models.User{ID: 4, FirstName: "Bea", Role: models.RoleUser}},
		}, nil
	}
	svc := NewGraphService(connRepo, noopUserRepo())

	invitations, err := svc.PendingInvitations(context.Background(), 5)
	if err != nil {
		t.Fatalf("PendingInvitations: %v", err)
	}
	if len(invitations) != 2 {
		t.Fatalf("expected 2 invitations, got %d", len(invitations))
	}
	if invitations[0].ID != 1 || invitations[1].ID != 3 {
		t.Errorf("unexpected invitation order: %d, %d", invitations[0].ID, invitations[1].ID)
	}
	for _, inv := range invitations {
		if inv.Sender.ID == 3 {
			t.Error("admin sender was not filtered out")
		}
	}
}

func TestExcludedIDsCoversAllEdgeStatesAndSelf(t *testing.T) {
	connRepo := noopConnRepo()
	connRepo.getByParticipantFn = func(context.Context, uint) ([]models.Connection, error) {
		return []models.Connection{
			{ID: 1, SenderID: 1, ReceiverID: 2, Status: models.ConnectionStatusAccepted},
			{ID: 2, SenderID: 3, ReceiverID: 1, Status: models.ConnectionStatusPending},
		}, nil
	}
	svc := NewGraphService(connRepo, noopUserRepo())

	ids, err := svc.ExcludedIDs(context.Background(), 1)
	if err != nil {
		t.Fatalf("ExcludedIDs: %v", err)
	}
	want := []uint{1, 2, 3}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %v", len(want), ids)
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("expected ids %v, got %v", want, ids)
			break
		}
	}
}

func TestSuggestPeopleAndListOthersUseDifferentExclusions(t *testing.T) {
	connRepo := noopConnRepo()
	connRepo.getByParticipantFn = func(context.Context, uint) ([]models.Connection, error) {
		return []models.Connection{
			{ID: 1, SenderID: 1, ReceiverID: 2, Status: models.ConnectionStatusPending},
		}, nil
	}

	var suggestExcluded, listExcluded []uint
	userRepo := noopUserRepo()
	calls := 0
	userRepo.listExcludingFn = func(_ context.Context, excluded []uint, role models.Role) ([]models.User, error) {
		if role != models.RoleAdmin {
			t.Errorf("expected admin role exclusion, got %q", role)
		}
		calls++
		if calls == 1 {
			suggestExcluded = excluded
		} else {
			listExcluded = excluded
		}
		return nil, nil
	}
	svc := NewGraphService(connRepo, userRepo)

	if _, err := svc.SuggestPeople(context.Background(), 1); err != nil {
		t.Fatalf("SuggestPeople: %v", err)
	}
	if _, err := svc.ListOthers(context.Background(), 1); err != nil {
		t.Fatalf("ListOthers: %v", err)
	}

	// SuggestPeople excludes everyone with an edge in flight; ListOthers
	// only excludes the requester.
	if len(suggestExcluded) != 2 {
		t.Errorf("SuggestPeople exclusion: expected [1 2], got %v", suggestExcluded)
	}
	if len(listExcluded) != 1 || listExcluded[0] != 1 {
		t.Errorf("ListOthers exclusion: expected [1], got %v", listExcluded)
	}
}

func TestSuggestPeopleUnknownUser(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}
	svc := NewGraphService(noopConnRepo(), userRepo)

	_, err := svc.SuggestPeople(context.Background(), 99)
	if err == nil {
		t.Fatal("expected error for unknown user")
	}
	if models.StatusForError(err) != 404 {
		t.Errorf("expected not-found error, got %v", err)
	}
}
