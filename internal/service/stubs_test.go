package service

import (
	"context"

	"linkhive/internal/models"
)

type connRepoStub struct {
	createFn                  func(context.Context, *models.Connection) error
	getByIDFn                 func(context.Context, uint) (*models.Connection, error)
	getBetweenUsersFn         func(context.Context, uint, uint) (*models.Connection, error)
	getByParticipantFn        func(context.Context, uint) ([]models.Connection, error)
	getAcceptedParticipantFn  func(context.Context, uint) ([]models.Connection, error)
	getPendingForReceiverFn   func(context.Context, uint) ([]models.Connection, error)
	updateStatusFn            func(context.Context, uint, models.ConnectionStatus) error
	deleteFn                  func(context.Context, uint) error
}

func (s *connRepoStub) Create(ctx context.Context, conn *models.Connection) error {
	return s.createFn(ctx, conn)
}
func (s *connRepoStub) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	return s.getByIDFn(ctx, id)
}
func (s *connRepoStub) GetBetweenUsers(ctx context.Context, userA, userB uint) (*models.Connection, error) {
	return s.getBetweenUsersFn(ctx, userA, userB)
}
func (s *connRepoStub) GetByParticipant(ctx context.Context, userID uint) ([]models.Connection, error) {
	return s.getByParticipantFn(ctx, userID)
}
func (s *connRepoStub) GetAcceptedByParticipant(ctx context.Context, userID uint) ([]models.Connection, error) {
	return s.getAcceptedParticipantFn(ctx, userID)
}
func (s *connRepoStub) GetPendingForReceiver(ctx context.Context, receiverID uint) ([]models.Connection, error) {
	return s.getPendingForReceiverFn(ctx, receiverID)
}
func (s *connRepoStub) UpdateStatus(ctx context.Context, id uint, status models.ConnectionStatus) error {
	return s.updateStatusFn(ctx, id, status)
}
func (s *connRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopConnRepo() *connRepoStub {
	return &connRepoStub{
		createFn:                 func(context.Context, *models.Connection) error { return nil },
		getByIDFn:                func(context.Context, uint) (*models.Connection, error) { return &models.Connection{}, nil },
		getBetweenUsersFn:        func(context.Context, uint, uint) (*models.Connection, error) { return nil, nil },
		getByParticipantFn:       func(context.Context, uint) ([]models.Connection, error) { return nil, nil },
		getAcceptedParticipantFn: func(context.Context, uint) ([]models.Connection, error) { return nil, nil },
		getPendingForReceiverFn:  func(context.Context, uint) ([]models.Connection, error) { return nil, nil },
		updateStatusFn:           func(context.Context, uint, models.ConnectionStatus) error { return nil },
		deleteFn:                 func(context.Context, uint) error { return nil },
	}
}

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByRoleFn     func(context.Context, models.Role) (*models.User, error)
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, int, int) ([]models.User, error)
	listExcludingFn func(context.Context, []uint, models.Role) ([]models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByRole(ctx context.Context, role models.Role) (*models.User, error) {
	return s.getByRoleFn(ctx, role)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) ListExcluding(ctx context.Context, excluded []uint, excludedRole models.Role) ([]models.User, error) {
	return s.listExcludingFn(ctx, excluded, excludedRole)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(context.Context, *models.User) error { return nil },
		getByIDFn:       func(ctx context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByRoleFn:     func(context.Context, models.Role) (*models.User, error) { return nil, nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		listExcludingFn: func(context.Context, []uint, models.Role) ([]models.User, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn               func(context.Context, *models.Post) error
	getByIDFn              func(context.Context, uint) (*models.Post, error)
	deleteFn               func(context.Context, uint) error
	getPublishedByAuthorFn func(context.Context, uint, int, int) ([]models.Post, error)
	getDraftsByAuthorFn    func(context.Context, uint) ([]models.Post, error)
	getFeedFn              func(context.Context, []uint, int, int) ([]models.Post, error)
	publishFn              func(context.Context, uint) error
	likeFn                 func(context.Context, uint, uint) error
	unlikeFn               func(context.Context, uint, uint) error
	countLikesFn           func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) GetPublishedByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]models.Post, error) {
	return s.getPublishedByAuthorFn(ctx, authorID, limit, offset)
}
func (s *postRepoStub) GetDraftsByAuthor(ctx context.Context, authorID uint) ([]models.Post, error) {
	return s.getDraftsByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) GetFeed(ctx context.Context, authorIDs []uint, limit, offset int) ([]models.Post, error) {
	return s.getFeedFn(ctx, authorIDs, limit, offset)
}
func (s *postRepoStub) Publish(ctx context.Context, id uint) error {
	return s.publishFn(ctx, id)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) CountLikes(ctx context.Context, postID uint) (int64, error) {
	return s.countLikesFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:               func(context.Context, *models.Post) error { return nil },
		getByIDFn:              func(ctx context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		deleteFn:               func(context.Context, uint) error { return nil },
		getPublishedByAuthorFn: func(context.Context, uint, int, int) ([]models.Post, error) { return nil, nil },
		getDraftsByAuthorFn:    func(context.Context, uint) ([]models.Post, error) { return nil, nil },
		getFeedFn:              func(context.Context, []uint, int, int) ([]models.Post, error) { return nil, nil },
		publishFn:              func(context.Context, uint) error { return nil },
		likeFn:                 func(context.Context, uint, uint) error { return nil },
		unlikeFn:               func(context.Context, uint, uint) error { return nil },
		countLikesFn:           func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

// edgesFor filters a shared edge list the way the store would for
// GetAcceptedByParticipant.
func acceptedEdgesFor(edges []models.Connection, userID uint) []models.Connection {
	var out []models.Connection
	for _, e := range edges {
		if e.Status != models.ConnectionStatusAccepted {
			continue
		}
		if e.SenderID == userID || e.ReceiverID == userID {
			out = append(out, e)
		}
	}
	return out
}
