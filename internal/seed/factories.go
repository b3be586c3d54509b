// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"linkhive/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{db: db, rnd: rand.New(rand.NewSource(seed))}
}

// CreateUser persists a user with fake profile data. The password for every
// seeded user is "seedpass1".
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("seedpass1"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		Email:        gofakeit.Email(),
		Password:     string(hashed),
		Headline:     gofakeit.JobTitle(),
		Education:    gofakeit.Company(),
		Bio:          gofakeit.Sentence(12),
		ProfileImage: fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
		Role:         models.RoleUser,
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUsers persists n fake users.
func (f *Factory) CreateUsers(n int) ([]models.User, error) {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

// CreatePost persists a post by the user with a realistic created_at spread
// over the last maxDays days.
func (f *Factory) CreatePost(user *models.User, maxDays int, overrides ...func(*models.Post)) (*models.Post, error) {
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rnd.Intn(maxDays)
	hoursBack := f.rnd.Intn(24)
	minsBack := f.rnd.Intn(60)

	post := &models.Post{
		AuthorID:  user.ID,
		Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
		CreatedAt: time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute),
	}
	if f.rnd.Intn(3) == 0 {
		post.Image = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
	}
	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// ConnectUsers persists a connection edge between two users.
func (f *Factory) ConnectUsers(sender, receiver *models.User, status models.ConnectionStatus) (*models.Connection, error) {
	conn := &models.Connection{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Status:     status,
	}
	if err := f.db.Create(conn).Error; err != nil {
		return nil, err
	}
	return conn, nil
}
