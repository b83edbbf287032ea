// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"bloglist/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext password assigned to every seeded user.
const DefaultPassword = "pass#12345"

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	BlogsPerUser int
	ShouldClean  bool
}

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db}
}

// ClearAll removes all blogs and users, including soft-deleted rows.
func (s *Seeder) ClearAll() error {
	if err := s.db.Unscoped().Where("1 = 1").Delete(&models.Blog{}).Error; err != nil {
		return fmt.Errorf("failed to clear blogs: %w", err)
	}
	if err := s.db.Unscoped().Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	return nil
}

// Seed populates the database with test users and their blogs.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Seeding %d users with up to %d blogs each...", opts.NumUsers, opts.BlogsPerUser)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users, err := s.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	blogs, err := s.CreateBlogs(users, opts.BlogsPerUser)
	if err != nil {
		return fmt.Errorf("failed to create blogs: %w", err)
	}
	log.Printf("%d blogs created", len(blogs))

	return nil
}

// CreateUsers persists n generated users. Every user gets the same known
// password so seeded accounts can log in during manual testing.
func (s *Seeder) CreateUsers(n int) ([]*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Name:     gofakeit.Name(),
			Password: string(hash),
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CreateBlogs persists a random number of blogs per user, spread over the
// past 90 days so listings look lived-in.
func (s *Seeder) CreateBlogs(users []*models.User, perUser int) ([]*models.Blog, error) {
	if perUser <= 0 {
		perUser = 5
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	var blogs []*models.Blog
	for _, user := range users {
		count := 1 + r.Intn(perUser)
		for i := 0; i < count; i++ {
			blog := s.BuildBlog(user, r)
			blogs = append(blogs, blog)
		}
	}
	if len(blogs) == 0 {
		return blogs, nil
	}
	if err := s.db.Create(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// BuildBlog constructs a blog struct for the given owner without persisting it.
func (s *Seeder) BuildBlog(user *models.User, r *rand.Rand) *models.Blog {
	blog := &models.Blog{
		Title:  gofakeit.Sentence(5),
		URL:    gofakeit.URL(),
		Likes:  r.Intn(250),
		UserID: user.ID,
	}

	daysBack := r.Intn(90)
	hoursBack := r.Intn(24)
	blog.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
	return blog
}
