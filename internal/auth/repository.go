package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken = errors.New("email already in use")
	ErrNotFound   = errors.New("not found")
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is a server-side login session addressed by a random token.
type Session struct {
	Token     string `gorm:"primaryKey"`
	UserID    string `gorm:"index;not null"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (Session) TableName() string { return "auth_sessions" }

type Repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) *Repository { return &Repository{db: db} }

func (r *Repository) CreateUser(email, passwordHash, displayName string) (User, error) {
	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
	}
	if err := r.db.Create(&u).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return u, nil
}

func (r *Repository) GetUserByEmail(email string) (User, error) {
	var u User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}

// NewToken returns a cryptographically secure random token (hex-64)
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (r *Repository) CreateSession(userID string, ttl time.Duration) (Session, error) {
	tok, err := NewToken()
	if err != nil {
		return Session{}, err
	}
	s := Session{
		Token:     tok,
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl).UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.Create(&s).Error; err != nil {
		return Session{}, err
	}
	return s, nil
}

func (r *Repository) DeleteSession(token string) error {
	return r.db.Delete(&Session{}, "token = ?", token).Error
}

func (r *Repository) GetUserBySession(token string) (User, error) {
	// Clean up expired while checking
	_ = r.db.Delete(&Session{}, "expires_at < ?", time.Now().UTC()).Error

	var s Session
	err := r.db.First(&s, "token = ? AND expires_at > ?", token, time.Now().UTC()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	var u User
	err = r.db.First(&u, "id = ?", s.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}
