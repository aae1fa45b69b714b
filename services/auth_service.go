package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"what-to-watch-backend/models"
)

var (
	// ErrEmailTaken maps to a 409 at the endpoint layer.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrInvalidCredentials covers both a wrong password and an unknown
	// email, so a login response never discloses whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserStore is the user-store surface registration and login need.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type AuthService struct {
	userRepo  UserStore
	jwtSecret string
}

func NewAuthService(userRepo UserStore, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Register creates a user with a bcrypt password hash and an empty
// watchlist. The email is case-normalized; a duplicate reports ErrEmailTaken
// whether it is caught by the existence check or by the unique index.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (string, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}
	if existing != nil {
		return "", "", ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}

	now := time.Now().UTC()
	user := &models.User{
		Email:     email,
		Password:  string(hashedPassword),
		Name:      req.Name,
		Watchlist: []models.WatchlistEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", "", ErrEmailTaken
		}
		return "", "", err
	}

	token, err := s.issueToken(id.Hex())
	if err != nil {
		return "", "", err
	}
	return id.Hex(), token, nil
}

// Authenticate verifies the credentials and returns the user with a signed
// session token.
func (s *AuthService) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Profile loads the profile for an authenticated user id.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	user, err := s.userRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	profile := user.Profile()
	return &profile, nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	})
	return token.SignedString([]byte(s.jwtSecret))
}
