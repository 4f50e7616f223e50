package services

import (
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/cloudlearn-droid/CloudVault/internal/models"
)

var jwtSecret []byte

const sessionTokenTTL = 24 * time.Hour

// InitializeIdentity sets the HS256 signing secret for session tokens.
func InitializeIdentity(secret string) {
	jwtSecret = []byte(secret)
}

// RegisterUser creates an account with a bcrypt-hashed password.
func RegisterUser(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return models.User{}, err
	}

	return CreateUser(email, string(hash))
}

// AuthenticateUser verifies an email/password pair.
func AuthenticateUser(email, password string) (models.User, error) {
	user, exists := GetUserByEmail(email)
	if !exists {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// IssueSessionToken mints a signed bearer token for the user.
func IssueSessionToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(sessionTokenTTL).Unix(),
	})
	return token.SignedString(jwtSecret)
}

// ResolveSessionToken validates a bearer token and returns the user id.
func ResolveSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidCredentials
	}
	return sub, nil
}
