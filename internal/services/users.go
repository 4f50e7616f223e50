package services

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/cloudlearn-droid/CloudVault/internal/models"
	"github.com/google/uuid"
)

// CreateUser inserts a new user row. The email must not be registered yet.
func CreateUser(email, passwordHash string) (models.User, error) {
	if _, exists := GetUserByEmail(email); exists {
		return models.User{}, ErrInvalidInput
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	_, err := postgresInstance.db.Exec(
		`INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		log.Printf("Error creating user: %v", err)
		return models.User{}, err
	}

	return user, nil
}

// GetUserByEmail looks a user up by email.
func GetUserByEmail(email string) (models.User, bool) {
	var user models.User
	err := postgresInstance.db.QueryRow(
		`SELECT id, email, password_hash, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("Error getting user by email: %v", err)
		}
		return models.User{}, false
	}
	return user, true
}

// GetUserByID looks a user up by id.
func GetUserByID(userID string) (models.User, bool) {
	var user models.User
	err := postgresInstance.db.QueryRow(
		`SELECT id, email, password_hash, created_at FROM users WHERE id = $1`,
		userID,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("Error getting user by id: %v", err)
		}
		return models.User{}, false
	}
	return user, true
}
