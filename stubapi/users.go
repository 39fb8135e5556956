package stubapi

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Trading-auto-pilot/astra-web-sub001/identity"
)

// User is a development account served by the stub backend.
type User struct {
	Email        string
	Name         string
	PasswordHash string
	Navigation   []identity.NavigationEntry
}

// HashPassword hashes a plaintext password for seeding users.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// SeedUser builds a User with a freshly hashed password.
func SeedUser(email, name, password string, nav []identity.NavigationEntry) (User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return User{}, err
	}
	return User{Email: email, Name: name, PasswordHash: hash, Navigation: nav}, nil
}
