// Package psswd хеширование паролей учетных записей.
package psswd

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong bcrypt учитывает только первые 72 байта пароля.
var ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

const maxPasswordBytes = 72

// Bcrypt хешер паролей. Нулевое значение использует bcrypt.DefaultCost.
type Bcrypt struct {
	Cost int
}

func New(cost int) Bcrypt {
	return Bcrypt{Cost: cost}
}

func (b Bcrypt) HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(hash), nil
}

func (b Bcrypt) ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
