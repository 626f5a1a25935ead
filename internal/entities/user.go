package entities

import (
	"errors"
	"time"
)

type User struct {
	ID        int64
	Username  string
	Email     string
	Role      string
	CreatedAt time.Time
}

var ErrUserNotFound = errors.New("user not found")
