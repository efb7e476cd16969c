package auth

import "time"

type User struct {
	ID        string
	Name      *string
	Email     string
	Image     *string
	Theme     string
	Language  *string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
