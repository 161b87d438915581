// Package model defines domain entities for the application.
package model

import "time"

// User is a row of the users table.
// UserID and CreatedAt are always generated by the database.
type User struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
