package service

import "welfare/internal/users/models"

// UserCommand carries the editable fields of a user. On update an empty
// Password keeps the current one.
type UserCommand struct {
	Username   string
	Password   string
	LastName   string
	FirstName  string
	MiddleName string
	Email      string
	Phone      string
	Role       models.Role
}
