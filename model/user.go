// Package model holds records that are stored in lists by the demos and
// tests.
package model

import (
	"cmp"
	"fmt"
)

// User is a person with a numeric identifier.
type User struct {
	Name  string `json:"name"`
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// NewUser creates a User.
func NewUser(name string, id int, email string) User {
	return User{Name: name, ID: id, Email: email}
}

// CompareByID orders users by ascending ID.
func CompareByID(a, b User) int {
	return cmp.Compare(a.ID, b.ID)
}

// CompareByName orders users by name, then by ID.
func CompareByName(a, b User) int {
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}

	return CompareByID(a, b)
}

func (u User) String() string {
	return fmt.Sprintf("%s#%d <%s>", u.Name, u.ID, u.Email)
}

// SampleUsers returns the four users the demos start from, in the order
// {0, 3, 1, 2} by ID.
func SampleUsers() []User {
	return []User{
		NewUser("Mike", 0, "mike@mail.ru"),
		NewUser("Alex", 3, "alex@mail.ru"),
		NewUser("Ashlie", 1, "ashlie@mail.ru"),
		NewUser("Nikola", 2, "nikola@mail.ru"),
	}
}
