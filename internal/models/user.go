package models

import (
	"strings"

	"gorm.io/gorm"
)

// Role names with defined behavior. Membership of RoleOwner marks a
// user as administrator, membership of RoleDemo marks the shared demo
// user. All other role names are opaque to the backend.
const (
	RoleOwner = "owner"
	RoleDemo  = "demo"
)

// User represents a registered user.
type User struct {
	Model
	Email       string `json:"email" gorm:"uniqueIndex" example:"jessica@example.com"` // Email address the user logs in with
	Blocked     bool   `json:"blocked" example:"false"`                                // Is the user blocked from logging in?
	UserGroupID uint64 `json:"user_group_id" example:"1"`                              // ID of the user group whose ledger the user works on
	Roles       []Role `json:"-" gorm:"many2many:user_roles"`
}

// Role is a named set of capabilities that users can be members of.
type Role struct {
	Model
	Name string `json:"name" gorm:"uniqueIndex" example:"owner"`
}

// BeforeSave trims whitespace from all strings.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.TrimSpace(u.Email)

	return nil
}

func (r *Role) BeforeSave(_ *gorm.DB) error {
	r.Name = strings.TrimSpace(r.Name)

	return nil
}

// RoleNames returns the names of all roles the user is a member of.
//
// The returned set is attached to the shared snapshot at construction
// time so that role checks on the client are plain membership tests.
func (u User) RoleNames(db *gorm.DB) ([]string, error) {
	var roles []Role
	err := db.Model(&u).Association("Roles").Find(&roles)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Name)
	}

	return names, nil
}

// AddRole makes the user a member of the role, creating the role if it
// does not exist yet.
func (u *User) AddRole(db *gorm.DB, name string) error {
	var role Role
	err := db.Where(&Role{Name: name}).FirstOrCreate(&role).Error
	if err != nil {
		return err
	}

	return db.Model(u).Association("Roles").Append(&role)
}
