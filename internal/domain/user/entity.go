package user

import "time"

// User mirrors the identity directory record. Accounts are provisioned by the
// identity provider; this service only reads them to resolve requesters.
type User struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Email     string    `gorm:"column:email;uniqueIndex" json:"email"`
	FullName  string    `gorm:"column:full_name" json:"full_name"`
	IsAdmin   bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }
