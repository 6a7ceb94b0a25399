package models

// UserRole represents the join between users and roles. The unique composite
// index on (user_id, role_id) is what makes assignment idempotent at the
// database level; the surrogate id records assignment order so role listings
// can preserve it.
type UserRole struct {
	ID     uint64 `gorm:"primaryKey"`
	UserID uint64 `gorm:"uniqueIndex:idx_role_user_pair;not null"`
	RoleID uint64 `gorm:"uniqueIndex:idx_role_user_pair;not null"`
}

func (UserRole) TableName() string { return "role_user" }
