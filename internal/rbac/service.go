package rbac

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"divinelife/internal/models"
)

// ErrUserNotFound is returned when an operation references a user id that has
// no row. Role lookups never run before this check.
var ErrUserNotFound = errors.New("user not found")

type Service struct{ DB *gorm.DB }

// User loads a user by id, translating gorm's not-found error.
func (s Service) User(ctx context.Context, userID uint64) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UserByEmail loads a user by email, translating gorm's not-found error.
func (s Service) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// HasRole reports whether the user holds at least one of the named roles.
// Multiple names are OR semantics: a route opened to "admin" or "mc_leader"
// passes with either. An empty name set is always false.
func (s Service) HasRole(ctx context.Context, userID uint64, names ...string) (bool, error) {
	if len(names) == 0 {
		return false, nil
	}
	// JOIN role_user -> roles by name
	var count int64
	err := s.DB.WithContext(ctx).
		Table("role_user ru").
		Joins("JOIN roles r ON r.id = ru.role_id").
		Where("ru.user_id = ? AND r.name IN ?", userID, names).
		Count(&count).Error
	return count > 0, err
}

// AssignRole links the named role to the user, creating the role row on first
// use. Assigning an already-held role is a no-op; the composite primary key on
// role_user keeps the pair unique under concurrent assigns.
func (s Service) AssignRole(ctx context.Context, userID uint64, name string) error {
	if _, err := s.User(ctx, userID); err != nil {
		return err
	}

	role := models.Role{Name: name}
	if err := s.DB.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
		return err
	}

	link := models.UserRole{UserID: userID, RoleID: role.ID}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}

// RemoveRole unlinks the named role from the user. An unknown role name or an
// unassigned link is a silent no-op, not an error.
func (s Service) RemoveRole(ctx context.Context, userID uint64, name string) error {
	if _, err := s.User(ctx, userID); err != nil {
		return err
	}

	var role models.Role
	if err := s.DB.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return s.DB.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", userID, role.ID).
		Delete(&models.UserRole{}).Error
}

// ListRoles returns the names of the roles currently linked to the user, in
// assignment order.
func (s Service) ListRoles(ctx context.Context, userID uint64) ([]string, error) {
	if _, err := s.User(ctx, userID); err != nil {
		return nil, err
	}

	names := []string{}
	err := s.DB.WithContext(ctx).
		Table("role_user ru").
		Joins("JOIN roles r ON r.id = ru.role_id").
		Where("ru.user_id = ?", userID).
		Order("ru.id").
		Pluck("r.name", &names).Error
	return names, err
}

// AllRoles returns every role row.
func (s Service) AllRoles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := s.DB.WithContext(ctx).Find(&roles).Error
	return roles, err
}

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalUsers   int64            `json:"total_users"`
	TotalRoles   int64            `json:"total_roles"`
	UsersPerRole map[string]int64 `json:"users_per_role"`
}

// Dashboard aggregates user and role counts at read time.
func (s Service) Dashboard(ctx context.Context) (Stats, error) {
	stats := Stats{UsersPerRole: map[string]int64{}}

	if err := s.DB.WithContext(ctx).Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return stats, err
	}
	if err := s.DB.WithContext(ctx).Model(&models.Role{}).Count(&stats.TotalRoles).Error; err != nil {
		return stats, err
	}

	var rows []struct {
		Name  string
		Count int64
	}
	err := s.DB.WithContext(ctx).
		Table("roles r").
		Select("r.name AS name, COUNT(ru.user_id) AS count").
		Joins("LEFT JOIN role_user ru ON ru.role_id = r.id").
		Group("r.id, r.name").
		Scan(&rows).Error
	if err != nil {
		return stats, err
	}
	for _, row := range rows {
		stats.UsersPerRole[row.Name] = row.Count
	}
	return stats, nil
}
