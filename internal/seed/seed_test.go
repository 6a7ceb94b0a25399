package seed_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"divinelife/internal/models"
	"divinelife/internal/seed"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Role{}))
	return gdb
}

func TestRolesSeedIsIdempotent(t *testing.T) {
	gdb := openTestDB(t)

	roles, err := seed.Roles(gdb)
	require.NoError(t, err)
	require.Len(t, roles, 3)

	_, err = seed.Roles(gdb)
	require.NoError(t, err)

	var count int64
	require.NoError(t, gdb.Model(&models.Role{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)

	var admin models.Role
	require.NoError(t, gdb.Where("name = ?", "admin").First(&admin).Error)
	assert.Equal(t, "Administrator", admin.Label)
}
