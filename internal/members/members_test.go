package members_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"divinelife/internal/members"
	"divinelife/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.MCMember{}))
	return gdb
}

func TestAddAppliesDefaults(t *testing.T) {
	gdb := openTestDB(t)

	id, err := members.Add(context.Background(), gdb, members.Record{
		Name:     "John Doe",
		MCName:   "North MC",
		JoinDate: "2026-08-28T10:15:00Z",
	})
	require.NoError(t, err)
	require.Positive(t, id)

	var row models.MCMember
	require.NoError(t, gdb.First(&row, id).Error)
	assert.Equal(t, "John Doe", row.Name)
	assert.Equal(t, "North MC", row.MCName)
	assert.Equal(t, "2026-08-28", row.JoinDate, "ISO datetimes keep only the date part")
	assert.Equal(t, "1", row.IsActive)
	assert.Equal(t, "Other", row.Gender)
	assert.Equal(t, "0", row.DLMMember)
}

func TestAddRequiresNameAndMCName(t *testing.T) {
	gdb := openTestDB(t)

	_, err := members.Add(context.Background(), gdb, members.Record{Name: "John"})
	assert.ErrorIs(t, err, members.ErrMissingFields)

	_, err = members.Add(context.Background(), gdb, members.Record{MCName: "North MC"})
	assert.ErrorIs(t, err, members.ErrMissingFields)

	var count int64
	require.NoError(t, gdb.Model(&models.MCMember{}).Count(&count).Error)
	assert.Zero(t, count)
}
