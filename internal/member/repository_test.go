package member_test

import (
	"context"
	"testing"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/member"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/model"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreate_PersistsStampCard(t *testing.T) {
	// Given
	db := testutil.SetupTestDB(t)
	repo := member.NewMemberRepository()
	ctx := context.Background()

	m := model.NewMember("card@example.com", "카드", "010-4444-5555")

	// When
	require.NoError(t, repo.Create(ctx, db, m))

	// Then: the stamp row exists on its own, read back without the in-memory copy
	var stamp model.Stamp
	require.NoError(t, db.Where("member_id = ?", m.ID).First(&stamp).Error)
	assert.Equal(t, 0, stamp.StampCount)
	assert.NotZero(t, stamp.ID)
	assert.Equal(t, stamp.ID, m.Stamp.ID)
	assert.Equal(t, int64(1), testutil.CountRows(t, db, &model.Stamp{}))
}

func TestAddStamp_Accumulates(t *testing.T) {
	// Given
	db := testutil.SetupTestDB(t)
	repo := member.NewMemberRepository()
	ctx := context.Background()

	m := model.NewMember("stamp@example.com", "스탬프", "010-5555-6666")
	require.NoError(t, repo.Create(ctx, db, m))

	// When
	require.NoError(t, repo.AddStamp(ctx, db, m.ID, 3))
	require.NoError(t, repo.AddStamp(ctx, db, m.ID, 2))

	// Then
	found, err := repo.FindByID(ctx, db, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Stamp.StampCount)
}

func TestAddStamp_UnknownMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := member.NewMemberRepository()

	err := repo.AddStamp(context.Background(), db, 404, 1)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSave_DoesNotTouchStamp(t *testing.T) {
	// Given: stamp already accrued
	db := testutil.SetupTestDB(t)
	repo := member.NewMemberRepository()
	ctx := context.Background()

	m := model.NewMember("save@example.com", "저장", "010-7777-8888")
	require.NoError(t, repo.Create(ctx, db, m))
	require.NoError(t, repo.AddStamp(ctx, db, m.ID, 4))

	// When: saving the stale in-memory copy (stamp count 0)
	m.Name = "저장2"
	require.NoError(t, repo.Save(ctx, db, m))

	// Then
	found, err := repo.FindByID(ctx, db, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "저장2", found.Name)
	assert.Equal(t, 4, found.Stamp.StampCount)
}
