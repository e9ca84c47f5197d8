package member

import (
	"context"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/model"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (m *MemberRepository) IsExistEmail(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// IsExistPhone reports whether another member (excluding excludeID) already uses the phone.
// Pass 0 to check against every member.
func (m *MemberRepository) IsExistPhone(ctx context.Context, db *gorm.DB, phone string, excludeID uint32) (bool, error) {
	var count int64
	query := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("phone = ?", phone)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create inserts the member and then its stamp card. Callers pass a tx so both rows commit together.
// GORM does not write a zero-value has-one on Create, so the card is inserted here.
func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	db = db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(member).Error; err != nil {
		return err
	}

	stamp := model.Stamp{MemberID: member.ID, StampCount: member.Stamp.StampCount}
	if err := db.Create(&stamp).Error; err != nil {
		return err
	}
	member.Stamp = stamp
	return nil
}

// Save updates member columns only; the stamp is changed through AddStamp
func (m *MemberRepository) Save(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(member).Error
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Preload("Stamp").Where("id = ?", ID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindPage(ctx context.Context, db *gorm.DB, page pagination.Request) ([]model.Member, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&model.Member{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []model.Member
	err := db.WithContext(ctx).
		Preload("Stamp").
		Scopes(pagination.Paginate(page)).
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// AddStamp increments the stamp counter in SQL so concurrent orders never lose an accrual.
// Returns gorm.ErrRecordNotFound if the member has no stamp row.
func (m *MemberRepository) AddStamp(ctx context.Context, db *gorm.DB, memberID uint32, count int) error {
	result := db.WithContext(ctx).
		Model(&model.Stamp{}).
		Where("member_id = ?", memberID).
		UpdateColumn("stamp_count", gorm.Expr("stamp_count + ?", count))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
