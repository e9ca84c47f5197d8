package model

type MemberStatus string

const (
	MemberActive MemberStatus = "MEMBER_ACTIVE"
	MemberSleep  MemberStatus = "MEMBER_SLEEP"
	MemberQuit   MemberStatus = "MEMBER_QUIT" // soft delete
)

func (s MemberStatus) Description() string {
	switch s {
	case MemberActive:
		return "활동중"
	case MemberSleep:
		return "휴면 상태"
	case MemberQuit:
		return "탈퇴 상태"
	default:
		return string(s)
	}
}

// Member represents a coffee shop customer
type Member struct {
	// Primary key - Oracle IDENTITY (auto-increment)
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	// Core fields
	Email        string       `gorm:"column:email;type:VARCHAR2(255);not null;uniqueIndex:idx_member_email"` // 이메일 (unique, 수정 불가)
	Name         string       `gorm:"column:name;type:VARCHAR2(100);not null"`                               // 이름
	Phone        string       `gorm:"column:phone;type:VARCHAR2(13);not null;uniqueIndex:idx_member_phone"`  // 핸드폰 번호 (unique)
	MemberStatus MemberStatus `gorm:"column:member_status;type:VARCHAR2(20);not null"`

	// 회원 생성 시 함께 생성되며 회원이 존재하는 동안 삭제되지 않음
	Stamp Stamp `gorm:"foreignKey:MemberID"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates an active member together with an empty stamp card
func NewMember(email, name, phone string) *Member {
	return &Member{
		Email:        email,
		Name:         name,
		Phone:        phone,
		MemberStatus: MemberActive,
		Stamp:        Stamp{StampCount: 0},
	}
}

// Stamp is the loyalty counter owned by exactly one member
type Stamp struct {
	ID         uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID   uint32 `gorm:"column:member_id;not null;uniqueIndex:idx_stamp_member"`
	StampCount int    `gorm:"column:stamp_count;not null;default:0"`

	BaseEntity
}

func (*Stamp) TableName() string {
	return "stamp"
}
