package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/model"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/pagination"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/response"
	"gorm.io/gorm"
)

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
	}
}

func (s *MemberService) CreateMember(ctx context.Context, request *CreateMemberRequest) (*MemberResponse, error) {
	log := logger.FromContext(ctx)
	member := model.NewMember(request.Email, request.Name, request.Phone)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.memberRepository.IsExistEmail(ctx, tx, member.Email)
		if err != nil {
			log.Error("Failed to check member existence", "error", err)
			return fmt.Errorf("check member existence: %w", err)
		}
		if exists {
			log.Warn("Member email already exists", "email", logger.MaskEmail(member.Email))
			return fmt.Errorf("email duplicated %w", ErrMemberExists)
		}

		exists, err = s.memberRepository.IsExistPhone(ctx, tx, member.Phone, 0)
		if err != nil {
			return fmt.Errorf("check member phone: %w", err)
		}
		if exists {
			log.Warn("Member phone already exists", "phone", logger.MaskPhone(member.Phone))
			return fmt.Errorf("phone duplicated %w", ErrMemberExists)
		}

		if err := s.memberRepository.Create(ctx, tx, member); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("unique constraint %w", ErrMemberExists)
			}
			log.Error("회원 생성 실패", "error", err)
			return fmt.Errorf("create member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Member created", "member_id", member.ID, "email", logger.MaskEmail(member.Email))
	resp := NewMemberResponse(member)
	return &resp, nil
}

func (s *MemberService) UpdateMember(ctx context.Context, memberID uint32, request *UpdateMemberRequest) (*MemberResponse, error) {
	var member *model.Member

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.FindVerifiedMember(ctx, tx, memberID)
		if err != nil {
			return err
		}

		if request.Phone != nil && *request.Phone != found.Phone {
			exists, err := s.memberRepository.IsExistPhone(ctx, tx, *request.Phone, memberID)
			if err != nil {
				return fmt.Errorf("check member phone: %w", err)
			}
			if exists {
				return fmt.Errorf("phone duplicated %w", ErrMemberExists)
			}
			found.Phone = *request.Phone
		}
		if request.Name != nil {
			found.Name = *request.Name
		}
		if request.MemberStatus != nil {
			found.MemberStatus = *request.MemberStatus
		}

		if err := s.memberRepository.Save(ctx, tx, found); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("unique constraint %w", ErrMemberExists)
			}
			return fmt.Errorf("update member: %w", err)
		}
		member = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := NewMemberResponse(member)
	return &resp, nil
}

func (s *MemberService) FindMember(ctx context.Context, memberID uint32) (*MemberResponse, error) {
	member, err := s.FindVerifiedMember(ctx, s.db, memberID)
	if err != nil {
		return nil, err
	}

	resp := NewMemberResponse(member)
	return &resp, nil
}

func (s *MemberService) FindMembers(ctx context.Context, page pagination.Request) (*response.MultiResponse[MemberResponse], error) {
	members, total, err := s.memberRepository.FindPage(ctx, s.db, page)
	if err != nil {
		return nil, fmt.Errorf("find members: %w", err)
	}

	resp := response.Multi(NewMemberResponses(members), pagination.NewInfo(page, total))
	return &resp, nil
}

// DeleteMember marks the member as quit. The row and its stamp card are kept.
func (s *MemberService) DeleteMember(ctx context.Context, memberID uint32) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.FindVerifiedMember(ctx, tx, memberID)
		if err != nil {
			return err
		}

		member.MemberStatus = model.MemberQuit
		if err := s.memberRepository.Save(ctx, tx, member); err != nil {
			return fmt.Errorf("delete member: %w", err)
		}

		logger.FromContext(ctx).Info("Member quit", "member_id", memberID)
		return nil
	})
}

// FindVerifiedMember loads the member with its stamp, mapping a missing row to ErrMemberNotFound
func (s *MemberService) FindVerifiedMember(ctx context.Context, db *gorm.DB, memberID uint32) (*model.Member, error) {
	member, err := s.memberRepository.FindByID(ctx, db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}
	return member, nil
}
