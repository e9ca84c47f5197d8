package member

import "github.com/changhyeonkim/coffee-order/go-api-server/internal/model"

type CreateMemberRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Phone string `json:"phone" binding:"required,phone"`
}

// UpdateMemberRequest: 이메일은 수정 불가, nil 필드는 기존 값 유지
type UpdateMemberRequest struct {
	Name         *string             `json:"name" binding:"omitempty,min=1,max=100"`
	Phone        *string             `json:"phone" binding:"omitempty,phone"`
	MemberStatus *model.MemberStatus `json:"memberStatus" binding:"omitempty,oneof=MEMBER_ACTIVE MEMBER_SLEEP MEMBER_QUIT"`
}

type MemberResponse struct {
	MemberID          uint32             `json:"memberId"`
	Email             string             `json:"email"`
	Name              string             `json:"name"`
	Phone             string             `json:"phone"`
	MemberStatus      model.MemberStatus `json:"memberStatus"`
	StatusDescription string             `json:"memberStatusDescription"`
	StampCount        int                `json:"stampCount"`
}

func NewMemberResponse(m *model.Member) MemberResponse {
	return MemberResponse{
		MemberID:          m.ID,
		Email:             m.Email,
		Name:              m.Name,
		Phone:             m.Phone,
		MemberStatus:      m.MemberStatus,
		StatusDescription: m.MemberStatus.Description(),
		StampCount:        m.Stamp.StampCount,
	}
}

func NewMemberResponses(members []model.Member) []MemberResponse {
	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, NewMemberResponse(&members[i]))
	}
	return responses
}
