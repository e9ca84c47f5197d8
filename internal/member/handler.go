package member

import (
	"net/http"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/response"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) Create(c *gin.Context) {
	var request CreateMemberRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Single(member))
}

func (h *MemberHandler) Update(c *gin.Context) {
	memberID, ok := handler.BindID(c)
	if !ok {
		return
	}

	var request UpdateMemberRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), memberID, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Single(member))
}

func (h *MemberHandler) Get(c *gin.Context) {
	memberID, ok := handler.BindID(c)
	if !ok {
		return
	}

	member, err := h.memberService.FindMember(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Single(member))
}

func (h *MemberHandler) List(c *gin.Context) {
	page, ok := handler.BindPage(c)
	if !ok {
		return
	}

	members, err := h.memberService.FindMembers(c.Request.Context(), page)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	memberID, ok := handler.BindID(c)
	if !ok {
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), memberID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
