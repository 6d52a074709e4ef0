package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aisyah456/liblary-web/internal/app/services"
	"github.com/Aisyah456/liblary-web/internal/middleware"
)

// MemberController serves the read-only member directory
type MemberController struct {
	memberService services.MemberService
}

// NewMemberController creates a new MemberController
func NewMemberController(memberService services.MemberService) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

// GetAllMembers retrieves the member directory
// @Summary Get all members
// @Description Retrieves id, full name and member type for every registered member
// @Tags members
// @Produce json
// @Success 200 {array} dto.MemberSummary "Members retrieved successfully"
// @Router /anggota [get]
func (c *MemberController) GetAllMembers(ctx *gin.Context) {
	members, err := c.memberService.GetAllMembers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, members)
}
