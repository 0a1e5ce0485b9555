package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nutrikids/internal/models/request_models"
	"nutrikids/internal/services"
	"nutrikids/pkg/middleware"
	"nutrikids/pkg/utils"
)

type ChildrenController struct {
	childService services.ChildService
	gamification services.GamificationService
}

func NewChildrenController(childService services.ChildService, gamification services.GamificationService) *ChildrenController {
	return &ChildrenController{
		childService: childService,
		gamification: gamification,
	}
}

// Create godoc
// @Summary Create a child profile
// @Tags Children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateChildRequest true "Child profile payload"
// @Success 201 {object} utils.APIResponse
// @Router /children [post]
func (cc *ChildrenController) Create(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.CreateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	child, err := cc.childService.CreateChild(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, child, "Child profile created")
}

// List godoc
// @Summary List the authenticated account's children
// @Tags Children
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /children [get]
func (cc *ChildrenController) List(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	children, err := cc.childService.ListChildren(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, children, "")
}

// Get godoc
// @Summary Get a single child profile
// @Tags Children
// @Produce json
// @Security BearerAuth
// @Param id path string true "Child id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /children/{id} [get]
func (cc *ChildrenController) Get(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	childID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid child id")
		return
	}

	child, err := cc.childService.GetChild(c.Request.Context(), accountID, childID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, child, "")
}

// Update godoc
// @Summary Update a child profile
// @Description Partial update; omitted fields keep their value
// @Tags Children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Child id"
// @Param request body request_models.UpdateChildRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /children/{id} [put]
func (cc *ChildrenController) Update(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	childID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid child id")
		return
	}

	var req request_models.UpdateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	child, err := cc.childService.UpdateChild(c.Request.Context(), accountID, childID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, child, "Child profile updated")
}

// Delete godoc
// @Summary Delete a child profile
// @Tags Children
// @Produce json
// @Security BearerAuth
// @Param id path string true "Child id"
// @Success 200 {object} utils.APIResponse
// @Router /children/{id} [delete]
func (cc *ChildrenController) Delete(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	childID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid child id")
		return
	}

	if err := cc.childService.DeleteChild(c.Request.Context(), accountID, childID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Child profile deleted")
}

// AwardPoints godoc
// @Summary Award gamification points to a child
// @Description Adds points and reports any level-up and newly earned badges
// @Tags Children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Child id"
// @Param request body request_models.AwardPointsRequest true "Points payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /children/{id}/points [post]
func (cc *ChildrenController) AwardPoints(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	childID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid child id")
		return
	}

	var req request_models.AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Ownership check before touching the counters.
	if _, err := cc.childService.GetChild(c.Request.Context(), accountID, childID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := cc.gamification.AwardPoints(c.Request.Context(), childID, req.Points)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Points awarded")
}
