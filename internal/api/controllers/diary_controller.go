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

type DiaryController struct {
	diaryService services.DiaryService
}

func NewDiaryController(diaryService services.DiaryService) *DiaryController {
	return &DiaryController{diaryService: diaryService}
}

// Create godoc
// @Summary Create a diary entry
// @Description Logs a meal; entries attached to a child earn gamification points
// @Tags Diary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateDiaryEntryRequest true "Diary entry payload"
// @Success 201 {object} utils.APIResponse
// @Router /diary [post]
func (d *DiaryController) Create(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.CreateDiaryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := d.diaryService.CreateEntry(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, entry, "Diary entry created")
}

// List godoc
// @Summary List diary entries
// @Tags Diary
// @Produce json
// @Security BearerAuth
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Router /diary [get]
func (d *DiaryController) List(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entries, err := d.diaryService.ListEntries(c.Request.Context(), accountID, c.Query("date"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "")
}

// Delete godoc
// @Summary Delete a diary entry
// @Tags Diary
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry id"
// @Success 200 {object} utils.APIResponse
// @Router /diary/{id} [delete]
func (d *DiaryController) Delete(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid entry id")
		return
	}

	if err := d.diaryService.DeleteEntry(c.Request.Context(), accountID, entryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Diary entry deleted")
}

// SimilarMeals godoc
// @Summary Find diary entries with similar meals
// @Description Vector search over past entries by description embedding
// @Tags Diary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.SimilarMealsRequest true "Similarity query"
// @Success 200 {object} utils.APIResponse
// @Router /diary/similar [post]
func (d *DiaryController) SimilarMeals(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.SimilarMealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entries, err := d.diaryService.FindSimilarMeals(c.Request.Context(), accountID, req.Description, req.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "")
}
