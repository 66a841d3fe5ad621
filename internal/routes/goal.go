package routes

import (
	"net/http"

	"FinMate/internal/contracts"
	domaincontracts "FinMate/internal/domain/contracts"
	"FinMate/internal/domain/feasibility"
	appErrors "FinMate/internal/errors"
	"FinMate/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SaveGoalPlan(c *gin.Context) {
	var body contracts.GoalPlanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.GoalPlanRequest{
		UserId:        userID,
		Category:      feasibility.Category(body.Category),
		DurationYears: body.DurationYears,
		AnnualIncome:  body.AnnualIncome,
	}

	ctx := c.Request.Context()
	plan, err := h.GoalService.SavePlan(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.GoalPlanResponse{Plan: plan})
}

func (h *Handler) GetGoalPlan(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	plan, err := h.GoalService.GetPlanByUser(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalPlanResponse{Plan: plan})
}

// PreviewGoalPlan devolve a dica de poupanca anual sem persistir nada.
func (h *Handler) PreviewGoalPlan(c *gin.Context) {
	category := c.Query("category")
	duration := c.Query("duration_years")
	if category == "" || duration == "" {
		h.respondError(c, appErrors.NewValidationError("category", "category e duration_years são obrigatórios"))
		return
	}

	required, err := h.GoalService.PreviewRequiredPerYear(feasibility.Category(category), duration)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalPreviewResponse{
		Category:        category,
		RequiredPerYear: required,
	})
}

func (h *Handler) TrackGoal(c *gin.Context) {
	var body contracts.GoalTrackRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.GoalTrackRequest{
		UserId:         userID,
		Name:           body.Name,
		TargetAmount:   body.TargetAmount,
		DurationMonths: body.DurationMonths,
		Salary:         body.Salary,
		MonthlySavings: body.MonthlySavings,
	}

	ctx := c.Request.Context()
	entity, err := h.GoalService.TrackGoal(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.GoalResponse{Goal: entity})
}

func (h *Handler) ListGoals(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	goals, total, err := h.GoalService.GetGoalsByUserID(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(goals, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetGoal(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		h.respondError(c, appErrors.NewValidationError("id", "é obrigatório"))
		return
	}

	goalID, err := pkg.ParseULID(id)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	goalEntity, err := h.GoalService.GetGoalByID(ctx, goalID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalResponse{Goal: goalEntity})
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		h.respondError(c, appErrors.NewValidationError("id", "é obrigatório"))
		return
	}

	goalID, err := pkg.ParseULID(id)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.GoalService.DeleteGoal(ctx, goalID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Meta excluída com sucesso"})
}
