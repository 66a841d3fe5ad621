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

func (h *Handler) CreateExpense(c *gin.Context) {
	var body contracts.ExpenseCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	others := make([]feasibility.OtherCategory, 0, len(body.Others))
	for _, other := range body.Others {
		others = append(others, feasibility.OtherCategory{
			Name:   other.Name,
			Amount: other.Amount,
		})
	}

	req := domaincontracts.ExpenseCreateRequest{
		UserId: userID,
		Fixed: feasibility.FixedAmounts{
			Food:           body.Food,
			Medicines:      body.Medicines,
			Entertainment:  body.Entertainment,
			Transportation: body.Transportation,
			Clothing:       body.Clothing,
		},
		Others: others,
	}

	ctx := c.Request.Context()
	entity, err := h.ExpenseService.CreateExpense(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ExpenseResponse{Expense: entity})
}

func (h *Handler) ListExpenses(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	expenses, total, err := h.ExpenseService.GetExpensesByUserID(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(expenses, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetDailyAverage(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	average, err := h.ExpenseService.GetDailyAverage(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DailyAverageResponse{DailyAverage: average})
}
