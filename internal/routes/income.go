package routes

import (
	"net/http"
	"time"

	"FinMate/internal/contracts"
	domaincontracts "FinMate/internal/domain/contracts"
	appErrors "FinMate/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SaveIncome(c *gin.Context) {
	var body contracts.IncomeSaveRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.IncomeSaveRequest{
		UserId:      userID,
		Salary:      body.Salary,
		OtherIncome: body.OtherIncome,
	}

	ctx := c.Request.Context()
	entity, err := h.IncomeService.SaveIncome(ctx, time.Now(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.IncomeResponse{Income: entity})
}

func (h *Handler) GetIncomeStatus(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	status, err := h.IncomeService.GetIncomeStatus(ctx, time.Now(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.IncomeStatusResponse{Status: status})
}

func (h *Handler) GetIncomeWarning(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	warning, err := h.IncomeService.EvaluateWarning(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.IncomeWarningResponse{Warning: warning})
}
