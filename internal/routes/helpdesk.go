package routes

import (
	"net/http"

	"FinMate/internal/contracts"
	domaincontracts "FinMate/internal/domain/contracts"
	appErrors "FinMate/internal/errors"
	"FinMate/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateTicket(c *gin.Context) {
	var body contracts.TicketCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := domaincontracts.TicketCreateRequest{
		UserId:      userID,
		Name:        body.Name,
		Email:       body.Email,
		Title:       body.Title,
		Description: body.Description,
	}

	ctx := c.Request.Context()
	ticket, err := h.HelpdeskService.CreateTicket(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TicketResponse{Ticket: ticket})
}

func (h *Handler) ListTickets(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	tickets, total, err := h.HelpdeskService.GetTicketsByUserID(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(tickets, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) CloseTicket(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		h.respondError(c, appErrors.NewValidationError("id", "é obrigatório"))
		return
	}

	ticketID, err := pkg.ParseULID(id)
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
	if err := h.HelpdeskService.CloseTicket(ctx, ticketID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Chamado encerrado com sucesso"})
}
