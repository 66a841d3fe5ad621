package contracts

import (
	domainHelpdesk "FinMate/internal/domain/helpdesk"
)

type TicketCreateRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Title       string `json:"title" binding:"required,min=3,max=150"`
	Description string `json:"description" binding:"required,min=10"`
}

type TicketResponse struct {
	Ticket *domainHelpdesk.Ticket `json:"ticket"`
}

type TicketListResponse struct {
	Tickets []*domainHelpdesk.Ticket `json:"tickets"`
	Total   int64                    `json:"total"`
}
