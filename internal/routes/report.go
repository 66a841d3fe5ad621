package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetMonthlyReports(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	reports, err := h.ReportService.GetMonthlyReports(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// GetReportDocument entrega o HTML pronto para impressao; a conversao para
// PDF fica no cliente.
func (h *Handler) GetReportDocument(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	html, err := h.ReportService.RenderHTML(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
