package routes

import (
	"FinMate/internal/domain/auth"
	"FinMate/internal/domain/dashboard"
	"FinMate/internal/domain/expense"
	"FinMate/internal/domain/goal"
	"FinMate/internal/domain/helpdesk"
	"FinMate/internal/domain/income"
	"FinMate/internal/domain/report"
	"FinMate/internal/domain/user"
	appErrors "FinMate/internal/errors"
	"FinMate/internal/logger"
	"FinMate/internal/middleware"
	"FinMate/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	UserService      *user.Service
	AuthService      *auth.Service
	JwtService       *middleware.JwtService
	GoalService      *goal.Service
	ExpenseService   *expense.Service
	IncomeService    *income.Service
	ReportService    *report.Service
	HelpdeskService  *helpdesk.Service
	DashboardService *dashboard.Service
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (ulid.ULID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(userIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
