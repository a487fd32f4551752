package handlers

import (
	"errors"
	"strconv"
	"time"

	"inkpress/helper"
	"inkpress/middleware"
	"inkpress/models"
	"inkpress/services"

	"github.com/gin-gonic/gin"
)

var errInvalidPeriod = errors.New("period must be one of this_month, last_month, all")

type AdminHandler struct {
	workflow   services.Workflow
	moderation services.ModerationService
}

func NewAdminHandler(workflow services.Workflow, moderation services.ModerationService) *AdminHandler {
	return &AdminHandler{
		workflow:   workflow,
		moderation: moderation,
	}
}

// GetPendingArticles pages through the moderation queue, newest first.
func (h *AdminHandler) GetPendingArticles(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		helper.SendBadRequest(c, err.Error())
		return
	}

	articles, total, err := h.moderation.ListPending(params)
	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	helper.SendSuccess(c, "Pending articles loaded", gin.H{
		"articles":   articles,
		"pagination": helper.GeneratePaging(params.Page, params.Limit, total),
	})
}

// DecideArticle approves or rejects a pending article. Re-deciding an
// already-decided article answers 409, retries must not flip the outcome.
func (h *AdminHandler) DecideArticle(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		helper.SendUnauthorized(c, "Principal not found")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	var req models.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBadRequest(c, err.Error())
		return
	}

	article, err := h.workflow.Decide(uint(id), principal, req.Decision)
	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	helper.SendSuccess(c, "Decision recorded", article)
}

// GetStats serves the dashboard aggregate for a period selected the same
// way the dashboard buttons do: this_month, last_month or all.
func (h *AdminHandler) GetStats(c *gin.Context) {
	since, err := periodStart(c.DefaultQuery("period", "this_month"), time.Now())
	if err != nil {
		helper.SendBadRequest(c, err.Error())
		return
	}

	stats, err := h.moderation.Stats(since)
	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	helper.SendSuccess(c, "Stats loaded", stats)
}

func periodStart(period string, now time.Time) (time.Time, error) {
	switch period {
	case "this_month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	case "last_month":
		return time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location()), nil
	case "all":
		return time.Time{}, nil
	}
	return time.Time{}, errInvalidPeriod
}
