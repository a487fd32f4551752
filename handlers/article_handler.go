package handlers

import (
	"strconv"

	"inkpress/helper"
	"inkpress/middleware"
	"inkpress/models"
	"inkpress/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	validator  services.Validator
	workflow   services.Workflow
	moderation services.ModerationService
}

func NewArticleHandler(validator services.Validator, workflow services.Workflow, moderation services.ModerationService) *ArticleHandler {
	return &ArticleHandler{
		validator:  validator,
		workflow:   workflow,
		moderation: moderation,
	}
}

// SubmitArticle validates the draft and enters it into the moderation
// queue. The article comes back in pending state.
func (h *ArticleHandler) SubmitArticle(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		helper.SendUnauthorized(c, "Principal not found")
		return
	}

	var req models.SubmitArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBadRequest(c, err.Error())
		return
	}

	validated, err := h.validator.Validate(models.ArticleDraft{
		Title:         req.Title,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
	})
	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	article, err := h.workflow.Submit(validated, principal.ID)
	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	helper.SendCreated(c, "Article submitted for review", article)
}

func (h *ArticleHandler) Upvote(c *gin.Context) {
	h.vote(c, true)
}

func (h *ArticleHandler) Downvote(c *gin.Context) {
	h.vote(c, false)
}

func (h *ArticleHandler) vote(c *gin.Context, up bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	article, err := h.workflow.Vote(uint(id), up)
	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	helper.SendSuccess(c, "Vote counted", article)
}

// GetPublishedArticles lists published articles, newest first.
func (h *ArticleHandler) GetPublishedArticles(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		helper.SendBadRequest(c, err.Error())
		return
	}

	articles, total, err := h.moderation.ListPublished(params)
	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	helper.SendSuccess(c, "Articles loaded", gin.H{
		"articles":   articles,
		"pagination": helper.GeneratePaging(params.Page, params.Limit, total),
	})
}

func (h *ArticleHandler) GetPublishedArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	article, err := h.moderation.GetPublished(uint(id))
	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	helper.SendSuccess(c, "Article loaded", article)
}
