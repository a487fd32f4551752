package models

import "time"

type SubmitArticleRequest struct {
	Title         string `json:"title" binding:"required,min=1,max=255"`
	Content       string `json:"content" binding:"required"`
	CoverImageURL string `json:"cover_image_url" binding:"omitempty,url,max=2048"`
}

type DecisionRequest struct {
	Decision Decision `json:"decision" binding:"required,oneof=approve reject"`
}

type ListParams struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

// Offset converts 1-based page/limit into a row offset.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type VoteTotals struct {
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
}

// DashboardStats is the admin dashboard aggregate for one time window.
// Pending is counted by creation time; published/rejected by decision time,
// the two are deliberately separate clocks.
type DashboardStats struct {
	Since          time.Time  `json:"since"`
	PendingCreated int64      `json:"pending_created"`
	Published      int64      `json:"published"`
	Rejected       int64      `json:"rejected"`
	Votes          VoteTotals `json:"votes"`
}
