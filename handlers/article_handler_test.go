package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"

	"inkpress/middleware"
	"inkpress/models"
	"inkpress/repositories"
	"inkpress/services"
)

const testSecret = "test-secret"

type HandlerTestSuite struct {
	suite.Suite
	repo   repositories.ArticleRepository
	router *gin.Engine
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.repo = repositories.NewInMemArticleRepository()

	validator := services.NewValidator(5)
	workflow := services.NewWorkflow(suite.repo, nil, nil)
	moderation := services.NewModerationService(suite.repo)

	articleHandler := NewArticleHandler(validator, workflow, moderation)
	adminHandler := NewAdminHandler(workflow, moderation)

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware([]byte(testSecret)))
		{
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.SubmitArticle)
				articles.POST("/:id/upvote", articleHandler.Upvote)
				articles.POST("/:id/downvote", articleHandler.Downvote)
			}

			admin := protected.Group("/admin")
			admin.Use(middleware.RequireModerator())
			{
				admin.GET("/articles/pending", adminHandler.GetPendingArticles)
				admin.PUT("/articles/:id/decision", adminHandler.DecideArticle)
				admin.GET("/stats", adminHandler.GetStats)
			}
		}

		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublishedArticles)
			public.GET("/articles/:id", articleHandler.GetPublishedArticle)
		}
	}

	suite.router = router
}

func (suite *HandlerTestSuite) token(userID string, role models.Role) string {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": userID,
		"role":     string(role),
		"exp":      time.Now().Add(time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *HandlerTestSuite) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) submit(token string) uint {
	w := suite.do("POST", "/api/v1/articles", token, models.SubmitArticleRequest{
		Title:   "Test",
		Content: strings.Repeat("word ", 5),
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var resp struct {
		Data models.Article `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.ID
}

func (suite *HandlerTestSuite) TestSubmitRequiresToken() {
	w := suite.do("POST", "/api/v1/articles", "", models.SubmitArticleRequest{
		Title:   "Test",
		Content: strings.Repeat("word ", 5),
	})
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestSubmitTooShortContent() {
	token := suite.token("author-1", models.RoleUser)

	w := suite.do("POST", "/api/v1/articles", token, models.SubmitArticleRequest{
		Title:   "Test",
		Content: "only four words here",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestSubmitThenApproveFlow() {
	authorToken := suite.token("author-1", models.RoleUser)
	adminToken := suite.token("M1", models.RoleAdmin)

	id := suite.submit(authorToken)

	// Pending queue shows the article.
	w := suite.do("GET", "/api/v1/admin/articles/pending", adminToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"state":"pending"`)

	// Approve it.
	w = suite.do("PUT", fmt.Sprintf("/api/v1/admin/articles/%d/decision", id), adminToken,
		models.DecisionRequest{Decision: models.DecisionApprove})
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"decided_by":"M1"`)

	// Second decision conflicts.
	w = suite.do("PUT", fmt.Sprintf("/api/v1/admin/articles/%d/decision", id), adminToken,
		models.DecisionRequest{Decision: models.DecisionReject})
	suite.Equal(http.StatusConflict, w.Code)

	// Now publicly readable.
	w = suite.do("GET", fmt.Sprintf("/api/v1/public/articles/%d", id), "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"state":"published"`)
}

func (suite *HandlerTestSuite) TestAdminRoutesRejectPlainUsers() {
	userToken := suite.token("author-1", models.RoleUser)

	w := suite.do("GET", "/api/v1/admin/articles/pending", userToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestPendingArticleNotPubliclyVisible() {
	authorToken := suite.token("author-1", models.RoleUser)
	id := suite.submit(authorToken)

	w := suite.do("GET", fmt.Sprintf("/api/v1/public/articles/%d", id), "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestVoteOnPublishedArticle() {
	authorToken := suite.token("author-1", models.RoleUser)
	adminToken := suite.token("M1", models.RoleAdmin)

	id := suite.submit(authorToken)
	w := suite.do("PUT", fmt.Sprintf("/api/v1/admin/articles/%d/decision", id), adminToken,
		models.DecisionRequest{Decision: models.DecisionApprove})
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do("POST", fmt.Sprintf("/api/v1/articles/%d/upvote", id), authorToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"upvotes":1`)
}

func (suite *HandlerTestSuite) TestStatsEndpoint() {
	authorToken := suite.token("author-1", models.RoleUser)
	adminToken := suite.token("M1", models.RoleAdmin)

	id := suite.submit(authorToken)
	suite.submit(authorToken)

	w := suite.do("PUT", fmt.Sprintf("/api/v1/admin/articles/%d/decision", id), adminToken,
		models.DecisionRequest{Decision: models.DecisionApprove})
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do("GET", "/api/v1/admin/stats?period=this_month", adminToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"pending_created":1`)
	suite.Contains(w.Body.String(), `"published":1`)

	w = suite.do("GET", "/api/v1/admin/stats?period=yesterday", adminToken, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
