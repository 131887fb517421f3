package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"tweet-feed-backend/internal/common/logger"
	"tweet-feed-backend/internal/common/validation"
	"tweet-feed-backend/internal/features/tweet/models"
	"tweet-feed-backend/internal/features/tweet/service"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	service service.TweetService
}

func NewTweetHandler(service service.TweetService) *TweetHandler {
	return &TweetHandler{
		service: service,
	}
}

func (h *TweetHandler) RegisterRoutes(router *gin.RouterGroup) {
	tweets := router.Group("/tweets")
	{
		tweets.GET("", h.Feed)
		tweets.POST("", h.Create)
		tweets.PUT("/:id", h.Update)
		tweets.DELETE("/:id", h.Delete)
	}
}

// @Summary Get feed
// @Description List every tweet newest-first, each with its author's avatar (null when the author does not exist).
// @Tags tweets
// @Produce json
// @Success 200 {array} models.FeedEntry
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tweets [get]
func (h *TweetHandler) Feed(c *gin.Context) {
	entries, err := h.service.Feed(c.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list tweets")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tweets"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// @Summary Post tweet
// @Description Create a tweet. The username must belong to a registered user.
// @Tags tweets
// @Accept json
// @Produce json
// @Param tweet body models.TweetRequest true "Username and message body"
// @Success 201 {object} map[string]string "Tweet created"
// @Failure 422 {array} string "Validation messages, one per violated field"
// @Failure 401 {object} map[string]string "Author is not registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tweets [post]
func (h *TweetHandler) Create(c *gin.Context) {
	var input models.TweetRequest
	if !bindJSON(c, &input) {
		return
	}

	tweet, err := h.service.Create(c.Request.Context(), input.Username, input.Tweet)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, verrs)
		case errors.Is(err, service.ErrAuthorNotFound):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		default:
			logger.Error().Err(err).Str("username", input.Username).Msg("Failed to create tweet")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to save tweet"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": tweet.ID})
}

// @Summary Update tweet
// @Description Replace the username and body of an existing tweet.
// @Tags tweets
// @Accept json
// @Param id path string true "Tweet ID"
// @Param tweet body models.TweetRequest true "New username and message body"
// @Success 204 "Tweet updated"
// @Failure 422 {array} string "Validation messages, one per violated field"
// @Failure 404 {object} map[string]string "Tweet not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tweets/{id} [put]
func (h *TweetHandler) Update(c *gin.Context) {
	var input models.TweetRequest
	if !bindJSON(c, &input) {
		return
	}

	err := h.service.Update(c.Request.Context(), c.Param("id"), input.Username, input.Tweet)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, verrs)
		case errors.Is(err, service.ErrTweetNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "tweet not found"})
		default:
			logger.Error().Err(err).Str("tweet_id", c.Param("id")).Msg("Failed to update tweet")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to update tweet"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// bindJSON decodes the request body. A wrong-typed field is a shape
// violation like any other, so it joins the 422 path with a per-field
// message; only malformed JSON is a 400.
func bindJSON(c *gin.Context, input any) bool {
	err := c.ShouldBindJSON(input)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, validation.Errors{field + " must be a string"})
		return false
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	return false
}

// @Summary Delete tweet
// @Description Delete a tweet by its identifier.
// @Tags tweets
// @Param id path string true "Tweet ID"
// @Success 204 "Tweet deleted"
// @Failure 404 {object} map[string]string "Tweet not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tweets/{id} [delete]
func (h *TweetHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrTweetNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "tweet not found"})
			return
		}
		logger.Error().Err(err).Str("tweet_id", c.Param("id")).Msg("Failed to delete tweet")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to delete tweet"})
		return
	}

	c.Status(http.StatusNoContent)
}
