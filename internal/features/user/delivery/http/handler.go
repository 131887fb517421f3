package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"tweet-feed-backend/internal/common/logger"
	"tweet-feed-backend/internal/common/validation"
	"tweet-feed-backend/internal/features/user/models"
	"tweet-feed-backend/internal/features/user/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/sign-up", h.SignUp)
}

// @Summary Sign up
// @Description Register a new user. Signing up an already registered username succeeds without changing the stored user.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.SignUpRequest true "Username and avatar URI"
// @Success 201 {object} map[string]string "User created"
// @Success 200 {object} map[string]string "User already registered"
// @Failure 422 {array} string "Validation messages, one per violated field"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sign-up [post]
func (h *UserHandler) SignUp(c *gin.Context) {
	var input models.SignUpRequest
	if !bindJSON(c, &input) {
		return
	}

	created, err := h.service.SignUp(c.Request.Context(), input.Username, input.Avatar)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, verrs)
			return
		}
		logger.Error().Err(err).Str("username", input.Username).Msg("Failed to sign up user")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to save user"})
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "user created"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "welcome back"})
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
