package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carbon-footprint/backend/internal/user/domain"
	userservice "carbon-footprint/backend/internal/user/service"
)

const userKey = "user"

type userHandler struct {
	users *userservice.UserService
}

type createUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}

func (h *userHandler) create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.users.Create(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// load resolves :userId and aborts with 404 when the user does not exist.
func (h *userHandler) load(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Set(userKey, u)
	c.Next()
}

func (h *userHandler) get(c *gin.Context) {
	c.JSON(http.StatusOK, c.MustGet(userKey).(*domain.User))
}

func (h *userHandler) delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("userId")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
