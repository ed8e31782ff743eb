package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crediya/auth-service/internal/container"
	handlers "github.com/crediya/auth-service/internal/interface/http"
	"github.com/crediya/auth-service/internal/interface/middleware"
)

// UserModule wires the registration handler into routes.
// Public: POST /api/v1/users
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// 20 registrations/min per IP on the public endpoint
	registerLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath())

	v1 := rg.Group("/v1")
	v1.POST("/users", registerLimiter, m.Handler.Register)
}
