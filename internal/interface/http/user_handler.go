package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/crediya/auth-service/internal/application"
	"github.com/crediya/auth-service/internal/domain/entity"
	"github.com/crediya/auth-service/pkg/response"
	"github.com/crediya/auth-service/pkg/validation"
)

type UserHandler struct {
	Port   userapp.RegisterUserPort
	Logger *logrus.Logger
}

func NewUserHandler(port userapp.RegisterUserPort, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Port: port, Logger: logger}
}

type registrationRequest struct {
	FirstName      string   `json:"firstName" binding:"required,notblank"`
	LastName       string   `json:"lastName" binding:"required,notblank"`
	Email          string   `json:"email" binding:"required,email"`
	IdentityNumber string   `json:"identityNumber"`
	PhoneNumber    string   `json:"phoneNumber"`
	BirthDate      string   `json:"birthDate" binding:"omitempty,pastdate"`
	Address        string   `json:"address"`
	IDRole         string   `json:"idRole"`
	BaseSalary     *float64 `json:"baseSalary" binding:"required,gte=0,lte=15000000"`
}

type registrationResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r *registrationRequest) toCommand() userapp.RegisterUserCommand {
	var birthDate *time.Time
	if r.BirthDate != "" {
		// format already checked by the pastdate binding rule
		if d, err := time.Parse(validation.DateLayout, r.BirthDate); err == nil {
			birthDate = &d
		}
	}
	return userapp.RegisterUserCommand{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		IdentityNumber: r.IdentityNumber,
		PhoneNumber:    r.PhoneNumber,
		BirthDate:      birthDate,
		Address:        r.Address,
		IDRole:         r.IDRole,
		BaseSalary:     *r.BaseSalary,
	}
}

// Register POST /api/v1/users
func (h *UserHandler) Register(c *gin.Context) {
	var req registrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := validation.Message(err)
		if h.Logger != nil {
			h.Logger.WithField("request_id", c.GetString("request_id")).
				WithField("reason", msg).Warn("registration request rejected")
		}
		response.Fail(c, http.StatusBadRequest, msg)
		return
	}

	u, err := h.Port.RegisterUser(c.Request.Context(), req.toCommand())
	if err != nil {
		h.writeError(c, req.Email, err)
		return
	}

	if h.Logger != nil {
		h.Logger.WithField("email", u.Email()).Info("user registered")
	}
	c.JSON(http.StatusCreated, registrationResponse{
		Email:   u.Email(),
		Message: "User registered successfully.",
	})
}

func (h *UserHandler) writeError(c *gin.Context, email string, err error) {
	switch e := err.(type) {
	case *userapp.EmailAlreadyExistsError:
		response.Fail(c, http.StatusConflict, e.Error())
	case *entity.ValidationError:
		response.Fail(c, http.StatusBadRequest, e.Message)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("email", email).Error("registration failed")
		}
		response.Fail(c, http.StatusInternalServerError, "internal server error")
	}
}
