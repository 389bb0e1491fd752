package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/jdsalazarc/barberia-desk/internal/audit"
	"github.com/jdsalazarc/barberia-desk/internal/config"
	domain "github.com/jdsalazarc/barberia-desk/internal/domain/employee"
	"github.com/jdsalazarc/barberia-desk/internal/httperr"
	"github.com/jdsalazarc/barberia-desk/internal/httpresp"
	"github.com/jdsalazarc/barberia-desk/internal/models"
	"github.com/jdsalazarc/barberia-desk/internal/validators"
)

type AuthHandler struct {
	repo   domain.Repository
	config *config.Config
	audit  *audit.Dispatcher
	log    *logrus.Logger
}

func NewAuthHandler(
	repo domain.Repository,
	cfg *config.Config,
	auditd *audit.Dispatcher,
	log *logrus.Logger,
) *AuthHandler {
	return &AuthHandler{
		repo:   repo,
		config: cfg,
		audit:  auditd,
		log:    log,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`

	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number" binding:"required"`

	Phone string `json:"phone"`
	Email string `json:"email" binding:"required,email"`

	Role      string `json:"role" binding:"required"`
	RoleLabel string `json:"role_label"`

	HireDate string `json:"hire_date"`

	Address     string `json:"address"`
	City        string `json:"city"`
	Province    string `json:"province"`
	Country     string `json:"country"`
	Nationality string `json:"nationality"`

	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Faltan campos obligatorios o tienen un formato inválido.")
		return
	}

	if req.Password != req.ConfirmPassword {
		httperr.BadRequest(c, "Las contraseñas no coinciden.")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "El correo electrónico no es válido.")
		return
	}

	if !validators.IsDocumentNumberValid(req.DocumentNumber) {
		httperr.BadRequest(c, "El número de documento no es válido.")
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		httperr.BadRequest(c, "El rol seleccionado no es válido.")
		return
	}
	if role == domain.RoleOther && req.RoleLabel == "" {
		httperr.BadRequest(c, "Debe especificar el rol.")
		return
	}

	if req.HireDate != "" {
		if _, err := time.Parse("2006-01-02", req.HireDate); err != nil {
			httperr.BadRequest(c, "La fecha de ingreso no es válida.")
			return
		}
	}

	emp, err := h.repo.Register(c.Request.Context(), domain.RegisterInput{
		Name:           req.Name,
		Surname:        req.Surname,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		Phone:          req.Phone,
		Email:          email,
		Role:           role,
		RoleLabel:      req.RoleLabel,
		HireDate:       req.HireDate,
		Address:        req.Address,
		City:           req.City,
		Province:       req.Province,
		Country:        req.Country,
		Nationality:    req.Nationality,
		Password:       req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			httperr.BadRequest(c, "El correo electrónico o número de documento ya está registrado.")
			return
		}
		h.log.WithError(err).Error("registration failed")
		httperr.Internal(c, "Ocurrió un error al registrar el empleado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &emp.ID,
		Action:   "employee_registered",
		Entity:   "employee",
		EntityID: &emp.ID,
	})

	c.JSON(http.StatusCreated, httpresp.Result{
		Success: true,
		Message: "Empleado registrado con éxito.",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Correo y contraseña son obligatorios.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	emp, err := h.repo.Authenticate(c.Request.Context(), email, req.Password)
	if err != nil {
		// The two failure kinds keep their own messages, matching the
		// established UI behavior. See DESIGN.md before changing this.
		switch {
		case errors.Is(err, domain.ErrUnknownEmail):
			h.dispatchLoginFailure(email, "unknown_email")
			httperr.Unauthorized(c, "El correo electrónico no está registrado.")
		case errors.Is(err, domain.ErrWrongPassword):
			h.dispatchLoginFailure(email, "wrong_password")
			httperr.Unauthorized(c, "La contraseña es incorrecta.")
		default:
			h.log.WithError(err).Error("login failed")
			httperr.Internal(c, "Ocurrió un error en el servidor.")
		}
		return
	}

	token, err := h.generateToken(emp)
	if err != nil {
		h.log.WithError(err).Error("token generation failed")
		httperr.Internal(c, "Ocurrió un error en el servidor.")
		return
	}

	c.JSON(http.StatusOK, httpresp.Result{
		Success: true,
		Message: "Inicio de sesión exitoso.",
		Data: gin.H{
			"employee": emp,
			"token":    token,
		},
	})
}

func (h *AuthHandler) dispatchLoginFailure(email, kind string) {
	h.audit.Dispatch(audit.Event{
		Action: "login_failed",
		Entity: "credential",
		Metadata: map[string]any{
			"email": email,
			"kind":  kind,
		},
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(emp *models.Employee) (string, error) {
	claims := jwt.MapClaims{
		"sub":  emp.ID,
		"role": emp.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
