package handler

import (
	"log"
	"strconv"
	"time"

	"medequip-backend/config"
	"medequip-backend/internal/model"
	"medequip-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Mailer is the slice of the mail sender the technician glue needs.
type Mailer interface {
	SendPasswordSetLink(to, name, link string) error
	SendAssignment(to, name, deviceCode, description string) error
}

type TechnicianHandler struct {
	repo   repository.TechnicianRepository
	mailer Mailer
	cfg    *config.Config
}

func NewTechnicianHandler(repo repository.TechnicianRepository, mailer Mailer, cfg *config.Config) *TechnicianHandler {
	return &TechnicianHandler{repo: repo, mailer: mailer, cfg: cfg}
}

type CreateTechnicianRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Create provisions a technician account and emails a time-limited link for
// setting the first password. The account has no usable password until then.
func (h *TechnicianHandler) Create(c *fiber.Ctx) error {
	var req CreateTechnicianRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Name == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and email are required"})
	}

	tech := model.Technician{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := h.repo.Create(&tech); err != nil {
		// Most likely a duplicate email (unique column).
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not create technician: " + err.Error()})
	}

	// 1. Time-limited token for the password-set link (1 hour).
	token, err := h.passwordSetToken(&tech)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not generate password link"})
	}
	link := h.cfg.AppBaseURL + "/set-password?token=" + token

	// 2. The account exists either way; a mail failure is reported, not
	// rolled back, so the admin can resend the link.
	if err := h.mailer.SendPasswordSetLink(tech.Email, tech.Name, link); err != nil {
		log.Printf("password-set mail to %s failed: %v", tech.Email, err)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "technician created, but the password email could not be sent",
			"data":    tech,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "technician created, password link sent",
		"data":    tech,
	})
}

type SetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// SetPassword consumes a password-set link token and stores the hash.
func (h *TechnicianHandler) SetPassword(c *fiber.Ctx) error {
	var req SetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Token == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "token and password are required"})
	}

	// 1. Parse and validate the token (signature, expiry, purpose).
	token, err := jwt.Parse(req.Token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired link"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["purpose"] != "password-set" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired link"})
	}
	idClaim, ok := claims["technician_id"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired link"})
	}

	// 2. Hash and store.
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not hash password"})
	}
	if err := h.repo.UpdatePassword(uint(idClaim), string(hashed)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save password"})
	}

	return c.JSON(fiber.Map{"message": "password set, you can now sign in"})
}

type AssignmentRequest struct {
	DeviceID    string `json:"deviceId"`
	Description string `json:"description"`
}

// SendAssignment emails a service-assignment notice to a technician. Pure
// notification glue; nothing is persisted.
func (h *TechnicianHandler) SendAssignment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid technician id"})
	}

	var req AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.DeviceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "deviceId is required"})
	}

	tech, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "technician not found"})
	}

	if err := h.mailer.SendAssignment(tech.Email, tech.Name, req.DeviceID, req.Description); err != nil {
		log.Printf("assignment mail to %s failed: %v", tech.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not send assignment email"})
	}

	return c.JSON(fiber.Map{"message": "assignment email sent to " + tech.Email})
}

func (h *TechnicianHandler) GetAll(c *fiber.Ctx) error {
	techs, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load technicians"})
	}
	return c.JSON(fiber.Map{"data": techs})
}

func (h *TechnicianHandler) passwordSetToken(t *model.Technician) (string, error) {
	claims := jwt.MapClaims{
		"technician_id": t.ID,
		"email":         t.Email,
		"purpose":       "password-set",
		"exp":           time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}
