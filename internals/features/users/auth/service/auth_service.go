package service

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lecats_backend/internals/configs"
	"lecats_backend/internals/constants"
	authModel "lecats_backend/internals/features/users/auth/model"
	userModel "lecats_backend/internals/features/users/user/model"
	helper "lecats_backend/internals/helpers"
)

const accessTTL = 24 * time.Hour

var validate = validator.New()

type registerRequest struct {
	FullName     string  `json:"full_name" validate:"required,min=3,max=150"`
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required,min=6"`
	Role         string  `json:"role" validate:"required,oneof=Admin HOD Lecturer CR"`
	DepartmentID *string `json:"department_id" validate:"omitempty,uuid"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing userModel.UserModel
	if err := db.Where("user_email = ?", req.Email).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserFullName: req.FullName,
		UserEmail:    req.Email,
		UserPassword: string(hashed),
		UserRole:     req.Role,
	}
	if req.DepartmentID != nil {
		deptID, err := parseUUIDPtr(*req.DepartmentID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid department_id")
		}
		user.UserDepartmentID = deptID
	}

	if err := db.Create(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User registered successfully", fiber.Map{
		"id": user.UserID,
	})
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Seed admin: login bootstrap tanpa baris user (escape hatch yang disengaja)
	if req.Email == configs.SeedAdminEmail && req.Password == configs.SeedAdminPassword {
		token, err := signToken(jwt.MapClaims{
			"sub":       req.Email,
			"role":      constants.RoleAdmin,
			"full_name": "Admin User",
			"exp":       time.Now().UTC().Add(accessTTL).Unix(),
		})
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"token": token})
	}

	var user userModel.UserModel
	if err := db.Where("user_email = ?", req.Email).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Bad credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Bad credentials")
	}

	claims := jwt.MapClaims{
		"sub":       user.UserEmail,
		"id":        user.UserID.String(),
		"role":      user.UserRole,
		"full_name": user.UserFullName,
		"exp":       time.Now().UTC().Add(accessTTL).Unix(),
	}
	if user.UserDepartmentID != nil {
		claims["department_id"] = user.UserDepartmentID.String()
	}

	token, err := signToken(claims)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}

// Logout memasukkan token yang sedang dipakai ke blacklist sampai exp-nya.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "No token provided")
	}

	expiredAt := time.Now().UTC().Add(accessTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0).UTC()
		}
	}

	entry := authModel.TokenBlacklist{Token: raw, ExpiredAt: expiredAt}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan token blacklist: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log out")
	}

	return helper.Success(c, "Logged out successfully", nil)
}

func parseUUIDPtr(s string) (*uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func signToken(claims jwt.MapClaims) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	return signed, nil
}
