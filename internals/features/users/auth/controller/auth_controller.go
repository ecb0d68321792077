package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/features/users/auth/dto"
	"sekolahku_backend/internals/features/users/auth/model"
	"sekolahku_backend/internals/features/users/auth/service"
	helper "sekolahku_backend/internals/helpers"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, validate *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: validate}
}

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var taken int64
	if err := ctl.DB.Model(&model.UserModel{}).
		Where("username = ? OR email = ?", req.Username, req.Email).
		Count(&taken).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if taken > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return helper.JsonCreated(c, "Registrasi berhasil", user)
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("username = ? OR email = ?", req.Identifier, req.Identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := service.IssueAccessToken(configs.JWTSecret, user.ID, user.Username)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(service.AccessTokenTTL.Seconds()),
	})
}

// Me mengembalikan profil user dari token yang sedang dipakai.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", user)
}
