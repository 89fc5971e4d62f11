package auth

import (
	"betsim/database"
	"betsim/helpers"
	"betsim/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

// startingBankroll is the synthetic balance granted to every new account.
var startingBankroll = decimal.RequireFromString("10000.00")

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "INVALID_REGISTRATION_DATA")
	}

	var existing models.User
	if err := database.DB.Where("email = ? OR username = ?", req.Email, req.Username).
		First(&existing).Error; err == nil {
		return helpers.JSONError(c, "USER_ALREADY_EXISTS")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_REGISTER_USER")
	}

	user := models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		Bankroll:     startingBankroll,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.BankrollEntry{
			UserID:        user.ID,
			EntryType:     models.LedgerInitial,
			Amount:        startingBankroll,
			BalanceBefore: decimal.Zero,
			BalanceAfter:  startingBankroll,
			Note:          "starting bankroll",
		}).Error
	})
	if err != nil {
		return helpers.JSONInternal(c, "FAILED_TO_REGISTER_USER")
	}

	return helpers.JSONSuccess(c, "User registered successfully", user)
}
