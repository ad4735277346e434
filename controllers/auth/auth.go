package authController

import (
	"log"

	"finsim/middleware"
	"finsim/session"
	"finsim/store"
	authValidator "finsim/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Controller handles registration, login and logout.
type Controller struct {
	Store        store.Store
	Sessions     session.Store
	SaltRound    int
	StartingCash decimal.Decimal
}

func New(db store.Store, sessions session.Store, saltRound int, startingCash decimal.Decimal) *Controller {
	return &Controller{
		Store:        db,
		Sessions:     sessions,
		SaltRound:    saltRound,
		StartingCash: startingCash,
	}
}

func (ctrl *Controller) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), ctrl.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user, err := ctrl.Store.CreateUser(reqData.Username, string(hashedPassword), ctrl.StartingCash)
	if err != nil {
		if err == store.ErrUsernameTaken {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already registered!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", user)
}

func (ctrl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ctrl.Store.UserByUsername(reqData.Username)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := ctrl.Sessions.Create(c.UserContext(), user.ID)
	if err != nil {
		log.Printf("Error creating session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (ctrl *Controller) Logout(c *fiber.Ctx) error {
	token, ok := c.Locals("sessionToken").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := ctrl.Sessions.Destroy(c.UserContext(), token); err != nil {
		log.Printf("Error destroying session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to log out!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}
