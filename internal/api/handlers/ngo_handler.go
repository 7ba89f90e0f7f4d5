package handlers

import (
	"errors"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/api/presenters"
	"FoodBridge-Backend/pkg/ngo"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NGOHandler interface {
		Signup(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	ngoHandler struct {
		ngoService ngo.NGOService
		validator  *validator.Validate
	}
)

func NewNGOHandler(ngoService ngo.NGOService, validator *validator.Validate) NGOHandler {
	return &ngoHandler{
		ngoService: ngoService,
		validator:  validator,
	}
}

func (h *ngoHandler) Signup(c *fiber.Ctx) error {
	req := new(domain.NGOSignupRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignup, err)
	}

	created, err := h.ngoService.Signup(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedSignup, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSignup, err)
	}

	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessSignup)
}

func (h *ngoHandler) Login(c *fiber.Ctx) error {
	req := new(domain.NGOLoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	resp, err := h.ngoService.Login(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
		case errors.Is(err, domain.ErrNGONotVerified):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedLogin, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
		}
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *ngoHandler) Me(c *fiber.Ctx) error {
	ngoID := c.Locals("ngo_id").(string)

	profile, err := h.ngoService.Me(c.Context(), ngoID)
	if err != nil {
		if errors.Is(err, domain.ErrNGONotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetProfile, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessGetProfile)
}
