package handlers

import (
	"errors"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/api/presenters"
	"FoodBridge-Backend/pkg/ngo"

	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetPendingNGOs(c *fiber.Ctx) error
		VerifyNGO(c *fiber.Ctx) error
	}

	adminHandler struct {
		ngoService ngo.NGOService
	}
)

func NewAdminHandler(ngoService ngo.NGOService) AdminHandler {
	return &adminHandler{ngoService: ngoService}
}

func (h *adminHandler) GetPendingNGOs(c *fiber.Ctx) error {
	ngos, err := h.ngoService.GetPendingNGOs(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPendingNGOs, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"ngos": ngos,
	}, fiber.StatusOK, domain.MessageSuccessGetPendingNGOs)
}

func (h *adminHandler) VerifyNGO(c *fiber.Ctx) error {
	id := c.Params("id")

	verified, err := h.ngoService.Verify(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNGONotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedVerifyNGO, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedVerifyNGO, err)
	}

	return presenters.SuccessResponse(c, verified, fiber.StatusOK, domain.MessageSuccessVerifyNGO)
}
