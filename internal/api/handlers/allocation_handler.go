package handlers

import (
	"errors"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/internal/api/presenters"
	"FoodBridge-Backend/pkg/allocation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AllocationHandler interface {
		Allocate(c *fiber.Ctx) error
		GetNGOAllocations(c *fiber.Ctx) error
	}

	allocationHandler struct {
		allocationService allocation.AllocationService
		validator         *validator.Validate
	}
)

func NewAllocationHandler(allocationService allocation.AllocationService, validator *validator.Validate) AllocationHandler {
	return &allocationHandler{
		allocationService: allocationService,
		validator:         validator,
	}
}

func (h *allocationHandler) Allocate(c *fiber.Ctx) error {
	ngoID := c.Locals("ngo_id").(string)

	req := new(domain.AllocateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAllocate, err)
	}

	result, err := h.allocationService.Allocate(c.Context(), *req, ngoID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound), errors.Is(err, domain.ErrDonationNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAllocate, err)
		case errors.Is(err, domain.ErrRequestNotPending), errors.Is(err, domain.ErrInsufficientQuantity):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedAllocate, err)
		case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAllocate, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAllocate, err)
		}
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessAllocate)
}

func (h *allocationHandler) GetNGOAllocations(c *fiber.Ctx) error {
	ngoID := c.Locals("ngo_id").(string)

	allocations, err := h.allocationService.GetNGOAllocations(c.Context(), ngoID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAllocations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"allocations": allocations,
	}, fiber.StatusOK, domain.MessageSuccessGetAllocations)
}
