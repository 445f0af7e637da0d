package handler

import (
	"genshin-trade-center/internal/model"
	"genshin-trade-center/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ResourceHandler struct {
	service service.ResourceService
}

func NewResourceHandler(s service.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: s}
}

// ListResources returns all resources with their seller sets
// GET /api/v1/resources
func (h *ResourceHandler) ListResources(c *fiber.Ctx) error {
	resources, err := h.service.ListAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resources)
}

// CreateResource adds a resource to the market (admin)
// POST /api/v1/resources
func (h *ResourceHandler) CreateResource(c *fiber.Ctx) error {
	var req model.ResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	resource, err := h.service.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Resource created", "data": resource})
}

// UpdateResource edits a resource (admin)
// PUT /api/v1/resources/:id
func (h *ResourceHandler) UpdateResource(c *fiber.Ctx) error {
	var req model.ResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	resourceID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid resource ID"})
	}

	resource, err := h.service.Update(resourceID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Resource updated", "data": resource})
}

// DeleteResource removes a resource (admin)
// DELETE /api/v1/resources/:id
func (h *ResourceHandler) DeleteResource(c *fiber.Ctx) error {
	resourceID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid resource ID"})
	}

	if err := h.service.Delete(resourceID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Resource removed"})
}

// Sell adds the caller to the resource's seller set
// POST /api/v1/resources/:id/sell
func (h *ResourceHandler) Sell(c *fiber.Ctx) error {
	resourceID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid resource ID"})
	}
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := h.service.Sell(resourceID, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Now selling this resource"})
}

// SellStop removes the caller from the resource's seller set
// POST /api/v1/resources/:id/sell-stop
func (h *ResourceHandler) SellStop(c *fiber.Ctx) error {
	resourceID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid resource ID"})
	}
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := h.service.SellStop(resourceID, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "No longer selling this resource"})
}

// Buy takes one seller slot from the resource for the caller
// POST /api/v1/resources/:id/buy
func (h *ResourceHandler) Buy(c *fiber.Ctx) error {
	resourceID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid resource ID"})
	}
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := h.service.Buy(resourceID, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Resource bought"})
}
