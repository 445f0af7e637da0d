package handler

import (
	"strconv"

	"genshin-trade-center/internal/model"
	"genshin-trade-center/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the weapon and archetype reference tables.
// Reads are open to any authenticated user so listing forms can populate
// their type selectors; mutations are admin-gated at the route.
type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func parseCatalogID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

// GET /api/v1/weapons
func (h *CatalogHandler) ListWeapons(c *fiber.Ctx) error {
	weapons, err := h.service.ListWeapons()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(weapons)
}

// GET /api/v1/weapons/:id
func (h *CatalogHandler) GetWeapon(c *fiber.Ctx) error {
	id, err := parseCatalogID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid weapon ID"})
	}

	weapon, err := h.service.GetWeapon(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(weapon)
}

// POST /api/v1/weapons
func (h *CatalogHandler) CreateWeapon(c *fiber.Ctx) error {
	var req model.WeaponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	weapon, err := h.service.CreateWeapon(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Weapon created", "data": weapon})
}

// PUT /api/v1/weapons/:id
func (h *CatalogHandler) UpdateWeapon(c *fiber.Ctx) error {
	id, err := parseCatalogID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid weapon ID"})
	}

	var req model.WeaponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	weapon, err := h.service.UpdateWeapon(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Weapon updated", "data": weapon})
}

// DELETE /api/v1/weapons/:id
func (h *CatalogHandler) DeleteWeapon(c *fiber.Ctx) error {
	id, err := parseCatalogID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid weapon ID"})
	}

	if err := h.service.DeleteWeapon(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Weapon removed"})
}

// GET /api/v1/archetypes
func (h *CatalogHandler) ListArchetypes(c *fiber.Ctx) error {
	archetypes, err := h.service.ListArchetypes()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(archetypes)
}

// GET /api/v1/archetypes/:id
func (h *CatalogHandler) GetArchetype(c *fiber.Ctx) error {
	id, err := parseCatalogID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid archetype ID"})
	}

	archetype, err := h.service.GetArchetype(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(archetype)
}

// POST /api/v1/archetypes
func (h *CatalogHandler) CreateArchetype(c *fiber.Ctx) error {
	var req model.ArchetypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	archetype, err := h.service.CreateArchetype(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Archetype created", "data": archetype})
}

// PUT /api/v1/archetypes/:id
func (h *CatalogHandler) UpdateArchetype(c *fiber.Ctx) error {
	id, err := parseCatalogID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid archetype ID"})
	}

	var req model.ArchetypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	archetype, err := h.service.UpdateArchetype(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Archetype updated", "data": archetype})
}

// DELETE /api/v1/archetypes/:id
func (h *CatalogHandler) DeleteArchetype(c *fiber.Ctx) error {
	id, err := parseCatalogID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid archetype ID"})
	}

	if err := h.service.DeleteArchetype(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Archetype removed"})
}
