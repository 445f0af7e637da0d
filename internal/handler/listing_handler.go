package handler

import (
	"genshin-trade-center/internal/model"
	"genshin-trade-center/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ListingHandler struct {
	service service.ListingService
}

func NewListingHandler(s service.ListingService) *ListingHandler {
	return &ListingHandler{service: s}
}

// ListCharacters returns every character listing except the caller's own
// GET /api/v1/characters
func (h *ListingHandler) ListCharacters(c *fiber.Ctx) error {
	return h.listAvailable(c, model.KindCharacter)
}

// MyCharacters returns the caller's own character listings
// GET /api/v1/characters/mine
func (h *ListingHandler) MyCharacters(c *fiber.Ctx) error {
	return h.listMine(c, model.KindCharacter)
}

// ListItems returns every item listing except the caller's own
// GET /api/v1/items
func (h *ListingHandler) ListItems(c *fiber.Ctx) error {
	return h.listAvailable(c, model.KindItem)
}

// MyItems returns the caller's own item listings
// GET /api/v1/items/mine
func (h *ListingHandler) MyItems(c *fiber.Ctx) error {
	return h.listMine(c, model.KindItem)
}

func (h *ListingHandler) listAvailable(c *fiber.Ctx, kind model.ProductKind) error {
	viewerID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	products, err := h.service.ListAvailable(kind, viewerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

func (h *ListingHandler) listMine(c *fiber.Ctx, kind model.ProductKind) error {
	sellerID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	products, err := h.service.ListMine(kind, sellerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// CreateCharacter lists a character for sale by the caller
// POST /api/v1/characters
func (h *ListingHandler) CreateCharacter(c *fiber.Ctx) error {
	var req model.CreateCharacterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sellerID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	product, err := h.service.CreateCharacter(sellerID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Character listed", "data": product})
}

// CreateItem lists an item for sale by the caller
// POST /api/v1/items
func (h *ListingHandler) CreateItem(c *fiber.Ctx) error {
	var req model.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sellerID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	product, err := h.service.CreateItem(sellerID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Item listed", "data": product})
}

// UpdateCharacter edits the caller's own character listing
// PUT /api/v1/characters/:id
func (h *ListingHandler) UpdateCharacter(c *fiber.Ctx) error {
	var req model.UpdateCharacterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	listingID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid listing ID"})
	}
	callerID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	product, err := h.service.UpdateCharacter(listingID, callerID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Character updated", "data": product})
}

// UpdateItem edits the caller's own item listing
// PUT /api/v1/items/:id
func (h *ListingHandler) UpdateItem(c *fiber.Ctx) error {
	var req model.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	listingID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid listing ID"})
	}
	callerID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	product, err := h.service.UpdateItem(listingID, callerID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item updated", "data": product})
}

// DeleteListing withdraws the caller's own listing
// DELETE /api/v1/characters/:id and /api/v1/items/:id
func (h *ListingHandler) DeleteListing(c *fiber.Ctx) error {
	listingID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid listing ID"})
	}
	callerID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := h.service.Delete(listingID, callerID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Listing removed"})
}

// BuyListing purchases a listing, removing it from the market
// POST /api/v1/characters/:id/buy and /api/v1/items/:id/buy
func (h *ListingHandler) BuyListing(c *fiber.Ctx) error {
	listingID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid listing ID"})
	}
	buyerID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := h.service.Buy(listingID, buyerID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Listing bought"})
}
