package handler

import (
	"genshin-trade-center/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MarketHandler struct {
	service service.MarketService
}

func NewMarketHandler(s service.MarketService) *MarketHandler {
	return &MarketHandler{service: s}
}

// GetMarketStats returns overview statistics
// GET /api/v1/market/stats
func (h *MarketHandler) GetMarketStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch market stats"})
	}

	return c.JSON(stats)
}
