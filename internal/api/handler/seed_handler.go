package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/screenhub/movie-catalog/internal/core/ports"
)

type SeedHandler struct {
	seeder ports.CatalogSeeder
}

func NewSeedHandler(seeder ports.CatalogSeeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// Seed handles POST /api/init-data.
//
// @Summary      Seed the demo catalog
// @Description  Inserts the built-in movie set when the catalog is empty.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/init-data [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	result, err := h.seeder.Seed(c.Request().Context())
	if err != nil {
		return err
	}
	if result.AlreadySeeded {
		return c.JSON(http.StatusOK, messageResponse{Message: "Data already initialized"})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("Initialized %d movies", result.Inserted)})
}
