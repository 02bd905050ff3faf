package server

import (
	"dresscircle/internal/cache"
	"dresscircle/internal/featureflags"
	"dresscircle/internal/models"
	"dresscircle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// BrowseDresses handles GET /api/dresses with filter and sort query
// parameters.
func (s *Server) BrowseDresses(c *fiber.Ctx) error {
	in := service.BrowseInput{
		Category:  c.Query("category"),
		Size:      c.Query("size"),
		Condition: c.Query("condition"),
		Search:    c.Query("search"),
		Sort:      c.Query("sort"),
	}
	if v := c.QueryInt("minButtons", -1); v >= 0 {
		in.MinButtons = &v
	}
	if v := c.QueryInt("maxButtons", -1); v >= 0 {
		in.MaxButtons = &v
	}

	dresses, err := s.listingService.Browse(c.Context(), in)
	if err != nil {
		return models.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"total":   len(dresses),
		"dresses": dresses,
	})
}

// TrendingDresses handles GET /api/dresses/trending. With the feed cache
// flag on and Redis available, the computed feed is served from cache.
func (s *Server) TrendingDresses(c *fiber.Ctx) error {
	useCache := s.featureFlags.Enabled(featureflags.FeedCache, 0)

	var dresses []models.DressWithSeller
	if useCache && cache.GetFeed(c.Context(), cache.TrendingFeedKey, &dresses) {
		return c.JSON(fiber.Map{"dresses": dresses})
	}

	dresses = s.listingService.Trending(c.Context())
	if useCache {
		cache.SetFeed(c.Context(), cache.TrendingFeedKey, dresses, cache.TrendingTTL)
	}
	return c.JSON(fiber.Map{"dresses": dresses})
}

// NewArrivals handles GET /api/dresses/new.
func (s *Server) NewArrivals(c *fiber.Ctx) error {
	useCache := s.featureFlags.Enabled(featureflags.FeedCache, 0)

	var dresses []models.DressWithSeller
	if useCache && cache.GetFeed(c.Context(), cache.NewArrivalsFeedKey, &dresses) {
		return c.JSON(fiber.Map{"dresses": dresses})
	}

	dresses = s.listingService.NewArrivals(c.Context())
	if useCache {
		cache.SetFeed(c.Context(), cache.NewArrivalsFeedKey, dresses, cache.NewArrivalsTTL)
	}
	return c.JSON(fiber.Map{"dresses": dresses})
}

// GetDress handles GET /api/dresses/:id. Every successful read counts a
// view.
func (s *Server) GetDress(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	detail, err := s.listingService.Detail(c.Context(), id)
	if err != nil {
		return models.Respond(c, err)
	}
	return c.JSON(detail)
}

// CreateDress handles POST /api/dresses
func (s *Server) CreateDress(c *fiber.Ctx) error {
	var req struct {
		Brand         string   `json:"brand"`
		Title         string   `json:"title"`
		Description   string   `json:"description"`
		Category      string   `json:"category"`
		Size          string   `json:"size"`
		Condition     string   `json:"condition"`
		ButtonsPrice  int      `json:"buttonsPrice"`
		OriginalPrice int      `json:"originalPrice"`
		Images        []string `json:"images"`
		Tags          []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	dress, err := s.listingService.Create(c.Context(), service.CreateListingInput{
		SellerID:      currentUserID(c),
		Brand:         req.Brand,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Size:          req.Size,
		Condition:     req.Condition,
		ButtonsPrice:  req.ButtonsPrice,
		OriginalPrice: req.OriginalPrice,
		Images:        req.Images,
		Tags:          req.Tags,
	})
	if err != nil {
		return models.Respond(c, err)
	}

	cache.InvalidateFeeds(c.Context())

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Dress listed successfully",
		"dress":   dress,
	})
}

// UpdateDress handles PUT /api/dresses/:id for the listing owner.
func (s *Server) UpdateDress(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Brand         *string `json:"brand"`
		Title         *string `json:"title"`
		Description   *string `json:"description"`
		Category      *string `json:"category"`
		Size          *string `json:"size"`
		Condition     *string `json:"condition"`
		ButtonsPrice  *int    `json:"buttonsPrice"`
		OriginalPrice *int    `json:"originalPrice"`
		Status        *string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	dress, err := s.listingService.Update(c.Context(), service.UpdateListingInput{
		UserID:        currentUserID(c),
		DressID:       id,
		Brand:         req.Brand,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Size:          req.Size,
		Condition:     req.Condition,
		ButtonsPrice:  req.ButtonsPrice,
		OriginalPrice: req.OriginalPrice,
		Status:        req.Status,
	})
	if err != nil {
		return models.Respond(c, err)
	}

	cache.InvalidateFeeds(c.Context())

	return c.JSON(fiber.Map{
		"message": "Dress updated",
		"dress":   dress,
	})
}

// DeleteDress handles DELETE /api/dresses/:id for the listing owner.
func (s *Server) DeleteDress(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.listingService.Delete(c.Context(), currentUserID(c), id); err != nil {
		return models.Respond(c, err)
	}

	cache.InvalidateFeeds(c.Context())

	return c.JSON(fiber.Map{"message": "Dress deleted"})
}
