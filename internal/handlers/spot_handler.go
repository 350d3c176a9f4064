package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jordanveksler/stayspot-backend/internal/access"
	"github.com/jordanveksler/stayspot-backend/internal/dto"
	"github.com/jordanveksler/stayspot-backend/internal/principal"
	"github.com/jordanveksler/stayspot-backend/internal/validation"
)

// SpotService is the slice of the spot service the handler consumes.
type SpotService interface {
	List(page, size int) (*dto.SpotsListResponse, error)
	ListByOwner(p *principal.Principal) ([]dto.SpotSummary, error)
	Get(id uint) (*dto.SpotDetail, error)
	Create(p *principal.Principal, req *dto.CreateSpotRequest) (*dto.SpotDetail, error)
	Update(p *principal.Principal, id uint, req *dto.CreateSpotRequest) (*dto.SpotDetail, error)
	Delete(p *principal.Principal, id uint) error
	AddImage(p *principal.Principal, spotID uint, req *dto.SpotImageRequest) (*dto.SpotImageResponse, error)
	DeleteImage(p *principal.Principal, imageID uint) error
}

type SpotHandler struct {
	spots SpotService
}

func NewSpotHandler(spots SpotService) *SpotHandler {
	return &SpotHandler{spots: spots}
}

func (h *SpotHandler) List(c *fiber.Ctx) error {
	page, size, err := validation.ListQuery(c.Query("page"), c.Query("size"))
	if err != nil {
		return respondErr(c, err)
	}

	resp, err := h.spots.List(page, size)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(resp)
}

func (h *SpotHandler) ListCurrent(c *fiber.Ctx) error {
	spots, err := h.spots.ListByOwner(principal.FromContext(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"Spots": spots})
}

func (h *SpotHandler) Get(c *fiber.Ctx) error {
	id, err := spotID(c)
	if err != nil {
		return respondErr(c, err)
	}

	resp, err := h.spots.Get(id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(resp)
}

func (h *SpotHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondErr(c, err)
	}

	resp, err := h.spots.Create(principal.FromContext(c), &req)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *SpotHandler) Update(c *fiber.Ctx) error {
	id, err := spotID(c)
	if err != nil {
		return respondErr(c, err)
	}

	var req dto.CreateSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondErr(c, err)
	}

	resp, err := h.spots.Update(principal.FromContext(c), id, &req)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(resp)
}

func (h *SpotHandler) Delete(c *fiber.Ctx) error {
	id, err := spotID(c)
	if err != nil {
		return respondErr(c, err)
	}

	if err := h.spots.Delete(principal.FromContext(c), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Successfully deleted"})
}

func (h *SpotHandler) AddImage(c *fiber.Ctx) error {
	id, err := spotID(c)
	if err != nil {
		return respondErr(c, err)
	}

	var req dto.SpotImageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondErr(c, err)
	}

	resp, err := h.spots.AddImage(principal.FromContext(c), id, &req)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *SpotHandler) DeleteImage(c *fiber.Ctx) error {
	id, perr := c.ParamsInt("imageId")
	if perr != nil || id < 1 {
		return respondErr(c, access.NotFound("Spot Image"))
	}

	if err := h.spots.DeleteImage(principal.FromContext(c), uint(id)); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Successfully deleted"})
}

// spotID parses the :spotId path param. Non-numeric ids behave like missing
// spots rather than malformed requests.
func spotID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("spotId")
	if err != nil || id < 1 {
		return 0, access.NotFound("Spot")
	}
	return uint(id), nil
}
