package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jordanveksler/stayspot-backend/internal/access"
	"github.com/jordanveksler/stayspot-backend/internal/dto"
	"github.com/jordanveksler/stayspot-backend/internal/principal"
	"github.com/jordanveksler/stayspot-backend/internal/validation"
)

// ReviewService is the slice of the review service the handler consumes.
type ReviewService interface {
	ListForSpot(spotID uint) (*dto.ReviewsListResponse, error)
	ListForUser(p *principal.Principal) (*dto.ReviewsListResponse, error)
	Create(p *principal.Principal, spotID uint, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	Update(p *principal.Principal, reviewID uint, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	Delete(p *principal.Principal, reviewID uint) error
	AddImage(p *principal.Principal, reviewID uint, req *dto.ReviewImageRequest) (*dto.ReviewImageResponse, error)
	DeleteImage(p *principal.Principal, imageID uint) error
}

type ReviewHandler struct {
	reviews ReviewService
}

func NewReviewHandler(reviews ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) ListForSpot(c *fiber.Ctx) error {
	id, err := spotID(c)
	if err != nil {
		return respondErr(c, err)
	}

	resp, err := h.reviews.ListForSpot(id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(resp)
}

func (h *ReviewHandler) ListCurrent(c *fiber.Ctx) error {
	resp, err := h.reviews.ListForUser(principal.FromContext(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(resp)
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	id, err := spotID(c)
	if err != nil {
		return respondErr(c, err)
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondErr(c, err)
	}

	resp, err := h.reviews.Create(principal.FromContext(c), id, &req)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	id, err := reviewID(c)
	if err != nil {
		return respondErr(c, err)
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondErr(c, err)
	}

	resp, err := h.reviews.Update(principal.FromContext(c), id, &req)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(resp)
}

func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := reviewID(c)
	if err != nil {
		return respondErr(c, err)
	}

	if err := h.reviews.Delete(principal.FromContext(c), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Successfully deleted"})
}

func (h *ReviewHandler) AddImage(c *fiber.Ctx) error {
	id, err := reviewID(c)
	if err != nil {
		return respondErr(c, err)
	}

	var req dto.ReviewImageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respondErr(c, err)
	}

	resp, err := h.reviews.AddImage(principal.FromContext(c), id, &req)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ReviewHandler) DeleteImage(c *fiber.Ctx) error {
	id, perr := c.ParamsInt("imageId")
	if perr != nil || id < 1 {
		return respondErr(c, access.NotFound("Review Image"))
	}

	if err := h.reviews.DeleteImage(principal.FromContext(c), uint(id)); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Successfully deleted"})
}

func reviewID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("reviewId")
	if err != nil || id < 1 {
		return 0, access.NotFound("Review")
	}
	return uint(id), nil
}
