package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jordanveksler/stayspot-backend/internal/access"
	"github.com/jordanveksler/stayspot-backend/internal/dto"
	"github.com/jordanveksler/stayspot-backend/internal/models"
	"github.com/jordanveksler/stayspot-backend/internal/principal"
	"github.com/jordanveksler/stayspot-backend/internal/projection"
)

type SpotService struct {
	db *gorm.DB
}

func NewSpotService(db *gorm.DB) *SpotService {
	return &SpotService{db: db}
}

// List returns the paginated listing-card view of all spots.
func (s *SpotService) List(page, size int) (*dto.SpotsListResponse, error) {
	var spots []models.Spot
	err := s.db.Preload("SpotImages").
		Order("id").
		Limit(size).
		Offset((page - 1) * size).
		Find(&spots).Error
	if err != nil {
		return nil, access.StoreFailure(err)
	}

	summaries, err := s.summarize(spots)
	if err != nil {
		return nil, err
	}
	return &dto.SpotsListResponse{Spots: summaries, Page: page, Size: size}, nil
}

// ListByOwner returns the caller's own spots in the listing-card shape.
func (s *SpotService) ListByOwner(p *principal.Principal) ([]dto.SpotSummary, error) {
	if err := access.RequireAuthenticated(p); err != nil {
		return nil, err
	}

	var spots []models.Spot
	err := s.db.Preload("SpotImages").
		Where("owner_id = ?", p.ID).
		Order("id").
		Find(&spots).Error
	if err != nil {
		return nil, access.StoreFailure(err)
	}

	return s.summarize(spots)
}

// Get returns the detail view with owner, images and aggregates.
func (s *SpotService) Get(id uint) (*dto.SpotDetail, error) {
	var spot models.Spot
	err := s.db.Preload("Owner").Preload("SpotImages").First(&spot, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, access.NotFound("Spot")
	}
	if err != nil {
		return nil, access.StoreFailure(err)
	}

	agg, err := s.aggregates(id)
	if err != nil {
		return nil, err
	}

	detail := projection.SpotDetail(&spot, agg)
	return &detail, nil
}

func (s *SpotService) Create(p *principal.Principal, req *dto.CreateSpotRequest) (*dto.SpotDetail, error) {
	if err := access.RequireAuthenticated(p); err != nil {
		return nil, err
	}

	spot := models.Spot{
		OwnerID:     p.ID,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := s.db.Create(&spot).Error; err != nil {
		return nil, access.StoreFailure(err)
	}

	return s.Get(spot.ID)
}

func (s *SpotService) Update(p *principal.Principal, id uint, req *dto.CreateSpotRequest) (*dto.SpotDetail, error) {
	spot, err := s.fetchSpot(id)
	if err != nil {
		return nil, err
	}
	if err := access.AuthorizeOwner(p, spot); err != nil {
		return nil, err
	}

	spot.Address = req.Address
	spot.City = req.City
	spot.State = req.State
	spot.Country = req.Country
	spot.Lat = req.Lat
	spot.Lng = req.Lng
	spot.Name = req.Name
	spot.Description = req.Description
	spot.Price = req.Price

	if err := s.db.Save(spot).Error; err != nil {
		return nil, access.StoreFailure(err)
	}

	return s.Get(spot.ID)
}

// Delete removes the spot; the FK cascades remove its images, reviews and
// review images in the same transaction.
func (s *SpotService) Delete(p *principal.Principal, id uint) error {
	spot, err := s.fetchSpot(id)
	if err != nil {
		return err
	}
	if err := access.AuthorizeOwner(p, spot); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(spot).Error; err != nil {
			return access.StoreFailure(err)
		}
		return nil
	})
}

func (s *SpotService) AddImage(p *principal.Principal, spotID uint, req *dto.SpotImageRequest) (*dto.SpotImageResponse, error) {
	spot, err := s.fetchSpot(spotID)
	if err != nil {
		return nil, err
	}
	if err := access.AuthorizeOwner(p, spot); err != nil {
		return nil, err
	}

	img := models.SpotImage{
		SpotID:  spotID,
		URL:     req.URL,
		Preview: req.Preview,
	}
	if err := s.db.Create(&img).Error; err != nil {
		return nil, access.StoreFailure(err)
	}

	return &dto.SpotImageResponse{ID: img.ID, URL: img.URL, Preview: img.Preview}, nil
}

// DeleteImage removes a spot image; only the spot's owner may do so.
func (s *SpotService) DeleteImage(p *principal.Principal, imageID uint) error {
	var img models.SpotImage
	err := s.db.First(&img, imageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return access.NotFound("Spot Image")
	}
	if err != nil {
		return access.StoreFailure(err)
	}

	spot, err := s.fetchSpot(img.SpotID)
	if err != nil {
		return err
	}
	if err := access.AuthorizeOwner(p, spot); err != nil {
		return err
	}

	if err := s.db.Delete(&img).Error; err != nil {
		return access.StoreFailure(err)
	}
	return nil
}

func (s *SpotService) fetchSpot(id uint) (*models.Spot, error) {
	var spot models.Spot
	err := s.db.First(&spot, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, access.NotFound("Spot")
	}
	if err != nil {
		return nil, access.StoreFailure(err)
	}
	return &spot, nil
}

// aggregates computes the review count and average stars for a spot in one
// query. AVG over zero rows scans as nil, which is exactly the "no rating
// yet" sentinel the response contract requires.
func (s *SpotService) aggregates(spotID uint) (projection.Aggregates, error) {
	var row struct {
		Avg   *float64
		Total int64
	}
	err := s.db.Model(&models.Review{}).
		Select("AVG(stars) AS avg, COUNT(*) AS total").
		Where("spot_id = ?", spotID).
		Scan(&row).Error
	if err != nil {
		return projection.Aggregates{}, access.StoreFailure(err)
	}
	return projection.Aggregates{Avg: row.Avg, NumReviews: row.Total}, nil
}

// summarize projects spots to listing cards, resolving per-spot averages with
// a single grouped query.
func (s *SpotService) summarize(spots []models.Spot) ([]dto.SpotSummary, error) {
	summaries := make([]dto.SpotSummary, 0, len(spots))
	if len(spots) == 0 {
		return summaries, nil
	}

	ids := make([]uint, 0, len(spots))
	for _, spot := range spots {
		ids = append(ids, spot.ID)
	}

	var rows []struct {
		SpotID uint
		Avg    float64
	}
	err := s.db.Model(&models.Review{}).
		Select("spot_id, AVG(stars) AS avg").
		Where("spot_id IN ?", ids).
		Group("spot_id").
		Scan(&rows).Error
	if err != nil {
		return nil, access.StoreFailure(err)
	}

	avgBySpot := make(map[uint]*float64, len(rows))
	for i := range rows {
		avgBySpot[rows[i].SpotID] = &rows[i].Avg
	}

	for i := range spots {
		summaries = append(summaries, projection.SpotSummary(&spots[i], avgBySpot[spots[i].ID]))
	}
	return summaries, nil
}
