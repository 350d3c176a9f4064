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

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CountReviews implements access.ReviewCounter.
func (s *ReviewService) CountReviews(spotID, userID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.Review{}).
		Where("spot_id = ? AND user_id = ?", spotID, userID).
		Count(&n).Error
	return n, err
}

// CountReviewImages implements access.ImageCounter.
func (s *ReviewService) CountReviewImages(reviewID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.ReviewImage{}).
		Where("review_id = ?", reviewID).
		Count(&n).Error
	return n, err
}

// ListForSpot returns all reviews on a spot, reviewer and images included.
func (s *ReviewService) ListForSpot(spotID uint) (*dto.ReviewsListResponse, error) {
	var spot models.Spot
	err := s.db.First(&spot, spotID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, access.NotFound("Spot")
	}
	if err != nil {
		return nil, access.StoreFailure(err)
	}

	var reviews []models.Review
	err = s.db.Preload("User").Preload("ReviewImages").
		Where("spot_id = ?", spotID).
		Order("id").
		Find(&reviews).Error
	if err != nil {
		return nil, access.StoreFailure(err)
	}

	return s.project(reviews, nil, false), nil
}

// ListForUser returns the caller's reviews with the parent spot summary
// attached, for the "manage my reviews" page.
func (s *ReviewService) ListForUser(p *principal.Principal) (*dto.ReviewsListResponse, error) {
	if err := access.RequireAuthenticated(p); err != nil {
		return nil, err
	}

	var reviews []models.Review
	err := s.db.Preload("User").Preload("ReviewImages").
		Preload("Spot").Preload("Spot.SpotImages").
		Where("user_id = ?", p.ID).
		Order("id").
		Find(&reviews).Error
	if err != nil {
		return nil, access.StoreFailure(err)
	}

	avgs, err := s.spotAverages(reviews)
	if err != nil {
		return nil, err
	}
	return s.project(reviews, avgs, true), nil
}

// Create posts a review on a spot. The duplicate check is a fast path; the
// unique index on (spot_id, user_id) decides concurrent submissions, and its
// violation is reported as the same denial.
func (s *ReviewService) Create(p *principal.Principal, spotID uint, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	var spot models.Spot
	err := s.db.First(&spot, spotID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, access.NotFound("Spot")
	}
	if err != nil {
		return nil, access.StoreFailure(err)
	}

	if err := access.RequireAuthenticated(p); err != nil {
		return nil, err
	}
	if err := access.CanCreateReview(s, p.ID, spotID); err != nil {
		return nil, err
	}

	review := models.Review{
		SpotID: spotID,
		UserID: p.ID,
		Review: req.Review,
		Stars:  req.Stars,
	}
	if err := s.db.Create(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, access.DuplicateReview()
		}
		return nil, access.StoreFailure(err)
	}

	return s.reload(review.ID)
}

func (s *ReviewService) Update(p *principal.Principal, reviewID uint, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.fetchReview(reviewID)
	if err != nil {
		return nil, err
	}
	if err := access.AuthorizeOwner(p, review); err != nil {
		return nil, err
	}

	review.Review = req.Review
	review.Stars = req.Stars
	if err := s.db.Save(review).Error; err != nil {
		return nil, access.StoreFailure(err)
	}

	return s.reload(review.ID)
}

// Delete removes the review; the FK cascade takes its images with it.
func (s *ReviewService) Delete(p *principal.Principal, reviewID uint) error {
	review, err := s.fetchReview(reviewID)
	if err != nil {
		return err
	}
	if err := access.AuthorizeOwner(p, review); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(review).Error; err != nil {
			return access.StoreFailure(err)
		}
		return nil
	})
}

func (s *ReviewService) AddImage(p *principal.Principal, reviewID uint, req *dto.ReviewImageRequest) (*dto.ReviewImageResponse, error) {
	review, err := s.fetchReview(reviewID)
	if err != nil {
		return nil, err
	}
	if err := access.AuthorizeOwner(p, review); err != nil {
		return nil, err
	}
	if err := access.CanAddReviewImage(s, reviewID); err != nil {
		return nil, err
	}

	img := models.ReviewImage{
		ReviewID: reviewID,
		URL:      req.URL,
		Preview:  req.Preview,
	}
	if err := s.db.Create(&img).Error; err != nil {
		return nil, access.StoreFailure(err)
	}

	return &dto.ReviewImageResponse{ID: img.ID, URL: img.URL}, nil
}

// DeleteImage removes a review image; only the review's author may do so.
func (s *ReviewService) DeleteImage(p *principal.Principal, imageID uint) error {
	var img models.ReviewImage
	err := s.db.First(&img, imageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return access.NotFound("Review Image")
	}
	if err != nil {
		return access.StoreFailure(err)
	}

	review, err := s.fetchReview(img.ReviewID)
	if err != nil {
		return err
	}
	if err := access.AuthorizeOwner(p, review); err != nil {
		return err
	}

	if err := s.db.Delete(&img).Error; err != nil {
		return access.StoreFailure(err)
	}
	return nil
}

func (s *ReviewService) fetchReview(id uint) (*models.Review, error) {
	var review models.Review
	err := s.db.First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, access.NotFound("Review")
	}
	if err != nil {
		return nil, access.StoreFailure(err)
	}
	return &review, nil
}

func (s *ReviewService) reload(id uint) (*dto.ReviewResponse, error) {
	var review models.Review
	err := s.db.Preload("User").Preload("ReviewImages").First(&review, id).Error
	if err != nil {
		return nil, access.StoreFailure(err)
	}
	resp := projection.Review(&review, nil, false)
	return &resp, nil
}

// spotAverages resolves the review average for every distinct parent spot in
// one grouped query, so the nested spot summaries never show the "no reviews
// yet" null for a spot that plainly has one.
func (s *ReviewService) spotAverages(reviews []models.Review) (map[uint]*float64, error) {
	if len(reviews) == 0 {
		return nil, nil
	}

	seen := make(map[uint]struct{}, len(reviews))
	ids := make([]uint, 0, len(reviews))
	for i := range reviews {
		if _, ok := seen[reviews[i].SpotID]; ok {
			continue
		}
		seen[reviews[i].SpotID] = struct{}{}
		ids = append(ids, reviews[i].SpotID)
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

	avgs := make(map[uint]*float64, len(rows))
	for i := range rows {
		avgs[rows[i].SpotID] = &rows[i].Avg
	}
	return avgs, nil
}

func (s *ReviewService) project(reviews []models.Review, avgs map[uint]*float64, includeSpot bool) *dto.ReviewsListResponse {
	out := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, projection.Review(&reviews[i], avgs[reviews[i].SpotID], includeSpot))
	}
	return &dto.ReviewsListResponse{Reviews: out}
}
