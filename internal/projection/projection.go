// Package projection shapes stored rows into the external response contract.
// Every read path goes through here so the field trimming (no password hash,
// no email on other users' profiles) and the aggregate conventions (null
// rating when unreviewed, lowest-id preview tie-break) live in one place.
package projection

import (
	"math"

	"github.com/jordanveksler/stayspot-backend/internal/dto"
	"github.com/jordanveksler/stayspot-backend/internal/models"
)

// Aggregates holds the computed read-side fields for a spot. Avg is nil when
// the spot has no reviews; it must never collapse to zero, which would be
// indistinguishable from a real low score.
type Aggregates struct {
	Avg        *float64
	NumReviews int64
}

// RoundRating rounds to one decimal for the listing-card shape, preserving
// nil.
func RoundRating(avg *float64) *float64 {
	if avg == nil {
		return nil
	}
	r := math.Round(*avg*10) / 10
	return &r
}

// RoundStarRating rounds to two decimals for the detail shape, preserving
// nil.
func RoundStarRating(avg *float64) *float64 {
	if avg == nil {
		return nil
	}
	r := math.Round(*avg*100) / 100
	return &r
}

// PreviewURL picks the URL of the image flagged preview with the lowest id,
// nil when none is flagged. The schema does not enforce at most one preview,
// so the tie-break keeps the choice deterministic.
func PreviewURL(images []models.SpotImage) *string {
	var best *models.SpotImage
	for i := range images {
		img := &images[i]
		if !img.Preview {
			continue
		}
		if best == nil || img.ID < best.ID {
			best = img
		}
	}
	if best == nil {
		return nil
	}
	return &best.URL
}

// PublicUser trims a user to the shape nested in spot and review responses.
func PublicUser(u *models.User) dto.UserPublic {
	return dto.UserPublic{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// SelfUser is the full-profile view, only for the user themself.
func SelfUser(u *models.User) dto.UserSelf {
	return dto.UserSelf{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// SpotDetail projects a spot with its eager-loaded owner and images plus
// aggregates.
func SpotDetail(s *models.Spot, agg Aggregates) dto.SpotDetail {
	images := make([]dto.SpotImageResponse, 0, len(s.SpotImages))
	for _, img := range s.SpotImages {
		images = append(images, dto.SpotImageResponse{
			ID:      img.ID,
			URL:     img.URL,
			Preview: img.Preview,
		})
	}

	return dto.SpotDetail{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		Address:       s.Address,
		City:          s.City,
		State:         s.State,
		Country:       s.Country,
		Lat:           s.Lat,
		Lng:           s.Lng,
		Name:          s.Name,
		Description:   s.Description,
		Price:         s.Price,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		NumReviews:    agg.NumReviews,
		AvgStarRating: RoundStarRating(agg.Avg),
		SpotImages:    images,
		Owner:         PublicUser(&s.Owner),
	}
}

// SpotSummary projects a spot into the listing-card shape. The full image set
// is deliberately not exposed here.
func SpotSummary(s *models.Spot, avg *float64) dto.SpotSummary {
	return dto.SpotSummary{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Address:      s.Address,
		City:         s.City,
		State:        s.State,
		Country:      s.Country,
		Lat:          s.Lat,
		Lng:          s.Lng,
		Name:         s.Name,
		Description:  s.Description,
		Price:        s.Price,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		AvgRating:    RoundRating(avg),
		PreviewImage: PreviewURL(s.SpotImages),
	}
}

// Review projects a review with its reviewer and images. includeSpot adds the
// parent spot summary, used on the current-user listing; spotAvg is that
// spot's own review average, which is never nil there since the review being
// projected counts toward it.
func Review(r *models.Review, spotAvg *float64, includeSpot bool) dto.ReviewResponse {
	images := make([]dto.ReviewImageResponse, 0, len(r.ReviewImages))
	for _, img := range r.ReviewImages {
		images = append(images, dto.ReviewImageResponse{ID: img.ID, URL: img.URL})
	}

	resp := dto.ReviewResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		SpotID:       r.SpotID,
		Review:       r.Review,
		Stars:        r.Stars,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		User:         PublicUser(&r.User),
		ReviewImages: images,
	}

	if includeSpot {
		spot := SpotSummary(&r.Spot, spotAvg)
		resp.Spot = &spot
	}
	return resp
}
