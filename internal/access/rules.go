package access

// MaxReviewImages caps the photos attached to a single review.
const MaxReviewImages = 10

// ReviewCounter reports how many reviews a user has left on a spot.
type ReviewCounter interface {
	CountReviews(spotID, userID uint) (int64, error)
}

// ImageCounter reports how many images a review carries.
type ImageCounter interface {
	CountReviewImages(reviewID uint) (int64, error)
}

// CanCreateReview denies a second review by the same user on the same spot.
// This is a fast path; the store's composite unique index on
// (spot_id, user_id) is what actually closes the concurrent-submit race, and
// a unique violation from the insert is converted to the same DuplicateReview
// error by the caller.
func CanCreateReview(store ReviewCounter, userID, spotID uint) error {
	n, err := store.CountReviews(spotID, userID)
	if err != nil {
		return StoreFailure(err)
	}
	if n > 0 {
		return DuplicateReview()
	}
	return nil
}

// CanAddReviewImage denies the image that would take a review past the cap.
func CanAddReviewImage(store ImageCounter, reviewID uint) error {
	n, err := store.CountReviewImages(reviewID)
	if err != nil {
		return StoreFailure(err)
	}
	if n >= MaxReviewImages {
		return ImageLimitReached()
	}
	return nil
}
