package access

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounts struct {
	reviews int64
	images  int64
	err     error
}

func (f *fakeCounts) CountReviews(spotID, userID uint) (int64, error) {
	return f.reviews, f.err
}

func (f *fakeCounts) CountReviewImages(reviewID uint) (int64, error) {
	return f.images, f.err
}

func TestCanCreateReview_FirstReviewAllowed(t *testing.T) {
	t.Parallel()

	require.NoError(t, CanCreateReview(&fakeCounts{reviews: 0}, 2, 1))
}

func TestCanCreateReview_SecondReviewDenied(t *testing.T) {
	t.Parallel()

	err := CanCreateReview(&fakeCounts{reviews: 1}, 2, 1)
	require.Error(t, err)

	ae, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindDuplicateReview, ae.Kind)
	assert.Equal(t, "User already has a review for this spot", ae.Message)
}

func TestCanCreateReview_StoreError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	err := CanCreateReview(&fakeCounts{err: boom}, 2, 1)
	require.Error(t, err)

	ae, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindStoreFailure, ae.Kind)
	assert.ErrorIs(t, err, boom)
}

func TestCanAddReviewImage_UnderCap(t *testing.T) {
	t.Parallel()

	// the 10th image: nine already stored
	require.NoError(t, CanAddReviewImage(&fakeCounts{images: 9}, 4))
}

func TestCanAddReviewImage_AtCap(t *testing.T) {
	t.Parallel()

	// the 11th image: ten already stored
	err := CanAddReviewImage(&fakeCounts{images: 10}, 4)
	require.Error(t, err)

	ae, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindImageLimitReached, ae.Kind)
}

func TestCanAddReviewImage_OverCap(t *testing.T) {
	t.Parallel()

	err := CanAddReviewImage(&fakeCounts{images: 14}, 4)
	require.Error(t, err)

	ae, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindImageLimitReached, ae.Kind)
}
