package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanveksler/stayspot-backend/internal/access"
	"github.com/jordanveksler/stayspot-backend/internal/dto"
)

func f64(v float64) *float64 { return &v }

func validationErr(t *testing.T, err error) *access.Error {
	t.Helper()
	require.Error(t, err)
	ae, ok := err.(*access.Error)
	require.True(t, ok)
	require.Equal(t, access.KindValidationFailed, ae.Kind)
	return ae
}

func TestStruct_ValidSpot(t *testing.T) {
	t.Parallel()

	req := dto.CreateSpotRequest{
		Address:     "123 Shore Dr",
		City:        "Santa Cruz",
		State:       "CA",
		Country:     "USA",
		Lat:         f64(36.96),
		Lng:         f64(-122.02),
		Name:        "Ocean View",
		Description: "A quiet place by the water",
		Price:       150.00,
	}
	require.NoError(t, Struct(&req))
}

// Every failing field must land in one response; the validator must not stop
// at the first.
func TestStruct_CollectsAllFields(t *testing.T) {
	t.Parallel()

	req := dto.CreateSpotRequest{
		Lat: f64(91),
		Lng: f64(-190.5),
	}
	ae := validationErr(t, Struct(&req))

	assert.Equal(t, "Street address is required", ae.Fields["address"])
	assert.Equal(t, "City is required", ae.Fields["city"])
	assert.Equal(t, "State is required", ae.Fields["state"])
	assert.Equal(t, "Country is required", ae.Fields["country"])
	assert.Equal(t, "Latitude must be within -90 and 90", ae.Fields["lat"])
	assert.Equal(t, "Longitude must be within -180 and 180", ae.Fields["lng"])
	assert.Equal(t, "Description is required", ae.Fields["description"])
	assert.Equal(t, "Price per day must be a positive number", ae.Fields["price"])
}

func TestStruct_SpotWithoutCoordinates(t *testing.T) {
	t.Parallel()

	// lat/lng are nullable; omitting both is valid
	req := dto.CreateSpotRequest{
		Address:     "123 Shore Dr",
		City:        "Santa Cruz",
		State:       "CA",
		Country:     "USA",
		Name:        "Ocean View",
		Description: "A quiet place by the water",
		Price:       150.00,
	}
	require.NoError(t, Struct(&req))
}

func TestStruct_ReviewBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		req   dto.CreateReviewRequest
		field string
	}{
		{"missing text", dto.CreateReviewRequest{Stars: 3}, "review"},
		{"zero stars", dto.CreateReviewRequest{Review: "ok"}, "stars"},
		{"six stars", dto.CreateReviewRequest{Review: "ok", Stars: 6}, "stars"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ae := validationErr(t, Struct(&tc.req))
			assert.Contains(t, ae.Fields, tc.field)
		})
	}

	require.NoError(t, Struct(&dto.CreateReviewRequest{Review: "Great place!", Stars: 5}))
}

func TestStruct_UsernameCannotBeEmail(t *testing.T) {
	t.Parallel()

	req := dto.RegisterRequest{
		Username:  "user@example.com",
		Email:     "user@example.com",
		FirstName: "Sam",
		LastName:  "Hart",
		Password:  "hunter22",
	}
	ae := validationErr(t, Struct(&req))
	assert.Equal(t, "Username cannot be an email", ae.Fields["username"])
}

func TestStruct_ImageURL(t *testing.T) {
	t.Parallel()

	ae := validationErr(t, Struct(&dto.SpotImageRequest{URL: "not a url"}))
	assert.Equal(t, "Image url must be a valid URL", ae.Fields["url"])

	require.NoError(t, Struct(&dto.SpotImageRequest{URL: "https://img.example.com/a.jpg", Preview: true}))
}

func TestListQuery_DefaultsWhenAbsent(t *testing.T) {
	t.Parallel()

	page, size, err := ListQuery("", "")
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)
}

func TestListQuery_OutOfRange(t *testing.T) {
	t.Parallel()

	_, _, err := ListQuery("-1", "500")
	require.Error(t, err)

	ae, ok := err.(*access.Error)
	require.True(t, ok)
	assert.Equal(t, access.KindValidationFailed, ae.Kind)
	assert.Equal(t, "Page must be greater than or equal to 1", ae.Fields["page"])
	assert.Equal(t, "Size must be between 1 and 100", ae.Fields["size"])
}

// A present-but-invalid parameter is a client error, never a silent default.
func TestListQuery_InvalidValuesAreNotDefaulted(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		page, size string
		field      string
	}{
		{"non-numeric page", "abc", "", "page"},
		{"zero page", "0", "", "page"},
		{"non-numeric size", "", "lots", "size"},
		{"zero size", "", "0", "size"},
		{"float page", "1.5", "", "page"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := ListQuery(tc.page, tc.size)
			require.Error(t, err)
			ae, ok := err.(*access.Error)
			require.True(t, ok)
			assert.Contains(t, ae.Fields, tc.field)
		})
	}
}
