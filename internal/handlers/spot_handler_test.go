package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanveksler/stayspot-backend/internal/access"
	"github.com/jordanveksler/stayspot-backend/internal/dto"
	"github.com/jordanveksler/stayspot-backend/internal/principal"
)

// stubSpots implements SpotService with per-test function fields.
type stubSpots struct {
	list        func(page, size int) (*dto.SpotsListResponse, error)
	listByOwner func(p *principal.Principal) ([]dto.SpotSummary, error)
	get         func(id uint) (*dto.SpotDetail, error)
	create      func(p *principal.Principal, req *dto.CreateSpotRequest) (*dto.SpotDetail, error)
	update      func(p *principal.Principal, id uint, req *dto.CreateSpotRequest) (*dto.SpotDetail, error)
	del         func(p *principal.Principal, id uint) error
	addImage    func(p *principal.Principal, spotID uint, req *dto.SpotImageRequest) (*dto.SpotImageResponse, error)
	deleteImage func(p *principal.Principal, imageID uint) error
}

func (s *stubSpots) List(page, size int) (*dto.SpotsListResponse, error) { return s.list(page, size) }
func (s *stubSpots) ListByOwner(p *principal.Principal) ([]dto.SpotSummary, error) {
	return s.listByOwner(p)
}
func (s *stubSpots) Get(id uint) (*dto.SpotDetail, error) { return s.get(id) }
func (s *stubSpots) Create(p *principal.Principal, req *dto.CreateSpotRequest) (*dto.SpotDetail, error) {
	return s.create(p, req)
}
func (s *stubSpots) Update(p *principal.Principal, id uint, req *dto.CreateSpotRequest) (*dto.SpotDetail, error) {
	return s.update(p, id, req)
}
func (s *stubSpots) Delete(p *principal.Principal, id uint) error { return s.del(p, id) }
func (s *stubSpots) AddImage(p *principal.Principal, spotID uint, req *dto.SpotImageRequest) (*dto.SpotImageResponse, error) {
	return s.addImage(p, spotID, req)
}
func (s *stubSpots) DeleteImage(p *principal.Principal, imageID uint) error {
	return s.deleteImage(p, imageID)
}

// asUser places a parsed token in locals the way the JWT middleware does.
func asUser(id uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": strconv.FormatUint(uint64(id), 10),
		})
		c.Locals("user", tok)
		return c.Next()
	}
}

func spotApp(svc SpotService, userID uint) *fiber.App {
	app := fiber.New()
	h := NewSpotHandler(svc)
	if userID != 0 {
		app.Use(asUser(userID))
	}
	app.Get("/api/spots", h.List)
	app.Get("/api/spots/:spotId", h.Get)
	app.Post("/api/spots", h.Create)
	app.Delete("/api/spots/:spotId", h.Delete)
	app.Post("/api/spots/:spotId/images", h.AddImage)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&parsed)
	return resp, parsed
}

func TestSpotList_InvalidPageParams(t *testing.T) {
	t.Parallel()

	app := spotApp(&stubSpots{}, 0)
	resp, body := doJSON(t, app, http.MethodGet, "/api/spots?page=-1&size=500", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errs := body["errors"].(map[string]interface{})
	assert.Equal(t, "Page must be greater than or equal to 1", errs["page"])
	assert.Equal(t, "Size must be between 1 and 100", errs["size"])
}

func TestSpotList_MalformedPageParams(t *testing.T) {
	t.Parallel()

	app := spotApp(&stubSpots{}, 0)

	resp, body := doJSON(t, app, http.MethodGet, "/api/spots?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errs := body["errors"].(map[string]interface{})
	assert.Equal(t, "Page must be greater than or equal to 1", errs["page"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/spots?page=0&size=0", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errs = body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "page")
	assert.Contains(t, errs, "size")
}

func TestSpotList_DefaultsApplied(t *testing.T) {
	t.Parallel()

	var gotPage, gotSize int
	svc := &stubSpots{
		list: func(page, size int) (*dto.SpotsListResponse, error) {
			gotPage, gotSize = page, size
			return &dto.SpotsListResponse{Spots: []dto.SpotSummary{}, Page: page, Size: size}, nil
		},
	}
	app := spotApp(svc, 0)
	resp, _ := doJSON(t, app, http.MethodGet, "/api/spots", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 20, gotSize)
}

func TestSpotGet_NotFound(t *testing.T) {
	t.Parallel()

	svc := &stubSpots{
		get: func(id uint) (*dto.SpotDetail, error) { return nil, access.NotFound("Spot") },
	}
	app := spotApp(svc, 0)
	resp, body := doJSON(t, app, http.MethodGet, "/api/spots/99", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Spot couldn't be found", body["message"])
}

func TestSpotGet_NonNumericIDBehavesLikeMissing(t *testing.T) {
	t.Parallel()

	app := spotApp(&stubSpots{}, 0)
	resp, body := doJSON(t, app, http.MethodGet, "/api/spots/abc", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Spot couldn't be found", body["message"])
}

func TestSpotCreate_ValidationFailuresCollected(t *testing.T) {
	t.Parallel()

	called := false
	svc := &stubSpots{
		create: func(p *principal.Principal, req *dto.CreateSpotRequest) (*dto.SpotDetail, error) {
			called = true
			return nil, nil
		},
	}
	app := spotApp(svc, 1)
	resp, body := doJSON(t, app, http.MethodPost, "/api/spots", `{"name":"Ocean View"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, called, "service must not run on invalid input")
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "address")
	assert.Contains(t, errs, "city")
	assert.Contains(t, errs, "price")
}

// User 2 tries to delete user 1's spot, then the owner deletes it, then the
// spot is gone.
func TestSpotDelete_OwnershipScenario(t *testing.T) {
	t.Parallel()

	const ownerID = 1
	deleted := false

	svc := &stubSpots{
		del: func(p *principal.Principal, id uint) error {
			if deleted {
				return access.NotFound("Spot")
			}
			if p == nil {
				return access.Unauthenticated()
			}
			if p.ID != ownerID {
				return access.NotOwner()
			}
			deleted = true
			return nil
		},
		get: func(id uint) (*dto.SpotDetail, error) {
			if deleted {
				return nil, access.NotFound("Spot")
			}
			return &dto.SpotDetail{ID: id, OwnerID: ownerID, Name: "Ocean View", Price: 150.00}, nil
		},
	}

	intruder := spotApp(svc, 2)
	resp, body := doJSON(t, intruder, http.MethodDelete, "/api/spots/10", "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Forbidden", body["message"])

	owner := spotApp(svc, ownerID)
	resp, body = doJSON(t, owner, http.MethodDelete, "/api/spots/10", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Successfully deleted", body["message"])

	resp, body = doJSON(t, owner, http.MethodGet, "/api/spots/10", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Spot couldn't be found", body["message"])
}

func TestSpotAddImage_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := &stubSpots{
		addImage: func(p *principal.Principal, spotID uint, req *dto.SpotImageRequest) (*dto.SpotImageResponse, error) {
			return nil, access.Unauthenticated()
		},
	}
	app := spotApp(svc, 0)
	resp, _ := doJSON(t, app, http.MethodPost, "/api/spots/10/images", `{"url":"https://img.example.com/a.jpg"}`)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSpotAddImage_Created(t *testing.T) {
	t.Parallel()

	svc := &stubSpots{
		addImage: func(p *principal.Principal, spotID uint, req *dto.SpotImageRequest) (*dto.SpotImageResponse, error) {
			require.NotNil(t, p)
			assert.Equal(t, uint(1), p.ID)
			return &dto.SpotImageResponse{ID: 4, URL: req.URL, Preview: req.Preview}, nil
		},
	}
	app := spotApp(svc, 1)
	resp, body := doJSON(t, app, http.MethodPost, "/api/spots/10/images",
		`{"url":"https://img.example.com/a.jpg","preview":true}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "https://img.example.com/a.jpg", body["url"])
	assert.Equal(t, true, body["preview"])
}
