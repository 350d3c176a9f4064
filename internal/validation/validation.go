// Package validation runs struct-tag validation over request bodies and
// collects every failing field into one ValidationFailed error, rather than
// failing fast on the first.
package validation

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jordanveksler/stayspot-backend/internal/access"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json name so error maps match the wire shape.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Usernames must not look like an email address.
	_ = v.RegisterValidation("notemail", func(fl validator.FieldLevel) bool {
		return !strings.Contains(fl.Field().String(), "@")
	})

	return v
}

// messages maps "field.tag" to the user-facing message. Anything not listed
// falls back to a generic per-field message.
var messages = map[string]string{
	"username.min":      "Username must be between 4 and 30 characters",
	"username.max":      "Username must be between 4 and 30 characters",
	"username.notemail": "Username cannot be an email",
	"email.email":       "Invalid email",
	"password.min":      "Password must be 6 characters or more",
	"address.required":  "Street address is required",
	"city.required":     "City is required",
	"state.required":    "State is required",
	"country.required":  "Country is required",
	"lat.gte":           "Latitude must be within -90 and 90",
	"lat.lte":           "Latitude must be within -90 and 90",
	"lng.gte":           "Longitude must be within -180 and 180",
	"lng.lte":           "Longitude must be within -180 and 180",
	"name.max":          "Name must be less than 50 characters",
	"description.required": "Description is required",
	"price.required":    "Price per day must be a positive number",
	"price.gt":          "Price per day must be a positive number",
	"review.required":   "Review text is required",
	"review.max":        "Review text must be less than 500 characters",
	"stars.required":    "Stars must be an integer from 1 to 5",
	"stars.gte":         "Stars must be an integer from 1 to 5",
	"stars.lte":         "Stars must be an integer from 1 to 5",
	"url.required":      "Image url is required",
	"url.url":           "Image url must be a valid URL",
}

// Struct validates req and returns a ValidationFailed error enumerating every
// failing field, or nil.
func Struct(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return access.StoreFailure(err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			fields[fe.Field()] = msg
		} else {
			fields[fe.Field()] = fe.Field() + " is invalid"
		}
	}
	return access.ValidationFailed(fields)
}

// ListQuery validates the raw page/size query parameters shared by listing
// endpoints. Absent parameters take the defaults; present ones must parse as
// integers in range, so ?page=abc and ?page=0 are rejected rather than
// silently defaulted.
func ListQuery(pageRaw, sizeRaw string) (int, int, error) {
	fields := map[string]string{}
	page, size := 1, 20

	if pageRaw != "" {
		n, err := strconv.Atoi(pageRaw)
		if err != nil || n < 1 {
			fields["page"] = "Page must be greater than or equal to 1"
		} else {
			page = n
		}
	}
	if sizeRaw != "" {
		n, err := strconv.Atoi(sizeRaw)
		if err != nil || n < 1 || n > 100 {
			fields["size"] = "Size must be between 1 and 100"
		} else {
			size = n
		}
	}

	if len(fields) > 0 {
		return 0, 0, access.ValidationFailed(fields)
	}
	return page, size, nil
}
