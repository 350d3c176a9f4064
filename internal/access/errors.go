// Package access is the resource access and consistency layer shared by every
// mutating endpoint: ownership checks, the one-review-per-spot and ten-images-
// per-review rules, and the typed error kinds the HTTP layer maps to statuses.
package access

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind is a stable machine-checkable denial category.
type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindUnauthenticated   Kind = "unauthenticated"
	KindNotOwner          Kind = "not_owner"
	KindDuplicateReview   Kind = "duplicate_review"
	KindImageLimitReached Kind = "image_limit_reached"
	KindValidationFailed  Kind = "validation_failed"
	KindStoreFailure      Kind = "store_failure"
)

// Error carries a kind plus a human-readable message. Validation failures
// additionally enumerate every failing field.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// HTTPStatus maps the kind to the status the routing layer must emit.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindUnauthenticated:
		return fiber.StatusUnauthorized
	case KindNotOwner, KindDuplicateReview, KindImageLimitReached:
		return fiber.StatusForbidden
	case KindValidationFailed:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " couldn't be found"}
}

func Unauthenticated() *Error {
	return &Error{Kind: KindUnauthenticated, Message: "Authentication required"}
}

func NotOwner() *Error {
	return &Error{Kind: KindNotOwner, Message: "Forbidden"}
}

func DuplicateReview() *Error {
	return &Error{Kind: KindDuplicateReview, Message: "User already has a review for this spot"}
}

func ImageLimitReached() *Error {
	return &Error{Kind: KindImageLimitReached, Message: "Maximum number of images for this resource was reached"}
}

func ValidationFailed(fields map[string]string) *Error {
	return &Error{Kind: KindValidationFailed, Message: "Bad Request", Fields: fields}
}

// StoreFailure wraps an unexpected persistence error. The message shown to
// callers stays generic; the cause is for logs only.
func StoreFailure(err error) *Error {
	return &Error{Kind: KindStoreFailure, Message: "Internal server error", cause: err}
}
