package dto_test

import (
	"testing"

	"bookclub/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDescribe_MissingFields(t *testing.T) {
	v := dto.NewValidator()

	err := v.Struct(dto.CreateBookRequest{Title: ptr("1984")})
	require.Error(t, err)
	assert.Equal(t, "Missing required fields: author, description, year_published", dto.Describe(err))
}

func TestDescribe_RatingOutOfRange(t *testing.T) {
	v := dto.NewValidator()

	err := v.Struct(dto.CreateReviewRequest{Rating: ptr(6), Comment: ptr("x"), BookID: ptr(uint(1))})
	require.Error(t, err)
	assert.Equal(t, "rating must be at most 5", dto.Describe(err))

	err = v.Struct(dto.UpdateReviewRequest{Rating: ptr(0)})
	require.Error(t, err)
	assert.Equal(t, "rating must be at least 1", dto.Describe(err))

	assert.NoError(t, v.Struct(dto.UpdateReviewRequest{}))
}

func TestDescribe_ZeroValuesArePresent(t *testing.T) {
	v := dto.NewValidator()

	// An explicit 0 or "" is still a provided field.
	err := v.Struct(dto.CreateBookRequest{
		Title: ptr("t"), Author: ptr("a"), YearPublished: ptr(0), Description: ptr(""),
	})
	assert.NoError(t, err)
}

func TestSignupRequest_Email(t *testing.T) {
	v := dto.NewValidator()

	err := v.Struct(dto.SignupRequest{Username: ptr("a"), Email: ptr("nope"), Password: ptr("pw1")})
	require.Error(t, err)
	assert.Equal(t, "email must be a valid email address", dto.Describe(err))
}
