package validation_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"go-jobmatch-backend/pkg/validation"
)

type namedInput struct {
	Name string `validate:"required,valid_name"`
	Bio  string `validate:"no_emoji"`
}

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	t.Run("accepts ordinary names", func(t *testing.T) {
		assert.NoError(t, v.Struct(namedInput{Name: "Maria O'Connor-Smith"}))
	})

	t.Run("rejects control symbols in names", func(t *testing.T) {
		assert.Error(t, v.Struct(namedInput{Name: "drop<script>"}))
	})

	t.Run("rejects emoji in bio", func(t *testing.T) {
		err := v.Struct(namedInput{Name: "Maria", Bio: "backend dev \U0001F680"})
		assert.Error(t, err)

		msgs := validation.FormatValidationErrors(err)
		assert.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "Bio")
	})
}

func TestFormatValidationErrors(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	profile := struct {
		Skills          []string `validate:"required,min=1"`
		ExperienceYears float64  `validate:"gte=0"`
	}{ExperienceYears: -2}

	msgs := validation.FormatValidationErrors(v.Struct(profile))
	assert.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "Skills")
	assert.Contains(t, msgs[1], "Years of experience")
}
