package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageDataURIRule(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"jpeg", "data:image/jpeg;base64,aGVsbG8=", true},
		{"png", "data:image/png;base64,iVBORw0KGgo=", true},
		{"not an image", "data:text/plain;base64,aGVsbG8=", false},
		{"plain url", "https://example.com/food.jpg", false},
		{"broken base64", "data:image/jpeg;base64,%%%", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "image_datauri")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestInitValidator(t *testing.T) {
	InitValidator()
	assert.NotNil(t, Validate)
	assert.NoError(t, Validate.Var("data:image/webp;base64,aGVsbG8=", "image_datauri"))
}
