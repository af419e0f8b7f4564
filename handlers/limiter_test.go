package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStaticAsset(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{path: "/js/site.js", expected: true},
		{path: "/css/site.css", expected: true},
		{path: "/images/icons/heart.svg", expected: true},
		{path: "/favicon.png", expected: true},
		{path: "/", expected: false},
		{path: "/health", expected: false},
		{path: "/api/contact", expected: false},
		{path: "/jsx", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsStaticAsset(tt.path))
		})
	}
}
