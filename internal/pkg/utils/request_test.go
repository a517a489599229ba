package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationRequestDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/patients", nil)
	pagination := BuildPaginationRequest(r)

	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 10, pagination.PageSize)
}

func TestBuildPaginationRequestFromQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/patients?page=3&page_size=25", nil)
	pagination := BuildPaginationRequest(r)

	assert.Equal(t, 3, pagination.Page)
	assert.Equal(t, 25, pagination.PageSize)
}

func TestBuildPaginationRequestRejectsGarbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/patients?page=-1&page_size=abc", nil)
	pagination := BuildPaginationRequest(r)

	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 10, pagination.PageSize)
}

func TestTrimNonEmpty(t *testing.T) {
	out := TrimNonEmpty([]string{"  brush teeth ", "", "   ", "floss"})
	assert.Equal(t, []string{"brush teeth", "floss"}, out)

	assert.Empty(t, TrimNonEmpty(nil))
	assert.Empty(t, TrimNonEmpty([]string{"  ", "\t"}))
}
