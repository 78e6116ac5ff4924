package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 12, 25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 12, p.Limit)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.TotalPages)

	assert.Equal(t, 0, NewPagination(1, 12, 0).TotalPages)
	assert.Equal(t, 1, NewPagination(1, 12, 12).TotalPages)
}
