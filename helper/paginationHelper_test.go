package helper

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePaginationDefaults(t *testing.T) {
	p := ResolvePagination(url.Values{})

	assert.Equal(t, int64(1), p.Page)
	assert.Equal(t, int64(10), p.Limit)
	assert.Equal(t, int64(0), p.Skip())
}

func TestResolvePaginationNonNumericFallsBack(t *testing.T) {
	query := url.Values{}
	query.Set("page", "abc")
	query.Set("limit", "x")

	p := ResolvePagination(query)

	assert.Equal(t, int64(1), p.Page)
	assert.Equal(t, int64(10), p.Limit)
}

func TestResolvePaginationRejectsSubOneValues(t *testing.T) {
	query := url.Values{}
	query.Set("page", "0")
	query.Set("limit", "-5")

	p := ResolvePagination(query)

	assert.Equal(t, int64(1), p.Page)
	assert.Equal(t, int64(10), p.Limit)
}

func TestResolvePaginationCapsLimit(t *testing.T) {
	query := url.Values{}
	query.Set("limit", "5000")

	p := ResolvePagination(query)

	assert.Equal(t, int64(100), p.Limit)
}

func TestPaginationSkip(t *testing.T) {
	query := url.Values{}
	query.Set("page", "3")
	query.Set("limit", "25")

	p := ResolvePagination(query)

	assert.Equal(t, int64(3), p.Page)
	assert.Equal(t, int64(25), p.Limit)
	assert.Equal(t, int64(50), p.Skip())
}
