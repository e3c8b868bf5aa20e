package query_test

import (
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/txrecords/pkg/domain"
	"github.com/amirasaad/txrecords/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageIndex(t *testing.T) {
	testCases := []struct {
		page int
		want int
	}{
		{page: -5, want: 0},
		{page: 0, want: 0},
		{page: 1, want: 0},
		{page: 2, want: 1},
		{page: 10, want: 9},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, query.PageIndex(tc.page), "page %d", tc.page)
	}
}

func TestBuild_Filters(t *testing.T) {
	b := query.NewBuilder(20, 100)

	testCases := []struct {
		desc   string
		params query.Params
		want   []query.Criterion
	}{
		{
			desc:   "no filters matches everything",
			params: query.Params{Page: 1, Size: 10},
			want:   nil,
		},
		{
			desc:   "product only",
			params: query.Params{ProductID: "P1", Page: 1, Size: 10},
			want:   []query.Criterion{{Field: query.FieldProductID, Value: "P1"}},
		},
		{
			desc:   "card only",
			params: query.Params{CardID: "K1", Page: 1, Size: 10},
			want:   []query.Criterion{{Field: query.FieldCardID, Value: "K1"}},
		},
		{
			desc:   "both become a disjunction",
			params: query.Params{ProductID: "P1", CardID: "K1", Page: 1, Size: 10},
			want: []query.Criterion{
				{Field: query.FieldProductID, Value: "P1"},
				{Field: query.FieldCardID, Value: "K1"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			l := b.Build(tc.params)
			assert.Equal(t, tc.want, l.AnyOf)
		})
	}
}

func TestBuild_Paging(t *testing.T) {
	b := query.NewBuilder(20, 100)

	testCases := []struct {
		desc      string
		page      int
		size      int
		wantIndex int
		wantSize  int
		wantSkip  int
	}{
		{desc: "first page", page: 1, size: 10, wantIndex: 0, wantSize: 10, wantSkip: 0},
		{desc: "third page", page: 3, size: 10, wantIndex: 2, wantSize: 10, wantSkip: 20},
		{desc: "zero page", page: 0, size: 5, wantIndex: 0, wantSize: 5, wantSkip: 0},
		{desc: "negative page", page: -3, size: 5, wantIndex: 0, wantSize: 5, wantSkip: 0},
		{desc: "missing size uses default", page: 2, size: 0, wantIndex: 1, wantSize: 20, wantSkip: 20},
		{desc: "oversized page is clamped", page: 1, size: 1000, wantIndex: 0, wantSize: 100, wantSkip: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			l := b.Build(query.Params{Page: tc.page, Size: tc.size})
			assert.Equal(t, tc.wantIndex, l.PageIndex)
			assert.Equal(t, tc.wantSize, l.Size)
			assert.Equal(t, tc.wantSkip, l.Skip())
			assert.Equal(t, tc.wantSize, l.Limit())
		})
	}
}

func TestBuild_SortNewestFirst(t *testing.T) {
	l := query.NewBuilder(0, 0).Build(query.Params{Page: 1})

	require.Len(t, l.Sort, 2)
	assert.Equal(t, query.SortKey{Field: query.FieldCreatedDate, Descending: true}, l.Sort[0])
	assert.Equal(t, query.SortKey{Field: query.FieldID, Descending: true}, l.Sort[1])
	assert.Equal(t, query.DefaultPageSize, l.Size)
}

func TestBuild_IsPure(t *testing.T) {
	b := query.NewBuilder(20, 100)
	p := query.Params{ProductID: "P1", CardID: "K1", Page: 4, Size: 7}

	assert.Equal(t, b.Build(p), b.Build(p))
}

func TestNewPeriod(t *testing.T) {
	start := time.Date(2025, 2, 1, 15, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 3, 1, 0, 0, 0, time.UTC)

	p, err := query.NewPeriod(start, end)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), p.From)
	assert.Equal(t, time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC), p.Until)

	same, err := query.NewPeriod(start, start)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, same.Until.Sub(same.From))

	_, err = query.NewPeriod(end, start)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestParsePeriod(t *testing.T) {
	p, err := query.ParsePeriod("2025-01-01", "2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), p.Until)

	_, err = query.ParsePeriod("01/01/2025", "2025-01-31")
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = query.ParsePeriod("2025-01-01", "")
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
