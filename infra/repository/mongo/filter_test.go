package mongorepo

import (
	"testing"

	"github.com/amirasaad/txrecords/pkg/query"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListingFilter(t *testing.T) {
	b := query.NewBuilder(20, 100)

	tests := []struct {
		name   string
		params query.Params
		want   bson.D
	}{
		{
			name:   "no filters",
			params: query.Params{},
			want:   bson.D{},
		},
		{
			name:   "product only",
			params: query.Params{ProductID: "P1"},
			want:   bson.D{{Key: "productId", Value: "P1"}},
		},
		{
			name:   "card only",
			params: query.Params{CardID: "K1"},
			want:   bson.D{{Key: "cardId", Value: "K1"}},
		},
		{
			name:   "both become an or",
			params: query.Params{ProductID: "P1", CardID: "K1"},
			want: bson.D{{Key: "$or", Value: bson.A{
				bson.D{{Key: "productId", Value: "P1"}},
				bson.D{{Key: "cardId", Value: "K1"}},
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listingFilter(b.Build(tt.params)))
		})
	}
}

func TestListingSort(t *testing.T) {
	l := query.NewBuilder(20, 100).Build(query.Params{})
	assert.Equal(t,
		bson.D{{Key: "createdDate", Value: -1}, {Key: "_id", Value: -1}},
		listingSort(l))
}
