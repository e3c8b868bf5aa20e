package mongorepo

import (
	"github.com/amirasaad/txrecords/pkg/query"
	"go.mongodb.org/mongo-driver/bson"
)

func fieldName(f string) string {
	if f == query.FieldID {
		return "_id"
	}
	return f
}

// listingFilter translates the criteria of l. A single criterion becomes a
// plain equality match, several become an $or.
func listingFilter(l query.Listing) bson.D {
	switch len(l.AnyOf) {
	case 0:
		return bson.D{}
	case 1:
		c := l.AnyOf[0]
		return bson.D{{Key: fieldName(c.Field), Value: c.Value}}
	}
	or := make(bson.A, 0, len(l.AnyOf))
	for _, c := range l.AnyOf {
		or = append(or, bson.D{{Key: fieldName(c.Field), Value: c.Value}})
	}
	return bson.D{{Key: "$or", Value: or}}
}

func listingSort(l query.Listing) bson.D {
	sort := make(bson.D, 0, len(l.Sort))
	for _, s := range l.Sort {
		dir := 1
		if s.Descending {
			dir = -1
		}
		sort = append(sort, bson.E{Key: fieldName(s.Field), Value: dir})
	}
	return sort
}

func periodFilter(p query.Period) bson.D {
	return bson.D{
		{Key: "$gte", Value: p.From},
		{Key: "$lt", Value: p.Until},
	}
}
