package databases

import (
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPaginate struct {
	limit int64
	page  int64
}

func newMongoPaginate(limit, page int) *mongoPaginate {
	if page < 1 {
		page = 1
	}
	return &mongoPaginate{
		limit: int64(limit),
		page:  int64(page),
	}
}

// getPaginatedOpts returns find options for the page, newest first. A zero
// limit means no pagination. Pages past the end of int64 skip everything.
func (mp *mongoPaginate) getPaginatedOpts() *options.FindOptions {
	fOpt := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if mp.limit <= 0 {
		return fOpt
	}
	skip := int64(math.MaxInt64)
	if mp.page-1 <= math.MaxInt64/mp.limit {
		skip = (mp.page - 1) * mp.limit
	}
	return fOpt.SetLimit(mp.limit).SetSkip(skip)
}
