package helpers

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPaginate struct {
	limit int64
	page  int64
	sort  bson.M
}

func NewMongoPaginate(limit, page int64, sort bson.M) *mongoPaginate {
	if sort == nil {
		sort = bson.M{}
	}

	return &mongoPaginate{
		limit: limit,
		page:  page,
		sort:  sort,
	}
}

func (mp *mongoPaginate) Skip() int64 {
	return (mp.page - 1) * mp.limit
}

func (mp *mongoPaginate) BuildFindOptions() *options.FindOptions {
	return options.Find().
		SetLimit(mp.limit).
		SetSkip(mp.Skip()).
		SetSort(mp.sort)
}

// TotalPages is never below 1 so pagination controls can always divide
// by it.
func TotalPages(total, limit int64) int64 {
	pages := (total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	return pages
}
