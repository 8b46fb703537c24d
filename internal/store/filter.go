package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"mfo-offers-api/internal/models"
)

// BuildOfferFilter translates the optional listing parameters into a MongoDB
// filter document. Each supplied parameter contributes one predicate clause;
// clauses are combined with $and, and the free-text query expands to an $or
// over a case-insensitive name substring match and exact tag membership.
//
// The min_amount/max_amount parameters intentionally constrain the opposite
// stored field: a requested minimum amount must fit under the offer's ceiling,
// and a requested maximum must not be under the offer's floor. Offers lacking
// an optional field (e.g. rating) never match a predicate on that field.
func BuildOfferFilter(f models.OfferFilter) bson.M {
	clauses := make([]bson.M, 0, 5)

	if f.MaxAPR != nil {
		clauses = append(clauses, bson.M{"apr": bson.M{"$lte": *f.MaxAPR}})
	}
	if f.MinAmount != nil {
		clauses = append(clauses, bson.M{"max_amount": bson.M{"$gte": *f.MinAmount}})
	}
	if f.MaxAmount != nil {
		clauses = append(clauses, bson.M{"min_amount": bson.M{"$lte": *f.MaxAmount}})
	}
	if f.MinRating != nil {
		clauses = append(clauses, bson.M{"rating": bson.M{"$gte": *f.MinRating}})
	}
	if f.Query != nil && *f.Query != "" {
		clauses = append(clauses, bson.M{"$or": []bson.M{
			{"name": bson.M{"$regex": regexp.QuoteMeta(*f.Query), "$options": "i"}},
			{"tags": bson.M{"$in": []string{*f.Query}}},
		}})
	}

	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0]
	default:
		return bson.M{"$and": clauses}
	}
}
