package store

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"mfo-offers-api/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int64) *int64       { return &v }
func strPtr(v string) *string     { return &v }

func TestBuildOfferFilter_Empty(t *testing.T) {
	got := BuildOfferFilter(models.OfferFilter{})
	if !reflect.DeepEqual(got, bson.M{}) {
		t.Errorf("Expected empty filter, got %v", got)
	}
}

func TestBuildOfferFilter_SingleClause(t *testing.T) {
	got := BuildOfferFilter(models.OfferFilter{MaxAPR: floatPtr(25)})

	want := bson.M{"apr": bson.M{"$lte": 25.0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBuildOfferFilter_AmountFieldSwap(t *testing.T) {
	// A requested minimum amount constrains the offer's ceiling, and a
	// requested maximum constrains the offer's floor.
	got := BuildOfferFilter(models.OfferFilter{
		MinAmount: intPtr(5000),
		MaxAmount: intPtr(60000),
	})

	want := bson.M{"$and": []bson.M{
		{"max_amount": bson.M{"$gte": int64(5000)}},
		{"min_amount": bson.M{"$lte": int64(60000)}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBuildOfferFilter_MinRating(t *testing.T) {
	got := BuildOfferFilter(models.OfferFilter{MinRating: floatPtr(4.3)})

	want := bson.M{"rating": bson.M{"$gte": 4.3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBuildOfferFilter_QueryOrClause(t *testing.T) {
	got := BuildOfferFilter(models.OfferFilter{Query: strPtr("займ")})

	want := bson.M{"$or": []bson.M{
		{"name": bson.M{"$regex": "займ", "$options": "i"}},
		{"tags": bson.M{"$in": []string{"займ"}}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBuildOfferFilter_QueryQuotesRegexMeta(t *testing.T) {
	got := BuildOfferFilter(models.OfferFilter{Query: strPtr("0%")})

	orClauses, ok := got["$or"].([]bson.M)
	if !ok || len(orClauses) != 2 {
		t.Fatalf("Expected $or with 2 clauses, got %v", got)
	}

	nameClause := orClauses[0]["name"].(bson.M)
	if nameClause["$regex"] != "0%" {
		t.Errorf("Expected quoted regex '0%%', got %v", nameClause["$regex"])
	}

	// A metacharacter must come out escaped so the match stays literal.
	got = BuildOfferFilter(models.OfferFilter{Query: strPtr("a.b")})
	orClauses = got["$or"].([]bson.M)
	nameClause = orClauses[0]["name"].(bson.M)
	if nameClause["$regex"] != `a\.b` {
		t.Errorf("Expected escaped regex 'a\\.b', got %v", nameClause["$regex"])
	}
}

func TestBuildOfferFilter_EmptyQuerySkipped(t *testing.T) {
	got := BuildOfferFilter(models.OfferFilter{Query: strPtr("")})
	if !reflect.DeepEqual(got, bson.M{}) {
		t.Errorf("Expected empty query to be skipped, got %v", got)
	}
}

func TestBuildOfferFilter_AllParams(t *testing.T) {
	got := BuildOfferFilter(models.OfferFilter{
		Query:     strPtr("быстро"),
		MaxAPR:    floatPtr(30),
		MinAmount: intPtr(1000),
		MaxAmount: intPtr(50000),
		MinRating: floatPtr(4),
	})

	clauses, ok := got["$and"].([]bson.M)
	if !ok {
		t.Fatalf("Expected $and composition, got %v", got)
	}
	if len(clauses) != 5 {
		t.Errorf("Expected 5 clauses, got %d", len(clauses))
	}
}
