package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// oid parses an opaque id from the API boundary. A malformed id can never
// match a stored document, so callers treat !ok as not-found.
func oid(id string) (primitive.ObjectID, bool) {
	parsed, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return parsed, true
}

func existsByField(ctx context.Context, coll *mongo.Collection, field string, value any) (bool, error) {
	n, err := coll.CountDocuments(ctx, bson.M{field: value})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// caseInsensitiveSubstring builds a regex filter matching the value
// anywhere in the field, ignoring case. The input is quoted so user text
// cannot inject regex syntax.
func caseInsensitiveSubstring(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexQuote(value), Options: "i"}
}

func regexQuote(s string) string {
	const special = `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(special); j++ {
			if s[i] == special[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}
