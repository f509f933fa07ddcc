package mongostore

import (
	"context"

	"planner/internal/domain/repository"
	"planner/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// findOne decodes the first matching document. It returns (nil, nil) when no document matches.
func findOne[T any](ctx context.Context, col *mongo.Collection, filter bson.D, opts ...options.Lister[options.FindOneOptions]) (*T, error) {
	var result T
	if err := col.FindOne(ctx, filter, opts...).Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "mongo find one")
	}

	return &result, nil
}

// findMany decodes every matching document. A document that does not decode
// into T is reported as undecodable and the listing continues.
func findMany[T any](
	ctx context.Context,
	col *mongo.Collection,
	filter bson.D,
	idField string,
	opts ...options.Lister[options.FindOptions],
) ([]*T, []repository.UndecodableRecord, error) {
	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "mongo find")
	}
	defer cursor.Close(ctx)

	results := []*T{}
	var undecodable []repository.UndecodableRecord
	for cursor.Next(ctx) {
		item, failure := decodeDocument[T](cursor.Current, idField)
		if failure != nil {
			undecodable = append(undecodable, *failure)

			continue
		}
		results = append(results, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "mongo cursor")
	}

	return results, undecodable, nil
}

// decodeDocument decodes raw into T. On failure the record is identified by
// idField when that field is a string, else by the hex _id.
func decodeDocument[T any](raw bson.Raw, idField string) (*T, *repository.UndecodableRecord) {
	var item T
	err := bson.Unmarshal(raw, &item)
	if err == nil {
		return &item, nil
	}

	id, ok := raw.Lookup(idField).StringValueOK()
	if !ok {
		if oid, isOID := raw.Lookup("_id").ObjectIDOK(); isOID {
			id = oid.Hex()
		}
	}

	return nil, &repository.UndecodableRecord{ID: id, Err: errors.Wrap(err, "mongo decode")}
}

// credentialFilter matches a document whose id field or user name equals value.
func credentialFilter(idField, value string) bson.D {
	return bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: idField, Value: value}},
		bson.D{{Key: fieldUserName, Value: value}},
	}}}
}

// insertionOrder sorts by _id, which follows insertion time for ObjectIDs.
func insertionOrder() bson.D {
	return bson.D{{Key: "_id", Value: 1}}
}
