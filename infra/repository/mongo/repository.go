// Package mongorepo stores transactions in a MongoDB collection.
package mongorepo

import (
	"context"
	"fmt"

	infrarepo "github.com/amirasaad/txrecords/infra/repository"
	"github.com/amirasaad/txrecords/pkg/domain/transaction"
	"github.com/amirasaad/txrecords/pkg/query"
	repo "github.com/amirasaad/txrecords/pkg/repository/transaction"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultCollection is the collection transactions live in.
const DefaultCollection = "transaction"

var newestFirst = bson.D{{Key: "createdDate", Value: -1}, {Key: "_id", Value: -1}}

type repository struct {
	coll *mongo.Collection
}

// New creates a transaction repository backed by coll.
func New(coll *mongo.Collection) repo.Repository {
	return &repository{coll: coll}
}

// EnsureIndexes creates the indexes the queries of this package rely on.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "productId", Value: 1}, {Key: "cardId", Value: 1}}},
		{Keys: bson.D{{Key: "createdDate", Value: -1}}},
		{Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "createdDate", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create transaction indexes: %w", err)
	}
	return nil
}

// FindByID implements transaction.Repository.
func (r *repository) FindByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, transaction.ErrTransactionNotFound
	}
	var doc document
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return nil, infrarepo.MapMongoErrorToDomain(err, transaction.ErrTransactionNotFound)
	}
	return doc.toDomain(), nil
}

// Save implements transaction.Repository.
func (r *repository) Save(
	ctx context.Context,
	tx *transaction.Transaction,
) (*transaction.Transaction, error) {
	if tx.ID == "" {
		doc := toDocument(primitive.NewObjectID(), tx)
		if _, err := r.coll.InsertOne(ctx, doc); err != nil {
			return nil, fmt.Errorf("insert transaction: %w",
				infrarepo.MapMongoErrorToDomain(err, transaction.ErrTransactionNotFound))
		}
		return doc.toDomain(), nil
	}

	oid, err := primitive.ObjectIDFromHex(tx.ID)
	if err != nil {
		return nil, transaction.ErrTransactionNotFound
	}
	doc := toDocument(oid, tx)
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, doc)
	if err != nil {
		return nil, fmt.Errorf("replace transaction %s: %w", tx.ID, err)
	}
	if res.MatchedCount == 0 {
		return nil, transaction.ErrTransactionNotFound
	}
	return doc.toDomain(), nil
}

// Delete implements transaction.Repository.
func (r *repository) Delete(ctx context.Context, tx *transaction.Transaction) error {
	oid, err := primitive.ObjectIDFromHex(tx.ID)
	if err != nil {
		return transaction.ErrTransactionNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("delete transaction %s: %w", tx.ID, err)
	}
	if res.DeletedCount == 0 {
		return transaction.ErrTransactionNotFound
	}
	return nil
}

// List implements transaction.Repository.
func (r *repository) List(ctx context.Context, l query.Listing) repo.Stream {
	opts := options.Find().
		SetSort(listingSort(l)).
		SetSkip(int64(l.Skip())).
		SetLimit(int64(l.Limit()))
	return r.stream(ctx, listingFilter(l), opts)
}

// ListByAccount implements transaction.Repository.
func (r *repository) ListByAccount(ctx context.Context, productID string) repo.Stream {
	return r.stream(ctx,
		bson.D{{Key: "productId", Value: productID}},
		options.Find().SetSort(newestFirst))
}

// ListCommissions implements transaction.Repository.
func (r *repository) ListCommissions(ctx context.Context, productID string, p query.Period) repo.Stream {
	filter := bson.D{
		{Key: "productId", Value: productID},
		{Key: "commission", Value: bson.D{{Key: "$gt", Value: 0}}},
		{Key: "createdDate", Value: periodFilter(p)},
	}
	return r.stream(ctx, filter, options.Find().SetSort(newestFirst))
}

// ListByClient implements transaction.Repository.
func (r *repository) ListByClient(ctx context.Context, clientID string, p query.Period) repo.Stream {
	filter := bson.D{
		{Key: "clientId", Value: clientID},
		{Key: "createdDate", Value: periodFilter(p)},
	}
	oldestFirst := bson.D{{Key: "createdDate", Value: 1}, {Key: "_id", Value: 1}}
	return r.stream(ctx, filter, options.Find().SetSort(oldestFirst))
}

// stream opens a cursor when iteration starts and decodes one document at a
// time. The cursor is closed when the consumer stops.
func (r *repository) stream(ctx context.Context, filter bson.D, opts *options.FindOptions) repo.Stream {
	return func(yield func(*transaction.Transaction, error) bool) {
		cur, err := r.coll.Find(ctx, filter, opts)
		if err != nil {
			yield(nil, fmt.Errorf("find transactions: %w", err))
			return
		}
		// killCursors must still reach the server after ctx is cancelled
		defer cur.Close(context.WithoutCancel(ctx)) //nolint:errcheck

		for cur.Next(ctx) {
			var doc document
			if err := cur.Decode(&doc); err != nil {
				yield(nil, fmt.Errorf("decode transaction: %w", err))
				return
			}
			if !yield(doc.toDomain(), nil) {
				return
			}
		}
		if err := cur.Err(); err != nil {
			yield(nil, fmt.Errorf("read transactions: %w", err))
		}
	}
}
