package repos

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/boostithub/portfolio-backend/internal/domain"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
)

type ContactMessageRepo interface {
	Create(ctx context.Context, row *domain.ContactMessage) (string, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
}

type contactMessageRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewContactMessageRepo(db *mongo.Database, baseLog *logger.Logger) ContactMessageRepo {
	return &contactMessageRepo{coll: db.Collection(collContactMessages), log: baseLog.With("repo", "ContactMessageRepo")}
}

// Create persists the message and returns the store-assigned identifier
// rendered as a plain string.
func (r *contactMessageRepo) Create(ctx context.Context, row *domain.ContactMessage) (string, error) {
	res, err := r.coll.InsertOne(ctx, row)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (r *contactMessageRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listLimit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var rows []domain.ContactMessage
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
