package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/boostithub/portfolio-backend/internal/domain"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
)

type TestimonialRepo interface {
	ListFeatured(ctx context.Context) ([]domain.Testimonial, error)
}

type testimonialRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewTestimonialRepo(db *mongo.Database, baseLog *logger.Logger) TestimonialRepo {
	return &testimonialRepo{coll: db.Collection(collTestimonials), log: baseLog.With("repo", "TestimonialRepo")}
}

func (r *testimonialRepo) ListFeatured(ctx context.Context) ([]domain.Testimonial, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}}).
		SetLimit(listLimit)
	cur, err := r.coll.Find(ctx, bson.M{"featured": true}, opts)
	if err != nil {
		return nil, err
	}
	var rows []domain.Testimonial
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
