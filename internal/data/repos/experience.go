package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/boostithub/portfolio-backend/internal/domain"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
)

type ExperienceRepo interface {
	List(ctx context.Context) ([]domain.Experience, error)
}

type experienceRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewExperienceRepo(db *mongo.Database, baseLog *logger.Logger) ExperienceRepo {
	return &experienceRepo{coll: db.Collection(collExperience), log: baseLog.With("repo", "ExperienceRepo")}
}

func (r *experienceRepo) List(ctx context.Context) ([]domain.Experience, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}}).
		SetLimit(listLimit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var rows []domain.Experience
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
