package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/boostithub/portfolio-backend/internal/domain"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
)

type ProjectRepo interface {
	ListFeatured(ctx context.Context) ([]domain.Project, error)
}

type projectRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewProjectRepo(db *mongo.Database, baseLog *logger.Logger) ProjectRepo {
	return &projectRepo{coll: db.Collection(collProjects), log: baseLog.With("repo", "ProjectRepo")}
}

func (r *projectRepo) ListFeatured(ctx context.Context) ([]domain.Project, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}}).
		SetLimit(listLimit)
	cur, err := r.coll.Find(ctx, bson.M{"featured": true}, opts)
	if err != nil {
		return nil, err
	}
	var rows []domain.Project
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
