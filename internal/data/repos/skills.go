package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/boostithub/portfolio-backend/internal/domain"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
)

type SkillRepo interface {
	List(ctx context.Context) ([]domain.SkillCategory, error)
	Insert(ctx context.Context, row *domain.SkillCategory) error
}

type skillRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewSkillRepo(db *mongo.Database, baseLog *logger.Logger) SkillRepo {
	return &skillRepo{coll: db.Collection(collSkills), log: baseLog.With("repo", "SkillRepo")}
}

func (r *skillRepo) List(ctx context.Context) ([]domain.SkillCategory, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, err
	}
	var rows []domain.SkillCategory
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *skillRepo) Insert(ctx context.Context, row *domain.SkillCategory) error {
	if row == nil {
		return nil
	}
	_, err := r.coll.InsertOne(ctx, row)
	return err
}
