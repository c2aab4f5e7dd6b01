package repos

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/boostithub/portfolio-backend/internal/domain"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
)

type AboutRepo interface {
	Get(ctx context.Context) (*domain.AboutSection, error)
	Insert(ctx context.Context, row *domain.AboutSection) error
}

type aboutRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewAboutRepo(db *mongo.Database, baseLog *logger.Logger) AboutRepo {
	return &aboutRepo{coll: db.Collection(collAbout), log: baseLog.With("repo", "AboutRepo")}
}

func (r *aboutRepo) Get(ctx context.Context) (*domain.AboutSection, error) {
	var row domain.AboutSection
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *aboutRepo) Insert(ctx context.Context, row *domain.AboutSection) error {
	if row == nil {
		return nil
	}
	_, err := r.coll.InsertOne(ctx, row)
	return err
}
