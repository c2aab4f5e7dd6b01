package repos

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/boostithub/portfolio-backend/internal/domain"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
)

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Insert(ctx context.Context, row *domain.Profile) error
}

type profileRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewProfileRepo(db *mongo.Database, baseLog *logger.Logger) ProfileRepo {
	return &profileRepo{coll: db.Collection(collProfile), log: baseLog.With("repo", "ProfileRepo")}
}

func (r *profileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	var row domain.Profile
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *profileRepo) Insert(ctx context.Context, row *domain.Profile) error {
	if row == nil {
		return nil
	}
	_, err := r.coll.InsertOne(ctx, row)
	return err
}
