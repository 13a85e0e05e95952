package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

const weeklyCollection = "weekly_designers"

type WeeklyRepository struct {
	coll *mongo.Collection
}

func NewWeeklyRepository(db *mongo.Database) *WeeklyRepository {
	return &WeeklyRepository{coll: db.Collection(weeklyCollection)}
}

type mongoWeekly struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	DesignerID string             `bson:"designer_id"`
	StartDate  int64              `bson:"start_date"`
	EndDate    int64              `bson:"end_date"`
}

func (r *WeeklyRepository) Save(ctx context.Context, weekly *domain.WeeklyDesigner) (*domain.WeeklyDesigner, error) {
	doc := mongoWeekly{
		DesignerID: weekly.DesignerID,
		StartDate:  weekly.StartDate.Unix(),
		EndDate:    weekly.EndDate.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert weekly designer: %w", err)
	}

	saved := *weekly
	saved.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &saved, nil
}

// FindLatest returns the pick with the most recent start date.
func (r *WeeklyRepository) FindLatest(ctx context.Context) (*domain.WeeklyDesigner, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "start_date", Value: -1}})

	var mw mongoWeekly
	if err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&mw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrWeeklyNotFound
		}
		return nil, fmt.Errorf("find weekly designer: %w", err)
	}

	return &domain.WeeklyDesigner{
		ID:         mw.ID.Hex(),
		DesignerID: mw.DesignerID,
		StartDate:  unixToTime(mw.StartDate),
		EndDate:    unixToTime(mw.EndDate),
	}, nil
}
