package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

const designerCollection = "designers"

type DesignerRepository struct {
	coll *mongo.Collection
}

func NewDesignerRepository(db *mongo.Database) *DesignerRepository {
	return &DesignerRepository{coll: db.Collection(designerCollection)}
}

type mongoEvent struct {
	ID          string `bson:"id"`
	Title       string `bson:"title"`
	Description string `bson:"description,omitempty"`
	StartDate   int64  `bson:"start_date"`
	EndDate     int64  `bson:"end_date,omitempty"`
	Color       string `bson:"color,omitempty"`
}

type mongoDesigner struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Email              string             `bson:"email"`
	Firstname          string             `bson:"firstname"`
	Lastname           string             `bson:"lastname"`
	ProfilePicture     string             `bson:"profile_picture,omitempty"`
	Biography          string             `bson:"biography,omitempty"`
	PhoneNumber        string             `bson:"phone_number,omitempty"`
	Profession         string             `bson:"profession,omitempty"`
	Specialties        []string           `bson:"specialties,omitempty"`
	SpheresOfInfluence []string           `bson:"spheres_of_influence,omitempty"`
	FavoriteSectors    []string           `bson:"favorite_sectors,omitempty"`
	CountryOfOrigin    string             `bson:"country_of_origin,omitempty"`
	CountryOfResidence string             `bson:"country_of_residence,omitempty"`
	ProfessionalLevel  string             `bson:"professional_level,omitempty"`
	MajorWorks         []string           `bson:"major_works,omitempty"`
	PortfolioURL       string             `bson:"portfolio_url,omitempty"`
	Events             []mongoEvent       `bson:"events,omitempty"`
	CreatedBy          string             `bson:"created_by,omitempty"`
	CreatedAt          int64              `bson:"created_at"`
	UpdatedAt          int64              `bson:"updated_at"`
}

func (r *DesignerRepository) Create(ctx context.Context, designer *domain.Designer) (*domain.Designer, error) {
	doc := toMongoDesigner(designer)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert designer: %w", err)
	}

	created := *designer
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DesignerRepository) Update(ctx context.Context, designer *domain.Designer) (*domain.Designer, error) {
	oid, err := primitive.ObjectIDFromHex(designer.ID)
	if err != nil {
		return nil, domain.ErrDesignerNotFound
	}

	doc := toMongoDesigner(designer)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update designer: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrDesignerNotFound
	}
	return designer, nil
}

func (r *DesignerRepository) FindByID(ctx context.Context, id string) (*domain.Designer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDesignerNotFound
	}

	var md mongoDesigner
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&md); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDesignerNotFound
		}
		return nil, fmt.Errorf("find designer: %w", err)
	}
	return fromMongoDesigner(&md), nil
}

func (r *DesignerRepository) FindAll(ctx context.Context) ([]domain.Designer, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *DesignerRepository) FindBySpecialty(ctx context.Context, specialty string) ([]domain.Designer, error) {
	return r.findMany(ctx, bson.M{"specialties": specialty})
}

func (r *DesignerRepository) FindByCreatedBy(ctx context.Context, adminID string) ([]domain.Designer, error) {
	return r.findMany(ctx, bson.M{"created_by": adminID})
}

func (r *DesignerRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDesignerNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete designer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDesignerNotFound
	}
	return nil
}

func (r *DesignerRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Designer, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find designers: %w", err)
	}
	defer cursor.Close(ctx)

	var designers []domain.Designer
	for cursor.Next(ctx) {
		var md mongoDesigner
		if err := cursor.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode designer: %w", err)
		}
		designers = append(designers, *fromMongoDesigner(&md))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate designers: %w", err)
	}
	return designers, nil
}

func toMongoDesigner(d *domain.Designer) mongoDesigner {
	events := make([]mongoEvent, len(d.Events))
	for i, ev := range d.Events {
		events[i] = mongoEvent{
			ID:          ev.ID,
			Title:       ev.Title,
			Description: ev.Description,
			StartDate:   ev.StartDate.Unix(),
			Color:       ev.Color,
		}
		if !ev.EndDate.IsZero() {
			events[i].EndDate = ev.EndDate.Unix()
		}
	}
	return mongoDesigner{
		Email:              d.Email,
		Firstname:          d.Firstname,
		Lastname:           d.Lastname,
		ProfilePicture:     d.ProfilePicture,
		Biography:          d.Biography,
		PhoneNumber:        d.PhoneNumber,
		Profession:         d.Profession,
		Specialties:        d.Specialties,
		SpheresOfInfluence: d.SpheresOfInfluence,
		FavoriteSectors:    d.FavoriteSectors,
		CountryOfOrigin:    d.CountryOfOrigin,
		CountryOfResidence: d.CountryOfResidence,
		ProfessionalLevel:  d.ProfessionalLevel,
		MajorWorks:         d.MajorWorks,
		PortfolioURL:       d.PortfolioURL,
		Events:             events,
		CreatedBy:          d.CreatedBy,
		CreatedAt:          d.CreatedAt.Unix(),
		UpdatedAt:          d.UpdatedAt.Unix(),
	}
}

func fromMongoDesigner(md *mongoDesigner) *domain.Designer {
	events := make([]domain.DesignerEvent, len(md.Events))
	for i, ev := range md.Events {
		events[i] = domain.DesignerEvent{
			ID:          ev.ID,
			Title:       ev.Title,
			Description: ev.Description,
			StartDate:   unixToTime(ev.StartDate),
			EndDate:     unixToTime(ev.EndDate),
			Color:       ev.Color,
		}
	}
	return &domain.Designer{
		ID:                 md.ID.Hex(),
		Email:              md.Email,
		Firstname:          md.Firstname,
		Lastname:           md.Lastname,
		ProfilePicture:     md.ProfilePicture,
		Biography:          md.Biography,
		PhoneNumber:        md.PhoneNumber,
		Profession:         md.Profession,
		Specialties:        md.Specialties,
		SpheresOfInfluence: md.SpheresOfInfluence,
		FavoriteSectors:    md.FavoriteSectors,
		CountryOfOrigin:    md.CountryOfOrigin,
		CountryOfResidence: md.CountryOfResidence,
		ProfessionalLevel:  md.ProfessionalLevel,
		MajorWorks:         md.MajorWorks,
		PortfolioURL:       md.PortfolioURL,
		Events:             events,
		CreatedBy:          md.CreatedBy,
		CreatedAt:          unixToTime(md.CreatedAt),
		UpdatedAt:          unixToTime(md.UpdatedAt),
	}
}
