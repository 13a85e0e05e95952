package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
)

const companyCollection = "companies"

type CompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{coll: db.Collection(companyCollection)}
}

type mongoCompany struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Description      string             `bson:"description,omitempty"`
	Email            string             `bson:"email"`
	LegalName        string             `bson:"legal_name"`
	SiretNumber      string             `bson:"siret_number,omitempty"`
	PhoneNumber      string             `bson:"phone_number,omitempty"`
	Sectors          []string           `bson:"sectors,omitempty"`
	Stage            string             `bson:"stage,omitempty"`
	Type             string             `bson:"type,omitempty"`
	Revenue          string             `bson:"revenue,omitempty"`
	Country          string             `bson:"country,omitempty"`
	City             string             `bson:"city,omitempty"`
	LogoURL          string             `bson:"logo_url,omitempty"`
	WebsiteURL       string             `bson:"website_url,omitempty"`
	TeamPhotoURL     string             `bson:"team_photo_url,omitempty"`
	WorksURL         []string           `bson:"works_url,omitempty"`
	EmployeesID      []string           `bson:"employees_id,omitempty"`
	FinancialSupport bool               `bson:"financial_support,omitempty"`
	CreatedAt        int64              `bson:"created_at"`
	UpdatedAt        int64              `bson:"updated_at"`
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	doc := toMongoCompany(company)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert company: %w", err)
	}

	created := *company
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	oid, err := primitive.ObjectIDFromHex(company.ID)
	if err != nil {
		return nil, domain.ErrCompanyNotFound
	}

	doc := toMongoCompany(company)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCompanyNotFound
	}

	var mc mongoCompany
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return fromMongoCompany(&mc), nil
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]domain.Company, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find companies: %w", err)
	}
	defer cursor.Close(ctx)

	var companies []domain.Company
	for cursor.Next(ctx) {
		var mc mongoCompany
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode company: %w", err)
		}
		companies = append(companies, *fromMongoCompany(&mc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}
	return companies, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCompanyNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func toMongoCompany(c *domain.Company) mongoCompany {
	return mongoCompany{
		Description:      c.Description,
		Email:            c.Email,
		LegalName:        c.LegalName,
		SiretNumber:      c.SiretNumber,
		PhoneNumber:      c.PhoneNumber,
		Sectors:          c.Sectors,
		Stage:            c.Stage,
		Type:             c.Type,
		Revenue:          c.Revenue,
		Country:          c.Country,
		City:             c.City,
		LogoURL:          c.LogoURL,
		WebsiteURL:       c.WebsiteURL,
		TeamPhotoURL:     c.TeamPhotoURL,
		WorksURL:         c.WorksURL,
		EmployeesID:      c.EmployeesID,
		FinancialSupport: c.FinancialSupport,
		CreatedAt:        c.CreatedAt.Unix(),
		UpdatedAt:        c.UpdatedAt.Unix(),
	}
}

func fromMongoCompany(mc *mongoCompany) *domain.Company {
	return &domain.Company{
		ID:               mc.ID.Hex(),
		Description:      mc.Description,
		Email:            mc.Email,
		LegalName:        mc.LegalName,
		SiretNumber:      mc.SiretNumber,
		PhoneNumber:      mc.PhoneNumber,
		Sectors:          mc.Sectors,
		Stage:            mc.Stage,
		Type:             mc.Type,
		Revenue:          mc.Revenue,
		Country:          mc.Country,
		City:             mc.City,
		LogoURL:          mc.LogoURL,
		WebsiteURL:       mc.WebsiteURL,
		TeamPhotoURL:     mc.TeamPhotoURL,
		WorksURL:         mc.WorksURL,
		EmployeesID:      mc.EmployeesID,
		FinancialSupport: mc.FinancialSupport,
		CreatedAt:        unixToTime(mc.CreatedAt),
		UpdatedAt:        unixToTime(mc.UpdatedAt),
	}
}
