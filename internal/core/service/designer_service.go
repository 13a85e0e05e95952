package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// DesignerService manages designer profiles, their uploaded images and
// agenda events, and the admin create/transfer workflow.
type DesignerService struct {
	designers ports.DesignerRepository
	users     ports.UserRepository
	storage   ports.ImageStorage
	log       zerolog.Logger
}

func NewDesignerService(
	designers ports.DesignerRepository,
	users ports.UserRepository,
	storage ports.ImageStorage,
	log zerolog.Logger,
) *DesignerService {
	return &DesignerService{designers: designers, users: users, storage: storage, log: log}
}

func (s *DesignerService) All(ctx context.Context) ([]domain.Designer, error) {
	return s.designers.FindAll(ctx)
}

func (s *DesignerService) ByID(ctx context.Context, id string) (*domain.Designer, error) {
	return s.designers.FindByID(ctx, id)
}

// ByUserID resolves a designer through the owning user's link.
func (s *DesignerService) ByUserID(ctx context.Context, userID string) (*domain.Designer, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.DesignerID == "" {
		return nil, domain.ErrDesignerNotFound
	}
	return s.designers.FindByID(ctx, user.DesignerID)
}

func (s *DesignerService) BySpecialty(ctx context.Context, specialty string) ([]domain.Designer, error) {
	return s.designers.FindBySpecialty(ctx, specialty)
}

// CreateForUser creates a profile for the calling user and links it to the
// account. Identity fields come from the account, not from the payload.
func (s *DesignerService) CreateForUser(ctx context.Context, userID string, designer *domain.Designer) (*domain.Designer, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.DesignerID != "" {
		return nil, domain.ErrDesignerAssigned
	}

	now := time.Now().UTC()
	designer.Email = user.Email
	designer.Firstname = user.Firstname
	designer.Lastname = user.Lastname
	designer.CreatedAt = now
	designer.UpdatedAt = now

	created, err := s.designers.Create(ctx, designer)
	if err != nil {
		return nil, err
	}

	user.DesignerID = created.ID
	user.UpdatedAt = now
	if _, err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("designer_id", created.ID).Str("user_id", userID).Msg("designer created")
	return created, nil
}

// CreateAsAdmin creates an unlinked profile tagged with the creating admin,
// to be handed over later via Transfer.
func (s *DesignerService) CreateAsAdmin(ctx context.Context, adminID string, designer *domain.Designer) (*domain.Designer, error) {
	now := time.Now().UTC()
	designer.CreatedBy = adminID
	designer.CreatedAt = now
	designer.UpdatedAt = now
	return s.designers.Create(ctx, designer)
}

func (s *DesignerService) CreatedByAdmin(ctx context.Context, adminID string) ([]domain.Designer, error) {
	return s.designers.FindByCreatedBy(ctx, adminID)
}

// Transfer hands an admin-created profile over to a user. The user must not
// already own a designer.
func (s *DesignerService) Transfer(ctx context.Context, userID, designerID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	designer, err := s.designers.FindByID(ctx, designerID)
	if err != nil {
		return err
	}
	if user.DesignerID != "" {
		return domain.ErrDesignerAssigned
	}

	now := time.Now().UTC()
	designer.CreatedBy = ""
	designer.UpdatedAt = now
	if _, err := s.designers.Update(ctx, designer); err != nil {
		return err
	}

	user.DesignerID = designerID
	user.UpdatedAt = now
	_, err = s.users.Update(ctx, user)
	return err
}

// UpdateFields replaces the editable profile fields. Pictures and works are
// updated through their own upload operations.
func (s *DesignerService) UpdateFields(ctx context.Context, designerID string, patch *domain.Designer) (*domain.Designer, error) {
	existing, err := s.designers.FindByID(ctx, designerID)
	if err != nil {
		return nil, err
	}

	existing.Firstname = patch.Firstname
	existing.Lastname = patch.Lastname
	existing.Email = patch.Email
	existing.Biography = patch.Biography
	existing.PhoneNumber = patch.PhoneNumber
	existing.Profession = patch.Profession
	existing.Specialties = patch.Specialties
	existing.SpheresOfInfluence = patch.SpheresOfInfluence
	existing.FavoriteSectors = patch.FavoriteSectors
	existing.CountryOfOrigin = patch.CountryOfOrigin
	existing.CountryOfResidence = patch.CountryOfResidence
	existing.ProfessionalLevel = patch.ProfessionalLevel
	existing.PortfolioURL = patch.PortfolioURL
	existing.UpdatedAt = time.Now().UTC()

	return s.designers.Update(ctx, existing)
}

func (s *DesignerService) UpdatePicture(ctx context.Context, designerID string, upload ports.Upload) (*domain.Designer, error) {
	existing, err := s.designers.FindByID(ctx, designerID)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.Store(ctx, upload.Filename, upload.Content)
	if err != nil {
		return nil, err
	}

	existing.ProfilePicture = url
	existing.UpdatedAt = time.Now().UTC()
	return s.designers.Update(ctx, existing)
}

func (s *DesignerService) AddWorks(ctx context.Context, designerID string, uploads []ports.Upload) (*domain.Designer, error) {
	if len(uploads) > domain.MaxWorksPerUpload {
		return nil, domain.ErrTooManyWorks
	}

	existing, err := s.designers.FindByID(ctx, designerID)
	if err != nil {
		return nil, err
	}

	for _, upload := range uploads {
		url, err := s.storage.Store(ctx, upload.Filename, upload.Content)
		if err != nil {
			return nil, err
		}
		existing.MajorWorks = append(existing.MajorWorks, url)
	}

	existing.UpdatedAt = time.Now().UTC()
	return s.designers.Update(ctx, existing)
}

func (s *DesignerService) DeleteWork(ctx context.Context, designerID, workURL string) (*domain.Designer, error) {
	existing, err := s.designers.FindByID(ctx, designerID)
	if err != nil {
		return nil, err
	}

	found := false
	kept := existing.MajorWorks[:0]
	for _, url := range existing.MajorWorks {
		if url == workURL {
			found = true
			continue
		}
		kept = append(kept, url)
	}
	if !found {
		return nil, domain.ErrWorkNotFound
	}

	existing.MajorWorks = kept
	existing.UpdatedAt = time.Now().UTC()
	return s.designers.Update(ctx, existing)
}

// DeleteForUser removes the designer and clears the owning user's link. The
// pairing is re-checked here even though the route guard already did: the
// service must hold on its own.
func (s *DesignerService) DeleteForUser(ctx context.Context, userID, designerID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.DesignerID != designerID {
		return domain.ErrForbidden
	}

	if err := s.designers.Delete(ctx, designerID); err != nil {
		return err
	}

	user.DesignerID = ""
	user.UpdatedAt = time.Now().UTC()
	_, err = s.users.Update(ctx, user)
	return err
}

// Delete removes any designer by ID. Admin only; the guard enforces it.
func (s *DesignerService) Delete(ctx context.Context, designerID string) error {
	return s.designers.Delete(ctx, designerID)
}

// AddEvent appends a calendar event to the calling user's designer agenda.
func (s *DesignerService) AddEvent(ctx context.Context, userID string, event domain.DesignerEvent) (*domain.Designer, error) {
	designer, err := s.ByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	designer.Events = append(designer.Events, event)
	designer.UpdatedAt = time.Now().UTC()
	return s.designers.Update(ctx, designer)
}

func (s *DesignerService) ModifyEvent(ctx context.Context, userID string, event domain.DesignerEvent) (*domain.Designer, error) {
	designer, err := s.ByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range designer.Events {
		if designer.Events[i].ID == event.ID {
			designer.Events[i] = event
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrEventNotFound
	}

	designer.UpdatedAt = time.Now().UTC()
	return s.designers.Update(ctx, designer)
}

func (s *DesignerService) DeleteEvent(ctx context.Context, userID string, eventID string) (*domain.Designer, error) {
	designer, err := s.ByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	kept := designer.Events[:0]
	for _, ev := range designer.Events {
		if ev.ID == eventID {
			found = true
			continue
		}
		kept = append(kept, ev)
	}
	if !found {
		return nil, domain.ErrEventNotFound
	}

	designer.Events = kept
	designer.UpdatedAt = time.Now().UTC()
	return s.designers.Update(ctx, designer)
}
