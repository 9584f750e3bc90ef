package business

import (
	"context"
	"log/slog"
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/business"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/membership"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/role"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type businessServiceImpl struct {
	db             *database.DB
	businessRepo   business.BusinessRepository
	membershipRepo membership.MembershipRepository
	logger         *slog.Logger
}

func NewBusinessService(
	db *database.DB,
	businessRepo business.BusinessRepository,
	membershipRepo membership.MembershipRepository,
	logger *slog.Logger,
) business.BusinessService {
	return &businessServiceImpl{
		db:             db,
		businessRepo:   businessRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

// Create implements business.BusinessService. The business row and the
// creator's owner membership are written in one transaction so a
// business can never exist without an owner.
func (s *businessServiceImpl) Create(ctx context.Context, ownerID string, req business.CreateBusinessRequest) (business.BusinessResponse, error) {
	if err := req.Validate(); err != nil {
		return business.BusinessResponse{}, err
	}

	var created business.Business
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		var err error
		created, err = s.businessRepo.Create(txCtx, business.Business{
			OwnerID:  ownerID,
			Name:     req.Name,
			Industry: req.Industry,
			Address:  req.Address,
			Timezone: req.Timezone,
		})
		if err != nil {
			return err
		}

		_, err = s.membershipRepo.Create(txCtx, membership.Membership{
			UserID:     ownerID,
			BusinessID: created.ID,
			RoleType:   membership.RoleTypePredefined,
			Role:       string(role.PredefinedOwner),
		})
		return err
	})
	if err != nil {
		return business.BusinessResponse{}, err
	}

	s.logger.Info("business created",
		slog.String("business_id", created.ID),
		slog.String("owner_id", ownerID),
	)
	return toBusinessResponse(created), nil
}

// GetByID implements business.BusinessService.
func (s *businessServiceImpl) GetByID(ctx context.Context, id string) (business.BusinessResponse, error) {
	found, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		return business.BusinessResponse{}, err
	}
	return toBusinessResponse(found), nil
}

// ListMine implements business.BusinessService. It returns every
// business the user holds a membership in, not just the ones they own.
func (s *businessServiceImpl) ListMine(ctx context.Context, userID string) ([]business.BusinessResponse, error) {
	memberships, err := s.membershipRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]business.BusinessResponse, 0, len(memberships))
	for _, m := range memberships {
		found, err := s.businessRepo.GetByID(ctx, m.BusinessID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, toBusinessResponse(found))
	}
	return responses, nil
}

// Update implements business.BusinessService.
func (s *businessServiceImpl) Update(ctx context.Context, id string, req business.UpdateBusinessRequest) (business.BusinessResponse, error) {
	if err := req.Validate(); err != nil {
		return business.BusinessResponse{}, err
	}

	existing, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		return business.BusinessResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Industry != nil {
		existing.Industry = req.Industry
	}
	if req.Address != nil {
		existing.Address = req.Address
	}
	if req.Timezone != nil {
		existing.Timezone = *req.Timezone
	}

	updated, err := s.businessRepo.Update(ctx, existing)
	if err != nil {
		return business.BusinessResponse{}, err
	}
	return toBusinessResponse(updated), nil
}

// Delete implements business.BusinessService.
func (s *businessServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.businessRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.businessRepo.Delete(ctx, id)
}

// ListMembers implements business.BusinessService.
func (s *businessServiceImpl) ListMembers(ctx context.Context, businessID string) ([]business.MemberResponse, error) {
	memberships, err := s.membershipRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	members := make([]business.MemberResponse, 0, len(memberships))
	for _, m := range memberships {
		member := business.MemberResponse{
			UserID:   m.UserID,
			RoleType: string(m.RoleType),
			Role:     m.Role,
			JoinedAt: m.CreatedAt.Format(time.RFC3339),
		}
		if m.UserEmail != nil {
			member.Email = *m.UserEmail
		}
		members = append(members, member)
	}
	return members, nil
}

func toBusinessResponse(b business.Business) business.BusinessResponse {
	return business.BusinessResponse{
		ID:        b.ID,
		OwnerID:   b.OwnerID,
		Name:      b.Name,
		Industry:  b.Industry,
		Address:   b.Address,
		Timezone:  b.Timezone,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
