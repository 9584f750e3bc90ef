package coin

import (
	"context"
	"log/slog"
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/coin"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/membership"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/database"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

const defaultLedgerLimit = 50

type coinServiceImpl struct {
	db             *database.DB
	ledgerRepo     coin.LedgerRepository
	rewardRepo     coin.RewardRepository
	membershipRepo membership.MembershipRepository
	logger         *slog.Logger
}

func NewCoinService(
	db *database.DB,
	ledgerRepo coin.LedgerRepository,
	rewardRepo coin.RewardRepository,
	membershipRepo membership.MembershipRepository,
	logger *slog.Logger,
) coin.CoinService {
	return &coinServiceImpl{
		db:             db,
		ledgerRepo:     ledgerRepo,
		rewardRepo:     rewardRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

// GetBalance implements coin.CoinService.
func (s *coinServiceImpl) GetBalance(ctx context.Context, businessID, userID string) (coin.BalanceResponse, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, businessID, userID)
	if err != nil {
		return coin.BalanceResponse{}, err
	}
	return coin.BalanceResponse{
		BusinessID: businessID,
		UserID:     userID,
		Balance:    balance,
	}, nil
}

// ListLedger implements coin.CoinService.
func (s *coinServiceImpl) ListLedger(ctx context.Context, businessID, userID string, limit int) ([]coin.EntryResponse, error) {
	if limit <= 0 {
		limit = defaultLedgerLimit
	}
	entries, err := s.ledgerRepo.ListByUser(ctx, businessID, userID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]coin.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toEntryResponse(e))
	}
	return responses, nil
}

// Award implements coin.CoinService: a manual grant by a manager.
func (s *coinServiceImpl) Award(ctx context.Context, req coin.AwardCoinsRequest) (coin.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return coin.EntryResponse{}, err
	}

	isMember, err := s.membershipRepo.ExistsByUserAndBusiness(ctx, req.UserID, req.BusinessID)
	if err != nil {
		return coin.EntryResponse{}, err
	}
	if !isMember {
		return coin.EntryResponse{}, membership.ErrMembershipNotFound
	}

	entry, err := s.ledgerRepo.Append(ctx, coin.Entry{
		BusinessID: req.BusinessID,
		UserID:     req.UserID,
		Amount:     req.Amount,
		Source:     coin.SourceManualAward,
		Reason:     req.Reason,
	})
	if err != nil {
		return coin.EntryResponse{}, err
	}
	return toEntryResponse(entry), nil
}

// Earn implements coin.CoinService.
func (s *coinServiceImpl) Earn(ctx context.Context, businessID, userID string, amount int, source coin.EntrySource, refID *string) error {
	if amount == 0 {
		return coin.ErrInvalidAmount
	}
	_, err := s.ledgerRepo.Append(ctx, coin.Entry{
		BusinessID: businessID,
		UserID:     userID,
		Amount:     amount,
		Source:     source,
		RefID:      refID,
	})
	return err
}

// CreateReward implements coin.CoinService.
func (s *coinServiceImpl) CreateReward(ctx context.Context, req coin.CreateRewardRequest) (coin.RewardResponse, error) {
	if err := req.Validate(); err != nil {
		return coin.RewardResponse{}, err
	}

	created, err := s.rewardRepo.Create(ctx, coin.Reward{
		BusinessID:  req.BusinessID,
		Name:        req.Name,
		Description: req.Description,
		CostCoins:   req.CostCoins,
		Active:      true,
	})
	if err != nil {
		return coin.RewardResponse{}, err
	}
	return toRewardResponse(created), nil
}

// ListRewards implements coin.CoinService.
func (s *coinServiceImpl) ListRewards(ctx context.Context, businessID string, activeOnly bool) ([]coin.RewardResponse, error) {
	rewards, err := s.rewardRepo.ListByBusiness(ctx, businessID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]coin.RewardResponse, 0, len(rewards))
	for _, r := range rewards {
		responses = append(responses, toRewardResponse(r))
	}
	return responses, nil
}

// Redeem implements coin.CoinService. The balance check and the debit
// run in one transaction so two concurrent redemptions cannot both
// spend the same coins.
func (s *coinServiceImpl) Redeem(ctx context.Context, businessID, rewardID, userID string) (coin.EntryResponse, error) {
	reward, err := s.rewardRepo.GetByID(ctx, rewardID)
	if err != nil {
		return coin.EntryResponse{}, err
	}
	if reward.BusinessID != businessID {
		return coin.EntryResponse{}, coin.ErrRewardNotFound
	}
	if !reward.Active {
		return coin.EntryResponse{}, coin.ErrRewardInactive
	}

	var entry coin.Entry
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		balance, err := s.ledgerRepo.GetBalance(txCtx, reward.BusinessID, userID)
		if err != nil {
			return err
		}
		if balance < reward.CostCoins {
			return coin.ErrInsufficientCoins
		}

		entry, err = s.ledgerRepo.Append(txCtx, coin.Entry{
			BusinessID: reward.BusinessID,
			UserID:     userID,
			Amount:     -reward.CostCoins,
			Source:     coin.SourceRewardRedeem,
			Reason:     &reward.Name,
			RefID:      &reward.ID,
		})
		return err
	})
	if err != nil {
		return coin.EntryResponse{}, err
	}

	s.logger.Info("reward redeemed",
		slog.String("reward_id", rewardID),
		slog.String("user_id", userID),
	)
	return toEntryResponse(entry), nil
}

func toEntryResponse(e coin.Entry) coin.EntryResponse {
	return coin.EntryResponse{
		ID:         e.ID,
		BusinessID: e.BusinessID,
		UserID:     e.UserID,
		Amount:     e.Amount,
		Source:     string(e.Source),
		Reason:     e.Reason,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}

func toRewardResponse(r coin.Reward) coin.RewardResponse {
	return coin.RewardResponse{
		ID:          r.ID,
		BusinessID:  r.BusinessID,
		Name:        r.Name,
		Description: r.Description,
		CostCoins:   r.CostCoins,
		Active:      r.Active,
	}
}
