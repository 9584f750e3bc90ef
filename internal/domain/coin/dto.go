package coin

import (
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/validator"
)

type AwardCoinsRequest struct {
	BusinessID string  `json:"business_id"`
	UserID     string  `json:"user_id"`
	Amount     int     `json:"amount"`
	Reason     *string `json:"reason"`
}

func (r *AwardCoinsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id is required",
		})
	}
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateRewardRequest struct {
	BusinessID  string  `json:"business_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CostCoins   int     `json:"cost_coins"`
}

func (r *CreateRewardRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BusinessID) {
		errs = append(errs, validator.ValidationError{
			Field:   "business_id",
			Message: "business_id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.CostCoins <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "cost_coins",
			Message: "cost_coins must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID         string  `json:"id"`
	BusinessID string  `json:"business_id"`
	UserID     string  `json:"user_id"`
	Amount     int     `json:"amount"`
	Source     string  `json:"source"`
	Reason     *string `json:"reason,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type BalanceResponse struct {
	BusinessID string `json:"business_id"`
	UserID     string `json:"user_id"`
	Balance    int    `json:"balance"`
}

type RewardResponse struct {
	ID          string  `json:"id"`
	BusinessID  string  `json:"business_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CostCoins   int     `json:"cost_coins"`
	Active      bool    `json:"active"`
}
