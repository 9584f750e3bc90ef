package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/coin"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/middleware"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CoinHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	ListLedger(w http.ResponseWriter, r *http.Request)
	Award(w http.ResponseWriter, r *http.Request)
	CreateReward(w http.ResponseWriter, r *http.Request)
	ListRewards(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
}

type CoinHandlerImpl struct {
	coinService coin.CoinService
}

func NewCoinHandler(coinService coin.CoinService) CoinHandler {
	return &CoinHandlerImpl{coinService: coinService}
}

// GetBalance implements CoinHandler.
func (h *CoinHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")
	if businessID == "" {
		response.BadRequest(w, "business_id is required", nil)
		return
	}

	result, err := h.coinService.GetBalance(r.Context(), businessID, middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListLedger implements CoinHandler.
func (h *CoinHandlerImpl) ListLedger(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")
	if businessID == "" {
		response.BadRequest(w, "business_id is required", nil)
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, _ = strconv.Atoi(s)
	}

	result, err := h.coinService.ListLedger(r.Context(), businessID, middleware.UserID(r.Context()), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Award implements CoinHandler.
func (h *CoinHandlerImpl) Award(w http.ResponseWriter, r *http.Request) {
	var awardReq coin.AwardCoinsRequest
	if err := json.NewDecoder(r.Body).Decode(&awardReq); err != nil {
		slog.Error("AwardCoins decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.coinService.Award(r.Context(), awardReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Coins awarded", result)
}

// CreateReward implements CoinHandler.
func (h *CoinHandlerImpl) CreateReward(w http.ResponseWriter, r *http.Request) {
	var rewardReq coin.CreateRewardRequest
	if err := json.NewDecoder(r.Body).Decode(&rewardReq); err != nil {
		slog.Error("CreateReward decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.coinService.CreateReward(r.Context(), rewardReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Reward created", result)
}

// ListRewards implements CoinHandler.
func (h *CoinHandlerImpl) ListRewards(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")
	if businessID == "" {
		response.BadRequest(w, "business_id is required", nil)
		return
	}
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.coinService.ListRewards(r.Context(), businessID, activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Redeem implements CoinHandler.
func (h *CoinHandlerImpl) Redeem(w http.ResponseWriter, r *http.Request) {
	result, err := h.coinService.Redeem(r.Context(), authorizedBusinessID(r), chi.URLParam(r, "rewardID"), middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Reward redeemed", result)
}
