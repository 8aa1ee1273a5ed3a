package handler

import (
	"context"

	"wallet-admin-console/internal/adapter/http/dto"
	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/internal/view"
	"wallet-admin-console/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet listing, balances and recharges.
type WalletHandler struct {
	walletSvc   ports.WalletService
	currencySvc ports.CurrencyService
	hub         *view.Hub
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService, currencySvc ports.CurrencyService, hub *view.Hub) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc, currencySvc: currencySvc, hub: hub}
}

func (h *WalletHandler) displayCurrency(c *gin.Context) domain.DisplayCurrency {
	session, err := currentSession(c)
	if err != nil {
		return domain.USD
	}
	return h.currencySvc.Resolve(c.Request.Context(), session.DisplayCurrency)
}

// ListWallets handles GET /api/v1/wallets.
func (h *WalletHandler) ListWallets(c *gin.Context) {
	page, state, err := loadView(c, h.hub, "wallets", h.walletSvc.ListWallets, pageEmpty[domain.Wallet], pageQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPageResponse(page, state, dto.WalletConverter(h.displayCurrency(c))))
}

// ListTransactions handles GET /api/v1/wallets/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	page, state, err := loadView(c, h.hub, "transactions", h.walletSvc.ListTransactions, pageEmpty[domain.WalletTransaction], pageQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPageResponse(page, state, dto.TransactionConverter(h.displayCurrency(c))))
}

// GetBalance handles GET /api/v1/wallets/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	wallet, err := h.walletSvc.AdminBalance(c.Request.Context(), session)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WalletConverter(h.displayCurrency(c))(wallet))
}

// ListActiveSellers handles GET /api/v1/sellers/active.
func (h *WalletHandler) ListActiveSellers(c *gin.Context) {
	fetch := func(ctx context.Context, _ struct{}) ([]domain.EligibleSeller, error) {
		return h.walletSvc.ListActiveSellers(ctx)
	}
	sellers, state, err := loadView(c, h.hub, "active_sellers", fetch, listEmpty[domain.EligibleSeller], struct{}{})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewListResponse(sellers, state))
}

// Recharge handles POST /api/v1/wallets/recharge.
func (h *WalletHandler) Recharge(c *gin.Context) {
	var req dto.RechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	wallet, err := h.walletSvc.Recharge(c.Request.Context(), ports.RechargeRequest{
		Target: domain.RechargeTarget{WalletID: req.WalletID, UserID: req.UserID},
		Amount: req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WalletConverter(h.displayCurrency(c))(wallet))
}

// RechargeOwn handles POST /api/v1/wallets/balance/recharge.
func (h *WalletHandler) RechargeOwn(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	wallet, err := h.walletSvc.RechargeOwn(c.Request.Context(), session, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WalletConverter(h.displayCurrency(c))(wallet))
}

// GenerateTreasury handles POST /api/v1/wallets/treasury.
func (h *WalletHandler) GenerateTreasury(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	wallet, err := h.walletSvc.GenerateTreasury(c.Request.Context(), session, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.WalletConverter(h.displayCurrency(c))(wallet))
}
