package gateway

import (
	"context"
	"net/http"
	"strconv"
)

// WalletAPI covers the /wallet endpoints.
type WalletAPI interface {
	Balance(ctx context.Context) (*Response[BalanceResponse], error)
	Recharge(ctx context.Context, in RechargeRequest) (*Response[BalanceResponse], error)
	Investment(ctx context.Context) (*Response[InvestmentResponse], error)
	Invest(ctx context.Context, in AmountRequest) (*Response[InvestmentResponse], error)
	Divest(ctx context.Context, in AmountRequest) (*Response[InvestmentResponse], error)
	Cards(ctx context.Context) (*Response[[]CardDTO], error)
	AddCard(ctx context.Context, in CardDTO) (*Response[CardDTO], error)
	DeleteCard(ctx context.Context, cardID int64) (*Response[NoContent], error)
	DailyReturns(ctx context.Context) (*Response[[]DailyValueDTO], error)
	DailyInterest(ctx context.Context) (*Response[[]DailyValueDTO], error)
	Details(ctx context.Context) (*Response[WalletDetailsResponse], error)
}

// WalletService is the HTTP implementation of WalletAPI.
type WalletService struct{ c *Client }

// NewWalletService returns a WalletService on the shared client.
func NewWalletService(c *Client) *WalletService { return &WalletService{c: c} }

func (s *WalletService) Balance(ctx context.Context) (*Response[BalanceResponse], error) {
	return send[BalanceResponse](ctx, s.c, http.MethodGet, "/wallet/balance", nil, false)
}

func (s *WalletService) Recharge(ctx context.Context, in RechargeRequest) (*Response[BalanceResponse], error) {
	return send[BalanceResponse](ctx, s.c, http.MethodPost, "/wallet/recharge", in, false)
}

func (s *WalletService) Investment(ctx context.Context) (*Response[InvestmentResponse], error) {
	return send[InvestmentResponse](ctx, s.c, http.MethodGet, "/wallet/investment", nil, false)
}

func (s *WalletService) Invest(ctx context.Context, in AmountRequest) (*Response[InvestmentResponse], error) {
	return send[InvestmentResponse](ctx, s.c, http.MethodPost, "/wallet/invest", in, false)
}

func (s *WalletService) Divest(ctx context.Context, in AmountRequest) (*Response[InvestmentResponse], error) {
	return send[InvestmentResponse](ctx, s.c, http.MethodPost, "/wallet/divest", in, false)
}

func (s *WalletService) Cards(ctx context.Context) (*Response[[]CardDTO], error) {
	return send[[]CardDTO](ctx, s.c, http.MethodGet, "/wallet/cards", nil, false)
}

func (s *WalletService) AddCard(ctx context.Context, in CardDTO) (*Response[CardDTO], error) {
	return send[CardDTO](ctx, s.c, http.MethodPost, "/wallet/cards", in, false)
}

// DeleteCard removes a card: DELETE /wallet/cards/{cardId}. An empty 2xx
// answer counts as success.
func (s *WalletService) DeleteCard(ctx context.Context, cardID int64) (*Response[NoContent], error) {
	path := "/wallet/cards/" + strconv.FormatInt(cardID, 10)
	return send[NoContent](ctx, s.c, http.MethodDelete, path, nil, true)
}

func (s *WalletService) DailyReturns(ctx context.Context) (*Response[[]DailyValueDTO], error) {
	return send[[]DailyValueDTO](ctx, s.c, http.MethodGet, "/wallet/daily-returns", nil, false)
}

func (s *WalletService) DailyInterest(ctx context.Context) (*Response[[]DailyValueDTO], error) {
	return send[[]DailyValueDTO](ctx, s.c, http.MethodGet, "/wallet/daily-interest", nil, false)
}

func (s *WalletService) Details(ctx context.Context) (*Response[WalletDetailsResponse], error) {
	return send[WalletDetailsResponse](ctx, s.c, http.MethodGet, "/wallet/details", nil, false)
}

var _ WalletAPI = (*WalletService)(nil)
