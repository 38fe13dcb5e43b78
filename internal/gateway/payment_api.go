package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// PaymentAPI covers the /payment endpoints.
type PaymentAPI interface {
	MakePayment(ctx context.Context, in PaymentRequestDTO) (*Response[PaymentDTO], error)
	ListPayments(ctx context.Context) (*Response[[]PaymentDTO], error)
	GetPayment(ctx context.Context, paymentID int64) (*Response[PaymentDTO], error)
	GetPaymentByLink(ctx context.Context, link uuid.UUID) (*Response[PaymentDTO], error)
	GenerateLink(ctx context.Context, link uuid.UUID, in PaymentLinkRequest) (*Response[PaymentLinkDTO], error)
}

// PaymentService is the HTTP implementation of PaymentAPI.
type PaymentService struct{ c *Client }

// NewPaymentService returns a PaymentService on the shared client.
func NewPaymentService(c *Client) *PaymentService { return &PaymentService{c: c} }

func (s *PaymentService) MakePayment(ctx context.Context, in PaymentRequestDTO) (*Response[PaymentDTO], error) {
	return send[PaymentDTO](ctx, s.c, http.MethodPost, "/payment", in, false)
}

func (s *PaymentService) ListPayments(ctx context.Context) (*Response[[]PaymentDTO], error) {
	return send[[]PaymentDTO](ctx, s.c, http.MethodGet, "/payment", nil, false)
}

func (s *PaymentService) GetPayment(ctx context.Context, paymentID int64) (*Response[PaymentDTO], error) {
	path := "/payment/" + strconv.FormatInt(paymentID, 10)
	return send[PaymentDTO](ctx, s.c, http.MethodGet, path, nil, false)
}

func (s *PaymentService) GetPaymentByLink(ctx context.Context, link uuid.UUID) (*Response[PaymentDTO], error) {
	return send[PaymentDTO](ctx, s.c, http.MethodGet, "/payment/link/"+link.String(), nil, false)
}

// GenerateLink registers a client-chosen link id with its amount:
// POST /payment/link/{linkUuid}.
func (s *PaymentService) GenerateLink(
	ctx context.Context,
	link uuid.UUID,
	in PaymentLinkRequest,
) (*Response[PaymentLinkDTO], error) {
	return send[PaymentLinkDTO](ctx, s.c, http.MethodPost, "/payment/link/"+link.String(), in, false)
}

var _ PaymentAPI = (*PaymentService)(nil)
