package payment

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

type PixRequest struct {
	Amount      float64
	Description string
	Reference   string
	PayerEmail  string
	PayerName   string
}

// PixCharge is what the checkout page needs to show the QR code.
type PixCharge struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	QRCode       string `json:"qrCode"`
	QRCodeBase64 string `json:"qrCodeBase64"`
	TicketURL    string `json:"ticketUrl"`
}

type MercadoPago struct {
	client payment.Client
}

// NewMercadoPago returns nil when no access token is configured; checkout
// then records the booking without a charge.
func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	if accessToken == "" {
		log.Printf("[Payment] mercadopago token not set, PIX charges disabled")
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPago{client: payment.NewClient(cfg)}, nil
}

func (m *MercadoPago) CreatePix(ctx context.Context, in PixRequest) (*PixCharge, error) {
	res, err := m.client.Create(ctx, payment.Request{
		TransactionAmount: roundCents(in.Amount),
		PaymentMethodID:   "pix",
		Description:       in.Description,
		ExternalReference: in.Reference,
		Payer: &payment.PayerRequest{
			Email:     in.PayerEmail,
			FirstName: in.PayerName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("mercadopago create pix: %w", err)
	}

	return &PixCharge{
		ID:           strconv.Itoa(res.ID),
		Status:       res.Status,
		QRCode:       res.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: res.PointOfInteraction.TransactionData.QRCodeBase64,
		TicketURL:    res.PointOfInteraction.TransactionData.TicketURL,
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
