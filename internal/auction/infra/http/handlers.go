package http

import (
	"fmt"
	"strconv"

	"github.com/cristianortiz/invoiceAuction/internal/auction/application"
	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
	"github.com/cristianortiz/invoiceAuction/internal/shared/logger"
	walletdomain "github.com/cristianortiz/invoiceAuction/internal/wallet/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// AuctionHTTPHandler exposes the auction use cases as a JSON API
type AuctionHTTPHandler struct {
	auctionService application.AuctionService
	validate       *validator.Validate
}

func NewAuctionHTTPHandler(auctionService application.AuctionService) *AuctionHTTPHandler {
	return &AuctionHTTPHandler{
		auctionService: auctionService,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the invoice and wallet endpoints on router
func (h *AuctionHTTPHandler) RegisterRoutes(router fiber.Router) {
	invoices := router.Group("/invoices")
	invoices.Post("/", h.CreateInvoice)
	invoices.Get("/", h.ListInvoices)
	invoices.Get("/:id", h.GetInvoice)
	invoices.Post("/:id/bids", h.PlaceBid)
	invoices.Post("/:id/finalize", h.Finalize)

	wallets := router.Group("/wallets")
	wallets.Get("/:user_id", h.GetWallet)
	wallets.Post("/:user_id/deposit", h.Deposit)
}

// bind parses and validates the body into req
func (h *AuctionHTTPHandler) bind(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return h.validate.Struct(req)
}

func invoiceIDParam(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *AuctionHTTPHandler) state(inv *domain.Invoice) application.InvoiceStateDTO {
	return application.NewInvoiceStateDTO(inv, h.auctionService.BidSpread())
}

func (h *AuctionHTTPHandler) states(invoices []*domain.Invoice) []application.InvoiceStateDTO {
	out := make([]application.InvoiceStateDTO, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, h.state(inv))
	}
	return out
}

// CreateInvoice handles POST /invoices
func (h *AuctionHTTPHandler) CreateInvoice(c *fiber.Ctx) error {
	var req createInvoiceRequest
	if err := h.bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	inv, err := h.auctionService.CreateInvoice(application.CreateInvoiceDTO{
		OwnerID:           req.OwnerID,
		Title:             req.Title,
		FaceAmount:        req.FaceAmount,
		BiddingEndAt:      req.BiddingEndAt,
		AutoAcceptHighest: req.AutoAcceptHighest,
		MinBid:            req.MinBid,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.state(inv))
}

// ListInvoices handles GET /invoices, with owner_id it is the business view, without it the
// list of invoices still accepting bids or waiting a decision
func (h *AuctionHTTPHandler) ListInvoices(c *fiber.Ctx) error {
	if owner := c.Query("owner_id"); owner != "" {
		return c.JSON(h.states(h.auctionService.ListInvoicesByOwner(owner)))
	}
	return c.JSON(h.states(h.auctionService.ListBiddableInvoices()))
}

// GetInvoice handles GET /invoices/:id
func (h *AuctionHTTPHandler) GetInvoice(c *fiber.Ctx) error {
	id, ok := invoiceIDParam(c)
	if !ok {
		return badRequest(c, "invalid invoice id")
	}
	inv, err := h.auctionService.GetInvoice(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.state(inv))
}

// PlaceBid handles POST /invoices/:id/bids
func (h *AuctionHTTPHandler) PlaceBid(c *fiber.Ctx) error {
	id, ok := invoiceIDParam(c)
	if !ok {
		return badRequest(c, "invalid invoice id")
	}
	var req placeBidRequest
	if err := h.bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	bid, err := h.auctionService.PlaceBid(application.PlaceBidDTO{
		InvoiceID: id,
		BidderID:  req.BidderID,
		Amount:    req.Amount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(application.BidDTO{
		ID:       bid.ID,
		BidderID: bid.BidderID,
		Amount:   bid.Amount,
		PlacedAt: bid.PlacedAt,
	})
}

// Finalize handles POST /invoices/:id/finalize, the business picks the winning bid
func (h *AuctionHTTPHandler) Finalize(c *fiber.Ctx) error {
	id, ok := invoiceIDParam(c)
	if !ok {
		return badRequest(c, "invalid invoice id")
	}
	var req finalizeRequest
	if err := h.bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.BidID == uuid.Nil {
		return badRequest(c, "bid_id is required")
	}

	inv, err := h.auctionService.ManualFinalize(application.ManualFinalizeDTO{InvoiceID: id, BidID: req.BidID})
	if err != nil {
		return writeError(c, err)
	}
	log.Info("Invoice finalized through API",
		zap.Int64("invoiceID", id),
		zap.String("bidID", req.BidID.String()),
	)
	return c.JSON(h.state(inv))
}

// GetWallet handles GET /wallets/:user_id
func (h *AuctionHTTPHandler) GetWallet(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	return c.JSON(WalletResponse{UserID: userID, Balance: h.auctionService.WalletBalance(userID)})
}

// Deposit handles POST /wallets/:user_id/deposit
func (h *AuctionHTTPHandler) Deposit(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	var req depositRequest
	if err := h.bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	amount, err := walletdomain.ParseAmount(req.Amount)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.auctionService.Deposit(userID, amount); err != nil {
		return writeError(c, err)
	}
	return c.JSON(WalletResponse{UserID: userID, Balance: h.auctionService.WalletBalance(userID)})
}
