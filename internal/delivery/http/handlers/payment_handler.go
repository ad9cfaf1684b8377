package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
	"github.com/lojinhadasgracas/storefront-service/internal/infrastructure/gateway"
	"github.com/lojinhadasgracas/storefront-service/internal/usecase"
)

// signatureHeader carries the HMAC signature the gateway computes over the
// raw webhook body.
const signatureHeader = "X-Signature"

type PaymentHandler struct {
	Orders        usecase.OrderUsecase
	Gateway       domain.PaymentGatewayPort
	WebhookSecret string
}

func NewPaymentHandler(orders usecase.OrderUsecase, gw domain.PaymentGatewayPort, webhookSecret string) *PaymentHandler {
	return &PaymentHandler{Orders: orders, Gateway: gw, WebhookSecret: webhookSecret}
}

// CreateCheckoutLink exposes the gateway's hosted-page creation for
// orders that already exist, typically a retry after the customer closed
// the payment page.
func (h *PaymentHandler) CreateCheckoutLink(c *gin.Context) {
	var req domain.CheckoutLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if req.OrderReference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_reference is required"})
		return
	}

	url, err := h.Gateway.CreateCheckoutLink(c.Request.Context(), &req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_url": url})
}

// CheckPayment relays the storefront's payment poll to the gateway and
// passes the gateway's status code and body back unchanged.
func (h *PaymentHandler) CheckPayment(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	status, body, err := h.Gateway.CheckPayment(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment gateway unreachable"})
		return
	}
	c.Data(status, "application/json", body)
}

type webhookPayload struct {
	Event          string `json:"event"`
	OrderReference string `json:"order_reference"`
	TransactionID  string `json:"transaction_id"`
}

// Webhook is the gateway's server-to-server payment notification. The
// signature over the raw body is the only authentication; a bad or
// missing signature is rejected before any lookup happens.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	if !gateway.VerifySignature(h.WebhookSecret, body, c.GetHeader(signatureHeader)) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		abortBadRequest(c, err)
		return
	}
	if payload.OrderReference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_reference is required"})
		return
	}

	if payload.Event != "" && payload.Event != "paid" && payload.Event != "invoice.paid" {
		// unhandled event types are acknowledged so the gateway stops retrying
		c.JSON(http.StatusOK, gin.H{"ignored": payload.Event})
		return
	}

	err = h.Orders.ConfirmPaymentByReference(payload.OrderReference, payload.TransactionID, string(body))
	if err != nil {
		if err == domain.ErrInvalidStatusTransition {
			// replayed notification, already settled
			c.JSON(http.StatusOK, gin.H{"status": "already processed"})
			return
		}
		slog.Error("webhook confirmation failed", "reference", payload.OrderReference, "error", err.Error())
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}
