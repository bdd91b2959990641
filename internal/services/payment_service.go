package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	payos "github.com/payOSHQ/payos-lib-golang"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"gigwise/internal/config"
	dbm "gigwise/internal/models/db_models"
	"gigwise/internal/models/response_models"
	"gigwise/pkg/utils"
)

type PaymentService interface {
	CreateCheckoutForPlan(ctx context.Context, accountID uuid.UUID, planCode string) (*response_models.CreateCheckoutResponse, error)
	HandleWebhook(c *gin.Context)
}

type paymentService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewPaymentService(db *gorm.DB, cfg *config.Config) (PaymentService, error) {
	if cfg.PayOSClientID == "" || cfg.PayOSAPIKey == "" || cfg.PayOSChecksumKey == "" {
		return nil, errors.New("missing payOS credentials")
	}
	return &paymentService{db: db, cfg: cfg}, nil
}

const providerName = "payos"

func (p *paymentService) CreateCheckoutForPlan(ctx context.Context, accountID uuid.UUID, planCode string) (*response_models.CreateCheckoutResponse, error) {
	var plan dbm.Plan
	if err := p.db.WithContext(ctx).
		Where("code = ? AND is_active = TRUE", planCode).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrPlanNotFound
		}
		return nil, err
	}

	amount := plan.PriceMinor
	if amount <= 0 {
		return nil, fmt.Errorf("plan %s is not billable (amount=%d)", planCode, amount)
	}

	// payOS wants an int64 order code; unix seconds plus a short random
	// suffix keeps it unique enough and within range.
	orderCode := time.Now().Unix()%1_000_000_000 + int64(rand.Intn(9000)+1000)

	txn := &dbm.Transaction{
		AccountID:     accountID,
		AmountMinor:   amount,
		Currency:      strings.ToUpper(plan.Currency),
		Status:        dbm.TxnStatusPending,
		Provider:      providerName,
		ProviderTxnID: fmt.Sprintf("payos:%d", orderCode),
		Metadata: jsonRaw(map[string]any{
			"plan_id":   plan.ID,
			"plan_code": plan.Code,
		}),
	}
	if err := p.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	if err := payos.Key(p.cfg.PayOSClientID, p.cfg.PayOSAPIKey, p.cfg.PayOSChecksumKey); err != nil {
		return nil, fmt.Errorf("payos client init: %w", err)
	}

	body := payos.CheckoutRequestType{
		OrderCode: orderCode,
		Amount:    int(amount),
		Items: []payos.Item{{
			Name:     fmt.Sprintf("%s (%s)", plan.Name, plan.Code),
			Price:    int(amount),
			Quantity: 1,
		}},
		Description: fmt.Sprintf("Subscription %s", plan.Code),
		CancelUrl:   p.cfg.PayOSCancelURL,
		ReturnUrl:   p.cfg.PayOSReturnURL,
	}

	resp, err := payos.CreatePaymentLink(body)
	if err != nil {
		_ = p.db.WithContext(ctx).Model(txn).
			Update("status", dbm.TxnStatusFailed).Error
		return nil, fmt.Errorf("payos create link: %w", err)
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:    orderCode,
		Amount:       amount,
		PaymentURL:   resp.CheckoutUrl,
		ProviderName: providerName,
	}, nil
}

func (p *paymentService) HandleWebhook(c *gin.Context) {
	if err := payos.Key(p.cfg.PayOSClientID, p.cfg.PayOSAPIKey, p.cfg.PayOSChecksumKey); err != nil {
		log.Error().Err(err).Msg("payos key setup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "provider init failed"})
		return
	}

	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	var body payos.WebhookType
	if err := json.Unmarshal(rawBody, &body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
		return
	}

	data, payosErr := payos.VerifyPaymentWebhookData(body)
	if payosErr != nil {
		log.Warn().Err(payosErr).Msg("webhook signature verification failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "failed to verify webhook data"})
		return
	}

	providerTxn := fmt.Sprintf("payos:%d", data.OrderCode)

	var txn dbm.Transaction
	if err := p.db.Where("provider_txn_id = ?", providerTxn).First(&txn).Error; err != nil {
		// Ack with 200 so the provider does not retry-storm us, but log
		// for investigation.
		log.Warn().Int64("order_code", data.OrderCode).Msg("webhook for unknown transaction")
		c.JSON(http.StatusOK, gin.H{"message": "ignored"})
		return
	}

	// Idempotency: a paid transaction stays paid no matter how often the
	// provider re-delivers.
	if txn.Status != dbm.TxnStatusPaid {
		now := time.Now().Unix()
		err = p.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&txn).Updates(map[string]interface{}{
				"status":  dbm.TxnStatusPaid,
				"paid_at": now,
				"receipt": json.RawMessage(rawBody),
			}).Error; err != nil {
				return err
			}
			return p.activateSubscription(tx, &txn)
		})
		if err != nil {
			log.Error().Err(err).Int64("order_code", data.OrderCode).Msg("webhook processing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process transaction"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (p *paymentService) activateSubscription(tx *gorm.DB, txn *dbm.Transaction) error {
	var m struct {
		PlanID   uuid.UUID `json:"plan_id"`
		PlanCode string    `json:"plan_code"`
	}
	if err := json.Unmarshal(txn.Metadata, &m); err != nil || m.PlanCode == "" {
		return fmt.Errorf("missing plan info in transaction metadata")
	}

	var plan dbm.Plan
	if err := tx.Where("id = ? AND is_active = TRUE", m.PlanID).First(&plan).Error; err != nil {
		return fmt.Errorf("plan not found while activating: %w", err)
	}

	now := time.Now()
	starts := now

	// Extend from the end of a still-running auto-renewing subscription
	// instead of overlapping it.
	var current dbm.Subscription
	err := tx.
		Where("account_id = ? AND status IN ? AND ends_at >= ?",
			txn.AccountID,
			[]dbm.SubscriptionStatus{dbm.SubStatusActive, dbm.SubStatusTrialing, dbm.SubStatusPastDue},
			now.Unix()).
		Order("ends_at DESC").
		First(&current).Error
	if err == nil && current.AutoRenew && current.EndsAt > now.Unix() {
		starts = time.Unix(current.EndsAt, 0)
	}

	var ends time.Time
	switch plan.Period {
	case dbm.PeriodYear:
		ends = starts.AddDate(1, 0, 0)
	default:
		ends = starts.AddDate(0, 1, 0)
	}

	sub := dbm.Subscription{
		AccountID:     txn.AccountID,
		PlanID:        plan.ID,
		Status:        dbm.SubStatusActive,
		StartsAt:      starts.Unix(),
		EndsAt:        ends.Unix(),
		AutoRenew:     true,
		Provider:      providerName,
		ProviderSubID: fmt.Sprintf("payos-sub:%s", txn.ProviderTxnID),
		Metadata: jsonRaw(map[string]any{
			"activated_by_txn": txn.ID,
			"amount_minor":     txn.AmountMinor,
			"currency":         txn.Currency,
		}),
	}
	if err := tx.Create(&sub).Error; err != nil {
		return err
	}

	// Mirror the entitlement onto the profile so login checks stay cheap.
	return tx.Model(&dbm.Profile{}).
		Where("account_id = ?", txn.AccountID).
		Updates(map[string]interface{}{
			"plan_type":   dbm.PlanTypePro,
			"plan_status": dbm.PlanStatusActive,
		}).Error
}

func jsonRaw(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
