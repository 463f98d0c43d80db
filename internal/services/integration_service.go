package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	apiKeySecretBytes = 32
	apiKeySecretTag   = "ftk_"
)

const amountExpr = `(\d(?:[\d.,]*\d)?)`

var (
	// Labelled totals win over any other amount in the message.
	totalAmountPattern    = regexp.MustCompile(`(?i)\b(?:total|totale|importo|amount|betrag|montant)\b\s*:?\s*(?:€|\beur(?:os?)?)?\s*` + amountExpr)
	currencyAmountPattern = regexp.MustCompile(`(?i)(?:€|\beur(?:os?)?)\s*` + amountExpr + `|` + amountExpr + `\s*(?:€|\beur(?:os?)?\b)`)
	subjectNoisePattern   = regexp.MustCompile(`(?i)^(?:(?:re|fw|fwd|i|r)\s*:\s*)+`)
)

type integrationService struct {
	keys         repositories.APIKeyRepositoryInterface
	expenses     ExpenseServiceInterface
	categories   CategoryServiceInterface
	auditService AuditServiceInterface
	auditLogger  AuditLoggerInterface
	metrics      MetricsRecorderInterface
	now          func() time.Time
}

func NewIntegrationService(
	keys repositories.APIKeyRepositoryInterface,
	expenses ExpenseServiceInterface,
	categories CategoryServiceInterface,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) IntegrationServiceInterface {
	return &integrationService{
		keys:         keys,
		expenses:     expenses,
		categories:   categories,
		auditService: auditService,
		auditLogger:  auditLogger,
		metrics:      metrics,
		now:          time.Now,
	}
}

// CreateKey issues a new key. The secret is returned once and only its hash
// is stored.
func (s *integrationService) CreateKey(ctx context.Context, userID uuid.UUID, name, ipAddress, userAgent string) (*models.APIKey, string, error) {
	secret, err := generateAPISecret()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate api key: %w", err)
	}

	key := &models.APIKey{
		UserID:  userID,
		Name:    strings.TrimSpace(name),
		Prefix:  secret[:models.APIKeyPrefixLength],
		KeyHash: hashAPISecret(secret),
	}
	if err := key.Validate(); err != nil {
		return nil, "", invalidInput("name", err)
	}

	if err := s.keys.Create(ctx, key); err != nil {
		return nil, "", err
	}

	if err := s.auditService.LogAPIKeyCreated(ctx, userID, key.ID, ipAddress, userAgent); err != nil {
		s.auditLogger.LogAuditWriteFailed(ctx, models.AuditActionKeyCreated, err.Error())
	}

	return key, secret, nil
}

func (s *integrationService) ListKeys(ctx context.Context, userID uuid.UUID) ([]models.APIKey, error) {
	return s.keys.ListByUser(ctx, userID)
}

func (s *integrationService) RevokeKey(ctx context.Context, userID, id uuid.UUID, ipAddress, userAgent string) error {
	if err := s.keys.Revoke(ctx, userID, id, s.now()); err != nil {
		return err
	}

	if err := s.auditService.LogAPIKeyRevoked(ctx, userID, id, ipAddress, userAgent); err != nil {
		s.auditLogger.LogAuditWriteFailed(ctx, models.AuditActionKeyRevoked, err.Error())
	}

	return nil
}

// Authenticate resolves a presented secret to its key. Unknown and revoked
// keys are rejected.
func (s *integrationService) Authenticate(ctx context.Context, secret string) (*models.APIKey, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, s.reject(ctx, "missing", ErrInvalidAPIKey)
	}

	key, err := s.keys.GetByHash(ctx, hashAPISecret(secret))
	if err != nil {
		if errors.Is(err, repositories.ErrAPIKeyNotFound) {
			return nil, s.reject(ctx, "unknown", ErrInvalidAPIKey)
		}
		return nil, err
	}

	if key.IsRevoked() {
		return nil, s.reject(ctx, "revoked", ErrAPIKeyRevoked)
	}

	if err := s.keys.TouchLastUsed(ctx, key.ID, s.now()); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter(MetricAPIKeyAuth, map[string]string{"status": "success"})
	s.auditLogger.LogAPIKeyAuthenticated(ctx, key.ID, key.UserID)

	return key, nil
}

func (s *integrationService) reject(ctx context.Context, reason string, err error) error {
	s.metrics.IncrementCounter(MetricAPIKeyAuth, map[string]string{"status": reason})
	s.auditLogger.LogAPIKeyRejected(ctx, reason)
	return err
}

// IngestShortcut records an expense sent by the iPhone shortcut. The
// category hint, merchant and description are matched against the user's
// expense categories in that order.
func (s *integrationService) IngestShortcut(ctx context.Context, userID uuid.UUID, req *dto.ShortcutExpenseRequest) (*dto.IngestedExpenseResponse, error) {
	amount, err := parseLooseAmount(req.Amount)
	if err != nil {
		return nil, invalidInput("amount", err)
	}

	return s.ingest(ctx, userID, models.ExpenseSourceShortcut, ingestion{
		amount:      amount,
		description: req.Description,
		merchant:    req.Merchant,
		date:        req.Date,
		hints:       []string{req.Category, req.Merchant, req.Description},
	})
}

// IngestEmail parses a forwarded receipt. The merchant is the sender's
// display name, falling back to the subject.
func (s *integrationService) IngestEmail(ctx context.Context, userID uuid.UUID, req *dto.EmailExpenseRequest) (*dto.IngestedExpenseResponse, error) {
	amount, err := ExtractEmailAmount(req.Subject + "\n" + req.Body)
	if err != nil {
		return nil, err
	}

	subject := cleanSubject(req.Subject)
	merchant := senderName(req.From)
	if merchant == "" {
		merchant = subject
	}

	return s.ingest(ctx, userID, models.ExpenseSourceEmail, ingestion{
		amount:      amount,
		description: subject,
		merchant:    merchant,
		date:        req.Date,
		hints:       []string{merchant, subject, req.Body},
	})
}

type ingestion struct {
	amount      decimal.Decimal
	description string
	merchant    string
	date        string
	hints       []string
}

func (s *integrationService) ingest(ctx context.Context, userID uuid.UUID, source string, in ingestion) (*dto.IngestedExpenseResponse, error) {
	category, confidence, err := s.categories.Match(ctx, userID, in.hints...)
	if err != nil {
		return nil, err
	}

	date := strings.TrimSpace(in.date)
	if date == "" {
		date = s.now().Format(models.DateLayout)
	}

	req := &dto.CreateExpenseRequest{
		Amount:      in.amount.StringFixed(2),
		Description: truncate(strings.TrimSpace(in.description), 500),
		Merchant:    truncate(strings.TrimSpace(in.merchant), 255),
		Date:        date,
	}
	response := &dto.IngestedExpenseResponse{Confidence: confidence}
	if category != nil {
		id := category.ID.String()
		req.CategoryID = &id
		response.Category = category.Name
	}

	expense, err := s.expenses.Create(ctx, userID, req, source)
	if err != nil {
		return nil, err
	}
	response.Expense = *expense

	s.auditLogger.LogExpenseIngested(ctx, userID, expense.ID, source, confidence)
	if err := s.auditService.LogExpenseIngested(ctx, userID, expense.ID, source); err != nil {
		s.auditLogger.LogAuditWriteFailed(ctx, models.AuditActionIngested, err.Error())
	}

	return response, nil
}

// ExtractEmailAmount finds the amount paid in receipt text. A labelled total
// is preferred; otherwise the first amount next to a euro marker is used.
func ExtractEmailAmount(text string) (decimal.Decimal, error) {
	if m := totalAmountPattern.FindStringSubmatch(text); m != nil {
		if amount, err := parseLooseAmount(m[1]); err == nil && amount.IsPositive() {
			return amount, nil
		}
	}

	for _, m := range currencyAmountPattern.FindAllStringSubmatch(text, -1) {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if amount, err := parseLooseAmount(raw); err == nil && amount.IsPositive() {
			return amount, nil
		}
	}

	return decimal.Zero, ErrUnparsableExpense
}

// parseLooseAmount accepts both 1,234.56 and 1.234,56 as well as a leading
// euro sign. The right-most separator followed by one or two digits is the
// decimal point.
func parseLooseAmount(value string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(value)
	raw = strings.TrimPrefix(raw, "€")
	raw = strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(raw), "EUR"))
	raw = strings.ReplaceAll(raw, " ", "")
	if raw == "" {
		return decimal.Zero, models.ErrInvalidAmount
	}

	sep := strings.LastIndexAny(raw, ".,")
	if sep >= 0 {
		whole := strings.NewReplacer(".", "", ",", "").Replace(raw[:sep])
		fraction := raw[sep+1:]
		if len(fraction) == 3 && !strings.ContainsAny(fraction, ".,") {
			raw = whole + fraction
		} else {
			raw = whole + "." + fraction
		}
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	if !amount.IsPositive() {
		return decimal.Zero, models.ErrInvalidAmount
	}
	return amount.Round(moneyDecimals), nil
}

func senderName(from string) string {
	from = strings.TrimSpace(from)
	if from == "" {
		return ""
	}
	addr, err := mail.ParseAddress(from)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(addr.Name)
}

func cleanSubject(subject string) string {
	return strings.TrimSpace(subjectNoisePattern.ReplaceAllString(strings.TrimSpace(subject), ""))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func generateAPISecret() (string, error) {
	buf := make([]byte, apiKeySecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return apiKeySecretTag + hex.EncodeToString(buf), nil
}

func hashAPISecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
