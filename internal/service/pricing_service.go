package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Cheertaboi/refill-pricing-service/internal/concurrency"
	"github.com/Cheertaboi/refill-pricing-service/internal/models"
	"github.com/Cheertaboi/refill-pricing-service/internal/pricing"
)

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrMissingName          = errors.New("prescription name is required")
	ErrBatchTooLarge        = fmt.Errorf("batch exceeds %d items", MaxBatchSize)
)

// MaxBatchSize is the most requests QuoteBatch accepts in one call.
const MaxBatchSize = 100

// Repos required by service (use interfaces to allow mocking)
type PrescriptionRepo interface {
	GetByName(ctx context.Context, name string) (*models.Prescription, error)
	List(ctx context.Context) ([]models.Prescription, error)
	Upsert(ctx context.Context, p models.Prescription) (int, error)
}

type QuoteStore interface {
	SaveQuotes(ctx context.Context, quotes ...models.Quote) error
}

type QuoteCache interface {
	Get(ctx context.Context, key string) (models.Quote, bool)
	Set(ctx context.Context, key string, q models.Quote)
	Delete(ctx context.Context, key string)
}

// BatchError reports which request in a batch failed.
type BatchError struct {
	Index int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

type PricingService struct {
	prescriptions PrescriptionRepo
	quotes        QuoteStore // optional
	cache         QuoteCache
	workers       int
	logger        *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewPricingService(pRepo PrescriptionRepo, qStore QuoteStore, cache QuoteCache, workers int, logger *zap.Logger) *PricingService {
	if workers < 1 {
		workers = 1
	}
	return &PricingService{
		prescriptions: pRepo,
		quotes:        qStore,
		cache:         cache,
		workers:       workers,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
		newID:         func() string { return uuid.NewString() },
	}
}

// build runs the pricing chain: total cost, subscription discount, coupon.
func (s *PricingService) build(req models.QuoteRequest) (models.Quote, error) {
	name := strings.TrimSpace(req.Prescription)
	if name == "" {
		return models.Quote{}, ErrMissingName
	}
	base, err := pricing.CheckedTotalCost(req.PricePerRefill, req.Refills)
	if err != nil {
		return models.Quote{}, err
	}
	afterDiscount := pricing.ApplyDiscount(base, req.Subscription)
	total := pricing.ApplyCoupon(afterDiscount, req.Coupon)

	return models.Quote{
		ID:             s.newID(),
		Prescription:   name,
		PricePerRefill: req.PricePerRefill,
		Refills:        req.Refills,
		Subscription:   req.Subscription,
		Coupon:         req.Coupon,
		BaseCost:       base,
		AfterDiscount:  afterDiscount,
		Total:          total,
		CreatedAt:      s.now(),
	}, nil
}

func (s *PricingService) persist(ctx context.Context, quotes ...models.Quote) error {
	if s.quotes == nil || len(quotes) == 0 {
		return nil
	}
	if err := s.quotes.SaveQuotes(ctx, quotes...); err != nil {
		return fmt.Errorf("save quotes: %w", err)
	}
	return nil
}

// Quote prices a single ad-hoc request.
func (s *PricingService) Quote(ctx context.Context, req models.QuoteRequest) (models.Quote, error) {
	q, err := s.build(req)
	if err != nil {
		return models.Quote{}, err
	}
	if err := s.persist(ctx, q); err != nil {
		return models.Quote{}, err
	}
	s.logger.Debug("quote computed",
		zap.String("prescription", q.Prescription),
		zap.Float64("total", q.Total),
	)
	return q, nil
}

// QuoteBatch prices requests concurrently. Results keep the input order.
// When any request is invalid nothing is persisted and the lowest failing
// index is reported as a *BatchError.
func (s *PricingService) QuoteBatch(ctx context.Context, reqs []models.QuoteRequest) ([]models.Quote, error) {
	if len(reqs) > MaxBatchSize {
		return nil, ErrBatchTooLarge
	}
	out := make([]models.Quote, len(reqs))
	errs := make([]error, len(reqs))

	concurrency.SimpleWorkerPool(ctx, s.workers, len(reqs), func(_ context.Context, i int) {
		out[i], errs[i] = s.build(reqs[i])
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, err := range errs {
		if err != nil {
			return nil, &BatchError{Index: i, Err: err}
		}
	}

	if err := s.persist(ctx, out...); err != nil {
		return nil, err
	}
	return out, nil
}

// QuoteByName prices a catalog prescription using its stored flags.
func (s *PricingService) QuoteByName(ctx context.Context, name string) (models.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	if q, ok := s.cache.Get(ctx, name); ok {
		return q, nil
	}

	p, err := s.prescriptions.GetByName(ctx, name)
	if err != nil {
		return models.Quote{}, fmt.Errorf("get prescription: %w", err)
	}
	if p == nil {
		return models.Quote{}, ErrPrescriptionNotFound
	}

	q, err := s.Quote(ctx, p.Request())
	if err != nil {
		return models.Quote{}, err
	}
	s.cache.Set(ctx, name, q)
	return q, nil
}

func (s *PricingService) ListPrescriptions(ctx context.Context) ([]models.Prescription, error) {
	list, err := s.prescriptions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	if list == nil {
		list = []models.Prescription{}
	}
	return list, nil
}

// SavePrescription validates and stores a catalog entry, dropping any cached quote for it.
func (s *PricingService) SavePrescription(ctx context.Context, p models.Prescription) (int, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return 0, ErrMissingName
	}
	if _, err := pricing.CheckedTotalCost(p.PricePerRefill, p.Refills); err != nil {
		return 0, err
	}

	id, err := s.prescriptions.Upsert(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("upsert prescription: %w", err)
	}
	s.cache.Delete(ctx, p.Name)
	s.logger.Info("prescription saved", zap.String("name", p.Name), zap.Int("id", id))
	return id, nil
}
