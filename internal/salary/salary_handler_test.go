package salary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	salaryerrors "go-hrledger/internal/salary/errors"
)

type fakeService struct {
	createFn func(ctx context.Context, creatorID string, req CreateSalaryRequest) (SalaryResponse, error)
	payFn    func(ctx context.Context, actorID, id string, req ProcessPaymentRequest) (SalaryResponse, error)
}

func (f *fakeService) Create(ctx context.Context, creatorID string, req CreateSalaryRequest) (SalaryResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, creatorID, req)
	}
	return SalaryResponse{}, nil
}

func (f *fakeService) Update(ctx context.Context, actorID, id string, req UpdateSalaryRequest) (SalaryResponse, error) {
	return SalaryResponse{}, nil
}

func (f *fakeService) UpdateStatus(ctx context.Context, actorID, id string, req UpdateStatusRequest) (SalaryResponse, error) {
	return SalaryResponse{}, nil
}

func (f *fakeService) ProcessPayment(ctx context.Context, actorID, id string, req ProcessPaymentRequest) (SalaryResponse, error) {
	if f.payFn != nil {
		return f.payFn(ctx, actorID, id, req)
	}
	return SalaryResponse{}, nil
}

func (f *fakeService) Delete(ctx context.Context, actorID, id string) error { return nil }

func (f *fakeService) GenerateBulk(ctx context.Context, creatorID string, req BulkGenerateRequest) (BulkGenerateResponse, error) {
	return BulkGenerateResponse{}, nil
}

func (f *fakeService) GetByID(ctx context.Context, id string) (SalaryResponse, error) {
	return SalaryResponse{}, nil
}

func (f *fakeService) GetMySalaries(ctx context.Context, employeeID string, q SalaryQuery) ([]SalaryResponse, int64, error) {
	return nil, 0, nil
}

func (f *fakeService) GetAll(ctx context.Context, q SalaryQuery) ([]SalaryResponse, int64, error) {
	return nil, 0, nil
}

func (f *fakeService) Statistics(ctx context.Context, year int, department string) (StatisticsResponse, error) {
	return StatisticsResponse{}, nil
}

type fakeCache struct {
	stored  map[string][]byte
	deleted []string
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.stored == nil {
		f.stored = map[string][]byte{}
	}
	if b, ok := value.([]byte); ok {
		f.stored[key] = b
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.deleted = append(f.deleted, keys...)
	return redis.NewIntResult(int64(len(keys)), nil)
}

func idempotentPostContext(t *testing.T, path, body, cacheKey, lockKey string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("employee_id", uuid.NewString())
	c.Set("idempotency_cache_key", cacheKey)
	c.Set("idempotency_lock_key", lockKey)
	return c, w
}

func createBody(employeeID string) string {
	return fmt.Sprintf(`{
		"employee_id": %q,
		"month": 3,
		"year": 2025,
		"structure": {"basic": 30000},
		"working_days": 30,
		"present_days": 30
	}`, employeeID)
}

func TestCreateCompletesIdempotencyLoop(t *testing.T) {
	cacheKey := "idemp:/api/v1/salaries:user:key"
	lockKey := cacheKey + ":lock"

	t.Run("success caches response and releases lock", func(t *testing.T) {
		resp := SalaryResponse{ID: uuid.NewString(), Status: StatusPending, NetSalary: 40200}
		svc := &fakeService{
			createFn: func(ctx context.Context, creatorID string, req CreateSalaryRequest) (SalaryResponse, error) {
				return resp, nil
			},
		}
		cache := &fakeCache{}
		h := &Handler{service: svc, cache: cache, logger: zap.NewNop()}

		c, w := idempotentPostContext(t, "/salaries", createBody(uuid.NewString()), cacheKey, lockKey)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, []string{lockKey}, cache.deleted)

		var cached SalaryResponse
		assert.NoError(t, json.Unmarshal(cache.stored[cacheKey], &cached))
		assert.Equal(t, resp.ID, cached.ID)
	})

	t.Run("failure releases lock without caching", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(ctx context.Context, creatorID string, req CreateSalaryRequest) (SalaryResponse, error) {
				return SalaryResponse{}, salaryerrors.ErrSalaryAlreadyExists
			},
		}
		cache := &fakeCache{}
		h := &Handler{service: svc, cache: cache, logger: zap.NewNop()}

		c, w := idempotentPostContext(t, "/salaries", createBody(uuid.NewString()), cacheKey, lockKey)
		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Empty(t, cache.stored)
		assert.Equal(t, []string{lockKey}, cache.deleted)
	})

	t.Run("no redis is a no-op", func(t *testing.T) {
		h := &Handler{service: &fakeService{}, logger: zap.NewNop()}

		c, w := idempotentPostContext(t, "/salaries", createBody(uuid.NewString()), cacheKey, lockKey)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestProcessPaymentCompletesIdempotencyLoop(t *testing.T) {
	cacheKey := "idemp:/api/v1/salaries/:id/pay:user:key"
	lockKey := cacheKey + ":lock"

	resp := SalaryResponse{ID: uuid.NewString(), Status: StatusPaid}
	svc := &fakeService{
		payFn: func(ctx context.Context, actorID, id string, req ProcessPaymentRequest) (SalaryResponse, error) {
			return resp, nil
		},
	}
	cache := &fakeCache{}
	h := &Handler{service: svc, cache: cache, logger: zap.NewNop()}

	c, w := idempotentPostContext(t, "/salaries/"+resp.ID+"/pay", `{"payment_method":"BANK_TRANSFER"}`, cacheKey, lockKey)
	c.Params = gin.Params{{Key: "id", Value: resp.ID}}
	h.ProcessPayment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, cache.stored, cacheKey)
	assert.Equal(t, []string{lockKey}, cache.deleted)
}
