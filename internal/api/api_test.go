package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/salesdash/internal/pkg/constants"
	"github.com/akarpov/salesdash/internal/pkg/dataset"
	"github.com/akarpov/salesdash/internal/pkg/utils"
)

func newTestService(t *testing.T) *APIService {
	t.Helper()

	cache := dataset.NewCache(dataset.NewFixtureLoader(), time.Hour)
	svc, err := NewAPIService(cache)
	require.NoError(t, err)
	return svc
}

func do(svc *APIService, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	svc.router.ServeHTTP(rec, req)
	return rec
}

func TestGetRelatedByOrder(t *testing.T) {
	svc := newTestService(t)

	rec := do(svc, httptest.NewRequest(http.MethodGet, "/api/v1/related?order_id=10248", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"selector":"order"`)
	assert.Contains(t, body, "Queso Cabrales")
	assert.Contains(t, body, "Vins et alcools Chevalier")
}

func TestGetRelatedPrecedence(t *testing.T) {
	svc := newTestService(t)

	rec := do(svc, httptest.NewRequest(http.MethodGet,
		"/api/v1/related?customer_id=ALFKI&order_id=10248&category_id=4", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"selector":"order"`)
}

func TestGetRelatedNoSelector(t *testing.T) {
	svc := newTestService(t)

	rec := do(svc, httptest.NewRequest(http.MethodGet, "/api/v1/related", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRelatedBadDateFormat(t *testing.T) {
	svc := newTestService(t)

	rec := do(svc, httptest.NewRequest(http.MethodGet,
		"/api/v1/related?start_date=07/04/1996&end_date=07/05/1996", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRelatedReversedDateRange(t *testing.T) {
	svc := newTestService(t)

	rec := do(svc, httptest.NewRequest(http.MethodGet,
		"/api/v1/related?start_date=1996-07-10&end_date=1996-07-04", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRelatedUnknownKeyIsEmptyNotError(t *testing.T) {
	svc := newTestService(t)

	rec := do(svc, httptest.NewRequest(http.MethodGet, "/api/v1/related?customer_id=ZZZZZ", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"orders"`)
}

func TestTables(t *testing.T) {
	svc := newTestService(t)

	rec := do(svc, httptest.NewRequest(http.MethodGet, "/api/v1/tables", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order_details"`)

	rec = do(svc, httptest.NewRequest(http.MethodGet, "/api/v1/tables/customers", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ALFKI")

	rec = do(svc, httptest.NewRequest(http.MethodGet, "/api/v1/tables/invoices", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInsightsEndpoints(t *testing.T) {
	svc := newTestService(t)

	for _, path := range []string{
		"/api/v1/insights/customers",
		"/api/v1/insights/orders",
		"/api/v1/insights/sales",
		"/api/v1/insights/employees",
	} {
		rec := do(svc, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestCacheRefreshRequiresAdminToken(t *testing.T) {
	svc := newTestService(t)

	rec := do(svc, httptest.NewRequest(http.MethodPost, "/api/v1/cache/refresh", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCacheRefreshWithAdminToken(t *testing.T) {
	viper.Set(constants.ViperKeySecret, "test-secret")
	defer viper.Set(constants.ViperKeySecret, "")

	svc := newTestService(t)

	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Secret: "test-secret"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cache/refresh", nil)
	req.AddCookie(&http.Cookie{Name: constants.CookieKeySecretToken, Value: token})

	rec := do(svc, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"refreshed":true`)
}

func TestHealthz(t *testing.T) {
	svc := newTestService(t)

	// Warm the cache so the health payload reports table sizes.
	do(svc, httptest.NewRequest(http.MethodGet, "/api/v1/tables", nil))

	rec := do(svc, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.True(t, strings.Contains(rec.Body.String(), `"orders":10`), rec.Body.String())
}
