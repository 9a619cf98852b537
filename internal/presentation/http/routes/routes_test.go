package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dukaops/enterprise-api/internal/application/service"
	"github.com/dukaops/enterprise-api/internal/config"
	"github.com/dukaops/enterprise-api/internal/domain/entity"
	"github.com/dukaops/enterprise-api/internal/infrastructure/cache"
	"github.com/dukaops/enterprise-api/internal/infrastructure/database"
	"github.com/dukaops/enterprise-api/internal/infrastructure/repository"
	"github.com/dukaops/enterprise-api/internal/presentation/http/handler"
	"github.com/dukaops/enterprise-api/pkg/utils"
)

// newTestServer builds the full HTTP stack over a seeded in-memory
// database so route tests exercise the same path production requests take.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedDefaultData(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	procurementRepo := repository.NewProcurementRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	importOrderRepo := repository.NewImportOrderRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	handlers := &Handlers{
		Auth:        handler.NewAuthHandler(service.NewAuthService(userRepo, jwtManager)),
		Dashboard:   handler.NewDashboardHandler(service.NewDashboardService(analyticsRepo, cache.NoopStatsCache{})),
		Catalog:     handler.NewCatalogHandler(service.NewCatalogService(productRepo, branchRepo)),
		POS:         handler.NewPOSHandler(service.NewPOSService(checkoutRepo, invoiceRepo)),
		Procurement: handler.NewProcurementHandler(service.NewProcurementService(procurementRepo)),
		Attendance:  handler.NewAttendanceHandler(service.NewAttendanceService(attendanceRepo)),
		ImportOrder: handler.NewImportOrderHandler(service.NewImportOrderService(importOrderRepo)),
		Finance:     handler.NewFinanceHandler(service.NewFinanceService(expenseRepo)),
		User:        handler.NewUserHandler(service.NewUserService(userRepo)),
	}

	router := Setup(handlers, &Deps{
		JWTManager: jwtManager,
		AccessGate: service.NewAccessService(userRepo),
		Cfg:        config.Load(),
	})

	return router, db
}

func userID(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	var user entity.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		t.Fatalf("load user %s: %v", username, err)
	}
	return user.ID
}

func doJSON(router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(router, http.MethodGet, "/health", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLoginSuccess(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			Username    string   `json:"username"`
			RoleName    string   `json:"role_name"`
			Permissions []string `json:"permissions"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Token == "" {
		t.Fatalf("expected success with token, got %+v", body)
	}
	if body.User.RoleName != "Admin" {
		t.Fatalf("expected Admin role, got %s", body.User.RoleName)
	}
	if len(body.User.Permissions) != 1 || body.User.Permissions[0] != "all" {
		t.Fatalf("expected [all] permissions, got %v", body.User.Permissions)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = doJSON(router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "ghost",
		"password": "admin123",
	}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", rec.Code)
	}
}

func TestImportOrdersAnonymousPassesThrough(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(router, http.MethodGet, "/api/import-orders", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected anonymous read to pass, got %d: %s", rec.Code, rec.Body.String())
	}

	var orders []map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&orders); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 seeded orders, got %d", len(orders))
	}
}

func TestImportOrdersUnknownCallerRejected(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(router, http.MethodGet, "/api/import-orders", nil, map[string]string{
		"x-user-id": "9999",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestImportOrdersMalformedCallerRejected(t *testing.T) {
	router, _ := newTestServer(t)

	// A garbage identifier is still a supplied identity; it must resolve
	// to no account and fail, not slip through as anonymous.
	for _, raw := range []string{"abc", "12abc", "-1", "18446744073709551616"} {
		rec := doJSON(router, http.MethodGet, "/api/import-orders", nil, map[string]string{
			"x-user-id": raw,
		})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for x-user-id %q, got %d", raw, rec.Code)
		}
	}
}

func TestImportOrdersCashierForbidden(t *testing.T) {
	router, db := newTestServer(t)
	cashier := userID(t, db, "cashier1")

	rec := doJSON(router, http.MethodGet, "/api/import-orders", nil, map[string]string{
		"x-user-id": strconv.FormatUint(uint64(cashier), 10),
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestImportOrdersAdminAndOfficerAllowed(t *testing.T) {
	router, db := newTestServer(t)

	for _, username := range []string{"admin", "procurement1"} {
		id := userID(t, db, username)
		rec := doJSON(router, http.MethodGet, "/api/import-orders", nil, map[string]string{
			"x-user-id": strconv.FormatUint(uint64(id), 10),
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected %s to pass, got %d", username, rec.Code)
		}
	}
}

func TestPatchImportOrderStatus(t *testing.T) {
	router, db := newTestServer(t)
	admin := userID(t, db, "admin")

	var order entity.ImportOrder
	if err := db.First(&order).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}

	rec := doJSON(router, http.MethodPatch, fmt.Sprintf("/api/import-orders/%d", order.ID),
		map[string]string{"status": "Delivered"},
		map[string]string{"x-user-id": strconv.FormatUint(uint64(admin), 10)})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var updated entity.ImportOrder
	if err := db.First(&updated, order.ID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if string(updated.Status) != "Delivered" {
		t.Fatalf("expected Delivered, got %s", updated.Status)
	}
}

func TestPatchImportOrderInvalidStatus(t *testing.T) {
	router, db := newTestServer(t)
	admin := userID(t, db, "admin")

	var order entity.ImportOrder
	if err := db.First(&order).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}

	rec := doJSON(router, http.MethodPatch, fmt.Sprintf("/api/import-orders/%d", order.ID),
		map[string]string{"status": "Teleported"},
		map[string]string{"x-user-id": strconv.FormatUint(uint64(admin), 10)})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCheckoutEndpoint(t *testing.T) {
	router, db := newTestServer(t)
	cashier := userID(t, db, "cashier1")

	var product entity.Product
	if err := db.Where("sku = ?", "LP-001").First(&product).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}
	if err := db.Create(&entity.Stock{BranchID: 1, ProductID: product.ID, Quantity: 10}).Error; err != nil {
		t.Fatalf("seed stock: %v", err)
	}

	rec := doJSON(router, http.MethodPost, "/api/pos/checkout", map[string]any{
		"branchId":      1,
		"userId":        cashier,
		"customerName":  "",
		"items":         []map[string]any{{"id": product.ID, "price": product.Price, "quantity": 4}},
		"totalAmount":   product.Price * 4,
		"paymentMethod": "CASH",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success   bool `json:"success"`
		InvoiceID uint `json:"invoiceId"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.InvoiceID == 0 {
		t.Fatalf("expected invoice id, got %+v", body)
	}

	var stock entity.Stock
	if err := db.Where("branch_id = ? AND product_id = ?", 1, product.ID).First(&stock).Error; err != nil {
		t.Fatalf("load stock: %v", err)
	}
	if stock.Quantity != 6 {
		t.Fatalf("expected stock 6 after sale, got %d", stock.Quantity)
	}

	var invoice entity.Invoice
	if err := db.First(&invoice, body.InvoiceID).Error; err != nil {
		t.Fatalf("load invoice: %v", err)
	}
	if invoice.CustomerName != "Walk-in Customer" {
		t.Fatalf("expected defaulted customer name, got %q", invoice.CustomerName)
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	router, db := newTestServer(t)
	cashier := userID(t, db, "cashier1")

	rec := doJSON(router, http.MethodPost, "/api/pos/checkout", map[string]any{
		"branchId":      1,
		"userId":        cashier,
		"items":         []map[string]any{},
		"totalAmount":   0,
		"paymentMethod": "CASH",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUsersByRole(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(router, http.MethodGet, "/api/users/by-role/Procurement%20Officer", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []struct {
		ID       uint   `json:"id"`
		FullName string `json:"full_name"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&users); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 procurement officer, got %d", len(users))
	}
	if users[0].FullName == "" {
		t.Fatalf("expected full name to be set")
	}
}

func TestDashboardStats(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(router, http.MethodGet, "/api/dashboard/stats", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var stats map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{
		"retailSalesToday", "totalImportOrders", "ordersInTransit",
		"pendingProcurement", "totalProducts", "totalUsers", "totalBranches",
	} {
		if _, ok := stats[key]; !ok {
			t.Fatalf("missing stats key %s", key)
		}
	}
}

func TestBranchesIncludeCountryName(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(router, http.MethodGet, "/api/branches", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var branches []struct {
		Name        string `json:"name"`
		CountryName string `json:"country_name"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&branches); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(branches) != 2 {
		t.Fatalf("expected 2 seeded branches, got %d", len(branches))
	}
	for _, b := range branches {
		if b.CountryName != "Tanzania" {
			t.Fatalf("expected Tanzania, got %s", b.CountryName)
		}
	}
}

func TestCreateProductDuplicateSKUConflicts(t *testing.T) {
	router, _ := newTestServer(t)

	payload := map[string]any{"name": "Keyboard", "sku": "KB-003", "price": 80000, "cost": 50000}
	rec := doJSON(router, http.MethodPost, "/api/products", payload, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on first create, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(router, http.MethodPost, "/api/products", payload, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate SKU, got %d", rec.Code)
	}
}
