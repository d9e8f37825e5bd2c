package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"fintrack/internal/model"
	"fintrack/internal/repository/mocks"
	"fintrack/internal/service"
)

type testEnv struct {
	server          *Server
	handler         http.Handler
	userRepo        *mocks.Users
	categoryRepo    *mocks.Categories
	transactionRepo *mocks.Transactions
	auth            *service.Auth
}

func newTestEnv() *testEnv {
	userRepo := new(mocks.Users)
	categoryRepo := new(mocks.Categories)
	transactionRepo := new(mocks.Transactions)

	locker := service.NewLocker()
	auth := service.NewAuth(userRepo, "test-secret", time.Hour)
	srv := New(
		auth,
		service.NewCategories(categoryRepo, transactionRepo, locker),
		service.NewTransactions(transactionRepo, categoryRepo, locker),
		service.NewReporter(categoryRepo, transactionRepo),
		validator.New(),
	)
	return &testEnv{
		server:          srv,
		handler:         srv.Handler(),
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		auth:            auth,
	}
}

func (e *testEnv) token(t *testing.T, ownerID int64) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	e.userRepo.On("GetByEmail", mock.Anything, "owner@example.com").
		Return(&model.User{ID: ownerID, Email: "owner@example.com", PasswordHash: string(hash)}, nil).Once()
	token, err := e.auth.Login(context.Background(), "owner@example.com", "secret123")
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func TestServer_RegisterValidation(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/users/register", "", `{"username":"d","email":"not-an-email","password":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env.userRepo.AssertNotCalled(t, "Create")
}

func TestServer_RegisterAndLogin(t *testing.T) {
	env := newTestEnv()
	env.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).ID = 7
		}).
		Return(int64(7), nil)

	rec := env.do(t, http.MethodPost, "/api/users/register", "", `{"username":"dima","email":"dima@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var user model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.Equal(t, int64(7), user.ID)
	// the hash never leaves the server
	require.NotContains(t, rec.Body.String(), "password")
}

func TestServer_ProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/categories", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/categories", "not-a-token", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_CategoryLifecycle(t *testing.T) {
	env := newTestEnv()
	token := env.token(t, 7)

	id := primitive.NewObjectID()
	env.categoryRepo.On("Insert", mock.Anything, mock.AnythingOfType("*model.Category")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Category).ID = id
		}).
		Return(id, nil)

	rec := env.do(t, http.MethodPost, "/api/categories", token, `{"name":"Salary","type":"income"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var category model.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &category))
	require.Equal(t, int64(7), category.OwnerID)
	require.Equal(t, model.Income, category.Type)

	rec = env.do(t, http.MethodPost, "/api/categories", token, `{"name":"Stocks","type":"investment"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// delete is refused while transactions reference the category
	env.categoryRepo.On("Get", mock.Anything, int64(7), id).
		Return(&model.Category{ID: id, OwnerID: 7, Name: "Salary", Type: model.Income}, nil)
	env.transactionRepo.On("CountByCategory", mock.Anything, int64(7), id).Return(int64(1), nil).Once()

	rec = env.do(t, http.MethodDelete, "/api/categories/"+id.Hex(), token, "")
	require.Equal(t, http.StatusConflict, rec.Code)

	env.transactionRepo.On("CountByCategory", mock.Anything, int64(7), id).Return(int64(0), nil)
	env.categoryRepo.On("Remove", mock.Anything, int64(7), id).Return(nil)

	rec = env.do(t, http.MethodDelete, "/api/categories/"+id.Hex(), token, "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UpdateCategory(t *testing.T) {
	env := newTestEnv()
	token := env.token(t, 7)

	id := primitive.NewObjectID()
	env.categoryRepo.On("Get", mock.Anything, int64(7), id).
		Return(&model.Category{ID: id, OwnerID: 7, Name: "Rent", Type: model.Expense}, nil)
	env.categoryRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)

	rec := env.do(t, http.MethodPut, "/api/categories/"+id.Hex(), token, `{"name":"Housing","type":"expense"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var category model.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &category))
	require.Equal(t, "Housing", category.Name)

	// flipping the type is refused while transactions reference the category
	env.transactionRepo.On("CountByCategory", mock.Anything, int64(7), id).Return(int64(2), nil)
	rec = env.do(t, http.MethodPut, "/api/categories/"+id.Hex(), token, `{"name":"Housing","type":"income"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_CreateTransaction(t *testing.T) {
	env := newTestEnv()
	token := env.token(t, 7)

	categoryID := primitive.NewObjectID()
	env.categoryRepo.On("Get", mock.Anything, int64(7), categoryID).
		Return(&model.Category{ID: categoryID, OwnerID: 7, Name: "Rent", Type: model.Expense}, nil)

	id := primitive.NewObjectID()
	env.transactionRepo.On("Insert", mock.Anything, mock.AnythingOfType("*model.Transaction")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Transaction).ID = id
		}).
		Return(id, nil)

	rec := env.do(t, http.MethodPost, "/api/transactions", token,
		`{"categoryId":"`+categoryID.Hex()+`","amount":400,"date":"2024-01-10","description":"january rent"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/transactions", token,
		`{"categoryId":"`+categoryID.Hex()+`","amount":-1,"date":"2024-01-10"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/transactions", token,
		`{"categoryId":"`+categoryID.Hex()+`","amount":400,"date":"10.01.2024"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_CreateTransactionForeignCategory(t *testing.T) {
	env := newTestEnv()
	token := env.token(t, 7)

	categoryID := primitive.NewObjectID()
	env.categoryRepo.On("Get", mock.Anything, int64(7), categoryID).
		Return(nil, model.ErrNotFound)

	rec := env.do(t, http.MethodPost, "/api/transactions", token,
		`{"categoryId":"`+categoryID.Hex()+`","amount":400,"date":"2024-01-10"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Dashboard(t *testing.T) {
	env := newTestEnv()
	token := env.token(t, 7)

	salary := model.Category{ID: primitive.NewObjectID(), OwnerID: 7, Name: "Salary", Type: model.Income}
	rent := model.Category{ID: primitive.NewObjectID(), OwnerID: 7, Name: "Rent", Type: model.Expense}
	env.categoryRepo.On("GetAllByOwner", mock.Anything, int64(7)).
		Return([]model.Category{salary, rent}, nil)
	env.transactionRepo.On("GetAllByOwner", mock.Anything, int64(7), mock.Anything).
		Return([]model.Transaction{
			{ID: primitive.NewObjectID(), OwnerID: 7, CategoryID: salary.ID, Amount: 1000, Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)},
			{ID: primitive.NewObjectID(), OwnerID: 7, CategoryID: rent.ID, Amount: 400, Date: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)},
			{ID: primitive.NewObjectID(), OwnerID: 7, CategoryID: rent.ID, Amount: 400, Date: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)},
		}, nil)

	rec := env.do(t, http.MethodGet, "/api/dashboard?granularity=month", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary model.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Equal(t, float64(1000), summary.TotalIncome)
	require.Equal(t, float64(800), summary.TotalExpense)
	require.Equal(t, float64(200), summary.NetBalance)
	require.Equal(t, model.PeriodTotals{Income: 1000, Expense: 400, Net: 600}, summary.ByPeriod["2024-01"])
	require.Equal(t, model.PeriodTotals{Income: 0, Expense: 400, Net: -400}, summary.ByPeriod["2024-02"])

	rec = env.do(t, http.MethodGet, "/api/dashboard?granularity=fortnight", token, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
