package movementdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/gustavoschneider/simple-code-challenge/internal/domain"
	"github.com/gustavoschneider/simple-code-challenge/pkg/errorspkg"
	"github.com/gustavoschneider/simple-code-challenge/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(h Handler) *gin.Engine {
	router := gin.New()
	router.GET("/:id/movements", h.ListForMonth)
	router.POST("/:id/savings", h.DepositToSavings)
	router.POST("/:id/withdraw", h.WithdrawFromSavings)

	return router
}

func transferBody(t *testing.T, amount float64) *bytes.Reader {
	t.Helper()

	body, err := json.Marshal(map[string]float64{"amount": amount})
	require.NoError(t, err)

	return bytes.NewReader(body)
}

func TestDepositToSavings(t *testing.T) {
	amount := decimal.NewFromInt(100)
	movement := domain.Movement{
		ID:          1,
		Amount:      amount,
		Description: domain.DescriptionToSavings,
		Date:        time.Date(2023, time.June, 15, 12, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name           string
		url            string
		body           []byte
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantDetail     string
	}{
		{
			name: "OK",
			url:  "/1/savings",
			body: []byte(`{"amount": 100}`),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					DepositToSavings(gomock.Any(), gomock.Eq(int64(1)), gomock.Eq(amount)).
					Times(1).
					Return(movement, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "InsufficientFunds",
			url:  "/1/savings",
			body: []byte(`{"amount": 10000}`),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					DepositToSavings(gomock.Any(), gomock.Eq(int64(1)), gomock.Eq(decimal.NewFromInt(10000))).
					Times(1).
					Return(domain.Movement{}, domain.ErrInsufficientFunds)
			},
			wantStatusCode: http.StatusBadRequest,
			wantDetail:     "Account does not have funds.",
		},
		{
			name: "AccountNotFound",
			url:  "/99/savings",
			body: []byte(`{"amount": 100}`),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					DepositToSavings(gomock.Any(), gomock.Eq(int64(99)), gomock.Eq(amount)).
					Times(1).
					Return(domain.Movement{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantDetail:     "Account not found!",
		},
		{
			name: "MissingAmount",
			url:  "/1/savings",
			body: []byte(`{}`),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					DepositToSavings(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantDetail:     "Amount field is required",
		},
		{
			name: "InternalServerError",
			url:  "/1/savings",
			body: []byte(`{"amount": 100}`),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					DepositToSavings(gomock.Any(), gomock.Eq(int64(1)), gomock.Eq(amount)).
					Times(1).
					Return(domain.Movement{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantDetail:     errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			tc.buildStubs(service)

			router := setupRouter(NewHandler(service))

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, tc.url, bytes.NewReader(tc.body))
			router.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantStatusCode == http.StatusOK {
				var got domain.Movement
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))

				if diff := cmp.Diff(movement, got); diff != "" {
					t.Errorf("movement mismatch (-want +got):\n%s", diff)
				}

				return
			}

			var res web.DetailResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
			require.Equal(t, tc.wantDetail, res.Detail)
		})
	}
}

func TestWithdrawFromSavings(t *testing.T) {
	amount := decimal.NewFromInt(25)
	movement := domain.Movement{
		ID:          2,
		Amount:      amount,
		Description: domain.DescriptionToBalance,
		Date:        time.Date(2023, time.June, 15, 12, 0, 0, 0, time.UTC),
	}

	t.Run("OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewMockService(ctrl)

		service.EXPECT().
			WithdrawFromSavings(gomock.Any(), gomock.Eq(int64(1)), gomock.Eq(amount)).
			Times(1).
			Return(movement, nil)

		router := setupRouter(NewHandler(service))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/1/withdraw", transferBody(t, 25))
		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)

		var got domain.Movement
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))

		if diff := cmp.Diff(movement, got); diff != "" {
			t.Errorf("movement mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("InsufficientSavings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewMockService(ctrl)

		service.EXPECT().
			WithdrawFromSavings(gomock.Any(), gomock.Eq(int64(1)), gomock.Eq(amount)).
			Times(1).
			Return(domain.Movement{}, domain.ErrInsufficientSavings)

		router := setupRouter(NewHandler(service))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/1/withdraw", transferBody(t, 25))
		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var res web.DetailResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		require.Equal(t, "Account savings does not have funds.", res.Detail)
	})
}

func TestListForMonth(t *testing.T) {
	account := domain.Account{
		ID:      1,
		Balance: decimal.NewFromInt(900),
		Savings: decimal.NewFromInt(101),
	}
	statement := domain.MonthStatement{
		Account: account,
		Movements: []domain.Movement{
			{
				ID:          1,
				Amount:      decimal.NewFromInt(100),
				Description: domain.DescriptionToSavings,
				Date:        time.Date(2023, time.June, 15, 12, 0, 0, 0, time.UTC),
			},
		},
	}

	testCases := []struct {
		name           string
		url            string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantDetail     string
	}{
		{
			name: "ExplicitMonth",
			url:  "/1/movements?month=6",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ListForMonth(gomock.Any(), gomock.Eq(int64(1)), gomock.Eq(6)).
					Times(1).
					Return(statement, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "MonthOmitted",
			url:  "/1/movements",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ListForMonth(gomock.Any(), gomock.Eq(int64(1)), gomock.Eq(0)).
					Times(1).
					Return(statement, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "MonthOutOfRange",
			url:  "/1/movements?month=13",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ListForMonth(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantDetail:     "Month field value is above maximum",
		},
		{
			name: "AccountNotFound",
			url:  "/99/movements",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ListForMonth(gomock.Any(), gomock.Eq(int64(99)), gomock.Eq(0)).
					Times(1).
					Return(domain.MonthStatement{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantDetail:     "Account not found!",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			tc.buildStubs(service)

			router := setupRouter(NewHandler(service))

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, tc.url, nil)
			router.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantStatusCode == http.StatusOK {
				var got domain.MonthStatement
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))

				if diff := cmp.Diff(statement, got); diff != "" {
					t.Errorf("statement mismatch (-want +got):\n%s", diff)
				}

				return
			}

			var res web.DetailResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
			require.Equal(t, tc.wantDetail, res.Detail)
		})
	}
}
