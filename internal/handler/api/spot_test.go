//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"boxoffice/internal/domain/order"
	"boxoffice/internal/handler/api"
	reqdto "boxoffice/internal/handler/dto/request"
	resdto "boxoffice/internal/handler/dto/response"
	"boxoffice/internal/pkg/errs"
	"boxoffice/internal/usecase/commands"
	"boxoffice/internal/usecase/queries"
	"boxoffice/tests/common/httptest"
	"boxoffice/tests/common/testutil"
	commandsmock "boxoffice/tests/mock/commands"
	queriesmock "boxoffice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SpotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSpotCommands
	mockQueries  *queriesmock.MockSpotQueries
	handler      *api.SpotHandler
}

func (s *SpotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSpotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSpotQueries(s.mockCtrl)
	s.handler = api.NewSpotHandler(s.mockCommands, s.mockQueries)

	spot := s.router.Group("/spot/:terminal")
	spot.GET("", s.handler.GetOrder)
	spot.POST("/lines", s.handler.AddLine)
	spot.PUT("/lines/:itemId", s.handler.SetQuantity)
	spot.DELETE("/lines/:index", s.handler.RemoveLine)
	spot.POST("/discount", s.handler.ApplyDiscount)
	spot.POST("/customer", s.handler.SelectCustomer)
	spot.POST("/reset", s.handler.Reset)
	spot.POST("/checkout", s.handler.Checkout)
}

func (s *SpotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSpotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SpotHandlerTestSuite))
}

func emptyOrderView(terminalID string) *queries.SpotOrderView {
	return &queries.SpotOrderView{
		TerminalID:     terminalID,
		Lines:          []queries.SpotLineView{},
		Subtotal:       decimal.Zero,
		DiscountAmount: decimal.Zero,
		Total:          decimal.Zero,
		Customer:       queries.SpotCustomerView{ID: "walkin", Name: "Walk-in Customer"},
	}
}

func spotResult(view *queries.SpotOrderView, message string) *commands.SpotResult {
	return &commands.SpotResult{
		Order:  view,
		Notice: commands.Notice{Message: message, Severity: commands.SeveritySuccess},
	}
}

func (s *SpotHandlerTestSuite) TestGetOrder() {
	s.Run("success: returns the live order", func() {
		view := emptyOrderView("t1")
		s.mockQueries.EXPECT().View("t1", nil).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spot/t1", nil, "token")

		var response resdto.SpotOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("t1", response.Order.TerminalID)
	})

	s.Run("success: cash_tendered adds a change preview", func() {
		view := emptyOrderView("t1")
		change := decimal.NewFromInt(50)
		view.ChangeDue = &change
		tendered := decimal.NewFromInt(50)
		s.mockQueries.EXPECT().View("t1", gomock.Cond(func(d *decimal.Decimal) bool {
			return d != nil && d.Equal(tendered)
		})).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spot/t1?cash_tendered=50", nil, "token")

		var response resdto.SpotOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Order.ChangeDue)
	})

	s.Run("success: a malformed cash_tendered previews change for zero", func() {
		view := emptyOrderView("t1")
		zero := decimal.Zero
		view.ChangeDue = &zero
		s.mockQueries.EXPECT().View("t1", gomock.Cond(func(d *decimal.Decimal) bool {
			return d != nil && d.IsZero()
		})).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spot/t1?cash_tendered=abc", nil, "token")

		var response resdto.SpotOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Order.ChangeDue)
	})

	s.Run("error: 409 while a checkout is pending", func() {
		s.mockQueries.EXPECT().View("t1", nil).Return(nil, errs.ErrCheckoutInProgress).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spot/t1", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "checkout")
	})
}

func (s *SpotHandlerTestSuite) TestAddLine() {
	url := "/spot/t1/lines"
	itemID := uuid.New()
	reqBody := map[string]any{"item_id": itemID.String(), "kind": "ticket"}

	s.Run("success: adds the item", func() {
		s.mockCommands.EXPECT().AddLine(gomock.Any(), "t1", gomock.Any()).
			Return(spotResult(emptyOrderView("t1"), "Added Adult"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.SpotOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Added Adult", response.Notice.Message)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing item_id", mutate: testutil.Field("item_id", nil)},
			{name: "missing kind", mutate: testutil.Field("kind", nil)},
			{name: "unknown kind", mutate: testutil.Field("kind", "voucher")},
			{name: "malformed item_id", mutate: testutil.Field("item_id", "not-a-uuid")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "item not found", commandsError: errs.ErrTicketTypeNotFound, expectedStatus: http.StatusNotFound},
			{name: "item inactive", commandsError: errs.ErrCatalogItemInactive, expectedStatus: http.StatusUnprocessableEntity},
			{name: "malformed catalog item", commandsError: order.ErrMalformedItem, expectedStatus: http.StatusUnprocessableEntity},
			{name: "checkout pending", commandsError: errs.ErrCheckoutInProgress, expectedStatus: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddLine(gomock.Any(), "t1", gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *SpotHandlerTestSuite) TestSetQuantity() {
	itemID := uuid.New()
	url := "/spot/t1/lines/" + itemID.String()
	reqBody := map[string]any{"kind": "ticket", "quantity": 3}

	s.Run("success: sets the quantity", func() {
		s.mockCommands.EXPECT().SetQuantity(gomock.Any(), "t1", itemID, gomock.Any()).
			Return(spotResult(emptyOrderView("t1"), "Updated Adult"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on a malformed item id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/spot/t1/lines/not-a-uuid", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "item ID")
	})

	s.Run("error: 400 on a negative quantity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"kind": "ticket", "quantity": -1}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *SpotHandlerTestSuite) TestRemoveLine() {
	s.Run("success: removes the line at index", func() {
		s.mockCommands.EXPECT().RemoveLine(gomock.Any(), "t1", 0).
			Return(spotResult(emptyOrderView("t1"), "Removed Adult"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/spot/t1/lines/0", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on a non-numeric index", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/spot/t1/lines/abc", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "index")
	})

	s.Run("error: 400 on an out of range index", func() {
		s.mockCommands.EXPECT().RemoveLine(gomock.Any(), "t1", 9).
			Return(nil, order.ErrLineIndexOutOfRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/spot/t1/lines/9", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "out of range")
	})
}

func (s *SpotHandlerTestSuite) TestApplyDiscount() {
	url := "/spot/t1/discount"

	s.Run("success: applies the code", func() {
		view := emptyOrderView("t1")
		view.DiscountCode = "SAVE10"
		s.mockCommands.EXPECT().ApplyDiscount(gomock.Any(), "t1", gomock.Any()).
			Return(spotResult(view, "Discount SAVE10 applied"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "SAVE10"}, "token")

		var response resdto.SpotOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("SAVE10", response.Order.DiscountCode)
	})

	s.Run("error: 400 when the code is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 on an unknown code", func() {
		s.mockCommands.EXPECT().ApplyDiscount(gomock.Any(), "t1", gomock.Any()).
			Return(nil, order.ErrUnknownDiscountCode).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "BOGUS"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "discount code")
	})
}

func (s *SpotHandlerTestSuite) TestSelectCustomer() {
	url := "/spot/t1/customer"

	s.Run("success: attaches a cataloged customer", func() {
		customerID := uuid.New()
		view := emptyOrderView("t1")
		view.Customer = queries.SpotCustomerView{ID: customerID.String(), Name: "Ana"}
		s.mockCommands.EXPECT().SelectCustomer(gomock.Any(), "t1", gomock.Any()).
			Return(spotResult(view, "Customer Ana selected"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"customer_id": customerID.String()}, "token")

		var response resdto.SpotOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Ana", response.Order.Customer.Name)
	})

	s.Run("error: 404 when the customer does not exist", func() {
		s.mockCommands.EXPECT().SelectCustomer(gomock.Any(), "t1", gomock.Any()).
			Return(nil, errs.ErrCustomerNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"customer_id": uuid.NewString()}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 422 when every walk-in field is blank", func() {
		s.mockCommands.EXPECT().SelectCustomer(gomock.Any(), "t1", gomock.Any()).
			Return(nil, order.ErrValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"name": "  "}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "customer field")
	})
}

func (s *SpotHandlerTestSuite) TestReset() {
	s.Run("success: clears the order", func() {
		s.mockCommands.EXPECT().Reset(gomock.Any(), "t1").
			Return(spotResult(emptyOrderView("t1"), "Order cleared"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spot/t1/reset", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *SpotHandlerTestSuite) TestCheckout() {
	url := "/spot/t1/checkout"
	reqBody := map[string]any{"cash_tendered": "50"}

	s.Run("success: returns 201 with booking id and change", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().Checkout(gomock.Any(), "t1", gomock.Any()).
			Return(&commands.CheckoutResult{
				BookingID: bookingID,
				ChangeDue: decimal.NewFromInt(5),
				Order:     emptyOrderView("t1"),
				Notice:    commands.Notice{Message: "Booking created", Severity: commands.SeveritySuccess},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(bookingID, response.BookingID)
		s.True(response.ChangeDue.Equal(decimal.NewFromInt(5)))
	})

	s.Run("error: 400 when cash_tendered is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("success: explicit zero tender still binds", func() {
		s.mockCommands.EXPECT().
			Checkout(gomock.Any(), "t1", gomock.Cond(func(req reqdto.CheckoutRequest) bool {
				return req.CashTendered != nil && req.CashTendered.IsZero()
			})).
			Return(&commands.CheckoutResult{
				BookingID: uuid.New(),
				ChangeDue: decimal.Zero,
				Order:     emptyOrderView("t1"),
				Notice:    commands.Notice{Message: "Booking created", Severity: commands.SeveritySuccess},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"cash_tendered": "0"}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "empty order", commandsError: order.ErrEmptyOrder, expectedStatus: http.StatusConflict},
			{name: "insufficient payment", commandsError: order.ErrInsufficientPayment, expectedStatus: http.StatusPaymentRequired},
			{name: "checkout already pending", commandsError: errs.ErrCheckoutInProgress, expectedStatus: http.StatusConflict},
			{name: "persistence failure", commandsError: errs.ErrDatabaseOperationFailed, expectedStatus: http.StatusBadGateway},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Checkout(gomock.Any(), "t1", gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
