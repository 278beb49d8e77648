// Package http exposes the forwarding commands and queries over a REST API.
package http

import (
	"errors"
	"net/http"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/address"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/payment"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Handlers bundles the use case handlers the server exposes.
type Handlers struct {
	AllocateAddress     commands.AllocateAddressCommandHandler
	DeactivateAddress   commands.DeactivateAddressCommandHandler
	UpsertHub           commands.UpsertHubCommandHandler
	DeactivateHub       commands.DeactivateHubCommandHandler
	CreateParcel        commands.CreateParcelCommandHandler
	UpdateParcel        commands.UpdateParcelCommandHandler
	UpdateParcelStatus  commands.UpdateParcelStatusCommandHandler
	GenerateInvoice     commands.GenerateInvoiceCommandHandler
	RecordPayment       commands.RecordPaymentCommandHandler
	RecordCashPayment   commands.RecordCashPaymentCommandHandler
	GetUserAddresses    queries.GetUserAddressesQueryHandler
	GetPrimaryAddress   queries.GetPrimaryAddressQueryHandler
	GetParcelHistory    queries.GetParcelHistoryQueryHandler
	SearchParcels       queries.SearchParcelsQueryHandler
	CheckPickupReady    queries.CheckPickupReadinessQueryHandler
	GetUnpaidInvoices   queries.GetUnpaidInvoicesQueryHandler
	GetUserInvoices     queries.GetUserInvoicesQueryHandler
	GetReceipt          queries.GetReceiptQueryHandler
	GetCashPayments     queries.GetCashPaymentsQueryHandler
	GetParcelStatistics queries.GetParcelStatisticsQueryHandler
	GetBillingStats     queries.GetBillingStatisticsQueryHandler
	GetHubStatistics    queries.GetHubStatisticsQueryHandler
}

// Server wires the REST routes to the application layer.
type Server struct {
	handlers Handlers
	gateway  ports.PaymentGateway
	printer  services.ReceiptPrinter
}

// NewServer creates an HTTP server over the given handlers. The payment
// gateway mints transaction references for card payments submitted without
// one.
func NewServer(handlers Handlers, gateway ports.PaymentGateway) *Server {
	return &Server{
		handlers: handlers,
		gateway:  gateway,
		printer:  services.NewReceiptPrinter(),
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/addresses", s.AllocateAddress)
	api.POST("/addresses/:id/deactivate", s.DeactivateAddress)
	api.GET("/users/:userId/addresses", s.GetUserAddresses)
	api.GET("/users/:userId/addresses/primary", s.GetPrimaryAddress)

	api.PUT("/hubs", s.UpsertHub)
	api.POST("/hubs/:code/deactivate", s.DeactivateHub)
	api.GET("/hubs/statistics", s.GetHubStatistics)

	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels", s.SearchParcels)
	api.PUT("/parcels/:id", s.UpdateParcel)
	api.POST("/parcels/:id/status", s.UpdateParcelStatus)
	api.GET("/parcels/:id/history", s.GetParcelHistory)
	api.GET("/parcels/tracking/:trackingNumber/pickup-readiness", s.CheckPickupReadiness)
	api.GET("/parcels/statistics", s.GetParcelStatistics)

	api.POST("/invoices", s.GenerateInvoice)
	api.GET("/users/:userId/invoices", s.GetUserInvoices)
	api.GET("/users/:userId/invoices/unpaid", s.GetUnpaidInvoices)
	api.GET("/invoices/:id/receipt", s.GetReceipt)
	api.POST("/invoices/:id/payments", s.RecordPayment)
	api.POST("/invoices/:id/payments/cash", s.RecordCashPayment)
	api.GET("/payments/cash", s.GetCashPayments)
	api.GET("/billing/statistics", s.GetBillingStatistics)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fail maps domain error kinds to HTTP statuses: unknown objects are 404,
// state collisions 409, rejected transitions and short payments 400,
// malformed values 422. Anything unrecognized is a 500.
func fail(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrAlreadySettled):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrInsufficientAmount):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		status = http.StatusUnprocessableEntity
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

type addressResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	AddressCode   string     `json:"addressCode"`
	Hub           string     `json:"hub"`
	Status        string     `json:"status"`
	IsPrimary     bool       `json:"isPrimary"`
	Street        string     `json:"street"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	Zip           string     `json:"zip"`
	GeneratedAt   time.Time  `json:"generatedAt"`
	DeactivatedAt *time.Time `json:"deactivatedAt,omitempty"`
}

func toAddressResponse(a *address.CustomAddress) addressResponse {
	us := a.USAddress()
	return addressResponse{
		ID:            a.ID().String(),
		UserID:        a.UserID().String(),
		AddressCode:   a.Code().String(),
		Hub:           a.Hub().String(),
		Status:        string(a.Status()),
		IsPrimary:     a.IsPrimary(),
		Street:        us.Street,
		City:          us.City,
		State:         us.State,
		Zip:           us.Zip,
		GeneratedAt:   a.GeneratedAt(),
		DeactivatedAt: a.DeactivatedAt(),
	}
}

// AllocateAddress handles POST /api/v1/addresses.
func (s *Server) AllocateAddress(ctx echo.Context) error {
	var request struct {
		UserID string `json:"userId"`
		Hub    string `json:"hub"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return fail(ctx, err)
	}
	hub, err := kernel.NewHubCode(request.Hub)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAllocateAddressCommand(userID, hub)
	if err != nil {
		return fail(ctx, err)
	}

	allocated, err := s.handlers.AllocateAddress.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAddressResponse(allocated))
}

// DeactivateAddress handles POST /api/v1/addresses/:id/deactivate.
func (s *Server) DeactivateAddress(ctx echo.Context) error {
	addressID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeactivateAddressCommand(addressID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.DeactivateAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUserAddresses handles GET /api/v1/users/:userId/addresses.
func (s *Server) GetUserAddresses(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "userId")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetUserAddressesQuery(userID)
	if err != nil {
		return fail(ctx, err)
	}

	addresses, err := s.handlers.GetUserAddresses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, addresses)
}

// GetPrimaryAddress handles GET /api/v1/users/:userId/addresses/primary.
func (s *Server) GetPrimaryAddress(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "userId")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetPrimaryAddressQuery(userID)
	if err != nil {
		return fail(ctx, err)
	}

	primary, err := s.handlers.GetPrimaryAddress.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, primary)
}

// UpsertHub handles PUT /api/v1/hubs.
func (s *Server) UpsertHub(ctx echo.Context) error {
	var request struct {
		Hub     string `json:"hub"`
		HubName string `json:"hubName"`
		Street  string `json:"street"`
		City    string `json:"city"`
		State   string `json:"state"`
		Zip     string `json:"zip"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	hub, err := kernel.NewHubCode(request.Hub)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpsertHubCommand(hub, request.HubName, address.USAddress{
		Street: request.Street,
		City:   request.City,
		State:  request.State,
		Zip:    request.Zip,
	})
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.UpsertHub.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeactivateHub handles POST /api/v1/hubs/:code/deactivate.
func (s *Server) DeactivateHub(ctx echo.Context) error {
	hub, err := kernel.NewHubCode(ctx.Param("code"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeactivateHubCommand(hub)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.DeactivateHub.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetHubStatistics handles GET /api/v1/hubs/statistics.
func (s *Server) GetHubStatistics(ctx echo.Context) error {
	stats, err := s.handlers.GetHubStatistics.Handle(ctx.Request().Context(), queries.NewGetHubStatisticsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

type parcelResponse struct {
	ID              string     `json:"id"`
	TrackingNumber  string     `json:"trackingNumber"`
	UserID          string     `json:"userId"`
	Status          string     `json:"status"`
	CurrentLocation string     `json:"currentLocation"`
	Warehouse       string     `json:"warehouse"`
	Description     string     `json:"description,omitempty"`
	ReceivedAt      *time.Time `json:"receivedAt,omitempty"`
	ShippedAt       *time.Time `json:"shippedAt,omitempty"`
	DeliveredAt     *time.Time `json:"deliveredAt,omitempty"`
}

func toParcelResponse(p *parcel.Parcel) parcelResponse {
	return parcelResponse{
		ID:              p.ID().String(),
		TrackingNumber:  p.TrackingNumber(),
		UserID:          p.UserID().String(),
		Status:          p.Status().String(),
		CurrentLocation: p.CurrentLocation(),
		Warehouse:       p.Attributes().Warehouse,
		Description:     p.Attributes().Description,
		ReceivedAt:      p.ReceivedAt(),
		ShippedAt:       p.ShippedAt(),
		DeliveredAt:     p.DeliveredAt(),
	}
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var request struct {
		AddressCode           string           `json:"addressCode"`
		CategoryID            string           `json:"categoryId"`
		Carrier               string           `json:"carrier"`
		CarrierTrackingNumber string           `json:"carrierTrackingNumber"`
		Description           string           `json:"description"`
		Weight                *decimal.Decimal `json:"weight"`
		Length                *decimal.Decimal `json:"length"`
		Width                 *decimal.Decimal `json:"width"`
		Height                *decimal.Decimal `json:"height"`
		DeclaredValue         *decimal.Decimal `json:"declaredValue"`
		Notes                 string           `json:"notes"`
		CreatedBy             string           `json:"createdBy"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	code, err := kernel.ParseAddressCode(request.AddressCode)
	if err != nil {
		return fail(ctx, err)
	}

	attrs := parcel.Attributes{
		Carrier:               request.Carrier,
		CarrierTrackingNumber: request.CarrierTrackingNumber,
		Description:           request.Description,
		Weight:                request.Weight,
		Length:                request.Length,
		Width:                 request.Width,
		Height:                request.Height,
		DeclaredValue:         request.DeclaredValue,
		Notes:                 request.Notes,
	}
	if request.CategoryID != "" {
		categoryID, idErr := kernel.UUIDFromString(request.CategoryID)
		if idErr != nil {
			return fail(ctx, idErr)
		}
		attrs.CategoryID = &categoryID
	}

	cmd, err := commands.NewCreateParcelCommand(code, attrs, request.CreatedBy)
	if err != nil {
		return fail(ctx, err)
	}

	created, err := s.handlers.CreateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toParcelResponse(created))
}

// UpdateParcel handles PUT /api/v1/parcels/:id. Only descriptive
// attributes are writable here; status moves through its own route.
func (s *Server) UpdateParcel(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var request struct {
		CategoryID            string           `json:"categoryId"`
		Carrier               string           `json:"carrier"`
		CarrierTrackingNumber string           `json:"carrierTrackingNumber"`
		Description           string           `json:"description"`
		Weight                *decimal.Decimal `json:"weight"`
		Length                *decimal.Decimal `json:"length"`
		Width                 *decimal.Decimal `json:"width"`
		Height                *decimal.Decimal `json:"height"`
		DeclaredValue         *decimal.Decimal `json:"declaredValue"`
		Warehouse             string           `json:"warehouse"`
		CurrentLocation       string           `json:"currentLocation"`
		Notes                 string           `json:"notes"`
		InternalNotes         string           `json:"internalNotes"`
		UpdatedBy             string           `json:"updatedBy"`
	}
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	attrs := parcel.Attributes{
		Carrier:               request.Carrier,
		CarrierTrackingNumber: request.CarrierTrackingNumber,
		Description:           request.Description,
		Weight:                request.Weight,
		Length:                request.Length,
		Width:                 request.Width,
		Height:                request.Height,
		DeclaredValue:         request.DeclaredValue,
		Warehouse:             request.Warehouse,
		CurrentLocation:       request.CurrentLocation,
		Notes:                 request.Notes,
		InternalNotes:         request.InternalNotes,
	}
	if request.CategoryID != "" {
		categoryID, idErr := kernel.UUIDFromString(request.CategoryID)
		if idErr != nil {
			return fail(ctx, idErr)
		}
		attrs.CategoryID = &categoryID
	}

	cmd, err := commands.NewUpdateParcelCommand(parcelID, attrs, request.UpdatedBy)
	if err != nil {
		return fail(ctx, err)
	}

	updated, err := s.handlers.UpdateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponse(updated))
}

// SearchParcels handles GET /api/v1/parcels. All filters are query
// parameters and optional: id, userId, status, q (free-text term).
func (s *Server) SearchParcels(ctx echo.Context) error {
	var parcelID, userID *kernel.UUID
	if raw := ctx.QueryParam("id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		parcelID = &id
	}
	if raw := ctx.QueryParam("userId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		userID = &id
	}

	query, err := queries.NewSearchParcelsQuery(
		parcelID, userID, parcel.Status(ctx.QueryParam("status")), ctx.QueryParam("q"))
	if err != nil {
		return fail(ctx, err)
	}

	parcels, err := s.handlers.SearchParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcels)
}

// UpdateParcelStatus handles POST /api/v1/parcels/:id/status.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var request struct {
		Status      string `json:"status"`
		Location    string `json:"location"`
		Description string `json:"description"`
		ChangedBy   string `json:"changedBy"`
	}
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(parcelID,
		parcel.Status(request.Status), request.Location, request.Description, request.ChangedBy)
	if err != nil {
		return fail(ctx, err)
	}

	updated, err := s.handlers.UpdateParcelStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponse(updated))
}

// GetParcelHistory handles GET /api/v1/parcels/:id/history.
func (s *Server) GetParcelHistory(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetParcelHistoryQuery(parcelID)
	if err != nil {
		return fail(ctx, err)
	}

	history, err := s.handlers.GetParcelHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, history)
}

// CheckPickupReadiness handles GET /api/v1/parcels/tracking/:trackingNumber/pickup-readiness.
func (s *Server) CheckPickupReadiness(ctx echo.Context) error {
	query, err := queries.NewCheckPickupReadinessQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return fail(ctx, err)
	}

	readiness, err := s.handlers.CheckPickupReady.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, readiness)
}

// GetParcelStatistics handles GET /api/v1/parcels/statistics.
func (s *Server) GetParcelStatistics(ctx echo.Context) error {
	stats, err := s.handlers.GetParcelStatistics.Handle(ctx.Request().Context(), queries.NewGetParcelStatisticsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}

type invoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	UserID        string          `json:"userId"`
	Status        string          `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Fees          decimal.Decimal `json:"fees"`
	Total         decimal.Decimal `json:"total"`
	DueDate       time.Time       `json:"dueDate"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
}

// GenerateInvoice handles POST /api/v1/invoices.
func (s *Server) GenerateInvoice(ctx echo.Context) error {
	var request struct {
		UserID    string   `json:"userId"`
		ParcelIDs []string `json:"parcelIds"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return fail(ctx, err)
	}
	parcelIDs := make([]kernel.UUID, 0, len(request.ParcelIDs))
	for _, raw := range request.ParcelIDs {
		parcelID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return fail(ctx, idErr)
		}
		parcelIDs = append(parcelIDs, parcelID)
	}

	cmd, err := commands.NewGenerateInvoiceCommand(userID, parcelIDs)
	if err != nil {
		return fail(ctx, err)
	}

	generated, err := s.handlers.GenerateInvoice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, invoiceResponse{
		ID:            generated.ID().String(),
		InvoiceNumber: generated.InvoiceNumber(),
		UserID:        generated.UserID().String(),
		Status:        generated.Status().String(),
		Subtotal:      generated.Subtotal(),
		Tax:           generated.Tax(),
		Fees:          generated.Fees(),
		Total:         generated.Total(),
		DueDate:       generated.DueDate(),
		PaidAt:        generated.PaidAt(),
	})
}

// GetUnpaidInvoices handles GET /api/v1/users/:userId/invoices/unpaid.
func (s *Server) GetUnpaidInvoices(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "userId")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetUnpaidInvoicesQuery(userID)
	if err != nil {
		return fail(ctx, err)
	}

	invoices, err := s.handlers.GetUnpaidInvoices.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoices)
}

// GetUserInvoices handles GET /api/v1/users/:userId/invoices.
func (s *Server) GetUserInvoices(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "userId")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetUserInvoicesQuery(userID)
	if err != nil {
		return fail(ctx, err)
	}

	invoices, err := s.handlers.GetUserInvoices.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoices)
}

// GetReceipt handles GET /api/v1/invoices/:id/receipt. The receipt is
// rendered as plain text sized for an 80mm thermal printer.
func (s *Server) GetReceipt(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetReceiptQuery(invoiceID)
	if err != nil {
		return fail(ctx, err)
	}

	data, err := s.handlers.GetReceipt.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.String(http.StatusOK, s.printer.Render(data))
}

type paymentResponse struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoiceId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transactionId"`
	ProcessedAt   *time.Time      `json:"processedAt,omitempty"`
}

func toPaymentResponse(p *payment.Payment) paymentResponse {
	return paymentResponse{
		ID:            p.ID().String(),
		InvoiceID:     p.InvoiceID().String(),
		Amount:        p.Amount(),
		Currency:      p.Currency(),
		Method:        p.Method().String(),
		Status:        p.Status().String(),
		TransactionID: p.TransactionID(),
		ProcessedAt:   p.ProcessedAt(),
	}
}

// RecordPayment handles POST /api/v1/invoices/:id/payments. A request
// without a transaction id gets one minted by the payment gateway.
func (s *Server) RecordPayment(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var request struct {
		Amount        decimal.Decimal `json:"amount"`
		Method        string          `json:"method"`
		TransactionID string          `json:"transactionId"`
		Metadata      map[string]any  `json:"metadata"`
	}
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	transactionID := request.TransactionID
	if transactionID == "" {
		intent, gwErr := s.gateway.CreateChargeIntent(ctx.Request().Context(),
			request.Amount.StringFixed(2), payment.DefaultCurrency, map[string]string{
				"invoiceId": invoiceID.String(),
			})
		if gwErr != nil {
			return fail(ctx, gwErr)
		}
		transactionID = intent.Reference
	}

	cmd, err := commands.NewRecordPaymentCommand(invoiceID, request.Amount,
		payment.Method(request.Method), transactionID, request.Metadata)
	if err != nil {
		return fail(ctx, err)
	}

	recorded, err := s.handlers.RecordPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toPaymentResponse(recorded))
}

// RecordCashPayment handles POST /api/v1/invoices/:id/payments/cash.
func (s *Server) RecordCashPayment(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var request struct {
		Amount     decimal.Decimal `json:"amount"`
		ReceivedBy string          `json:"receivedBy"`
		Notes      string          `json:"notes"`
	}
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecordCashPaymentCommand(invoiceID, request.Amount,
		request.ReceivedBy, request.Notes)
	if err != nil {
		return fail(ctx, err)
	}

	recorded, err := s.handlers.RecordCashPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toPaymentResponse(recorded))
}

// GetCashPayments handles GET /api/v1/payments/cash?from=...&to=... with
// RFC 3339 bounds, from inclusive, to exclusive.
func (s *Server) GetCashPayments(ctx echo.Context) error {
	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "invalid from timestamp")
	}
	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "invalid to timestamp")
	}

	query, err := queries.NewGetCashPaymentsQuery(from, to)
	if err != nil {
		return fail(ctx, err)
	}

	report, err := s.handlers.GetCashPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, report)
}

// GetBillingStatistics handles GET /api/v1/billing/statistics.
func (s *Server) GetBillingStatistics(ctx echo.Context) error {
	stats, err := s.handlers.GetBillingStats.Handle(ctx.Request().Context(), queries.NewGetBillingStatisticsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}
