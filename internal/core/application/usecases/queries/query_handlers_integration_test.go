package queries_test

import (
	"context"
	"testing"
	"time"

	"forwarding/internal/adapters/out/postgres/addressrepo"
	"forwarding/internal/adapters/out/postgres/hubrepo"
	"forwarding/internal/adapters/out/postgres/invoicerepo"
	"forwarding/internal/adapters/out/postgres/parcelrepo"
	"forwarding/internal/adapters/out/postgres/paymentrepo"
	"forwarding/internal/adapters/out/postgres/userdir"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/address"
	"forwarding/internal/core/domain/model/invoice"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/payment"
	"forwarding/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// QueryHandlersIntegrationTestSuite provides integration tests for the read
// model handlers using PostgreSQL containers. All handlers read from the
// same schema, so the suite shares one container and seeds through the
// write-side repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	addressRepo *addressrepo.GormAddressRepository
	hubRepo     *hubrepo.GormHubRepository
	parcelRepo  *parcelrepo.GormParcelRepository
	invoiceRepo *invoicerepo.GormInvoiceRepository
	paymentRepo *paymentrepo.GormPaymentRepository
	sequence    int64
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&addressrepo.AddressDTO{},
		&hubrepo.HubDTO{},
		&parcelrepo.ParcelDTO{},
		&parcelrepo.HistoryDTO{},
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.ItemDTO{},
		&paymentrepo.PaymentDTO{},
		&userdir.UserDTO{},
	))
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE custom_addresses, hub_addresses, parcels, parcel_status_history, invoices, invoice_items, payments, users CASCADE",
	).Error)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.addressRepo = addressrepo.NewGormAddressRepository(suite.db, tracker)
	suite.hubRepo = hubrepo.NewGormHubRepository(suite.db, tracker)
	suite.parcelRepo = parcelrepo.NewGormParcelRepository(suite.db, tracker)
	suite.invoiceRepo = invoicerepo.NewGormInvoiceRepository(suite.db, tracker)
	suite.paymentRepo = paymentrepo.NewGormPaymentRepository(suite.db, tracker)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) nextSequence() int64 {
	suite.sequence++
	return suite.sequence
}

func (suite *QueryHandlersIntegrationTestSuite) hubCode(code string) kernel.HubCode {
	hub, err := kernel.NewHubCode(code)
	suite.Require().NoError(err)
	return hub
}

func (suite *QueryHandlersIntegrationTestSuite) miamiUSAddress() address.USAddress {
	return address.USAddress{
		Street: "8425 NW 68th St",
		City:   "Miami",
		State:  "FL",
		Zip:    "33166",
	}
}

func (suite *QueryHandlersIntegrationTestSuite) seedHub(code, name string, isActive bool) *address.HubAddress {
	hub, err := address.RestoreHubAddress(
		kernel.NewUUID(), suite.hubCode(code), name, suite.miamiUSAddress(), isActive, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.hubRepo.Upsert(context.Background(), hub))
	return hub
}

func (suite *QueryHandlersIntegrationTestSuite) seedAddress(
	userID kernel.UUID, hub string, generatedAt time.Time, active bool,
) *address.CustomAddress {
	hubCode := suite.hubCode(hub)
	sequenceValue := suite.nextSequence()
	code, err := kernel.ComposeAddressCode(hubCode, sequenceValue)
	suite.Require().NoError(err)

	status := address.Active
	var deactivatedAt *time.Time
	if !active {
		status = address.Inactive
		at := generatedAt.Add(time.Hour)
		deactivatedAt = &at
	}

	seeded, err := address.RestoreCustomAddress(
		kernel.NewUUID(), userID, code, hubCode, sequenceValue,
		status, active, suite.miamiUSAddress(), generatedAt, deactivatedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.addressRepo.Add(context.Background(), seeded))
	return seeded
}

func (suite *QueryHandlersIntegrationTestSuite) seedParcel(userID kernel.UUID, status parcel.Status) *parcel.Parcel {
	received := time.Now().Add(-48 * time.Hour)
	seeded, err := parcel.RestoreParcel(
		kernel.NewUUID(),
		parcel.ComposeTrackingNumber(received.Year(), suite.nextSequence()),
		userID,
		kernel.NewUUID(),
		parcel.Attributes{CurrentLocation: parcel.DefaultLocation, Warehouse: parcel.DefaultWarehouse},
		status,
		&received, nil, nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepo.Add(context.Background(), seeded))
	return seeded
}

func (suite *QueryHandlersIntegrationTestSuite) seedInvoice(
	userID kernel.UUID, parcelID kernel.UUID, status invoice.Status, dueDate time.Time, unitPrice decimal.Decimal,
) *invoice.Invoice {
	item, err := invoice.NewItem(parcelID, "Shipping: seeded", 1, unitPrice)
	suite.Require().NoError(err)

	seeded, err := invoice.NewInvoice(
		kernel.NewUUID(),
		invoice.ComposeInvoiceNumber(time.Now().Year(), suite.nextSequence()),
		userID,
		[]invoice.Item{item},
		decimal.Zero,
		decimal.NewFromFloat(5.00),
		dueDate,
	)
	suite.Require().NoError(err)

	switch status {
	case invoice.Paid:
		suite.Require().NoError(seeded.MarkPaid())
	case invoice.Overdue:
		flagged, overdueErr := seeded.MarkOverdue(dueDate.Add(time.Hour))
		suite.Require().NoError(overdueErr)
		suite.Require().True(flagged)
	case invoice.Pending:
	default:
		suite.FailNow("unsupported seed status: " + status.String())
	}

	suite.Require().NoError(suite.invoiceRepo.Add(context.Background(), seeded))
	return seeded
}

func (suite *QueryHandlersIntegrationTestSuite) seedPayment(
	inv *invoice.Invoice, method payment.Method, amount decimal.Decimal,
	processedAt time.Time, metadata map[string]any,
) *payment.Payment {
	seeded, err := payment.RestorePayment(
		kernel.NewUUID(), inv.ID(), inv.UserID(),
		amount, payment.DefaultCurrency, method, payment.StatusCompleted,
		"TX-"+inv.InvoiceNumber(), metadata, &processedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.paymentRepo.Add(context.Background(), seeded))
	return seeded
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetUserAddresses_NewestFirstWithHubName() {
	ctx := context.Background()
	suite.seedHub("MIA", "Miami Gateway", true)

	userID := kernel.NewUUID()
	older := suite.seedAddress(userID, "MIA", time.Now().Add(-2*time.Hour), true)
	newer := suite.seedAddress(userID, "MIA", time.Now().Add(-1*time.Hour), false)
	suite.seedAddress(kernel.NewUUID(), "MIA", time.Now(), true)

	query, err := queries.NewGetUserAddressesQuery(userID)
	suite.Require().NoError(err)

	handler := queries.NewGetUserAddressesQueryHandler(suite.db)
	results, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(results, 2)
	suite.True(results[0].ID.IsEqual(newer.ID()))
	suite.True(results[1].ID.IsEqual(older.ID()))

	suite.Equal(newer.Code().String(), results[0].AddressCode)
	suite.Equal("MIA", results[0].Hub)
	suite.Equal("Miami Gateway", results[0].HubName)
	suite.Equal("INACTIVE", results[0].Status)
	suite.False(results[0].IsPrimary)
	suite.NotNil(results[0].DeactivatedAt)

	suite.Equal("ACTIVE", results[1].Status)
	suite.True(results[1].IsPrimary)
	suite.Nil(results[1].DeactivatedAt)
	suite.Equal("8425 NW 68th St", results[1].Street)
	suite.Equal("Miami", results[1].City)
	suite.Equal("FL", results[1].State)
	suite.Equal("33166", results[1].Zip)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetUserAddresses_MissingHubRowLeavesNameEmpty() {
	userID := kernel.NewUUID()
	suite.seedAddress(userID, "SDQ", time.Now(), true)

	query, err := queries.NewGetUserAddressesQuery(userID)
	suite.Require().NoError(err)

	handler := queries.NewGetUserAddressesQueryHandler(suite.db)
	results, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(results, 1)
	suite.Equal("SDQ", results[0].Hub)
	suite.Equal("", results[0].HubName)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPrimaryAddress_NewestActivePrimaryWins() {
	suite.seedHub("MIA", "Miami Gateway", true)

	userID := kernel.NewUUID()
	suite.seedAddress(userID, "MIA", time.Now().Add(-3*time.Hour), true)
	newest := suite.seedAddress(userID, "MIA", time.Now().Add(-1*time.Hour), true)
	suite.seedAddress(userID, "MIA", time.Now(), false)
	suite.seedAddress(kernel.NewUUID(), "MIA", time.Now(), true)

	query, err := queries.NewGetPrimaryAddressQuery(userID)
	suite.Require().NoError(err)

	handler := queries.NewGetPrimaryAddressQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(result.ID.IsEqual(newest.ID()))
	suite.Equal(newest.Code().String(), result.AddressCode)
	suite.Equal("Miami Gateway", result.HubName)
	suite.Equal("ACTIVE", result.Status)
	suite.True(result.IsPrimary)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPrimaryAddress_NoActiveAddress() {
	userID := kernel.NewUUID()
	suite.seedAddress(userID, "MIA", time.Now().Add(-time.Hour), false)

	query, err := queries.NewGetPrimaryAddressQuery(userID)
	suite.Require().NoError(err)

	handler := queries.NewGetPrimaryAddressQueryHandler(suite.db)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestCheckPickupReadiness_ReadyWithPaidInvoice() {
	seeded := suite.seedParcel(kernel.NewUUID(), parcel.Ready)
	suite.seedInvoice(seeded.UserID(), seeded.ID(), invoice.Paid, time.Now().AddDate(0, 0, 30), decimal.NewFromFloat(12.00))

	query, err := queries.NewCheckPickupReadinessQuery(seeded.TrackingNumber())
	suite.Require().NoError(err)

	handler := queries.NewCheckPickupReadinessQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(result.Ready)
	suite.Empty(result.Blockers)
	suite.Equal(seeded.TrackingNumber(), result.TrackingNumber)
	suite.True(result.ParcelID.IsEqual(seeded.ID()))
	suite.Equal("READY", result.Status)
}

func (suite *QueryHandlersIntegrationTestSuite) TestCheckPickupReadiness_DeliveredIsEligible() {
	seeded := suite.seedParcel(kernel.NewUUID(), parcel.Delivered)
	suite.seedInvoice(seeded.UserID(), seeded.ID(), invoice.Paid, time.Now().AddDate(0, 0, 30), decimal.NewFromFloat(12.00))

	query, err := queries.NewCheckPickupReadinessQuery(seeded.TrackingNumber())
	suite.Require().NoError(err)

	handler := queries.NewCheckPickupReadinessQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.True(result.Ready)
}

func (suite *QueryHandlersIntegrationTestSuite) TestCheckPickupReadiness_UnpaidInvoiceBlocks() {
	seeded := suite.seedParcel(kernel.NewUUID(), parcel.Ready)
	suite.seedInvoice(seeded.UserID(), seeded.ID(), invoice.Pending, time.Now().AddDate(0, 0, 30), decimal.NewFromFloat(12.00))

	query, err := queries.NewCheckPickupReadinessQuery(seeded.TrackingNumber())
	suite.Require().NoError(err)

	handler := queries.NewCheckPickupReadinessQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.False(result.Ready)
	suite.Equal([]string{"invoice not paid"}, result.Blockers)
}

func (suite *QueryHandlersIntegrationTestSuite) TestCheckPickupReadiness_CollectsAllBlockers() {
	seeded := suite.seedParcel(kernel.NewUUID(), parcel.InTransit)

	query, err := queries.NewCheckPickupReadinessQuery(seeded.TrackingNumber())
	suite.Require().NoError(err)

	handler := queries.NewCheckPickupReadinessQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.False(result.Ready)
	suite.Equal([]string{"status not ready", "no invoice found"}, result.Blockers)
}

func (suite *QueryHandlersIntegrationTestSuite) TestCheckPickupReadiness_LatestInvoiceDecides() {
	seeded := suite.seedParcel(kernel.NewUUID(), parcel.Ready)
	suite.seedInvoice(seeded.UserID(), seeded.ID(), invoice.Pending, time.Now().AddDate(0, 0, 30), decimal.NewFromFloat(12.00))
	time.Sleep(10 * time.Millisecond)
	suite.seedInvoice(seeded.UserID(), seeded.ID(), invoice.Paid, time.Now().AddDate(0, 0, 30), decimal.NewFromFloat(12.00))

	query, err := queries.NewCheckPickupReadinessQuery(seeded.TrackingNumber())
	suite.Require().NoError(err)

	handler := queries.NewCheckPickupReadinessQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.True(result.Ready)
}

func (suite *QueryHandlersIntegrationTestSuite) TestCheckPickupReadiness_UnknownParcel() {
	query, err := queries.NewCheckPickupReadinessQuery("PKG-2026-999999")
	suite.Require().NoError(err)

	handler := queries.NewCheckPickupReadinessQueryHandler(suite.db)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestSearchParcels_FiltersByOwnerAndStatus() {
	owner := kernel.NewUUID()
	wanted := suite.seedParcel(owner, parcel.Received)
	suite.seedParcel(owner, parcel.Ready)
	suite.seedParcel(kernel.NewUUID(), parcel.Received)

	query, err := queries.NewSearchParcelsQuery(nil, &owner, parcel.Received, "")
	suite.Require().NoError(err)

	handler := queries.NewSearchParcelsQueryHandler(suite.db)
	results, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(results, 1)
	suite.True(results[0].ID.IsEqual(wanted.ID()))
	suite.True(results[0].UserID.IsEqual(owner))
	suite.Equal("RECEIVED", results[0].Status)
	suite.Equal(parcel.DefaultWarehouse, results[0].Warehouse)
	suite.Equal(parcel.DefaultLocation, results[0].CurrentLocation)
	suite.Require().NotNil(results[0].ReceivedAt)
}

func (suite *QueryHandlersIntegrationTestSuite) TestSearchParcels_TermMatchesTrackingNumber() {
	wanted := suite.seedParcel(kernel.NewUUID(), parcel.Processing)
	suite.seedParcel(kernel.NewUUID(), parcel.Processing)

	query, err := queries.NewSearchParcelsQuery(nil, nil, "", wanted.TrackingNumber()[4:])
	suite.Require().NoError(err)

	handler := queries.NewSearchParcelsQueryHandler(suite.db)
	results, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(results, 1)
	suite.Equal(wanted.TrackingNumber(), results[0].TrackingNumber)
}

func (suite *QueryHandlersIntegrationTestSuite) TestSearchParcels_ExactIDFilter() {
	wanted := suite.seedParcel(kernel.NewUUID(), parcel.Customs)
	suite.seedParcel(kernel.NewUUID(), parcel.Customs)

	wantedID := wanted.ID()
	query, err := queries.NewSearchParcelsQuery(&wantedID, nil, "", "")
	suite.Require().NoError(err)

	handler := queries.NewSearchParcelsQueryHandler(suite.db)
	results, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(results, 1)
	suite.True(results[0].ID.IsEqual(wanted.ID()))
}

func (suite *QueryHandlersIntegrationTestSuite) TestSearchParcels_NoMatchReturnsEmpty() {
	suite.seedParcel(kernel.NewUUID(), parcel.Received)

	query, err := queries.NewSearchParcelsQuery(nil, nil, parcel.Cancelled, "")
	suite.Require().NoError(err)

	handler := queries.NewSearchParcelsQueryHandler(suite.db)
	results, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(results)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetUnpaidInvoices_OpenOnlyOrderedByDueDate() {
	userID := kernel.NewUUID()
	parcelID := kernel.NewUUID()

	overdue := suite.seedInvoice(userID, parcelID, invoice.Overdue, time.Now().AddDate(0, 0, -3), decimal.NewFromFloat(10.00))
	pending := suite.seedInvoice(userID, parcelID, invoice.Pending, time.Now().AddDate(0, 0, 14), decimal.NewFromFloat(22.00))
	suite.seedInvoice(userID, parcelID, invoice.Paid, time.Now().AddDate(0, 0, 7), decimal.NewFromFloat(8.00))
	suite.seedInvoice(kernel.NewUUID(), parcelID, invoice.Pending, time.Now().AddDate(0, 0, 1), decimal.NewFromFloat(9.00))

	query, err := queries.NewGetUnpaidInvoicesQuery(userID)
	suite.Require().NoError(err)

	handler := queries.NewGetUnpaidInvoicesQueryHandler(suite.db)
	results, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(results, 2)
	suite.True(results[0].ID.IsEqual(overdue.ID()))
	suite.Equal("OVERDUE", results[0].Status)
	suite.True(results[0].Total.Equal(decimal.NewFromFloat(15.00)))
	suite.Equal(1, results[0].ItemCount)

	suite.True(results[1].ID.IsEqual(pending.ID()))
	suite.Equal("PENDING", results[1].Status)
	suite.True(results[1].Total.Equal(decimal.NewFromFloat(27.00)))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetUserInvoices_AllStatusesNewestFirst() {
	userID := kernel.NewUUID()
	parcelID := kernel.NewUUID()

	paid := suite.seedInvoice(userID, parcelID, invoice.Paid, time.Now().AddDate(0, 0, 7), decimal.NewFromFloat(8.00))
	time.Sleep(10 * time.Millisecond)
	pending := suite.seedInvoice(userID, parcelID, invoice.Pending, time.Now().AddDate(0, 0, 14), decimal.NewFromFloat(22.00))
	suite.seedInvoice(kernel.NewUUID(), parcelID, invoice.Pending, time.Now().AddDate(0, 0, 1), decimal.NewFromFloat(9.00))

	query, err := queries.NewGetUserInvoicesQuery(userID)
	suite.Require().NoError(err)

	handler := queries.NewGetUserInvoicesQueryHandler(suite.db)
	results, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(results, 2)
	suite.True(results[0].ID.IsEqual(pending.ID()))
	suite.Equal("PENDING", results[0].Status)
	suite.Nil(results[0].PaidAt)
	suite.True(results[0].Total.Equal(decimal.NewFromFloat(27.00)))
	suite.Equal(1, results[0].ItemCount)

	suite.True(results[1].ID.IsEqual(paid.ID()))
	suite.Equal("PAID", results[1].Status)
	suite.NotNil(results[1].PaidAt)
	suite.True(results[1].Total.Equal(decimal.NewFromFloat(13.00)))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetUserInvoices_NoInvoices() {
	query, err := queries.NewGetUserInvoicesQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetUserInvoicesQueryHandler(suite.db)
	results, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(results)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetParcelHistory_ChainInOrder() {
	ctx := context.Background()
	seeded, err := parcel.NewParcel(
		kernel.NewUUID(),
		parcel.ComposeTrackingNumber(time.Now().Year(), suite.nextSequence()),
		kernel.NewUUID(), kernel.NewUUID(), parcel.Attributes{}, "agent-1")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepo.Add(ctx, seeded))

	suite.Require().NoError(seeded.TransitionTo(parcel.Processing, "Sorting facility", "Sorting", "agent-2"))
	suite.Require().NoError(suite.parcelRepo.Update(ctx, seeded))
	suite.Require().NoError(seeded.TransitionTo(parcel.Ready, "", "", "agent-2"))
	suite.Require().NoError(suite.parcelRepo.Update(ctx, seeded))

	query, err := queries.NewGetParcelHistoryQuery(seeded.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetParcelHistoryQueryHandler(suite.db)
	results, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(results, 3)
	suite.Nil(results[0].OldStatus)
	suite.Equal("RECEIVED", results[0].NewStatus)

	suite.Require().NotNil(results[1].OldStatus)
	suite.Equal("RECEIVED", *results[1].OldStatus)
	suite.Equal("PROCESSING", results[1].NewStatus)
	suite.Equal("Sorting facility", results[1].Location)
	suite.Equal("Sorting", results[1].Description)
	suite.Equal("agent-2", results[1].ChangedBy)

	suite.Require().NotNil(results[2].OldStatus)
	suite.Equal("PROCESSING", *results[2].OldStatus)
	suite.Equal("READY", results[2].NewStatus)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetParcelStatistics_CountsByStatus() {
	suite.seedParcel(kernel.NewUUID(), parcel.Received)
	suite.seedParcel(kernel.NewUUID(), parcel.Received)
	suite.seedParcel(kernel.NewUUID(), parcel.Ready)

	handler := queries.NewGetParcelStatisticsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetParcelStatisticsQuery())
	suite.Require().NoError(err)

	suite.Equal(int64(3), result.Total)
	suite.Equal(int64(2), result.ByStatus["RECEIVED"])
	suite.Equal(int64(1), result.ByStatus["READY"])
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetBillingStatistics_Figures() {
	userID := kernel.NewUUID()
	parcelID := kernel.NewUUID()

	suite.seedInvoice(userID, parcelID, invoice.Pending, time.Now().AddDate(0, 0, 14), decimal.NewFromFloat(10.00))
	suite.seedInvoice(userID, parcelID, invoice.Overdue, time.Now().AddDate(0, 0, -2), decimal.NewFromFloat(5.00))
	paid := suite.seedInvoice(userID, parcelID, invoice.Paid, time.Now().AddDate(0, 0, 7), decimal.NewFromFloat(15.00))
	suite.seedPayment(paid, payment.MethodCard, paid.Total(), time.Now(), nil)

	handler := queries.NewGetBillingStatisticsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetBillingStatisticsQuery())
	suite.Require().NoError(err)

	suite.Equal(int64(3), result.InvoiceCount)
	suite.Equal(int64(1), result.InvoicesByStatus["PENDING"])
	suite.Equal(int64(1), result.InvoicesByStatus["OVERDUE"])
	suite.Equal(int64(1), result.InvoicesByStatus["PAID"])
	suite.True(result.TotalInvoiced.Equal(decimal.NewFromFloat(45.00)))
	suite.True(result.Outstanding.Equal(decimal.NewFromFloat(25.00)))
	suite.True(result.Collected.Equal(decimal.NewFromFloat(20.00)))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetCashPayments_FiltersMethodAndRange() {
	userID := kernel.NewUUID()
	parcelID := kernel.NewUUID()
	paid := suite.seedInvoice(userID, parcelID, invoice.Paid, time.Now().AddDate(0, 0, 7), decimal.NewFromFloat(25.00))

	now := time.Now()
	inRange := suite.seedPayment(paid, payment.MethodCash, paid.Total(), now.Add(-30*time.Minute),
		map[string]any{"receivedBy": "Marie Joseph", "changeGiven": "0.00"})
	suite.seedPayment(paid, payment.MethodCash, decimal.NewFromFloat(7.00), now.Add(-3*time.Hour),
		map[string]any{"receivedBy": "Jean Dupont"})
	suite.seedPayment(paid, payment.MethodCard, decimal.NewFromFloat(9.00), now.Add(-20*time.Minute), nil)

	query, err := queries.NewGetCashPaymentsQuery(now.Add(-time.Hour), now.Add(time.Minute))
	suite.Require().NoError(err)

	handler := queries.NewGetCashPaymentsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result.Payments, 1)
	suite.True(result.Payments[0].ID.IsEqual(inRange.ID()))
	suite.Equal(paid.InvoiceNumber(), result.Payments[0].InvoiceNumber)
	suite.Equal("Marie Joseph", result.Payments[0].ReceivedBy)
	suite.True(result.Payments[0].Amount.Equal(paid.Total()))
	suite.True(result.TotalCollected.Equal(paid.Total()))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetHubStatistics_AddressCountsPerHub() {
	suite.seedHub("MIA", "Miami Gateway", true)
	suite.seedHub("NYC", "New York Gateway", false)

	userID := kernel.NewUUID()
	suite.seedAddress(userID, "MIA", time.Now().Add(-2*time.Hour), true)
	suite.seedAddress(kernel.NewUUID(), "MIA", time.Now().Add(-1*time.Hour), false)

	handler := queries.NewGetHubStatisticsQueryHandler(suite.db)
	results, err := handler.Handle(context.Background(), queries.NewGetHubStatisticsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(results, 2)
	suite.Equal("MIA", results[0].Hub)
	suite.Equal("Miami Gateway", results[0].HubName)
	suite.True(results[0].IsActive)
	suite.Equal(int64(2), results[0].TotalAddresses)
	suite.Equal(int64(1), results[0].ActiveAddresses)

	suite.Equal("NYC", results[1].Hub)
	suite.False(results[1].IsActive)
	suite.Equal(int64(0), results[1].TotalAddresses)
	suite.Equal(int64(0), results[1].ActiveAddresses)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetReceipt_AssemblesInvoiceClientAndPayment() {
	userID := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&userdir.UserDTO{
		ID:        userID.Bytes(),
		Email:     "marie@example.ht",
		FirstName: "Marie",
		LastName:  "Joseph",
		Role:      "CLIENT",
		IsActive:  true,
	}).Error)

	seeded := suite.seedParcel(userID, parcel.Delivered)
	paid := suite.seedInvoice(userID, seeded.ID(), invoice.Paid, time.Now().AddDate(0, 0, 7), decimal.NewFromFloat(25.00))
	suite.seedPayment(paid, payment.MethodCash, paid.Total(), time.Now(),
		map[string]any{"receivedBy": "Jean Dupont", "changeGiven": "4.50"})

	query, err := queries.NewGetReceiptQuery(paid.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetReceiptQueryHandler(suite.db)
	data, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(paid.InvoiceNumber(), data.InvoiceNumber)
	suite.Equal("Marie Joseph", data.ClientName)
	suite.Equal("marie@example.ht", data.ClientEmail)
	suite.Require().Len(data.Lines, 1)
	suite.Equal(seeded.TrackingNumber(), data.Lines[0].TrackingNumber)
	suite.True(data.Total.Equal(decimal.NewFromFloat(30.00)))

	suite.Require().NotNil(data.Payment)
	suite.Equal("CASH", data.Payment.Method)
	suite.True(data.Payment.Amount.Equal(paid.Total()))
	suite.True(data.Payment.ChangeGiven.Equal(decimal.NewFromFloat(4.50)))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetReceipt_NoPaymentYet() {
	userID := kernel.NewUUID()
	pending := suite.seedInvoice(userID, kernel.NewUUID(), invoice.Pending, time.Now().AddDate(0, 0, 7), decimal.NewFromFloat(10.00))

	query, err := queries.NewGetReceiptQuery(pending.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetReceiptQueryHandler(suite.db)
	data, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Nil(data.Payment)
	suite.Equal("", data.ClientName)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetReceipt_UnknownInvoice() {
	query, err := queries.NewGetReceiptQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetReceiptQueryHandler(suite.db)
	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
