package commands_test

import (
	"context"
	"errors"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/address"
	"forwarding/internal/core/domain/model/invoice"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/payment"
	"forwarding/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Add(ctx context.Context, a *address.CustomAddress) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAddressRepository) Update(ctx context.Context, a *address.CustomAddress) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.CustomAddress, error) {
	args := m.Called(ctx, id)
	return addressOrNil(args.Get(0)), args.Error(1)
}
func (m *MockAddressRepository) GetByCode(ctx context.Context, code kernel.AddressCode) (*address.CustomAddress, error) {
	args := m.Called(ctx, code)
	return addressOrNil(args.Get(0)), args.Error(1)
}
func (m *MockAddressRepository) FindActiveByUserAndHub(ctx context.Context, userID kernel.UUID, hub kernel.HubCode) (*address.CustomAddress, error) {
	args := m.Called(ctx, userID, hub)
	return addressOrNil(args.Get(0)), args.Error(1)
}
func (m *MockAddressRepository) GetAllForUser(_ context.Context, _ kernel.UUID) ([]*address.CustomAddress, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockAddressRepository) GetPrimaryForUser(_ context.Context, _ kernel.UUID) (*address.CustomAddress, error) {
	return nil, errors.New("not implemented in mock")
}

func addressOrNil(v any) *address.CustomAddress {
	if v == nil {
		return nil
	}
	return v.(*address.CustomAddress)
}

type MockHubRepository struct{ mock.Mock }

func (m *MockHubRepository) Upsert(ctx context.Context, hub *address.HubAddress) error {
	args := m.Called(ctx, hub)
	return args.Error(0)
}
func (m *MockHubRepository) GetByCode(ctx context.Context, code kernel.HubCode) (*address.HubAddress, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.HubAddress), args.Error(1)
}
func (m *MockHubRepository) GetAll(_ context.Context) ([]*address.HubAddress, error) {
	return nil, errors.New("not implemented in mock")
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}
func (m *MockParcelRepository) GetByTrackingNumber(_ context.Context, _ string) (*parcel.Parcel, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockParcelRepository) GetAllByIDs(ctx context.Context, userID kernel.UUID, ids []kernel.UUID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, userID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}
func (m *MockParcelRepository) GetHistory(_ context.Context, _ kernel.UUID) ([]parcel.StatusChange, error) {
	return nil, errors.New("not implemented in mock")
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}
func (m *MockInvoiceRepository) GetLatestForParcel(_ context.Context, _ kernel.UUID) (*invoice.Invoice, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockInvoiceRepository) GetAllPendingPastDue(ctx context.Context) ([]*invoice.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, record *payment.Payment) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockPaymentRepository) GetAllForInvoice(_ context.Context, _ kernel.UUID) ([]*payment.Payment, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCounterRepository struct{ mock.Mock }

func (m *MockCounterRepository) Next(ctx context.Context, kind ports.CounterKind, scope string) (int64, error) {
	args := m.Called(ctx, kind, scope)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) FindUser(ctx context.Context, id kernel.UUID) (*ports.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.User), args.Error(1)
}
func (m *MockUserDirectory) FindUserByEmail(_ context.Context, _ string) (*ports.User, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCategoryTable struct{ mock.Mock }

func (m *MockCategoryTable) FindCategory(ctx context.Context, id kernel.UUID) (*ports.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Category), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) {
	m.Called(ctx, events)
}

type MockAddressUoW struct{ mock.Mock }

func (m *MockAddressUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAddressUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAddressUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAddressUoW) PopEvents() []kernel.DomainEvent {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]kernel.DomainEvent)
}
func (m *MockAddressUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}
func (m *MockAddressUoW) HubRepository() ports.HubRepository {
	args := m.Called()
	return args.Get(0).(ports.HubRepository)
}
func (m *MockAddressUoW) CounterRepository() ports.CounterRepository {
	args := m.Called()
	return args.Get(0).(ports.CounterRepository)
}

type MockAddressUoWFactory struct{ mock.Mock }

func (m *MockAddressUoWFactory) Create() commands.AddressUoW {
	args := m.Called()
	return args.Get(0).(commands.AddressUoW)
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockParcelUoW) PopEvents() []kernel.DomainEvent {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]kernel.DomainEvent)
}
func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}
func (m *MockParcelUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}
func (m *MockParcelUoW) CounterRepository() ports.CounterRepository {
	args := m.Called()
	return args.Get(0).(ports.CounterRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockBillingUoW struct{ mock.Mock }

func (m *MockBillingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBillingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBillingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBillingUoW) PopEvents() []kernel.DomainEvent {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]kernel.DomainEvent)
}
func (m *MockBillingUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}
func (m *MockBillingUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}
func (m *MockBillingUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}
func (m *MockBillingUoW) CounterRepository() ports.CounterRepository {
	args := m.Called()
	return args.Get(0).(ports.CounterRepository)
}

type MockBillingUoWFactory struct{ mock.Mock }

func (m *MockBillingUoWFactory) Create() commands.BillingUoW {
	args := m.Called()
	return args.Get(0).(commands.BillingUoW)
}
