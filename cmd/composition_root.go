package cmd

import (
	"log/slog"

	httpadapter "forwarding/internal/adapters/in/http"
	"forwarding/internal/adapters/out/audit"
	"forwarding/internal/adapters/out/notify"
	"forwarding/internal/adapters/out/paymentgw"
	"forwarding/internal/adapters/out/postgres"
	"forwarding/internal/adapters/out/postgres/categoryrepo"
	"forwarding/internal/adapters/out/postgres/userdir"
	"forwarding/internal/core/application/events"
	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/invoice"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/ports"
	"forwarding/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	dispatcher *events.Dispatcher
	users      ports.UserDirectory
	categories ports.CategoryTable
	gateway    ports.PaymentGateway
}

// NewCompositionRoot wires the application graph: unit of work factory,
// collaborators, command and query handlers, and the post-commit event
// dispatcher with its subscriptions.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		users:      userdir.NewGormUserDirectory(gormDB),
		categories: categoryrepo.NewGormCategoryTable(gormDB),
		gateway:    paymentgw.NewLocalGateway(),
	}

	dispatcher := events.NewDispatcher(logger)
	dispatcher.Subscribe(parcel.ReceivedEventName,
		events.NewAutoInvoiceHandler(root.CreateGenerateInvoiceCommandHandler()))
	notifications := events.NewNotificationHandler(notify.NewSlogNotifier(logger))
	dispatcher.Subscribe(parcel.ReceivedEventName, notifications)
	dispatcher.Subscribe(parcel.StatusChangedEventName, notifications)
	dispatcher.Subscribe(invoice.PaidEventName,
		events.NewSettlementAuditHandler(audit.NewSlogRecorder(logger)))
	root.dispatcher = dispatcher

	return root
}

func (c *CompositionRoot) CreateAllocateAddressCommandHandler() commands.AllocateAddressCommandHandler {
	var f commands.AddressUoWFactory = FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAllocateAddressCommandHandler(f, c.users)
}

func (c *CompositionRoot) CreateDeactivateAddressCommandHandler() commands.DeactivateAddressCommandHandler {
	var f commands.AddressUoWFactory = FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateAddressCommandHandler(f)
}

func (c *CompositionRoot) CreateUpsertHubCommandHandler() commands.UpsertHubCommandHandler {
	var f commands.AddressUoWFactory = FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertHubCommandHandler(f)
}

func (c *CompositionRoot) CreateDeactivateHubCommandHandler() commands.DeactivateHubCommandHandler {
	var f commands.AddressUoWFactory = FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateHubCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, c.categories, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateParcelCommandHandler() commands.UpdateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateGenerateInvoiceCommandHandler() commands.GenerateInvoiceCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateInvoiceCommandHandler(f, c.categories)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateRecordCashPaymentCommandHandler() commands.RecordCashPaymentCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordCashPaymentCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateMarkOverdueInvoicesCommandHandler() commands.MarkOverdueInvoicesCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOverdueInvoicesCommandHandler(f)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateMarkOverdueInvoicesCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		AllocateAddress:     c.CreateAllocateAddressCommandHandler(),
		DeactivateAddress:   c.CreateDeactivateAddressCommandHandler(),
		UpsertHub:           c.CreateUpsertHubCommandHandler(),
		DeactivateHub:       c.CreateDeactivateHubCommandHandler(),
		CreateParcel:        c.CreateCreateParcelCommandHandler(),
		UpdateParcel:        c.CreateUpdateParcelCommandHandler(),
		UpdateParcelStatus:  c.CreateUpdateParcelStatusCommandHandler(),
		GenerateInvoice:     c.CreateGenerateInvoiceCommandHandler(),
		RecordPayment:       c.CreateRecordPaymentCommandHandler(),
		RecordCashPayment:   c.CreateRecordCashPaymentCommandHandler(),
		GetUserAddresses:    queries.NewGetUserAddressesQueryHandler(c.gormDB),
		GetPrimaryAddress:   queries.NewGetPrimaryAddressQueryHandler(c.gormDB),
		GetParcelHistory:    queries.NewGetParcelHistoryQueryHandler(c.gormDB),
		SearchParcels:       queries.NewSearchParcelsQueryHandler(c.gormDB),
		CheckPickupReady:    queries.NewCheckPickupReadinessQueryHandler(c.gormDB),
		GetUnpaidInvoices:   queries.NewGetUnpaidInvoicesQueryHandler(c.gormDB),
		GetUserInvoices:     queries.NewGetUserInvoicesQueryHandler(c.gormDB),
		GetReceipt:          queries.NewGetReceiptQueryHandler(c.gormDB),
		GetCashPayments:     queries.NewGetCashPaymentsQueryHandler(c.gormDB),
		GetParcelStatistics: queries.NewGetParcelStatisticsQueryHandler(c.gormDB),
		GetBillingStats:     queries.NewGetBillingStatisticsQueryHandler(c.gormDB),
		GetHubStatistics:    queries.NewGetHubStatisticsQueryHandler(c.gormDB),
	}, c.gateway)
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}
