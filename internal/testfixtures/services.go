package testfixtures

import (
	"log/slog"
	"time"

	"github.com/example/dispatch-scheduler/internal/application"
)

// DefaultNoEquipmentID is the sentinel equipment id fixtures assume.
const DefaultNoEquipmentID = "no-equipment"

// ServiceFactory assists tests with constructing application services using
// deterministic identifiers and clocks.
type ServiceFactory struct {
	Clock       *Clock
	IDGenerator *IDGenerator
}

// ServiceFactoryOption configures a ServiceFactory instance.
type ServiceFactoryOption func(*ServiceFactory)

// NewServiceFactory constructs a ServiceFactory with defaults.
func NewServiceFactory(opts ...ServiceFactoryOption) *ServiceFactory {
	factory := &ServiceFactory{
		Clock:       NewClock(referenceTime),
		IDGenerator: NewIDGenerator("id"),
	}
	for _, opt := range opts {
		opt(factory)
	}
	if factory.Clock == nil {
		factory.Clock = NewClock(referenceTime)
	}
	if factory.IDGenerator == nil {
		factory.IDGenerator = NewIDGenerator("id")
	}
	return factory
}

// WithClock overrides the clock used by the factory.
func WithClock(clock *Clock) ServiceFactoryOption {
	return func(factory *ServiceFactory) {
		factory.Clock = clock
	}
}

// WithIDGenerator overrides the identifier generator used by the factory.
func WithIDGenerator(generator *IDGenerator) ServiceFactoryOption {
	return func(factory *ServiceFactory) {
		factory.IDGenerator = generator
	}
}

// DispatchServiceDeps captures dependencies for constructing a dispatch service.
type DispatchServiceDeps struct {
	Store       application.AssignmentStore
	IDGenerator func() string
	Logger      *slog.Logger
}

// NewDispatchService builds a dispatch service using the supplied dependencies
// combined with the factory defaults.
func (f *ServiceFactory) NewDispatchService(deps DispatchServiceDeps) *application.DispatchService {
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = f.IDGenerator.NextFunc()
	}
	return application.NewDispatchServiceWithLogger(deps.Store, idGen, deps.Logger)
}

// CatalogServiceDeps captures dependencies for constructing a catalog service.
type CatalogServiceDeps struct {
	Catalog       application.ResourceCatalog
	NoEquipmentID string
	Logger        *slog.Logger
}

// NewCatalogService builds a catalog service using the supplied dependencies.
func (f *ServiceFactory) NewCatalogService(deps CatalogServiceDeps) *application.CatalogService {
	sentinel := deps.NoEquipmentID
	if sentinel == "" {
		sentinel = DefaultNoEquipmentID
	}
	return application.NewCatalogServiceWithLogger(deps.Catalog, sentinel, deps.Logger)
}

// CalendarServiceDeps captures dependencies for constructing a calendar service.
type CalendarServiceDeps struct {
	Store   application.AssignmentStore
	Catalog *application.CatalogService
	Logger  *slog.Logger
}

// NewCalendarService builds a calendar service using the supplied dependencies.
func (f *ServiceFactory) NewCalendarService(deps CalendarServiceDeps) *application.CalendarService {
	return application.NewCalendarServiceWithLogger(deps.Store, deps.Catalog, deps.Logger)
}

// NewCalendarView builds a calendar view driven by the factory clock.
func (f *ServiceFactory) NewCalendarView(service *application.CalendarService, now func() time.Time) *application.CalendarView {
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewCalendarView(service, now)
}
