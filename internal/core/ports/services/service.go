package services

// ServiceContainer holds instances of all the application services.
// It is the entry point handlers and CLI commands use to reach service functionality.
type ServiceContainer struct {
	Deal DealSvcFacade
}
