package services

import (
	portsrepo "github.com/SscSPs/fx_deal_system/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_deal_system/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	var options []DealServiceOption
	if repos.TxRunner != nil {
		options = append(options, WithTransactionRunner(repos.TxRunner))
	}

	return &portssvc.ServiceContainer{
		Deal: NewDealService(repos.DealRepo, options...),
	}
}
