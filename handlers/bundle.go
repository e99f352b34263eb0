package handlers

import (
	providerRepo "github.com/odacaict/domee.ro/database/repository/provider"
	userRepo "github.com/odacaict/domee.ro/database/repository/user"
)

// HandlerBundle groups the endpoint handlers and the repositories the auth
// middleware needs; routes are registered from it in one place.
type HandlerBundle struct {
	UserRepo     userRepo.UserRepository
	ProviderRepo providerRepo.ProviderRepository

	Users         *UserHandler
	Providers     *ProviderHandler
	Services      *ServiceHandler
	Bookings      *BookingHandler
	Reviews       *ReviewHandler
	Notifications *NotificationHandler
	Payments      *PaymentHandler
	Storage       *StorageHandler
}
