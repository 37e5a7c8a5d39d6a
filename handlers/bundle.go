package handlers

import "docportal/services/user"

// HandlerBundle groups the handlers the route layer wires up, plus the user
// service the admin guard needs for role lookups.
type HandlerBundle struct {
	UserService user.UserService

	Auth         *AuthHandler
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Doctor       *DoctorHandler
	Payment      *PaymentHandler
	User         *UserHandler
}
