// api/controller/controllers.go
package controller

import (
	"github.com/firatsalmanoglu/firesafe-api/audit"
	"github.com/firatsalmanoglu/firesafe-api/service"
)

type Controllers struct {
	Device       *DeviceController
	User         *UserController
	Institution  *InstitutionController
	Maintenance  *MaintenanceController
	OfferRequest *OfferRequestController
	Offer        *OfferController
	Appointment  *AppointmentController
	Notification *NotificationController
	Isg          *IsgController
	Log          *LogController
}

func InitializeControllers(services *service.Services, recorder *audit.Recorder) *Controllers {
	return &Controllers{
		Device:       NewDeviceController(services.Device, recorder),
		User:         NewUserController(services.User, recorder),
		Institution:  NewInstitutionController(services.Institution, recorder),
		Maintenance:  NewMaintenanceController(services.Maintenance, recorder),
		OfferRequest: NewOfferRequestController(services.OfferRequest, services.Offer, recorder),
		Offer:        NewOfferController(services.Offer, recorder),
		Appointment:  NewAppointmentController(services.Appointment, recorder),
		Notification: NewNotificationController(services.Notification, recorder),
		Isg:          NewIsgController(services.Isg, recorder),
		Log:          NewLogController(services.Log),
	}
}
