// api/service/services.go
package service

import (
	"gorm.io/gorm"

	"github.com/firatsalmanoglu/firesafe-api/audit"
	"github.com/firatsalmanoglu/firesafe-api/dao"
	"github.com/firatsalmanoglu/firesafe-api/util"
)

type Services struct {
	Device       IDeviceService
	User         IUserService
	Institution  IInstitutionService
	Maintenance  IMaintenanceService
	OfferRequest IOfferRequestService
	Offer        IOfferService
	Appointment  IAppointmentService
	Notification INotificationService
	Isg          IIsgService
	Log          ILogService
}

func InitializeServices(
	db *gorm.DB,
	searchRepo *audit.ElasticsearchRepository,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	deviceDAO := dao.NewDeviceDAO(db)
	userDAO := dao.NewUserDAO(db)
	institutionDAO := dao.NewInstitutionDAO(db)
	maintenanceDAO := dao.NewMaintenanceDAO(db)
	offerRequestDAO := dao.NewOfferRequestDAO(db)
	offerCardDAO := dao.NewOfferCardDAO(db)
	appointmentDAO := dao.NewAppointmentDAO(db)
	notificationDAO := dao.NewNotificationDAO(db)
	isgMemberDAO := dao.NewIsgMemberDAO(db)
	logDAO := dao.NewLogDAO(db)

	services := &Services{
		Device:       NewDeviceService(deviceDAO, validationUtil, cacheService, notificationSvc, eventBus),
		User:         NewUserService(userDAO, validationUtil, cacheService, eventBus),
		Institution:  NewInstitutionService(institutionDAO, validationUtil, cacheService, eventBus),
		Maintenance:  NewMaintenanceService(maintenanceDAO, validationUtil, cacheService, eventBus),
		OfferRequest: NewOfferRequestService(offerRequestDAO, validationUtil, eventBus),
		Offer:        NewOfferService(offerCardDAO, offerRequestDAO, validationUtil, notificationSvc, eventBus),
		Appointment:  NewAppointmentService(appointmentDAO, validationUtil, notificationSvc, eventBus),
		Notification: NewNotificationService(notificationDAO, validationUtil),
		Isg:          NewIsgService(isgMemberDAO, validationUtil),
		Log:          NewLogService(logDAO, searchRepo),
	}

	return services, nil
}
