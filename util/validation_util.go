// api/util/validation_util.go

package util

import (
	"fmt"

	"github.com/firatsalmanoglu/firesafe-api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateDevice(device model.Device) error {
	if device.Serial == "" {
		return fmt.Errorf("device serial cannot be empty")
	}
	if device.Kind == "" {
		return fmt.Errorf("device kind cannot be empty")
	}
	if device.OwnerID == "" {
		return fmt.Errorf("device owner ID cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateInstitution(institution model.Institution) error {
	if institution.Name == "" {
		return fmt.Errorf("institution name cannot be empty")
	}
	if institution.Kind != model.InstitutionCustomer && institution.Kind != model.InstitutionProvider {
		return fmt.Errorf("institution kind must be either '%s' or '%s'", model.InstitutionCustomer, model.InstitutionProvider)
	}
	return nil
}

func (v *ValidationUtil) ValidateUser(user model.User) error {
	if user.Name == "" {
		return fmt.Errorf("user name cannot be empty")
	}
	if user.Email == "" {
		return fmt.Errorf("user email cannot be empty")
	}
	if user.Role == "" {
		return fmt.Errorf("user role cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateMaintenanceCard(card model.MaintenanceCard) error {
	if card.DeviceID == "" {
		return fmt.Errorf("maintenance card device ID cannot be empty")
	}
	if card.ProviderInsID == "" {
		return fmt.Errorf("maintenance card provider institution ID cannot be empty")
	}
	if card.MaintenanceDate.IsZero() {
		return fmt.Errorf("maintenance date cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateOfferRequest(request model.OfferRequest) error {
	if request.CreatorID == "" {
		return fmt.Errorf("offer request creator ID cannot be empty")
	}
	if request.CreatorInsID == "" {
		return fmt.Errorf("offer request creator institution ID cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateOfferCard(offer model.OfferCard) error {
	if offer.CreatorID == "" {
		return fmt.Errorf("offer creator ID cannot be empty")
	}
	if offer.RecipientInsID == "" {
		return fmt.Errorf("offer recipient institution ID cannot be empty")
	}
	if offer.Amount < 0 {
		return fmt.Errorf("offer amount cannot be negative")
	}
	return nil
}

func (v *ValidationUtil) ValidateAppointment(appointment model.Appointment) error {
	if appointment.Title == "" {
		return fmt.Errorf("appointment title cannot be empty")
	}
	if appointment.CreatorID == "" {
		return fmt.Errorf("appointment creator ID cannot be empty")
	}
	if appointment.Start.IsZero() {
		return fmt.Errorf("appointment start time cannot be empty")
	}
	if !appointment.End.IsZero() && appointment.End.Before(appointment.Start) {
		return fmt.Errorf("appointment end time cannot be before start time")
	}
	return nil
}

func (v *ValidationUtil) ValidateNotification(notification model.Notification) error {
	if notification.Content == "" {
		return fmt.Errorf("notification content cannot be empty")
	}
	if notification.RecipientID == "" && notification.RecipientInsID == "" {
		return fmt.Errorf("notification must have a recipient user or institution")
	}
	return nil
}

func (v *ValidationUtil) ValidateIsgMember(member model.IsgMember) error {
	if member.Name == "" {
		return fmt.Errorf("isg member name cannot be empty")
	}
	return nil
}
