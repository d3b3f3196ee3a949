// api/controller/appointment_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firatsalmanoglu/firesafe-api/audit"
	"github.com/firatsalmanoglu/firesafe-api/authz"
	fs_errors "github.com/firatsalmanoglu/firesafe-api/errors"
	"github.com/firatsalmanoglu/firesafe-api/model"
	"github.com/firatsalmanoglu/firesafe-api/service"
	"github.com/firatsalmanoglu/firesafe-api/util"
	helper_util "github.com/firatsalmanoglu/firesafe-api/util/helper"
)

type AppointmentController struct {
	appointmentService service.IAppointmentService
	recorder           *audit.Recorder
}

func NewAppointmentController(appointmentService service.IAppointmentService, recorder *audit.Recorder) *AppointmentController {
	return &AppointmentController{
		appointmentService: appointmentService,
		recorder:           recorder,
	}
}

// RegisterRoutes registers the API routes
func (ac *AppointmentController) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", ac.CreateAppointment)
		appointments.PUT("/:id", ac.UpdateAppointment)
		appointments.DELETE("/:id", ac.DeleteAppointment)
		appointments.GET("/:id", ac.GetAppointment)
		appointments.GET("", ac.ListAppointments)
	}
}

// CreateAppointment endpoint
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	actor := util.ActorFromContext(c)
	if !authz.Authorize(actor, authz.OpCreate, authz.KindAppointment, authz.Ownership{}) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var appointment model.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid appointment data", fs_errors.ErrInvalidAppointmentData)
		return
	}
	appointment.CreatorID = actor.UserID
	appointment.CreatorInsID = actor.InstitutionID

	createdAppointment, err := ac.appointmentService.CreateAppointment(c, appointment)
	if err != nil {
		if errors.Is(err, fs_errors.ErrInvalidAppointmentData) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid appointment data", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment", fs_errors.ErrInternalServer)
		}
		return
	}

	ac.recorder.RecordAction(c, actor.UserID, model.ActionCreate, string(authz.KindAppointment), c.Request.Header)

	c.JSON(http.StatusCreated, createdAppointment)
}

// UpdateAppointment endpoint
func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	appointmentID := c.Param("id")
	actor := util.ActorFromContext(c)

	existing, err := ac.appointmentService.GetAppointment(c, appointmentID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrAppointmentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Appointment not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointment", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpUpdate, authz.KindAppointment, existing.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var appointment model.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid appointment data", err)
		return
	}
	appointment.ID = appointmentID

	updatedAppointment, err := ac.appointmentService.UpdateAppointment(c, appointment)
	if err != nil {
		if errors.Is(err, fs_errors.ErrAppointmentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Appointment not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment", err)
		}
		return
	}

	ac.recorder.RecordAction(c, actor.UserID, model.ActionUpdate, string(authz.KindAppointment), c.Request.Header)

	c.JSON(http.StatusOK, updatedAppointment)
}

// DeleteAppointment endpoint
func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	appointmentID := c.Param("id")
	actor := util.ActorFromContext(c)

	existing, err := ac.appointmentService.GetAppointment(c, appointmentID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrAppointmentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Appointment not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointment", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpDelete, authz.KindAppointment, existing.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	if err := ac.appointmentService.DeleteAppointment(c, appointmentID); err != nil {
		if errors.Is(err, fs_errors.ErrAppointmentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Appointment not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment", err)
		}
		return
	}

	ac.recorder.RecordAction(c, actor.UserID, model.ActionDelete, string(authz.KindAppointment), c.Request.Header)

	c.Status(http.StatusNoContent)
}

// GetAppointment endpoint
func (ac *AppointmentController) GetAppointment(c *gin.Context) {
	appointmentID := c.Param("id")
	actor := util.ActorFromContext(c)

	appointment, err := ac.appointmentService.GetAppointment(c, appointmentID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrAppointmentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Appointment not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointment", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpView, authz.KindAppointment, appointment.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// ListAppointments endpoint
func (ac *AppointmentController) ListAppointments(c *gin.Context) {
	actor := util.ActorFromContext(c)

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	appointments, err := ac.appointmentService.ListAppointments(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list appointments", err)
		return
	}

	visible := make([]*model.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if authz.Authorize(actor, authz.OpView, authz.KindAppointment, appointment.Ownership()) {
			visible = append(visible, appointment)
		}
	}

	c.JSON(http.StatusOK, visible)
}
