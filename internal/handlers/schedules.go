package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"wiser_schedule"
	"wiser_schedule/internal/service"
	"wiser_schedule/internal/timeline"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// serviceError maps service errors onto HTTP statuses and renders the
// standard error envelope. Only unexpected failures are logged as errors.
func (h *Handler) serviceError(c *gin.Context, logKey string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrScheduleNotFound), errors.Is(err, service.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrUnknownType),
		errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrNoTimeSlots),
		errors.Is(err, service.ErrBadSunTimes),
		errors.Is(err, timeline.ErrNotEditing),
		errors.Is(err, timeline.ErrNoSelection),
		errors.Is(err, timeline.ErrDayFull),
		errors.Is(err, timeline.ErrSpecialUnsupported),
		errors.Is(err, timeline.ErrNoTimeSlots),
		errors.Is(err, timeline.ErrNotDragging):
		status = http.StatusBadRequest
	case errors.Is(err, timeline.ErrSaveInProgress):
		status = http.StatusConflict
	}
	if h.log != nil && status == http.StatusInternalServerError {
		h.log.Errorw(logKey, "err", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// scheduleKey extracts the :type and :id route params.
func scheduleKey(c *gin.Context) (string, int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule id"})
		return "", 0, false
	}
	return c.Param("type"), id, true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      List schedule types
// @Tags         hubs
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/types [get]
// @Security     BearerAuth
func (h *Handler) listTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": wiser_schedule.ScheduleTypes})
}

// @Summary      List known hubs
// @Tags         hubs
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/hubs [get]
// @Security     BearerAuth
func (h *Handler) listHubs(c *gin.Context) {
	hubs, err := h.services.SunTimes.Hubs(c.Request.Context())
	if err != nil {
		h.serviceError(c, "hubs_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hubs": hubs})
}

// @Summary      Get sun times
// @Tags         hubs
// @Produce      json
// @Success      200  {object}  wiser_schedule.SunTimes
// @Router       /api/v1/hubs/{hub}/suntimes [get]
// @Security     BearerAuth
func (h *Handler) getSunTimes(c *gin.Context) {
	st, err := h.services.SunTimes.Get(c.Request.Context(), c.Param("hub"))
	if err != nil {
		h.serviceError(c, "suntimes_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Update sun times
// @Tags         hubs
// @Accept       json
// @Produce      json
// @Param        body  body  wiser_schedule.SunTimes  true  "Seven sunrise and sunset clock times"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/hubs/{hub}/suntimes [put]
// @Security     BearerAuth
func (h *Handler) setSunTimes(c *gin.Context) {
	var st wiser_schedule.SunTimes
	if ok := h.bindJSONOrBadRequest(c, &st); !ok {
		return
	}
	if err := h.services.SunTimes.Set(c.Request.Context(), c.Param("hub"), st); err != nil {
		h.serviceError(c, "suntimes_set_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      List rooms
// @Tags         hubs
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/hubs/{hub}/rooms [get]
// @Security     BearerAuth
func (h *Handler) listRooms(c *gin.Context) {
	rooms, err := h.services.Entities.Rooms(c.Request.Context(), c.Param("hub"))
	if err != nil {
		h.serviceError(c, "rooms_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// @Summary      List devices
// @Tags         hubs
// @Produce      json
// @Param        subtype  query  string  false  "Device sub type filter"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/hubs/{hub}/devices [get]
// @Security     BearerAuth
func (h *Handler) listDevices(c *gin.Context) {
	devices, err := h.services.Entities.Devices(c.Request.Context(), c.Param("hub"), c.Query("subtype"))
	if err != nil {
		h.serviceError(c, "devices_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"devices": devices})
}

// @Summary      List schedules
// @Tags         schedules
// @Produce      json
// @Param        type  query  string  false  "Schedule type filter"  Enums(Heating,OnOff,Lighting,Shutters)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/hubs/{hub}/schedules [get]
// @Security     BearerAuth
func (h *Handler) listSchedules(c *gin.Context) {
	items, err := h.services.Schedules.List(c.Request.Context(), c.Param("hub"), c.Query("type"))
	if err != nil {
		h.serviceError(c, "schedules_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": items})
}

type createScheduleRequest struct {
	Type string `json:"type" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// @Summary      Create schedule
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        body  body  createScheduleRequest  true  "Schedule type and name"
// @Success      200  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/hubs/{hub}/schedules [post]
// @Security     BearerAuth
func (h *Handler) createSchedule(c *gin.Context) {
	var input createScheduleRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	id, err := h.services.Schedules.Create(c.Request.Context(), c.Param("hub"), input.Type, input.Name)
	if err != nil {
		h.serviceError(c, "schedule_create_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// @Summary      Get schedule
// @Description  Special time markers are resolved against the hub's current sun times.
// @Tags         schedules
// @Produce      json
// @Success      200  {object}  wiser_schedule.Schedule
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/hubs/{hub}/schedules/{type}/{id} [get]
// @Security     BearerAuth
func (h *Handler) getSchedule(c *gin.Context) {
	scheduleType, id, ok := scheduleKey(c)
	if !ok {
		return
	}
	s, err := h.services.Schedules.Get(c.Request.Context(), c.Param("hub"), scheduleType, id)
	if err != nil {
		h.serviceError(c, "schedule_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary      Save schedule
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        body  body  wiser_schedule.Schedule  true  "Full schedule"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/hubs/{hub}/schedules/{type}/{id} [put]
// @Security     BearerAuth
func (h *Handler) saveSchedule(c *gin.Context) {
	scheduleType, id, ok := scheduleKey(c)
	if !ok {
		return
	}
	var s wiser_schedule.Schedule
	if ok := h.bindJSONOrBadRequest(c, &s); !ok {
		return
	}
	s.ID = id
	s.Type = scheduleType
	if err := h.services.Schedules.Save(c.Request.Context(), c.Param("hub"), &s); err != nil {
		h.serviceError(c, "schedule_save_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Delete schedule
// @Tags         schedules
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/hubs/{hub}/schedules/{type}/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteSchedule(c *gin.Context) {
	scheduleType, id, ok := scheduleKey(c)
	if !ok {
		return
	}
	if err := h.services.Schedules.Delete(c.Request.Context(), c.Param("hub"), scheduleType, id); err != nil {
		h.serviceError(c, "schedule_delete_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

type renameScheduleRequest struct {
	Name string `json:"name" binding:"required"`
}

// @Summary      Rename schedule
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        body  body  renameScheduleRequest  true  "New name"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/hubs/{hub}/schedules/{type}/{id}/name [put]
// @Security     BearerAuth
func (h *Handler) renameSchedule(c *gin.Context) {
	scheduleType, id, ok := scheduleKey(c)
	if !ok {
		return
	}
	var input renameScheduleRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	if err := h.services.Schedules.Rename(c.Request.Context(), c.Param("hub"), scheduleType, id, input.Name); err != nil {
		h.serviceError(c, "schedule_rename_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

type copyScheduleRequest struct {
	To int `json:"to" binding:"required"`
}

// @Summary      Copy schedule
// @Description  Overwrites the target schedule's day lists with this schedule's.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        body  body  copyScheduleRequest  true  "Target schedule id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/hubs/{hub}/schedules/{type}/{id}/copy [post]
// @Security     BearerAuth
func (h *Handler) copySchedule(c *gin.Context) {
	scheduleType, id, ok := scheduleKey(c)
	if !ok {
		return
	}
	var input copyScheduleRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	if err := h.services.Schedules.Copy(c.Request.Context(), c.Param("hub"), scheduleType, id, input.To); err != nil {
		h.serviceError(c, "schedule_copy_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

type assignScheduleRequest struct {
	Assignments []wiser_schedule.ScheduleAssignment `json:"assignments"`
}

// @Summary      Assign schedule
// @Description  Replaces the schedule's room/device assignments.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        body  body  assignScheduleRequest  true  "Assignment list"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/hubs/{hub}/schedules/{type}/{id}/assignments [put]
// @Security     BearerAuth
func (h *Handler) assignSchedule(c *gin.Context) {
	scheduleType, id, ok := scheduleKey(c)
	if !ok {
		return
	}
	var input assignScheduleRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	if err := h.services.Schedules.Assign(c.Request.Context(), c.Param("hub"), scheduleType, id, input.Assignments); err != nil {
		h.serviceError(c, "schedule_assign_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}
