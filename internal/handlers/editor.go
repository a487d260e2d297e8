package handlers

import (
	"net/http"

	"wiser_schedule/internal/timeline"

	"github.com/gin-gonic/gin"
)

type openEditorRequest struct {
	Hub  string `json:"hub" binding:"required"`
	Type string `json:"type" binding:"required"`
	ID   int    `json:"id" binding:"required"`
}

// @Summary      Open editor session
// @Description  Snapshots the schedule into a working copy and returns the session view.
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        body  body  openEditorRequest  true  "Schedule to edit"
// @Success      200  {object}  service.EditorView
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/editor [post]
// @Security     BearerAuth
func (h *Handler) openEditor(c *gin.Context) {
	var input openEditorRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	view, err := h.services.Editors.Open(c.Request.Context(), input.Hub, input.Type, input.ID)
	if err != nil {
		h.serviceError(c, "editor_open_failed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Editor snapshot
// @Tags         editor
// @Produce      json
// @Success      200  {object}  service.EditorView
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/editor/{session} [get]
// @Security     BearerAuth
func (h *Handler) editorSnapshot(c *gin.Context) {
	view, err := h.services.Editors.Snapshot(c.Param("session"))
	if err != nil {
		h.serviceError(c, "editor_snapshot_failed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type selectRequest struct {
	Day  string `json:"day" binding:"required"`
	Slot int    `json:"slot"`
}

// @Summary      Select slot
// @Description  Selecting the already active slot clears the selection.
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        body  body  selectRequest  true  "Day name and slot index (-1 for the lead-in segment)"
// @Success      200  {object}  service.EditorView
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/editor/{session}/select [post]
// @Security     BearerAuth
func (h *Handler) editorSelect(c *gin.Context) {
	var input selectRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	view, err := h.services.Editors.Select(c.Param("session"), input.Day, input.Slot)
	if err != nil {
		h.serviceError(c, "editor_select_failed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type addSlotRequest struct {
	Position string `json:"position" binding:"required,oneof=before after"`
}

// @Summary      Add slot
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        body  body  addSlotRequest  true  "Insert position relative to the active slot"
// @Success      200  {object}  service.EditorView
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/editor/{session}/slots [post]
// @Security     BearerAuth
func (h *Handler) editorAddSlot(c *gin.Context) {
	var input addSlotRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	pos := timeline.AddAfter
	if input.Position == "before" {
		pos = timeline.AddBefore
	}
	view, err := h.services.Editors.AddSlot(c.Param("session"), pos)
	if err != nil {
		h.serviceError(c, "editor_add_slot_failed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Remove slot
// @Tags         editor
// @Produce      json
// @Success      200  {object}  service.EditorView
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/editor/{session}/slots [delete]
// @Security     BearerAuth
func (h *Handler) editorRemoveSlot(c *gin.Context) {
	view, err := h.services.Editors.RemoveSlot(c.Param("session"))
	if err != nil {
		h.serviceError(c, "editor_remove_slot_failed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type setpointRequest struct {
	Setpoint string `json:"setpoint" binding:"required"`
}

// @Summary      Set slot value
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        body  body  setpointRequest  true  "New setpoint for the active slot"
// @Success      200  {object}  service.EditorView
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/editor/{session}/setpoint [post]
// @Security     BearerAuth
func (h *Handler) editorSetSetpoint(c *gin.Context) {
	var input setpointRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	view, err := h.services.Editors.SetSetpoint(c.Param("session"), input.Setpoint)
	if err != nil {
		h.serviceError(c, "editor_setpoint_failed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type specialTimeRequest struct {
	SpecialTime string `json:"specialTime" binding:"required,oneof=Sunrise Sunset"`
}

// @Summary      Pin slot to a special time
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        body  body  specialTimeRequest  true  "Sunrise or Sunset"
// @Success      200  {object}  service.EditorView
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/editor/{session}/special-time [post]
// @Security     BearerAuth
func (h *Handler) editorSetSpecialTime(c *gin.Context) {
	var input specialTimeRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	view, err := h.services.Editors.SetSpecialTime(c.Param("session"), input.SpecialTime)
	if err != nil {
		h.serviceError(c, "editor_special_time_failed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type copyDayRequest struct {
	Target string `json:"target" binding:"required"`
}

// @Summary      Copy active day
// @Description  Target is a weekday name, Weekdays or Weekend.
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        body  body  copyDayRequest  true  "Copy target"
// @Success      200  {object}  service.EditorView
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/editor/{session}/copy-day [post]
// @Security     BearerAuth
func (h *Handler) editorCopyDay(c *gin.Context) {
	var input copyDayRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	view, err := h.services.Editors.CopyDay(c.Param("session"), input.Target)
	if err != nil {
		h.serviceError(c, "editor_copy_day_failed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type dragStartRequest struct {
	Left     float64 `json:"left"`
	Width    float64 `json:"width" binding:"required"`
	RangeMin int     `json:"rangeMin"`
	RangeMax int     `json:"rangeMax"`
}

// @Summary      Start dragging the active slot's boundary
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        body  body  dragStartRequest  true  "Track geometry at drag start"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/editor/{session}/drag/start [post]
// @Security     BearerAuth
func (h *Handler) editorDragStart(c *gin.Context) {
	var input dragStartRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	geom := timeline.TrackGeometry{
		Left:     input.Left,
		Width:    input.Width,
		RangeMin: input.RangeMin,
		RangeMax: input.RangeMax,
	}
	if err := h.services.Editors.BeginDrag(c.Param("session"), geom); err != nil {
		h.serviceError(c, "editor_drag_start_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

type dragMoveRequest struct {
	PageX float64 `json:"pageX"`
}

// @Summary      Drag move
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        body  body  dragMoveRequest  true  "Pointer page-x position"
// @Success      200  {object}  service.EditorView
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/editor/{session}/drag/move [post]
// @Security     BearerAuth
func (h *Handler) editorDragMove(c *gin.Context) {
	var input dragMoveRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	view, err := h.services.Editors.Drag(c.Param("session"), input.PageX)
	if err != nil {
		h.serviceError(c, "editor_drag_move_failed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      End drag
// @Description  Also the blur handler: window blur is treated as a release.
// @Tags         editor
// @Produce      json
// @Success      200  {object}  service.EditorView
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/editor/{session}/drag/end [post]
// @Security     BearerAuth
func (h *Handler) editorDragEnd(c *gin.Context) {
	view, err := h.services.Editors.EndDrag(c.Param("session"))
	if err != nil {
		h.serviceError(c, "editor_drag_end_failed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Save session
// @Description  Persists the working copy and closes the session.
// @Tags         editor
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/editor/{session}/save [post]
// @Security     BearerAuth
func (h *Handler) editorSave(c *gin.Context) {
	if err := h.services.Editors.Save(c.Request.Context(), c.Param("session")); err != nil {
		h.serviceError(c, "editor_save_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Cancel session
// @Tags         editor
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/editor/{session} [delete]
// @Security     BearerAuth
func (h *Handler) editorCancel(c *gin.Context) {
	if err := h.services.Editors.Cancel(c.Param("session")); err != nil {
		h.serviceError(c, "editor_cancel_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}
