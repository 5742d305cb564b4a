package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/petgroom/scheduler/internal/cache"
	domain "github.com/petgroom/scheduler/internal/domain/schedule"
	"github.com/petgroom/scheduler/internal/httperr"
	"github.com/petgroom/scheduler/internal/httpresp"
	"github.com/petgroom/scheduler/internal/middleware"
	"github.com/petgroom/scheduler/internal/models"
	ucSchedule "github.com/petgroom/scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	createUC     *ucSchedule.Create
	updateUC     *ucSchedule.Update
	statusUC     *ucSchedule.UpdateStatus
	rescheduleUC *ucSchedule.CustomerReschedule
	cancelUC     *ucSchedule.CustomerCancel
	listUC       *ucSchedule.List
	deleteUC     *ucSchedule.Delete
	reportUC     *ucSchedule.Report
	summaryCache *cache.Cache
}

func NewScheduleHandler(
	createUC *ucSchedule.Create,
	updateUC *ucSchedule.Update,
	statusUC *ucSchedule.UpdateStatus,
	rescheduleUC *ucSchedule.CustomerReschedule,
	cancelUC *ucSchedule.CustomerCancel,
	listUC *ucSchedule.List,
	deleteUC *ucSchedule.Delete,
	reportUC *ucSchedule.Report,
	summaryCache *cache.Cache,
) *ScheduleHandler {
	return &ScheduleHandler{
		createUC:     createUC,
		updateUC:     updateUC,
		statusUC:     statusUC,
		rescheduleUC: rescheduleUC,
		cancelUC:     cancelUC,
		listUC:       listUC,
		deleteUC:     deleteUC,
		reportUC:     reportUC,
		summaryCache: summaryCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateScheduleRequest struct {
	ServiceType string   `json:"service_type" binding:"required"`
	ScheduledAt string   `json:"scheduled_at" binding:"required"`
	CustomerID  string   `json:"customer_id" binding:"required"`
	PetID       string   `json:"pet_id" binding:"required"`
	StaffID     *string  `json:"staff_id"`
	Notes       string   `json:"notes"`
	Price       *float64 `json:"price"`
}

type UpdateScheduleRequest struct {
	ScheduledAt *string  `json:"scheduled_at"`
	Notes       *string  `json:"notes"`
	Price       *float64 `json:"price"`
	StaffID     *string  `json:"staff_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CustomerRescheduleRequest struct {
	ScheduledAt string  `json:"scheduled_at" binding:"required"`
	Notes       *string `json:"notes"`
}

// ======================================================
// VIEWS
// ======================================================

type PersonSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type PetSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
}

type ScheduleView struct {
	ID          string         `json:"id"`
	ServiceType string         `json:"service_type"`
	ScheduledAt time.Time      `json:"scheduled_at"`
	Status      string         `json:"status"`
	Notes       string         `json:"notes"`
	Price       *float64       `json:"price"`
	Customer    PersonSummary  `json:"customer"`
	Pet         PetSummary     `json:"pet"`
	Staff       *PersonSummary `json:"staff"`
	CancelledAt *time.Time     `json:"cancelled_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func toScheduleView(s models.Schedule) ScheduleView {
	view := ScheduleView{
		ID:          s.ID,
		ServiceType: s.ServiceType,
		ScheduledAt: s.ScheduledAt,
		Status:      s.Status,
		Notes:       s.Notes,
		Price:       s.Price,
		Customer: PersonSummary{
			ID:    s.Customer.ID,
			Name:  s.Customer.Name,
			Email: s.Customer.Email,
			Phone: s.Customer.Phone,
		},
		Pet: PetSummary{
			ID:      s.Pet.ID,
			Name:    s.Pet.Name,
			Species: s.Pet.Species,
			Breed:   s.Pet.Breed,
		},
		CancelledAt: s.CancelledAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}

	if s.Staff != nil {
		view.Staff = &PersonSummary{
			ID:    s.Staff.ID,
			Name:  s.Staff.Name,
			Email: s.Staff.Email,
			Phone: s.Staff.Phone,
		}
	}

	return view
}

func toScheduleViews(in []models.Schedule) []ScheduleView {
	out := make([]ScheduleView, 0, len(in))
	for _, s := range in {
		out = append(out, toScheduleView(s))
	}
	return out
}

// ======================================================
// HELPERS
// ======================================================

// parseTimestamp accepts RFC3339 and plain dates so dashboard range
// pickers can send either form.
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// ======================================================
// CREATE
// ======================================================

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	serviceType, ok := domain.ParseServiceType(req.ServiceType)
	if !ok {
		httperr.BadRequest(c, "invalid_service_type", "Unknown service type.")
		return
	}

	scheduledAt, err := parseTimestamp(req.ScheduledAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_scheduled_at", "scheduled_at must be an ISO datetime.")
		return
	}

	s, err := h.createUC.Execute(c.Request.Context(), ucSchedule.CreateInput{
		ServiceType: serviceType,
		ScheduledAt: scheduledAt,
		Notes:       req.Notes,
		Price:       req.Price,
		CustomerID:  req.CustomerID,
		PetID:       req.PetID,
		StaffID:     req.StaffID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, s)
}

// ======================================================
// LIST
// ======================================================

func (h *ScheduleHandler) buildFilter(c *gin.Context) (domain.Filter, bool) {
	var f domain.Filter

	if v := c.Query("from"); v != "" {
		t, err := parseTimestamp(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "from must be an ISO datetime.")
			return f, false
		}
		f.From = &t
	}

	if v := c.Query("to"); v != "" {
		t, err := parseTimestamp(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "to must be an ISO datetime.")
			return f, false
		}
		f.To = &t
	}

	if v := c.Query("serviceType"); v != "" {
		st, ok := domain.ParseServiceType(v)
		if !ok {
			httperr.BadRequest(c, "invalid_service_type", "Unknown service type.")
			return f, false
		}
		f.ServiceType = &st
	}

	if v := c.Query("status"); v != "" {
		st, ok := domain.ParseStatus(v)
		if !ok {
			httperr.BadRequest(c, "invalid_status", "Unknown status.")
			return f, false
		}
		f.Status = &st
	}

	f.CustomerID = c.Query("customerId")
	f.StaffID = c.Query("staffId")

	return f, true
}

func (h *ScheduleHandler) List(c *gin.Context) {
	f, ok := h.buildFilter(c)
	if !ok {
		return
	}

	schedules, err := h.listUC.Execute(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, toScheduleViews(schedules))
}

func (h *ScheduleHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	role := c.MustGet(middleware.ContextUserRole).(string)

	f, ok := h.buildFilter(c)
	if !ok {
		return
	}
	// /me ignores foreign id filters; scoping comes from the token
	f.CustomerID = ""
	f.StaffID = ""

	schedules, err := h.listUC.ExecuteMine(c.Request.Context(), userID, role, f)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, toScheduleViews(schedules))
}

// ======================================================
// UPDATE
// ======================================================

func (h *ScheduleHandler) Update(c *gin.Context) {
	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	in := ucSchedule.UpdateInput{
		ID:      c.Param("id"),
		Notes:   req.Notes,
		Price:   req.Price,
		StaffID: req.StaffID,
	}

	if req.ScheduledAt != nil {
		t, err := parseTimestamp(*req.ScheduledAt)
		if err != nil {
			httperr.BadRequest(c, "invalid_scheduled_at", "scheduled_at must be an ISO datetime.")
			return
		}
		in.ScheduledAt = &t
	}

	s, err := h.updateUC.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *ScheduleHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	status, ok := domain.ParseStatus(req.Status)
	if !ok {
		httperr.BadRequest(c, "invalid_status", "Unknown status.")
		return
	}

	s, err := h.statusUC.Execute(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, s)
}

// ======================================================
// CUSTOMER RESCHEDULE / CANCEL
// ======================================================

func (h *ScheduleHandler) CustomerReschedule(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(string)

	var req CustomerRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	scheduledAt, err := parseTimestamp(req.ScheduledAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_scheduled_at", "scheduled_at must be an ISO datetime.")
		return
	}

	s, err := h.rescheduleUC.Execute(c.Request.Context(), ucSchedule.CustomerRescheduleInput{
		ScheduleID:  c.Param("id"),
		CustomerID:  customerID,
		ScheduledAt: scheduledAt,
		Notes:       req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *ScheduleHandler) CustomerCancel(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"), customerID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(204)
}

// ======================================================
// DELETE
// ======================================================

func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(204)
}

// ======================================================
// SUMMARY
// ======================================================

func (h *ScheduleHandler) Summary(c *gin.Context) {
	var in ucSchedule.ReportInput

	if v := c.Query("from"); v != "" {
		t, err := parseTimestamp(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "from must be an ISO datetime.")
			return
		}
		in.From = &t
	}

	if v := c.Query("to"); v != "" {
		t, err := parseTimestamp(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "to must be an ISO datetime.")
			return
		}
		in.To = &t
	}

	cacheKey := "schedules:summary:" + c.Query("from") + ":" + c.Query("to")

	var cached ucSchedule.Summary
	if h.summaryCache.GetJSON(c.Request.Context(), cacheKey, &cached) {
		httpresp.OK(c, cached)
		return
	}

	summary, err := h.reportUC.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	h.summaryCache.SetJSON(c.Request.Context(), cacheKey, summary)

	httpresp.OK(c, summary)
}
