// Package api exposes the application over HTTP. Every route maps onto a
// feature manager call with the caller's resolved profile; the handlers
// carry no authorization logic of their own.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Tarakreddy011/School-Management-App/auth"
	"github.com/Tarakreddy011/School-Management-App/domain"
	"github.com/Tarakreddy011/School-Management-App/flow"
	"github.com/Tarakreddy011/School-Management-App/profile"
	"github.com/Tarakreddy011/School-Management-App/service"
	"github.com/Tarakreddy011/School-Management-App/session"
	"github.com/labstack/echo/v4"
)

const profileKey = "profile"

// Handler wires the HTTP routes to the feature managers.
type Handler struct {
	login    *flow.LoginManager
	sessions *session.Manager
	resolver auth.Resolver

	students      *service.StudentManager
	staff         *service.StaffManager
	marks         *service.MarkManager
	leaves        *service.LeaveManager
	discipline    *service.DisciplineManager
	complaints    *service.ComplaintManager
	announcements *service.AnnouncementManager
	syllabus      *service.SyllabusManager
	summary       *service.SummaryManager
}

// Deps collects the handler's dependencies.
type Deps struct {
	Login    *flow.LoginManager
	Sessions *session.Manager
	Resolver auth.Resolver

	Students      *service.StudentManager
	Staff         *service.StaffManager
	Marks         *service.MarkManager
	Leaves        *service.LeaveManager
	Discipline    *service.DisciplineManager
	Complaints    *service.ComplaintManager
	Announcements *service.AnnouncementManager
	Syllabus      *service.SyllabusManager
	Summary       *service.SummaryManager
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		login:         d.Login,
		sessions:      d.Sessions,
		resolver:      d.Resolver,
		students:      d.Students,
		staff:         d.Staff,
		marks:         d.Marks,
		leaves:        d.Leaves,
		discipline:    d.Discipline,
		complaints:    d.Complaints,
		announcements: d.Announcements,
		syllabus:      d.Syllabus,
		summary:       d.Summary,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/login", h.HandleLogin)

	protected := g.Group("")
	protected.Use(h.AuthMiddleware)

	protected.GET("/whoami", h.HandleWhoAmI)
	protected.POST("/logout", h.HandleLogout)

	protected.GET("/students", h.HandleListStudents)
	protected.POST("/students", h.HandleCreateStudent)
	protected.DELETE("/students/:id", h.HandleDeleteStudent)
	protected.PUT("/students/:id/rating", h.HandleSetRating)
	protected.PUT("/students/:id/fee", h.HandleSetFeeStatus)

	protected.GET("/staff", h.HandleListStaff)
	protected.POST("/staff", h.HandleAddStaff)
	protected.DELETE("/staff/:id", h.HandleRemoveStaff)
	protected.PUT("/staff/:id/classes", h.HandleAssignClasses)

	protected.GET("/marks", h.HandleListMarks)
	protected.POST("/marks", h.HandleEnterMarks)

	protected.GET("/leaves", h.HandleListLeaves)
	protected.POST("/leaves", h.HandleApplyLeave)
	protected.PUT("/leaves/:id/status", h.HandleDecideLeave)

	protected.GET("/discipline", h.HandleListDiscipline)
	protected.POST("/discipline", h.HandleLogDiscipline)

	protected.GET("/complaints", h.HandleListComplaints)
	protected.POST("/complaints", h.HandleSubmitComplaint)

	protected.GET("/announcements", h.HandleAnnouncementFeed)
	protected.POST("/announcements", h.HandlePostAnnouncement)

	protected.GET("/syllabus", h.HandleListSyllabus)
	protected.POST("/syllabus", h.HandleUpdateSyllabus)

	protected.GET("/summary", h.HandleSummary)
}

// --- auth ---

func (h *Handler) HandleLogin(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body", err)
	}

	ctx := c.Request().Context()
	ident, err := h.login.Authenticate(ctx, "password", body.Email, body.Password)
	if err != nil {
		if flow.IsRateLimitError(err) {
			return h.fail(c, http.StatusTooManyRequests, auth.Message(err), err)
		}
		return h.fail(c, http.StatusUnauthorized, auth.Message(err), err)
	}

	prof, err := h.resolver.Resolve(ctx, ident.ID)
	if err != nil {
		// Authentication without a profile is an overall login failure.
		return h.fail(c, statusFor(err), auth.Message(err), err)
	}

	s, err := h.sessions.Create(ctx, ident.ID)
	if err != nil {
		return h.fail(c, http.StatusInternalServerError, "Internal server error", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"profile": prof,
		"token":   s.ID,
	})
}

func (h *Handler) HandleLogout(c echo.Context) error {
	token := bearerToken(c)
	if token != "" {
		_ = h.sessions.Delete(c.Request().Context(), token)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return h.fail(c, http.StatusUnauthorized, "Authorization header required", nil)
		}

		ctx := c.Request().Context()
		s, err := h.sessions.Validate(ctx, token)
		if err != nil {
			return h.fail(c, http.StatusUnauthorized, "Unauthorized", err)
		}

		prof, err := h.resolver.Resolve(ctx, s.IdentityID)
		if err != nil {
			return h.fail(c, http.StatusUnauthorized, "Unauthorized", err)
		}

		c.Set(profileKey, prof)
		return next(c)
	}
}

func (h *Handler) HandleWhoAmI(c echo.Context) error {
	return c.JSON(http.StatusOK, caller(c))
}

// --- students ---

func (h *Handler) HandleListStudents(c echo.Context) error {
	filter := service.StudentFilter{
		ClassName: c.QueryParam("class"),
		Name:      c.QueryParam("name"),
	}
	out, err := h.students.List(c.Request().Context(), caller(c), filter)
	return h.respond(c, out, err)
}

func (h *Handler) HandleCreateStudent(c echo.Context) error {
	var body service.NewStudent
	if err := c.Bind(&body); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body", err)
	}
	out, err := h.students.Create(c.Request().Context(), caller(c), body)
	return h.respond(c, out, err)
}

func (h *Handler) HandleDeleteStudent(c echo.Context) error {
	err := h.students.Delete(c.Request().Context(), caller(c), c.Param("id"))
	return h.respondEmpty(c, err)
}

func (h *Handler) HandleSetRating(c echo.Context) error {
	var body struct {
		Rating float64 `json:"rating"`
	}
	if err := c.Bind(&body); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body", err)
	}
	err := h.students.SetRating(c.Request().Context(), caller(c), c.Param("id"), body.Rating)
	return h.respondEmpty(c, err)
}

func (h *Handler) HandleSetFeeStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body", err)
	}
	err := h.students.SetFeeStatus(c.Request().Context(), caller(c), c.Param("id"), body.Status)
	return h.respondEmpty(c, err)
}

// --- staff ---

func (h *Handler) HandleListStaff(c echo.Context) error {
	out, err := h.staff.List(c.Request().Context(), caller(c))
	return h.respond(c, out, err)
}

func (h *Handler) HandleAddStaff(c echo.Context) error {
	var body service.NewStaff
	if err := c.Bind(&body); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body", err)
	}
	out, err := h.staff.Add(c.Request().Context(), caller(c), body)
	return h.respond(c, out, err)
}

func (h *Handler) HandleRemoveStaff(c echo.Context) error {
	err := h.staff.Remove(c.Request().Context(), caller(c), c.Param("id"))
	return h.respondEmpty(c, err)
}

func (h *Handler) HandleAssignClasses(c echo.Context) error {
	var body struct {
		Classes []string `json:"classes"`
	}
	if err := c.Bind(&body); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body", err)
	}
	err := h.staff.AssignClasses(c.Request().Context(), caller(c), c.Param("id"), body.Classes)
	return h.respondEmpty(c, err)
}

// --- marks ---

func (h *Handler) HandleListMarks(c echo.Context) error {
	out, err := h.marks.List(c.Request().Context(), caller(c))
	return h.respond(c, out, err)
}

func (h *Handler) HandleEnterMarks(c echo.Context) error {
	var body service.MarkEntry
	if err := c.Bind(&body); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body", err)
	}
	out, err := h.marks.Enter(c.Request().Context(), caller(c), body)
	return h.respond(c, out, err)
}

// --- leaves ---

func (h *Handler) HandleListLeaves(c echo.Context) error {
	out, err := h.leaves.List(c.Request().Context(), caller(c))
	return h.respond(c, out, err)
}

func (h *Handler) HandleApplyLeave(c echo.Context) error {
	var body struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
	if err := c.Bind(&body); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body", err)
	}
	out, err := h.leaves.Apply(c.Request().Context(), caller(c), body.Type, body.Reason)
	return h.respond(c, out, err)
}

func (h *Handler) HandleDecideLeave(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body", err)
	}
	err := h.leaves.Decide(c.Request().Context(), caller(c), c.Param("id"), body.Status)
	return h.respondEmpty(c, err)
}

// --- discipline ---

func (h *Handler) HandleListDiscipline(c echo.Context) error {
	out, err := h.discipline.List(c.Request().Context(), caller(c))
	return h.respond(c, out, err)
}

func (h *Handler) HandleLogDiscipline(c echo.Context) error {
	var body struct {
		StudentID   string `json:"studentId"`
		StudentName string `json:"studentName"`
		Level       string `json:"level"`
		Description string `json:"description"`
	}
	if err := c.Bind(&body); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body", err)
	}
	out, err := h.discipline.Log(c.Request().Context(), caller(c), body.StudentID, body.StudentName, body.Level, body.Description)
	return h.respond(c, out, err)
}

// --- complaints ---

func (h *Handler) HandleListComplaints(c echo.Context) error {
	out, err := h.complaints.List(c.Request().Context(), caller(c))
	return h.respond(c, out, err)
}

func (h *Handler) HandleSubmitComplaint(c echo.Context) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.Bind(&body); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body", err)
	}
	out, err := h.complaints.Submit(c.Request().Context(), caller(c), body.Message)
	return h.respond(c, out, err)
}

// --- announcements ---

func (h *Handler) HandleAnnouncementFeed(c echo.Context) error {
	out, err := h.announcements.Feed(c.Request().Context(), caller(c))
	return h.respond(c, out, err)
}

func (h *Handler) HandlePostAnnouncement(c echo.Context) error {
	var body struct {
		Title   string `json:"title"`
		Message string `json:"message"`
		Target  string `json:"target"`
	}
	if err := c.Bind(&body); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body", err)
	}
	out, err := h.announcements.Post(c.Request().Context(), caller(c), body.Title, body.Message, body.Target)
	return h.respond(c, out, err)
}

// --- syllabus ---

func (h *Handler) HandleListSyllabus(c echo.Context) error {
	out, err := h.syllabus.List(c.Request().Context(), c.QueryParam("class"))
	return h.respond(c, out, err)
}

func (h *Handler) HandleUpdateSyllabus(c echo.Context) error {
	var body struct {
		ClassName string `json:"className"`
		Subject   string `json:"subject"`
		Topic     string `json:"topic"`
	}
	if err := c.Bind(&body); err != nil {
		return h.fail(c, http.StatusBadRequest, "Invalid request body", err)
	}
	out, err := h.syllabus.Update(c.Request().Context(), caller(c), body.ClassName, body.Subject, body.Topic)
	return h.respond(c, out, err)
}

// --- summary ---

func (h *Handler) HandleSummary(c echo.Context) error {
	out, err := h.summary.Summary(c.Request().Context(), caller(c))
	return h.respond(c, out, err)
}

// --- helpers ---

func caller(c echo.Context) *profile.Profile {
	prof, _ := c.Get(profileKey).(*profile.Profile)
	return prof
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case err != nil:
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}

func (h *Handler) respond(c echo.Context, out interface{}, err error) error {
	if err != nil {
		return h.fail(c, statusFor(err), http.StatusText(statusFor(err)), err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) respondEmpty(c echo.Context, err error) error {
	if err != nil {
		return h.fail(c, statusFor(err), http.StatusText(statusFor(err)), err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) fail(c echo.Context, code int, message string, err error) error {
	resp := map[string]interface{}{
		"status": message,
		"code":   code,
	}
	if err != nil {
		resp["error"] = err.Error()
	}
	return c.JSON(code, resp)
}
