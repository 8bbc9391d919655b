package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"coursedesk/internal/adapters/http/middleware"
	"coursedesk/internal/application/orchestrators"
	"coursedesk/internal/application/projections"
	calendarDomain "coursedesk/internal/domain/calendar"
	courseDomain "coursedesk/internal/domain/course"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

const templatesDir = "internal/adapters/http/templates"

// renderTemplate renders a page template with shared helpers bound.
func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, loggedIn := middleware.GetSessionFromContext(r.Context())

	funcMap := template.FuncMap{
		"csrfToken":    func() string { return csrf.Token(r) },
		"isLoggedIn":   func() bool { return loggedIn },
		"currentEmail": func() string { return sess.Email },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// renderMessage renders a standalone user-facing message page.
func renderMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	renderTemplate(w, r, "message.html", map[string]any{"Message": message})
}

// requireAdmin redirects to /login unless the request carries an admin session.
// Returns the session and true, or writes the redirect and returns false.
func requireAdmin(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok || sess.Role != "admin" {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return middleware.Session{}, false
	}
	return sess, true
}

// handleCalendar handles GET / — the monthly calendar page.
// An absent month parameter defaults to the current month; a malformed
// one is a 400, never a silent fallback.
func handleCalendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var month calendarDomain.Month
	if raw := r.URL.Query().Get("month"); raw != "" {
		var err error
		month, err = calendarDomain.ParseMonth(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		month = calendarDomain.MonthOf(timeNow())
	}

	result, err := projections.QueryMonthCalendar(r.Context(), month, projections.GetMonthCalendarDeps{
		CourseStore: stores.CourseStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "calendar.html", map[string]any{
		"Month":     month,
		"PrevMonth": month.Prev().String(),
		"NextMonth": month.Next().String(),
		"Weeks":     result.Weeks,
		"Sessions":  result.SessionsByDay,
	})
}

// handleRegister handles GET (form) and POST (submit) for /register/{id}.
func handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	courseID := r.PathValue("id")

	session, err := stores.CourseStore.GetByID(ctx, courseID)
	if err == courseDomain.ErrNotFound {
		renderMessage(w, r, http.StatusNotFound, "This course session does not exist.")
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	if r.Method == "GET" {
		if session.Remaining <= 0 {
			renderMessage(w, r, http.StatusConflict, "This course session is sold out.")
			return
		}
		renderTemplate(w, r, "register.html", map[string]any{"Course": session})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.RegisterAttendeeInput{
			CourseID: courseID,
			Name:     r.FormValue("name"),
			Email:    r.FormValue("email"),
			Phone:    r.FormValue("phone"),
		}
		deps := orchestrators.RegisterAttendeeDeps{RegistrationStore: stores.RegistrationStore}

		_, err := orchestrators.ExecuteRegisterAttendee(ctx, input, deps)
		switch err {
		case nil:
			http.Redirect(w, r, "/", http.StatusSeeOther)
		case courseDomain.ErrSoldOut:
			renderMessage(w, r, http.StatusConflict, "This course session is sold out.")
		case courseDomain.ErrNotFound:
			renderMessage(w, r, http.StatusNotFound, "This course session does not exist.")
		default:
			w.WriteHeader(http.StatusBadRequest)
			renderTemplate(w, r, "register.html", map[string]any{
				"Course": session,
				"Error":  err.Error(),
			})
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogin handles GET (form) and POST (credentials) for /login.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// If already logged in, go straight to the admin list
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}
		deps := orchestrators.LoginDeps{AccountStore: stores.AccountStore}

		result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			renderTemplate(w, r, "login.html", map[string]any{"Error": err.Error()})
			return
		}

		token, err := sessions.Create(result.AccountID, result.Email, result.Role)
		if err != nil {
			internalError(w, err)
			return
		}
		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles POST /logout.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleAdmin handles GET /admin — all sessions with their registrations.
func handleAdmin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	courses, err := projections.QueryAdminCourses(r.Context(), projections.GetAdminCoursesDeps{
		CourseStore:       stores.CourseStore,
		RegistrationStore: stores.RegistrationStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "admin.html", map[string]any{"Courses": courses})
}

// handleAddCourse handles GET (form) and POST (create) for /admin/add.
// The mode field selects single-date or weekly-recurring creation.
func handleAddCourse(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	if r.Method == "GET" {
		renderTemplate(w, r, "course_form.html", map[string]any{"Action": "/admin/add"})
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	capacity, err := strconv.Atoi(r.FormValue("capacity"))
	if err != nil {
		addCourseError(w, r, "capacity must be a number")
		return
	}

	switch r.FormValue("mode") {
	case "weekly":
		weeks, err := strconv.Atoi(r.FormValue("weeks"))
		if err != nil {
			addCourseError(w, r, "week count must be a number")
			return
		}
		weekday, err := strconv.Atoi(r.FormValue("weekday"))
		if err != nil {
			addCourseError(w, r, "weekday must be a number")
			return
		}
		input := orchestrators.CreateWeeklyCoursesInput{
			StartDate:   r.FormValue("start_date"),
			Weeks:       weeks,
			Weekday:     weekday,
			StartTime:   r.FormValue("start_time"),
			EndTime:     r.FormValue("end_time"),
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Capacity:    capacity,
		}
		deps := orchestrators.CreateWeeklyCoursesDeps{CourseStore: stores.CourseStore}
		if _, err := orchestrators.ExecuteCreateWeeklyCourses(r.Context(), input, deps); err != nil {
			addCourseError(w, r, err.Error())
			return
		}
	default:
		input := orchestrators.CreateCourseInput{
			Date:        r.FormValue("date"),
			StartTime:   r.FormValue("start_time"),
			EndTime:     r.FormValue("end_time"),
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Capacity:    capacity,
		}
		deps := orchestrators.CreateCourseDeps{CourseStore: stores.CourseStore}
		if _, err := orchestrators.ExecuteCreateCourse(r.Context(), input, deps); err != nil {
			addCourseError(w, r, err.Error())
			return
		}
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func addCourseError(w http.ResponseWriter, r *http.Request, message string) {
	w.WriteHeader(http.StatusBadRequest)
	renderTemplate(w, r, "course_form.html", map[string]any{
		"Action": "/admin/add",
		"Error":  message,
	})
}

// handleEditCourse handles GET (form) and POST (update) for /admin/edit/{id}.
func handleEditCourse(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	ctx := r.Context()
	courseID := r.PathValue("id")

	session, err := stores.CourseStore.GetByID(ctx, courseID)
	if err == courseDomain.ErrNotFound {
		renderMessage(w, r, http.StatusNotFound, "This course session does not exist.")
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	if r.Method == "GET" {
		renderTemplate(w, r, "course_form.html", map[string]any{
			"Action": "/admin/edit/" + courseID,
			"Course": session,
		})
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	editError := func(message string) {
		w.WriteHeader(http.StatusBadRequest)
		renderTemplate(w, r, "course_form.html", map[string]any{
			"Action": "/admin/edit/" + courseID,
			"Course": session,
			"Error":  message,
		})
	}

	capacity, err := strconv.Atoi(r.FormValue("capacity"))
	if err != nil {
		editError("capacity must be a number")
		return
	}

	input := orchestrators.EditCourseInput{
		ID:          courseID,
		Date:        r.FormValue("date"),
		StartTime:   r.FormValue("start_time"),
		EndTime:     r.FormValue("end_time"),
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Capacity:    capacity,
	}
	deps := orchestrators.EditCourseDeps{CourseStore: stores.CourseStore}
	if err := orchestrators.ExecuteEditCourse(ctx, input, deps); err != nil {
		if err == courseDomain.ErrNotFound {
			renderMessage(w, r, http.StatusNotFound, "This course session does not exist.")
			return
		}
		editError(err.Error())
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// handleDeleteCourse handles POST /admin/delete/{id}.
// Registrations are swept with the session; a missing id is a no-op.
func handleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	deps := orchestrators.DeleteCourseDeps{
		CourseStore:       stores.CourseStore,
		RegistrationStore: stores.RegistrationStore,
	}
	if err := orchestrators.ExecuteDeleteCourse(r.Context(), r.PathValue("id"), deps); err != nil {
		internalError(w, err)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
