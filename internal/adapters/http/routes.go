package web

import "net/http"

// registerRoutes attaches all application handlers to the mux.
// Method checks and admin gating happen inside the handlers.
func registerRoutes(mux *http.ServeMux) {
	// Public pages
	mux.HandleFunc("/{$}", handleCalendar)
	mux.HandleFunc("/register/{id}", handleRegister)

	// Admin session
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)

	// Admin pages (require an admin session)
	mux.HandleFunc("/admin", handleAdmin)
	mux.HandleFunc("/admin/add", handleAddCourse)
	mux.HandleFunc("/admin/edit/{id}", handleEditCourse)
	mux.HandleFunc("/admin/delete/{id}", handleDeleteCourse)
}
