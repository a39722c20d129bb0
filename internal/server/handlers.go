package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"africlimate/internal/auth"
	"africlimate/internal/comments"
	"africlimate/internal/reports"
	"africlimate/internal/storage"
	"africlimate/internal/views"
)

// HandleDashboard serves the dashboard page. Region and year query
// parameters narrow the filterable charts; every chart renders
// independently, so a failure in one becomes an inline message while the
// rest of the page stays intact.
func (s *Server) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := parseFilter(r)
	sections := s.buildSections(r.Context(), filter)

	page, err := s.Pages.BuildPage(reports.PageData{
		Title:    reports.DashboardTitle,
		Regions:  s.Data.Regions(),
		Sections: sections,
	})
	if err != nil {
		s.Log.Errorw("failed to build dashboard page", "error", err)
		http.Error(w, "Failed to build page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// buildSections selects and renders every chart on the page. Selection
// and rendering failures degrade to inline error sections; a comment
// listing failure degrades to an empty comment list.
func (s *Server) buildSections(ctx context.Context, filter views.Filter) []reports.ChartSection {
	sections := make([]reports.ChartSection, 0, len(views.AllKinds))
	for _, kind := range views.AllKinds {
		start := time.Now()
		view, err := views.Select(s.Data, kind, filter)
		s.Metrics.ViewSelectionDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			outcome := "error"
			message := "Chart temporarily unavailable."
			if errors.Is(err, views.ErrEmptyResult) {
				outcome = "empty"
				message = "No data matches the selected filter."
			} else {
				s.Log.Warnw("view selection failed", "kind", kind, "error", err)
			}
			s.Metrics.ViewsRendered.WithLabelValues(string(kind), outcome).Inc()
			sections = append(sections, s.Pages.ErrorSection(kind, message))
			continue
		}

		snippet, err := s.Generator.BuildSnippet(view)
		if err != nil {
			s.Log.Warnw("chart rendering failed", "kind", kind, "error", err)
			s.Metrics.ViewsRendered.WithLabelValues(string(kind), "error").Inc()
			sections = append(sections, s.Pages.ErrorSection(kind, "Chart rendering failed."))
			continue
		}

		chartComments, err := s.Comments.List(ctx, string(kind))
		if err != nil {
			s.Log.Warnw("failed to list comments", "kind", kind, "error", err)
			chartComments = nil
		}

		s.Metrics.ViewsRendered.WithLabelValues(string(kind), "success").Inc()
		sections = append(sections, s.Pages.Section(snippet, chartComments))
	}
	return sections
}

// HandleView serves one chart's rows as JSON. The chart kind comes from
// the URL path; region and year filters come from query parameters.
func (s *Server) HandleView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	kind := views.ChartKind(strings.TrimPrefix(r.URL.Path, "/api/views/"))
	filter := parseFilter(r)

	start := time.Now()
	view, err := views.Select(s.Data, kind, filter)
	s.Metrics.ViewSelectionDuration.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, views.ErrUnknownChartKind):
		s.Metrics.ViewsRendered.WithLabelValues(string(kind), "error").Inc()
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error": "unknown chart kind",
			"kind":  string(kind),
		})
		return
	case errors.Is(err, views.ErrEmptyResult):
		s.Metrics.ViewsRendered.WithLabelValues(string(kind), "empty").Inc()
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"kind":    string(kind),
			"empty":   true,
			"message": "no rows match the requested filter",
		})
		return
	case err != nil:
		s.Log.Errorw("view selection failed", "kind", kind, "error", err)
		s.Metrics.ViewsRendered.WithLabelValues(string(kind), "error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error": "view selection failed",
		})
		return
	}

	s.Metrics.ViewsRendered.WithLabelValues(string(kind), "success").Inc()
	writeJSON(w, http.StatusOK, view)
}

// HandleRegister creates a new user account.
func (s *Server) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req auth.RegisterRequest
	if err := decodeRequest(r, &req, func() {
		req.Email = r.PostFormValue("email")
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
		req.ConfirmPassword = r.PostFormValue("confirm_password")
	}); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid request body"})
		return
	}

	user, err := s.Auth.Register(r.Context(), req)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, auth.ErrDuplicateEmail), errors.Is(err, auth.ErrDuplicateUsername):
			status = http.StatusConflict
			s.Metrics.Registrations.WithLabelValues("rejected").Inc()
		case errors.Is(err, auth.ErrInvalidEmail), errors.Is(err, auth.ErrMissingUsername),
			errors.Is(err, auth.ErrWeakPassword):
			s.Metrics.Registrations.WithLabelValues("rejected").Inc()
		default:
			status = http.StatusInternalServerError
			s.Log.Errorw("registration failed", "error", err)
			s.Metrics.Registrations.WithLabelValues("error").Inc()
		}
		writeJSON(w, status, map[string]interface{}{"error": err.Error()})
		return
	}

	s.Metrics.Registrations.WithLabelValues("success").Inc()
	s.Log.Infow("user registered", "username", user.Username)

	if isFormPost(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"status":   "registered",
		"username": user.Username,
	})
}

// HandleLogin checks credentials and issues a session token. An unknown
// email and a wrong password report different messages on purpose.
func (s *Server) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeRequest(r, &req, func() {
		req.Email = r.PostFormValue("email")
		req.Password = r.PostFormValue("password")
	}); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid request body"})
		return
	}

	session, err := s.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, auth.ErrInvalidCredentials):
			s.Metrics.Logins.WithLabelValues("rejected").Inc()
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"error": err.Error()})
		default:
			s.Log.Errorw("login failed", "error", err)
			s.Metrics.Logins.WithLabelValues("error").Inc()
			writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "login failed"})
		}
		return
	}

	s.Metrics.Logins.WithLabelValues("success").Inc()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
	})

	if isFormPost(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// HandleComments lists comments for a chart (GET) or adds one (POST).
func (s *Server) HandleComments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListComments(w, r)
	case http.MethodPost:
		s.handleAddComment(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	chartTag := r.URL.Query().Get("chart")
	if chartTag == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "chart query parameter required"})
		return
	}

	list, err := s.Comments.List(r.Context(), chartTag)
	if err != nil {
		s.Log.Errorw("failed to list comments", "chart", chartTag, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "failed to list comments"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"chart":    chartTag,
		"comments": list,
		"count":    len(list),
	})
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChartTag string `json:"chart_tag"`
		Comment  string `json:"comment"`
	}
	if err := decodeRequest(r, &req, func() {
		req.ChartTag = r.PostFormValue("chart_tag")
		req.Comment = r.PostFormValue("comment")
	}); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid request body"})
		return
	}
	if req.ChartTag == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": "chart_tag is required"})
		return
	}

	comment, err := s.Comments.Add(r.Context(), sessionToken(r), req.ChartTag, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, comments.ErrNotAuthenticated):
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"error": "login required to comment"})
		case errors.Is(err, comments.ErrEmptyComment):
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		default:
			s.Log.Errorw("failed to add comment", "chart", req.ChartTag, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "failed to add comment"})
		}
		return
	}

	s.Metrics.CommentsAdded.Inc()

	if isFormPost(r) {
		http.Redirect(w, r, "/#"+req.ChartTag, http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

// HandleSnapshots exports a new dashboard snapshot (POST) or lists the
// stored ones (GET).
func (s *Server) HandleSnapshots(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleExportSnapshot(w, r)
	case http.MethodGet:
		s.handleListSnapshots(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleExportSnapshot(w http.ResponseWriter, r *http.Request) {
	folder, err := s.Snapshots.Export(r.Context(), time.Now())
	if err != nil {
		s.Log.Errorw("snapshot export failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "snapshot export failed"})
		return
	}

	s.Metrics.Snapshots.Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "exported",
		"folder": folder,
		"url":    "/" + folder + "/index.html",
	})
}

func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 10, 100)

	snapshots, err := s.Storage.ListSnapshots(r.Context(), limit)
	if err != nil {
		s.Log.Errorw("failed to list snapshots", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "failed to list snapshots"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"snapshots": snapshots,
		"count":     len(snapshots),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleSnapshotFile serves files from an exported snapshot folder, local
// or GCS alike, through the storage client.
func (s *Server) HandleSnapshotFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/")
	if filePath == "" || strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	fileData, err := s.Storage.GetFile(r.Context(), filePath)
	if err != nil {
		s.Log.Warnw("snapshot file not found", "path", filePath, "error", err)
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(filePath))
	w.Write(fileData)
}

// HandleHealth provides the health check endpoint.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"dataset": "ok",
			"config":  "ok",
		},
	})
}
