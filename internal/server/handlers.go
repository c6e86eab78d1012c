package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/portfolio/internal/experience"
	"github.com/jonathan/portfolio/internal/i18n"
	"github.com/jonathan/portfolio/internal/profile"
	"github.com/jonathan/portfolio/internal/views"
)

// ProjectListResponse is returned by the project listing endpoints.
type ProjectListResponse struct {
	Locale    i18n.Locale         `json:"locale"`
	Alternate string              `json:"alternate"`
	Projects  []views.ProjectCard `json:"projects"`
}

// ExperienceResponse is returned by the experience endpoint.
type ExperienceResponse struct {
	Locale  i18n.Locale                `json:"locale"`
	Entries []experience.ResolvedEntry `json:"entries"`
}

// AboutResponse is returned by the about endpoint.
type AboutResponse struct {
	Locale    i18n.Locale      `json:"locale"`
	Alternate string           `json:"alternate"`
	Profile   profile.Resolved `json:"profile"`
}

// HomeResponse bundles the teasers shown on a locale home page.
type HomeResponse struct {
	Locale     i18n.Locale                `json:"locale"`
	Alternate  string                     `json:"alternate"`
	Featured   []views.ProjectCard        `json:"featured"`
	Experience []experience.ResolvedEntry `json:"experience"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRoot redirects to the home page of the negotiated locale.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	locale := s.defaultLocale
	if header := r.Header.Get("Accept-Language"); header != "" {
		locale = i18n.Negotiate(header)
	}
	http.Redirect(w, r, i18n.HomeOf(locale), http.StatusFound)
}

// handleHome returns the featured projects and experience teasers for a locale.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	locale, ok := s.pathLocale(w, r)
	if !ok {
		return
	}

	featured, err := s.projects.ListFeatured(s.featuredLimit)
	if err != nil {
		s.contentError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, HomeResponse{
		Locale:     locale,
		Alternate:  i18n.SwitchLocalePath(r.URL.Path, locale),
		Featured:   views.Cards(featured, locale),
		Experience: s.timeline.Resolve(locale),
	})
}

// handleListProjects returns every project as a card.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	locale, ok := s.pathLocale(w, r)
	if !ok {
		return
	}

	projects, err := s.projects.ListAll()
	if err != nil {
		s.contentError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ProjectListResponse{
		Locale:    locale,
		Alternate: i18n.SwitchLocalePath(r.URL.Path, locale),
		Projects:  views.Cards(projects, locale),
	})
}

// handleFeaturedProjects returns up to ?max= featured projects.
func (s *Server) handleFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	locale, ok := s.pathLocale(w, r)
	if !ok {
		return
	}

	limit := s.featuredLimit
	if raw := r.URL.Query().Get("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeError(w, r, &ErrValidation{Field: "max", Message: "must be a non-negative integer"})
			return
		}
		limit = n
	}

	projects, err := s.projects.ListFeatured(limit)
	if err != nil {
		s.contentError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ProjectListResponse{
		Locale:    locale,
		Alternate: i18n.SwitchLocalePath(r.URL.Path, locale),
		Projects:  views.Cards(projects, locale),
	})
}

// handleGetProject returns a single project with its body.
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	locale, ok := s.pathLocale(w, r)
	if !ok {
		return
	}

	project, err := s.projects.GetBySlug(r.PathValue("slug"), locale)
	if err != nil {
		s.contentError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, views.Detail(project, locale))
}

// handleExperience returns the experience timeline.
func (s *Server) handleExperience(w http.ResponseWriter, r *http.Request) {
	locale, ok := s.pathLocale(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, ExperienceResponse{
		Locale:  locale,
		Entries: s.timeline.Resolve(locale),
	})
}

// handleAbout returns the biography, education and skills for a locale.
func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	locale, ok := s.pathLocale(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, AboutResponse{
		Locale:    locale,
		Alternate: i18n.SwitchLocalePath(r.URL.Path, locale),
		Profile:   s.profile.Resolve(locale),
	})
}

// handleSwitchLocale maps ?path= to the other locale given ?current=.
func (s *Server) handleSwitchLocale(w http.ResponseWriter, r *http.Request) {
	current := r.URL.Query().Get("current")
	if !i18n.IsSupported(current) {
		s.writeError(w, r, &ErrValidation{Field: "current", Message: "must be one of es, en"})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"path": i18n.SwitchLocalePath(r.URL.Query().Get("path"), i18n.Locale(current)),
	})
}

// pathLocale reads the {locale} path segment, writing a 400 response when it
// is not a supported locale code.
func (s *Server) pathLocale(w http.ResponseWriter, r *http.Request) (i18n.Locale, bool) {
	raw := r.PathValue("locale")
	if !i18n.IsSupported(raw) {
		s.writeError(w, r, &ErrValidation{Field: "locale", Message: "unsupported locale " + strconv.Quote(raw)})
		return "", false
	}
	return i18n.Locale(raw), true
}

// contentError logs content failures before writing the error response.
func (s *Server) contentError(w http.ResponseWriter, r *http.Request, err error) {
	if status := HTTPStatus(err); status >= http.StatusInternalServerError {
		s.logger.Error("content request failed", "path", r.URL.Path, "status", status, "error", err)
	}
	s.writeError(w, r, err)
}

// writeError maps err to a status code and writes it as JSON.
func (s *Server) writeError(w http.ResponseWriter, _ *http.Request, err error) {
	status := HTTPStatus(err)
	s.errorResponse(w, status, publicMessage(err, status))
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("error encoding JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
