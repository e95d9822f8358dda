package handlers

import (
	"net/http"
	"strings"

	"loro-backend/internal/apierr"
	"loro-backend/internal/models"
)

// Structure serves the file and directory structure of a repository.
//
// Query parameters:
//   - strategy: "nested" or "flat", the configured default when empty
//   - path: directory to start from, nested strategy only
//   - ref: branch, tag or commit, the default branch when empty
func (h *Handlers) Structure() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ref, err := repositoryRef(r)
		if err != nil {
			h.fail(rw, routeStructure, err)
			return
		}

		q := r.URL.Query()

		strategy := h.strategy
		if s := q.Get("strategy"); s != "" {
			if strategy, err = models.TreeStrategyFromString(s); err != nil {
				h.fail(rw, routeStructure, apierr.InvalidRequest("Unknown structure strategy", err))
				return
			}
		}

		path := strings.Trim(q.Get("path"), "/")
		if hasDotSegment(path) {
			h.fail(rw, routeStructure, apierr.InvalidRequest("Invalid path", nil))
			return
		}

		gitRef := q.Get("ref")
		if strings.Contains(gitRef, "..") {
			h.fail(rw, routeStructure, apierr.InvalidRequest("Invalid ref", nil))
			return
		}

		switch strategy {
		case models.TreeFlat:
			if path != "" {
				h.fail(rw, routeStructure, apierr.InvalidRequest("path is only supported by the nested strategy", nil))
				return
			}

			resp, err := h.srv.GetFlatTree(r.Context(), ref, gitRef)
			if err != nil {
				h.fail(rw, routeStructure, err)
				return
			}
			h.respond(rw, routeStructure, resp)
		default:
			resp, err := h.srv.GetNestedTree(r.Context(), ref, path, gitRef)
			if err != nil {
				h.fail(rw, routeStructure, err)
				return
			}
			h.respond(rw, routeStructure, resp)
		}
	}
}

func hasDotSegment(path string) bool {
	for _, s := range strings.Split(path, "/") {
		if s == "." || s == ".." {
			return true
		}
	}
	return false
}
