package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"loro-backend/internal/apierr"
	"loro-backend/internal/models"
)

// Repository serves repository metadata.
func (h *Handlers) Repository() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ref, err := repositoryRef(r)
		if err != nil {
			h.fail(rw, routeRepository, err)
			return
		}

		resp, err := h.srv.GetRepository(r.Context(), ref)
		if err != nil {
			h.fail(rw, routeRepository, err)
			return
		}

		h.respond(rw, routeRepository, resp)
	}
}

func repositoryRef(r *http.Request) (models.RepositoryRef, error) {
	ref, err := models.NewRepositoryRef(chi.URLParam(r, ownerPath), chi.URLParam(r, repoPath))
	if err != nil {
		return models.RepositoryRef{}, apierr.InvalidRequest("Invalid repository reference", err)
	}
	return ref, nil
}
