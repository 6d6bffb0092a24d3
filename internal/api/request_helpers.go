package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/api/shared"
	"github.com/phrazzld/hbnb-api/internal/platform/logger"
	"github.com/phrazzld/hbnb-api/internal/redact"
	"github.com/phrazzld/hbnb-api/internal/service/auth"
)

// pathUUID parses the named chi URL parameter. A malformed ID cannot name
// an existing resource, so it is answered with notFound (a 404).
func pathUUID(w http.ResponseWriter, r *http.Request, param string, notFound error) (uuid.UUID, bool) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.FromContext(r.Context()).Debug("malformed path id",
			slog.String("param", param),
			slog.String("value", raw))
		HandleAPIError(w, r, notFound, "")
		return uuid.Nil, false
	}
	return id, true
}

// requirePrincipal returns the authenticated caller, writing a 401 when
// the request carries none.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	principal, ok := shared.PrincipalFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, auth.ErrMissingToken, "")
		return auth.Principal{}, false
	}
	return principal, true
}

// decodeAndValidate reads the JSON body into req and runs its validation
// tags, writing a 400 on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	log := logger.FromContext(r.Context())

	if err := shared.DecodeJSON(r, req); err != nil {
		log.Debug("invalid request format", redact.Attr("error", err))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.ValidationMessage(err), err)
		return false
	}
	return true
}
