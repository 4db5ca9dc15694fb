package user

import (
	"net/http"
	"roomapi/infras/otel"
	"roomapi/internal/domains/user/model/dto"
	"roomapi/shared/constant"
	"roomapi/shared/failure"
	"roomapi/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	otel otel.Otel
}

func New(otel otel.Otel) Handler {
	return Handler{
		otel: otel,
	}
}

// Router mounts the caller identity route. router must already be guarded by the auth middleware.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/user", handler.GetCurrentUser)
}

// GetCurrentUser returns the authenticated caller.
// @Summary Get the current user
// @Description Return the identity carried by the bearer token.
// @Tags User
// @Produce json
// @Success 200 {object} dto.CurrentUserResponse "Current user"
// @Failure 401 {object} response.Error
// @Router /user [get]
// @Security BearerAuth
func (handler *Handler) GetCurrentUser(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCurrentUser")
	defer scope.End()

	var user dto.CurrentUserResponse
	if !user.FromContext(request.Context()) {
		err := failure.Unauthorized("Unauthenticated")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, user)
}
