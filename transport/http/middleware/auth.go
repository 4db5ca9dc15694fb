package middleware

import (
	"errors"
	"net/http"
	"roomapi/infras/jwt"
	"roomapi/infras/otel"
	"roomapi/shared/constant"
	"roomapi/shared/failure"
	"roomapi/transport/http/response"

	"github.com/rs/zerolog/hlog"
)

// Auth guards routes with a bearer access token.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwt  jwt.JWT
	otel otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel) Auth {
	return &authImpl{
		jwt:  jwtService,
		otel: otel,
	}
}

// Auth validates the token and stores its claims in the request context.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		claims, err := m.authenticate(request)
		if err != nil {
			scope.TraceError(err)
			scope.End()

			hlog.FromRequest(request).Debug().Err(err).Msg("request rejected by auth middleware")
			response.WithError(writer, err)

			return
		}

		scope.SetAttribute("auth.user_id", claims.UserID)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(jwt.NewContext(ctx, claims)))
	})
}

func (m *authImpl) authenticate(request *http.Request) (*jwt.Claims, error) {
	token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
	if errors.Is(err, jwt.ErrMissingToken) {
		return nil, failure.Unauthorized("Missing authorization header")
	}

	if err != nil {
		return nil, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.jwt.ValidateToken(token)

	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return nil, failure.Unauthorized("Token has expired")
	case errors.Is(err, jwt.ErrInvalidClaim):
		return nil, failure.Unauthorized("Invalid token claims")
	case err != nil:
		return nil, failure.Unauthorized("Invalid token")
	}

	return claims, nil
}
