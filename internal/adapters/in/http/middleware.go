package http

import (
	"crypto/subtle"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"entregas/internal/core/domain/model/user"
	"entregas/internal/core/domain/services"
)

const claimsKey = "claims"

// RequestRecorder observes every served request.
type RequestRecorder interface {
	HTTPRequest(route, method string, status int, d time.Duration)
}

// requireAuth rejects requests without a valid bearer token and stores its claims
// in the echo context.
func requireAuth(tokens *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			claims, err := tokens.Parse(strings.TrimSpace(raw))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			ctx.Set(claimsKey, claims)
			return next(ctx)
		}
	}
}

// requireRole must run after requireAuth.
func requireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims := claimsFrom(ctx)
			if claims == nil || !slices.Contains(roles, claims.Role) {
				return ctx.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "Insufficient permissions",
				})
			}
			return next(ctx)
		}
	}
}

// WebhookSecretHeader carries the shared secret of webhook callbacks. The secret may
// also come in the "secret" query parameter, for callers that only let us set a URL.
const WebhookSecretHeader = "X-Webhook-Secret"

func requireWebhookSecret(secret string) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:" + WebhookSecretHeader + ",query:secret",
		Validator: func(key string, _ echo.Context) (bool, error) {
			return secret != "" && subtle.ConstantTimeCompare([]byte(key), []byte(secret)) == 1, nil
		},
		ErrorHandler: func(_ error, ctx echo.Context) error {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Invalid webhook secret",
			})
		},
	})
}

// authorizeBranch keeps branch staff inside their own branch. Other roles pass.
func authorizeBranch(claims *Claims, branchID *int64) error {
	if claims.Role != user.BranchStaff {
		return nil
	}
	if claims.BranchID == nil || branchID == nil || *claims.BranchID != *branchID {
		return services.ErrBranchMismatch
	}
	return nil
}

func claimsFrom(ctx echo.Context) *Claims {
	claims, _ := ctx.Get(claimsKey).(*Claims)
	return claims
}

func recordRequests(recorder RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			if err := next(ctx); err != nil {
				ctx.Error(err)
			}

			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			recorder.HTTPRequest(route, ctx.Request().Method, ctx.Response().Status, time.Since(start))
			return nil
		}
	}
}
