package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"cardapio/internal/config"
	"cardapio/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey       = "user_id"       // int64
	CtxUserRoleKey     = "user_role"     // model.Role
	CtxTokenVersionKey = "token_version" // int
)

var errInvalidClaims = errors.New("invalid claims")

// AccessClaims is what the auth service puts into an access token.
type AccessClaims struct {
	UserID       int64
	Role         model.Role
	TokenVersion int
}

// AuthJWT verifies an HS256 bearer token and stores its claims on the echo context.
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	secret := []byte(cfg.JWTSecret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return unauthorized(c)
			}

			claims, err := ParseAccessToken(secret, raw)
			if err != nil {
				return unauthorized(c)
			}

			c.Set(CtxUserIDKey, claims.UserID)
			c.Set(CtxUserRoleKey, claims.Role)
			c.Set(CtxTokenVersionKey, claims.TokenVersion)
			return next(c)
		}
	}
}

func bearerToken(authz string) (string, bool) {
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}

// ParseAccessToken validates signature, expiry and the sub/role/tv claims.
func ParseAccessToken(secret []byte, raw string) (AccessClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return AccessClaims{}, errInvalidClaims
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return AccessClaims{}, errInvalidClaims
	}

	userID, err := parseUserID(mc["sub"])
	if err != nil || userID <= 0 {
		return AccessClaims{}, errInvalidClaims
	}

	roleStr, _ := mc["role"].(string)
	role := model.Role(roleStr)
	if role != model.RoleUser && role != model.RoleAdmin {
		return AccessClaims{}, errInvalidClaims
	}

	tv, err := parseInt(mc["tv"])
	if err != nil || tv < 0 {
		return AccessClaims{}, errInvalidClaims
	}

	return AccessClaims{UserID: userID, Role: role, TokenVersion: tv}, nil
}

type errorResponse struct {
	Message string `json:"message"`
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{Message: "unauthorized"})
}

func forbidden(c echo.Context, msg string) error {
	return c.JSON(http.StatusForbidden, errorResponse{Message: msg})
}

// sub may arrive as a JSON number or a numeric string
func parseUserID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid sub")
	}
}

func parseInt(v interface{}) (int, error) {
	switch t := v.(type) {
	case float64:
		return int(t), nil
	case string:
		i64, err := strconv.ParseInt(t, 10, 32)
		if err != nil {
			return 0, err
		}
		return int(i64), nil
	default:
		return 0, errors.New("invalid int")
	}
}
