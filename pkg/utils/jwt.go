package utils

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// The storefront never signs tokens; it only inspects the access token the
// upstream API issued, so claims are read without signature verification.
// Authorization decisions that matter are still enforced by the backend.

// Role claim keys vary by backend framework. ASP.NET emits the schema URIs.
var roleClaimKeys = []string{
	"role",
	"roles",
	"http://schemas.microsoft.com/ws/2008/06/identity/claims/role",
	"http://schemas.microsoft.com/ws/2008/06/identity/claims/roles",
}

type Claims struct {
	UserID string
	Email  string
	Roles  []string
}

// ParseClaims decodes the token payload. Returns an error for anything that
// is not a structurally valid JWT.
func ParseClaims(tokenString string) (*Claims, error) {
	if !strings.Contains(tokenString, ".") {
		return nil, fmt.Errorf("not a JWT")
	}

	mapClaims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, mapClaims); err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	userID, _ := mapClaims["sub"].(string)
	if userID == "" {
		userID, _ = mapClaims["http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"].(string)
	}
	email, _ := mapClaims["email"].(string)

	return &Claims{
		UserID: userID,
		Email:  email,
		Roles:  extractRoles(mapClaims),
	}, nil
}

// extractRoles checks each known role claim key. A value may be an array or
// a single string, possibly comma separated.
func extractRoles(claims jwt.MapClaims) []string {
	for _, key := range roleClaimKeys {
		value, ok := claims[key]
		if !ok || value == nil {
			continue
		}

		switch v := value.(type) {
		case []interface{}:
			roles := make([]string, 0, len(v))
			for _, r := range v {
				if s, ok := r.(string); ok {
					roles = append(roles, strings.TrimSpace(s))
				}
			}
			return roles
		case string:
			parts := strings.Split(v, ",")
			roles := make([]string, 0, len(parts))
			for _, p := range parts {
				roles = append(roles, strings.TrimSpace(p))
			}
			return roles
		}
	}
	return nil
}

// HasAdminRole reports whether the token carries the Admin role claim.
func HasAdminRole(tokenString string) bool {
	claims, err := ParseClaims(tokenString)
	if err != nil {
		return false
	}
	for _, role := range claims.Roles {
		if strings.EqualFold(role, "admin") {
			return true
		}
	}
	return false
}

// ExtractToken pulls the bearer token from the request header or cookie.
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := r.Cookie("accessToken"); err == nil {
		return cookie.Value
	}
	return ""
}
