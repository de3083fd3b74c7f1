// Package jwt firma y verifica los tokens de acceso de quien sube cargas.
// Los tokens los emite el servicio de autenticación de la plataforma; aquí se
// verifican con el mismo secreto HS256.
package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role rol del usuario dentro de la plataforma.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleAnalyst Role = "analyst" // sube y borra cargas
	RoleViewer  Role = "viewer"  // solo consulta
)

// ParseRole normaliza un rol leído de configuración o de un token.
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// ParseRoles normaliza una lista de roles descartando los vacíos.
func ParseRoles(list []string) []Role {
	out := make([]Role, 0, len(list))
	for _, s := range list {
		if r := ParseRole(s); r != "" {
			out = append(out, r)
		}
	}
	return out
}

var (
	ErrEmptySecret  = errors.New("jwt: secret vacío")
	ErrInvalidToken = errors.New("jwt: token inválido")
)

// Identity quién hace la petición.
type Identity struct {
	UserID    string
	CompanyID string
	Role      Role
}

// Claims claims estándar más la identidad.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      Role   `json:"role"`
}

// Generate firma un token para id con caducidad ttl.
func Generate(secret string, id Identity, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    id.UserID,
		CompanyID: id.CompanyID,
		Role:      id.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse verifica firma y caducidad. Sin user_id se usa el subject.
func Parse(secret, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, ErrEmptySecret
	}
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	id := Identity{UserID: claims.UserID, CompanyID: claims.CompanyID, Role: ParseRole(string(claims.Role))}
	if id.UserID == "" {
		id.UserID = claims.Subject
	}
	if id.UserID == "" {
		return Identity{}, fmt.Errorf("%w: sin usuario", ErrInvalidToken)
	}
	return id, nil
}
