package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios: el id de la
// cuenta y su login, para que los handlers no consulten la DB por petición.
type Claims struct {
	jwt.RegisteredClaims
	UsuarioID     string `json:"usuario_id"`
	NombreUsuario string `json:"nombre_usuario"`
}

// Generate genera un token JWT firmado (HS256) para la cuenta.
func Generate(secret string, usuarioID int64, nombreUsuario, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(usuarioID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UsuarioID:     strconv.FormatInt(usuarioID, 10),
		NombreUsuario: nombreUsuario,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el id de la cuenta y su login.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (usuarioID int64, nombreUsuario string, err error) {
	if secret == "" {
		return 0, "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("claims inválidos")
	}
	id, err := strconv.ParseInt(claims.UsuarioID, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("claim usuario_id inválido: %w", err)
	}
	return id, claims.NombreUsuario, nil
}
