// Package auth implementa el colaborador de autenticación: resuelve
// credenciales a un token portador. La verificación del token en cada petición
// vive en el middleware HTTP.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/jwt"
)

// ErrCredenciales credenciales inválidas; se responde 401 sin distinguir si el
// usuario existe.
var ErrCredenciales = errors.New("usuario o clave incorrectos")

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de login.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(usuarios repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login verifica las credenciales contra el hash bcrypt y emite un JWT.
// Las cuentas eliminadas no pueden iniciar sesión (el repo no las ve).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarios.GetByNombreUsuario(dto.NormalizarTexto(in.NombreUsuario))
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Clave), []byte(in.Clave)); err != nil {
		return nil, ErrCredenciales
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.NombreUsuario, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Usuario: dto.UsuarioResponse{
			ID:                usuario.ID,
			NombreUsuario:     usuario.NombreUsuario,
			FechaCreacion:     usuario.CreatedAt,
			FechaModificacion: usuario.UpdatedAt,
		},
	}, nil
}
