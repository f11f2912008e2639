package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/almacenpro/rma-backend/internal/application/dto"
	"github.com/almacenpro/rma-backend/internal/domain"
	"github.com/almacenpro/rma-backend/internal/domain/entity"
	"github.com/almacenpro/rma-backend/internal/domain/repository"
	"github.com/almacenpro/rma-backend/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro y login.
type UseCase struct {
	userRepo repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UsuarioRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) Register(in dto.RegisterRequest) (*entity.Usuario, error) {
	if in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Email
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolBodega
	}
	u := &entity.Usuario{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Nombre:       nombre,
		PasswordHash: string(hash),
		Rol:          rol,
		CreadoEn:     time.Now(),
	}
	if err := uc.userRepo.Crear(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifica credenciales y emite un JWT con user id y rol.
// Devuelve ErrUnauthorized tanto para email inexistente como para
// password incorrecto (sin distinguir, para no filtrar qué emails existen).
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, UserID: u.ID, Nombre: u.Nombre, Rol: u.Rol}, nil
}
