package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"

	"Bolso/internal/domain/user"
	appErrors "Bolso/internal/errors"
	"Bolso/internal/pkg"
)

type Service struct {
	Repository     user.Repository
	UserService    *user.Service
	GoogleClientID string
}

func NewService(repo user.Repository, userSvc *user.Service, googleClientID string) *Service {
	return &Service{
		Repository:     repo,
		UserService:    userSvc,
		GoogleClientID: googleClientID,
	}
}

type Login struct {
	Email    string
	Password string
}

func (s *Service) Login(ctx context.Context, login Login) (*user.User, error) {
	entity, err := s.Repository.GetByEmail(ctx, login.Email)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(entity.Password), []byte(login.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}
	return entity, nil
}

func (s *Service) Register(ctx context.Context, entity *user.User) error {
	if _, err := s.Repository.GetByEmail(ctx, entity.Email); err == nil {
		return appErrors.ErrEmailAlreadyExists
	}
	if err := PasswordRequirements(entity.Password); err != nil {
		return err
	}
	return s.UserService.Create(ctx, entity)
}

// GoogleLogin valida um id-token do Google e devolve o usuário, criando-o no
// primeiro acesso.
func (s *Service) GoogleLogin(ctx context.Context, credential string) (*user.User, error) {
	if s.GoogleClientID == "" {
		return nil, appErrors.NewAuthError("OAUTH_NOT_CONFIGURED", "Google OAuth não está configurado")
	}
	if credential == "" {
		return nil, appErrors.NewAuthError("CREDENTIAL_MISSING", "Credencial do Google não fornecida")
	}

	payload, err := idtoken.Validate(ctx, credential, s.GoogleClientID)
	if err != nil {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Token do Google inválido").WithError(err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Token do Google sem email")
	}

	if entity, err := s.Repository.GetByEmail(ctx, email); err == nil {
		return entity, nil
	}

	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = strings.Split(email, "@")[0]
	}

	// Contas criadas via Google não têm senha local; um segredo aleatório
	// impede login por senha nelas.
	entity := &user.User{
		Name:     name,
		Email:    email,
		Password: "oauth:" + pkg.GenerateULID() + pkg.GenerateULID(),
	}
	if err := s.UserService.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// PasswordRequirements aplica a política mínima de senha local.
func PasswordRequirements(password string) error {
	if len(password) < 8 {
		return appErrors.NewValidationError("password", "senha deve ter no mínimo 8 caracteres")
	}
	return nil
}
