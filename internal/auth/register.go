package auth

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/toyosu-dev/lunchnavi-backend/internal/users"
	pkgAuth "github.com/toyosu-dev/lunchnavi-backend/pkg/auth"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/auth/session"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/config"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/db"
	pkgerrors "github.com/toyosu-dev/lunchnavi-backend/pkg/errors"
	"github.com/toyosu-dev/lunchnavi-backend/pkg/security"
)

const (
	loginIDLength      = 4
	loginIDMaxAttempts = 20
)

// RegisterService handles new-user onboarding.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	DB             *db.Client
	SessionManager sessionManager
	PasswordConfig config.PasswordConfig
	JWTConfig      config.JWTConfig
}

type registerService struct {
	db          *db.Client
	session     sessionManager
	passwordCfg config.PasswordConfig
	jwtCfg      config.JWTConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	if params.SessionManager == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session manager required")
	}
	return &registerService{
		db:          params.DB,
		session:     params.SessionManager,
		passwordCfg: params.PasswordConfig,
		jwtCfg:      params.JWTConfig,
	}, nil
}

// Register creates a user under a freshly generated four-digit login ID
// and opens their first session.
func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var created *users.UserDTO
	var loginID string
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)

		loginID, err = generateUniqueLoginID(ctx, userRepo)
		if err != nil {
			return err
		}

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			LoginID:      loginID,
			PasswordHash: passwordHash,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		created = users.FromModel(user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	accessID := session.NewAccessID()
	accessToken, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID:  created.ID,
		LoginID: created.LoginID,
		JTI:     accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	refreshToken, err := s.session.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store refresh token")
	}

	return &RegisterResponse{
		LoginID:      loginID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         created,
	}, nil
}

type loginIDChecker interface {
	ExistsByLoginID(ctx context.Context, loginID string) (bool, error)
}

// generateUniqueLoginID draws random four-digit codes until a free one is
// found. The ID space holds 10000 codes; exhausting the attempt budget
// means the instance is effectively full.
func generateUniqueLoginID(ctx context.Context, repo loginIDChecker) (string, error) {
	for attempt := 0; attempt < loginIDMaxAttempts; attempt++ {
		candidate, err := security.GenerateDigitCode(loginIDLength)
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate login id")
		}
		taken, err := repo.ExistsByLoginID(ctx, candidate)
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check login id")
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", pkgerrors.New(pkgerrors.CodeConflict, "no free login id available")
}
