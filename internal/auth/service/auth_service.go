package service

import (
	"context"
	"errors"

	commoncrypto "github.com/versionverse/backend/internal/common/crypto"
	commonerrors "github.com/versionverse/backend/internal/common/errors"
	"github.com/versionverse/backend/internal/common/logger"
	"github.com/versionverse/backend/internal/observability/metrics"
	userdomain "github.com/versionverse/backend/internal/user/domain"
	userrepo "github.com/versionverse/backend/internal/user/repository"
)

type AuthService struct {
	repo        userrepo.Repository
	hasher      commoncrypto.PasswordHasher
	idGenerator commoncrypto.IDGenerator
	issuer      *TokenIssuer
	log         *logger.Logger
}

func NewAuthService(
	repo userrepo.Repository,
	hasher commoncrypto.PasswordHasher,
	idGenerator commoncrypto.IDGenerator,
	issuer *TokenIssuer,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		repo:        repo,
		hasher:      hasher,
		idGenerator: idGenerator,
		issuer:      issuer,
		log:         log,
	}
}

type Credentials struct {
	Username string
	Password string
}

func (s *AuthService) Signup(ctx context.Context, input Credentials) (string, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "signup_attempt",
	}).Info("signup attempt")

	if input.Username == "" || input.Password == "" {
		return "", commonerrors.ErrMissingCredentials
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "signup_hash_failed",
		}).Errorf("signup failed: password hash error: %v", err)
		return "", commonerrors.ErrInternalError.WithCause(err)
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		return "", commonerrors.ErrInternalError.WithCause(err)
	}

	user := userdomain.User{
		ID:           userdomain.ID(id),
		Username:     input.Username,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, userrepo.ErrUsernameAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "signup_username_exists",
			}).Warn("signup failed: username already exists")
			return "", commonerrors.ErrUsernameTaken
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "signup_create_failed",
		}).Errorf("signup failed: %v", err)
		return "", commonerrors.ErrDatabaseError.WithCause(err)
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"user_id":  id,
			"action":   "signup_token_issue_failed",
		}).Errorf("signup failed: token issue error: %v", err)
		return "", commonerrors.ErrInternalError.WithCause(err)
	}

	metrics.SignupsTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"user_id":  id,
		"action":   "signup_success",
	}).Info("signup success")

	return token, nil
}

func (s *AuthService) Signin(ctx context.Context, input Credentials) (string, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "signin_attempt",
	}).Info("signin attempt")

	if input.Username == "" || input.Password == "" {
		return "", commonerrors.ErrMissingCredentials
	}

	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "signin_user_not_found",
			}).Warn("signin failed: user not found")
			return "", commonerrors.ErrUserNotFound
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "signin_fetch_failed",
		}).Errorf("signin failed: %v", err)
		return "", commonerrors.ErrDatabaseError.WithCause(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "signin_invalid_password",
		}).Warn("signin failed: invalid password")
		return "", commonerrors.ErrInvalidPassword
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"user_id":  string(user.ID),
			"action":   "signin_token_issue_failed",
		}).Errorf("signin failed: token issue error: %v", err)
		return "", commonerrors.ErrInternalError.WithCause(err)
	}

	metrics.SigninsTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"user_id":  string(user.ID),
		"action":   "signin_success",
	}).Info("signin success")

	return token, nil
}
