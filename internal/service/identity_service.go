package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/repository/repoargs"
	"github.com/sajidali832/envo4/pkg/uow"
)

// IdentityService локальный провайдер учетных записей: email + bcrypt хеш пароля.
type IdentityService struct {
	identityRepo IdentityRepository
	psswd        PasswordHasher
}

func NewIdentityService(u uow.UOW, psswd PasswordHasher) (*IdentityService, error) {
	repo, err := uow.GetRepositoryAs[IdentityRepository](u, uow.RepositoryName(repoargs.IdentityRepoName))
	if err != nil {
		return nil, err
	}
	return &IdentityService{
		identityRepo: repo,
		psswd:        psswd,
	}, nil
}

// SignUp создает учетную запись. Занятый email возвращает domain.ErrDuplicateEmail.
func (s *IdentityService) SignUp(ctx context.Context, email, password string) (*domain.Identity, error) {
	hash, hashErr := s.psswd.HashPassword(password)
	if hashErr != nil {
		return nil, fmt.Errorf("sign up: %s", hashErr.Error())
	}
	identity, err := s.identityRepo.Create(ctx, repoargs.CreateIdentity{
		ID:                uuid.New(),
		Email:             strings.TrimSpace(email),
		EncryptedPassword: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, fmt.Errorf("sign up: %w", domain.ErrDuplicateEmail)
		}
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return identity, nil
}

// SignIn проверяет пару email/пароль. Возвращает domain.ErrRecordNotFound или domain.ErrPasswordMissMatch.
func (s *IdentityService) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	identity, err := s.identityRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if !s.psswd.ComparePassword(password, identity.EncryptedPassword) {
		return nil, fmt.Errorf("sign in: %w", domain.ErrPasswordMissMatch)
	}
	return identity, nil
}

func (s *IdentityService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.identityRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting identity: %w", err)
	}
	return nil
}

// EnsureAdmin создает учетную запись администратора, если ее еще нет. Пароль существующей записи не меняется.
func (s *IdentityService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	_, err := s.identityRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return false, fmt.Errorf("ensuring admin identity: %w", err)
	}
	if _, signUpErr := s.SignUp(ctx, email, password); signUpErr != nil {
		return false, fmt.Errorf("ensuring admin identity: %w", signUpErr)
	}
	return true, nil
}
