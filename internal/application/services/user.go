package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"doc-vault-api/internal/application/ports"
	domain "doc-vault-api/internal/domain/user"
)

type UserService struct {
	userRepository domain.Repository
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mCounter:       mCounter,
	}
}

func (us *UserService) Register(ctx context.Context, email, name, passwordHash string) (*domain.User, error) {
	u := domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: &passwordHash,
		Provider:     domain.ProviderCredentials,
	}

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("user_registered_total").Inc()

	return uRet, nil
}

func (us *UserService) FindUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) RecordLogin(ctx context.Context, uuid domain.UUID) error {
	id, err := us.userRepository.FetchInternalID(ctx, uuid)
	if err != nil {
		return err
	}

	return us.userRepository.TouchLastLogin(ctx, id)
}
