package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"nutrikids/internal/models/db_models"
	"nutrikids/internal/models/request_models"
	"nutrikids/internal/models/response_models"
	"nutrikids/internal/repositories"
	mem "nutrikids/pkg/memcache"
	"nutrikids/pkg/utils"
)

type AccountService interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPasswordWithToken(ctx context.Context, request request_models.ForgotPasswordRequest) error
	GetAccount(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
}

type accountService struct {
	accountRepo repositories.AccountRepository
	referrals   ReferralService
	mailService MailService
	resetTokens mem.ResetTokenStore
	clock       utils.Clock
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	referrals ReferralService,
	mailService MailService,
	resetTokens mem.ResetTokenStore,
	clock utils.Clock,
) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		referrals:   referrals,
		mailService: mailService,
		resetTokens: resetTokens,
		clock:       clock,
	}
}

func (a *accountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
		ReferredBy:   request.ReferralCode,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// An invalid referral code degrades to "no reward tracked"; it never
	// fails the registration itself.
	if request.ReferralCode != "" {
		if err := a.referrals.RegisterInvite(ctx, request.ReferralCode, account.ID); err != nil {
			log.Printf("register: referral code %q not tracked for %s: %v", request.ReferralCode, account.Email, err)
		}
	}

	if a.mailService != nil {
		if err := a.mailService.SendWelcome(account.Email, account.Name); err != nil {
			log.Printf("register: welcome mail to %s failed: %v", account.Email, err)
		}
	}

	return &response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}, nil
}

func (a *accountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AccountLoginResponse{
		Token:     token,
		IsPremium: account.IsEntitled(a.clock.Now()),
	}, nil
}

func (a *accountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		// Do not reveal whether the email exists.
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, account.Email, 15*time.Minute)

	if a.mailService != nil {
		if err := a.mailService.SendPasswordReset(account.Email, token); err != nil {
			log.Printf("forgot-password: mail to %s failed: %v", account.Email, err)
		}
	}
	return nil
}

func (a *accountService) ResetPasswordWithToken(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" || email != request.Email {
		return utils.ErrInvalidResetToken
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.accountRepo.UpdatePasswordHash(ctx, account.ID, hashed); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}
