package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"gigwise/internal/models/db_models"
	"gigwise/internal/models/request_models"
	"gigwise/internal/models/response_models"
	"gigwise/internal/repositories"
	mem "gigwise/pkg/memcache"
	"gigwise/pkg/utils"
)

const resetTokenTTL = 30 * time.Minute

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPasswordWithToken(ctx context.Context, request request_models.ForgotPasswordRequest) error
}

type AccountService struct {
	accountRepo  repositories.AccountRepository
	profileRepo  repositories.ProfileRepository
	referralRepo repositories.ReferralRepository
	resetTokens  mem.ResetTokenStore
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	referralRepo repositories.ReferralRepository,
	resetTokens mem.ResetTokenStore,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:  accountRepo,
		profileRepo:  profileRepo,
		referralRepo: referralRepo,
		resetTokens:  resetTokens,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
	}
	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	profile, err := a.profileRepo.FindByAccountID(ctx, newAccount.ID)
	if err == nil && profile != nil {
		profile.Name = request.DisplayName
		_ = a.profileRepo.Save(ctx, profile)
	}

	a.issueReferralCode(ctx, newAccount.ID)
	if request.ReferralCode != "" {
		a.redeemReferral(ctx, newAccount.ID, request.ReferralCode)
	}

	return nil
}

// issueReferralCode gives every new account its own shareable code.
// Failures only cost the user a code, so they are logged and swallowed.
func (a *AccountService) issueReferralCode(ctx context.Context, accountID uuid.UUID) {
	code, err := utils.GenerateSecureToken(4)
	if err != nil {
		return
	}
	rc := &db_models.ReferralCode{
		AccountID: accountID,
		Code:      strings.ToUpper(code),
	}
	if err := a.referralRepo.InsertCode(ctx, rc); err != nil {
		log.Warn().Err(err).Str("account_id", accountID.String()).Msg("referral code creation failed")
	}
}

func (a *AccountService) redeemReferral(ctx context.Context, newAccountID uuid.UUID, code string) {
	rc, err := a.referralRepo.FindCode(ctx, strings.ToUpper(code))
	if err != nil || rc == nil {
		return
	}
	if rc.MaxUses > 0 && rc.UseCount >= rc.MaxUses {
		return
	}
	referral := &db_models.Referral{
		AccountID:         rc.AccountID,
		ReferredAccountID: newAccountID,
		ReferralCodeID:    rc.ID,
		RewardDays:        7,
	}
	if err := a.referralRepo.Redeem(ctx, referral); err != nil {
		log.Warn().Err(err).Str("code", code).Msg("referral redemption failed")
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	isPremium := false
	if profile, err := a.profileRepo.FindByAccountID(ctx, account.ID); err == nil && profile != nil {
		isPremium = profile.PlanType == db_models.PlanTypePro &&
			profile.PlanStatus != db_models.PlanStatusExpired
	}

	return &response_models.AccountLoginResponse{
		Token:     token,
		IsPremium: isPremium,
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	profile, err := a.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.ProfileResponse{
		ID:                account.ID.String(),
		Email:             account.Email,
		Name:              profile.Name,
		Phone:             profile.Phone,
		TaxID:             profile.TaxID,
		BirthDate:         profile.BirthDate,
		PhotoURL:          profile.PhotoURL,
		PlanType:          string(profile.PlanType),
		PlanStatus:        string(profile.PlanStatus),
		Timezone:          profile.Timezone,
		Gender:            profile.Gender,
		NotificationToken: profile.NotificationToken,
	}, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) error {
	profile, err := a.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if profile == nil {
		return utils.ErrAccountNotFound
	}

	if request.Name != nil {
		profile.Name = *request.Name
	}
	if request.Phone != nil {
		profile.Phone = *request.Phone
	}
	if request.TaxID != nil {
		profile.TaxID = *request.TaxID
	}
	if request.BirthDate != nil {
		profile.BirthDate = request.BirthDate
	}
	if request.PhotoURL != nil {
		profile.PhotoURL = *request.PhotoURL
	}
	if request.Timezone != nil {
		profile.Timezone = *request.Timezone
	}
	if request.Gender != nil {
		profile.Gender = *request.Gender
	}
	if request.NotificationToken != nil {
		profile.NotificationToken = *request.NotificationToken
	}

	if err := a.profileRepo.Save(ctx, profile); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ForgotPassword never reveals whether the email exists; a token is
// only issued when it does.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	// TODO: deliver the token through the push-notification channel once
	// the notification service lands.
	log.Info().Str("email", email).Msg("password reset token issued")
	return nil
}

func (a *AccountService) ResetPasswordWithToken(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" || email != request.Email {
		return utils.ErrInvalidCredentials
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
	if err := a.accountRepo.UpdatePassword(ctx, account.ID, hashed); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
