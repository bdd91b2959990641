package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"gigwise/internal/models/db_models"
	"gigwise/internal/models/request_models"
	"gigwise/pkg/utils"
)

type fakeReferralRepo struct {
	codes     map[string]*db_models.ReferralCode
	referrals []*db_models.Referral
}

func newFakeReferralRepo() *fakeReferralRepo {
	return &fakeReferralRepo{codes: make(map[string]*db_models.ReferralCode)}
}

func (f *fakeReferralRepo) InsertCode(_ context.Context, code *db_models.ReferralCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	f.codes[code.Code] = code
	return nil
}

func (f *fakeReferralRepo) FindCode(_ context.Context, code string) (*db_models.ReferralCode, error) {
	return f.codes[code], nil
}

func (f *fakeReferralRepo) Redeem(_ context.Context, referral *db_models.Referral) error {
	f.referrals = append(f.referrals, referral)
	for _, c := range f.codes {
		if c.ID == referral.ReferralCodeID {
			c.UseCount++
		}
	}
	return nil
}

// fakeResetTokens captures the last issued token so tests can walk the
// forgot-password flow without a delivery channel.
type fakeResetTokens struct {
	tokens    map[string]string
	lastToken string
}

func newFakeResetTokens() *fakeResetTokens {
	return &fakeResetTokens{tokens: make(map[string]string)}
}

func (f *fakeResetTokens) Set(token, email string, _ time.Duration) {
	f.tokens[token] = email
	f.lastToken = token
}

func (f *fakeResetTokens) Consume(token string) string {
	email := f.tokens[token]
	delete(f.tokens, token)
	return email
}

func (f *fakeResetTokens) Peek(token string) (string, bool) {
	email, ok := f.tokens[token]
	return email, ok
}

type accountFixture struct {
	accounts  *fakeAccountRepo
	profiles  *fakeProfileRepo
	referrals *fakeReferralRepo
	resets    *fakeResetTokens
	svc       AccountServiceInterface
}

func newAccountFixture() *accountFixture {
	profiles := newFakeProfileRepo()
	accounts := newFakeAccountRepo(profiles)
	referrals := newFakeReferralRepo()
	resets := newFakeResetTokens()
	return &accountFixture{
		accounts:  accounts,
		profiles:  profiles,
		referrals: referrals,
		resets:    resets,
		svc:       NewAccountService(accounts, profiles, referrals, resets),
	}
}

func TestCreateAccountSetsUpProfileAndReferralCode(t *testing.T) {
	fx := newAccountFixture()

	err := fx.svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Sam Gigs",
		Email:       "sam@example.com",
		Password:    "hunter22",
	})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	account, _ := fx.accounts.FindByEmail(context.Background(), "sam@example.com")
	if account == nil {
		t.Fatal("account not created")
	}
	if account.PasswordHash == "hunter22" {
		t.Error("password stored in plaintext")
	}
	if err := utils.ComparePasswords(account.PasswordHash, "hunter22"); err != nil {
		t.Error("stored hash does not verify")
	}
	if fx.profiles.profiles[account.ID].Name != "Sam Gigs" {
		t.Error("display name not applied to profile")
	}
	if len(fx.referrals.codes) != 1 {
		t.Errorf("expected one referral code, got %d", len(fx.referrals.codes))
	}
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	fx := newAccountFixture()
	fx.seedAccount(t, "sam@example.com")

	err := fx.svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Sam",
		Email:       "sam@example.com",
		Password:    "hunter22",
	})
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func (fx *accountFixture) seedAccount(t *testing.T, email string) *db_models.Account {
	t.Helper()
	hash, err := utils.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	account := &db_models.Account{Email: email, PasswordHash: hash, Role: "user"}
	if err := fx.accounts.Insert(context.Background(), account); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return account
}

func TestCreateAccountRedeemsReferral(t *testing.T) {
	fx := newAccountFixture()
	referrer := fx.seedAccount(t, "referrer@example.com")
	code := &db_models.ReferralCode{AccountID: referrer.ID, Code: "ABCD1234"}
	_ = fx.referrals.InsertCode(context.Background(), code)

	err := fx.svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName:  "Newbie",
		Email:        "new@example.com",
		Password:     "hunter22",
		ReferralCode: "abcd1234", // codes are case-insensitive
	})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	if len(fx.referrals.referrals) != 1 {
		t.Fatalf("expected one referral, got %d", len(fx.referrals.referrals))
	}
	r := fx.referrals.referrals[0]
	if r.AccountID != referrer.ID {
		t.Error("referral not attributed to the code owner")
	}
	if code.UseCount != 1 {
		t.Errorf("use count = %d, want 1", code.UseCount)
	}
}

func TestCreateAccountExhaustedReferralCodeIgnored(t *testing.T) {
	fx := newAccountFixture()
	referrer := fx.seedAccount(t, "referrer@example.com")
	code := &db_models.ReferralCode{AccountID: referrer.ID, Code: "FULL0000", MaxUses: 1, UseCount: 1}
	_ = fx.referrals.InsertCode(context.Background(), code)

	// Signup still succeeds; the spent code is just ignored.
	err := fx.svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName:  "Newbie",
		Email:        "new@example.com",
		Password:     "hunter22",
		ReferralCode: "FULL0000",
	})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if len(fx.referrals.referrals) != 0 {
		t.Error("exhausted code was redeemed")
	}
}

func TestLogin(t *testing.T) {
	fx := newAccountFixture()
	account := fx.seedAccount(t, "sam@example.com")
	fx.profiles.profiles[account.ID].PlanType = db_models.PlanTypePro
	fx.profiles.profiles[account.ID].PlanStatus = db_models.PlanStatusActive

	resp, err := fx.svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "sam@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("no token returned")
	}
	if !resp.IsPremium {
		t.Error("active pro plan not reported as premium")
	}

	claims, err := utils.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if claims.UserID != account.ID.String() {
		t.Error("token carries the wrong account id")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	fx := newAccountFixture()
	fx.seedAccount(t, "sam@example.com")

	if _, err := fx.svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "sam@example.com",
		Password: "wrong",
	}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	fx := newAccountFixture()
	if _, err := fx.svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter22",
	}); !errors.Is(err, utils.ErrAccountNotFound) {
		t.Errorf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestForgotPasswordUnknownEmailIssuesNothing(t *testing.T) {
	fx := newAccountFixture()

	// No account: no error (don't leak existence) and no token either.
	if err := fx.svc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if fx.resets.lastToken != "" {
		t.Error("token issued for unknown email")
	}
}

func TestForgotThenResetPassword(t *testing.T) {
	fx := newAccountFixture()
	account := fx.seedAccount(t, "sam@example.com")

	if err := fx.svc.ForgotPassword(context.Background(), "sam@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	token := fx.resets.lastToken
	if token == "" {
		t.Fatal("no reset token issued")
	}

	err := fx.svc.ResetPasswordWithToken(context.Background(), request_models.ForgotPasswordRequest{
		Email:       "sam@example.com",
		NewPassword: "newpass99",
		Token:       token,
	})
	if err != nil {
		t.Fatalf("ResetPasswordWithToken: %v", err)
	}
	if err := utils.ComparePasswords(account.PasswordHash, "newpass99"); err != nil {
		t.Error("password not updated")
	}

	// Tokens are single-use.
	err = fx.svc.ResetPasswordWithToken(context.Background(), request_models.ForgotPasswordRequest{
		Email:       "sam@example.com",
		NewPassword: "another00",
		Token:       token,
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("second use err = %v, want ErrInvalidCredentials", err)
	}
}

func TestUpdateProfilePartialFields(t *testing.T) {
	fx := newAccountFixture()
	account := fx.seedAccount(t, "sam@example.com")
	profile := fx.profiles.profiles[account.ID]
	profile.Name = "Sam"
	profile.Phone = "555-0100"

	name := "Sammy"
	err := fx.svc.UpdateProfile(context.Background(), account.ID, request_models.UpdateProfileRequest{
		Name: &name,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if profile.Name != "Sammy" {
		t.Errorf("name = %q, want Sammy", profile.Name)
	}
	if profile.Phone != "555-0100" {
		t.Error("unset field was clobbered")
	}
}
