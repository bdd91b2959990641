package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"gigwise/internal/models/db_models"
	"gigwise/pkg/utils"
)

// Stateful in-memory fakes. The account fake mirrors the real
// repository's behavior of creating a blank profile alongside every
// account, which the restore path depends on.

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*db_models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*db_models.Profile)}
}

func (f *fakeProfileRepo) FindByAccountID(_ context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	return f.profiles[accountID], nil
}

func (f *fakeProfileRepo) Save(_ context.Context, profile *db_models.Profile) error {
	f.profiles[profile.AccountID] = profile
	return nil
}

type fakeAccountRepo struct {
	accounts  map[uuid.UUID]*db_models.Account
	profiles  *fakeProfileRepo
	insertErr error
	deleteErr error
}

func newFakeAccountRepo(profiles *fakeProfileRepo) *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*db_models.Account), profiles: profiles}
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.ID] = account
	f.profiles.profiles[account.ID] = &db_models.Profile{AccountID: account.ID}
	return nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id string) (*db_models.Account, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return f.accounts[parsed], nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdatePassword(_ context.Context, accountID uuid.UUID, passwordHash string) error {
	if a, ok := f.accounts[accountID]; ok {
		a.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeAccountRepo) HardDelete(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.accounts, id)
	delete(f.profiles.profiles, id)
	return nil
}

type fakeArchiveRepo struct {
	archives  map[uuid.UUID]*db_models.DeletedUser
	insertErr error
}

func newFakeArchiveRepo() *fakeArchiveRepo {
	return &fakeArchiveRepo{archives: make(map[uuid.UUID]*db_models.DeletedUser)}
}

func (f *fakeArchiveRepo) Insert(_ context.Context, archive *db_models.DeletedUser) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if archive.ID == uuid.Nil {
		archive.ID = uuid.New()
	}
	f.archives[archive.ID] = archive
	return nil
}

func (f *fakeArchiveRepo) FindByID(_ context.Context, id string) (*db_models.DeletedUser, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return f.archives[parsed], nil
}

func (f *fakeArchiveRepo) List(_ context.Context, page, pageSize int) ([]db_models.DeletedUser, error) {
	out := make([]db_models.DeletedUser, 0, len(f.archives))
	for _, a := range f.archives {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeArchiveRepo) HardDelete(_ context.Context, id uuid.UUID) error {
	delete(f.archives, id)
	return nil
}

func (f *fakeArchiveRepo) MarkRestored(_ context.Context, id uuid.UUID, restoredBy uuid.UUID, restoredAt int64) (bool, error) {
	a, ok := f.archives[id]
	if !ok || a.Status != db_models.ArchivePendingDeletion {
		return false, nil
	}
	a.Status = db_models.ArchiveRestored
	a.RestoredAt = &restoredAt
	a.RestoredBy = &restoredBy
	return true, nil
}

func (f *fakeArchiveRepo) MarkPurged(_ context.Context, id uuid.UUID, purgedAt int64) (bool, error) {
	a, ok := f.archives[id]
	if !ok || a.Status != db_models.ArchivePendingDeletion {
		return false, nil
	}
	a.Status = db_models.ArchivePermanentlyDeleted
	a.PermanentlyDeletedAt = &purgedAt
	return true, nil
}

type fakeSnapshotRepo struct {
	data        map[string][]json.RawMessage
	collectErr  error
	replayErr   error
	replayed    map[string][]json.RawMessage
	replayOwner uuid.UUID
}

func (f *fakeSnapshotRepo) CollectAll(_ context.Context, accountID uuid.UUID) (map[string][]json.RawMessage, error) {
	if f.collectErr != nil {
		return nil, f.collectErr
	}
	return f.data, nil
}

func (f *fakeSnapshotRepo) ReplayAll(_ context.Context, tables map[string][]json.RawMessage, newAccountID uuid.UUID) (int, error) {
	if f.replayErr != nil {
		return 1, f.replayErr
	}
	f.replayed = tables
	f.replayOwner = newAccountID
	count := 0
	for _, rows := range tables {
		count += len(rows)
	}
	return count, nil
}

type lifecycleFixture struct {
	accounts *fakeAccountRepo
	profiles *fakeProfileRepo
	archives *fakeArchiveRepo
	snaps    *fakeSnapshotRepo
	svc      LifecycleServiceInterface
}

func newLifecycleFixture() *lifecycleFixture {
	profiles := newFakeProfileRepo()
	accounts := newFakeAccountRepo(profiles)
	archives := newFakeArchiveRepo()
	snaps := &fakeSnapshotRepo{data: map[string][]json.RawMessage{}}
	return &lifecycleFixture{
		accounts: accounts,
		profiles: profiles,
		archives: archives,
		snaps:    snaps,
		svc:      NewLifecycleService(accounts, profiles, archives, snaps),
	}
}

func (fx *lifecycleFixture) seedAccount(t *testing.T, email string) *db_models.Account {
	t.Helper()
	account := &db_models.Account{Email: email, PasswordHash: "x", Role: "user"}
	if err := fx.accounts.Insert(context.Background(), account); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return account
}

func TestDeleteUserCreatesPendingArchive(t *testing.T) {
	fx := newLifecycleFixture()
	account := fx.seedAccount(t, "gigger@example.com")
	fx.profiles.profiles[account.ID].Name = "Sam"
	fx.snaps.data = map[string][]json.RawMessage{
		"shows": {json.RawMessage(`{"venue_name":"Blue Room"}`)},
	}
	admin := uuid.New()

	resp, err := fx.svc.DeleteUser(context.Background(), admin, account.ID.String())
	if err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	if len(fx.archives.archives) != 1 {
		t.Fatalf("expected exactly one archive, got %d", len(fx.archives.archives))
	}
	var archive *db_models.DeletedUser
	for _, a := range fx.archives.archives {
		archive = a
	}
	if archive.Status != db_models.ArchivePendingDeletion {
		t.Errorf("status = %s, want pending_deletion", archive.Status)
	}
	if archive.ScheduledPurgeAt != archive.UserDeletedAt+db_models.RetentionDays*24*3600 {
		t.Errorf("scheduled purge not %d days out", db_models.RetentionDays)
	}
	if archive.DeletedBy != admin {
		t.Errorf("deleted_by = %s, want %s", archive.DeletedBy, admin)
	}
	if archive.OriginalUserID != account.ID {
		t.Errorf("original_user_id = %s, want %s", archive.OriginalUserID, account.ID)
	}

	snapshot := archive.Snapshot.Data()
	if snapshot.Profile.Name != "Sam" {
		t.Errorf("profile snapshot name = %q, want Sam", snapshot.Profile.Name)
	}
	if len(snapshot.Tables["shows"]) != 1 {
		t.Errorf("snapshot missing the show row")
	}

	if _, ok := fx.accounts.accounts[account.ID]; ok {
		t.Error("account still present after delete")
	}
	if resp.DeletedUserID != archive.ID.String() {
		t.Errorf("response archive id = %s, want %s", resp.DeletedUserID, archive.ID)
	}
}

func TestDeleteUserInvalidID(t *testing.T) {
	fx := newLifecycleFixture()
	if _, err := fx.svc.DeleteUser(context.Background(), uuid.New(), "not-a-uuid"); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestDeleteUserUnknownUser(t *testing.T) {
	fx := newLifecycleFixture()
	if _, err := fx.svc.DeleteUser(context.Background(), uuid.New(), uuid.NewString()); !errors.Is(err, utils.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestDeleteUserArchiveWriteFailureLeavesAccount(t *testing.T) {
	fx := newLifecycleFixture()
	account := fx.seedAccount(t, "gigger@example.com")
	fx.archives.insertErr = errors.New("disk full")

	if _, err := fx.svc.DeleteUser(context.Background(), uuid.New(), account.ID.String()); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("err = %v, want ErrDatabaseError", err)
	}
	if _, ok := fx.accounts.accounts[account.ID]; !ok {
		t.Error("account removed even though the archive write failed")
	}
	if len(fx.archives.archives) != 0 {
		t.Error("archive row present after failed write")
	}
}

func TestDeleteUserAccountDeletionRollsBackArchive(t *testing.T) {
	fx := newLifecycleFixture()
	account := fx.seedAccount(t, "gigger@example.com")
	fx.accounts.deleteErr = errors.New("fk violation")

	if _, err := fx.svc.DeleteUser(context.Background(), uuid.New(), account.ID.String()); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("err = %v, want ErrDatabaseError", err)
	}
	if len(fx.archives.archives) != 0 {
		t.Error("compensating archive delete did not run")
	}
}

func seedArchive(fx *lifecycleFixture, email string, status db_models.ArchiveStatus) *db_models.DeletedUser {
	archive := &db_models.DeletedUser{
		OriginalUserID:   uuid.New(),
		Email:            email,
		UserDeletedAt:    1700000000,
		ScheduledPurgeAt: 1700000000 + db_models.RetentionDays*24*3600,
		DeletedBy:        uuid.New(),
		Status:           status,
		Snapshot: datatypes.NewJSONType(db_models.UserSnapshot{
			Profile: db_models.ProfileSnapshot{Name: "Sam", Timezone: "America/Sao_Paulo"},
			Tables: map[string][]json.RawMessage{
				"shows":     {json.RawMessage(`{"venue_name":"Blue Room"}`)},
				"musicians": {json.RawMessage(`{"name":"Alex"}`)},
			},
		}),
	}
	archive.ID = uuid.New()
	fx.archives.archives[archive.ID] = archive
	return archive
}

func TestRestoreUserRecreatesAccount(t *testing.T) {
	fx := newLifecycleFixture()
	archive := seedArchive(fx, "gigger@example.com", db_models.ArchivePendingDeletion)
	admin := uuid.New()

	resp, err := fx.svc.RestoreUser(context.Background(), admin, archive.ID.String())
	if err != nil {
		t.Fatalf("RestoreUser: %v", err)
	}

	account, _ := fx.accounts.FindByEmail(context.Background(), "gigger@example.com")
	if account == nil {
		t.Fatal("no account created")
	}
	if account.ID == archive.OriginalUserID {
		t.Error("restored account reused the original id")
	}
	if !account.EmailConfirmed {
		t.Error("restored account not pre-confirmed")
	}
	if resp.TempPassword == "" {
		t.Fatal("no temporary password returned")
	}
	if err := utils.ComparePasswords(account.PasswordHash, resp.TempPassword); err != nil {
		t.Error("stored hash does not match the returned temp password")
	}

	profile := fx.profiles.profiles[account.ID]
	if profile == nil || profile.Name != "Sam" {
		t.Error("profile snapshot not applied to the new profile")
	}

	if fx.snaps.replayOwner != account.ID {
		t.Errorf("replay owner = %s, want new account id %s", fx.snaps.replayOwner, account.ID)
	}
	if len(fx.snaps.replayed) != 2 {
		t.Errorf("replayed %d tables, want 2", len(fx.snaps.replayed))
	}

	if archive.Status != db_models.ArchiveRestored {
		t.Errorf("archive status = %s, want restored", archive.Status)
	}
	if archive.RestoredAt == nil || archive.RestoredBy == nil || *archive.RestoredBy != admin {
		t.Error("restored_at/restored_by not recorded")
	}
}

func TestRestoreUserNonPendingFails(t *testing.T) {
	fx := newLifecycleFixture()
	archive := seedArchive(fx, "gigger@example.com", db_models.ArchiveRestored)

	if _, err := fx.svc.RestoreUser(context.Background(), uuid.New(), archive.ID.String()); !errors.Is(err, utils.ErrArchiveNotPending) {
		t.Fatalf("err = %v, want ErrArchiveNotPending", err)
	}
	if len(fx.accounts.accounts) != 0 {
		t.Error("account created from a non-pending archive")
	}
}

func TestRestoreUserUnknownArchive(t *testing.T) {
	fx := newLifecycleFixture()
	if _, err := fx.svc.RestoreUser(context.Background(), uuid.New(), uuid.NewString()); !errors.Is(err, utils.ErrArchiveNotFound) {
		t.Errorf("err = %v, want ErrArchiveNotFound", err)
	}
}

func TestRestoreUserEmailTaken(t *testing.T) {
	fx := newLifecycleFixture()
	fx.seedAccount(t, "gigger@example.com")
	archive := seedArchive(fx, "gigger@example.com", db_models.ArchivePendingDeletion)

	if _, err := fx.svc.RestoreUser(context.Background(), uuid.New(), archive.ID.String()); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestRestoreUserReplayFailureKeepsArchivePending(t *testing.T) {
	fx := newLifecycleFixture()
	archive := seedArchive(fx, "gigger@example.com", db_models.ArchivePendingDeletion)
	fx.snaps.replayErr = errors.New("bad row")

	if _, err := fx.svc.RestoreUser(context.Background(), uuid.New(), archive.ID.String()); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("err = %v, want ErrDatabaseError", err)
	}
	// The archive stays restorable; the partially restored account is
	// left for the admin to clean up or retry onto.
	if archive.Status != db_models.ArchivePendingDeletion {
		t.Errorf("archive status = %s, want pending_deletion", archive.Status)
	}
}

func TestPurgeUserTombstonesArchive(t *testing.T) {
	fx := newLifecycleFixture()
	archive := seedArchive(fx, "gigger@example.com", db_models.ArchivePendingDeletion)

	resp, err := fx.svc.PurgeUser(context.Background(), archive.ID.String())
	if err != nil {
		t.Fatalf("PurgeUser: %v", err)
	}
	if resp.Status != string(db_models.ArchivePermanentlyDeleted) {
		t.Errorf("response status = %s", resp.Status)
	}
	if archive.Status != db_models.ArchivePermanentlyDeleted || archive.PermanentlyDeletedAt == nil {
		t.Error("archive not tombstoned")
	}
	if _, ok := fx.archives.archives[archive.ID]; !ok {
		t.Error("purge physically removed the archive row")
	}

	// A second purge must fail: the status transition already happened.
	if _, err := fx.svc.PurgeUser(context.Background(), archive.ID.String()); !errors.Is(err, utils.ErrArchiveNotPending) {
		t.Errorf("second purge err = %v, want ErrArchiveNotPending", err)
	}
}

func TestListDeletedUsersValidation(t *testing.T) {
	fx := newLifecycleFixture()
	if _, err := fx.svc.ListDeletedUsers(context.Background(), 0, 20); !errors.Is(err, utils.ErrInvalidPage) {
		t.Errorf("page 0 err = %v, want ErrInvalidPage", err)
	}
	if _, err := fx.svc.ListDeletedUsers(context.Background(), 1, 0); !errors.Is(err, utils.ErrInvalidPageSize) {
		t.Errorf("size 0 err = %v, want ErrInvalidPageSize", err)
	}
	if _, err := fx.svc.ListDeletedUsers(context.Background(), 1, 101); !errors.Is(err, utils.ErrInvalidPageSize) {
		t.Errorf("size 101 err = %v, want ErrInvalidPageSize", err)
	}
}

func TestDeleteThenRestoreRoundTrip(t *testing.T) {
	fx := newLifecycleFixture()
	account := fx.seedAccount(t, "roundtrip@example.com")
	fx.profiles.profiles[account.ID].Name = "Jo"
	fx.snaps.data = map[string][]json.RawMessage{
		"shows":     {json.RawMessage(`{"venue_name":"Blue Room","fee":1200}`)},
		"musicians": {json.RawMessage(`{"name":"Alex","instrument":"bass"}`)},
	}
	admin := uuid.New()

	deleted, err := fx.svc.DeleteUser(context.Background(), admin, account.ID.String())
	if err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	restored, err := fx.svc.RestoreUser(context.Background(), admin, deleted.DeletedUserID)
	if err != nil {
		t.Fatalf("RestoreUser: %v", err)
	}
	if restored.Email != "roundtrip@example.com" {
		t.Errorf("restored email = %s", restored.Email)
	}

	if len(fx.snaps.replayed["shows"]) != 1 || len(fx.snaps.replayed["musicians"]) != 1 {
		t.Error("collected rows did not make it back through replay")
	}

	newAccount, _ := fx.accounts.FindByEmail(context.Background(), "roundtrip@example.com")
	if newAccount == nil {
		t.Fatal("no account after round trip")
	}
	if fx.profiles.profiles[newAccount.ID].Name != "Jo" {
		t.Error("profile name lost in the round trip")
	}
}
