package service

import (
	"testing"
	"time"

	"pocketpay/internal/adapter/clock"
	"pocketpay/internal/core/domain"
	"pocketpay/internal/store"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type navTestDeps struct {
	svc *NavigationServiceImpl
	st  *store.Memory
	clk *clock.Manual
}

func setupNavigationService(t *testing.T) *navTestDeps {
	t.Helper()
	st := store.NewMemory(domain.Wallet{
		Balance:  decimal.NewFromInt(125000),
		Currency: "IDR",
	})
	clk := clock.NewManual(time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC))
	svc := NewNavigationService(st, clk, 5*time.Second, zerolog.Nop())
	return &navTestDeps{svc: svc, st: st, clk: clk}
}

func (d *navTestDeps) login(t *testing.T) {
	t.Helper()
	_, err := d.svc.LoginSubmit("Asha")
	require.NoError(t, err)
}

func TestBoot_ShowsLoginAndSchedulesSplash(t *testing.T) {
	d := setupNavigationService(t)

	d.svc.Boot()

	assert.Equal(t, domain.ScreenLogin, d.st.Screen())
	assert.Equal(t, 1, d.clk.PendingCount(), "splash timer scheduled")

	d.clk.Advance(5 * time.Second)
	assert.Zero(t, d.clk.PendingCount())
}

func TestClose_CancelsSplash(t *testing.T) {
	d := setupNavigationService(t)

	d.svc.Boot()
	d.svc.Close()

	assert.Zero(t, d.clk.PendingCount(), "splash cancelled on early teardown")
}

func TestLoginSubmit_EmptyNameStays(t *testing.T) {
	d := setupNavigationService(t)
	d.svc.Boot()

	for _, name := range []string{"", "   ", "\t"} {
		next, err := d.svc.LoginSubmit(name)
		requireCode(t, err, "VAL_004")
		assert.Equal(t, domain.ScreenLogin, next)
		assert.False(t, d.st.Session().LoggedIn())
		require.NotNil(t, d.st.LastError())
	}
}

func TestLoginSubmit_OpensSessionAndMovesHome(t *testing.T) {
	d := setupNavigationService(t)
	d.svc.Boot()

	next, err := d.svc.LoginSubmit("  Asha  ")
	require.NoError(t, err)

	assert.Equal(t, domain.ScreenHome, next)
	assert.Equal(t, domain.ScreenHome, d.st.Screen())
	assert.True(t, d.st.Session().LoggedIn())
	assert.Equal(t, "Asha", d.st.Session().UserName, "name is trimmed")
	assert.Nil(t, d.st.LastError())
}

func TestNavigation_RejectedWhileLoggedOut(t *testing.T) {
	d := setupNavigationService(t)
	d.svc.Boot()

	tests := []struct {
		name string
		call func() (domain.Screen, error)
	}{
		{"transfer", d.svc.GoTransfer},
		{"history", d.svc.GoHistory},
		{"home", d.svc.GoHome},
		{"offline", d.svc.GoOffline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := tt.call()
			requireCode(t, err, "NAV_001")
			assert.Equal(t, domain.ScreenLogin, next, "rejected back to login")
		})
	}
}

func TestNavigation_ShortcutsWhenLoggedIn(t *testing.T) {
	d := setupNavigationService(t)
	d.svc.Boot()
	d.login(t)

	next, err := d.svc.GoTransfer()
	require.NoError(t, err)
	assert.Equal(t, domain.ScreenTransfer, next)

	next, err = d.svc.GoHistory()
	require.NoError(t, err)
	assert.Equal(t, domain.ScreenHistory, next)

	next, err = d.svc.GoHome()
	require.NoError(t, err)
	assert.Equal(t, domain.ScreenHome, next)
}

func TestGoOffline_OnlyFromTransfer(t *testing.T) {
	d := setupNavigationService(t)
	d.svc.Boot()
	d.login(t)

	_, err := d.svc.GoOffline()
	requireCode(t, err, "NAV_002")
	assert.Equal(t, domain.ScreenHome, d.st.Screen())

	_, err = d.svc.GoTransfer()
	require.NoError(t, err)
	next, err := d.svc.GoOffline()
	require.NoError(t, err)
	assert.Equal(t, domain.ScreenOffline, next)
}

func TestBack_FollowsInverseEdges(t *testing.T) {
	d := setupNavigationService(t)
	d.svc.Boot()
	d.login(t)

	_, err := d.svc.GoTransfer()
	require.NoError(t, err)
	assert.Equal(t, domain.ScreenHome, d.svc.Back())

	_, err = d.svc.GoHistory()
	require.NoError(t, err)
	assert.Equal(t, domain.ScreenHome, d.svc.Back())

	assert.Equal(t, domain.ScreenHome, d.svc.Back(), "home has no back edge")
}

func TestBack_ForcesLoginWhenSessionGone(t *testing.T) {
	d := setupNavigationService(t)
	d.svc.Boot()
	// Simulate a stale screen left over after the session vanished.
	d.st.SetScreen(domain.ScreenTransfer)

	next := d.svc.Back()
	assert.Equal(t, domain.ScreenLogin, next, "logged-out invariant wins over the back edge")
}

func TestLogout_ClearsSessionFromAnyScreen(t *testing.T) {
	d := setupNavigationService(t)
	d.svc.Boot()
	d.login(t)
	_, err := d.svc.GoHistory()
	require.NoError(t, err)

	next := d.svc.Logout()

	assert.Equal(t, domain.ScreenLogin, next)
	assert.False(t, d.st.Session().LoggedIn())
	assert.Nil(t, d.st.LastError())
}

func TestLeaveHooks_FireOnConfirmExit(t *testing.T) {
	d := setupNavigationService(t)
	confirmTeardowns := 0
	d.svc.SetLeaveHooks(func() { confirmTeardowns++ }, nil)

	d.svc.Boot()
	d.login(t)
	_, err := d.svc.GoTransfer()
	require.NoError(t, err)
	d.st.SetScreen(domain.ScreenConfirm)
	d.st.SetPendingTransfer(domain.TransferDetail{Recipient: "Bima"})
	d.st.SetBiometricStatus(domain.BiometricVerifying)

	next := d.svc.Back()

	assert.Equal(t, domain.ScreenTransfer, next)
	assert.Equal(t, 1, confirmTeardowns)
	assert.Nil(t, d.st.PendingTransfer(), "leaving confirm discards the staged transfer")
	assert.Equal(t, domain.BiometricIdle, d.st.BiometricStatus())
}

func TestLeaveHooks_FireOnOfflineExit(t *testing.T) {
	d := setupNavigationService(t)
	offlineTeardowns := 0
	d.svc.SetLeaveHooks(nil, func() { offlineTeardowns++ })

	d.svc.Boot()
	d.login(t)
	_, err := d.svc.GoTransfer()
	require.NoError(t, err)
	_, err = d.svc.GoOffline()
	require.NoError(t, err)

	d.svc.Back()
	assert.Equal(t, 1, offlineTeardowns)

	// Logout from offline also tears the camera down.
	_, err = d.svc.GoTransfer()
	require.NoError(t, err)
	_, err = d.svc.GoOffline()
	require.NoError(t, err)
	d.svc.Logout()
	assert.Equal(t, 2, offlineTeardowns)
}
