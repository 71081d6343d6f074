package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"pocketpay/config"
	"pocketpay/internal/adapter/camera"
	"pocketpay/internal/adapter/clock"
	"pocketpay/internal/core/domain"
	"pocketpay/internal/core/ports"
	"pocketpay/internal/service"
	"pocketpay/internal/store"
	"pocketpay/pkg/format"
	"pocketpay/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	configPath string
	userName   string
)

func main() {
	root := &cobra.Command{
		Use:   "pocketpay",
		Short: "Mock mobile payment app core",
		Long:  "Runs a scripted session against the in-memory payment core: login, transfer with biometric confirmation, history filtering and an offline QR payment.",
		RunE:  run,
	}
	root.Flags().StringVar(&configPath, "config", "", "path to config file")
	root.Flags().StringVar(&userName, "user", "Asha", "display name to sign in with")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	openingBalance, err := decimal.NewFromString(cfg.Wallet.OpeningBalance)
	if err != nil {
		return fmt.Errorf("parse opening balance: %w", err)
	}

	sched := clock.NewSystem()
	st := store.NewMemory(domain.Wallet{
		Balance:  openingBalance,
		Currency: cfg.Wallet.Currency,
	})
	if cfg.Wallet.SeedHistory {
		st.SeedHistory(store.FixtureHistory(sched.Now()))
	}

	cam := camera.NewSimulated()

	navSvc := service.NewNavigationService(st, sched, cfg.Timers.Splash, log)
	transferSvc := service.NewTransferService(
		st, sched,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		cfg.Timers.BiometricVerify, cfg.Timers.BiometricSettle,
		log,
	)
	offlineSvc := service.NewOfflineService(
		st, cam, sched,
		rand.New(rand.NewSource(time.Now().UnixNano()+1)),
		cfg.Timers.Scan,
		log,
	)
	historySvc := service.NewHistoryService(st)
	navSvc.SetLeaveHooks(transferSvc.Close, offlineSvc.Leave)

	defer navSvc.Close()
	defer transferSvc.Close()
	defer offlineSvc.Leave()

	navSvc.Boot()

	if _, err := navSvc.LoginSubmit(userName); err != nil {
		return err
	}
	wallet := st.Wallet()
	log.Info().
		Str("user", st.Session().UserName).
		Str("balance", format.Amount(wallet.Balance, wallet.Currency)).
		Msg("home")

	// Transfer workflow
	if _, err := navSvc.GoTransfer(); err != nil {
		return err
	}
	transferSvc.SetDraft(domain.TransferDraft{
		Recipient: "Bima Putra",
		Amount:    "2,000",
		Note:      "lunch",
	})
	if _, err := transferSvc.ContinueToConfirm(); err != nil {
		return err
	}
	if err := transferSvc.Approve(); err != nil {
		return err
	}
	waitForScreen(st, domain.ScreenSuccess, cfg.Timers.BiometricVerify+cfg.Timers.BiometricSettle+time.Second)

	if last := st.LastTransfer(); last != nil {
		wallet = st.Wallet()
		log.Info().
			Str("reference", last.Reference).
			Str("sent", format.Amount(last.Amount, wallet.Currency)).
			Str("to", last.Recipient).
			Str("when", format.Timestamp(last.Timestamp)).
			Str("balance", format.Amount(wallet.Balance, wallet.Currency)).
			Msg("transfer done")
	}

	// History view
	if _, err := navSvc.GoHistory(); err != nil {
		return err
	}
	sent := domain.DirectionSent
	for _, entry := range historySvc.Filter(ports.HistoryFilterParams{Direction: &sent}) {
		log.Info().
			Str("badge", format.ShortName(entry.Recipient)).
			Str("recipient", entry.Recipient).
			Str("amount", format.Amount(entry.Amount, wallet.Currency)).
			Str("when", format.Timestamp(entry.Timestamp)).
			Msg("history: sent")
	}

	// Offline QR payment
	if _, err := navSvc.GoTransfer(); err != nil {
		return err
	}
	if _, err := navSvc.GoOffline(); err != nil {
		return err
	}
	if err := offlineSvc.StartScan(); err != nil {
		return err
	}
	waitForScreen(st, domain.ScreenOfflineSuccess, cfg.Timers.Scan+time.Second)

	for _, scan := range st.UnsyncedScans() {
		log.Info().
			Str("result_code", scan.ResultCode).
			Str("when", format.Timestamp(scan.RecordedAt)).
			Msg("offline payment awaiting sync")
	}

	navSvc.Logout()
	return nil
}

// waitForScreen polls until the store shows the wanted screen or the
// timeout passes. Good enough for a scripted demo.
func waitForScreen(st *store.Memory, want domain.Screen, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if st.Screen() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}
