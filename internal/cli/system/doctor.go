package system

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tanabodee/attendly/internal/cli"
	"github.com/tanabodee/attendly/internal/keyring"
	"github.com/tanabodee/attendly/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeOK := false

	// Check 1: store reachable
	if _, err := ctx.Store.GetSettings(); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
		storeOK = true
	}

	// Check 2: schedule configuration parses
	if storeOK {
		if err := checkSchedule(ctx); err != nil {
			fmt.Printf("❌ Schedule config: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schedule config: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schedule config: SKIPPED (store not reachable)\n")
	}

	// Check 3: relay reachability (warning only; relays rate-limit HEAD
	// probes and an offline doctor run should not look broken)
	if err := checkRelays(); err != nil {
		fmt.Printf("⚠ Relay reachability: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Relay reachability: OK\n")
	}

	// Check 4: OS keyring availability (warning only; the keyring is
	// optional and only holds the relay API key)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Keyring unavailable; relays will run unkeyed\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkSchedule(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	for _, t := range settings.CheckTimes {
		if _, err := utils.ParseClockToMinutes(t); err != nil {
			return fmt.Errorf("invalid check time %q, expected HH:mm", t)
		}
	}
	for _, d := range settings.CheckDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("invalid check day %d, expected 0-6", d)
		}
	}
	if settings.Endpoint == "" {
		return fmt.Errorf("no endpoint configured")
	}
	return nil
}

func checkRelays() error {
	probeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, host := range []string{"https://corsproxy.io/", "https://api.allorigins.win/"} {
		req, err := http.NewRequestWithContext(probeCtx, http.MethodHead, host, nil)
		if err != nil {
			return err
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return fmt.Errorf("%s unreachable: %v", host, err)
		}
		res.Body.Close()
	}
	return nil
}
