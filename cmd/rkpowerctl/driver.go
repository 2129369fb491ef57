package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/drivercraft/rk3588-power/chip"
	"github.com/drivercraft/rk3588-power/mmio"
	"github.com/drivercraft/rk3588-power/rkpower"
)

func parseVariant(name string) (chip.Variant, error) {
	switch name {
	case "rk3568", "RK3568":
		return chip.RK3568, nil
	case "rk3588", "RK3588":
		return chip.RK3588, nil
	default:
		return 0, fmt.Errorf("unknown variant %q (want rk3568 or rk3588)", name)
	}
}

// buildDriver constructs a rkpower.Driver from the root command's bound
// flags: --variant selects the chip, --mock swaps the real PMUBackend for
// an in-memory register file so the demonstration commands run without
// hardware, and --verbose raises the facade's log level.
func buildDriver() (*rkpower.Driver, error) {
	variant, err := parseVariant(viper.GetString("variant"))
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	if viper.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}

	var backend mmio.Backend
	if viper.GetBool("mock") {
		backend = mmio.NewMockBackend()
	} else {
		base := uintptr(viper.GetUint64("base"))
		if base == 0 {
			return nil, fmt.Errorf("--base is required unless --mock is set")
		}
		backend = mmio.NewPMUBackend(base)
	}

	return rkpower.New(backend, variant, rkpower.Options{Logger: log})
}

func parseDomainID(s string) (chip.ID, error) {
	var n uint64
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid domain id %q: %w", s, err)
	}
	return chip.ID(n), nil
}
