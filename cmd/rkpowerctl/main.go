// Command rkpowerctl is a demonstration CLI over the rkpower facade. It is
// not part of the driver's required surface; it exists to exercise
// power-on/power-off, dependency-aware variants, active-domain listing, and
// QoS shadow inspection from the command line, either against a real PMU
// base address or an in-memory mock register file (--mock).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rkpowerctl",
		Short: "drive RK3568/RK3588 power domains from the command line",
		Long: "rkpowerctl wraps the rkpower facade so power domains can be " +
			"exercised without writing Go: power-on, power-off, dependency-" +
			"aware variants, active-domain listing, and QoS shadow status.",
	}

	root.PersistentFlags().String("variant", "rk3588", "chip variant (rk3568, rk3588)")
	root.PersistentFlags().Uint64("base", 0, "PMU base address, already mapped into this process (ignored with --mock)")
	root.PersistentFlags().Bool("mock", false, "run against an in-memory mock register file instead of real hardware")
	root.PersistentFlags().Bool("verbose", false, "log at debug level")

	viper.BindPFlag("variant", root.PersistentFlags().Lookup("variant"))
	viper.BindPFlag("base", root.PersistentFlags().Lookup("base"))
	viper.BindPFlag("mock", root.PersistentFlags().Lookup("mock"))
	viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	viper.SetEnvPrefix("RKPOWERCTL")
	viper.AutomaticEnv()

	root.AddCommand(
		newOnCmd(),
		newOffCmd(),
		newOnDepsCmd(),
		newOffDepsCmd(),
		newActiveCmd(),
		newQoSStatusCmd(),
	)
	return root
}
