package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "on <domain-id>",
		Short: "power on a domain, ignoring dependency state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseDomainID(args[0])
			if err != nil {
				return err
			}
			drv, err := buildDriver()
			if err != nil {
				return err
			}
			return drv.PowerOn(id)
		},
	}
}

func newOffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "off <domain-id>",
		Short: "power off a domain, ignoring dependency state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseDomainID(args[0])
			if err != nil {
				return err
			}
			drv, err := buildDriver()
			if err != nil {
				return err
			}
			return drv.PowerOff(id)
		},
	}
}

func newOnDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "on-deps <domain-id>",
		Short: "power on a domain, refusing if its parent is not active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseDomainID(args[0])
			if err != nil {
				return err
			}
			drv, err := buildDriver()
			if err != nil {
				return err
			}
			return drv.PowerOnWithDeps(id)
		},
	}
}

func newOffDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "off-deps <domain-id>",
		Short: "power off a domain, refusing if any child is active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseDomainID(args[0])
			if err != nil {
				return err
			}
			drv, err := buildDriver()
			if err != nil {
				return err
			}
			return drv.PowerOffWithDeps(id)
		},
	}
}

func newActiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "list every domain the dependency manager considers powered on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drv, err := buildDriver()
			if err != nil {
				return err
			}
			for _, id := range drv.ActiveDomains() {
				desc, err := drv.Lookup(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", id, desc.Name)
			}
			return nil
		},
	}
}

func newQoSStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qos-status <domain-id>",
		Short: "report whether a domain has an outstanding QoS shadow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseDomainID(args[0])
			if err != nil {
				return err
			}
			drv, err := buildDriver()
			if err != nil {
				return err
			}
			if drv.HasShadow(id) {
				fmt.Fprintf(cmd.OutOrStdout(), "domain %d: shadow present\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "domain %d: no shadow\n", id)
			}
			return nil
		},
	}
}
