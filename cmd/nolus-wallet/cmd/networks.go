package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	registry "github.com/tessellated-io/nolus-wallet/cosmos/chain-registry"
	"github.com/tessellated-io/nolus-wallet/networks"
)

var registryURL string

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "Inspect known networks",
}

var networksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built in networks",
	RunE: func(cmd *cobra.Command, args []string) error {
		known := networks.NewRegistry()

		writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "NAME\tRPC\tAPI\tCOUNTERPARTIES")
		for _, name := range known.Names() {
			descriptor, err := known.Get(name)
			if err != nil {
				return err
			}

			counterparties := ""
			for _, counterparty := range descriptor.Counterparties {
				counterparties += fmt.Sprintf("%s(%s) ", counterparty.Key, counterparty.SourceChannel)
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", descriptor.Name, descriptor.RpcURL, descriptor.ApiURL, counterparties)
		}
		return writer.Flush()
	},
}

var networksDiscoverCmd = &cobra.Command{
	Use:   "discover [chain-name]",
	Short: "Build a network descriptor from the chain registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := registry.NewRetryableChainRegistryClient(3, time.Second, registry.NewChainRegistryClient(logger, registryURL), logger)

		descriptor, err := networks.Discover(cmd.Context(), client, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "name:           %s\n", descriptor.Name)
		fmt.Fprintf(out, "chain_id:       %s\n", descriptor.ChainID)
		fmt.Fprintf(out, "rpc_url:        %s\n", descriptor.RpcURL)
		fmt.Fprintf(out, "api_url:        %s\n", descriptor.ApiURL)
		fmt.Fprintf(out, "grpc_url:       %s\n", descriptor.GrpcURL)
		fmt.Fprintf(out, "address_prefix: %s\n", descriptor.AddressPrefix)
		fmt.Fprintf(out, "fee_denom:      %s\n", descriptor.FeeDenom)
		fmt.Fprintf(out, "gas_price:      %s\n", descriptor.GasPrice)
		return nil
	},
}

func init() {
	networksDiscoverCmd.Flags().StringVar(&registryURL, "registry-url", registry.DefaultChainRegistryBaseUrl, "Base url of the chain registry")

	networksCmd.AddCommand(networksListCmd)
	networksCmd.AddCommand(networksDiscoverCmd)
	rootCmd.AddCommand(networksCmd)
}
