package cmd

import (
	"github.com/AbsaOSS/libvcx/cmds/relay"
	"github.com/spf13/cobra"
)

var relayEnvs = map[string]string{
	"address":  "ADDRESS",
	"base-url": "BASE_URL",
}

var relayDoc = `Runs the relay agency. It provisions the cloud agents of the connections
and keeps their messages in memory until the owners read them.

Example
	vcx relay --address :8080 --base-url http://localhost:8080
`

var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Runs the relay agency",
	Long:  relayDoc,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return BindEnvs(relayEnvs, cmd.Name())
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return execute(cmd, relayCmdData)
	},
}

var relayCmdData = relay.Cmd{}

func init() {
	flags := relayCmd.Flags()
	flags.StringVar(&relayCmdData.Address, "address", ":8080", flagInfo("listen address", relayCmd.Name(), relayEnvs["address"]))
	flags.StringVar(&relayCmdData.BaseURL, "base-url", "http://localhost:8080", flagInfo("URL where the relay is reachable", relayCmd.Name(), relayEnvs["base-url"]))
	rootCmd.AddCommand(relayCmd)
}
