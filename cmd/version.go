package cmd

import (
	"github.com/AbsaOSS/libvcx/agent/utils"
	"github.com/AbsaOSS/libvcx/cmds"
	"github.com/AbsaOSS/libvcx/std/discovery"
	"github.com/findy-network/findy-common-go/dto"
	"github.com/spf13/cobra"
)

var versionDoc = `Prints the version of vcx. With --protocols the Aries protocols and
the roles vcx plays in them are printed as JSON, the same list a peer gets
with discover features.`

var showProtocols bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version and the supported protocols",
	Long:  versionDoc,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		if showProtocols {
			cmds.Fprintln(w, dto.ToJSON(discovery.Protocols))
			return
		}
		cmds.Fprintln(w, utils.Settings.VersionInfo())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&showProtocols, "protocols", false, "print the supported protocols")
	rootCmd.AddCommand(versionCmd)
}
