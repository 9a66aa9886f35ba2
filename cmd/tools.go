package cmd

import (
	"github.com/AbsaOSS/libvcx/cmds/tools"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Parent command for the tool commands",
	Run: func(cmd *cobra.Command, _ []string) {
		SubCmdNeeded(cmd)
	},
}

var validateCmdData = tools.ValidateCmd{}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates the DID, verkey and URL given",
	Long: `Validates the DID, verkey and URL given and prints them. At least one
of them is needed.

Example
	vcx tools validate --did 8XFh8yBzrpJQmNyZzgoTqB --url http://localhost:8080`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return execute(cmd, validateCmdData)
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copies the storage file to its backup file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return execute(cmd, tools.BackupCmd{Cmd: agentFlags.cmd()})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints the stored connections",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return execute(cmd, tools.ListCmd{Cmd: agentFlags.cmd()})
	},
}

func init() {
	flags := validateCmd.Flags()
	flags.StringVar(&validateCmdData.DID, "did", "", "DID to validate")
	flags.StringVar(&validateCmdData.Verkey, "verkey", "", "verkey to validate")
	flags.StringVar(&validateCmdData.URL, "url", "", "URL to validate")

	addAgentFlags(backupCmd)
	addAgentFlags(listCmd)

	toolsCmd.AddCommand(validateCmd, backupCmd, listCmd)
	rootCmd.AddCommand(toolsCmd)
}
