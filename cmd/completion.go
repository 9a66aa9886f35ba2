package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionDoc = `Generates the completion script of vcx for the shell. To load the
completions in the current shell:

	bash:  source <(vcx completion bash)
	zsh:   source <(vcx completion zsh)
	fish:  vcx completion fish | source

Add the same line to the shell's start up file to have them in every session.`

var completionCmd = &cobra.Command{
	Use:       "completion bash|zsh|fish|powershell",
	Short:     "Generates shell completion scripts",
	Long:      completionDoc,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(w, true)
		case "zsh":
			return rootCmd.GenZshCompletion(w)
		case "fish":
			return rootCmd.GenFishCompletion(w, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(w)
		}
		return fmt.Errorf("unknown shell %s", args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
