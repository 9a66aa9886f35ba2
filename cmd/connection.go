package cmd

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/AbsaOSS/libvcx/agent/utils"
	"github.com/AbsaOSS/libvcx/cmds/connection"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

var connectionEnvs = map[string]string{
	"name": "NAME",
}

var connectionDoc = `Commands of the Aries connection protocol.

The connection is stored with its name to the storage file. Both sides run
'update' (or 'watch') until the connection is completed.

Example
	vcx relay --address :8080 --base-url http://localhost:8080 &
	vcx connection create --name bob --db-name alice.bolt > invitation.json
	vcx connection accept invitation.json --name alice --db-name bob.bolt
	vcx connection watch --name bob --db-name alice.bolt
	vcx connection watch --name alice --db-name bob.bolt
`

var connectionCmd = &cobra.Command{
	Use:   "connection",
	Short: "Parent command for the connection commands",
	Long:  connectionDoc,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err)

		try.To(BindEnvs(connectionEnvs, "connection"))
		rootCmd.PersistentPreRun(cmd, args)
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		SubCmdNeeded(cmd)
	},
}

var (
	pollInterval = utils.Settings.PollInterval()
	watchTimeout = 2 * time.Minute

	connName    string
	pingComment string
	sendMessage string
	invitation  string
	showW3C     bool
)

func baseConnCmd() connection.Cmd {
	return connection.Cmd{Cmd: agentFlags.cmd(), Name: connName}
}

var connCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Creates the connection and prints its invitation",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return execute(cmd, connection.CreateCmd{Cmd: baseConnCmd()})
	},
}

var connAcceptCmd = &cobra.Command{
	Use:   "accept [invitation-file|-]",
	Short: "Accepts the invitation and sends the connection request",
	Long: `Accepts the invitation and sends the connection request. The invitation
is read from the file, from the standard input with '-' or from --invitation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err)

		inv := invitation
		if len(args) > 0 {
			inv = try.To1(readInvitation(args[0], cmd.InOrStdin()))
		}
		return execute(cmd, connection.AcceptCmd{Cmd: baseConnCmd(), Invitation: inv})
	},
}

var connUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Handles one pending message of the connection",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return execute(cmd, connection.UpdateCmd{Cmd: baseConnCmd()})
	},
}

var connWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Polls the connection until it's completed",
	RunE: func(cmd *cobra.Command, _ []string) error {
		utils.Settings.SetPollInterval(pollInterval)
		return execute(cmd, connection.WatchCmd{
			Cmd:      baseConnCmd(),
			Interval: utils.Settings.PollInterval(),
			Timeout:  watchTimeout,
		})
	},
}

var connShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the connection info",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return execute(cmd, connection.ShowCmd{Cmd: baseConnCmd(), W3C: showW3C})
	},
}

var connPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Sends trust ping over the connection",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return execute(cmd, connection.PingCmd{Cmd: baseConnCmd(), Comment: pingComment})
	},
}

var connSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Sends a basic message over the connection",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return execute(cmd, connection.SendCmd{Cmd: baseConnCmd(), Message: sendMessage})
	},
}

var connMessagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Prints the pending messages of the connection",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return execute(cmd, connection.MessagesCmd{Cmd: baseConnCmd()})
	},
}

func readInvitation(name string, stdin io.Reader) (_ string, err error) {
	defer err2.Handle(&err, "read invitation")

	if name == "-" {
		return strings.TrimSpace(string(try.To1(io.ReadAll(stdin)))), nil
	}
	return strings.TrimSpace(string(try.To1(os.ReadFile(name)))), nil
}

func init() {
	flags := connectionCmd.PersistentFlags()
	flags.StringVar(&connName, "name", "", flagInfo("connection name", "connection", connectionEnvs["name"]))
	addAgentFlags(connectionCmd)

	connAcceptCmd.Flags().StringVar(&invitation, "invitation", "", "invitation JSON")
	connShowCmd.Flags().BoolVar(&showW3C, "w3c", false, "print their DID doc in W3C format")
	connPingCmd.Flags().StringVar(&pingComment, "comment", "", "ping comment")
	connSendCmd.Flags().StringVarP(&sendMessage, "msg", "m", "", "message content")
	connWatchCmd.Flags().DurationVar(&pollInterval, "interval", pollInterval, "poll interval")
	connWatchCmd.Flags().DurationVar(&watchTimeout, "timeout", watchTimeout, "timeout of the watch")

	connectionCmd.AddCommand(connCreateCmd, connAcceptCmd, connUpdateCmd,
		connWatchCmd, connShowCmd, connPingCmd, connSendCmd, connMessagesCmd)
	rootCmd.AddCommand(connectionCmd)
}
