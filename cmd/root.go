/*
Package cmd is the cobra command tree of the vcx CLI. Every flag can be given
in the configuration file or as VCX_ prefixed environment variable, e.g.
VCX_DB_NAME or VCX_CONNECTION_NAME for the connection commands.
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AbsaOSS/libvcx/agent/utils"
	"github.com/AbsaOSS/libvcx/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "VCX"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: utils.Version,
	Use:     "vcx",
	Short:   "Aries agent CLI for the connection protocol",
	Long: `
Aries agent CLI. It creates and accepts connections through a relay agency
and keeps them in a local storage file.
	`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cmds.ParseLoggingArgs(rootFlags.logging)
		handleViperFlags(cmd)
	},
}

// Execute root
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCmd returns a current root command which can be used for adding own
// commands in an own repo.
func RootCmd() *cobra.Command {
	return rootCmd
}

// DryRun returns a value of a dry run flag.
func DryRun() bool {
	return rootFlags.dryRun
}

// RootFlags are the common flags
type RootFlags struct {
	cfgFile string
	dryRun  bool
	logging string
}

// AgentFlags are the flags of the commands which open an agent.
type AgentFlags struct {
	DBName     string
	Key        string
	KeysetFile string
	AgencyURL  string
}

func (f AgentFlags) cmd() cmds.Cmd {
	return cmds.Cmd{
		DBName:     f.DBName,
		Key:        f.Key,
		KeysetFile: f.KeysetFile,
		AgencyURL:  f.AgencyURL,
	}
}

var rootFlags = RootFlags{}

var agentFlags = AgentFlags{}

var rootEnvs = map[string]string{
	"config":  "CONFIG",
	"logging": "LOGGING",
	"dry-run": "DRY_RUN",
}

var agentEnvs = map[string]string{
	"db-name":    "DB_NAME",
	"key":        "KEY",
	"keyset":     "KEYSET",
	"agency-url": "AGENCY_URL",
}

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.cfgFile, "config", "", flagInfo("configuration file", "", rootEnvs["config"]))
	flags.StringVar(&rootFlags.logging, "logging", "-logtostderr=true -v=0", flagInfo("logging startup arguments", "", rootEnvs["logging"]))
	flags.BoolVarP(&rootFlags.dryRun, "dry-run", "n", false, flagInfo("perform a trial run with no changes made", "", rootEnvs["dry-run"]))

	try.To(viper.BindPFlag("logging", flags.Lookup("logging")))
	try.To(viper.BindPFlag("dry-run", flags.Lookup("dry-run")))

	try.To(BindEnvs(rootEnvs, ""))
	try.To(BindEnvs(agentEnvs, ""))
}

// addAgentFlags adds the storage and agency flags to the command.
func addAgentFlags(c *cobra.Command) {
	flags := c.PersistentFlags()
	flags.StringVar(&agentFlags.DBName, "db-name", "vcx.bolt", flagInfo("storage file", "", agentEnvs["db-name"]))
	flags.StringVar(&agentFlags.Key, "key", "", flagInfo("hex encoded storage master key", "", agentEnvs["key"]))
	flags.StringVar(&agentFlags.KeysetFile, "keyset", "vcx.keyset", flagInfo("wallet keyset file", "", agentEnvs["keyset"]))
	flags.StringVar(&agentFlags.AgencyURL, "agency-url", "http://localhost:8080", flagInfo("relay agency URL", "", agentEnvs["agency-url"]))
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	replacer := strings.NewReplacer("-", "_")
	viper.SetEnvKeyReplacer(replacer)
	readConfigFile()
	readBoundRootFlags()
}

func readBoundRootFlags() {
	rootFlags.logging = viper.GetString("logging")
	rootFlags.dryRun = viper.GetBool("dry-run")
}

func readConfigFile() {
	cfgEnv := os.Getenv(getEnvName("", "config"))
	if rootFlags.cfgFile != "" || cfgEnv != "" {
		printInfo := true
		if rootFlags.cfgFile == "" {
			rootFlags.cfgFile = cfgEnv
			printInfo = false
		}
		viper.SetConfigFile(rootFlags.cfgFile)
		// If a config file is found, read it in.
		if err := viper.ReadInConfig(); err == nil && printInfo {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}

// BindEnvs calls viper.BindEnv with envMap and cmdName which can be empty if
// flag is general.
func BindEnvs(envMap map[string]string, cmdName string) (err error) {
	defer err2.Handle(&err)

	for flagKey, envName := range envMap {
		finalEnvName := getEnvName(cmdName, envName)
		try.To(viper.BindEnv(flagKey, finalEnvName))
	}
	return nil
}

func flagInfo(info, cmdPrefix, envName string) string {
	return info + ", " + getEnvName(cmdPrefix, envName)
}

func getEnvName(cmdName, envName string) string {
	if cmdName == "" {
		return envPrefix + "_" + strings.ToUpper(envName)
	}
	return envPrefix + "_" + strings.ToUpper(cmdName) + "_" + envName
}

func handleViperFlags(cmd *cobra.Command) {
	setRequiredStringFlags(cmd)
	if cmd.HasParent() {
		handleViperFlags(cmd.Parent())
	}
}

func setRequiredStringFlags(cmd *cobra.Command) {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	try.To(viper.BindPFlags(cmd.LocalFlags()))
	if cmd.PreRunE != nil {
		try.To(cmd.PreRunE(cmd, nil))
	}
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if viper.GetString(f.Name) != "" {
			try.To(cmd.LocalFlags().Set(f.Name, viper.GetString(f.Name)))
		}
	})
}

// SubCmdNeeded prints the help and error messages because the cmd is abstract.
func SubCmdNeeded(cmd *cobra.Command) {
	fmt.Println("Subcommand needed!")
	_ = cmd.Help()
	os.Exit(1)
}

// execute validates and runs c unless it's a dry run and prints the result
// when there is one.
func execute(cmd *cobra.Command, c cmds.Command) (err error) {
	defer err2.Handle(&err)

	try.To(c.Validate())
	if rootFlags.dryRun {
		return nil
	}
	// if error occurs in the execution, we don't show usage, only the error
	// message.
	cmd.SilenceUsage = true

	r := try.To1(c.Exec(cmd.OutOrStdout()))
	if r != nil {
		try.To1(fmt.Fprintln(cmd.OutOrStdout(), string(try.To1(r.JSON()))))
	}
	return nil
}
