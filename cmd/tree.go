package cmd

import (
	"io"
	"strings"

	"github.com/AbsaOSS/libvcx/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

var treeDoc = `Prints the vcx command structure.

Without arguments the whole structure is printed. An argument path, e.g.
'vcx tree connection', prints only that branch. With --short the one line
description of every command is printed next to its name.`

var (
	treeLevel int
	treeShort bool
)

var treeCmd = &cobra.Command{
	Use:   "tree [command...]",
	Short: "Prints the vcx command structure",
	Long:  treeDoc,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err, "tree %s", strings.Join(args, " "))

		c := rootCmd
		if len(args) > 0 {
			c, _ = try.To2(rootCmd.Find(args))
		}
		w := cmd.OutOrStdout()
		cmds.Fprintln(w, c.Name())
		printBranch(w, c, "", 1)
		return nil
	},
}

func printBranch(w io.Writer, parent *cobra.Command, indent string, level int) {
	if treeLevel > 0 && level > treeLevel {
		return
	}
	subs := visible(parent.Commands())
	for i, c := range subs {
		branch, next := "├── ", "│   "
		if i == len(subs)-1 {
			branch, next = "└── ", "    "
		}
		line := indent + branch + c.Name()
		if treeShort && c.Short != "" {
			line += "  " + c.Short
		}
		cmds.Fprintln(w, line)
		printBranch(w, c, indent+next, level+1)
	}
}

func visible(cs []*cobra.Command) []*cobra.Command {
	out := make([]*cobra.Command, 0, len(cs))
	for _, c := range cs {
		if !c.Hidden && c.Name() != "help" {
			out = append(out, c)
		}
	}
	return out
}

func init() {
	flags := treeCmd.Flags()
	flags.IntVarP(&treeLevel, "level", "L", 0, "depth of the tree, zero prints all")
	flags.BoolVar(&treeShort, "short", false, "print command descriptions")
	rootCmd.AddCommand(treeCmd)
}
