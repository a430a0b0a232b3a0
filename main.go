package main

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tsingjyujing/moodscope/cmd"
	"github.com/tsingjyujing/moodscope/utils"
)

var logger = utils.Logger

//go:embed version.txt
var version string

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Moodscope",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(strings.TrimSpace(version))
	},
}

func main() {
	rootCmd := cmd.NewRootCommand()
	commands := []*cobra.Command{
		cmd.NewAnalyzeCommand(),
		cmd.NewServerCommand(),
		cmd.NewMcpCommand(strings.TrimSpace(version)),
		versionCommand,
	}
	for _, command := range commands {
		rootCmd.AddCommand(command)
	}
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Fatal("Failed to execute command")
	}
}
