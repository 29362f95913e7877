package cmd

import (
	"fmt"
	"os"

	"github.com/roman-ra/iniload/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "iniload",
	Short: "Iniload is a tool for inspecting INI configuration files.",
	Long:  "Iniload is a tool for inspecting INI configuration files. It loads a file in one pass and answers typed queries about its sections and keys.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	log.InitLogger()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Iniload",
	Long:  `All software has versions. This is Iniload's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Iniload v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(sectionsCmd)
}
