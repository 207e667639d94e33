package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/weekboard/weekboard/pkg/config"
	"github.com/weekboard/weekboard/pkg/store"
	gsync "github.com/weekboard/weekboard/pkg/sync"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory and make it a git repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := store.ResolveDataDir(dataDirFlag)
		if _, err := store.NewStore(dir); err != nil {
			return err
		}
		if _, err := config.Load(config.Path(dir)); err != nil {
			return err
		}
		remote, _ := cmd.Flags().GetString("remote")
		return gsync.InitRepo(dir, remote, os.Stdout)
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Commit, pull and push the data directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return gsync.SyncRepo(store.ResolveDataDir(dataDirFlag), os.Stdout)
	},
}

func init() {
	initCmd.Flags().String("remote", "", "git remote URL for origin")
	rootCmd.AddCommand(initCmd, syncCmd)
}
