package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maxtek/threadpool/internal/unittest"
)

func NewUnitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unit [NAME...]",
		Short: "Run the built-in pool self tests",
		Long: fmt.Sprintf("Run the named self tests, or all of them when no name is given.\nAvailable tests: %s",
			strings.Join(unittest.Names(), ", ")),
		ValidArgs: unittest.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !unittest.RunAll(cmd.OutOrStdout(), args...) {
				return errors.New("self tests failed")
			}
			return nil
		},
	}
}
