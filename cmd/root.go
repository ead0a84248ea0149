/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	gogauss
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package main

/*****************************************************************************************************************/

import (
	"github.com/spf13/cobra"

	"github.com/forcepho-kernel/gogauss/internal/cli"
)

/*****************************************************************************************************************/

var rootCommand = &cobra.Command{
	Use:   "gogauss",
	Short: "gogauss is a command-line tool for exercising the forward-modeling galaxy photometry kernel.",
	Long:  "gogauss is a command-line tool for exercising the forward-modeling galaxy photometry kernel.",
}

/*****************************************************************************************************************/

func init() {
	rootCommand.AddCommand(cli.EvalCommand)
	rootCommand.AddCommand(cli.BenchCommand)
	rootCommand.AddCommand(cli.RenderCommand)
}

/*****************************************************************************************************************/

func execute() {
	if err := rootCommand.Execute(); err != nil {
		panic(err)
	}
}

/*****************************************************************************************************************/
