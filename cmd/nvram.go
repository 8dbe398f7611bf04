package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-ntgrbak/internal/config"
	"github.com/deploymenttheory/go-ntgrbak/pkg/tooling"
)

func newNVRAMCmd(paths *ioFlags) *cobra.Command {
	nvramCmd := &cobra.Command{
		Use:   "nvram",
		Short: "Convert raw NVRAM images to and from key=value text",
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the settings of an NVRAM image as a structured document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := tooling.Dump(paths.runOptions(), config.Instance.NVRAM.DumpFormat)
			return err
		},
	}
	dumpCmd.Flags().String("format", "json", "Document format: "+strings.Join(tooling.DumpFormats, ", "))

	nvramCmd.AddCommand(
		&cobra.Command{
			Use:   "extract",
			Short: "Convert an NVRAM image to text, one setting per line",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := tooling.Run(tooling.NVRAMExtract, paths.runOptions())
				return err
			},
		},
		&cobra.Command{
			Use:   "wrap",
			Short: "Build an NVRAM image from text, one setting per line",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := tooling.Run(tooling.NVRAMWrap, paths.runOptions())
				return err
			},
		},
		&cobra.Command{
			Use:   "get KEY",
			Short: "Print the value of one setting of an NVRAM image",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				value, err := tooling.GetSetting(paths.input, args[0], config.Instance.Force)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			},
		},
		dumpCmd,
	)
	return nvramCmd
}
