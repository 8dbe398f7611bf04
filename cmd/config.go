package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-ntgrbak/internal/config"
	"github.com/deploymenttheory/go-ntgrbak/internal/logger"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear"
	"github.com/deploymenttheory/go-ntgrbak/pkg/tooling"
)

func newConfigCmd(paths *ioFlags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Work with encrypted configuration backups (.cfg)",
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "extract",
			Short: "Decrypt a backup, verify it and write the embedded NVRAM image",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := tooling.Run(tooling.ConfigExtract, paths.runOptions())
				return err
			},
		},
		&cobra.Command{
			Use:     "decrypt",
			Aliases: []string{"decrypt-only"},
			Short:   "Decrypt a backup without any check, header included",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := tooling.Run(tooling.ConfigDecrypt, paths.runOptions())
				return err
			},
		},
		newConfigWrapCmd(paths),
	)
	return configCmd
}

func newConfigWrapCmd(paths *ioFlags) *cobra.Command {
	var modelFromNVRAM bool

	wrapCmd := &cobra.Command{
		Use:   "wrap",
		Short: "Build an encrypted backup around an NVRAM image",
		Long: `Build an encrypted backup around an NVRAM image.

The router model (-m) and configuration version (-V) are required. They can
also come from the wrap section of the config file or from NTGRBAK_WRAP_MODEL
and NTGRBAK_WRAP_VERSION. With --model-from-nvram the model is read from the
system_name setting of the input image.`,
		Example: `  ntgrbak config wrap -m WNDR4500v2 -V 17216 -i nvram.bin -o backup.cfg`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := paths.runOptions()
			opts.Wrap = wrapOptions()
			opts.ModelFromNVRAM = modelFromNVRAM
			_, err := tooling.Run(tooling.ConfigWrap, opts)
			return err
		},
	}

	wrapCmd.Flags().StringP("model", "m", "", "Router model name, e.g. WNDR4500v2")
	wrapCmd.Flags().Uint32P("version", "V", 0, "Configuration version stored in the header")
	wrapCmd.Flags().BoolVar(&modelFromNVRAM, "model-from-nvram", false, "Take the model from the system_name setting of the input")
	return wrapCmd
}

func wrapOptions() netgear.WrapOptions {
	var opts netgear.WrapOptions
	if config.Instance.Wrap.HasModel {
		name := config.Instance.Wrap.Model
		// The magic is derived from the exact bytes of the name.
		if m, ok := netgear.LookupModel(name); ok && m.Name != name {
			logger.LogWarn("Model name differs in case from the known model", map[string]interface{}{
				"model": name,
				"known": m.Name,
			})
		}
		opts.SetModel(name)
	}
	if config.Instance.Wrap.HasVersion {
		opts.SetVersion(config.Instance.Wrap.Version)
	}
	return opts
}
