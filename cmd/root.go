package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-ntgrbak/internal/config"
	"github.com/deploymenttheory/go-ntgrbak/internal/logger"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
	"github.com/deploymenttheory/go-ntgrbak/pkg/tooling"
)

// ioFlags holds the input and output paths shared by every routine
type ioFlags struct {
	input  string
	output string
}

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	var cfgFile string
	paths := &ioFlags{}

	rootCmd := &cobra.Command{
		Use:   "ntgrbak",
		Short: "Netgear configuration backup and NVRAM image tool",
		Long: `ntgrbak decrypts and re-creates the configuration backups (.cfg)
exported by Netgear routers, and converts the raw NVRAM image they carry to
and from editable key=value text.

Input defaults to stdin and output to stdout. Paths ending in .gz, .bz2 or
.xz are decompressed and compressed on the fly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts := tooling.DefaultOptions()
			opts.ConfigFile = cfgFile
			opts.Flags = cmd.Flags()
			return tooling.Initialize(opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./ntgrbak.yaml, then the user config dir)")
	flags.Bool("debug", false, "Enable debug logging")
	flags.String("log-format", "human", "Log format: json or human")
	flags.String("log-file", "", "Also write logs to this file")
	flags.String("digest", "sha256", "Digest of the output logged in verbose mode: sha256, sha1, md5 or blake2b")
	flags.StringVarP(&paths.input, "input", "i", "-", "Input file, - for stdin")
	flags.StringVarP(&paths.output, "output", "o", "-", "Output file, - for stdout")
	flags.BoolP("verbose", "v", false, "Print header details and an output digest to stderr")
	flags.BoolP("force", "f", false, "Skip integrity checks, truncate oversized data and allow binary output to a terminal")

	rootCmd.AddCommand(
		newConfigCmd(paths),
		newNVRAMCmd(paths),
		newModelsCmd(),
		newMagicCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// runOptions collects the shared routine switches after configuration load
func (f *ioFlags) runOptions() tooling.RunOptions {
	return tooling.RunOptions{
		Input:   f.input,
		Output:  f.output,
		Verbose: config.Instance.Verbose,
		Force:   config.Instance.Force,
		Digest:  config.Instance.Digest,
	}
}

// Execute runs the root command
func Execute() error {
	return execute(os.Args[1:], os.Stdout)
}

// execute runs one command line. Text output of the informational commands
// goes to out; routine output follows the -o flag.
func execute(args []string, out io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)

	err := rootCmd.Execute()
	if err != nil {
		if tooling.Initialized() {
			fields := map[string]interface{}{}
			if types.IsIntegrityError(err) || types.IsSizeError(err) {
				fields["hint"] = "--force skips this check"
			}
			logger.LogError("Command execution failed", err, fields)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	_ = tooling.Shutdown()
	return err
}
