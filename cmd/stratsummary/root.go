package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"stratsummary/internal/datasite"
	"stratsummary/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	root       string
	logLevel   string
	logFormat  string
}

var rootCmd = &cobra.Command{
	Use:   "stratsummary",
	Short: "Privacy-safe strategy summaries for a SyftBox datasite",
	Long: "Stratsummary reads a private StarCraft II strategy-pattern dataset\n" +
		"inside a SyftBox datasite and publishes aggregate-only summaries to\n" +
		"the datasite's public folder. Raw records never cross that boundary.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		logging.Init(level, rootFlags.logFormat)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&rootFlags.configPath, "config", "c", "", "Path to deployment config (YAML/JSON; defaults apply if unset)")
	pf.StringVar(&rootFlags.root, "root", "", "SyftBox installation root (default: derived from the app's location)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.Version = version
}

// loadConfig builds the run config from --config, or the defaults of the
// original deployment when no file is given.
func loadConfig() (datasite.Config, error) {
	if rootFlags.configPath == "" {
		return datasite.Default(), nil
	}
	return datasite.LoadConfig(rootFlags.configPath)
}

// resolvePaths locates the SyftBox tree. With no --root, the root is
// derived from the binary's install directory (SyftBox places apps at
// <root>/apps/<app-id>).
func resolvePaths(cfg datasite.Config) (datasite.Paths, error) {
	root := rootFlags.root
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return datasite.Paths{}, fmt.Errorf("locate app dir: %w", err)
		}
		root = datasite.RootFromApp(filepath.Dir(exe))
	}
	return datasite.Resolve(root, cfg), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
