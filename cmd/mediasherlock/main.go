package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/autobrr/mediasherlock/internal/cli"
	"github.com/autobrr/mediasherlock/internal/config"
	"github.com/autobrr/mediasherlock/internal/logging"
	"github.com/autobrr/mediasherlock/internal/probe"
	"github.com/autobrr/mediasherlock/internal/viewer"
)

var version = "dev"

var cfgFile string

const helpTemplate = `{{banner}}
{{with or .Long .Short}}{{. | trimTrailingWhitespaces}}

{{end}}{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}`

var rootCmd = &cobra.Command{
	Use:   "mediasherlock [flags] <file> [file...]",
	Short: "Short technical summary of media files.",
	Long: `mediasherlock runs mediainfo on each file and prints one line per
video and audio track: codec, resolution, aspect ratio, frame rate, bit rate,
sampling rate and channels.

Settings can also come from a .mediasherlock.{yaml,json,toml} file in the
current directory, $HOME or /etc/mediasherlock/, or from MEDIASHERLOCK_*
environment variables (e.g. MEDIASHERLOCK_MEDIAINFO_BINARY).`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runRoot(cmd, args))
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update mediasherlock",
	Long:  "Update mediasherlock to latest version (release builds only).",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSelfUpdate(cmd.Context())
	},
	DisableFlagsInUseLine: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print mediasherlock version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli.Version(cmd.OutOrStdout())
		return nil
	},
	DisableFlagsInUseLine: true,
}

func init() {
	cobra.MousetrapHelpText = ""
	cobra.AddTemplateFunc("banner", cli.Banner)

	resolvedVersion := resolveVersion()
	cli.SetVersion(resolvedVersion)

	rootCmd.Version = cli.FormatVersion(resolvedVersion)
	rootCmd.SetVersionTemplate(cli.AppName + ", {{.Version}}\n")
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	rootCmd.SetHelpTemplate(helpTemplate)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	config.AddFlags(rootCmd.Flags())

	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cli.AppName, err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) int {
	cfg, _, err := config.Load(viper.New(), cmd.Flags(), cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cli.AppName, err)
		return 1
	}
	cli.SetColorMode(cfg.Color)

	if len(args) == 0 {
		return cli.Usage(cmd.Name(), cmd.OutOrStdout())
	}

	log, err := logging.NewLogger(&cfg, cmd.ErrOrStderr())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cli.AppName, err)
		return 1
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug().Str("version", cli.FormatVersion(version)).Strs("files", args).Msg("starting")

	runner := &cli.Runner{
		Config:     &cfg,
		Summarizer: probe.New(cfg.MediainfoBinary, cfg.ProbeTimeout, log.Logger),
		Viewer:     viewer.New(viewer.Command(cfg.Viewer, runtime.GOOS)),
		Fs:         afero.NewOsFs(),
		Log:        log.Logger,
		Stdout:     cmd.OutOrStdout(),
	}
	return runner.Run(ctx, args)
}

func runSelfUpdate(ctx context.Context) error {
	if version == "" || version == "dev" {
		return errors.New("self-update is only available in release builds")
	}

	if _, err := semver.ParseTolerant(version); err != nil {
		return fmt.Errorf("could not parse version: %w", err)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug("autobrr/mediasherlock"))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s/%s could not be found from github repository", "autobrr/mediasherlock", version)
	}

	if latest.LessOrEqual(version) {
		fmt.Printf("Current binary is the latest version: %s\n", cli.FormatVersion(version))
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Printf("Successfully updated to version: %s\n", cli.FormatVersion(latest.Version()))
	return nil
}

func resolveVersion() string {
	if version != "" && version != "dev" {
		return normalizeVersion(version)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return normalizeVersion(info.Main.Version)
		}
	}
	return "dev"
}

func normalizeVersion(value string) string {
	return strings.TrimPrefix(value, "v")
}
