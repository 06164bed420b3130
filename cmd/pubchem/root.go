package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	pubchem "github.com/minh-dng/pubchem-go"
	"github.com/minh-dng/pubchem-go/internal/config"
	"github.com/minh-dng/pubchem-go/internal/telemetry"
)

var (
	configFile string
	verbose    bool
	baseURL    string
	namespace  string
	output     string

	client *pubchem.Client
	ns     pubchem.Namespace
	format outputFormat
	tel    telemetry.Telemetry
)

var rootCmd = &cobra.Command{
	Use:   "pubchem",
	Short: "Query compound data from PubChem PUG REST",
	Long: `pubchem looks up compounds on PubChem by CID, name, InChI, InChIKey or
SMILES and prints their properties, synonyms and cross-references.

Settings are read from pubchem.json5 (and pubchem.local.json5) in the
working directory, then from PUBCHEM_* environment variables; flags take
precedence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("base-url") && cfg.BaseURL != "" {
			baseURL = cfg.BaseURL
		}
		if !flags.Changed("namespace") && cfg.Namespace != "" {
			namespace = cfg.Namespace
		}
		if !flags.Changed("output") && cfg.Output != "" {
			output = cfg.Output
		}

		if ns, err = pubchem.ParseNamespace(namespace); err != nil {
			return err
		}
		if format, err = parseOutput(output); err != nil {
			return err
		}

		tel, err = telemetry.Setup(cmd.Context(), "pubchem", cfg.Otlp)
		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}

		opts := []pubchem.Option{
			pubchem.WithLogger(logger),
			pubchem.WithTracerProvider(tel.TracerProvider),
		}
		if baseURL != "" {
			opts = append(opts, pubchem.WithBaseURL(baseURL))
		}
		if cfg.UserAgent != "" {
			opts = append(opts, pubchem.WithUserAgent(cfg.UserAgent))
		}
		timeout, err := cfg.RequestTimeout()
		if err != nil {
			return err
		}
		if timeout > 0 {
			opts = append(opts, pubchem.WithTimeout(timeout))
		}

		client, err = pubchem.NewClient(opts...)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx := context.Background()
	err := rootCmd.ExecuteContext(ctx)
	if tel.TracerProvider != nil {
		if serr := tel.Shutdown(ctx); serr != nil {
			slog.Warn("telemetry shutdown failed", "err", serr)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default ./pubchem.json5)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVar(&baseURL, "base-url", "", "PUG REST root (default "+pubchem.API_BASE_URL+")")
	pf.StringVarP(&namespace, "namespace", "n", string(pubchem.NamespaceCID), "identifier namespace: cid, name, inchi, inchikey or smiles")
	pf.StringVarP(&output, "output", "o", string(outputTable), "output format: table, json, yaml or csv")
}
