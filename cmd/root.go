package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tsingjyujing/moodscope/analyzer"
	"github.com/tsingjyujing/moodscope/config"
	"github.com/tsingjyujing/moodscope/models"
	"github.com/tsingjyujing/moodscope/sentiment"
	"github.com/tsingjyujing/moodscope/text"
	"github.com/tsingjyujing/moodscope/utils"
)

var logger = utils.Logger

var (
	configFile string
	verbose    bool
	logFormat  string
)

// NewRootCommand builds the moodscope command with its persistent flags.
// Subcommands are added by the caller.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "moodscope",
		Short:         "Moodscope tells you the mood of a text in any language",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				utils.SetVerbose()
			}
			return utils.SetFormat(logFormat)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format, text or json")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file")
	return rootCmd
}

func readConfig() *config.Envelope {
	envelope, used, err := config.Load(configFile)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if used != "" {
		logger.Infof("Using config file: %s", used)
	} else {
		logger.Debug("No config file found, using defaults and environment")
	}
	return envelope
}

// buildAnalyzer wires the pipeline from the configuration. Every component is
// built once here and shared by all requests.
func buildAnalyzer(envelope *config.Envelope) (*analyzer.Analyzer, error) {
	detector, err := text.NewLanguageDetector(envelope.Detector)
	if err != nil {
		return nil, err
	}
	normalizer, err := text.NewNormalizer(envelope.Detector.ChineseT2S)
	if err != nil {
		return nil, err
	}
	model, err := models.NewTranslationModel(envelope.Translator.Type, envelope.Translator.Config)
	if err != nil {
		return nil, err
	}
	if model == nil {
		logger.Warn("No translator configured, non-English text is scored as is")
	} else {
		logger.Infof("Loaded %s translator successfully", envelope.Translator.Type)
	}
	translator := models.NewEnglishTranslator(model, envelope.Translator)
	scorer := sentiment.NewVaderScorer(envelope.Scorer.StripMarkdown)
	return analyzer.NewAnalyzer(normalizer, detector, translator, scorer), nil
}
