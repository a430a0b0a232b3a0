package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "MOODSCOPE"

// Load reads the configuration from configFile, or searches the default
// locations when it is empty. A missing config file in the default locations
// is not an error: defaults and MOODSCOPE_* environment variables apply.
// It returns the decoded envelope and the path of the file used, if any.
func Load(configFile string) (*Envelope, string, error) {
	viperInstance := viper.New()
	if configFile != "" {
		viperInstance.SetConfigFile(configFile)
	} else {
		viperInstance.SetConfigName("config")
		viperInstance.SetConfigType("yaml")
		viperInstance.AddConfigPath("/etc/moodscope/")
		viperInstance.AddConfigPath("$HOME/.moodscope")
		viperInstance.AddConfigPath("./config")
	}
	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()
	setDefaults(viperInstance, Default())

	if err := viperInstance.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("read config: %w", err)
		}
	}

	envelope := Envelope{}
	if err := viperInstance.Unmarshal(&envelope); err != nil {
		return nil, "", fmt.Errorf("decode config: %w", err)
	}
	envelope.Detector.Backend = strings.ToLower(strings.TrimSpace(envelope.Detector.Backend))
	envelope.Translator.Type = strings.ToLower(strings.TrimSpace(envelope.Translator.Type))
	if err := envelope.Validate(); err != nil {
		return nil, "", err
	}
	return &envelope, viperInstance.ConfigFileUsed(), nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d Envelope) {
	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.tokens", d.Server.Tokens)
	v.SetDefault("detector.backend", d.Detector.Backend)
	v.SetDefault("detector.languages", d.Detector.Languages)
	v.SetDefault("detector.default_language", d.Detector.DefaultLanguage)
	v.SetDefault("detector.min_confidence", d.Detector.MinConfidence)
	v.SetDefault("detector.minimum_relative_distance", d.Detector.MinimumRelativeDistance)
	v.SetDefault("detector.chinese_t2s", d.Detector.ChineseT2S)
	v.SetDefault("translator.type", d.Translator.Type)
	v.SetDefault("translator.timeout", d.Translator.Timeout)
	v.SetDefault("translator.breaker.enabled", d.Translator.Breaker.Enabled)
	v.SetDefault("translator.breaker.min_requests", d.Translator.Breaker.MinRequests)
	v.SetDefault("translator.breaker.failure_ratio", d.Translator.Breaker.FailureRatio)
	v.SetDefault("translator.breaker.open_timeout", d.Translator.Breaker.OpenTimeout)
	v.SetDefault("scorer.strip_markdown", d.Scorer.StripMarkdown)
}
