package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/aleister1102/redline/internal/config"
	"github.com/aleister1102/redline/internal/differ"
	"github.com/aleister1102/redline/internal/engine"
	"github.com/aleister1102/redline/internal/logger"
	"github.com/aleister1102/redline/internal/models"
	"github.com/aleister1102/redline/internal/normalizer"
	"github.com/aleister1102/redline/internal/ruleengine"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, zerolog.Nop())
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	oldText, err := readDocument(flags.OldFile)
	if err != nil {
		zLogger.Fatal().Err(err).Str("path", flags.OldFile).Msg("Failed to read original document")
	}
	newText, err := readDocument(flags.NewFile)
	if err != nil {
		zLogger.Fatal().Err(err).Str("path", flags.NewFile).Msg("Failed to read modified document")
	}

	rules, err := resolveRules(flags, gCfg)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to resolve merge rules")
	}

	reviewEngine := engine.NewEngineBuilder(zLogger).
		WithDiffConfig(differ.DiffConfig{
			MaxEditDistance:    gCfg.DiffConfig.MaxEditDistance,
			EnableLineFallback: gCfg.DiffConfig.EnableLineFallback,
		}).
		Build()

	result, err := reviewEngine.Review(oldText, newText, rules)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Review failed")
	}

	zLogger.Info().
		Int("changes", len(result.Changes)).
		Int("words_added", result.Stats.WordsAdded).
		Int("words_deleted", result.Stats.WordsDeleted).
		Bool("fallback", result.Fallback).
		Msg("Review completed")

	if err := writeReport(result, flags.OutputFile); err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to write report")
	}
}

// readDocument loads a document version, de-tagging it when it is HTML.
func readDocument(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	text := string(content)
	if normalizer.IsHTML(text) {
		return normalizer.StripTags(text)
	}
	return text, nil
}

// resolveRules picks the rule list: custom rule file, then explicit preset
// flag, then the configured preset.
func resolveRules(flags AppFlags, gCfg *config.GlobalConfig) ([]models.MergeRule, error) {
	if flags.RuleFile != "" {
		return ruleengine.LoadRules(flags.RuleFile)
	}
	if gCfg.RulesConfig.RuleFile != "" && flags.Preset == "" {
		return ruleengine.LoadRules(gCfg.RulesConfig.RuleFile)
	}

	presetID := gCfg.RulesConfig.Preset
	if flags.Preset != "" {
		presetID = flags.Preset
	}
	if presetID == "" {
		return nil, nil
	}

	preset, err := ruleengine.PresetByID(presetID)
	if err != nil {
		return nil, err
	}
	return preset.Rules, nil
}

func writeReport(result *engine.ReviewResult, outputPath string) error {
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	if outputPath == "" {
		_, err = os.Stdout.Write(append(encoded, '\n'))
		return err
	}

	return os.WriteFile(outputPath, encoded, 0644)
}
