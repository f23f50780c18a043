package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-mentor/internal/analysis"
	"github.com/jonathan/resume-mentor/internal/config"
	"github.com/jonathan/resume-mentor/internal/embedding"
	"github.com/jonathan/resume-mentor/internal/guidance"
	"github.com/jonathan/resume-mentor/internal/llm"
	"github.com/jonathan/resume-mentor/internal/vocab"
)

// buildComponents wires the analyzer and guidance generator from config.
// Without an API key both the similarity oracle and the guidance generator
// run fully offline: lexical embeddings and the rule-based fallback.
// The returned cleanup releases any remote clients.
func buildComponents(ctx context.Context, cfg *config.Config) (*analysis.Analyzer, *guidance.Generator, func(), error) {
	vocabulary, err := loadVocabulary(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	var closers []func()

	var embedder embedding.Embedder
	if cfg.APIKey != "" {
		gemini, err := embedding.NewGemini(ctx, cfg.APIKey, cfg.EmbedModel)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create embedder: %w", err)
		}
		closers = append(closers, func() { _ = gemini.Close() })
		embedder = gemini
	} else {
		embedder = embedding.NewLexical()
	}

	analyzer := analysis.New(embedding.NewOracle(embedder), vocabulary, cfg.Threshold)

	var client llm.Client
	if cfg.APIKey != "" {
		client, err = llm.NewClient(ctx, llm.DefaultConfig().WithModel(cfg.GuidanceModel), cfg.APIKey)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		closers = append(closers, func() { _ = client.Close() })
	}

	generator := guidance.NewGenerator(client, vocabulary.Skills)

	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}
	return analyzer, generator, cleanup, nil
}

func loadVocabulary(cfg *config.Config) (*vocab.Vocabulary, error) {
	if cfg.VocabPath == "" {
		return vocab.Default(), nil
	}
	vocabulary, err := vocab.Load(cfg.VocabPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	return vocabulary, nil
}

// resolveConfig merges the optional config file with environment defaults.
func resolveConfig(configPath string) (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Merge(config.FromEnv())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
