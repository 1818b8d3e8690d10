package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"recipe-extractor/internal/core/ai"
	"recipe-extractor/internal/core/ai/openrouter"
	"recipe-extractor/internal/core/ai/service"
	"recipe-extractor/internal/core/extract"
	"recipe-extractor/internal/core/recipe"
	"recipe-extractor/internal/core/scrape"
	"recipe-extractor/internal/infrastructure/config"
	"recipe-extractor/internal/pkg/common"
)

// output 轉換結果檔案格式
type output struct {
	Recipe           *recipe.Recipe `json:"recipe"`
	ExtractionMethod string         `json:"extraction_method"`
	UsedAI           bool           `json:"used_ai"`
	TodoItems        []string       `json:"todo_items"`
}

func main() {
	outputDir := flag.String("output-dir", "output", "輸出目錄")
	servings := flag.Float64("servings", 0, "目標份量，0 表示不縮放")
	convertUnits := flag.Bool("convert-units", true, "將英制單位轉成公制")
	timeout := flag.Duration("timeout", 2*time.Minute, "整體提取超時")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: convert [flags] <recipe-url>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	url := flag.Arg(0)

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	if err := run(cfg, url, *outputDir, *servings, *convertUnits, *timeout); err != nil {
		common.LogError("食譜轉換失敗", zap.String("url", url), zap.Error(err))
		fmt.Fprintf(os.Stderr, "extraction failed: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, url, outputDir string, servings float64, convertUnits bool, timeout time.Duration) error {
	provider := openrouter.NewClient(cfg)
	defer provider.Close()

	// CLI 為單次執行，不掛記憶體快取
	aiService, err := service.NewService(cfg, provider, nil)
	if err != nil {
		return err
	}
	defer aiService.Close()

	fetcher := scrape.NewFetcher(&cfg.Fetch)
	extractor := ai.NewExtractor(cfg, aiService)
	svc := extract.NewService(cfg, fetcher, extractor, nil)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, err := svc.ExtractFromURL(ctx, url)
	if err != nil {
		return err
	}
	if result == nil || result.Recipe == nil {
		return fmt.Errorf("no recipe found at %s", url)
	}

	ingredients := result.Recipe.Ingredients
	if servings > 0 {
		ingredients = recipe.ScaleIngredients(ingredients, result.Recipe.Servings, servings)
	}
	todoItems := recipe.FormatForTodo(ingredients, convertUnits)

	data, err := common.ToJSONIndent(output{
		Recipe:           result.Recipe,
		ExtractionMethod: result.ExtractionMethod,
		UsedAI:           result.UsedAI,
		TodoItems:        todoItems,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	outFile := filepath.Join(outputDir, common.SafeFilename(result.Recipe.Title)+".json")
	if err := os.WriteFile(outFile, []byte(data), 0o644); err != nil {
		return err
	}

	fmt.Printf("Recipe: %s\n", result.Recipe.Title)
	if result.Recipe.Servings > 0 {
		fmt.Printf("Servings: %d\n", result.Recipe.Servings)
	}
	fmt.Printf("Ingredients: %d (method: %s)\n", len(result.Recipe.Ingredients), result.ExtractionMethod)
	for _, item := range todoItems {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Printf("Output: %s\n", outFile)
	return nil
}
