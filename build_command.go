package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ByLCY/cryptogram/answer"
	"github.com/ByLCY/cryptogram/cipher"
	"github.com/ByLCY/cryptogram/config"
	"github.com/ByLCY/cryptogram/layout"
	"github.com/ByLCY/cryptogram/quotes"
	"github.com/ByLCY/cryptogram/renderer"
	canvasrenderer "github.com/ByLCY/cryptogram/renderer/canvas"
)

func newBuildCommand(flags *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <quotes.yml>",
		Short: "加密引文并输出小册子（SVG/PDF/HTML）",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			r := canvasrenderer.NewRenderer()
			res, err := run(args[0], cfg, logger, r, r)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "已生成 %s：%d 面，输出目录 %s\n", res.Name, len(res.Pages), cfg.OutputDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.outDir, "out", "o", "", "输出目录")
	cmd.Flags().StringSliceVar(&flags.formats, "format", nil, "输出格式：svg,pdf,html,json")
	return cmd
}

// run 串联读取、加密、排版与输出；排版成功之前不写任何文件。
func run(inputPath string, cfg *config.Config, logger *slog.Logger, r renderer.Renderer, pr renderer.PageRenderer) (*layout.Result, error) {
	if r == nil || pr == nil {
		return nil, fmt.Errorf("renderer 不能为空")
	}
	texts, err := quotes.LoadFile(inputPath)
	if err != nil {
		return nil, err
	}
	qs, err := encipherAll(newEngine(cfg), texts)
	if err != nil {
		return nil, err
	}
	kind, err := cfg.Kind()
	if err != nil {
		return nil, err
	}

	base := quotes.BaseName(inputPath)
	title := cfg.Title
	if title == "" {
		title = base
	}
	result, err := layout.Build(qs, layout.BuildOptions{
		Kind:      kind,
		Name:      base,
		Title:     title,
		Labels:    cfg.BuildLabels(),
		AnswerURL: cfg.AnswerURL,
	})
	if err != nil {
		return nil, fmt.Errorf("布局计算失败: %w", err)
	}

	idx := result.Index
	logger.Info("pages",
		slog.String("base", base),
		slog.String("layout", result.Profile),
		slog.Int("sides", idx.Sheets),
		slog.Int("quotes", idx.Quotes),
		slog.Int("text", idx.TextPages),
		slog.Int("blank", idx.Blank),
		slog.Int("total", idx.Total),
	)
	for i, page := range result.Pages {
		logger.Debug("side",
			slog.Int("index", i),
			slog.String("name", page.Name),
			slog.String("slots", describeSlots(page.Slots)),
		)
	}

	if err := writeOutputs(result, qs, cfg, logger, r, pr); err != nil {
		return nil, err
	}
	return result, nil
}

// writeOutputs 按配置的格式写出文件。
func writeOutputs(result *layout.Result, qs []*cipher.Quote, cfg *config.Config, logger *slog.Logger, r renderer.Renderer, pr renderer.PageRenderer) error {
	dir := cfg.OutputDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}

	if cfg.HasFormat(config.FormatSVG) {
		for _, page := range result.Pages {
			data, err := pr.RenderPage(page)
			if err != nil {
				return fmt.Errorf("渲染 SVG 失败: %w", err)
			}
			path := filepath.Join(dir, page.Name+".svg")
			if err := writeFile(path, data); err != nil {
				return err
			}
			logger.Debug("wrote svg", slog.String("path", path))
		}
	}
	if cfg.HasFormat(config.FormatPDF) {
		data, err := r.Render(result)
		if err != nil {
			return fmt.Errorf("渲染 PDF 失败: %w", err)
		}
		path := filepath.Join(dir, result.Name+".pdf")
		if err := writeFile(path, data); err != nil {
			return err
		}
		logger.Debug("wrote pdf", slog.String("path", path))
	}
	if cfg.HasFormat(config.FormatHTML) {
		files, err := answer.Write(dir, result.Name, qs)
		if err != nil {
			return fmt.Errorf("输出答案页失败: %w", err)
		}
		logger.Debug("wrote answers", slog.Int("files", len(files)))
	}
	if cfg.HasFormat(config.FormatJSON) {
		path := filepath.Join(dir, result.Name+".json")
		if err := layout.WriteDebugJSON(result, path); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
		logger.Debug("wrote debug json", slog.String("path", path))
	}
	return nil
}

func describeSlots(slots []layout.PlacedSlot) string {
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		parts = append(parts, fmt.Sprintf("%d:%s", s.Index, s.Slot))
	}
	return strings.Join(parts, " ")
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	return nil
}
