package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ByLCY/cryptogram/cipher"
	"github.com/ByLCY/cryptogram/config"
	"github.com/ByLCY/cryptogram/logging"
)

// cliFlags 保存命令行参数；只有显式给出的参数才覆盖配置文件。
type cliFlags struct {
	configPath string
	layout     string
	seed       uint64
	debug      bool
	outDir     string
	formats    []string
}

func newRootCommand() *cobra.Command {
	flags := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:           "cryptogram",
		Short:         "生成可打印的密码谜题小册子",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "配置文件路径（默认 ./"+config.DefaultPath+"）")
	pf.StringVarP(&flags.layout, "layout", "L", "", "版式：four_up 或 two_up")
	pf.Uint64VarP(&flags.seed, "seed", "S", 0, "随机种子（--seed N 或 --seed=N）；只写 --seed 时为 1")
	pf.Lookup("seed").NoOptDefVal = "1"
	pf.BoolVarP(&flags.debug, "debug", "d", false, "输出调试日志")

	rootCmd.AddCommand(newBuildCommand(flags))
	rootCmd.AddCommand(newPlanCommand(flags))
	rootCmd.AddCommand(newEncipherCommand(flags))
	return rootCmd
}

// executeArgs 运行命令行。"--seed 7" 与 "-S 7" 会先改写为 "--seed=7"，
// 因为 seed 允许不带值（此时为 1），pflag 不会把后面的参数当作它的值。
func executeArgs(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(seedArgs(args))
	return cmd.Execute()
}

func seedArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if (arg == "--seed" || arg == "-S") && i+1 < len(args) {
			if _, err := strconv.ParseUint(args[i+1], 10, 64); err == nil {
				out = append(out, "--seed="+args[i+1])
				i++
				continue
			}
		}
		out = append(out, arg)
	}
	return out
}

// resolveConfig 读取配置文件并叠加命令行覆盖。
func resolveConfig(cmd *cobra.Command, flags *cliFlags) (*config.Config, error) {
	cfg, _, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	changed := cmd.Flags().Changed
	if changed("layout") {
		cfg.Layout = flags.layout
	}
	if changed("seed") {
		seed := flags.seed
		cfg.Seed = &seed
	}
	if flags.debug {
		cfg.Logging.Level = "debug"
	}
	if changed("out") {
		cfg.OutputDir = flags.outDir
	}
	if changed("format") {
		cfg.Formats = flags.formats
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	return logger, nil
}

func newEngine(cfg *config.Config) *cipher.Engine {
	if cfg.Seed != nil {
		return cipher.NewSeededEngine(*cfg.Seed)
	}
	return cipher.NewEngine()
}

// encipherAll 按顺序为每条引文生成独立的映射。
func encipherAll(engine *cipher.Engine, texts []string) ([]*cipher.Quote, error) {
	out := make([]*cipher.Quote, 0, len(texts))
	for i, text := range texts {
		q, err := engine.NewQuote(text)
		if err != nil {
			return nil, fmt.Errorf("引文 %d: %w", i+1, err)
		}
		out = append(out, q)
	}
	return out, nil
}
