// Package main implements the shortpath CLI.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/gobwas/glob"
	shortpath "github.com/mtth/shortpath/internal"
	"github.com/mtth/shortpath/internal/except"
	"github.com/mtth/shortpath/internal/fspath"
	"github.com/mtth/shortpath/internal/helper"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	var errs []error

	fp, ok := os.LookupEnv("LOGS_DIRECTORY")
	if !ok {
		var err error
		fp, err = xdg.StateFile("shortpath/log")
		if err != nil {
			errs = append(errs, err)
			fp = "shortpath.log"
		}
	}

	var writer io.Writer
	if file, err := os.OpenFile(fp, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		writer = file
	} else {
		errs = append(errs, err)
		writer = os.Stdout
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler))
	if len(errs) > 0 {
		slog.Error("Log setup failed.", except.LogErrAttr(errors.Join(errs...)))
	}
}

var (
	configPath string
	ttl        time.Duration
	force      bool
	method     = shortpath.MethodGenerate
	native     bool
	match      string
	stats      bool
)

func main() {
	ctx := context.Background()

	resolveCmd := &cobra.Command{
		Use:   "resolve [PATH...]",
		Short: "Shorten paths which exceed the length limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc := newService(cfg)
			defer closeService(svc)
			return eachPath(args, func(fp string) error {
				var short string
				var err error
				switch cfg.Method {
				case shortpath.MethodExact:
					short, err = svc.ExactShortPath(ctx, fp, cfg.Force)
				default:
					short, err = svc.Resolve(fp, cfg.Force)
				}
				if err != nil {
					return err
				}
				fmt.Println(short) //nolint:forbidigo
				return nil
			})
		},
	}
	resolveCmd.Flags().VarP(&methodValue{&method}, "method", "m", "resolution method (GENERATE or EXACT)")

	exactCmd := &cobra.Command{
		Use:   "exact [PATH...]",
		Short: "Print the short paths reported by the operating system",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc := newService(cfg)
			defer closeService(svc)
			return eachPath(args, func(fp string) error {
				short, err := svc.ExactShortPath(ctx, fp, cfg.Force)
				if err != nil {
					return err
				}
				fmt.Println(short) //nolint:forbidigo
				return nil
			})
		},
	}
	exactCmd.Flags().BoolVar(&native, "native", false, "call the system API instead of the command interpreter")

	scanCmd := &cobra.Command{
		Use:   "scan ROOT",
		Short: "Show the shortened form of all long paths under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			var pred glob.Glob
			if match != "" {
				if pred, err = glob.Compile(match, '/'); err != nil {
					return fmt.Errorf("invalid pattern %q: %w", match, err)
				}
			}
			root := args[0]
			svc := newService(cfg)
			defer closeService(svc)
			return filepath.WalkDir(root, func(fp string, _ fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if pred != nil && !pred.Match(relativePath(root, fp)) {
					return nil
				}
				if !cfg.Force && fspath.Width(fp) < fspath.MaxLength {
					return nil
				}
				short, err := svc.Resolve(fp, cfg.Force)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%s\n", short, fp) //nolint:forbidigo
				return nil
			})
		},
	}
	scanCmd.Flags().StringVar(&match, "match", "", "only show entries whose path relative to ROOT matches this glob")

	rootCmd := &cobra.Command{Use: "shortpath", SilenceUsage: true}
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration")
	rootCmd.PersistentFlags().DurationVar(&ttl, "ttl", shortpath.DefaultTTL, "cache time-to-live, 0 to disable")
	rootCmd.PersistentFlags().BoolVarP(&force, "force", "f", false, "shorten paths under the length limit")
	rootCmd.PersistentFlags().BoolVar(&stats, "stats", false, "print the number of cached entries on exit")
	rootCmd.AddCommand(resolveCmd, exactCmd, scanCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and applies any explicitly set flags on top of it.
func loadConfig(cmd *cobra.Command) (*shortpath.Config, error) {
	var cfg *shortpath.Config
	var err error
	if configPath != "" {
		cfg, err = shortpath.ReadConfig(configPath)
	} else {
		cfg, err = shortpath.FindConfig()
	}
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("ttl") {
		cfg.TTL = ttl
	}
	if flags.Changed("force") {
		cfg.Force = force
	}
	if flags.Changed("method") {
		cfg.Method = method
	}
	return cfg, nil
}

func newService(cfg *shortpath.Config) *shortpath.Service {
	opts := shortpath.DefaultOptions()
	opts.TTL = cfg.TTL
	if native {
		opts.Helper = helper.Native()
	}
	return shortpath.NewService(opts)
}

// closeService prints cache statistics if requested, then releases the service.
func closeService(svc *shortpath.Service) {
	if stats {
		fmt.Fprintf(os.Stderr, "cached entries: %d\n", svc.CacheLen())
	}
	svc.Close()
}

// relativePath returns the slash-separated path of an entry under root.
func relativePath(root, fp fspath.Local) fspath.POSIX {
	rel, err := filepath.Rel(root, fp)
	except.Require(err)
	return filepath.ToSlash(rel)
}

// eachPath calls fn on each argument or, if there are none and stdin is not a terminal, on each line
// read from stdin.
func eachPath(args []string, fn func(string) error) error {
	if len(args) > 0 || term.IsTerminal(int(os.Stdin.Fd())) {
		for _, arg := range args {
			if err := fn(arg); err != nil {
				return err
			}
		}
		return nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			if err := fn(line); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

// methodValue adapts Method to pflag.Value.
type methodValue struct {
	method *shortpath.Method
}

func (v *methodValue) String() string {
	if v.method == nil {
		return ""
	}
	return v.method.String()
}

func (v *methodValue) Set(s string) error {
	m, err := shortpath.MethodString(s)
	if err != nil {
		return err
	}
	*v.method = m
	return nil
}

func (v *methodValue) Type() string {
	return "method"
}
