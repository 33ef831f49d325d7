// Command streamreport loads a blog post catalog and prints a JSON summary
// built with stream pipelines.
//
//	streamreport --catalog posts.yaml --min_read_time 20
//	STREAMREPORT_LOG_LEVEL=debug streamreport --config config.yml
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/hasbyte1/go-stream-utils/blog"
	"github.com/hasbyte1/go-stream-utils/config"
	"github.com/hasbyte1/go-stream-utils/logger"
)

const service = "streamreport"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet(service, pflag.ContinueOnError)
	configFile := fs.String("config", "", "path to a YAML config file")
	envFile := fs.String("env-file", "", "path to a .env file")
	fs.String("catalog", "", "path to the post catalog (YAML, JSON or TOML)")
	fs.Int("min_read_time", config.DefaultMinReadTime, "minimum minutes for a post to count as a long read")
	fs.String("log.level", "", "log level (trace, debug, info, warn, error, disabled)")
	fs.String("log.format", "", "log format (console, json)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := []config.LoaderOption{config.WithFlags(fs)}
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	if *envFile != "" {
		opts = append(opts, config.WithEnvFile(*envFile))
	}

	var cfg config.Config
	if err := config.Load(service, &cfg, opts...); err != nil {
		return err
	}

	log := logger.New(cfg.Log, service)
	log.Debug().Str("catalog", cfg.Catalog).Int("min_read_time", cfg.MinReadTime).Msg("loading catalog")

	posts, err := blog.LoadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	summary, err := blog.NewReporter(log).Summarize(posts, cfg.MinReadTime)
	if err != nil {
		return err
	}
	log.Info().Int("posts", summary.Posts).Str("checksum", summary.Checksum).Msg("catalog summarized")

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
