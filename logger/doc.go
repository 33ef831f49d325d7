// Package logger builds zerolog loggers from a small, viper-friendly Config.
//
//	cfg := logger.Config{Level: "debug", Format: logger.FormatJSON}
//	cfg.ApplyDefaults()
//	log := logger.New(cfg, "streamreport")
//	s := stream.FromSlice(posts).WithLogger(log)
package logger
