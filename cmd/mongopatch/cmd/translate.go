package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/deckhouse/deckhouse/pkg/log"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/brunoga/mongopatch"
	"github.com/brunoga/mongopatch/internal/config"
	"github.com/brunoga/mongopatch/patch"
)

const stdinName = "-"

var logLevels = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func (a *app) runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	tr := mongopatch.NewTranslator(
		mongopatch.StrictAdd(cfg.StrictAdd),
		mongopatch.CopyValues(cfg.CopyValues),
		mongopatch.WithLogger(logger),
	)

	if len(args) == 0 {
		args = []string{stdinName}
	}

	var result error
	for _, name := range args {
		out, err := translateInput(tr, cmd.InOrStdin(), name, cfg)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", displayName(name), err))
			continue
		}
		logger.Info("translated patch", slog.String("input", displayName(name)))
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	}

	return result
}

func translateInput(tr *mongopatch.Translator, stdin io.Reader, name string, cfg *config.Config) ([]byte, error) {
	data, err := readInput(stdin, name)
	if err != nil {
		return nil, err
	}

	var p patch.Patch
	switch inputFormat(cfg.Input, name, data) {
	case config.InputYAML:
		p, err = patch.DecodeYAML(data)
	default:
		p, err = patch.Decode(data)
	}
	if err != nil {
		return nil, err
	}

	u, err := tr.Translate(p)
	if err != nil {
		return nil, err
	}

	return render(u, cfg)
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == stdinName {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// inputFormat resolves the auto format from the file extension, or from the
// first byte of the document for standard input.
func inputFormat(format, name string, data []byte) string {
	if format != config.InputAuto {
		return format
	}
	if name != stdinName {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			return config.InputYAML
		}
		return config.InputJSON
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return config.InputJSON
	}
	return config.InputYAML
}

func render(u *mongopatch.Update, cfg *config.Config) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch cfg.Output {
	case config.OutputRelaxed:
		out, err = u.MarshalExtJSON(false)
	case config.OutputCanonical:
		out, err = u.MarshalExtJSON(true)
	default:
		out, err = json.Marshal(u)
	}
	if err != nil || !cfg.Indent {
		return out, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, out, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewLogger(log.Options{})
	logger.SetOutput(w)
	logger.SetLevel(logLevels[level])
	return logger.Named("mongopatch")
}

func displayName(name string) string {
	if name == stdinName {
		return "<stdin>"
	}
	return name
}
