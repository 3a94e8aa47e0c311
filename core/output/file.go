package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"fundraiser/internal/errors"
	"fundraiser/internal/logging"
)

var unsafeFilenameChars = strings.NewReplacer(
	"/", "_", `\`, "_", ":", "_", "*", "_", "?", "_",
	`"`, "_", "<", "_", ">", "_", "|", "_",
)

// Filename builds "<product>_<yyyy>_<mm>_<dd>.txt". Characters that are
// not allowed in file names are replaced with underscores.
func Filename(product string, date time.Time) string {
	name := unsafeFilenameChars.Replace(strings.TrimSpace(product))
	if name == "" {
		name = "report"
	}
	return fmt.Sprintf("%s_%s.txt", name, date.Format("2006_01_02"))
}

// Save renders report with f and writes it into dir, replacing any
// earlier report for the same product and day. It returns the file path.
func Save(dir string, f Formatter, report *Report) (string, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf, report); err != nil {
		return "", errors.Internal("failed to render report", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.IO("failed to create report directory", err).WithContext("dir", dir)
	}

	path := filepath.Join(dir, Filename(report.ProductName, report.Date))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", errors.IO("failed to write report", err).WithContext("path", path)
	}

	logging.Info("report saved", zap.String("path", path), zap.Int("bytes", buf.Len()))
	return path, nil
}
