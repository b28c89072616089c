package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/meta-ads-exporter/pkg/utils"
)

const reportFileName = "fetch_report.txt"

// WriteReport grava o relatório da execução com um identificador curto e a
// lista de arquivos gerados. Retorna o caminho do relatório.
func WriteReport(outputDir string, files []string, generatedAt time.Time) (string, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar identificador da execução")
	}

	var builder strings.Builder

	builder.WriteString("Relatório de exportação Meta Ads\n")
	builder.WriteString(fmt.Sprintf("Execução: %s\n", runID))
	builder.WriteString(fmt.Sprintf("Gerado em: %s\n", generatedAt.Format(time.RFC3339)))
	builder.WriteString(fmt.Sprintf("Arquivos gerados (%d):\n", len(files)))

	for _, file := range files {
		builder.WriteString(fmt.Sprintf("- %s\n", file))
	}

	path := filepath.Join(outputDir, reportFileName)

	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return "", errors.Wrapf(err, "erro ao gravar relatório em %s", path)
	}

	return path, nil
}
