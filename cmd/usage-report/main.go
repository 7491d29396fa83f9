package main

import (
	"fmt"
	"os"

	"github.com/diillson/azure-usage-report-go/internal/adapter/driven/config"
	"github.com/diillson/azure-usage-report-go/internal/adapter/driven/export"
	"github.com/diillson/azure-usage-report-go/internal/adapter/driven/usage"
	"github.com/diillson/azure-usage-report-go/internal/adapter/driving/cli"
	"github.com/diillson/azure-usage-report-go/internal/application/usecase"
	"github.com/diillson/azure-usage-report-go/pkg/console"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp()

	// Inicializa os repositórios
	usageRepo := usage.NewUsageRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		usageRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetReportUseCase(reportUseCase)

	// Um arquivo ausente ou inválido aborta a execução com status 1
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
