// fixinventory reconcilia el stock contra el libro de inventario desde la
// línea de comandos. Por defecto solo verifica y reporta; con -fix repara
// cada desvío dejando un asiento ADJUSTMENT.
//
// Uso: go run ./cmd/fixinventory [-fix]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	appinventory "github.com/zackv/zvshop-api/internal/application/inventory"
	"github.com/zackv/zvshop-api/internal/infrastructure/postgres"
	"github.com/zackv/zvshop-api/pkg/config"
	"github.com/zackv/zvshop-api/pkg/logger"
)

func main() {
	fix := flag.Bool("fix", false, "repara los desvíos en vez de solo reportarlos")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	uc := appinventory.NewReconcileUseCase(
		postgres.NewInventoryTxRunner(pool),
		postgres.NewProductRepository(pool),
		log,
	)
	report, err := uc.Reconcile(ctx, *fix)
	if err != nil {
		fail("reconciliación: %v", err)
	}

	fmt.Printf("productos revisados: %d, con desvío: %d\n", report.Total, len(report.Drifted))
	for _, d := range report.Drifted {
		estado := "detectado"
		if d.Fixed {
			estado = "reparado"
		}
		fmt.Printf("  %s (%s): actual=%s esperado=%s desvío=%s [%s]\n",
			d.ProductName, d.ProductID, d.CurrentStock, d.ExpectedStock, d.Drift, estado)
	}
	if len(report.Drifted) > 0 && !*fix {
		fmt.Println("ejecutar con -fix para reparar")
		os.Exit(2)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
