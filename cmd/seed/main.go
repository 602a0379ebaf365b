// seed inicializa una instalación nueva: usuario administrador, fila única de
// tasas de cambio y, opcionalmente, el catálogo inicial de productos desde un
// CSV exportado de la planilla de la tienda (codificación Latin-1).
//
// Uso: go run ./cmd/seed [-csv ruta/catalogo.csv]
//
// Columnas del CSV: nombre, marca, categoría, precio_compra_usd,
// precio_venta_usd, unidad (PIECE|METER), stock_inicial, umbral_stock_bajo.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/zackv/zvshop-api/internal/domain/entity"
	"github.com/zackv/zvshop-api/internal/infrastructure/postgres"
	"github.com/zackv/zvshop-api/pkg/config"
)

func main() {
	csvPath := flag.String("csv", "", "ruta del CSV de catálogo (opcional)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := seedAdmin(postgres.NewUserRepository(pool)); err != nil {
		fail("usuario admin: %v", err)
	}
	if err := seedRates(postgres.NewSettingsRepository(pool)); err != nil {
		fail("tasas de cambio: %v", err)
	}
	if *csvPath != "" {
		n, err := seedCatalog(pool, *csvPath)
		if err != nil {
			fail("catálogo: %v", err)
		}
		fmt.Printf("catálogo: %d productos importados\n", n)
	}
	fmt.Println("seed completado")
}

// seedAdmin crea el usuario administrador inicial si no existe. Credenciales
// por SEED_ADMIN_USER / SEED_ADMIN_PASSWORD; SEED_ADMIN_PASSWORD es
// obligatorio en la primera corrida.
func seedAdmin(users *postgres.UserRepo) error {
	username := envOr("SEED_ADMIN_USER", "admin")
	existing, err := users.GetByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		fmt.Printf("usuario %q ya existe, sin cambios\n", username)
		return nil
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD es obligatorio para crear el admin")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	if err := users.Create(&entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		FullName:     envOr("SEED_ADMIN_NAME", "Administrador"),
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return err
	}
	fmt.Printf("usuario admin %q creado\n", username)
	return nil
}

// seedRates crea la fila de tasas si no existe. Arranca en cero: las ventas
// en SOS/ETB quedan bloqueadas hasta que el admin configure tasas reales.
func seedRates(settings *postgres.SettingsRepo) error {
	existing, err := settings.Get()
	if err != nil {
		return err
	}
	if existing != nil {
		fmt.Println("tasas de cambio ya configuradas, sin cambios")
		return nil
	}
	s := &entity.CurrencySettings{
		ID:           "global",
		USDToSOSRate: decimal.Zero,
		USDToETBRate: decimal.Zero,
		UpdatedAt:    time.Now(),
	}
	s.RecalcReciprocals()
	if err := settings.Save(s); err != nil {
		return err
	}
	fmt.Println("fila de tasas creada (en cero, configurar vía PUT /api/settings/rates)")
	return nil
}

// seedCatalog importa el catálogo desde un CSV Latin-1. El stock inicial entra
// por el libro de inventario como RESTOCK, igual que en la API.
func seedCatalog(q postgres.Querier, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	products := postgres.NewProductRepository(q)
	categories := postgres.NewCategoryRepository(q)
	logs := postgres.NewInventoryLogRepository(q)

	// Las planillas exportadas de Excel en Windows vienen en Latin-1, no UTF-8.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.FieldsPerRecord = 8
	r.TrimLeadingSpace = true

	categoryIDs := make(map[string]string)
	count := 0
	for line := 1; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("línea %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(rec[0], "nombre") {
			continue // encabezado
		}

		purchase, err := decimal.NewFromString(rec[3])
		if err != nil {
			return count, fmt.Errorf("línea %d: precio_compra %q: %w", line, rec[3], err)
		}
		selling, err := decimal.NewFromString(rec[4])
		if err != nil {
			return count, fmt.Errorf("línea %d: precio_venta %q: %w", line, rec[4], err)
		}
		unit := strings.ToUpper(strings.TrimSpace(rec[5]))
		if unit != entity.UnitPiece && unit != entity.UnitMeter {
			return count, fmt.Errorf("línea %d: unidad %q inválida", line, rec[5])
		}
		stock, err := decimal.NewFromString(rec[6])
		if err != nil {
			return count, fmt.Errorf("línea %d: stock %q: %w", line, rec[6], err)
		}
		lowLimit, err := decimal.NewFromString(rec[7])
		if err != nil {
			return count, fmt.Errorf("línea %d: umbral %q: %w", line, rec[7], err)
		}

		categoryID, err := resolveCategory(categories, categoryIDs, strings.TrimSpace(rec[2]))
		if err != nil {
			return count, fmt.Errorf("línea %d: categoría: %w", line, err)
		}

		now := time.Now()
		p := &entity.Product{
			ID:            uuid.NewString(),
			Name:          strings.TrimSpace(rec[0]),
			Brand:         strings.TrimSpace(rec[1]),
			CategoryID:    categoryID,
			PurchasePrice: purchase,
			SellingPrice:  selling,
			SellingUnit:   unit,
			CurrentStock:  stock,
			LowStockLimit: lowLimit,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := products.Create(p); err != nil {
			return count, fmt.Errorf("línea %d: %w", line, err)
		}
		if stock.GreaterThan(decimal.Zero) {
			if err := logs.Create(&entity.InventoryLog{
				ID:             uuid.NewString(),
				ProductID:      p.ID,
				Action:         entity.InventoryActionRestock,
				QuantityChange: stock,
				OldQuantity:    decimal.Zero,
				NewQuantity:    stock,
				Notes:          "stock inicial (seed)",
				CreatedAt:      now,
			}); err != nil {
				return count, fmt.Errorf("línea %d: libro de inventario: %w", line, err)
			}
		}
		count++
	}
	return count, nil
}

func resolveCategory(categories *postgres.CategoryRepo, cache map[string]string, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	if id, ok := cache[name]; ok {
		return id, nil
	}
	existing, err := categories.GetByName(name)
	if err != nil {
		return "", err
	}
	if existing != nil {
		cache[name] = existing.ID
		return existing.ID, nil
	}
	cat := &entity.Category{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()}
	if err := categories.Create(cat); err != nil {
		return "", err
	}
	cache[name] = cat.ID
	return cat.ID, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
