package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bookden/bookden/core"
	"github.com/bookden/bookden/util"
	"github.com/bookden/bookden/x/address"
	"github.com/bookden/bookden/x/auth"
	"github.com/bookden/bookden/x/catalog"
	"github.com/bookden/bookden/x/customer"
	"github.com/bookden/bookden/x/employee"
	"github.com/bookden/bookden/x/order"
	"github.com/bookden/bookden/x/shop"
	"github.com/bookden/bookden/x/stock"
	"github.com/bookden/bookden/x/warehouse"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

const bookdenBanner = `
 _                 _       _
| |__   ___   ___ | | ____| | ___ _ __
| '_ \ / _ \ / _ \| |/ / _` + "`" + ` |/ _ \ '_ \
| |_) | (_) | (_) |   < (_| |  __/ | | |
|_.__/ \___/ \___/|_|\_\__,_|\___|_| |_|
`

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version = "unknown"
)

func main() {

	fmt.Fprint(os.Stderr, bookdenBanner)

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("Bookden %s starting...", version))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true

	configPath := os.Getenv("BOOKDEN_CONFIG")
	if configPath == "" {
		configPath = "/etc/bookden/config.yaml"
	}

	config := util.Config{}
	err := config.Load(configPath)
	if err != nil {
		slog.Error(fmt.Sprintf("Failed to load config: %v", err))
		os.Exit(1)
	}
	if err := config.Validate(); err != nil {
		slog.Error(fmt.Sprintf("Invalid config: %v", err))
		os.Exit(1)
	}

	slog.Info(fmt.Sprintf("Config loaded! Issuer: %s", config.Token.Issuer))

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "bookden/api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "bookden",
		LabelFuncs: map[string]echoprometheus.LabelValueFunc{
			"url": func(c echo.Context, err error) string {
				return "REDACTED"
			},
		},
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	// Migrate the schema
	slog.Info("start migrate")
	db.AutoMigrate(
		&core.Address{},
		&core.Author{},
		&core.Product{},
		&core.Book{},
		&core.Shop{},
		&core.Warehouse{},
		&core.Employee{},
		&core.Customer{},
		&core.Order{},
		&core.OrderLine{},
		&core.ProductCount{},
	)

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "", // no password set
		DB:       0,  // use default DB
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	tokenService := SetupTokenService(config)
	policyService := SetupPolicyService(db, tokenService)

	authService := SetupAuthService(db, rdb, config)
	authHandler := auth.NewHandler(authService)

	addressService := SetupAddressService(db)
	addressHandler := address.NewHandler(addressService, policyService)

	shopService := SetupShopService(db)
	shopHandler := shop.NewHandler(shopService, policyService)

	warehouseService := SetupWarehouseService(db)
	warehouseHandler := warehouse.NewHandler(warehouseService, policyService)

	employeeService := SetupEmployeeService(db)
	employeeHandler := employee.NewHandler(employeeService, policyService)

	customerService := SetupCustomerService(db)
	customerHandler := customer.NewHandler(customerService, policyService)

	orderService := SetupOrderService(db)
	orderHandler := order.NewHandler(orderService, policyService)

	stockService := SetupStockService(db)
	stockHandler := stock.NewHandler(stockService, policyService)

	catalogService := SetupCatalogService(db, mc)
	catalogHandler := catalog.NewHandler(catalogService, policyService)

	apiV1 := e.Group("", authService.IdentifyRequester)

	// auth
	apiV1.POST("/auth/register", authHandler.Register)
	apiV1.POST("/auth/login/employee", authHandler.LoginEmployee)
	apiV1.POST("/auth/login/customer", authHandler.LoginCustomer)
	apiV1.POST("/auth/logout", authHandler.Logout)

	// address
	apiV1.POST("/address", addressHandler.GetOrAdd)

	// shop
	apiV1.GET("/shop/:id", shopHandler.Get)
	apiV1.GET("/shops", shopHandler.List)
	apiV1.POST("/shop", shopHandler.Create)
	apiV1.PUT("/shop/:id", shopHandler.Update)
	apiV1.DELETE("/shop/:id", shopHandler.Delete)

	// warehouse
	apiV1.GET("/warehouse/:id", warehouseHandler.Get)
	apiV1.GET("/warehouses", warehouseHandler.List)
	apiV1.POST("/warehouse", warehouseHandler.Create)
	apiV1.PUT("/warehouse/:id", warehouseHandler.Update)
	apiV1.DELETE("/warehouse/:id", warehouseHandler.Delete)

	// employee
	apiV1.POST("/employee", employeeHandler.Create)
	apiV1.PUT("/employee/:id", employeeHandler.Update)
	apiV1.DELETE("/employee/:id", employeeHandler.Delete)

	// customer
	apiV1.GET("/customer/:id", customerHandler.Get)
	apiV1.PUT("/customer/:id", customerHandler.Update)

	// order
	apiV1.POST("/order", orderHandler.Place)
	apiV1.GET("/order/:id", orderHandler.Get)
	apiV1.GET("/orders", orderHandler.List)
	apiV1.GET("/shop/:id/orders", orderHandler.ListByShop)
	apiV1.PUT("/order/:id/status", orderHandler.UpdateStatus)

	// stock
	apiV1.GET("/stock", stockHandler.List)
	apiV1.POST("/stock", stockHandler.Add)
	apiV1.DELETE("/stock/:id", stockHandler.Delete)
	apiV1.GET("/shop/:id/stock", stockHandler.ListAtShop)
	apiV1.PUT("/shop/:id/stock", stockHandler.SetCountAtShop)
	apiV1.GET("/warehouse/:id/stock", stockHandler.ListAtWarehouse)
	apiV1.PUT("/warehouse/:id/stock", stockHandler.SetCountAtWarehouse)

	// catalog
	apiV1.GET("/author/:id", catalogHandler.GetAuthor)
	apiV1.GET("/authors", catalogHandler.ListAuthors)
	apiV1.POST("/author", catalogHandler.CreateAuthor)
	apiV1.PUT("/author/:id", catalogHandler.UpdateAuthor)
	apiV1.DELETE("/author/:id", catalogHandler.DeleteAuthor)

	apiV1.GET("/product/:id", catalogHandler.GetProduct)
	apiV1.GET("/products", catalogHandler.ListProducts)
	apiV1.POST("/product", catalogHandler.CreateProduct)
	apiV1.PUT("/product/:id", catalogHandler.UpdateProduct)
	apiV1.DELETE("/product/:id", catalogHandler.DeleteProduct)

	apiV1.GET("/book/:id", catalogHandler.GetBook)
	apiV1.GET("/books", catalogHandler.ListBooks)
	apiV1.GET("/books/search", catalogHandler.SearchBooks)
	apiV1.POST("/book", catalogHandler.CreateBook)
	apiV1.PUT("/book/:id", catalogHandler.UpdateBook)
	apiV1.DELETE("/book/:id", catalogHandler.DeleteBook)

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bookden_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)

	go func() {
		for {
			time.Sleep(15 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

			count, err := catalogService.CountAuthors(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count authors: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("author").Set(float64(count))

			count, err = catalogService.CountProducts(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count products: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("product").Set(float64(count))

			count, err = catalogService.CountBooks(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count books: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("book").Set(float64(count))

			count, err = orderService.Count(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count orders: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("order").Set(float64(count))

			cancel()
		}
	}()

	e.GET("/metrics", echoprometheus.NewHandler())

	e.Logger.Fatal(e.Start(":8000"))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
