package routes

import (
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "sheetfab/docs" // This will be auto-generated
	"sheetfab/internal/adapter/http/handlers"
	repository2 "sheetfab/internal/adapter/persistence/repository"
	appconfig "sheetfab/internal/config"
	"sheetfab/internal/domain/pricing"
	"sheetfab/internal/infrastructure/credentials"
	"sheetfab/internal/infrastructure/database"
	"sheetfab/internal/infrastructure/notify"
	"sheetfab/internal/infrastructure/payments"
	"sheetfab/internal/usecase"
	"sheetfab/internal/usecase/interfaces"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.App.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *appconfig.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	quotationRepo := repository2.NewQuotationDynamoRepository(ddb, cfg.Tables.Quotations)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb, cfg.Tables.Customers)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb, cfg.Tables.Payments)

	verifier := credentials.NewEnvVerifier(cfg.Approvers.Managers, cfg.Approvers.AdminSecret)
	notifier := notify.NewWebhookNotifier(cfg.Notify.WebhookURL, cfg.Notify.Timeout)
	recipients := splitRecipients(cfg.Notify.Recipients)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	policy := usecase.PricingPolicy{
		Density: cfg.Pricing.DensityGCM3,
		Tiers: pricing.NewTierTable(
			cfg.Pricing.SmallTierMaxKG,
			cfg.Pricing.MediumTierMaxKG,
			cfg.Pricing.SmallTierRate,
			cfg.Pricing.MediumTierRate,
			cfg.Pricing.LargeTierRate,
		),
		PrintSetupFeePerColor: cfg.Pricing.PrintSetupFeePerColor,
		PrintRunRatePerColor:  cfg.Pricing.PrintRunRatePerColor,
		TaxPercent:            cfg.Pricing.TaxPercent,
	}

	quotationUseCase := usecase.NewQuotationUseCase(
		quotationRepo, customerRepo, verifier, notifier,
		policy, cfg.Production.WasteAlertPercent, recipients,
	)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, quotationRepo, paymentGateway)
	reportsUseCase := usecase.NewReportsUseCase(quotationRepo, paymentRepo, notifier, recipients)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	reportsHandler := handlers.NewReportsHandler(reportsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, quotationHandler, paymentHandler)
	addCustomerRoutes(v1, customerHandler)
	addReportRoutes(v1, reportsHandler)
}

func splitRecipients(raw string) []string {
	var out []string
	for _, r := range strings.Split(raw, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
