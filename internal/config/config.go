package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Port int `envconfig:"PORT" default:"8080"`
	}

	AWS struct {
		Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
		AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
		SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
		DynamoEndpoint  string `envconfig:"DYNAMODB_ENDPOINT"`
	}

	Tables struct {
		Quotations string `envconfig:"QUOTATIONS_TABLE" default:"quotations"`
		Customers  string `envconfig:"CUSTOMERS_TABLE" default:"customers"`
		Payments   string `envconfig:"PAYMENTS_TABLE" default:"quotation_payments"`
	}

	Pricing struct {
		// PVC sheet density used by the weight formula.
		DensityGCM3 float64 `envconfig:"SHEET_DENSITY" default:"0.91"`

		// Minimum unit rates (RM/kg) per weight tier, small to large.
		SmallTierMaxKG  float64 `envconfig:"SMALL_TIER_MAX_KG" default:"10"`
		MediumTierMaxKG float64 `envconfig:"MEDIUM_TIER_MAX_KG" default:"100"`
		SmallTierRate   float64 `envconfig:"SMALL_TIER_RATE" default:"36.00"`
		MediumTierRate  float64 `envconfig:"MEDIUM_TIER_RATE" default:"26.00"`
		LargeTierRate   float64 `envconfig:"LARGE_TIER_RATE" default:"12.60"`

		PrintSetupFeePerColor float64 `envconfig:"PRINT_SETUP_FEE_PER_COLOR" default:"50.00"`
		PrintRunRatePerColor  float64 `envconfig:"PRINT_RUN_RATE_PER_COLOR" default:"0.02"`

		TaxPercent float64 `envconfig:"TAX_PERCENT" default:"6"`
	}

	Production struct {
		WasteAlertPercent float64 `envconfig:"WASTE_ALERT_PERCENT" default:"10"`
	}

	Approvers struct {
		// Comma-separated name:secret pairs. Secrets may be bcrypt hashes.
		Managers    string `envconfig:"APPROVER_MANAGERS" default:"Iris:iris888,Tomy:tomy999"`
		AdminSecret string `envconfig:"APPROVER_ADMIN_SECRET"`
	}

	Notify struct {
		WebhookURL string        `envconfig:"NOTIFY_WEBHOOK_URL"`
		Recipients string        `envconfig:"NOTIFY_RECIPIENTS" default:"boss@factory.local"`
		Timeout    time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"10s"`
	}

	MercadoPago struct {
		AccessToken string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
