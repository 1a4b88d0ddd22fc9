package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Branding holds the static template text printed on every invoice.
// It overrides the built-in seed values when a branding.yml is present.
type Branding struct {
	CorporateOffice        string   `mapstructure:"corporateOffice"`
	WarehouseAddressHeader string   `mapstructure:"warehouseAddressHeader"`
	WarehouseAddressFooter string   `mapstructure:"warehouseAddressFooter"`
	Phone1                 string   `mapstructure:"phone1"`
	Phone2                 string   `mapstructure:"phone2"`
	Website                string   `mapstructure:"website"`
	Email                  string   `mapstructure:"email"`
	PaymentOptions         []string `mapstructure:"paymentOptions"`
}

// BrandingHolder serves the current branding config, hot-reloaded when
// the file changes on disk.
type BrandingHolder struct {
	current atomic.Value // holds Branding
}

func NewBrandingHolder() (*BrandingHolder, error) {
	v := viper.New()

	v.SetConfigName("branding")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/invoicestudio")
	v.AddConfigPath(".")

	v.SetEnvPrefix("INVOICESTUDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// no branding file: the seed document's literals apply unchanged
	}

	var cfg Branding
	if err := v.UnmarshalKey("branding", &cfg); err != nil {
		return nil, err
	}
	if err := validateBranding(cfg); err != nil {
		return nil, err
	}

	holder := &BrandingHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated Branding
		if err := v.UnmarshalKey("branding", &updated); err != nil {
			log.Printf("[branding-config] reload failed: %v", err)
			return
		}
		if err := validateBranding(updated); err != nil {
			log.Printf("[branding-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[branding-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *BrandingHolder) Get() Branding {
	return h.current.Load().(Branding)
}

func validateBranding(cfg Branding) error {
	for _, option := range cfg.PaymentOptions {
		if strings.TrimSpace(option) == "" {
			return errors.New("branding.paymentOptions entries cannot be blank")
		}
	}
	return nil
}
