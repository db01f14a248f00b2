package config

import (
	"encoding/json"
	"os"
	"sync"
)

type Config struct {
	SalesDays    int      `json:"salesDays"`
	ForecastDays int      `json:"forecastDays"`
	Shops        []string `json:"shops"`
	DefaultShop  string   `json:"defaultShop"`
	MaxRows      int      `json:"maxRows"`
	MaxCols      int      `json:"maxCols"`
	StepSize     int      `json:"stepSize"`
	// Language is the BCP 47 tag used to sort item names.
	Language string `json:"language"`
}

var (
	cfg            = Default()
	mu             sync.RWMutex
	configFilePath = "./reorder_config.json"
)

func Default() Config {
	return Config{
		SalesDays:    2,
		ForecastDays: 2,
		Shops:        []string{"Shop 01", "Shop 02", "Shop 03", "Shop 04", "Shop 05"},
		DefaultShop:  "Shop 01",
		MaxRows:      2500,
		MaxCols:      11,
		StepSize:     5,
		Language:     "en",
	}
}

// SetPath changes the file LoadConfig and SaveConfig use.
func SetPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	configFilePath = path
}

// LoadConfig reads the config file. A missing file yields the defaults.
func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = Default()
			return cfg, nil
		}
		return Config{}, err
	}

	var tempCfg Config
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	cfg = withDefaults(tempCfg)
	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	newCfg = withDefaults(newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	c := cfg
	c.Shops = append([]string(nil), cfg.Shops...)
	return c
}

func withDefaults(c Config) Config {
	d := Default()
	if c.SalesDays <= 0 {
		c.SalesDays = d.SalesDays
	}
	if c.ForecastDays <= 0 {
		c.ForecastDays = d.ForecastDays
	}
	if len(c.Shops) == 0 {
		c.Shops = d.Shops
	}
	if c.DefaultShop == "" {
		c.DefaultShop = c.Shops[0]
	}
	if c.MaxRows <= 0 {
		c.MaxRows = d.MaxRows
	}
	if c.MaxCols <= 0 {
		c.MaxCols = d.MaxCols
	}
	if c.StepSize <= 0 {
		c.StepSize = d.StepSize
	}
	if c.Language == "" {
		c.Language = d.Language
	}
	return c
}
