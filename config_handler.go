package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"shopreorder/config"
)

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// GetConfigHandler returns the current settings.
func GetConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := config.GetConfig()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cfg)
	}
}

// SaveConfigHandler validates and stores new settings. Zero values fall back
// to the defaults.
func SaveConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var newCfg config.Config
		if err := json.NewDecoder(r.Body).Decode(&newCfg); err != nil {
			writeJSONError(w, "Invalid request body.", http.StatusBadRequest)
			return
		}

		if err := validateConfig(&newCfg); err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := config.SaveConfig(newCfg); err != nil {
			log.Error().Err(err).Msg("error saving config")
			writeJSONError(w, "Failed to save settings.", http.StatusInternalServerError)
			return
		}

		log.Info().Strs("shops", newCfg.Shops).Msg("config saved")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Settings saved."})
	}
}

func validateConfig(c *config.Config) error {
	shops := make([]string, 0, len(c.Shops))
	for _, s := range c.Shops {
		if s = strings.TrimSpace(s); s != "" {
			shops = append(shops, s)
		}
	}
	c.Shops = shops
	if len(shops) == 0 {
		shops = config.Default().Shops
	}

	if c.DefaultShop != "" {
		found := false
		for _, s := range shops {
			if s == c.DefaultShop {
				found = true
				break
			}
		}
		if !found {
			return errors.New("Default shop must be one of the configured shops: " + c.DefaultShop)
		}
	}

	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			return errors.New("Unknown sort language: " + c.Language)
		}
	}
	return nil
}
