package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	SaveDirectory  string
	AssetDirectory string
	GridEnabled    bool
	VehicleColor   string
	IncompleteLine IncompleteLinePolicy
	Confirmations  bool
}

func loadConfig() *Config {
	config := &Config{
		SaveDirectory:  "",
		AssetDirectory: "",
		GridEnabled:    true,
		VehicleColor:   defaultVehicleColor,
		IncompleteLine: IncompleteKeep,
		Confirmations:  true,
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	configPath := filepath.Join(homeDir, ".wiremaprc")
	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "assetdirectory", "asset_directory", "assetdir":
			config.AssetDirectory = expandPath(value, homeDir)
		case "grid":
			config.GridEnabled = strings.ToLower(value) != "off" && strings.ToLower(value) != "false"
		case "vehiclecolor", "vehicle_color":
			if strings.HasPrefix(value, "#") && len(value) == 7 {
				config.VehicleColor = value
			}
		case "incompleteline", "incomplete_line":
			if strings.ToLower(value) == "cancel" {
				config.IncompleteLine = IncompleteCancel
			}
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// GetSavePath resolves a filename against the configured save directory.
func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

// SlotDirectory is where the slot store keeps its JSON documents.
func (c *Config) SlotDirectory() string {
	if c.SaveDirectory != "" {
		return filepath.Join(c.SaveDirectory, "slots")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "slots"
	}
	return filepath.Join(homeDir, ".wiremap", "slots")
}
