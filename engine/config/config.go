package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// defaults registers every known key with its type-carrying default.
// Getters coerce stored strings toward these types and fall back here
// when a value will not parse.
var defaults = map[string]map[string]any{
	"Display": {
		"width":         1280,
		"height":        720,
		"fullscreen":    false,
		"vsync":         true,
		"double_buffer": true,
		"target_fps":    60,
	},
	"Graphics": {
		"texture_quality": "high",
		"particle_count":  1000,
		"bloom_effect":    true,
		"motion_blur":     false,
		"anti_aliasing":   true,
	},
	"Performance": {
		"multithreading":        true,
		"hardware_acceleration": true,
		"debug_mode":            false,
		"profiling":             false,
	},
	"Demo": {
		"auto_start":         true,
		"demo_duration":      30,
		"show_fps":           true,
		"show_platform_info": true,
		"interactive_mode":   true,
		"spell_word":         "cursor",
	},
	"Input": {
		"mouse_sensitivity":        1.0,
		"keyboard_repeat_delay":    500,
		"keyboard_repeat_interval": 50,
	},
	"Logging": {
		"level":          "INFO",
		"file_output":    true,
		"console_output": true,
		"log_file":       "demo.log",
	},
}

// envOverrides maps CURSOR_DEMO_* environment variables onto their
// section and key. Overrides are applied after the file is read, so
// the environment always wins.
var envOverrides = map[string][2]string{
	"CURSOR_DEMO_WIDTH":          {"Display", "width"},
	"CURSOR_DEMO_HEIGHT":         {"Display", "height"},
	"CURSOR_DEMO_FULLSCREEN":     {"Display", "fullscreen"},
	"CURSOR_DEMO_VSYNC":          {"Display", "vsync"},
	"CURSOR_DEMO_TARGET_FPS":     {"Display", "target_fps"},
	"CURSOR_DEMO_PARTICLE_COUNT": {"Graphics", "particle_count"},
	"CURSOR_DEMO_DEBUG":          {"Performance", "debug_mode"},
	"CURSOR_DEMO_DURATION":       {"Demo", "demo_duration"},
	"CURSOR_DEMO_LOG_LEVEL":      {"Logging", "level"},
}

// Manager loads and serves the demo's INI configuration. It never
// fails hard: a missing file is created from defaults, an unreadable
// one is replaced by defaults in memory, and bad values coerce to
// their registered default at read time.
type Manager struct {
	path string
	file *ini.File
}

// Load reads the INI file at path, creating it from defaults when
// missing. The returned Manager is always usable; the error reports
// file trouble the caller may want to log.
func Load(path string) (*Manager, error) {
	m := &Manager{path: path}
	err := m.load()
	return m, err
}

func (m *Manager) load() error {
	var loadErr error
	if _, err := os.Stat(m.path); os.IsNotExist(err) {
		m.file = ini.Empty()
		m.seedDefaults()
		if err := m.file.SaveTo(m.path); err != nil {
			loadErr = fmt.Errorf("write default config: %w", err)
		}
	} else {
		f, err := ini.Load(m.path)
		if err != nil {
			loadErr = fmt.Errorf("read config %s: %w", m.path, err)
			f = ini.Empty()
		}
		m.file = f
		m.seedDefaults()
	}
	m.applyEnv()
	return loadErr
}

// seedDefaults fills in any key the file does not carry.
func (m *Manager) seedDefaults() {
	for section, keys := range defaults {
		sec := m.file.Section(section)
		for key, val := range keys {
			if !sec.HasKey(key) {
				sec.Key(key).SetValue(defaultString(val))
			}
		}
	}
}

func (m *Manager) applyEnv() {
	for env, target := range envOverrides {
		raw, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		section, key := target[0], target[1]
		if err := checkType(raw, defaults[section][key]); err != nil {
			log.Printf("config: ignoring %s=%q: %v", env, raw, err)
			continue
		}
		m.file.Section(section).Key(key).SetValue(raw)
	}
}

func defaultString(v any) string {
	switch t := v.(type) {
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// checkType verifies raw parses as the same type as the registered
// default, so a bad override never poisons the stored config.
func checkType(raw string, target any) error {
	switch target.(type) {
	case bool:
		if _, err := parseBool(raw); err != nil {
			return err
		}
	case int:
		if _, err := strconv.Atoi(raw); err != nil {
			return fmt.Errorf("not an integer")
		}
	case float64:
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Errorf("not a number")
		}
	}
	return nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean")
}

// Int returns the value at section.key, falling back to the registered
// default when missing or unparseable.
func (m *Manager) Int(section, key string) int {
	sec := m.file.Section(section)
	if sec.HasKey(key) {
		if v, err := sec.Key(key).Int(); err == nil {
			return v
		}
		log.Printf("config: %s.%s=%q is not an integer, using default", section, key, sec.Key(key).String())
	}
	if d, ok := defaults[section][key].(int); ok {
		return d
	}
	return 0
}

func (m *Manager) Float(section, key string) float64 {
	sec := m.file.Section(section)
	if sec.HasKey(key) {
		if v, err := sec.Key(key).Float64(); err == nil {
			return v
		}
		log.Printf("config: %s.%s=%q is not a number, using default", section, key, sec.Key(key).String())
	}
	switch d := defaults[section][key].(type) {
	case float64:
		return d
	case int:
		return float64(d)
	}
	return 0
}

func (m *Manager) Bool(section, key string) bool {
	sec := m.file.Section(section)
	if sec.HasKey(key) {
		if v, err := parseBool(sec.Key(key).String()); err == nil {
			return v
		}
		log.Printf("config: %s.%s=%q is not a boolean, using default", section, key, sec.Key(key).String())
	}
	if d, ok := defaults[section][key].(bool); ok {
		return d
	}
	return false
}

func (m *Manager) Str(section, key string) string {
	sec := m.file.Section(section)
	if sec.HasKey(key) {
		return sec.Key(key).String()
	}
	if d, ok := defaults[section][key]; ok {
		return defaultString(d)
	}
	return ""
}

// Set stores a value in memory; call Save to persist it.
func (m *Manager) Set(section, key, value string) {
	m.file.Section(section).Key(key).SetValue(value)
}

func (m *Manager) Save() error {
	if err := m.file.SaveTo(m.path); err != nil {
		return fmt.Errorf("save config %s: %w", m.path, err)
	}
	return nil
}

// Reload re-reads the file and re-applies environment overrides.
func (m *Manager) Reload() error {
	return m.load()
}

// Path returns the backing file location.
func (m *Manager) Path() string { return m.path }
