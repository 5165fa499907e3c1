package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNopBeforeInit(t *testing.T) {
	prev := Log
	defer func() { Log, Sugar = prev, prev.Sugar() }()

	if err := InitWithFileConfig("debug", FileConfig{}, false); err != nil {
		t.Fatalf("InitWithFileConfig: %v", err)
	}

	// Must not panic and must not be enabled at any level.
	Info("dropped")
	Named("window").Warn("dropped")
	if Log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger without outputs should be a no-op")
	}
}

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "donkey.log")

	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1, // smallest size lumberjack allows
		MaxBackups: 2,
		MaxAgeDays: 1,
		Compress:   false,
	}

	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	// ~250 bytes per line, enough to pass 1MB more than once.
	longMessage := strings.Repeat("x", 200)
	for i := 0; i < 12000; i++ {
		Sugar.Infof("frame %d: %s", i, longMessage)
	}
	Sync()

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		t.Error("main log file does not exist")
	}

	files, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}

	rotated := 0
	for _, f := range files {
		name := f.Name()
		if name == "donkey.log" || !strings.HasPrefix(name, "donkey") {
			continue
		}
		rotated++
		// donkey-YYYY-MM-DDTHH-MM-SS.SSS.log
		if !strings.Contains(name, "-20") {
			t.Errorf("rotated file %s doesn't have expected timestamp format", name)
		}
	}

	if rotated == 0 {
		t.Error("no rotated files found")
	}
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"WARNING", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for i, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, "level"+string(rune('a'+i))+".log")

			cfg := FileConfig{Path: logFile, MaxSizeMB: 10, MaxBackups: 1, MaxAgeDays: 1}
			if err := InitWithFileConfig(tt.level, cfg, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			logContent := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %q", exc, tt.level)
				}
			}
		})
	}
}

func TestNamedLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	if err := InitWithFileConfig("info", FileConfig{Path: logFile, MaxSizeMB: 1}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Named("window").Info("window created", zap.Int("width", 800))
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	line := string(content)
	for _, want := range []string{"window", "window created", `"width": 800`, "logger_test.go"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/donkey.log")

	if cfg.Path != "/tmp/donkey.log" {
		t.Errorf("expected path /tmp/donkey.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 {
		t.Errorf("unexpected rotation limits: %+v", cfg)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
