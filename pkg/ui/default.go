package ui

import "sync"

var (
	defaultMu sync.RWMutex
	defaultUI *UI
)

// Default returns the shared UI used by the package level functions. It is
// created on first use from config.Default().
func Default() *UI {
	defaultMu.RLock()
	u := defaultUI
	defaultMu.RUnlock()
	if u != nil {
		return u
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultUI == nil {
		defaultUI = New(nil)
	}
	return defaultUI
}

// SetDefault replaces the shared UI. Passing nil makes the next call to
// Default build a fresh one.
func SetDefault(u *UI) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultUI = u
}

// Message calls Message on the default UI
func Message(opts MessageOptions, args ...any) error { return Default().Message(opts, args...) }

// Error calls Error on the default UI
func Error(args ...any) error { return Default().Error(args...) }

// Warning calls Warning on the default UI
func Warning(args ...any) error { return Default().Warning(args...) }

// Info calls Info on the default UI
func Info(args ...any) error { return Default().Info(args...) }

// Debug calls Debug on the default UI
func Debug(args ...any) error { return Default().Debug(args...) }

// Info1 calls Info1 on the default UI
func Info1(args ...any) error { return Default().Info1(args...) }

// Info2 calls Info2 on the default UI
func Info2(args ...any) error { return Default().Info2(args...) }

// Info3 calls Info3 on the default UI
func Info3(args ...any) error { return Default().Info3(args...) }

// InfoCount calls InfoCount on the default UI
func InfoCount(index, total int, args ...any) error {
	return Default().InfoCount(index, total, args...)
}

// Fatal calls Fatal on the default UI
func Fatal(args ...any) { Default().Fatal(args...) }

// Progress calls Progress on the default UI
func Progress(current, total int, prefix, suffix string) error {
	return Default().Progress(current, total, prefix, suffix)
}

// Title calls Title on the default UI
func Title(args ...any) error { return Default().Title(args...) }

// Task calls Task on the default UI
func Task(name, desc string, fn func() error) error { return Default().Task(name, desc, fn) }

// AskString calls AskString on the default UI
func AskString(question, def string) (string, error) { return Default().AskString(question, def) }

// AskYesNo calls AskYesNo on the default UI
func AskYesNo(question string, def bool) (bool, error) { return Default().AskYesNo(question, def) }

// AskChoice calls AskChoice on the default UI
func AskChoice(question string, choices []string) (string, error) {
	return Default().AskChoice(question, choices)
}
