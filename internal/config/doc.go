package config

// Package config owns the JSON preferences document: defaults, loading with
// fallback, whole-document saves, change subscriptions and a file watcher that
// picks up edits made outside the application.
