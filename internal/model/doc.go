package model

// Package model defines the preference document persisted by the panel: memos
// with optional reminders, reminder settings, quick-launch tools and the visual
// settings. Memo reminder state is carried by two flags and derived on demand.
