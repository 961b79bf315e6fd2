package platform

// Package platform contains OS integration glue: detached process launches,
// URL opening, search dispatch, media keys over MPRIS, beeps and desktop
// notifications, and battery level.
